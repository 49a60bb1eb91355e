// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to a remote uniqueness service.
//
// [ServerAdapter] satisfies validators.ExistenceChecker, so a
// UniqueColumnValidator in another process can run its checks against the
// service over HTTP instead of a local database. Error responses are mapped
// to the sentinel values in errors.go so callers can use [errors.Is].
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client view of the uniqueness service.
type ServerAdapter interface {
	// Exists asks the service whether table.column already holds value.
	Exists(ctx context.Context, table, column string, value any) (bool, error)

	// Version returns the version string reported by the service. Clients
	// call it once to make sure the service is reachable.
	Version(ctx context.Context) (string, error)
}
