// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ExistenceRepository answers whether a table already holds a value in a
// column. It satisfies validators.ExistenceChecker.
type ExistenceRepository interface {
	Exists(ctx context.Context, table, column string, value any) (bool, error)
}
