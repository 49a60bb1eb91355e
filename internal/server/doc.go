// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP transport of the uniqueness service.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown with a bounded drain period.
package server
