// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrInvalidIdentifier is returned when a table or column name is empty
	// or is not a plain SQL identifier. Such names are never interpolated
	// into a query.
	ErrInvalidIdentifier = errors.New("invalid sql identifier")

	// ErrUnknownTable is returned when the queried table does not exist.
	ErrUnknownTable = errors.New("table does not exist")

	// ErrUnknownColumn is returned when the queried column does not exist
	// in the table.
	ErrUnknownColumn = errors.New("column does not exist")

	// ErrUnsupportedDriver is returned by [NewStorages] for a driver name it
	// cannot open.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails. Context cancellation stays matchable through the
	// wrapped cause.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning the result row fails.
	ErrScanningRow = errors.New("failed to scan existence row")
)
