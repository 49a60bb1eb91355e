// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides the column uniqueness rule and the glue that
// attaches it to struct fields.
//
// Core concepts:
//   - ExistenceChecker: the capability a data layer supplies to answer
//     "does any row of table T have column C equal to V?".
//   - UniqueColumnValidator: turns one existence check into a verdict
//     (absent means unique) and renders the default violation message.
//   - Validator: generic interface to validate arbitrary values or structures,
//     implemented by StructValidator for `unique` struct tags.
//
// Uniqueness reported here is advisory. Two concurrent callers can both
// observe a value as unique and both insert it; a unique index in the store
// remains the authoritative guard.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validators_mock.go -package=mock

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// ExistenceChecker reports whether at least one stored row of table has
// column equal to value.
//
// A missing row is a normal (false, nil) result. Implementations return an
// error on connectivity problems, malformed identifiers or when ctx is done,
// and must be safe for concurrent use.
type ExistenceChecker interface {
	Exists(ctx context.Context, table, column string, value any) (bool, error)
}
