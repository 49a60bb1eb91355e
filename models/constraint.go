// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DefaultColumn is the column bound to a [Constraint] that does not name one.
// It keeps the message produced for table-only constraints stable.
const DefaultColumn = "columnName"

// Constraint declares the uniqueness target of a validated value.
type Constraint struct {
	// Table is the table (optionally schema-qualified, e.g. "auth.users")
	// that must not already contain the value.
	Table string `json:"table"`

	// Column is the column compared against the value. Empty means
	// [DefaultColumn].
	Column string `json:"column,omitempty"`
}

// BoundColumn returns the column the constraint is checked against.
func (c Constraint) BoundColumn() string {
	if c.Column == "" {
		return DefaultColumn
	}
	return c.Column
}

// ValidationArguments is the bundle of constraints passed alongside a value
// for one validation call. Only the first constraint is consulted.
type ValidationArguments struct {
	Constraints []Constraint

	// Property is the name of the validated field, if known. Used for
	// diagnostics only.
	Property string
}

// NewValidationArguments builds arguments holding the given constraints.
func NewValidationArguments(constraints ...Constraint) ValidationArguments {
	return ValidationArguments{Constraints: constraints}
}
