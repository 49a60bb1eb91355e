// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UniquenessRequest asks whether Value is still free in Table.Column.
type UniquenessRequest struct {
	Table  string `json:"table" validate:"required,max=127"`
	Column string `json:"column,omitempty" validate:"omitempty,max=63"`
	Value  any    `json:"value"`
}

// Constraint returns the uniqueness target described by the request.
func (r UniquenessRequest) Constraint() Constraint {
	return Constraint{Table: r.Table, Column: r.Column}
}

// UniquenessResponse carries the verdict for a [UniquenessRequest].
// Message is filled only when Unique is false.
type UniquenessResponse struct {
	Unique  bool   `json:"unique"`
	Message string `json:"message,omitempty"`
}

// ExistenceRequest asks whether any row of Table has Column equal to Value.
type ExistenceRequest struct {
	Table  string `json:"table" validate:"required,max=127"`
	Column string `json:"column" validate:"required,max=63"`
	Value  any    `json:"value"`
}

// ExistenceResponse is the raw answer to an [ExistenceRequest].
type ExistenceResponse struct {
	Exists bool `json:"exists"`
}
