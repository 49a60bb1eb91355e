// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	// ErrNoConstraints is returned when validation arguments carry no
	// constraint. It signals a wiring bug in the caller, not a verdict.
	ErrNoConstraints = errors.New("validation arguments must contain at least one constraint")

	// ErrAborted is returned when the existence check was cancelled or timed
	// out before producing an answer.
	ErrAborted = errors.New("uniqueness check aborted")

	// ErrNilChecker is returned when a rule is built without an existence checker.
	ErrNilChecker = errors.New("existence checker is required")

	ErrUnsupportedType    = errors.New("unsupported type for validation")
	ErrTranslatorNotFound = errors.New("translator not found")
)
