// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-unique-keeper/models"
)

// uniqueMessageFormat renders the default violation message from a table and
// a column name.
const uniqueMessageFormat = `Value must be unique in the table "%s" for column "%s".`

// UniqueColumnValidator rejects values that already exist in the column
// named by the first constraint of the validation arguments.
//
// It holds no state besides the checker, never caches verdicts and never
// closes the checker, so one instance may be shared by any number of
// goroutines.
type UniqueColumnValidator struct {
	checker ExistenceChecker
}

// NewUniqueColumnValidator constructs a [UniqueColumnValidator] backed by checker.
func NewUniqueColumnValidator(checker ExistenceChecker) (*UniqueColumnValidator, error) {
	if checker == nil {
		return nil, ErrNilChecker
	}

	return &UniqueColumnValidator{checker: checker}, nil
}

// Validate reports whether value is absent from the target column.
//
// Exactly one existence check is issued per call. Errors from the checker are
// returned as is; when ctx is cancelled or its deadline passes the error also
// matches [ErrAborted]. A failed check never yields a verdict.
func (v *UniqueColumnValidator) Validate(ctx context.Context, value any, args models.ValidationArguments) (bool, error) {
	c, err := firstConstraint(args)
	if err != nil {
		return false, err
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return false, fmt.Errorf("%w: %w", ErrAborted, ctxErr)
	}

	exists, err := v.checker.Exists(ctx, c.Table, c.BoundColumn(), value)
	if err != nil {
		if isAborted(ctx, err) {
			return false, fmt.Errorf("%w: %w", ErrAborted, err)
		}
		return false, err
	}

	return !exists, nil
}

// DefaultMessage renders the violation message for the first constraint.
// It performs no I/O.
func (v *UniqueColumnValidator) DefaultMessage(args models.ValidationArguments) (string, error) {
	c, err := firstConstraint(args)
	if err != nil {
		return "", err
	}

	return UniqueMessage(c), nil
}

// UniqueMessage renders the violation message for c.
func UniqueMessage(c models.Constraint) string {
	return fmt.Sprintf(uniqueMessageFormat, c.Table, c.BoundColumn())
}

func firstConstraint(args models.ValidationArguments) (models.Constraint, error) {
	if len(args.Constraints) == 0 {
		if args.Property != "" {
			return models.Constraint{}, fmt.Errorf("%w (property %q)", ErrNoConstraints, args.Property)
		}
		return models.Constraint{}, ErrNoConstraints
	}

	return args.Constraints[0], nil
}

func isAborted(ctx context.Context, err error) bool {
	return ctx.Err() != nil ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
