// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"database/sql/driver"
	"fmt"
	"reflect"
	"time"

	"github.com/MKhiriev/go-unique-keeper/internal/validators"
	"github.com/MKhiriev/go-unique-keeper/models"
)

// UniquenessValidationService rejects malformed requests before they reach
// the wrapped [UniquenessService].
type UniquenessValidationService struct {
	inner     UniquenessService
	validator validators.Validator
}

// NewUniquenessValidationService returns a wrapper validating requests with v.
func NewUniquenessValidationService(v validators.Validator) (UniquenessServiceWrapper, error) {
	if v == nil {
		return nil, ErrNilValidator
	}

	return &UniquenessValidationService{validator: v}, nil
}

func (v *UniquenessValidationService) CheckUnique(ctx context.Context, request models.UniquenessRequest) (models.UniquenessResponse, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.UniquenessResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := checkScalarValue(request.Value); err != nil {
		return models.UniquenessResponse{}, err
	}

	return v.inner.CheckUnique(ctx, request)
}

func (v *UniquenessValidationService) Exists(ctx context.Context, request models.ExistenceRequest) (bool, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := checkScalarValue(request.Value); err != nil {
		return false, err
	}

	return v.inner.Exists(ctx, request)
}

func (v *UniquenessValidationService) Wrap(inner UniquenessService) UniquenessService {
	v.inner = inner
	return v
}

// checkScalarValue rejects values no single column can hold, such as the
// objects and arrays a JSON body may carry. []byte, time.Time and
// driver.Valuer values stay allowed.
func checkScalarValue(value any) error {
	switch value.(type) {
	case nil, time.Time, driver.Valuer:
		return nil
	}

	t := reflect.TypeOf(value)
	switch t.Kind() {
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return nil
		}
	case reflect.Map, reflect.Array, reflect.Struct, reflect.Chan, reflect.Func:
	default:
		return nil
	}

	return fmt.Errorf("%w: %w: got %s", ErrInvalidDataProvided, ErrUnsupportedValue, t.Kind())
}
