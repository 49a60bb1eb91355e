// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// FieldErrors maps snake_case field names to violation messages.
type FieldErrors map[string]string

// Error implements the error interface.
func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation error"
	}

	b, err := json.Marshal(fe)
	if err != nil {
		return fmt.Sprintf("validation error (failed to marshal: %v)", err)
	}
	return string(b)
}

// StructValidator validates structs whose fields carry `validate` tags,
// including [UniqueTag], using go-playground/validator v10 with English
// messages.
type StructValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewStructValidator constructs a StructValidator whose `unique` tag is
// backed by rule.
func NewStructValidator(rule *UniqueColumnValidator) (*StructValidator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	if err := enTranslations.RegisterDefaultTranslations(validate, enTrans); err != nil {
		return nil, err
	}

	if err := RegisterUniqueRule(validate, enTrans, rule); err != nil {
		return nil, err
	}

	return &StructValidator{
		validate:   validate,
		translator: enTrans,
	}, nil
}

// Validate checks obj and, when fields are given, only the named Go fields.
//
// It returns nil when every rule passes, [FieldErrors] on violations, and the
// data-layer error when any existence check failed; in that last case no
// verdict is reported at all.
func (v *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	ctx, failures := withFailures(ctx)

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}

	if failed := failures.err(); failed != nil {
		return failed
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}

	var validateErrs validator.ValidationErrors
	if !errors.As(err, &validateErrs) {
		return err
	}

	fieldErrs := make(FieldErrors, len(validateErrs))
	for _, fe := range validateErrs {
		fieldErrs[toLowerSnake(fe.Field())] = fe.Translate(v.translator)
	}

	return fieldErrs
}
