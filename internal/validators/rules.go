// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"unicode"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-unique-keeper/models"
)

// UniqueTag is the struct tag bound by [RegisterUniqueRule].
//
// Accepted forms:
//
//	`validate:"unique=users"`            column = snake_case field name
//	`validate:"unique=users.login"`      explicit column
//	`validate:"unique=auth.users.login"` schema-qualified table, column required
const UniqueTag = "unique"

// uniqueTranslation mirrors uniqueMessageFormat for universal-translator.
const uniqueTranslation = `Value must be unique in the table "{0}" for column "{1}".`

var ErrNilRule = errors.New("unique column rule is required")

// RegisterUniqueRule binds [UniqueTag] on validate to rule. When trans is not
// nil an English message equal to [UniqueColumnValidator.DefaultMessage] is
// registered as well.
//
// A go-playground rule can only answer true or false, so a failed existence
// check is reported as a violation. Callers that must tell the two apart
// should validate through [StructValidator], which surfaces the data-layer
// error instead.
func RegisterUniqueRule(validate *validator.Validate, trans ut.Translator, rule *UniqueColumnValidator) error {
	if rule == nil {
		return ErrNilRule
	}

	err := validate.RegisterValidationCtx(UniqueTag, func(ctx context.Context, fl validator.FieldLevel) bool {
		c := constraintFromTag(fl.Param(), fl.StructFieldName())
		args := models.ValidationArguments{
			Constraints: []models.Constraint{c},
			Property:    fl.StructFieldName(),
		}

		unique, err := rule.Validate(ctx, fieldValue(fl.Field()), args)
		if err != nil {
			recordFailure(ctx, err)
			return false
		}

		return unique
	}, true)
	if err != nil {
		return err
	}

	if trans == nil {
		return nil
	}

	return validate.RegisterTranslation(UniqueTag, trans,
		func(ut ut.Translator) error {
			return ut.Add(UniqueTag, uniqueTranslation, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			c := constraintFromTag(fe.Param(), fe.StructField())
			t, err := ut.T(fe.Tag(), c.Table, c.BoundColumn())
			if err != nil {
				return UniqueMessage(c)
			}
			return t
		},
	)
}

// constraintFromTag splits a tag parameter into table and column. The last
// dot separates the column; without a dot the column is derived from field.
func constraintFromTag(param, field string) models.Constraint {
	param = strings.TrimSpace(param)

	i := strings.LastIndex(param, ".")
	if i < 0 {
		return models.Constraint{Table: param, Column: toLowerSnake(field)}
	}

	return models.Constraint{Table: param[:i], Column: param[i+1:]}
}

// fieldValue unwraps pointers and interfaces; nil becomes an untyped nil so
// data layers see a plain NULL.
func fieldValue(v reflect.Value) any {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	if !v.IsValid() || !v.CanInterface() {
		return nil
	}

	return v.Interface()
}

// toLowerSnake converts a Go identifier to snake_case, keeping initialisms
// together (UserID -> user_id, HTTPServer -> http_server).
func toLowerSnake(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s) + 4)

	runes := []rune(s)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			var next rune
			if i+1 < len(runes) {
				next = runes[i+1]
			}

			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				b.WriteRune('_')
			} else if unicode.IsUpper(prev) && next != 0 && unicode.IsLower(next) {
				b.WriteRune('_')
			}
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

type failuresCtxKey struct{}

// checkFailures collects data-layer errors raised while go-playground walks
// a struct.
type checkFailures struct {
	mu   sync.Mutex
	errs []error
}

func (f *checkFailures) add(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs = append(f.errs, err)
}

func (f *checkFailures) err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return errors.Join(f.errs...)
}

func withFailures(ctx context.Context) (context.Context, *checkFailures) {
	f := &checkFailures{}
	return context.WithValue(ctx, failuresCtxKey{}, f), f
}

func recordFailure(ctx context.Context, err error) {
	if f, ok := ctx.Value(failuresCtxKey{}).(*checkFailures); ok {
		f.add(err)
	}
}
