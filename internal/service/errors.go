// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrNilValidator          = errors.New("request validator is required")
	ErrUnsupportedValue      = errors.New("value must be a string, number, boolean or null")
)
