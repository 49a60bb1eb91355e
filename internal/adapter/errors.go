// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrInvalidAddress = errors.New("invalid service address")

	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrUnprocessable       = errors.New("unknown table or column")
	ErrInternalServerError = errors.New("internal server error")
	ErrServerTimeout       = errors.New("service timed out")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)
