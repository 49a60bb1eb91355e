// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the HTTP handlers and
// middleware, so the API answers with the same wording everywhere.
package app

const (
	// MsgInvalidJSON is returned when a request body is not valid JSON for
	// the endpoint.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidGZip is returned when a body declared as gzip cannot be
	// inflated.
	MsgInvalidGZip = "Invalid gzip data"
)
