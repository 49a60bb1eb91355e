// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-unique-keeper/internal/service"
	"github.com/MKhiriev/go-unique-keeper/internal/store"
	"github.com/MKhiriev/go-unique-keeper/internal/validators"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatuses is matched top to bottom: a cancelled query wraps both
// validators.ErrAborted and store.ErrExecutingQuery and must map to 504.
var errorStatuses = []errorStatus{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{validators.ErrNoConstraints, http.StatusBadRequest},
	{store.ErrInvalidIdentifier, http.StatusBadRequest},

	{store.ErrUnknownTable, http.StatusUnprocessableEntity},
	{store.ErrUnknownColumn, http.StatusUnprocessableEntity},

	{validators.ErrAborted, http.StatusGatewayTimeout},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, es := range errorStatuses {
		if errors.Is(err, es.err) {
			return es.status
		}
	}
	return http.StatusInternalServerError
}

// writeError responds with the status mapped from err. Client errors carry
// the error text; server errors only the status text.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	msg := err.Error()
	if status >= http.StatusInternalServerError {
		msg = http.StatusText(status)
	}

	http.Error(w, msg, status)
}
