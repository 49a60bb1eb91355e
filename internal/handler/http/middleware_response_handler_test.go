// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResponseWriter(rr *httptest.ResponseRecorder) *responseWriter {
	return &responseWriter{ResponseWriter: rr}
}

func TestResponseWriter_WriteHeader_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		statusCodes    []int
		expectedStatus int
	}{
		{name: "200 OK", statusCodes: []int{http.StatusOK}, expectedStatus: http.StatusOK},
		{name: "400 Bad Request", statusCodes: []int{http.StatusBadRequest}, expectedStatus: http.StatusBadRequest},
		{name: "504 Gateway Timeout", statusCodes: []int{http.StatusGatewayTimeout}, expectedStatus: http.StatusGatewayTimeout},
		{name: "double call, first wins", statusCodes: []int{http.StatusAccepted, http.StatusBadRequest}, expectedStatus: http.StatusAccepted},
		{name: "triple call, first wins", statusCodes: []int{http.StatusOK, http.StatusCreated, http.StatusNotFound}, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := newResponseWriter(rr)

			for _, code := range tt.statusCodes {
				w.WriteHeader(code)
			}

			assert.Equal(t, tt.expectedStatus, w.status)
			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.True(t, w.wroteHeader)
		})
	}
}

func TestResponseWriter_Write(t *testing.T) {
	tests := []struct {
		name         string
		writes       [][]byte
		explicitCode int
		wantStatus   int
		wantSize     int
	}{
		{name: "single write, implicit 200", writes: [][]byte{[]byte("OK")}, wantStatus: http.StatusOK, wantSize: 2},
		{name: "multiple writes accumulate size", writes: [][]byte{[]byte("foo"), []byte("bar"), []byte("baz")}, wantStatus: http.StatusOK, wantSize: 9},
		{name: "explicit 422, then write", writes: [][]byte{[]byte("unknown table")}, explicitCode: http.StatusUnprocessableEntity, wantStatus: http.StatusUnprocessableEntity, wantSize: 13},
		{name: "empty write", writes: [][]byte{{}}, wantStatus: http.StatusOK, wantSize: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := newResponseWriter(rr)

			if tt.explicitCode != 0 {
				w.WriteHeader(tt.explicitCode)
			}

			for _, data := range tt.writes {
				_, err := w.Write(data)
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantStatus, w.status)
			assert.Equal(t, tt.wantSize, w.size)
			assert.Equal(t, tt.wantSize, rr.Body.Len())
		})
	}
}

func TestResponseWriter_StatusOrOK(t *testing.T) {
	w := newResponseWriter(httptest.NewRecorder())
	assert.Equal(t, http.StatusOK, w.statusOrOK())

	w.WriteHeader(http.StatusBadRequest)
	assert.Equal(t, http.StatusBadRequest, w.statusOrOK())
}

func TestResponseWriter_ProxiesHeadersToUnderlying(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.Header().Set("X-Trace-ID", "abc")
	w.WriteHeader(http.StatusTeapot)

	assert.Equal(t, "abc", rr.Header().Get("X-Trace-ID"))
	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Same(t, rr, w.Unwrap())
}
