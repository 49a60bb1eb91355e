// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-unique-keeper/internal/app"
	"github.com/MKhiriev/go-unique-keeper/internal/config"
	"github.com/MKhiriev/go-unique-keeper/internal/logger"
	"github.com/MKhiriev/go-unique-keeper/internal/service"
	"github.com/MKhiriev/go-unique-keeper/internal/store"
	"github.com/MKhiriev/go-unique-keeper/internal/validators"
	"github.com/MKhiriev/go-unique-keeper/models"
)

func TestCheckUnique(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(h *testHandler)
		wantStatus int
		wantBody   string
	}{
		{
			name: "value is free",
			body: `{"table":"users","column":"login","value":"john"}`,
			setup: func(h *testHandler) {
				h.uniqueness.EXPECT().
					CheckUnique(gomock.Any(), models.UniquenessRequest{Table: "users", Column: "login", Value: "john"}).
					Return(models.UniquenessResponse{Unique: true}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"unique":true}`,
		},
		{
			name: "value is taken",
			body: `{"table":"users","value":"john"}`,
			setup: func(h *testHandler) {
				h.uniqueness.EXPECT().
					CheckUnique(gomock.Any(), models.UniquenessRequest{Table: "users", Value: "john"}).
					Return(models.UniquenessResponse{
						Message: `Value must be unique in the table "users" for column "columnName".`,
					}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"unique":false,"message":"Value must be unique in the table \"users\" for column \"columnName\"."}`,
		},
		{
			name:       "broken json",
			body:       `{"table":`,
			setup:      func(h *testHandler) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "invalid request",
			body: `{"value":"john"}`,
			setup: func(h *testHandler) {
				h.uniqueness.EXPECT().CheckUnique(gomock.Any(), gomock.Any()).
					Return(models.UniquenessResponse{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.FieldErrors{"table": "required"}))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown table",
			body: `{"table":"nope","value":1}`,
			setup: func(h *testHandler) {
				h.uniqueness.EXPECT().CheckUnique(gomock.Any(), gomock.Any()).
					Return(models.UniquenessResponse{}, fmt.Errorf("error checking uniqueness: %w", store.ErrUnknownTable))
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "timed out",
			body: `{"table":"users","value":1}`,
			setup: func(h *testHandler) {
				err := fmt.Errorf("%w: %w", validators.ErrAborted, fmt.Errorf("%w: %w", store.ErrExecutingQuery, context.DeadlineExceeded))
				h.uniqueness.EXPECT().CheckUnique(gomock.Any(), gomock.Any()).Return(models.UniquenessResponse{}, err)
			},
			wantStatus: http.StatusGatewayTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t)
			tt.setup(h)

			req := httptest.NewRequest(http.MethodPost, "/api/unique/check", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			h.Init().ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
				assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			}
		})
	}
}

func TestExists(t *testing.T) {
	h := newTestHandler(t)
	h.uniqueness.EXPECT().
		Exists(gomock.Any(), models.ExistenceRequest{Table: "users", Column: "email", Value: "a@b.c"}).
		Return(true, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/unique/exists",
		strings.NewReader(`{"table":"users","column":"email","value":"a@b.c"}`))
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"exists":true}`, rr.Body.String())
}

func TestExists_ServerErrorHidesDetails(t *testing.T) {
	h := newTestHandler(t)
	h.uniqueness.EXPECT().Exists(gomock.Any(), gomock.Any()).
		Return(false, fmt.Errorf("%w: password authentication failed for user \"admin\"", store.ErrExecutingQuery))

	req := httptest.NewRequest(http.MethodPost, "/api/unique/exists",
		strings.NewReader(`{"table":"users","column":"email","value":"x"}`))
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "password")
}

func TestExists_InvalidJSON(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/unique/exists", strings.NewReader("not json"))
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), app.MsgInvalidJSON)
}

func newWiredHandler(t *testing.T) *Handler {
	t.Helper()

	memory := store.NewMemoryStore()
	require.NoError(t, memory.Insert("users", "login", "john"))

	services, err := service.NewServices(
		&store.Storages{ExistenceRepository: memory},
		config.StructuredConfig{App: config.App{Version: "1.0.0"}},
		logger.Nop(),
	)
	require.NoError(t, err)

	return NewHandler(services, config.Server{RequestTimeout: time.Second}, logger.Nop())
}

func TestUniqueRoutes_CompositeValueIsBadRequest(t *testing.T) {
	router := newWiredHandler(t).Init()

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
	}{
		{name: "check scalar", path: "/api/unique/check", body: `{"table":"users","column":"login","value":"john"}`, wantStatus: http.StatusOK},
		{name: "check object", path: "/api/unique/check", body: `{"table":"users","column":"login","value":{"a":1}}`, wantStatus: http.StatusBadRequest},
		{name: "check array", path: "/api/unique/check", body: `{"table":"users","column":"login","value":[1,2]}`, wantStatus: http.StatusBadRequest},
		{name: "exists object", path: "/api/unique/exists", body: `{"table":"users","column":"login","value":{"a":1}}`, wantStatus: http.StatusBadRequest},
		{name: "exists array", path: "/api/unique/exists", body: `{"table":"users","column":"login","value":[1,2]}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusBadRequest {
				assert.Contains(t, rr.Body.String(), service.ErrUnsupportedValue.Error())
			}
		})
	}
}
