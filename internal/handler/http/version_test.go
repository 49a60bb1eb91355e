// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion(t *testing.T) {
	h := newTestHandler(t)
	h.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1.2.3")

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "v1.2.3", rr.Body.String())
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
}

func TestGetServerVersion_WrongMethod(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/version/", nil)
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
