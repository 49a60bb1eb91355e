// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-unique-keeper/internal/config"
	"github.com/MKhiriev/go-unique-keeper/internal/logger"
	"github.com/MKhiriev/go-unique-keeper/internal/mock"
	"github.com/MKhiriev/go-unique-keeper/internal/service"
)

type testHandler struct {
	*Handler
	uniqueness *mock.MockUniquenessService
	appInfo    *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) *testHandler {
	t.Helper()
	ctrl := gomock.NewController(t)

	uniqueness := mock.NewMockUniquenessService(ctrl)
	appInfo := mock.NewMockAppInfoService(ctrl)

	h := NewHandler(&service.Services{
		UniquenessService: uniqueness,
		AppInfoService:    appInfo,
	}, config.Server{RequestTimeout: time.Second}, logger.Nop())

	return &testHandler{Handler: h, uniqueness: uniqueness, appInfo: appInfo}
}

func TestNewHandler(t *testing.T) {
	h := NewHandler(nil, config.Server{RequestTimeout: 3 * time.Second}, logger.Nop())

	assert.Nil(t, h.services)
	assert.Equal(t, 3*time.Second, h.requestTimeout)
	assert.NotNil(t, h.logger)
}
