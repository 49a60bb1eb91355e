// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-unique-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UniquenessService answers uniqueness and existence questions about stored
// column values.
type UniquenessService interface {
	// CheckUnique reports whether request.Value is absent from the target
	// column and, when it is not, the violation message.
	CheckUnique(ctx context.Context, request models.UniquenessRequest) (models.UniquenessResponse, error)
	// Exists reports whether request.Value is present in the target column.
	Exists(ctx context.Context, request models.ExistenceRequest) (bool, error)
}

// AppInfoService exposes build and runtime information about the application.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// UniquenessServiceWrapper defines middleware composition for UniquenessService.
// Implementations wrap an existing UniquenessService to add behavior such as
// request validation.
type UniquenessServiceWrapper interface {
	Wrap(UniquenessService) UniquenessService
}
