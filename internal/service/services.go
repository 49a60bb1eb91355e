// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-unique-keeper/internal/config"
	"github.com/MKhiriev/go-unique-keeper/internal/logger"
	"github.com/MKhiriev/go-unique-keeper/internal/store"
	"github.com/MKhiriev/go-unique-keeper/internal/validators"
)

type Services struct {
	UniquenessService UniquenessService
	AppInfoService    AppInfoService
}

// NewServices wires the services on top of storages. Incoming uniqueness
// requests are validated before any query is issued.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	uniqueness, err := NewUniquenessService(storages.ExistenceRepository, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating uniqueness service: %w", err)
	}

	rule, err := validators.NewUniqueColumnValidator(storages.ExistenceRepository)
	if err != nil {
		return nil, fmt.Errorf("error creating uniqueness rule: %w", err)
	}
	requestValidator, err := validators.NewStructValidator(rule)
	if err != nil {
		return nil, fmt.Errorf("error creating request validator: %w", err)
	}
	validation, err := NewUniquenessValidationService(requestValidator)
	if err != nil {
		return nil, err
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		UniquenessService: validation.Wrap(uniqueness),
		AppInfoService:    appInfo,
	}, nil
}
