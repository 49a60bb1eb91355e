// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-unique-keeper/internal/config"
	"github.com/MKhiriev/go-unique-keeper/internal/logger"
	"github.com/MKhiriev/go-unique-keeper/internal/validators"
	"github.com/MKhiriev/go-unique-keeper/models"
)

type uniquenessService struct {
	rule    *validators.UniqueColumnValidator
	checker validators.ExistenceChecker

	queryTimeout time.Duration

	logger *logger.Logger
}

// NewUniquenessService builds a [UniquenessService] on top of checker. Every
// check is bounded by cfg.QueryTimeout when it is positive.
func NewUniquenessService(checker validators.ExistenceChecker, cfg config.App, logger *logger.Logger) (UniquenessService, error) {
	rule, err := validators.NewUniqueColumnValidator(checker)
	if err != nil {
		return nil, err
	}

	return &uniquenessService{
		rule:         rule,
		checker:      checker,
		queryTimeout: cfg.QueryTimeout,
		logger:       logger,
	}, nil
}

func (s *uniquenessService) CheckUnique(ctx context.Context, request models.UniquenessRequest) (models.UniquenessResponse, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := s.withQueryTimeout(ctx)
	defer cancel()

	args := models.NewValidationArguments(request.Constraint())

	unique, err := s.rule.Validate(ctx, request.Value, args)
	if err != nil {
		log.Err(err).
			Str("func", "*uniquenessService.CheckUnique").
			Str("table", request.Table).
			Str("column", request.Column).
			Msg("uniqueness check failed")
		return models.UniquenessResponse{}, fmt.Errorf("error checking uniqueness: %w", err)
	}

	response := models.UniquenessResponse{Unique: unique}
	if !unique {
		response.Message, err = s.rule.DefaultMessage(args)
		if err != nil {
			return models.UniquenessResponse{}, err
		}
	}

	log.Debug().
		Str("func", "*uniquenessService.CheckUnique").
		Str("table", request.Table).
		Str("column", request.Column).
		Bool("unique", unique).
		Send()

	return response, nil
}

func (s *uniquenessService) Exists(ctx context.Context, request models.ExistenceRequest) (bool, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := s.withQueryTimeout(ctx)
	defer cancel()

	exists, err := s.checker.Exists(ctx, request.Table, request.Column, request.Value)
	if err != nil {
		log.Err(err).
			Str("func", "*uniquenessService.Exists").
			Str("table", request.Table).
			Str("column", request.Column).
			Msg("existence check failed")

		if ctx.Err() != nil {
			return false, fmt.Errorf("%w: %w", validators.ErrAborted, err)
		}
		return false, fmt.Errorf("error checking existence: %w", err)
	}

	return exists, nil
}

func (s *uniquenessService) withQueryTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}
