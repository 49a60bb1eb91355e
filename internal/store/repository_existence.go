// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-unique-keeper/internal/logger"
)

// existenceRepository is the SQL implementation of [ExistenceRepository].
// It issues a single SELECT EXISTS per call and never writes.
type existenceRepository struct {
	*DB
	logger *logger.Logger
}

// NewExistenceRepository constructs an [ExistenceRepository] backed by db.
func NewExistenceRepository(db *DB, logger *logger.Logger) ExistenceRepository {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating existence repository")
	return &existenceRepository{
		DB:     db,
		logger: logger,
	}
}

// Exists reports whether any row of table has column equal to value.
//
// Error handling:
//   - malformed table / column → [ErrInvalidIdentifier], no query is sent;
//   - missing relation → [ErrUnknownTable] / [ErrUnknownColumn];
//   - any other failure, including cancellation → [ErrExecutingQuery]
//     wrapping the driver error (context errors stay matchable).
func (r *existenceRepository) Exists(ctx context.Context, table, column string, value any) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildExistsQuery(r.dialect, table, column, value)
	if err != nil {
		log.Err(err).
			Str("func", "existenceRepository.Exists").
			Str("table", table).
			Str("column", column).
			Msg("failed to create query")
		return false, err
	}

	var exists bool
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		event := log.Err(err).
			Str("func", "existenceRepository.Exists").
			Str("table", table).
			Str("column", column)
		if r.errorClassificator != nil {
			event = event.Stringer("classification", r.errorClassificator.Classify(err))
		}
		event.Msg("failed to execute existence query")

		return false, r.mapError(err)
	}

	log.Debug().
		Str("func", "existenceRepository.Exists").
		Str("table", table).
		Str("column", column).
		Bool("exists", exists).
		Send()

	return exists, nil
}

func (r *existenceRepository) mapError(err error) error {
	switch postgresError(err) {
	case pgerrcode.UndefinedTable:
		return fmt.Errorf("%w: %w", ErrUnknownTable, err)
	case pgerrcode.UndefinedColumn:
		return fmt.Errorf("%w: %w", ErrUnknownColumn, err)
	}

	if msg := sqliteError(err); msg != "" {
		switch {
		case strings.Contains(msg, "no such table"):
			return fmt.Errorf("%w: %w", ErrUnknownTable, err)
		case strings.Contains(msg, "no such column"):
			return fmt.Errorf("%w: %w", ErrUnknownColumn, err)
		}
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
