// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-unique-keeper/internal/config"
	"github.com/MKhiriev/go-unique-keeper/internal/logger"
)

// Storages groups the repositories built on one database connection.
type Storages struct {
	ExistenceRepository ExistenceRepository

	db *DB
}

// NewStorages connects to the database selected by cfg.DB.Driver and builds
// the repositories on top of it. The memory driver starts with no rows and
// opens no connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case config.DriverMemory:
		log.Warn().Str("func", "NewStorages").Msg("using in-memory storage, every value is unique")
		return &Storages{ExistenceRepository: NewMemoryStore()}, nil
	case config.DriverPostgres, "":
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	return &Storages{
		ExistenceRepository: NewExistenceRepository(db, log),
		db:                  db,
	}, nil
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
