// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-unique-keeper/internal/config"
	"github.com/MKhiriev/go-unique-keeper/internal/logger"
)

// NewConnectSQLite opens the SQLite database at cfg.DSN, creating the file
// when it does not exist yet.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// every new connection to a private in-memory database starts empty
	if isSQLiteMemoryDSN(cfg.DSN) {
		conn.SetMaxOpenConns(1)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return &DB{
		DB:      conn,
		dialect: DialectSQLite,
		logger:  log,
	}, nil
}

func createLocalDBFileIfNotExists(dsn string) error {
	if isSQLiteMemoryDSN(dsn) {
		return nil
	}

	dbFile := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(dbFile, '?'); i >= 0 {
		dbFile = dbFile[:i]
	}

	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}

func isSQLiteMemoryDSN(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory") || strings.HasPrefix(dsn, "file::memory:")
}

// sqliteError returns the message of a SQLite driver error, or "" if err
// does not come from SQLite.
func sqliteError(err error) string {
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.Error()
	}

	return ""
}
