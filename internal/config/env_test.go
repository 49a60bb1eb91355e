// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION":       "1.2.3",
		"APP_QUERY_TIMEOUT": "2s",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DRIVER":       "sqlite",
		"STORAGE_DB_DATABASE_URI": "file:unique.db",

		"ADAPTER_ADDRESS":         "http://unique.local",
		"ADAPTER_REQUEST_TIMEOUT": "5s",

		"CHECK_TABLE":  "users",
		"CHECK_COLUMN": "login",
		"CHECK_VALUE":  "john",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, 2*time.Second, cfg.App.QueryTimeout)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "file:unique.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "http://unique.local", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, Check{Table: "users", Column: "login", Value: "john"}, cfg.Check)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"STORAGE_DB_DATABASE_URI": "postgres://localhost/testdb",
		"SERVER_ADDRESS":          "localhost:8080",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/testdb", cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.Storage.DB.Driver)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Check{}, cfg.Check)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"APP_QUERY_TIMEOUT": "invalid_duration",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"milliseconds", "250ms", 250 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{
				"SERVER_REQUEST_TIMEOUT": tt.envValue,
			})

			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Server.RequestTimeout)
		})
	}
}

// Helpers

var configEnvKeys = []string{
	"CONFIG",

	"APP_VERSION",
	"APP_QUERY_TIMEOUT",

	"SERVER_ADDRESS",
	"SERVER_REQUEST_TIMEOUT",

	"STORAGE_DB_DRIVER",
	"STORAGE_DB_DATABASE_URI",

	"ADAPTER_ADDRESS",
	"ADAPTER_REQUEST_TIMEOUT",

	"CHECK_TABLE",
	"CHECK_COLUMN",
	"CHECK_VALUE",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		if old, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { _ = os.Setenv(k, old) })
		}
		_ = os.Unsetenv(k)
	}
}
