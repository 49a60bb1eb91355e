// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildExistsQuery_Postgres(t *testing.T) {
	query, args, err := buildExistsQuery(DialectPostgres, "users", "login", "john")
	require.NoError(t, err)

	assert.Equal(t, "SELECT EXISTS ( SELECT 1 FROM users WHERE login = $1 )", query)
	require.Len(t, args, 1)
	assert.Equal(t, "john", args[0])
}

func Test_buildExistsQuery_SQLitePlaceholders(t *testing.T) {
	query, args, err := buildExistsQuery(DialectSQLite, "users", "login", "john")
	require.NoError(t, err)

	assert.Contains(t, query, "login = ?")
	assert.NotContains(t, query, "$1")
	assert.Equal(t, []any{"john"}, args)
}

func Test_buildExistsQuery_NilValue(t *testing.T) {
	query, args, err := buildExistsQuery(DialectPostgres, "users", "deleted_at", nil)
	require.NoError(t, err)

	assert.Contains(t, query, "deleted_at IS NULL")
	assert.Empty(t, args)
}

func Test_buildExistsQuery_SliceIsNotExpanded(t *testing.T) {
	value := []byte("raw")

	query, args, err := buildExistsQuery(DialectPostgres, "blobs", "payload", value)
	require.NoError(t, err)

	assert.NotContains(t, strings.ToUpper(query), " IN ")
	require.Len(t, args, 1)
	assert.Equal(t, value, args[0])
}

func Test_buildExistsQuery_SchemaQualifiedTable(t *testing.T) {
	query, _, err := buildExistsQuery(DialectPostgres, "auth.users", "email", "a@b.c")
	require.NoError(t, err)
	assert.Contains(t, query, "FROM auth.users")
}

func Test_buildExistsQuery_InvalidIdentifiers(t *testing.T) {
	tests := []struct {
		name   string
		table  string
		column string
	}{
		{name: "empty table", table: "", column: "login"},
		{name: "empty column", table: "users", column: ""},
		{name: "injection in table", table: "users; DROP TABLE users", column: "login"},
		{name: "injection in column", table: "users", column: "login = login OR 1"},
		{name: "quoted table", table: `"users"`, column: "login"},
		{name: "leading digit", table: "1users", column: "login"},
		{name: "qualified column", table: "users", column: "users.login"},
		{name: "three part table", table: "db.auth.users", column: "login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildExistsQuery(DialectPostgres, tt.table, tt.column, "v")
			assert.ErrorIs(t, err, ErrInvalidIdentifier)
			assert.Empty(t, query)
			assert.Nil(t, args)
		})
	}
}
