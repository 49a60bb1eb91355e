// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"regexp"

	sq "github.com/Masterminds/squirrel"
)

var (
	// tableIdentifier accepts "table" and "schema.table".
	tableIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

	columnIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// checkIdentifiers rejects names that cannot be safely interpolated into SQL.
func checkIdentifiers(table, column string) error {
	if !tableIdentifier.MatchString(table) {
		return fmt.Errorf("%w: table %q", ErrInvalidIdentifier, table)
	}
	if !columnIdentifier.MatchString(column) {
		return fmt.Errorf("%w: column %q", ErrInvalidIdentifier, column)
	}
	return nil
}

// buildExistsQuery builds
//
//	SELECT EXISTS ( SELECT 1 FROM <table> WHERE <column> = $1 )
//
// with the dialect's placeholders. A nil value is compared with IS NULL.
// The value is bound as a single argument and never expanded, so slices and
// []byte are compared as scalars.
func buildExistsQuery(dialect Dialect, table, column string, value any) (string, []any, error) {
	if err := checkIdentifiers(table, column); err != nil {
		return "", nil, err
	}

	var predicate sq.Sqlizer
	if value == nil {
		predicate = sq.Expr(column + " IS NULL")
	} else {
		predicate = sq.Expr(column+" = ?", value)
	}

	query, args, err := sq.Select("1").
		Prefix("SELECT EXISTS (").
		From(table).
		Where(predicate).
		Suffix(")").
		PlaceholderFormat(dialect.placeholderFormat()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
