// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"reflect"
	"sync"
)

type memoryColumn struct {
	table  string
	column string
}

// MemoryStore is an in-process [ExistenceRepository] holding column values
// in maps. Values of the same type are compared with == when both are
// comparable at run time and with reflect.DeepEqual otherwise; no
// normalization is applied, so int64(1) and float64(1) are different values.
type MemoryStore struct {
	mu   sync.RWMutex
	rows map[memoryColumn][]any
}

// NewMemoryStore constructs an empty [MemoryStore].
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: make(map[memoryColumn][]any)}
}

// Insert stores values in table.column. Duplicates are kept, as a table
// without a unique index would.
func (s *MemoryStore) Insert(table, column string, values ...any) error {
	if err := checkIdentifiers(table, column); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := memoryColumn{table: table, column: column}
	s.rows[key] = append(s.rows[key], values...)
	return nil
}

// Exists implements [ExistenceRepository].
func (s *MemoryStore) Exists(ctx context.Context, table, column string, value any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if err := checkIdentifiers(table, column); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, stored := range s.rows[memoryColumn{table: table, column: column}] {
		if equalValues(stored, value) {
			return true, nil
		}
	}

	return false, nil
}

func equalValues(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	// Type.Comparable is not enough: an interface field holding a slice
	// makes == panic.
	if va.Comparable() && vb.Comparable() {
		return a == b
	}

	return reflect.DeepEqual(a, b)
}
