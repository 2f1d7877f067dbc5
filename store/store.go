// Copyright (c) 2025 Pollhive Authors.
// Licensed under the MIT License; see LICENSE.

package store

import (
	"database/sql"
	"strings"
)

// Store is the persistence layer for users, sessions, polls, and votes.
// All methods speak plain SQL through database/sql so the same code
// runs on PostgreSQL and SQLite.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for schema setup and tests.
func (s *Store) DB() *sql.DB {
	return s.db
}

// isUniqueViolation reports whether an error is a unique-constraint
// failure. Matched by message because database/sql drivers expose no
// common error type: lib/pq says "duplicate key value violates unique
// constraint", modernc sqlite says "UNIQUE constraint failed".
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
