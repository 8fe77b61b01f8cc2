// Package postgres implements the store interfaces on PostgreSQL via pgx.
// Referential rules (cascade, SET NULL) and the reports updated_at trigger
// live in the schema, not here; see internal/database/schema.sql.
package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/crash-ph/crash-server/internal/store"
)

// Store implements every interface in package store against one pool.
type Store struct {
	db *pgxpool.Pool
}

// New wraps a connection pool.
func New(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// PostgreSQL error codes.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// mapErrorNoRows is used after Exec calls, where pgx reports a missing row
// through the command tag rather than an error.
func mapErrorNoRows() error {
	return store.ErrNotFound
}

// mapError translates pgx errors into the store sentinels.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return store.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return store.ErrDuplicate
		case foreignKeyViolation:
			// A referenced row (report, office, admin) does not exist.
			return store.ErrNotFound
		}
	}
	return err
}
