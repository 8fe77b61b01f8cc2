package store

import "errors"

var (
	// ErrNotFound keeps storage-level 404s consistent across the postgres and
	// in-memory implementations.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a unique constraint (email, phone) would
	// be violated.
	ErrDuplicate = errors.New("record already exists")
)
