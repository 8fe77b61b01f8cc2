package services

import (
	"errors"
	"fmt"

	"github.com/crash-ph/crash-server/internal/store"
)

// Error taxonomy surfaced to handlers. Every service error wraps exactly one
// of these sentinels so the HTTP layer can map it to a status code.
var (
	// ErrValidation: malformed or missing field, out-of-enumeration value (400).
	ErrValidation = errors.New("validation error")
	// ErrUnauthorized: credentials match no account (401).
	ErrUnauthorized = errors.New("invalid credentials")
	// ErrNotFound: a referenced id does not exist (404).
	ErrNotFound = errors.New("not found")
	// ErrUpstream: an external collaborator (object store, maps) failed (502).
	ErrUpstream = errors.New("upstream failure")
)

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrValidation)
}

func notFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}

// fromStore rewraps storage sentinels into the service taxonomy; other errors
// pass through untouched (they become 500s).
func fromStore(err error, subject string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return notFoundf("%s", subject)
	case errors.Is(err, store.ErrDuplicate):
		return invalidf("%s already exists", subject)
	}
	return err
}
