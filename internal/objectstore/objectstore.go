// Package objectstore abstracts the external bucket that holds report media.
// The binary bytes never touch the database; only the public URL returned by
// Put is persisted.
package objectstore

import "context"

// ObjectStore is the capability the media service depends on. Put stores the
// bytes under key and returns a publicly resolvable URL. A failed Put must
// leave no retrievable object behind from the caller's perspective.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
