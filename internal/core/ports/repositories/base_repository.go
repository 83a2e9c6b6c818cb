package repositories

import (
	"context"
)

// StoreLifecycle is implemented by every record store backend.
type StoreLifecycle interface {
	// Ping reports whether the backing medium is reachable.
	Ping(ctx context.Context) error

	// Close releases connections or file handles.
	Close() error
}
