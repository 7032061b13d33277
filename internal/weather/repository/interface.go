package repository

import (
	"context"
	"time"
)

// Cache stores rendered weather replies keyed by city and units.
type Cache interface {
	// Get returns the cached reply and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores a reply for ttl. A zero ttl uses the backend default.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
