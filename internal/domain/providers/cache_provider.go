package providers

import (
	"context"
	"time"
)

// CacheProvider defines the interface for caching operations
type CacheProvider interface {
	// Get retrieves a value; found is false on a miss, which is not an error
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Set stores a value with expiration
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes the given keys
	Delete(ctx context.Context, keys ...string) error
}
