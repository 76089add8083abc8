package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hotelreservation/backend/internal/domain/providers"
	redisclient "github.com/hotelreservation/backend/internal/infrastructure/clients/redis"
)

// RedisAdapter implements the CacheProvider interface using Redis
type RedisAdapter struct {
	client    *redisclient.Client
	keyPrefix string
}

// NewRedisAdapter creates a new Redis cache adapter. keyPrefix namespaces
// every key so several deployments can share one Redis database.
func NewRedisAdapter(client *redisclient.Client, keyPrefix string) providers.CacheProvider {
	return &RedisAdapter{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

func (a *RedisAdapter) key(k string) string {
	if a.keyPrefix == "" {
		return k
	}
	return a.keyPrefix + ":" + k
}

// Get retrieves a value from cache
func (a *RedisAdapter) Get(ctx context.Context, key string) ([]byte, bool, error) {
	result, err := a.client.Client().Get(ctx, a.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get %s from cache: %w", key, err)
	}
	return result, true, nil
}

// Set stores a value in cache with expiration
func (a *RedisAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := a.client.Client().Set(ctx, a.key(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s in cache: %w", key, err)
	}
	return nil
}

// Delete removes values from cache
func (a *RedisAdapter) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = a.key(k)
	}
	if err := a.client.Client().Del(ctx, prefixed...).Err(); err != nil {
		return fmt.Errorf("failed to delete from cache: %w", err)
	}
	return nil
}
