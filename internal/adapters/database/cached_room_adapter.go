package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hotelreservation/backend/internal/domain/entities"
	"github.com/hotelreservation/backend/internal/domain/providers"
	"github.com/hotelreservation/backend/internal/domain/repositories"
	"github.com/hotelreservation/backend/internal/infrastructure/observability"
)

const roomCacheFamily = "room"

// CachedRoomAdapter wraps a RoomRepository with a read-through cache.
// Booking never reads through it: the reservation store locks the live row.
type CachedRoomAdapter struct {
	adapter repositories.RoomRepository
	cache   providers.CacheProvider
	metrics *observability.Metrics
	roomTTL time.Duration
	listTTL time.Duration
}

// NewCachedRoomAdapter creates a new cached room adapter
func NewCachedRoomAdapter(adapter repositories.RoomRepository, cache providers.CacheProvider, metrics *observability.Metrics, roomTTL, listTTL time.Duration) repositories.RoomRepository {
	return &CachedRoomAdapter{
		adapter: adapter,
		cache:   cache,
		metrics: metrics,
		roomTTL: roomTTL,
		listTTL: listTTL,
	}
}

func roomCacheKey(id int64) string {
	return fmt.Sprintf("room:%d", id)
}

func roomsListCacheKey(filter repositories.RoomFilter) string {
	if filter.AvailableOnly {
		return "rooms:list:available"
	}
	return "rooms:list:all"
}

// GetByID retrieves a room by ID with caching
func (a *CachedRoomAdapter) GetByID(ctx context.Context, id int64) (*entities.Room, error) {
	key := roomCacheKey(id)

	var room entities.Room
	if a.lookup(ctx, key, &room) {
		return &room, nil
	}

	found, err := a.adapter.GetByID(ctx, id)
	if err != nil || found == nil {
		return found, err
	}

	a.store(ctx, key, found, a.roomTTL)
	return found, nil
}

// List retrieves rooms with caching
func (a *CachedRoomAdapter) List(ctx context.Context, filter repositories.RoomFilter) ([]*entities.Room, error) {
	key := roomsListCacheKey(filter)

	var rooms []*entities.Room
	if a.lookup(ctx, key, &rooms) {
		return rooms, nil
	}

	rooms, err := a.adapter.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	a.store(ctx, key, rooms, a.listTTL)
	return rooms, nil
}

// Create creates a room and invalidates the list caches
func (a *CachedRoomAdapter) Create(ctx context.Context, room *entities.Room) error {
	if err := a.adapter.Create(ctx, room); err != nil {
		return err
	}

	keys := []string{
		roomsListCacheKey(repositories.RoomFilter{}),
		roomsListCacheKey(repositories.RoomFilter{AvailableOnly: true}),
		roomCacheKey(room.ID),
	}
	if err := a.cache.Delete(ctx, keys...); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Int64("room_id", room.ID).Msg("Failed to invalidate room caches")
	}
	return nil
}

// lookup decodes a cached value into dest and reports whether it was usable.
// Cache errors degrade to a miss.
func (a *CachedRoomAdapter) lookup(ctx context.Context, key string, dest any) bool {
	data, found, err := a.cache.Get(ctx, key)
	if err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("key", key).Msg("Room cache read failed")
	}
	if err != nil || !found {
		observability.RecordCacheMiss(ctx, a.metrics, roomCacheFamily)
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("key", key).Msg("Failed to unmarshal cached room data")
		observability.RecordCacheMiss(ctx, a.metrics, roomCacheFamily)
		return false
	}

	observability.RecordCacheHit(ctx, a.metrics, roomCacheFamily)
	return true
}

func (a *CachedRoomAdapter) store(ctx context.Context, key string, value any, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("key", key).Msg("Failed to marshal room data for cache")
		return
	}
	if err := a.cache.Set(ctx, key, data, ttl); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("key", key).Msg("Failed to cache room data")
	}
}
