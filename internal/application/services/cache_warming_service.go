package services

import (
	"context"
	"fmt"

	"github.com/hotelreservation/backend/internal/domain/repositories"
	"github.com/hotelreservation/backend/internal/infrastructure/observability"
)

// CacheWarmingService preloads the room read cache. It reads through the
// cached repository, so every lookup leaves an entry behind.
type CacheWarmingService struct {
	rooms repositories.RoomRepository
}

// NewCacheWarmingService creates a new cache warming service
func NewCacheWarmingService(rooms repositories.RoomRepository) *CacheWarmingService {
	return &CacheWarmingService{rooms: rooms}
}

// WarmCache loads both room lists and every individual room. It returns the
// number of rooms warmed.
func (s *CacheWarmingService) WarmCache(ctx context.Context) (int, error) {
	logger := observability.LoggerFromContext(ctx)
	logger.Info().Msg("Starting room cache warming")

	if _, err := s.rooms.List(ctx, repositories.RoomFilter{AvailableOnly: true}); err != nil {
		return 0, fmt.Errorf("failed to warm available rooms: %w", err)
	}

	rooms, err := s.rooms.List(ctx, repositories.RoomFilter{})
	if err != nil {
		return 0, fmt.Errorf("failed to warm room list: %w", err)
	}

	warmed := 0
	for _, room := range rooms {
		if ctx.Err() != nil {
			return warmed, ctx.Err()
		}
		if _, err := s.rooms.GetByID(ctx, room.ID); err != nil {
			logger.Warn().Err(err).Int64("room_id", room.ID).Msg("Failed to warm room")
			continue
		}
		warmed++
	}

	logger.Info().Int("rooms", warmed).Msg("Room cache warming completed")
	return warmed, nil
}
