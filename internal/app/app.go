// Package app wires configuration, storage and services into the pieces the
// HTTP binaries serve.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hotelreservation/backend/internal/adapters/cache"
	"github.com/hotelreservation/backend/internal/adapters/database"
	"github.com/hotelreservation/backend/internal/application/services"
	"github.com/hotelreservation/backend/internal/domain/repositories"
	"github.com/hotelreservation/backend/internal/infrastructure/clients/postgres"
	"github.com/hotelreservation/backend/internal/infrastructure/clients/redis"
	"github.com/hotelreservation/backend/internal/infrastructure/observability"
	"github.com/hotelreservation/backend/pkg/config"
)

// App holds the services shared by the REST and GraphQL servers
type App struct {
	Booking *services.BookingService
	Catalog *services.CatalogService
	Metrics *observability.Metrics

	Clients repositories.ClientRepository
	Rooms   repositories.RoomRepository

	closers []func() error
}

// New connects to PostgreSQL (and Redis when enabled), applies migrations
// when configured and builds the services. Redis failures are logged and the
// room cache is skipped.
func New(ctx context.Context, cfg *config.Config, metrics *observability.Metrics) (*App, error) {
	a := &App{Metrics: metrics}

	pgClient, err := postgres.NewClient(ctx, &cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize PostgreSQL client: %w", err)
	}
	a.closers = append(a.closers, pgClient.Close)
	log.Info().Str("host", cfg.Database.Host).Msg("PostgreSQL client initialized")

	if cfg.Database.AutoMigrate {
		if err := pgClient.Migrate(ctx); err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	reservationAdapter := database.NewReservationAdapter(pgClient)
	a.Clients = database.NewClientAdapter(pgClient)
	a.Rooms = database.NewRoomAdapter(pgClient)

	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(ctx, &cfg.Redis)
		if err != nil {
			// The API works without caching.
			log.Warn().Err(err).Msg("Redis unavailable, room cache disabled")
		} else {
			a.closers = append(a.closers, redisClient.Close)
			a.Rooms = database.NewCachedRoomAdapter(
				a.Rooms,
				cache.NewRedisAdapter(redisClient, cfg.OTEL.ServiceName),
				metrics,
				time.Duration(cfg.Cache.RoomTTLSeconds)*time.Second,
				time.Duration(cfg.Cache.RoomListTTLSeconds)*time.Second,
			)
			log.Info().Msg("Room adapter wrapped with Redis cache")

			if cfg.Cache.WarmOnStart {
				go warmRoomCache(a.Rooms)
			}
		}
	}

	a.Booking = services.NewBookingService(reservationAdapter)
	a.Catalog = services.NewCatalogService(a.Clients, a.Rooms, reservationAdapter)
	return a, nil
}

func warmRoomCache(rooms repositories.RoomRepository) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := services.NewCacheWarmingService(rooms).WarmCache(ctx); err != nil {
		log.Warn().Err(err).Msg("Room cache warming failed")
	}
}

// Close releases connections in reverse order of acquisition
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			log.Error().Err(err).Msg("Error closing connection")
		}
	}
	a.closers = nil
}
