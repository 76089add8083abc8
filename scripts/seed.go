package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/hotelreservation/backend/internal/adapters/database"
	"github.com/hotelreservation/backend/internal/domain/entities"
	"github.com/hotelreservation/backend/internal/domain/repositories"
	"github.com/hotelreservation/backend/internal/infrastructure/clients/postgres"
	"github.com/hotelreservation/backend/internal/infrastructure/observability"
	"github.com/hotelreservation/backend/pkg/config"
)

func strPtr(s string) *string { return &s }

var seedRooms = []*entities.Room{
	{RoomNumber: "101", RoomType: entities.RoomTypeSingle, PricePerNight: decimal.RequireFromString("89.00"), Capacity: 1,
		Description: strPtr("Cozy single room with city view"), Amenities: []string{"WiFi", "TV", "Air Conditioning"}, IsAvailable: true},
	{RoomNumber: "102", RoomType: entities.RoomTypeSingle, PricePerNight: decimal.RequireFromString("89.00"), Capacity: 1,
		Amenities: []string{"WiFi", "TV"}, IsAvailable: true},
	{RoomNumber: "201", RoomType: entities.RoomTypeDouble, PricePerNight: decimal.RequireFromString("129.00"), Capacity: 2,
		Description: strPtr("Double room with queen bed"), Amenities: []string{"WiFi", "TV", "Mini Bar"}, IsAvailable: true},
	{RoomNumber: "202", RoomType: entities.RoomTypeDouble, PricePerNight: decimal.RequireFromString("139.00"), Capacity: 2,
		Amenities: []string{"WiFi", "TV", "Balcony"}, IsAvailable: false},
	{RoomNumber: "301", RoomType: entities.RoomTypeSuite, PricePerNight: decimal.RequireFromString("249.00"), Capacity: 4,
		Description: strPtr("Suite with separate living area"), Amenities: []string{"WiFi", "TV", "Mini Bar", "Jacuzzi"}, IsAvailable: true},
	{RoomNumber: "401", RoomType: entities.RoomTypeDeluxe, PricePerNight: decimal.RequireFromString("399.00"), Capacity: 4,
		Description: strPtr("Top floor deluxe room with panoramic view"), Amenities: []string{"WiFi", "TV", "Mini Bar", "Jacuzzi", "Butler Service"}, IsAvailable: true},
}

var seedClients = []*entities.Client{
	{FirstName: "John", LastName: "Doe", Email: "john.doe@example.com", Phone: strPtr("+1-555-0101"), Address: strPtr("123 Main St, Springfield")},
	{FirstName: "Jane", LastName: "Smith", Email: "jane.smith@example.com", Phone: strPtr("+1-555-0102")},
	{FirstName: "Carlos", LastName: "Garcia", Email: "carlos.garcia@example.com"},
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	observability.InitLogger("seed", cfg.Env)

	ctx := context.Background()

	pgClient, err := postgres.NewClient(ctx, &cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to DB")
	}
	defer pgClient.Close()

	if err := pgClient.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply migrations")
	}

	if os.Getenv("RESET_DB") == "true" {
		log.Info().Msg("RESET_DB=true detected, truncating tables before seeding")
		if _, err := pgClient.DB().ExecContext(ctx,
			`TRUNCATE TABLE reservations, rooms, clients RESTART IDENTITY CASCADE`); err != nil {
			log.Fatal().Err(err).Msg("Failed to truncate tables")
		}
	}

	rooms := database.NewRoomAdapter(pgClient)
	clients := database.NewClientAdapter(pgClient)

	existing, err := rooms.List(ctx, repositories.RoomFilter{})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to list rooms")
	}
	if len(existing) > 0 {
		log.Info().Int("rooms", len(existing)).Msg("Database already seeded, set RESET_DB=true to reseed")
		return
	}

	for _, room := range seedRooms {
		if err := rooms.Create(ctx, room); err != nil {
			log.Fatal().Err(err).Str("room_number", room.RoomNumber).Msg("Failed to create room")
		}
	}
	for _, client := range seedClients {
		if err := clients.Create(ctx, client); err != nil {
			log.Fatal().Err(err).Str("email", client.Email).Msg("Failed to create client")
		}
	}

	log.Info().
		Int("rooms", len(seedRooms)).
		Int("clients", len(seedClients)).
		Msg("Seeding completed")
}
