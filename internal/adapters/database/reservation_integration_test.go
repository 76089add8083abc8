//go:build integration

package database_test

import (
	"context"
	"errors"
	"os"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/hotelreservation/backend/internal/adapters/database"
	"github.com/hotelreservation/backend/internal/application/services"
	"github.com/hotelreservation/backend/internal/domain/entities"
	"github.com/hotelreservation/backend/internal/domain/repositories"
	"github.com/hotelreservation/backend/internal/infrastructure/clients/postgres"
	"github.com/hotelreservation/backend/pkg/config"
	apperrors "github.com/hotelreservation/backend/pkg/errors"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// ReservationIntegrationTestSuite runs the booking flow against PostgreSQL
type ReservationIntegrationTestSuite struct {
	suite.Suite
	client  *postgres.Client
	rooms   repositories.RoomRepository
	clients repositories.ClientRepository
	booking *services.BookingService
}

func (s *ReservationIntegrationTestSuite) SetupSuite() {
	cfg := &config.DatabaseConfig{
		Host:            getEnv("TEST_DB_HOST", "localhost"),
		Port:            getEnvAsInt("TEST_DB_PORT", 5432),
		User:            getEnv("TEST_DB_USER", "postgres"),
		Password:        getEnv("TEST_DB_PASSWORD", "postgres"),
		Database:        getEnv("TEST_DB_NAME", "hotel_reservation_test"),
		SSLMode:         getEnv("TEST_DB_SSLMODE", "disable"),
		MaxOpenConns:    10,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
	}

	ctx := context.Background()
	client, err := postgres.NewClient(ctx, cfg)
	require.NoError(s.T(), err, "Failed to create postgres client")
	require.NoError(s.T(), client.Migrate(ctx))

	s.client = client
	s.rooms = database.NewRoomAdapter(client)
	s.clients = database.NewClientAdapter(client)
	s.booking = services.NewBookingService(database.NewReservationAdapter(client))
}

func (s *ReservationIntegrationTestSuite) TearDownSuite() {
	if s.client != nil {
		s.client.Close()
	}
}

func (s *ReservationIntegrationTestSuite) SetupTest() {
	_, err := s.client.DB().Exec(`TRUNCATE TABLE reservations, rooms, clients RESTART IDENTITY CASCADE`)
	require.NoError(s.T(), err)
}

func (s *ReservationIntegrationTestSuite) seed() (*entities.Client, *entities.Room) {
	ctx := context.Background()
	client := &entities.Client{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
	require.NoError(s.T(), s.clients.Create(ctx, client))

	room := &entities.Room{
		RoomNumber:    "501",
		RoomType:      entities.RoomTypeDouble,
		PricePerNight: decimal.RequireFromString("149.99"),
		Capacity:      2,
		Amenities:     []string{"WiFi"},
		IsAvailable:   true,
	}
	require.NoError(s.T(), s.rooms.Create(ctx, room))
	return client, room
}

func day(s string) time.Time {
	t, _ := time.Parse(entities.DateLayout, s)
	return t
}

func (s *ReservationIntegrationTestSuite) TestCreateAndRead() {
	ctx := context.Background()
	client, room := s.seed()

	created, err := s.booking.CreateReservation(ctx, entities.NewReservation{
		ClientID:       client.ID,
		RoomID:         room.ID,
		CheckInDate:    day("2024-03-01"),
		CheckOutDate:   day("2024-03-04"),
		NumberOfGuests: 2,
	})
	require.NoError(s.T(), err)

	s.Equal("449.97", created.TotalPrice.StringFixed(2))
	s.Equal(entities.ReservationStatusPending, created.Status)
	s.Equal("Ada", created.Client.FirstName)
	s.Equal([]string{"WiFi"}, created.Room.Amenities)
	s.Equal("2024-03-01", created.CheckInDate.Format(entities.DateLayout))
}

func (s *ReservationIntegrationTestSuite) TestBoundaryDayConflicts() {
	ctx := context.Background()
	client, room := s.seed()

	_, err := s.booking.CreateReservation(ctx, entities.NewReservation{
		ClientID: client.ID, RoomID: room.ID,
		CheckInDate: day("2024-03-01"), CheckOutDate: day("2024-03-04"), NumberOfGuests: 1,
	})
	require.NoError(s.T(), err)

	_, err = s.booking.CreateReservation(ctx, entities.NewReservation{
		ClientID: client.ID, RoomID: room.ID,
		CheckInDate: day("2024-03-04"), CheckOutDate: day("2024-03-06"), NumberOfGuests: 1,
	})
	s.ErrorIs(err, apperrors.ErrRoomUnavailable)
}

func (s *ReservationIntegrationTestSuite) TestUnknownClientIsNotFound() {
	ctx := context.Background()
	_, room := s.seed()

	_, err := s.booking.CreateReservation(ctx, entities.NewReservation{
		ClientID: 999, RoomID: room.ID,
		CheckInDate: day("2024-03-01"), CheckOutDate: day("2024-03-02"), NumberOfGuests: 1,
	})
	s.ErrorIs(err, apperrors.ErrClientNotFound)
}

func (s *ReservationIntegrationTestSuite) TestConcurrentCreatesForOneRoom() {
	ctx := context.Background()
	client, room := s.seed()

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func() {
			defer wg.Done()
			_, err := s.booking.CreateReservation(ctx, entities.NewReservation{
				ClientID: client.ID, RoomID: room.ID,
				CheckInDate: day("2024-05-10"), CheckOutDate: day("2024-05-12"), NumberOfGuests: 1,
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, apperrors.ErrRoomUnavailable):
				conflicts++
			}
		}()
	}
	wg.Wait()

	s.Equal(1, succeeded)
	s.Equal(attempts-1, conflicts)
}

func (s *ReservationIntegrationTestSuite) TestUpdateClearsSpecialRequests() {
	ctx := context.Background()
	client, room := s.seed()

	note := "late arrival"
	created, err := s.booking.CreateReservation(ctx, entities.NewReservation{
		ClientID: client.ID, RoomID: room.ID,
		CheckInDate: day("2024-06-01"), CheckOutDate: day("2024-06-02"), NumberOfGuests: 1,
		SpecialRequests: &note,
	})
	require.NoError(s.T(), err)

	updated, err := s.booking.UpdateReservation(ctx, created.ID, entities.ReservationPatch{
		SpecialRequests: entities.Some[*string](nil),
	})
	require.NoError(s.T(), err)
	s.Nil(updated.SpecialRequests)
	s.NotNil(updated.UpdatedAt)
	s.Equal(created.TotalPrice.String(), updated.TotalPrice.String())
}

func TestReservationIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationIntegrationTestSuite))
}
