package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hotelreservation/backend/internal/application/services"
	"github.com/hotelreservation/backend/internal/domain/entities"
	"github.com/hotelreservation/backend/internal/domain/repositories"
	apperrors "github.com/hotelreservation/backend/pkg/errors"
)

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Create(ctx context.Context, client *entities.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) GetByID(ctx context.Context, id int64) (*entities.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Client), args.Error(1)
}

func (m *MockClientRepository) List(ctx context.Context) ([]*entities.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Client), args.Error(1)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(ctx context.Context, room *entities.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*entities.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Room), args.Error(1)
}

func (m *MockRoomRepository) List(ctx context.Context, filter repositories.RoomFilter) ([]*entities.Room, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Room), args.Error(1)
}

type MockReservationsByClientLoader struct {
	mock.Mock
}

func (m *MockReservationsByClientLoader) ListByClientIDs(ctx context.Context, clientIDs []int64) (map[int64][]*entities.Reservation, error) {
	args := m.Called(ctx, clientIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64][]*entities.Reservation), args.Error(1)
}

func TestCatalogService_GetClient(t *testing.T) {
	clients := new(MockClientRepository)
	service := services.NewCatalogService(clients, new(MockRoomRepository), new(MockReservationsByClientLoader))
	ctx := context.Background()

	clients.On("GetByID", ctx, int64(1)).Return(&entities.Client{ID: 1, FirstName: "Ada"}, nil)
	clients.On("GetByID", ctx, int64(2)).Return(nil, nil)

	client, err := service.GetClient(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Ada", client.FirstName)

	_, err = service.GetClient(ctx, 2)
	assert.ErrorIs(t, err, apperrors.ErrClientNotFound)
}

func TestCatalogService_Rooms(t *testing.T) {
	rooms := new(MockRoomRepository)
	service := services.NewCatalogService(new(MockClientRepository), rooms, new(MockReservationsByClientLoader))
	ctx := context.Background()

	rooms.On("GetByID", ctx, int64(3)).Return(nil, nil)
	rooms.On("List", ctx, repositories.RoomFilter{}).Return(nil, nil)
	rooms.On("List", ctx, repositories.RoomFilter{AvailableOnly: true}).
		Return([]*entities.Room{{ID: 1, RoomNumber: "101", IsAvailable: true}}, nil)

	_, err := service.GetRoom(ctx, 3)
	assert.ErrorIs(t, err, apperrors.ErrRoomNotFound)

	all, err := service.ListRooms(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	available, err := service.ListAvailableRooms(ctx)
	require.NoError(t, err)
	assert.Len(t, available, 1)
	rooms.AssertExpectations(t)
}

func TestCatalogService_ReservationsForClients_FillsMissingIDs(t *testing.T) {
	loader := new(MockReservationsByClientLoader)
	service := services.NewCatalogService(new(MockClientRepository), new(MockRoomRepository), loader)
	ctx := context.Background()

	loader.On("ListByClientIDs", ctx, []int64{1, 2}).Return(map[int64][]*entities.Reservation{
		1: {{ID: 10, ClientID: 1}},
	}, nil)

	grouped, err := service.ReservationsForClients(ctx, []int64{1, 2})
	require.NoError(t, err)
	assert.Len(t, grouped[1], 1)
	require.Contains(t, grouped, int64(2))
	assert.NotNil(t, grouped[2])
	assert.Empty(t, grouped[2])
}
