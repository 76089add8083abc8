package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hotelreservation/backend/internal/application/services"
	"github.com/hotelreservation/backend/internal/domain/entities"
	"github.com/hotelreservation/backend/internal/domain/repositories"
)

func TestCacheWarmingService_WarmsListsAndRooms(t *testing.T) {
	rooms := new(MockRoomRepository)
	all := []*entities.Room{{ID: 1, RoomNumber: "101"}, {ID: 2, RoomNumber: "102"}}

	rooms.On("List", mock.Anything, repositories.RoomFilter{AvailableOnly: true}).Return(all[:1], nil)
	rooms.On("List", mock.Anything, repositories.RoomFilter{}).Return(all, nil)
	rooms.On("GetByID", mock.Anything, int64(1)).Return(all[0], nil)
	rooms.On("GetByID", mock.Anything, int64(2)).Return(nil, errors.New("cache down"))

	warmed, err := services.NewCacheWarmingService(rooms).WarmCache(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, warmed)
	rooms.AssertExpectations(t)
}

func TestCacheWarmingService_ListFailure(t *testing.T) {
	rooms := new(MockRoomRepository)
	rooms.On("List", mock.Anything, repositories.RoomFilter{AvailableOnly: true}).Return(nil, errors.New("db down"))

	warmed, err := services.NewCacheWarmingService(rooms).WarmCache(context.Background())

	assert.Error(t, err)
	assert.Zero(t, warmed)
	rooms.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
