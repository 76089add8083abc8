package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hotelreservation/backend/internal/api/handlers"
	"github.com/hotelreservation/backend/internal/domain/entities"
	apperrors "github.com/hotelreservation/backend/pkg/errors"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) GetClient(ctx context.Context, id int64) (*entities.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Client), args.Error(1)
}

func (m *MockCatalogService) ListClients(ctx context.Context) ([]*entities.Client, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entities.Client), args.Error(1)
}

func (m *MockCatalogService) GetRoom(ctx context.Context, id int64) (*entities.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Room), args.Error(1)
}

func (m *MockCatalogService) ListRooms(ctx context.Context) ([]*entities.Room, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entities.Room), args.Error(1)
}

func (m *MockCatalogService) ListAvailableRooms(ctx context.Context) ([]*entities.Room, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entities.Room), args.Error(1)
}

func (m *MockCatalogService) ReservationsForClients(ctx context.Context, clientIDs []int64) (map[int64][]*entities.Reservation, error) {
	args := m.Called(ctx, clientIDs)
	return args.Get(0).(map[int64][]*entities.Reservation), args.Error(1)
}

func TestCatalogHandler_Rooms(t *testing.T) {
	mockService := new(MockCatalogService)
	handler := handlers.NewCatalogHandler(mockService)

	suite := &entities.Room{
		ID:            3,
		RoomNumber:    "301",
		RoomType:      entities.RoomTypeSuite,
		PricePerNight: decimal.RequireFromString("349.5"),
		Capacity:      4,
		IsAvailable:   true,
	}
	mockService.On("ListAvailableRooms", mock.Anything).Return([]*entities.Room{suite}, nil)
	mockService.On("GetRoom", mock.Anything, int64(3)).Return(suite, nil)
	mockService.On("GetRoom", mock.Anything, int64(4)).Return(nil, apperrors.NewRoomNotFoundError(4))

	t.Run("lists available rooms", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ListAvailableRooms(w, httptest.NewRequest(http.MethodGet, "/api/rooms/available", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"pricePerNight":349.50`)
		assert.Contains(t, w.Body.String(), `"amenities":[]`)
	})

	t.Run("gets a room", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/rooms/3", nil)
		req.SetPathValue("id", "3")
		w := httptest.NewRecorder()
		handler.GetRoom(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "SUITE", decodeBody(t, w)["roomType"])
	})

	t.Run("unknown room is a 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/rooms/4", nil)
		req.SetPathValue("id", "4")
		w := httptest.NewRecorder()
		handler.GetRoom(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "ROOM_NOT_FOUND", decodeBody(t, w)["code"])
	})
}

func TestCatalogHandler_ClientReservations(t *testing.T) {
	t.Run("returns the client's reservations", func(t *testing.T) {
		mockService := new(MockCatalogService)
		handler := handlers.NewCatalogHandler(mockService)

		mockService.On("GetClient", mock.Anything, int64(1)).Return(&entities.Client{ID: 1}, nil)
		mockService.On("ReservationsForClients", mock.Anything, []int64{1}).Return(map[int64][]*entities.Reservation{
			1: {testReservation(4)},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/clients/1/reservations", nil)
		req.SetPathValue("id", "1")
		w := httptest.NewRecorder()
		handler.ListClientReservations(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var list []map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		require.Len(t, list, 1)
		assert.Equal(t, float64(4), list[0]["id"])
	})

	t.Run("unknown client is a 404", func(t *testing.T) {
		mockService := new(MockCatalogService)
		handler := handlers.NewCatalogHandler(mockService)

		mockService.On("GetClient", mock.Anything, int64(8)).Return(nil, apperrors.NewClientNotFoundError(8))

		req := httptest.NewRequest(http.MethodGet, "/api/clients/8/reservations", nil)
		req.SetPathValue("id", "8")
		w := httptest.NewRecorder()
		handler.ListClientReservations(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertNotCalled(t, "ReservationsForClients", mock.Anything, mock.Anything)
	})
}

func TestCatalogHandler_ListClients_Empty(t *testing.T) {
	mockService := new(MockCatalogService)
	handler := handlers.NewCatalogHandler(mockService)

	mockService.On("ListClients", mock.Anything).Return([]*entities.Client(nil), nil)

	w := httptest.NewRecorder()
	handler.ListClients(w, httptest.NewRequest(http.MethodGet, "/api/clients", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
