package routes_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hotelreservation/backend/internal/api/handlers"
	"github.com/hotelreservation/backend/internal/api/routes"
	"github.com/hotelreservation/backend/internal/domain/entities"
	"github.com/hotelreservation/backend/internal/domain/repositories"
	apperrors "github.com/hotelreservation/backend/pkg/errors"
)

// stubBooking knows no reservations
type stubBooking struct{}

func (stubBooking) CreateReservation(context.Context, entities.NewReservation) (*entities.Reservation, error) {
	return nil, apperrors.NewRoomNotFoundError(1)
}

func (stubBooking) UpdateReservation(_ context.Context, id int64, _ entities.ReservationPatch) (*entities.Reservation, error) {
	return nil, apperrors.NewReservationNotFoundError(id)
}

func (stubBooking) CancelReservation(_ context.Context, id int64) (*entities.Reservation, error) {
	return nil, apperrors.NewReservationNotFoundError(id)
}

func (stubBooking) DeleteReservation(context.Context, int64) (bool, error) {
	return false, nil
}

func (stubBooking) GetReservation(_ context.Context, id int64) (*entities.Reservation, error) {
	return nil, apperrors.NewReservationNotFoundError(id)
}

func (stubBooking) ListReservationsFiltered(context.Context, repositories.ReservationFilter) ([]*entities.Reservation, error) {
	return []*entities.Reservation{}, nil
}

// stubCatalog has one room and no clients
type stubCatalog struct{}

var room = &entities.Room{ID: 1, RoomNumber: "101", RoomType: entities.RoomTypeSingle, IsAvailable: true}

func (stubCatalog) GetClient(_ context.Context, id int64) (*entities.Client, error) {
	return nil, apperrors.NewClientNotFoundError(id)
}

func (stubCatalog) ListClients(context.Context) ([]*entities.Client, error) {
	return []*entities.Client{}, nil
}

func (stubCatalog) GetRoom(_ context.Context, id int64) (*entities.Room, error) {
	if id == room.ID {
		return room, nil
	}
	return nil, apperrors.NewRoomNotFoundError(id)
}

func (stubCatalog) ListRooms(context.Context) ([]*entities.Room, error) {
	return []*entities.Room{room}, nil
}

func (stubCatalog) ListAvailableRooms(context.Context) ([]*entities.Room, error) {
	return []*entities.Room{room}, nil
}

func (stubCatalog) ReservationsForClients(context.Context, []int64) (map[int64][]*entities.Reservation, error) {
	return map[int64][]*entities.Reservation{}, nil
}

func newHandler() http.Handler {
	router := routes.NewRouter(
		handlers.NewReservationHandler(stubBooking{}),
		handlers.NewCatalogHandler(stubCatalog{}),
		nil,
	)
	return router.SetupRoutes()
}

func TestRouter_Routes(t *testing.T) {
	handler := newHandler()

	cases := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/api/reservations/health", "", http.StatusOK},
		{http.MethodGet, "/api/reservations", "", http.StatusOK},
		{http.MethodGet, "/api/reservations/5", "", http.StatusNotFound},
		{http.MethodPut, "/api/reservations/5", `{"numberOfGuests":2}`, http.StatusNotFound},
		{http.MethodDelete, "/api/reservations/5", "", http.StatusNotFound},
		{http.MethodPatch, "/api/reservations/5/cancel", "", http.StatusNotFound},
		{http.MethodPost, "/api/reservations", `{"clientId":1,"roomId":1,"checkInDate":"2024-01-01","checkOutDate":"2024-01-02","numberOfGuests":1}`, http.StatusNotFound},
		{http.MethodGet, "/api/rooms", "", http.StatusOK},
		{http.MethodGet, "/api/rooms/available", "", http.StatusOK},
		{http.MethodGet, "/api/rooms/1", "", http.StatusOK},
		{http.MethodGet, "/api/clients", "", http.StatusOK},
		{http.MethodGet, "/api/clients/1", "", http.StatusNotFound},
		{http.MethodGet, "/api/clients/1/reservations", "", http.StatusNotFound},
		{http.MethodPost, "/api/rooms", "{}", http.StatusMethodNotAllowed},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			var req *http.Request
			if tc.body != "" {
				req = httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			} else {
				req = httptest.NewRequest(tc.method, tc.path, nil)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestRouter_AvailableIsNotAnID(t *testing.T) {
	handler := newHandler()

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/rooms/available", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(w.Body.String()), "["))
}
