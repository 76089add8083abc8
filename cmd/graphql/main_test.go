package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelreservation/backend/internal/domain/entities"
	"github.com/hotelreservation/backend/internal/domain/repositories"
	apperrors "github.com/hotelreservation/backend/pkg/errors"
)

type emptyBooking struct{}

func (emptyBooking) CreateReservation(context.Context, entities.NewReservation) (*entities.Reservation, error) {
	return nil, apperrors.NewRoomNotFoundError(1)
}
func (emptyBooking) UpdateReservation(_ context.Context, id int64, _ entities.ReservationPatch) (*entities.Reservation, error) {
	return nil, apperrors.NewReservationNotFoundError(id)
}
func (emptyBooking) CancelReservation(_ context.Context, id int64) (*entities.Reservation, error) {
	return nil, apperrors.NewReservationNotFoundError(id)
}
func (emptyBooking) DeleteReservation(context.Context, int64) (bool, error) { return false, nil }
func (emptyBooking) GetReservation(_ context.Context, id int64) (*entities.Reservation, error) {
	return nil, apperrors.NewReservationNotFoundError(id)
}
func (emptyBooking) ListReservations(context.Context) ([]*entities.Reservation, error) {
	return []*entities.Reservation{}, nil
}
func (emptyBooking) ListReservationsByClient(context.Context, int64) ([]*entities.Reservation, error) {
	return []*entities.Reservation{}, nil
}
func (emptyBooking) ListReservationsByRoom(context.Context, int64) ([]*entities.Reservation, error) {
	return []*entities.Reservation{}, nil
}
func (emptyBooking) ListReservationsByStatus(context.Context, entities.ReservationStatus) ([]*entities.Reservation, error) {
	return []*entities.Reservation{}, nil
}
func (emptyBooking) ListReservationsFiltered(context.Context, repositories.ReservationFilter) ([]*entities.Reservation, error) {
	return []*entities.Reservation{}, nil
}

type emptyCatalog struct{}

func (emptyCatalog) GetClient(_ context.Context, id int64) (*entities.Client, error) {
	return nil, apperrors.NewClientNotFoundError(id)
}
func (emptyCatalog) ListClients(context.Context) ([]*entities.Client, error) {
	return []*entities.Client{}, nil
}
func (emptyCatalog) GetRoom(_ context.Context, id int64) (*entities.Room, error) {
	return nil, apperrors.NewRoomNotFoundError(id)
}
func (emptyCatalog) ListRooms(context.Context) ([]*entities.Room, error) {
	return []*entities.Room{}, nil
}
func (emptyCatalog) ListAvailableRooms(context.Context) ([]*entities.Room, error) {
	return []*entities.Room{}, nil
}
func (emptyCatalog) ReservationsForClients(context.Context, []int64) (map[int64][]*entities.Reservation, error) {
	return map[int64][]*entities.Reservation{}, nil
}

func TestGraphQLHealthEndpoint(t *testing.T) {
	handler := newHTTPHandler(emptyBooking{}, emptyCatalog{}, nil, false)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","service":"graphql"}`, w.Body.String())
}

func TestGraphQLEndpointResponds(t *testing.T) {
	handler := newHTTPHandler(emptyBooking{}, emptyCatalog{}, nil, false)

	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(`{"query":"{ getAllRooms { id } }"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"getAllRooms":[]}}`, w.Body.String())
}

func TestGraphQLSchemaEndpoint(t *testing.T) {
	handler := newHTTPHandler(emptyBooking{}, emptyCatalog{}, nil, false)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/schema.graphql", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "type Reservation")
}

func TestGraphQLPlaygroundOnlyInDevelopment(t *testing.T) {
	prod := newHTTPHandler(emptyBooking{}, emptyCatalog{}, nil, false)
	w := httptest.NewRecorder()
	prod.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/playground", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	dev := newHTTPHandler(emptyBooking{}, emptyCatalog{}, nil, true)
	w = httptest.NewRecorder()
	dev.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/playground", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGraphQLEndpointAnswersIntrospection(t *testing.T) {
	handler := newHTTPHandler(emptyBooking{}, emptyCatalog{}, nil, true)

	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(`{"query":"{ __schema { queryType { name } } }"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"__schema":{"queryType":{"name":"Query"}}}}`, w.Body.String())
}
