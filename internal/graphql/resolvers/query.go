package resolvers

import (
	"context"

	"github.com/hotelreservation/backend/internal/domain/entities"
)

func (r *queryResolver) GetReservation(ctx context.Context, id string) (*entities.Reservation, error) {
	reservationID, err := parseID("id", id)
	if err != nil {
		return nil, err
	}
	return r.booking.GetReservation(ctx, reservationID)
}

func (r *queryResolver) GetAllReservations(ctx context.Context) ([]*entities.Reservation, error) {
	return r.booking.ListReservations(ctx)
}

func (r *queryResolver) GetReservationsByClient(ctx context.Context, clientID string) ([]*entities.Reservation, error) {
	id, err := parseID("clientId", clientID)
	if err != nil {
		return nil, err
	}
	return r.booking.ListReservationsByClient(ctx, id)
}

func (r *queryResolver) GetReservationsByRoom(ctx context.Context, roomID string) ([]*entities.Reservation, error) {
	id, err := parseID("roomId", roomID)
	if err != nil {
		return nil, err
	}
	return r.booking.ListReservationsByRoom(ctx, id)
}

func (r *queryResolver) GetReservationsByStatus(ctx context.Context, status entities.ReservationStatus) ([]*entities.Reservation, error) {
	return r.booking.ListReservationsByStatus(ctx, status)
}

func (r *queryResolver) GetClient(ctx context.Context, id string) (*entities.Client, error) {
	clientID, err := parseID("id", id)
	if err != nil {
		return nil, err
	}
	return r.catalog.GetClient(ctx, clientID)
}

func (r *queryResolver) GetAllClients(ctx context.Context) ([]*entities.Client, error) {
	return r.catalog.ListClients(ctx)
}

func (r *queryResolver) GetRoom(ctx context.Context, id string) (*entities.Room, error) {
	roomID, err := parseID("id", id)
	if err != nil {
		return nil, err
	}
	return r.catalog.GetRoom(ctx, roomID)
}

func (r *queryResolver) GetAllRooms(ctx context.Context) ([]*entities.Room, error) {
	return r.catalog.ListRooms(ctx)
}

func (r *queryResolver) GetAvailableRooms(ctx context.Context) ([]*entities.Room, error) {
	return r.catalog.ListAvailableRooms(ctx)
}
