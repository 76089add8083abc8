package resolvers

import (
	"context"

	"github.com/hotelreservation/backend/internal/domain/entities"
	"github.com/hotelreservation/backend/internal/graphql/loaders"
)

// Reservations resolves Client.reservations through the request's batch loader
func (r *clientResolver) Reservations(ctx context.Context, obj *entities.Client) ([]*entities.Reservation, error) {
	if l := loaders.For(ctx); l != nil {
		return l.ClientReservations.Load(ctx, obj.ID)()
	}

	grouped, err := r.catalog.ReservationsForClients(ctx, []int64{obj.ID})
	if err != nil {
		return nil, err
	}
	return grouped[obj.ID], nil
}
