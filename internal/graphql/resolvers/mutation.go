package resolvers

import (
	"context"

	"github.com/hotelreservation/backend/internal/domain/entities"
	"github.com/hotelreservation/backend/internal/graphql/model"
	apperrors "github.com/hotelreservation/backend/pkg/errors"
)

func (r *mutationResolver) CreateReservation(ctx context.Context, input model.CreateReservationInput) (*entities.Reservation, error) {
	clientID, err := parseID("clientId", input.ClientID)
	if err != nil {
		return nil, err
	}
	roomID, err := parseID("roomId", input.RoomID)
	if err != nil {
		return nil, err
	}

	return r.booking.CreateReservation(ctx, entities.NewReservation{
		ClientID:        clientID,
		RoomID:          roomID,
		CheckInDate:     input.CheckInDate,
		CheckOutDate:    input.CheckOutDate,
		NumberOfGuests:  input.NumberOfGuests,
		SpecialRequests: input.SpecialRequests,
		Status:          input.Status,
	})
}

func (r *mutationResolver) UpdateReservation(ctx context.Context, id string, input model.UpdateReservationInput) (*entities.Reservation, error) {
	reservationID, err := parseID("id", id)
	if err != nil {
		return nil, err
	}
	patch, err := toPatch(input)
	if err != nil {
		return nil, err
	}
	return r.booking.UpdateReservation(ctx, reservationID, patch)
}

func (r *mutationResolver) DeleteReservation(ctx context.Context, id string) (bool, error) {
	reservationID, err := parseID("id", id)
	if err != nil {
		return false, err
	}
	return r.booking.DeleteReservation(ctx, reservationID)
}

func (r *mutationResolver) CancelReservation(ctx context.Context, id string) (*entities.Reservation, error) {
	reservationID, err := parseID("id", id)
	if err != nil {
		return nil, err
	}
	return r.booking.CancelReservation(ctx, reservationID)
}

// toPatch maps the update input onto a ReservationPatch. Only
// specialRequests may be cleared with an explicit null; the other columns
// are NOT NULL.
func toPatch(input model.UpdateReservationInput) (entities.ReservationPatch, error) {
	var patch entities.ReservationPatch

	if v, ok := input.ClientID.ValueOK(); ok {
		if v == nil {
			return patch, nullNotAllowed("clientId")
		}
		id, err := parseID("clientId", *v)
		if err != nil {
			return patch, err
		}
		patch.ClientID = entities.Some(id)
	}
	if v, ok := input.RoomID.ValueOK(); ok {
		if v == nil {
			return patch, nullNotAllowed("roomId")
		}
		id, err := parseID("roomId", *v)
		if err != nil {
			return patch, err
		}
		patch.RoomID = entities.Some(id)
	}
	if v, ok := input.CheckInDate.ValueOK(); ok {
		if v == nil {
			return patch, nullNotAllowed("checkInDate")
		}
		patch.CheckInDate = entities.Some(*v)
	}
	if v, ok := input.CheckOutDate.ValueOK(); ok {
		if v == nil {
			return patch, nullNotAllowed("checkOutDate")
		}
		patch.CheckOutDate = entities.Some(*v)
	}
	if v, ok := input.NumberOfGuests.ValueOK(); ok {
		if v == nil {
			return patch, nullNotAllowed("numberOfGuests")
		}
		patch.NumberOfGuests = entities.Some(*v)
	}
	if v, ok := input.SpecialRequests.ValueOK(); ok {
		patch.SpecialRequests = entities.Some(v)
	}
	if v, ok := input.Status.ValueOK(); ok {
		if v == nil {
			return patch, nullNotAllowed("status")
		}
		patch.Status = entities.Some(*v)
	}
	return patch, nil
}

func nullNotAllowed(field string) error {
	return apperrors.NewValidationError(field + " cannot be null")
}
