package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hotelreservation/backend/internal/domain/entities"
	"github.com/hotelreservation/backend/internal/domain/repositories"
	"github.com/hotelreservation/backend/internal/infrastructure/observability"
	apperrors "github.com/hotelreservation/backend/pkg/errors"
)

// BookingService handles reservation booking logic
type BookingService struct {
	store    repositories.ReservationStore
	validate *validator.Validate
}

// NewBookingService creates a new booking service
func NewBookingService(store repositories.ReservationStore) *BookingService {
	return &BookingService{
		store:    store,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// CreateReservation books a room for a client.
//
// The room lookup, conflict check and insert run in one store transaction
// with the room row locked, so two overlapping requests for the same room
// cannot both succeed.
func (s *BookingService) CreateReservation(ctx context.Context, input entities.NewReservation) (*entities.Reservation, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}
	if !input.CheckOutDate.After(input.CheckInDate) {
		return nil, apperrors.NewInvalidDateRangeError(
			input.CheckInDate.Format(entities.DateLayout),
			input.CheckOutDate.Format(entities.DateLayout),
		)
	}

	status := entities.ReservationStatusPending
	if input.Status != nil {
		status = *input.Status
	}

	logger := observability.LoggerFromContext(ctx)

	var created *entities.Reservation
	err := s.store.WithinTx(ctx, func(store repositories.ReservationStore) error {
		room, err := store.FindRoom(ctx, input.RoomID)
		if err != nil {
			return err
		}
		if room == nil {
			return apperrors.NewRoomNotFoundError(input.RoomID)
		}

		conflicts, err := store.FindOverlapping(ctx, input.RoomID, input.CheckInDate, input.CheckOutDate)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			logger.Info().
				Int64("room_id", input.RoomID).
				Int("conflicts", len(conflicts)).
				Msg("Room unavailable for requested dates")
			return apperrors.NewRoomUnavailableError(input.RoomID, len(conflicts))
		}

		id, err := store.InsertReservation(ctx, entities.ReservationRecord{
			ClientID:        input.ClientID,
			RoomID:          input.RoomID,
			CheckInDate:     input.CheckInDate,
			CheckOutDate:    input.CheckOutDate,
			NumberOfGuests:  input.NumberOfGuests,
			TotalPrice:      TotalPrice(room.PricePerNight, input.CheckInDate, input.CheckOutDate),
			Status:          status,
			SpecialRequests: input.SpecialRequests,
		})
		if err != nil {
			return err
		}

		created, err = store.FindReservation(ctx, id)
		if err != nil {
			return err
		}
		if created == nil {
			return apperrors.NewInternalError(fmt.Sprintf("reservation %d vanished after insert", id), nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int64("reservation_id", created.ID).
		Int64("room_id", created.RoomID).
		Int64("client_id", created.ClientID).
		Str("total_price", created.TotalPrice.StringFixed(2)).
		Msg("Reservation created")
	return created, nil
}

// UpdateReservation applies the fields present in patch. Dates, price and
// conflicts are not re-checked, so operators can correct records freely.
func (s *BookingService) UpdateReservation(ctx context.Context, id int64, patch entities.ReservationPatch) (*entities.Reservation, error) {
	if status, ok := patch.Status.Get(); ok && !status.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid reservation status %q", status))
	}
	if guests, ok := patch.NumberOfGuests.Get(); ok && guests <= 0 {
		return nil, apperrors.NewValidationError("numberOfGuests must be positive")
	}

	existing, err := s.store.FindReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.NewReservationNotFoundError(id)
	}

	if err := s.store.UpdateReservation(ctx, id, patch); err != nil {
		return nil, err
	}

	observability.LoggerFromContext(ctx).Info().Int64("reservation_id", id).Msg("Reservation updated")
	return s.GetReservation(ctx, id)
}

// CancelReservation sets the status to CANCELLED. Cancelling twice is not an error.
func (s *BookingService) CancelReservation(ctx context.Context, id int64) (*entities.Reservation, error) {
	reservation, err := s.UpdateReservation(ctx, id, entities.ReservationPatch{
		Status: entities.Some(entities.ReservationStatusCancelled),
	})
	if err != nil {
		return nil, err
	}

	observability.LoggerFromContext(ctx).Info().Int64("reservation_id", id).Msg("Reservation cancelled")
	return reservation, nil
}

// DeleteReservation permanently removes a reservation
func (s *BookingService) DeleteReservation(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.store.DeleteReservation(ctx, id)
	if err != nil {
		return false, err
	}
	if !deleted {
		return false, apperrors.NewReservationNotFoundError(id)
	}

	observability.LoggerFromContext(ctx).Info().Int64("reservation_id", id).Msg("Reservation deleted")
	return true, nil
}

// GetReservation retrieves a fully joined reservation
func (s *BookingService) GetReservation(ctx context.Context, id int64) (*entities.Reservation, error) {
	reservation, err := s.store.FindReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, apperrors.NewReservationNotFoundError(id)
	}
	return reservation, nil
}

// ListReservations lists every reservation, newest first
func (s *BookingService) ListReservations(ctx context.Context) ([]*entities.Reservation, error) {
	return s.list(ctx, repositories.ReservationFilter{})
}

// ListReservationsByClient lists the reservations of one client
func (s *BookingService) ListReservationsByClient(ctx context.Context, clientID int64) ([]*entities.Reservation, error) {
	return s.list(ctx, repositories.ReservationFilter{ClientID: &clientID})
}

// ListReservationsByRoom lists the reservations of one room
func (s *BookingService) ListReservationsByRoom(ctx context.Context, roomID int64) ([]*entities.Reservation, error) {
	return s.list(ctx, repositories.ReservationFilter{RoomID: &roomID})
}

// ListReservationsByStatus lists the reservations in one status
func (s *BookingService) ListReservationsByStatus(ctx context.Context, status entities.ReservationStatus) ([]*entities.Reservation, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid reservation status %q", status))
	}
	return s.list(ctx, repositories.ReservationFilter{Status: &status})
}

// ListReservationsFiltered lists reservations matching every non-nil filter field
func (s *BookingService) ListReservationsFiltered(ctx context.Context, filter repositories.ReservationFilter) ([]*entities.Reservation, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid reservation status %q", *filter.Status))
	}
	return s.list(ctx, filter)
}

func (s *BookingService) list(ctx context.Context, filter repositories.ReservationFilter) ([]*entities.Reservation, error) {
	reservations, err := s.store.ListReservations(ctx, filter)
	if err != nil {
		return nil, err
	}
	if reservations == nil {
		reservations = []*entities.Reservation{}
	}
	return reservations, nil
}

func (s *BookingService) validateInput(input entities.NewReservation) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.NewValidationError(err.Error())
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return apperrors.NewValidationError(strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return field + " must be positive"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	}
	return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	if strings.HasSuffix(s, "ID") {
		s = strings.TrimSuffix(s, "ID") + "Id"
	}
	return strings.ToLower(s[:1]) + s[1:]
}
