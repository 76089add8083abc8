package repositories

import (
	"context"
	"time"

	"github.com/hotelreservation/backend/internal/domain/entities"
)

// ReservationStore defines the data operations the booking logic depends on.
//
// FindOverlapping followed by InsertReservation is a check-then-act pair;
// implementations must make WithinTx strong enough that two concurrent
// creates for the same room cannot both pass the check.
type ReservationStore interface {
	// FindRoom returns the room or nil when it does not exist. Inside
	// WithinTx the room row stays locked until the transaction ends.
	FindRoom(ctx context.Context, roomID int64) (*entities.Room, error)

	// FindReservation returns the fully joined reservation or nil when it does not exist
	FindReservation(ctx context.Context, id int64) (*entities.Reservation, error)

	// FindOverlapping returns non-cancelled reservations of the room whose
	// stay shares at least one date with [checkIn, checkOut], both ends inclusive
	FindOverlapping(ctx context.Context, roomID int64, checkIn, checkOut time.Time) ([]*entities.Reservation, error)

	// InsertReservation stores a new reservation and returns its generated id
	InsertReservation(ctx context.Context, record entities.ReservationRecord) (int64, error)

	// UpdateReservation writes the fields set in patch and refreshes updated_at
	UpdateReservation(ctx context.Context, id int64, patch entities.ReservationPatch) error

	// DeleteReservation removes the reservation and reports whether a row was deleted
	DeleteReservation(ctx context.Context, id int64) (bool, error)

	// ListReservations returns joined reservations matching filter, newest first
	ListReservations(ctx context.Context, filter ReservationFilter) ([]*entities.Reservation, error)

	// WithinTx runs fn against a transactional view of the store. The
	// transaction commits when fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(store ReservationStore) error) error
}

// ReservationFilter defines filters for listing reservations. Nil fields do not filter.
type ReservationFilter struct {
	ClientID *int64
	RoomID   *int64
	Status   *entities.ReservationStatus
}

// ReservationsByClientLoader batches reservation lookups for many clients
type ReservationsByClientLoader interface {
	// ListByClientIDs returns reservations grouped by client id, newest first
	ListByClientIDs(ctx context.Context, clientIDs []int64) (map[int64][]*entities.Reservation, error)
}
