package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire and storage format of check-in/check-out dates
const DateLayout = "2006-01-02"

// ReservationStatus represents the status of a reservation. Any status may
// follow any other through an update; only cancel is a fixed transition.
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "PENDING"
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
	ReservationStatusCompleted ReservationStatus = "COMPLETED"
)

// IsValid reports whether s is one of the known statuses
func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCancelled, ReservationStatusCompleted:
		return true
	}
	return false
}

// Reservation is a stay of one client in one room. Client and Room are
// snapshots joined by value at read time.
type Reservation struct {
	ID              int64             `json:"id" db:"id"`
	ClientID        int64             `json:"clientId" db:"client_id"`
	RoomID          int64             `json:"roomId" db:"room_id"`
	Client          Client            `json:"client"`
	Room            Room              `json:"room"`
	CheckInDate     time.Time         `json:"checkInDate" db:"check_in_date"`
	CheckOutDate    time.Time         `json:"checkOutDate" db:"check_out_date"`
	NumberOfGuests  int               `json:"numberOfGuests" db:"number_of_guests"`
	TotalPrice      decimal.Decimal   `json:"totalPrice" db:"total_price"`
	Status          ReservationStatus `json:"status" db:"status"`
	SpecialRequests *string           `json:"specialRequests,omitempty" db:"special_requests"`
	CreatedAt       time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt       *time.Time        `json:"updatedAt,omitempty" db:"updated_at"`
}

// NewReservation is the caller-supplied part of a reservation; the total
// price is always derived from the room.
type NewReservation struct {
	ClientID        int64              `validate:"gt=0"`
	RoomID          int64              `validate:"gt=0"`
	CheckInDate     time.Time          `validate:"required"`
	CheckOutDate    time.Time          `validate:"required"`
	NumberOfGuests  int                `validate:"gt=0"`
	SpecialRequests *string
	Status          *ReservationStatus `validate:"omitempty,oneof=PENDING CONFIRMED CANCELLED COMPLETED"`
}

// ReservationRecord is the row written by an insert
type ReservationRecord struct {
	ClientID        int64
	RoomID          int64
	CheckInDate     time.Time
	CheckOutDate    time.Time
	NumberOfGuests  int
	TotalPrice      decimal.Decimal
	Status          ReservationStatus
	SpecialRequests *string
}

// ReservationPatch lists the fields an update changes. Unset fields keep
// their stored value; SpecialRequests set to nil clears the column.
type ReservationPatch struct {
	ClientID        Optional[int64]
	RoomID          Optional[int64]
	CheckInDate     Optional[time.Time]
	CheckOutDate    Optional[time.Time]
	NumberOfGuests  Optional[int]
	SpecialRequests Optional[*string]
	Status          Optional[ReservationStatus]
}

// IsEmpty reports whether the patch changes no caller-visible field
func (p ReservationPatch) IsEmpty() bool {
	return !p.ClientID.IsSet() && !p.RoomID.IsSet() && !p.CheckInDate.IsSet() &&
		!p.CheckOutDate.IsSet() && !p.NumberOfGuests.IsSet() && !p.SpecialRequests.IsSet() &&
		!p.Status.IsSet()
}
