package model

import (
	"time"

	"github.com/99designs/gqlgen/graphql"

	"github.com/hotelreservation/backend/internal/domain/entities"
)

type CreateReservationInput struct {
	ClientID        string                      `json:"clientId"`
	RoomID          string                      `json:"roomId"`
	CheckInDate     time.Time                   `json:"checkInDate"`
	CheckOutDate    time.Time                   `json:"checkOutDate"`
	NumberOfGuests  int                         `json:"numberOfGuests"`
	SpecialRequests *string                     `json:"specialRequests,omitempty"`
	Status          *entities.ReservationStatus `json:"status,omitempty"`
}

// UpdateReservationInput keeps absent fields apart from explicit nulls.
type UpdateReservationInput struct {
	ClientID        graphql.Omittable[*string]                     `json:"clientId,omitempty"`
	RoomID          graphql.Omittable[*string]                     `json:"roomId,omitempty"`
	CheckInDate     graphql.Omittable[*time.Time]                  `json:"checkInDate,omitempty"`
	CheckOutDate    graphql.Omittable[*time.Time]                  `json:"checkOutDate,omitempty"`
	NumberOfGuests  graphql.Omittable[*int]                        `json:"numberOfGuests,omitempty"`
	SpecialRequests graphql.Omittable[*string]                     `json:"specialRequests,omitempty"`
	Status          graphql.Omittable[*entities.ReservationStatus] `json:"status,omitempty"`
}
