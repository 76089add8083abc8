package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hotelreservation/backend/internal/domain/entities"
	apperrors "github.com/hotelreservation/backend/pkg/errors"
)

type createReservationRequest struct {
	ClientID        int64                       `json:"clientId" validate:"required,gt=0"`
	RoomID          int64                       `json:"roomId" validate:"required,gt=0"`
	CheckInDate     string                      `json:"checkInDate" validate:"required,datetime=2006-01-02"`
	CheckOutDate    string                      `json:"checkOutDate" validate:"required,datetime=2006-01-02"`
	NumberOfGuests  int                         `json:"numberOfGuests" validate:"required,min=1,max=10"`
	SpecialRequests *string                     `json:"specialRequests"`
	Status          *entities.ReservationStatus `json:"status" validate:"omitempty,oneof=PENDING CONFIRMED CANCELLED COMPLETED"`
}

func (req createReservationRequest) toInput() entities.NewReservation {
	// Layout already checked by the datetime tag.
	checkIn, _ := time.Parse(entities.DateLayout, req.CheckInDate)
	checkOut, _ := time.Parse(entities.DateLayout, req.CheckOutDate)
	return entities.NewReservation{
		ClientID:        req.ClientID,
		RoomID:          req.RoomID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumberOfGuests:  req.NumberOfGuests,
		SpecialRequests: req.SpecialRequests,
		Status:          req.Status,
	}
}

// updateReservationRequest carries the typed values of a partial update.
// Which keys were sent is tracked separately so an explicit null can clear
// specialRequests.
type updateReservationRequest struct {
	ClientID        *int64                      `json:"clientId" validate:"omitempty,gt=0"`
	RoomID          *int64                      `json:"roomId" validate:"omitempty,gt=0"`
	CheckInDate     *string                     `json:"checkInDate" validate:"omitempty,datetime=2006-01-02"`
	CheckOutDate    *string                     `json:"checkOutDate" validate:"omitempty,datetime=2006-01-02"`
	NumberOfGuests  *int                        `json:"numberOfGuests" validate:"omitempty,min=1,max=10"`
	SpecialRequests *string                     `json:"specialRequests"`
	Status          *entities.ReservationStatus `json:"status" validate:"omitempty,oneof=PENDING CONFIRMED CANCELLED COMPLETED"`

	present map[string]bool
}

var updatableFields = map[string]bool{
	"clientId":        true,
	"roomId":          true,
	"checkInDate":     true,
	"checkOutDate":    true,
	"numberOfGuests":  true,
	"specialRequests": true,
	"status":          true,
}

func (req *updateReservationRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	req.present = make(map[string]bool, len(raw))
	for key, value := range raw {
		if !updatableFields[key] {
			return fmt.Errorf("unknown field %q", key)
		}
		if key != "specialRequests" && bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			return fmt.Errorf("%s cannot be null", key)
		}
		req.present[key] = true
	}

	type plain updateReservationRequest
	var values plain
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	present := req.present
	*req = updateReservationRequest(values)
	req.present = present
	return nil
}

func (req *updateReservationRequest) toPatch() (entities.ReservationPatch, error) {
	var patch entities.ReservationPatch
	if req.ClientID != nil {
		patch.ClientID = entities.Some(*req.ClientID)
	}
	if req.RoomID != nil {
		patch.RoomID = entities.Some(*req.RoomID)
	}
	if req.CheckInDate != nil {
		d, err := time.Parse(entities.DateLayout, *req.CheckInDate)
		if err != nil {
			return patch, apperrors.NewValidationError("checkInDate must be a date in YYYY-MM-DD format")
		}
		patch.CheckInDate = entities.Some(d)
	}
	if req.CheckOutDate != nil {
		d, err := time.Parse(entities.DateLayout, *req.CheckOutDate)
		if err != nil {
			return patch, apperrors.NewValidationError("checkOutDate must be a date in YYYY-MM-DD format")
		}
		patch.CheckOutDate = entities.Some(d)
	}
	if req.NumberOfGuests != nil {
		patch.NumberOfGuests = entities.Some(*req.NumberOfGuests)
	}
	if req.present["specialRequests"] {
		patch.SpecialRequests = entities.Some(req.SpecialRequests)
	}
	if req.Status != nil {
		patch.Status = entities.Some(*req.Status)
	}
	return patch, nil
}

type clientInfo struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
}

type roomInfo struct {
	ID            int64       `json:"id"`
	RoomNumber    string      `json:"roomNumber"`
	RoomType      string      `json:"roomType"`
	PricePerNight json.Number `json:"pricePerNight"`
	Capacity      int         `json:"capacity"`
	Amenities     []string    `json:"amenities"`
}

type reservationResponse struct {
	ID              int64       `json:"id"`
	Client          clientInfo  `json:"client"`
	Room            roomInfo    `json:"room"`
	CheckInDate     string      `json:"checkInDate"`
	CheckOutDate    string      `json:"checkOutDate"`
	NumberOfGuests  int         `json:"numberOfGuests"`
	TotalPrice      json.Number `json:"totalPrice"`
	Status          string      `json:"status"`
	SpecialRequests *string     `json:"specialRequests"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       *time.Time  `json:"updatedAt"`
}

func money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

func toReservationResponse(r *entities.Reservation) reservationResponse {
	amenities := r.Room.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return reservationResponse{
		ID: r.ID,
		Client: clientInfo{
			ID:        r.Client.ID,
			FirstName: r.Client.FirstName,
			LastName:  r.Client.LastName,
			Email:     r.Client.Email,
			Phone:     r.Client.Phone,
		},
		Room: roomInfo{
			ID:            r.Room.ID,
			RoomNumber:    r.Room.RoomNumber,
			RoomType:      string(r.Room.RoomType),
			PricePerNight: money(r.Room.PricePerNight),
			Capacity:      r.Room.Capacity,
			Amenities:     amenities,
		},
		CheckInDate:     r.CheckInDate.Format(entities.DateLayout),
		CheckOutDate:    r.CheckOutDate.Format(entities.DateLayout),
		NumberOfGuests:  r.NumberOfGuests,
		TotalPrice:      money(r.TotalPrice),
		Status:          string(r.Status),
		SpecialRequests: r.SpecialRequests,
		CreatedAt:       r.CreatedAt.UTC(),
		UpdatedAt:       utcPtr(r.UpdatedAt),
	}
}

func toReservationResponses(list []*entities.Reservation) []reservationResponse {
	out := make([]reservationResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toReservationResponse(r))
	}
	return out
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
