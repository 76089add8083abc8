package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoomType represents the category of a room
type RoomType string

const (
	RoomTypeSingle RoomType = "SINGLE"
	RoomTypeDouble RoomType = "DOUBLE"
	RoomTypeSuite  RoomType = "SUITE"
	RoomTypeDeluxe RoomType = "DELUXE"
)

// IsValid reports whether t is one of the known room types
func (t RoomType) IsValid() bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeSuite, RoomTypeDeluxe:
		return true
	}
	return false
}

// Room represents a bookable hotel room
type Room struct {
	ID            int64           `json:"id" db:"id"`
	RoomNumber    string          `json:"roomNumber" db:"room_number"`
	RoomType      RoomType        `json:"roomType" db:"room_type"`
	PricePerNight decimal.Decimal `json:"pricePerNight" db:"price_per_night"`
	Capacity      int             `json:"capacity" db:"capacity"`
	Description   *string         `json:"description,omitempty" db:"description"`
	Amenities     []string        `json:"amenities" db:"amenities"`
	IsAvailable   bool            `json:"isAvailable" db:"is_available"`
	CreatedAt     time.Time       `json:"createdAt" db:"created_at"`
}
