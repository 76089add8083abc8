package entities

import (
	"time"
)

// Client is a hotel guest who holds reservations
type Client struct {
	ID        int64      `json:"id" db:"id"`
	FirstName string     `json:"firstName" db:"first_name"`
	LastName  string     `json:"lastName" db:"last_name"`
	Email     string     `json:"email" db:"email"`
	Phone     *string    `json:"phone,omitempty" db:"phone"`
	Address   *string    `json:"address,omitempty" db:"address"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" db:"updated_at"`
}
