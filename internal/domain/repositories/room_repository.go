package repositories

import (
	"context"

	"github.com/hotelreservation/backend/internal/domain/entities"
)

// RoomRepository defines the interface for room catalog operations
type RoomRepository interface {
	// Create creates a new room and fills in its id and creation time
	Create(ctx context.Context, room *entities.Room) error

	// GetByID retrieves a room by ID, or nil when it does not exist
	GetByID(ctx context.Context, id int64) (*entities.Room, error)

	// List retrieves rooms ordered by room number
	List(ctx context.Context, filter RoomFilter) ([]*entities.Room, error)
}

// RoomFilter defines filters for listing rooms
type RoomFilter struct {
	AvailableOnly bool
}
