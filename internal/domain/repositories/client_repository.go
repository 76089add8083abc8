package repositories

import (
	"context"

	"github.com/hotelreservation/backend/internal/domain/entities"
)

// ClientRepository defines the interface for client data operations
type ClientRepository interface {
	// Create creates a new client and fills in its id and timestamps
	Create(ctx context.Context, client *entities.Client) error

	// GetByID retrieves a client by ID, or nil when it does not exist
	GetByID(ctx context.Context, id int64) (*entities.Client, error)

	// List retrieves all clients, newest first
	List(ctx context.Context) ([]*entities.Client, error)
}
