package services

import (
	"context"

	"github.com/hotelreservation/backend/internal/domain/entities"
	"github.com/hotelreservation/backend/internal/domain/repositories"
	apperrors "github.com/hotelreservation/backend/pkg/errors"
)

// CatalogService provides read access to clients and rooms
type CatalogService struct {
	clients      repositories.ClientRepository
	rooms        repositories.RoomRepository
	reservations repositories.ReservationsByClientLoader
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	clients repositories.ClientRepository,
	rooms repositories.RoomRepository,
	reservations repositories.ReservationsByClientLoader,
) *CatalogService {
	return &CatalogService{
		clients:      clients,
		rooms:        rooms,
		reservations: reservations,
	}
}

// GetClient retrieves a client by ID
func (s *CatalogService) GetClient(ctx context.Context, id int64) (*entities.Client, error) {
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperrors.NewClientNotFoundError(id)
	}
	return client, nil
}

// ListClients lists all clients, newest first
func (s *CatalogService) ListClients(ctx context.Context) ([]*entities.Client, error) {
	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	if clients == nil {
		clients = []*entities.Client{}
	}
	return clients, nil
}

// GetRoom retrieves a room by ID
func (s *CatalogService) GetRoom(ctx context.Context, id int64) (*entities.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperrors.NewRoomNotFoundError(id)
	}
	return room, nil
}

// ListRooms lists all rooms by room number
func (s *CatalogService) ListRooms(ctx context.Context) ([]*entities.Room, error) {
	return s.listRooms(ctx, repositories.RoomFilter{})
}

// ListAvailableRooms lists rooms whose availability flag is set
func (s *CatalogService) ListAvailableRooms(ctx context.Context) ([]*entities.Room, error) {
	return s.listRooms(ctx, repositories.RoomFilter{AvailableOnly: true})
}

func (s *CatalogService) listRooms(ctx context.Context, filter repositories.RoomFilter) ([]*entities.Room, error) {
	rooms, err := s.rooms.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if rooms == nil {
		rooms = []*entities.Room{}
	}
	return rooms, nil
}

// ReservationsForClients batch-loads reservations for several clients.
// Every requested id is present in the result, possibly with an empty slice.
func (s *CatalogService) ReservationsForClients(ctx context.Context, clientIDs []int64) (map[int64][]*entities.Reservation, error) {
	grouped, err := s.reservations.ListByClientIDs(ctx, clientIDs)
	if err != nil {
		return nil, err
	}
	if grouped == nil {
		grouped = make(map[int64][]*entities.Reservation, len(clientIDs))
	}
	for _, id := range clientIDs {
		if grouped[id] == nil {
			grouped[id] = []*entities.Reservation{}
		}
	}
	return grouped, nil
}
