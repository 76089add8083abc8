package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"

	"github.com/hotelreservation/backend/internal/domain/entities"
	"github.com/hotelreservation/backend/internal/domain/repositories"
	"github.com/hotelreservation/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/hotelreservation/backend/pkg/errors"
)

// RoomAdapter implements the RoomRepository interface
type RoomAdapter struct {
	client *postgres.Client
}

// NewRoomAdapter creates a new room adapter
func NewRoomAdapter(client *postgres.Client) repositories.RoomRepository {
	return &RoomAdapter{client: client}
}

// Create creates a new room
func (a *RoomAdapter) Create(ctx context.Context, room *entities.Room) error {
	amenities := room.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	query, args, err := dialect.Insert("rooms").
		Rows(goqu.Record{
			"room_number":     room.RoomNumber,
			"room_type":       room.RoomType,
			"price_per_night": room.PricePerNight,
			"capacity":        room.Capacity,
			"description":     room.Description,
			"amenities":       pq.StringArray(amenities),
			"is_available":    room.IsAvailable,
		}).
		Returning("id", "created_at").
		Prepared(true).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(&room.ID, &room.CreatedAt)
	if err != nil {
		return apperrors.NewInternalError("failed to create room", err)
	}
	room.Amenities = amenities
	return nil
}

// GetByID retrieves a room by ID
func (a *RoomAdapter) GetByID(ctx context.Context, id int64) (*entities.Room, error) {
	query, args, err := dialect.From("rooms").
		Select(roomColumns...).
		Where(goqu.C("id").Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	room, err := scanRoom(a.client.DB().QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get room", err)
	}
	return room, nil
}

// List retrieves rooms ordered by room number
func (a *RoomAdapter) List(ctx context.Context, filter repositories.RoomFilter) ([]*entities.Room, error) {
	ds := dialect.From("rooms").
		Select(roomColumns...).
		Order(goqu.C("room_number").Asc()).
		Prepared(true)
	if filter.AvailableOnly {
		ds = ds.Where(goqu.C("is_available").IsTrue())
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list rooms", err)
	}
	defer rows.Close()

	rooms := []*entities.Room{}
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan room", err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate rooms", err)
	}
	return rooms, nil
}
