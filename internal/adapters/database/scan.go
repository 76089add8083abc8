package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/lib/pq"

	"github.com/hotelreservation/backend/internal/domain/entities"
)

// dialect builds prepared ($n placeholder) PostgreSQL statements
var dialect = goqu.Dialect("postgres")

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

const foreignKeyViolation = "23503"

// foreignKeyColumn returns the referencing column named by a foreign key
// violation, or "" when err is not one.
func foreignKeyColumn(err error) string {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != foreignKeyViolation {
		return ""
	}
	switch {
	case strings.Contains(pqErr.Constraint, "client_id"):
		return "client_id"
	case strings.Contains(pqErr.Constraint, "room_id"):
		return "room_id"
	}
	return pqErr.Constraint
}

func formatDate(t time.Time) string {
	return t.Format(entities.DateLayout)
}

// asDate drops the driver's time zone from a DATE column so the calendar
// day reads the same everywhere.
func asDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func nullableTime(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}

var roomColumns = []any{
	"id", "room_number", "room_type", "price_per_night", "capacity",
	"description", "amenities", "is_available", "created_at",
}

func scanRoom(row rowScanner) (*entities.Room, error) {
	room := &entities.Room{}
	var description sql.NullString
	var amenities pq.StringArray

	err := row.Scan(
		&room.ID,
		&room.RoomNumber,
		&room.RoomType,
		&room.PricePerNight,
		&room.Capacity,
		&description,
		&amenities,
		&room.IsAvailable,
		&room.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	room.Description = nullableString(description)
	room.Amenities = []string(amenities)
	if room.Amenities == nil {
		room.Amenities = []string{}
	}
	return room, nil
}

var clientColumns = []any{
	"id", "first_name", "last_name", "email", "phone", "address", "created_at", "updated_at",
}

func scanClient(row rowScanner) (*entities.Client, error) {
	client := &entities.Client{}
	var phone, address sql.NullString
	var updatedAt sql.NullTime

	err := row.Scan(
		&client.ID,
		&client.FirstName,
		&client.LastName,
		&client.Email,
		&phone,
		&address,
		&client.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	client.Phone = nullableString(phone)
	client.Address = nullableString(address)
	client.UpdatedAt = nullableTime(updatedAt)
	return client, nil
}

// reservationColumns selects a reservation joined with its client (c) and room (rm)
var reservationColumns = []any{
	goqu.I("r.id"), goqu.I("r.client_id"), goqu.I("r.room_id"),
	goqu.I("r.check_in_date"), goqu.I("r.check_out_date"), goqu.I("r.number_of_guests"),
	goqu.I("r.total_price"), goqu.I("r.status"), goqu.I("r.special_requests"),
	goqu.I("r.created_at"), goqu.I("r.updated_at"),
	goqu.I("c.first_name"), goqu.I("c.last_name"), goqu.I("c.email"),
	goqu.I("c.phone"), goqu.I("c.address"), goqu.I("c.created_at"), goqu.I("c.updated_at"),
	goqu.I("rm.room_number"), goqu.I("rm.room_type"), goqu.I("rm.price_per_night"),
	goqu.I("rm.capacity"), goqu.I("rm.description"), goqu.I("rm.amenities"),
	goqu.I("rm.is_available"), goqu.I("rm.created_at"),
}

func joinedReservations() *goqu.SelectDataset {
	return dialect.From(goqu.T("reservations").As("r")).
		Join(goqu.T("clients").As("c"), goqu.On(goqu.I("r.client_id").Eq(goqu.I("c.id")))).
		Join(goqu.T("rooms").As("rm"), goqu.On(goqu.I("r.room_id").Eq(goqu.I("rm.id")))).
		Select(reservationColumns...).
		Prepared(true)
}

func newestFirst(ds *goqu.SelectDataset) *goqu.SelectDataset {
	return ds.Order(goqu.I("r.created_at").Desc(), goqu.I("r.id").Desc())
}

func scanReservation(row rowScanner) (*entities.Reservation, error) {
	r := &entities.Reservation{}
	var specialRequests, phone, address, description sql.NullString
	var updatedAt, clientUpdatedAt sql.NullTime
	var amenities pq.StringArray

	err := row.Scan(
		&r.ID,
		&r.ClientID,
		&r.RoomID,
		&r.CheckInDate,
		&r.CheckOutDate,
		&r.NumberOfGuests,
		&r.TotalPrice,
		&r.Status,
		&specialRequests,
		&r.CreatedAt,
		&updatedAt,
		&r.Client.FirstName,
		&r.Client.LastName,
		&r.Client.Email,
		&phone,
		&address,
		&r.Client.CreatedAt,
		&clientUpdatedAt,
		&r.Room.RoomNumber,
		&r.Room.RoomType,
		&r.Room.PricePerNight,
		&r.Room.Capacity,
		&description,
		&amenities,
		&r.Room.IsAvailable,
		&r.Room.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	r.CheckInDate = asDate(r.CheckInDate)
	r.CheckOutDate = asDate(r.CheckOutDate)
	r.SpecialRequests = nullableString(specialRequests)
	r.UpdatedAt = nullableTime(updatedAt)

	r.Client.ID = r.ClientID
	r.Client.Phone = nullableString(phone)
	r.Client.Address = nullableString(address)
	r.Client.UpdatedAt = nullableTime(clientUpdatedAt)

	r.Room.ID = r.RoomID
	r.Room.Description = nullableString(description)
	r.Room.Amenities = []string(amenities)
	if r.Room.Amenities == nil {
		r.Room.Amenities = []string{}
	}
	return r, nil
}

func collectReservations(rows *sql.Rows) ([]*entities.Reservation, error) {
	defer rows.Close()

	reservations := []*entities.Reservation{}
	for rows.Next() {
		r, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, r)
	}
	return reservations, rows.Err()
}
