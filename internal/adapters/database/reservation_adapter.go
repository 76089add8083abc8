package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/hotelreservation/backend/internal/domain/entities"
	"github.com/hotelreservation/backend/internal/domain/repositories"
	"github.com/hotelreservation/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/hotelreservation/backend/pkg/errors"
)

// ReservationAdapter implements the ReservationStore interface on PostgreSQL.
//
// Inside WithinTx the adapter runs on a READ COMMITTED transaction and
// FindRoom locks the room row, so concurrent creates for one room run one
// after another and each sees the reservations committed before it.
type ReservationAdapter struct {
	client *postgres.Client
	conn   querier
	inTx   bool
	now    func() time.Time
}

// NewReservationAdapter creates a new reservation adapter
func NewReservationAdapter(client *postgres.Client) *ReservationAdapter {
	return &ReservationAdapter{
		client: client,
		conn:   client.DB(),
		now:    time.Now,
	}
}

var _ repositories.ReservationStore = (*ReservationAdapter)(nil)
var _ repositories.ReservationsByClientLoader = (*ReservationAdapter)(nil)

// WithinTx runs fn on a transactional copy of the adapter
func (a *ReservationAdapter) WithinTx(ctx context.Context, fn func(store repositories.ReservationStore) error) error {
	if a.inTx {
		return fn(a)
	}

	tx, err := a.client.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return apperrors.NewInternalError("failed to begin transaction", err)
	}

	txAdapter := &ReservationAdapter{client: a.client, conn: tx, inTx: true, now: a.now}
	if err := fn(txAdapter); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, apperrors.NewInternalError("failed to roll back transaction", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewInternalError("failed to commit transaction", err)
	}
	return nil
}

// FindRoom retrieves a room by ID
func (a *ReservationAdapter) FindRoom(ctx context.Context, roomID int64) (*entities.Room, error) {
	ds := dialect.From("rooms").
		Select(roomColumns...).
		Where(goqu.C("id").Eq(roomID)).
		Prepared(true)
	if a.inTx {
		ds = ds.ForUpdate(exp.Wait)
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build room query", err)
	}

	room, err := scanRoom(a.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get room", err)
	}
	return room, nil
}

// FindReservation retrieves a joined reservation by ID
func (a *ReservationAdapter) FindReservation(ctx context.Context, id int64) (*entities.Reservation, error) {
	query, args, err := joinedReservations().
		Where(goqu.I("r.id").Eq(id)).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	reservation, err := scanReservation(a.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get reservation", err)
	}
	return reservation, nil
}

// overlapCondition matches stays sharing at least one date with
// [checkIn, checkOut], boundaries included: a stay ending on the requested
// check-in day conflicts.
func overlapCondition(checkIn, checkOut time.Time) exp.Expression {
	in, out := formatDate(checkIn), formatDate(checkOut)
	return goqu.Or(
		goqu.I("r.check_in_date").Between(goqu.Range(in, out)),
		goqu.I("r.check_out_date").Between(goqu.Range(in, out)),
		goqu.L("?::date BETWEEN r.check_in_date AND r.check_out_date", in),
	)
}

// FindOverlapping retrieves non-cancelled reservations of a room that share a date with the range
func (a *ReservationAdapter) FindOverlapping(ctx context.Context, roomID int64, checkIn, checkOut time.Time) ([]*entities.Reservation, error) {
	query, args, err := joinedReservations().
		Where(
			goqu.I("r.room_id").Eq(roomID),
			goqu.I("r.status").Neq(entities.ReservationStatusCancelled),
			overlapCondition(checkIn, checkOut),
		).
		Order(goqu.I("r.check_in_date").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build overlap query", err)
	}

	rows, err := a.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to query overlapping reservations", err)
	}

	reservations, err := collectReservations(rows)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to scan overlapping reservations", err)
	}
	return reservations, nil
}

// InsertReservation creates a new reservation and returns its ID
func (a *ReservationAdapter) InsertReservation(ctx context.Context, record entities.ReservationRecord) (int64, error) {
	query, args, err := dialect.Insert("reservations").
		Rows(goqu.Record{
			"client_id":        record.ClientID,
			"room_id":          record.RoomID,
			"check_in_date":    formatDate(record.CheckInDate),
			"check_out_date":   formatDate(record.CheckOutDate),
			"number_of_guests": record.NumberOfGuests,
			"total_price":      record.TotalPrice,
			"status":           record.Status,
			"special_requests": record.SpecialRequests,
		}).
		Returning("id").
		Prepared(true).
		ToSQL()
	if err != nil {
		return 0, apperrors.NewInternalError("failed to build insert query", err)
	}

	var id int64
	err = a.conn.QueryRowContext(ctx, query, args...).Scan(&id)
	if err != nil {
		if mapped := a.mapForeignKey(err, record.ClientID, record.RoomID); mapped != nil {
			return 0, mapped
		}
		return 0, apperrors.NewInternalError("failed to create reservation", err)
	}
	return id, nil
}

// patchRecord translates the fields present in patch into column values
func (a *ReservationAdapter) patchRecord(patch entities.ReservationPatch) goqu.Record {
	record := goqu.Record{"updated_at": a.now()}

	if v, ok := patch.ClientID.Get(); ok {
		record["client_id"] = v
	}
	if v, ok := patch.RoomID.Get(); ok {
		record["room_id"] = v
	}
	if v, ok := patch.CheckInDate.Get(); ok {
		record["check_in_date"] = formatDate(v)
	}
	if v, ok := patch.CheckOutDate.Get(); ok {
		record["check_out_date"] = formatDate(v)
	}
	if v, ok := patch.NumberOfGuests.Get(); ok {
		record["number_of_guests"] = v
	}
	if v, ok := patch.SpecialRequests.Get(); ok {
		record["special_requests"] = v
	}
	if v, ok := patch.Status.Get(); ok {
		record["status"] = v
	}
	return record
}

// UpdateReservation writes the fields present in patch
func (a *ReservationAdapter) UpdateReservation(ctx context.Context, id int64, patch entities.ReservationPatch) error {
	query, args, err := dialect.Update("reservations").
		Set(a.patchRecord(patch)).
		Where(goqu.C("id").Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.conn.ExecContext(ctx, query, args...)
	if err != nil {
		clientID, _ := patch.ClientID.Get()
		roomID, _ := patch.RoomID.Get()
		if mapped := a.mapForeignKey(err, clientID, roomID); mapped != nil {
			return mapped
		}
		return apperrors.NewInternalError("failed to update reservation", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewReservationNotFoundError(id)
	}
	return nil
}

// DeleteReservation permanently removes a reservation
func (a *ReservationAdapter) DeleteReservation(ctx context.Context, id int64) (bool, error) {
	query, args, err := dialect.Delete("reservations").
		Where(goqu.C("id").Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return false, apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, apperrors.NewInternalError("failed to delete reservation", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.NewInternalError("failed to get rows affected", err)
	}
	return rowsAffected > 0, nil
}

// ListReservations retrieves joined reservations, newest first
func (a *ReservationAdapter) ListReservations(ctx context.Context, filter repositories.ReservationFilter) ([]*entities.Reservation, error) {
	ds := joinedReservations()

	if filter.ClientID != nil {
		ds = ds.Where(goqu.I("r.client_id").Eq(*filter.ClientID))
	}
	if filter.RoomID != nil {
		ds = ds.Where(goqu.I("r.room_id").Eq(*filter.RoomID))
	}
	if filter.Status != nil {
		ds = ds.Where(goqu.I("r.status").Eq(*filter.Status))
	}

	query, args, err := newestFirst(ds).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list reservations", err)
	}

	reservations, err := collectReservations(rows)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to scan reservation", err)
	}
	return reservations, nil
}

// ListByClientIDs retrieves reservations for several clients in one query
func (a *ReservationAdapter) ListByClientIDs(ctx context.Context, clientIDs []int64) (map[int64][]*entities.Reservation, error) {
	grouped := make(map[int64][]*entities.Reservation, len(clientIDs))
	if len(clientIDs) == 0 {
		return grouped, nil
	}

	query, args, err := newestFirst(joinedReservations().
		Where(goqu.I("r.client_id").In(clientIDs))).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list reservations", err)
	}

	reservations, err := collectReservations(rows)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to scan reservation", err)
	}

	for _, r := range reservations {
		grouped[r.ClientID] = append(grouped[r.ClientID], r)
	}
	return grouped, nil
}

func (a *ReservationAdapter) mapForeignKey(err error, clientID, roomID int64) error {
	switch foreignKeyColumn(err) {
	case "client_id":
		return apperrors.NewClientNotFoundError(clientID)
	case "room_id":
		return apperrors.NewRoomNotFoundError(roomID)
	case "":
		return nil
	default:
		return apperrors.NewInternalError(fmt.Sprintf("foreign key violation on %s", foreignKeyColumn(err)), err)
	}
}
