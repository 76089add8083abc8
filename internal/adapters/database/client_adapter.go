package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/doug-martin/goqu/v9"

	"github.com/hotelreservation/backend/internal/domain/entities"
	"github.com/hotelreservation/backend/internal/domain/repositories"
	"github.com/hotelreservation/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/hotelreservation/backend/pkg/errors"
)

// ClientAdapter implements the ClientRepository interface
type ClientAdapter struct {
	client *postgres.Client
}

// NewClientAdapter creates a new client adapter
func NewClientAdapter(client *postgres.Client) repositories.ClientRepository {
	return &ClientAdapter{client: client}
}

// Create creates a new client
func (a *ClientAdapter) Create(ctx context.Context, c *entities.Client) error {
	query, args, err := dialect.Insert("clients").
		Rows(goqu.Record{
			"first_name": c.FirstName,
			"last_name":  c.LastName,
			"email":      c.Email,
			"phone":      c.Phone,
			"address":    c.Address,
		}).
		Returning("id", "created_at").
		Prepared(true).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return apperrors.NewInternalError("failed to create client", err)
	}
	return nil
}

// GetByID retrieves a client by ID
func (a *ClientAdapter) GetByID(ctx context.Context, id int64) (*entities.Client, error) {
	query, args, err := dialect.From("clients").
		Select(clientColumns...).
		Where(goqu.C("id").Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	c, err := scanClient(a.client.DB().QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get client", err)
	}
	return c, nil
}

// List retrieves all clients, newest first
func (a *ClientAdapter) List(ctx context.Context) ([]*entities.Client, error) {
	query, args, err := dialect.From("clients").
		Select(clientColumns...).
		Order(goqu.C("created_at").Desc(), goqu.C("id").Desc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list clients", err)
	}
	defer rows.Close()

	clients := []*entities.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan client", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate clients", err)
	}
	return clients, nil
}
