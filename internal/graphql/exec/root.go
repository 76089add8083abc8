package exec

import (
	"context"
	_ "embed"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/hotelreservation/backend/internal/domain/entities"
	"github.com/hotelreservation/backend/internal/graphql/model"
)

//go:embed schema.graphqls
var sourceData string

// SDL returns the schema definition served at /schema.graphql
func SDL() string {
	return sourceData
}

var parsedSchema = gqlparser.MustLoadSchema(&ast.Source{Name: "schema.graphqls", Input: sourceData, BuiltIn: false})

// ResolverRoot gives the executor access to every resolver group
type ResolverRoot interface {
	Query() QueryResolver
	Mutation() MutationResolver
	Client() ClientResolver
}

type QueryResolver interface {
	GetReservation(ctx context.Context, id string) (*entities.Reservation, error)
	GetAllReservations(ctx context.Context) ([]*entities.Reservation, error)
	GetReservationsByClient(ctx context.Context, clientID string) ([]*entities.Reservation, error)
	GetReservationsByRoom(ctx context.Context, roomID string) ([]*entities.Reservation, error)
	GetReservationsByStatus(ctx context.Context, status entities.ReservationStatus) ([]*entities.Reservation, error)
	GetClient(ctx context.Context, id string) (*entities.Client, error)
	GetAllClients(ctx context.Context) ([]*entities.Client, error)
	GetRoom(ctx context.Context, id string) (*entities.Room, error)
	GetAllRooms(ctx context.Context) ([]*entities.Room, error)
	GetAvailableRooms(ctx context.Context) ([]*entities.Room, error)
}

type MutationResolver interface {
	CreateReservation(ctx context.Context, input model.CreateReservationInput) (*entities.Reservation, error)
	UpdateReservation(ctx context.Context, id string, input model.UpdateReservationInput) (*entities.Reservation, error)
	DeleteReservation(ctx context.Context, id string) (bool, error)
	CancelReservation(ctx context.Context, id string) (*entities.Reservation, error)
}

type ClientResolver interface {
	Reservations(ctx context.Context, obj *entities.Client) ([]*entities.Reservation, error)
}
