package resolvers

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hotelreservation/backend/internal/domain/entities"
	"github.com/hotelreservation/backend/internal/domain/repositories"
	"github.com/hotelreservation/backend/internal/graphql/exec"
	apperrors "github.com/hotelreservation/backend/pkg/errors"
)

// BookingService is the reservation logic the resolvers delegate to
type BookingService interface {
	CreateReservation(ctx context.Context, input entities.NewReservation) (*entities.Reservation, error)
	UpdateReservation(ctx context.Context, id int64, patch entities.ReservationPatch) (*entities.Reservation, error)
	CancelReservation(ctx context.Context, id int64) (*entities.Reservation, error)
	DeleteReservation(ctx context.Context, id int64) (bool, error)
	GetReservation(ctx context.Context, id int64) (*entities.Reservation, error)
	ListReservations(ctx context.Context) ([]*entities.Reservation, error)
	ListReservationsByClient(ctx context.Context, clientID int64) ([]*entities.Reservation, error)
	ListReservationsByRoom(ctx context.Context, roomID int64) ([]*entities.Reservation, error)
	ListReservationsByStatus(ctx context.Context, status entities.ReservationStatus) ([]*entities.Reservation, error)
	ListReservationsFiltered(ctx context.Context, filter repositories.ReservationFilter) ([]*entities.Reservation, error)
}

// CatalogService is the client and room lookup the resolvers delegate to
type CatalogService interface {
	GetClient(ctx context.Context, id int64) (*entities.Client, error)
	ListClients(ctx context.Context) ([]*entities.Client, error)
	GetRoom(ctx context.Context, id int64) (*entities.Room, error)
	ListRooms(ctx context.Context) ([]*entities.Room, error)
	ListAvailableRooms(ctx context.Context) ([]*entities.Room, error)
	ReservationsForClients(ctx context.Context, clientIDs []int64) (map[int64][]*entities.Reservation, error)
}

// Resolver is the dependency root for all resolver groups
type Resolver struct {
	booking BookingService
	catalog CatalogService
}

// NewResolver creates a new resolver with dependencies
func NewResolver(booking BookingService, catalog CatalogService) *Resolver {
	return &Resolver{
		booking: booking,
		catalog: catalog,
	}
}

var _ exec.ResolverRoot = (*Resolver)(nil)

// Query returns the query resolver
func (r *Resolver) Query() exec.QueryResolver { return &queryResolver{r} }

// Mutation returns the mutation resolver
func (r *Resolver) Mutation() exec.MutationResolver { return &mutationResolver{r} }

// Client returns the Client field resolver
func (r *Resolver) Client() exec.ClientResolver { return &clientResolver{r} }

type queryResolver struct{ *Resolver }
type mutationResolver struct{ *Resolver }
type clientResolver struct{ *Resolver }

// parseID converts a GraphQL ID into a database key
func parseID(name, id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return 0, apperrors.NewValidationError(fmt.Sprintf("%s must be a positive integer ID, got %q", name, id))
	}
	return n, nil
}
