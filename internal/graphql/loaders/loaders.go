package loaders

import (
	"context"
	"net/http"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/hotelreservation/backend/internal/domain/entities"
)

type ctxKey string

const loadersKey ctxKey = "dataloaders"

// ReservationBatcher returns reservations for many clients at once.
// Every requested id must be present in the result.
type ReservationBatcher interface {
	ReservationsForClients(ctx context.Context, clientIDs []int64) (map[int64][]*entities.Reservation, error)
}

// Loaders contains all the dataloaders for one request
type Loaders struct {
	ClientReservations *dataloader.Loader[int64, []*entities.Reservation]
}

// NewLoaders creates a new instance of Loaders
func NewLoaders(batcher ReservationBatcher) *Loaders {
	return &Loaders{
		ClientReservations: dataloader.NewBatchedLoader(
			func(ctx context.Context, keys []int64) []*dataloader.Result[[]*entities.Reservation] {
				results := make([]*dataloader.Result[[]*entities.Reservation], len(keys))
				grouped, err := batcher.ReservationsForClients(ctx, keys)

				for i, key := range keys {
					if err != nil {
						results[i] = &dataloader.Result[[]*entities.Reservation]{Error: err}
						continue
					}
					reservations := grouped[key]
					if reservations == nil {
						reservations = []*entities.Reservation{}
					}
					results[i] = &dataloader.Result[[]*entities.Reservation]{Data: reservations}
				}
				return results
			},
			dataloader.WithWait[int64, []*entities.Reservation](2*time.Millisecond),
		),
	}
}

// For returns the loaders for a given context, or nil outside a request
func For(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}

// WithLoaders returns a new context with the loaders attached
func WithLoaders(ctx context.Context, loaders *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, loaders)
}

// Middleware attaches fresh loaders to every request so cached results never
// outlive it.
func Middleware(batcher ReservationBatcher, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithLoaders(r.Context(), NewLoaders(batcher))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
