package loaders

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelreservation/backend/internal/domain/entities"
)

type recordingBatcher struct {
	mu      sync.Mutex
	batches [][]int64
	err     error
}

func (b *recordingBatcher) ReservationsForClients(_ context.Context, ids []int64) (map[int64][]*entities.Reservation, error) {
	b.mu.Lock()
	b.batches = append(b.batches, append([]int64(nil), ids...))
	b.mu.Unlock()
	if b.err != nil {
		return nil, b.err
	}
	out := map[int64][]*entities.Reservation{}
	for _, id := range ids {
		if id%2 == 1 {
			out[id] = []*entities.Reservation{{ID: id * 10, ClientID: id}}
		}
	}
	return out, nil
}

func TestClientReservations_BatchesConcurrentLoads(t *testing.T) {
	batcher := &recordingBatcher{}
	l := NewLoaders(batcher)
	ctx := context.Background()

	thunks := []func() ([]*entities.Reservation, error){
		l.ClientReservations.Load(ctx, 1),
		l.ClientReservations.Load(ctx, 2),
		l.ClientReservations.Load(ctx, 3),
	}

	first, err := thunks[0]()
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, int64(10), first[0].ID)

	second, err := thunks[1]()
	require.NoError(t, err)
	assert.NotNil(t, second)
	assert.Empty(t, second)

	_, err = thunks[2]()
	require.NoError(t, err)

	require.Len(t, batcher.batches, 1)
	assert.ElementsMatch(t, []int64{1, 2, 3}, batcher.batches[0])
}

func TestClientReservations_PropagatesErrors(t *testing.T) {
	cause := errors.New("database unavailable")
	l := NewLoaders(&recordingBatcher{err: cause})

	_, err := l.ClientReservations.Load(context.Background(), 1)()
	assert.ErrorIs(t, err, cause)
}

func TestMiddleware_AttachesLoaders(t *testing.T) {
	var seen *Loaders
	handler := Middleware(&recordingBatcher{}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = For(r.Context())
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/graphql", nil))

	assert.NotNil(t, seen)
	assert.Nil(t, For(context.Background()))
}
