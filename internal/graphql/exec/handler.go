package exec

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/handler/lru"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/hotelreservation/backend/internal/infrastructure/observability"
)

// NewServer serves the executor over HTTP. GET runs queries only, POST
// accepts application/json bodies.
func NewServer(executor *Executor) *handler.Server {
	srv := handler.New(executor)

	// Configure transports
	srv.AddTransport(transport.Options{})
	srv.AddTransport(transport.GET{})
	srv.AddTransport(transport.POST{})

	// Set up Query Cache (LRU)
	srv.SetQueryCache(lru.New[*ast.QueryDocument](1000))

	// Playground and schema tooling rely on introspection
	srv.Use(extension.Introspection{})

	srv.SetRecoverFunc(func(ctx context.Context, err any) error {
		observability.LoggerFromContext(ctx).Error().Interface("panic", err).Msg("GraphQL resolver panicked")
		return errors.New("internal server error")
	})

	return srv
}

// SchemaHandler serves the SDL as text
func SchemaHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, SDL())
	}
}
