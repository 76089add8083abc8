package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/hotelreservation/backend/internal/api/routes"
	"github.com/hotelreservation/backend/internal/app"
	"github.com/hotelreservation/backend/internal/graphql/exec"
	"github.com/hotelreservation/backend/internal/graphql/loaders"
	"github.com/hotelreservation/backend/internal/graphql/resolvers"
	"github.com/hotelreservation/backend/internal/infrastructure/observability"
	"github.com/hotelreservation/backend/pkg/config"
)

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	serviceName := cfg.OTEL.ServiceName + "-graphql"
	observability.InitLogger(serviceName, cfg.Env)

	log.Info().
		Str("service", serviceName).
		Str("version", cfg.OTEL.ServiceVersion).
		Str("env", cfg.Env).
		Msg("Starting GraphQL Server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, serviceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to set up OpenTelemetry")
		} else {
			defer func() {
				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer shutdownCancel()
				if err := shutdown(shutdownCtx); err != nil {
					log.Error().Err(err).Msg("Error shutting down OpenTelemetry")
				}
			}()
			log.Info().Msg("OpenTelemetry initialized successfully")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to initialize metrics")
	}

	application, err := app.New(ctx, cfg, metrics)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}
	defer application.Close()

	server := &http.Server{
		Addr:         cfg.Server.GraphQLAddr(),
		Handler:      newHTTPHandler(application.Booking, application.Catalog, metrics, cfg.IsDevelopment()),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().Str("address", server.Addr).Msg("GraphQL server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("GraphQL server shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("GraphQL server stopped")
}

// newHTTPHandler mounts /graphql, /schema.graphql and /health, plus the
// playground in development
func newHTTPHandler(booking resolvers.BookingService, catalog resolvers.CatalogService, metrics *observability.Metrics, dev bool) http.Handler {
	executor := exec.NewExecutor(resolvers.NewResolver(booking, catalog))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"graphql"}`))
	})
	mux.Handle("/graphql", loaders.Middleware(catalog, exec.NewServer(executor)))
	mux.Handle("GET /schema.graphql", exec.SchemaHandler())

	if dev {
		mux.Handle("GET /playground", playground.Handler("Hotel Reservations", "/graphql"))
		log.Info().Msg("GraphQL Playground available at /playground")
	}

	return routes.Wrap(mux, metrics)
}
