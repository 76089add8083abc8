package routes

import (
	"net/http"

	"github.com/hotelreservation/backend/internal/api/handlers"
	"github.com/hotelreservation/backend/internal/api/middleware"
	"github.com/hotelreservation/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	reservationHandler *handlers.ReservationHandler
	catalogHandler     *handlers.CatalogHandler

	metrics *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	reservationHandler *handlers.ReservationHandler,
	catalogHandler *handlers.CatalogHandler,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:                http.NewServeMux(),
		reservationHandler: reservationHandler,
		catalogHandler:     catalogHandler,
		metrics:            metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	r.mux.HandleFunc("GET /health", HealthHandler)

	// Reservation endpoints
	r.mux.HandleFunc("GET /api/reservations/health", r.reservationHandler.Health)
	r.mux.HandleFunc("POST /api/reservations", r.reservationHandler.CreateReservation)
	r.mux.HandleFunc("GET /api/reservations", r.reservationHandler.ListReservations)
	r.mux.HandleFunc("GET /api/reservations/{id}", r.reservationHandler.GetReservation)
	r.mux.HandleFunc("PUT /api/reservations/{id}", r.reservationHandler.UpdateReservation)
	r.mux.HandleFunc("DELETE /api/reservations/{id}", r.reservationHandler.DeleteReservation)
	r.mux.HandleFunc("PATCH /api/reservations/{id}/cancel", r.reservationHandler.CancelReservation)

	// Room endpoints
	r.mux.HandleFunc("GET /api/rooms", r.catalogHandler.ListRooms)
	r.mux.HandleFunc("GET /api/rooms/available", r.catalogHandler.ListAvailableRooms)
	r.mux.HandleFunc("GET /api/rooms/{id}", r.catalogHandler.GetRoom)

	// Client endpoints
	r.mux.HandleFunc("GET /api/clients", r.catalogHandler.ListClients)
	r.mux.HandleFunc("GET /api/clients/{id}", r.catalogHandler.GetClient)
	r.mux.HandleFunc("GET /api/clients/{id}/reservations", r.catalogHandler.ListClientReservations)

	return Wrap(r.mux, r.metrics)
}

// Wrap applies the shared middleware chain. The last middleware applied is
// the outermost; CORS wraps everything so preflights short-circuit first.
func Wrap(handler http.Handler, metrics *observability.Metrics) http.Handler {
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(metrics)(handler)
	handler = middleware.ResponseOptimization(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.CORSMiddleware(handler)
	return handler
}

// HealthHandler answers liveness probes
func HealthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
