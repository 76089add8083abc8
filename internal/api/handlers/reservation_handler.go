package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/hotelreservation/backend/internal/domain/entities"
	"github.com/hotelreservation/backend/internal/domain/repositories"
	"github.com/hotelreservation/backend/internal/infrastructure/observability"
	apperrors "github.com/hotelreservation/backend/pkg/errors"
)

// ReservationService defines the booking operations used by the handler
type ReservationService interface {
	CreateReservation(ctx context.Context, input entities.NewReservation) (*entities.Reservation, error)
	UpdateReservation(ctx context.Context, id int64, patch entities.ReservationPatch) (*entities.Reservation, error)
	CancelReservation(ctx context.Context, id int64) (*entities.Reservation, error)
	DeleteReservation(ctx context.Context, id int64) (bool, error)
	GetReservation(ctx context.Context, id int64) (*entities.Reservation, error)
	ListReservationsFiltered(ctx context.Context, filter repositories.ReservationFilter) ([]*entities.Reservation, error)
}

// ReservationHandler handles reservation-related HTTP requests
type ReservationHandler struct {
	service  ReservationService
	validate *validator.Validate
}

// NewReservationHandler creates a new reservation handler
func NewReservationHandler(service ReservationService) *ReservationHandler {
	return &ReservationHandler{
		service:  service,
		validate: newValidator(),
	}
}

// CreateReservation handles POST /api/reservations
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req createReservationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondWithValidationError(w, validationMessage(err))
		return
	}

	observability.LoggerFromContext(r.Context()).Info().
		Int64("client_id", req.ClientID).
		Int64("room_id", req.RoomID).
		Msg("REST: create reservation")

	reservation, err := h.service.CreateReservation(r.Context(), req.toInput())
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, toReservationResponse(reservation))
}

// GetReservation handles GET /api/reservations/{id}
func (h *ReservationHandler) GetReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	reservation, err := h.service.GetReservation(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, toReservationResponse(reservation))
}

// ListReservations handles GET /api/reservations with optional clientId,
// roomId and status filters
func (h *ReservationHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	filter, err := parseReservationFilter(r)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	reservations, err := h.service.ListReservationsFiltered(r.Context(), filter)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, toReservationResponses(reservations))
}

// UpdateReservation handles PUT /api/reservations/{id}. Only the keys present
// in the body are changed.
func (h *ReservationHandler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	var req updateReservationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondWithValidationError(w, validationMessage(err))
		return
	}

	patch, err := req.toPatch()
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	reservation, err := h.service.UpdateReservation(r.Context(), id, patch)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, toReservationResponse(reservation))
}

// DeleteReservation handles DELETE /api/reservations/{id}
func (h *ReservationHandler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	deleted, err := h.service.DeleteReservation(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if !deleted {
		respondWithAppError(w, r, apperrors.NewReservationNotFoundError(id))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CancelReservation handles PATCH /api/reservations/{id}/cancel
func (h *ReservationHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	reservation, err := h.service.CancelReservation(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, toReservationResponse(reservation))
}

// Health handles GET /api/reservations/health
func (h *ReservationHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("REST API is running"))
}

func parseReservationFilter(r *http.Request) (repositories.ReservationFilter, error) {
	var filter repositories.ReservationFilter
	q := r.URL.Query()

	parseID := func(name string) (*int64, error) {
		raw := q.Get(name)
		if raw == "" {
			return nil, nil
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return nil, apperrors.NewValidationError(fmt.Sprintf("%s must be a positive integer, got %q", name, raw))
		}
		return &id, nil
	}

	var err error
	if filter.ClientID, err = parseID("clientId"); err != nil {
		return filter, err
	}
	if filter.RoomID, err = parseID("roomId"); err != nil {
		return filter, err
	}
	if raw := q.Get("status"); raw != "" {
		status := entities.ReservationStatus(raw)
		if !status.IsValid() {
			return filter, apperrors.NewValidationError(fmt.Sprintf("status must be one of [PENDING CONFIRMED CANCELLED COMPLETED], got %q", raw))
		}
		filter.Status = &status
	}
	return filter, nil
}
