package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/hotelreservation/backend/internal/domain/entities"
)

// CatalogService defines the room and client lookups used by the handler
type CatalogService interface {
	GetClient(ctx context.Context, id int64) (*entities.Client, error)
	ListClients(ctx context.Context) ([]*entities.Client, error)
	GetRoom(ctx context.Context, id int64) (*entities.Room, error)
	ListRooms(ctx context.Context) ([]*entities.Room, error)
	ListAvailableRooms(ctx context.Context) ([]*entities.Room, error)
	ReservationsForClients(ctx context.Context, clientIDs []int64) (map[int64][]*entities.Reservation, error)
}

// CatalogHandler serves the read-only room and client endpoints
type CatalogHandler struct {
	service CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

type roomResponse struct {
	ID            int64       `json:"id"`
	RoomNumber    string      `json:"roomNumber"`
	RoomType      string      `json:"roomType"`
	PricePerNight json.Number `json:"pricePerNight"`
	Capacity      int         `json:"capacity"`
	Description   *string     `json:"description"`
	Amenities     []string    `json:"amenities"`
	IsAvailable   bool        `json:"isAvailable"`
	CreatedAt     time.Time   `json:"createdAt"`
}

func toRoomResponse(room *entities.Room) roomResponse {
	amenities := room.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return roomResponse{
		ID:            room.ID,
		RoomNumber:    room.RoomNumber,
		RoomType:      string(room.RoomType),
		PricePerNight: money(room.PricePerNight),
		Capacity:      room.Capacity,
		Description:   room.Description,
		Amenities:     amenities,
		IsAvailable:   room.IsAvailable,
		CreatedAt:     room.CreatedAt.UTC(),
	}
}

func toRoomResponses(rooms []*entities.Room) []roomResponse {
	out := make([]roomResponse, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, toRoomResponse(room))
	}
	return out
}

// ListRooms handles GET /api/rooms
func (h *CatalogHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.ListRooms(r.Context())
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, toRoomResponses(rooms))
}

// ListAvailableRooms handles GET /api/rooms/available
func (h *CatalogHandler) ListAvailableRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.ListAvailableRooms(r.Context())
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, toRoomResponses(rooms))
}

// GetRoom handles GET /api/rooms/{id}
func (h *CatalogHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	room, err := h.service.GetRoom(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, toRoomResponse(room))
}

// ListClients handles GET /api/clients
func (h *CatalogHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.service.ListClients(r.Context())
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if clients == nil {
		clients = []*entities.Client{}
	}
	respondWithJSON(w, http.StatusOK, clients)
}

// GetClient handles GET /api/clients/{id}
func (h *CatalogHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	client, err := h.service.GetClient(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, client)
}

// ListClientReservations handles GET /api/clients/{id}/reservations
func (h *CatalogHandler) ListClientReservations(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	// Unknown clients are a 404, not an empty list.
	if _, err := h.service.GetClient(r.Context(), id); err != nil {
		respondWithAppError(w, r, err)
		return
	}

	grouped, err := h.service.ReservationsForClients(r.Context(), []int64{id})
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, toReservationResponses(grouped[id]))
}
