package get_rooms

import (
	"net/http"

	"github.com/hoteleiro/HFD-ReservationService/internal/api/handlers"
	"github.com/hoteleiro/HFD-ReservationService/internal/domain"
)

type Handler struct {
	roomRepo RoomRepository
	logger   Logger
}

func NewHandler(roomRepo RoomRepository, logger Logger) *Handler {
	return &Handler{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// RoomResponse HTTP response model
type RoomResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Handle GET /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.roomRepo.List(r.Context())
	if err != nil {
		h.logger.Error("GET /rooms - Failed to list rooms: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		response = append(response, RoomResponse{
			ID:       room.ID,
			Name:     room.Name,
			Category: string(domain.CategoryForRoom(room.ID)),
		})
	}

	h.logger.Info("GET /rooms - %d rooms listed", len(response))
	handlers.RespondJSON(w, http.StatusOK, response)
}
