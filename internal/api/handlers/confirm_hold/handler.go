package confirm_hold

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hoteleiro/HFD-ReservationService/internal/api/handlers"
	"github.com/hoteleiro/HFD-ReservationService/internal/service/holds"
	"github.com/hoteleiro/HFD-ReservationService/internal/service/reservations/models"
)

const (
	msgInvalidHoldID       = "ID de retenção inválido"
	msgHoldNotFound        = "alteração pendente não encontrada"
	msgHoldExpired         = "a alteração pendente expirou"
	msgReservationNotFound = "reserva não encontrada"
	msgRoomConflict        = "o quarto já está ocupado nas datas solicitadas"
)

type Handler struct {
	service HoldService
	logger  Logger
}

func NewHandler(service HoldService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/holds/{holdId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	holdID, err := strconv.ParseInt(vars["holdId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /holds/{id}/confirm - Invalid hold ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHoldID)
		return
	}

	reservation, err := h.service.Confirm(r.Context(), holdID)
	if err != nil {
		switch {
		case errors.Is(err, holds.ErrHoldNotFound):
			h.logger.Warn("POST /holds/{id}/confirm - Hold not found: hold_id=%d", holdID)
			handlers.RespondNotFound(w, msgHoldNotFound)

		case errors.Is(err, holds.ErrHoldExpired):
			h.logger.Warn("POST /holds/{id}/confirm - Hold expired: hold_id=%d", holdID)
			handlers.RespondError(w, http.StatusGone, msgHoldExpired)

		case errors.Is(err, holds.ErrReservationNotFound):
			h.logger.Warn("POST /holds/{id}/confirm - Reservation gone: hold_id=%d", holdID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, holds.ErrRoomConflict):
			h.logger.Warn("POST /holds/{id}/confirm - Room conflict: hold_id=%d", holdID)
			handlers.RespondError(w, http.StatusConflict, msgRoomConflict)

		default:
			h.logger.Error("POST /holds/{id}/confirm - Failed to confirm hold: hold_id=%d, error=%v",
				holdID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /holds/{id}/confirm - Hold confirmed: hold_id=%d, reservation_id=%d",
		holdID, reservation.ID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainReservation(reservation))
}
