package cancel_hold

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hoteleiro/HFD-ReservationService/internal/api/handlers"
	"github.com/hoteleiro/HFD-ReservationService/internal/service/holds"
)

const (
	msgInvalidHoldID = "ID de retenção inválido"
	msgHoldNotFound  = "alteração pendente não encontrada"
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

// Handle POST /api/v1/holds/{holdId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	holdID, err := strconv.ParseInt(vars["holdId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /holds/{id}/cancel - Invalid hold ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHoldID)
		return
	}

	if err := h.service.Cancel(holdID); err != nil {
		switch {
		case errors.Is(err, holds.ErrHoldNotFound):
			h.logger.Warn("POST /holds/{id}/cancel - Hold not found: hold_id=%d", holdID)
			handlers.RespondNotFound(w, msgHoldNotFound)

		default:
			h.logger.Error("POST /holds/{id}/cancel - Failed to cancel hold: hold_id=%d, error=%v",
				holdID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /holds/{id}/cancel - Hold discarded: hold_id=%d", holdID)
	w.WriteHeader(http.StatusNoContent)
}
