package stage_gesture

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hoteleiro/HFD-ReservationService/internal/api/handlers"
	stageGesture "github.com/hoteleiro/HFD-ReservationService/internal/usecase/stage_gesture"
)

const (
	msgInvalidReservationID = "ID de reserva inválido"
	msgInvalidRequestBody   = "corpo da requisição inválido"
	msgNotFound             = "reserva não encontrada"
	msgImmovable            = "a reserva não pode ser movida no estado atual"
	msgInvalidGesture       = "gesto inválido"
	msgInvalidInput         = "dados do gesto inválidos"
)

type Handler struct {
	useCase StageGestureUseCase
	logger  Logger
}

func NewHandler(useCase StageGestureUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{reservationId}/gestures
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/gestures - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req StageGestureRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/{id}/gestures - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &stageGesture.Request{
		ReservationID: reservationID,
		Kind:          req.Kind,
		X:             req.X,
		Y:             req.Y,
		Month:         req.Month,
	})
	if err != nil {
		switch {
		case errors.Is(err, stageGesture.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/gestures - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, stageGesture.ErrReservationImmovable):
			h.logger.Warn("POST /reservations/{id}/gestures - Immovable: reservation_id=%d", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgImmovable)

		case errors.Is(err, stageGesture.ErrInvalidGesture):
			h.logger.Warn("POST /reservations/{id}/gestures - Invalid gesture: reservation_id=%d, kind=%q",
				reservationID, req.Kind)
			handlers.RespondBadRequest(w, msgInvalidGesture)

		case errors.Is(err, stageGesture.ErrInvalidInput):
			h.logger.Warn("POST /reservations/{id}/gestures - Invalid input: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations/{id}/gestures - Failed to stage gesture: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Gesture ended where it started: nothing staged.
	if result == nil {
		h.logger.Info("POST /reservations/{id}/gestures - No change: reservation_id=%d", reservationID)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.logger.Info("POST /reservations/{id}/gestures - Hold staged: reservation_id=%d, hold_id=%d",
		reservationID, result.HoldID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
