package get_board

import (
	"errors"
	"net/http"

	"github.com/hoteleiro/HFD-ReservationService/internal/api/handlers"
	getBoard "github.com/hoteleiro/HFD-ReservationService/internal/usecase/get_board"
)

const (
	msgInvalidMonth = "mês inválido, esperado YYYY-MM"
)

type Handler struct {
	useCase GetBoardUseCase
	logger  Logger
}

func NewHandler(useCase GetBoardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/board?month=YYYY-MM
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	result, err := h.useCase.Execute(r.Context(), &getBoard.Request{Month: month})
	if err != nil {
		switch {
		case errors.Is(err, getBoard.ErrInvalidInput):
			h.logger.Warn("GET /board - Invalid month %q: %v", month, err)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /board - Failed to build board: month=%q, error=%v", month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /board - Board built: window_start=%s, bars=%d",
		result.WindowStart, len(result.Bars))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
