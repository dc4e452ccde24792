package get_board

import (
	"context"

	getBoard "github.com/hoteleiro/HFD-ReservationService/internal/usecase/get_board"
)

type GetBoardUseCase interface {
	Execute(ctx context.Context, req *getBoard.Request) (*getBoard.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
