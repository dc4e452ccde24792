package stage_gesture

import (
	"context"

	stageGesture "github.com/hoteleiro/HFD-ReservationService/internal/usecase/stage_gesture"
)

type StageGestureUseCase interface {
	Execute(ctx context.Context, req *stageGesture.Request) (*stageGesture.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
