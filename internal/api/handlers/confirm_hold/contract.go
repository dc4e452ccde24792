package confirm_hold

import (
	"context"

	"github.com/hoteleiro/HFD-ReservationService/internal/domain"
)

type HoldService interface {
	Confirm(ctx context.Context, id int64) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
