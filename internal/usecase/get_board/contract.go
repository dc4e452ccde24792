package get_board

import (
	"context"
	"time"

	"github.com/hoteleiro/HFD-ReservationService/internal/domain"
)

// ReservationRepository is the read interface for reservations
type ReservationRepository interface {
	ListByWindow(ctx context.Context, filter domain.WindowFilter) ([]*domain.Reservation, error)
}

// RoomRepository is the read interface for the static room table
type RoomRepository interface {
	List(ctx context.Context) ([]*domain.Room, error)
}

// TimeProvider supplies the current time, injectable for tests
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface used by the usecase
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time source
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
