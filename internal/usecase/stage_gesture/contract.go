package stage_gesture

import (
	"context"
	"time"

	"github.com/hoteleiro/HFD-ReservationService/internal/domain"
	"github.com/hoteleiro/HFD-ReservationService/internal/service/holds"
)

// ReservationRepository is the read interface for reservations
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

// RoomRepository is the read interface for the static room table
type RoomRepository interface {
	List(ctx context.Context) ([]*domain.Room, error)
}

// HoldService stages pending changes awaiting confirmation
type HoldService interface {
	Stage(change domain.PendingChange) *holds.Hold
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
