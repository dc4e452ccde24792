package holds

import (
	"context"
	"time"

	"github.com/hoteleiro/HFD-ReservationService/internal/domain"
	"github.com/hoteleiro/HFD-ReservationService/pkg/types"
)

// ReservationRepository is the persistence interface used to apply
// confirmed changes.
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ListByWindow(ctx context.Context, filter domain.WindowFilter) ([]*domain.Reservation, error)
	UpdatePlacement(ctx context.Context, id int64, roomID int64, start, end types.DateString) error
}

// TransactionManager runs functions inside database transactions.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time, injectable for tests.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time source.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
