package reservations

import (
	"context"

	"github.com/hoteleiro/HFD-ReservationService/internal/domain"
	reservationRepo "github.com/hoteleiro/HFD-ReservationService/internal/infra/storage/reservation"
)

// ReservationRepository is the persistence interface used by the service.
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ListByWindow(ctx context.Context, filter domain.WindowFilter) ([]*domain.Reservation, error)
	Update(ctx context.Context, id int64, fields reservationRepo.UpdateFields) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// RoomRepository is the room lookup interface used by the service.
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// TransactionManager runs functions inside database transactions.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
