package create_reservation

import (
	"context"
	"time"

	"github.com/hoteleiro/HFD-ReservationService/internal/domain"
	"github.com/hoteleiro/HFD-ReservationService/internal/integrations/cnpj"
	"github.com/hoteleiro/HFD-ReservationService/internal/integrations/guestregistry"
)

// ReservationRepository is the persistence interface for reservations
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	ListByWindow(ctx context.Context, filter domain.WindowFilter) ([]*domain.Reservation, error)
}

// RoomRepository is the read interface for the static room table
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// GuestRegistryClient resolves registered people by id
type GuestRegistryClient interface {
	GetGuestWithGracefulDegradation(ctx context.Context, guestID int64) (*guestregistry.Guest, error)
}

// CnpjClient resolves company names by tax id
type CnpjClient interface {
	GetCompanyWithGracefulDegradation(ctx context.Context, rawCnpj string) (*cnpj.Company, error)
}

// TransactionManager runs functions inside database transactions
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
