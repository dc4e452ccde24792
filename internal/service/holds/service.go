package holds

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hoteleiro/HFD-ReservationService/internal/domain"
	reservationRepo "github.com/hoteleiro/HFD-ReservationService/internal/infra/storage/reservation"
)

// Hold is a staged move or resize awaiting explicit confirmation at the
// desk. While a hold exists the reservation store is untouched; the board
// renders the candidate placement as optimistic feedback only.
type Hold struct {
	ID        int64
	Change    domain.PendingChange
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the hold outlived its TTL at the given time.
func (h *Hold) Expired(now time.Time) bool {
	return now.After(h.ExpiresAt)
}

// Service is the in-memory hold registry. Holds are transient: a restart
// discards them, never the reservations themselves.
type Service struct {
	mu     sync.Mutex
	holds  map[int64]*Hold
	nextID int64

	reservationRepo  ReservationRepository
	txManager        TransactionManager
	ttl              time.Duration
	allowOverbooking bool
	timeProvider     TimeProvider
	logger           Logger
}

// NewService creates a hold service.
func NewService(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	ttl time.Duration,
	allowOverbooking bool,
	logger Logger,
) *Service {
	return &Service{
		holds:            make(map[int64]*Hold),
		nextID:           1,
		reservationRepo:  reservationRepo,
		txManager:        txManager,
		ttl:              ttl,
		allowOverbooking: allowOverbooking,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// WithTimeProvider replaces the time source. Test hook.
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Stage registers a pending change and returns its hold.
func (s *Service) Stage(change domain.PendingChange) *Hold {
	now := s.timeProvider.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked(now)

	hold := &Hold{
		ID:        s.nextID,
		Change:    change,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	s.nextID++
	s.holds[hold.ID] = hold

	s.logger.Info("Stage: staged %s of reservation id=%d as hold id=%d (room=%d, %s..%s)",
		change.Type, change.ReservationID, hold.ID, change.NewRoomID, change.NewStart, change.NewEnd)

	return hold
}

// Get returns an active hold.
func (s *Service) Get(id int64) (*Hold, error) {
	now := s.timeProvider.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	hold, ok := s.holds[id]
	if !ok {
		return nil, ErrHoldNotFound
	}
	if hold.Expired(now) {
		delete(s.holds, id)
		return nil, ErrHoldExpired
	}
	return hold, nil
}

// Confirm applies a held change to the reservation store and drops the
// hold. The write runs in a serializable transaction; with overbooking
// disabled the target range is conflict-checked under row locks first.
func (s *Service) Confirm(ctx context.Context, id int64) (*domain.Reservation, error) {
	hold, err := s.Get(id)
	if err != nil {
		s.logger.Warn("Confirm: hold id=%d unavailable: %v", id, err)
		return nil, err
	}

	change := hold.Change
	var updated *domain.Reservation

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := s.reservationRepo.GetByID(txCtx, change.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
		}

		if err := s.checkConflict(txCtx, current.ID, change); err != nil {
			return err
		}

		if err := s.reservationRepo.UpdatePlacement(txCtx, change.ReservationID, change.NewRoomID, change.NewStart, change.NewEnd); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
		}

		updated, err = s.reservationRepo.GetByID(txCtx, change.ReservationID)
		if err != nil {
			return fmt.Errorf("%w: Confirm - reload reservation: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.drop(id)
	s.logger.Info("Confirm: applied hold id=%d to reservation id=%d", id, change.ReservationID)

	return updated, nil
}

// Cancel discards a hold without touching the store; the bar snaps back
// to its stored placement. An already expired hold cancels cleanly, the
// confirm dialog may outlive the TTL.
func (s *Service) Cancel(id int64) error {
	s.mu.Lock()
	_, ok := s.holds[id]
	delete(s.holds, id)
	s.mu.Unlock()

	if !ok {
		return ErrHoldNotFound
	}

	s.logger.Info("Cancel: discarded hold id=%d", id)
	return nil
}

func (s *Service) drop(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.holds, id)
}

// sweepLocked removes expired holds. Caller holds the mutex.
func (s *Service) sweepLocked(now time.Time) {
	for id, hold := range s.holds {
		if hold.Expired(now) {
			delete(s.holds, id)
		}
	}
}

func (s *Service) checkConflict(ctx context.Context, reservationID int64, change domain.PendingChange) error {
	if s.allowOverbooking {
		return nil
	}

	others, err := s.reservationRepo.ListByWindow(ctx, domain.WindowFilter{
		RoomIDs: []int64{change.NewRoomID},
		From:    change.NewStart,
		To:      change.NewEnd,
	})
	if err != nil {
		return fmt.Errorf("%w: checkConflict - repository error: %v", ErrInternal, err)
	}

	for _, other := range others {
		if other.ID == reservationID {
			continue
		}
		if other.Overlaps(change.NewRoomID, change.NewStart, change.NewEnd) {
			s.logger.Warn("checkConflict: hold for reservation id=%d conflicts with id=%d in room=%d",
				reservationID, other.ID, change.NewRoomID)
			return ErrRoomConflict
		}
	}

	return nil
}
