package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/hoteleiro/HFD-ReservationService/internal/domain"
	reservationRepo "github.com/hoteleiro/HFD-ReservationService/internal/infra/storage/reservation"
	roomRepo "github.com/hoteleiro/HFD-ReservationService/internal/infra/storage/room"
	"github.com/hoteleiro/HFD-ReservationService/internal/service/reservations/models"
)

// Service handles reads, editor merges and cancellations of reservations.
type Service struct {
	reservationRepo  ReservationRepository
	roomRepo         RoomRepository
	txManager        TransactionManager
	allowOverbooking bool
	logger           Logger
}

// NewService creates a reservation service. allowOverbooking reproduces
// the desk policy of letting staff resolve conflicts manually; when false
// the service rejects edits that would overlap an active reservation.
func NewService(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	allowOverbooking bool,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo:  reservationRepo,
		roomRepo:         roomRepo,
		txManager:        txManager,
		allowOverbooking: allowOverbooking,
		logger:           logger,
	}
}

// GetByID fetches one reservation.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res), nil
}

// Update merges an editor save back into the stored reservation. Room and
// checkin/checkout edits go through the same conflict policy as board
// gestures.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Update: merging editor changes into reservation id=%d", id)

	if req.Empty() {
		return s.GetByID(ctx, id)
	}

	start, end, err := req.ParseDates()
	if err != nil {
		s.logger.Warn("Update: invalid dates for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: invalid dates: %v", ErrInvalidInput, err)
	}

	if req.RoomID != nil {
		if _, err := s.roomRepo.GetByID(ctx, *req.RoomID); err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				s.logger.Warn("Update: room id=%d not found", *req.RoomID)
				return nil, ErrRoomNotFound
			}
			s.logger.Error("Update: room lookup failed for id=%d: %v", *req.RoomID, err)
			return nil, fmt.Errorf("%w: Update - room lookup: %v", ErrInternal, err)
		}
	}

	var updated *domain.Reservation

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := s.reservationRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		// Merge to obtain the resulting placement before validating it.
		target := current.Placement()
		if req.RoomID != nil {
			target.RoomID = *req.RoomID
		}
		if start != nil {
			target.Start = *start
		}
		if end != nil {
			target.End = *end
		}

		if !target.Start.IsBefore(target.End) {
			return fmt.Errorf("%w: checkout must be after checkin", ErrInvalidInput)
		}

		if err := s.checkConflict(txCtx, current.ID, target); err != nil {
			return err
		}

		fields := reservationRepo.UpdateFields{
			RoomID:        req.RoomID,
			Start:         start,
			End:           end,
			Title:         req.Title,
			People:        req.People,
			RatePerPerson: req.RatePerPerson,
			Notes:         req.Notes,
		}

		if err := s.reservationRepo.Update(txCtx, id, fields); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		updated, err = s.reservationRepo.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("%w: Update - reload reservation: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: successfully updated reservation id=%d", id)
	return models.FromDomainReservation(updated), nil
}

// Cancel soft-cancels a reservation. Checked-in stays are checked out at
// the desk instead and cannot be cancelled here.
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelReservationRequest) error {
	s.logger.Info("Cancel: cancelling reservation id=%d", id)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !res.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", id, res.Status)
		return ErrCannotCancel
	}

	if err := s.reservationRepo.Cancel(ctx, id, req.Reason); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", id)
	return nil
}

// checkConflict rejects the target placement when it overlaps another
// active reservation and overbooking is disabled.
func (s *Service) checkConflict(ctx context.Context, reservationID int64, target domain.Placement) error {
	if s.allowOverbooking {
		return nil
	}

	others, err := s.reservationRepo.ListByWindow(ctx, domain.WindowFilter{
		RoomIDs: []int64{target.RoomID},
		From:    target.Start,
		To:      target.End,
	})
	if err != nil {
		return fmt.Errorf("%w: checkConflict - repository error: %v", ErrInternal, err)
	}

	for _, other := range others {
		if other.ID == reservationID {
			continue
		}
		if other.Overlaps(target.RoomID, target.Start, target.End) {
			s.logger.Warn("checkConflict: reservation id=%d conflicts with id=%d in room=%d",
				reservationID, other.ID, target.RoomID)
			return ErrRoomConflict
		}
	}

	return nil
}
