package stage_gesture

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hoteleiro/HFD-ReservationService/internal/domain"
	reservationRepo "github.com/hoteleiro/HFD-ReservationService/internal/infra/storage/reservation"
	"github.com/hoteleiro/HFD-ReservationService/pkg/types"
)

// UseCase replays a pointer gesture over a reservation bar and stages the
// resulting change as a hold. The reservation store is not touched here;
// only a confirmed hold mutates it.
type UseCase struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	holdService     HoldService
	timeProvider    TimeProvider
	logger          Logger

	layout domain.Layout
}

// NewUseCase creates a new use case instance
func NewUseCase(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	holdService HoldService,
	layout domain.Layout,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		holdService:     holdService,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
		layout:          layout,
	}
}

// WithTimeProvider replaces the time source. Test hook.
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute runs the gesture staging flow
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("StageGesture: reservation=%d, kind=%s, x=%d, y=%d",
		req.ReservationID, req.Kind, req.X, req.Y)

	// 1. Structural validation
	if req.ReservationID <= 0 {
		return nil, fmt.Errorf("%w: reservationId must be positive", ErrInvalidInput)
	}
	kind := domain.GestureKind(req.Kind)
	if !kind.Valid() {
		uc.logger.Warn("StageGesture: unknown gesture kind %q", req.Kind)
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidGesture, req.Kind)
	}

	// 2. Load the reservation
	res, err := uc.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("StageGesture: reservation id=%d not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("StageGesture: failed to get reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	if !res.CanBeMoved() {
		uc.logger.Warn("StageGesture: reservation id=%d has status %s, cannot move",
			res.ID, res.Status)
		return nil, ErrReservationImmovable
	}

	// 3. Build the board rows the pointer moves over
	rooms, err := uc.roomRepo.List(ctx)
	if err != nil {
		uc.logger.Error("StageGesture: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}
	rows := domain.BuildRows(rooms)

	// 4. Resolve the viewed window
	windowStart, err := uc.resolveWindowStart(req.Month)
	if err != nil {
		uc.logger.Warn("StageGesture: bad month %q: %v", req.Month, err)
		return nil, err
	}

	// 5. Replay the gesture
	session, err := domain.NewDragSession(kind, res.ID, res.Placement(), uc.layout, windowStart, rows)
	if err != nil {
		uc.logger.Warn("StageGesture: cannot start session for reservation id=%d: %v", res.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidGesture, err)
	}

	if err := session.MoveTo(req.X, req.Y); err != nil {
		uc.logger.Error("StageGesture: tick failed: %v", err)
		return nil, fmt.Errorf("%w: failed to apply pointer position: %v", ErrInternal, err)
	}

	change := session.Finish()
	if change == nil {
		uc.logger.Info("StageGesture: reservation id=%d ended where it started, nothing staged", res.ID)
		return nil, nil
	}

	// 6. Stage the hold
	hold := uc.holdService.Stage(*change)
	uc.logger.Info("StageGesture: staged hold id=%d (%s) for reservation id=%d: room=%d, %s..%s",
		hold.ID, change.Type, res.ID, change.NewRoomID, change.NewStart, change.NewEnd)

	return &Response{
		HoldID:        hold.ID,
		ExpiresAt:     hold.ExpiresAt,
		ChangeType:    string(change.Type),
		ReservationID: change.ReservationID,
		NewRoomID:     change.NewRoomID,
		NewCheckin:    change.NewStart,
		NewCheckout:   change.NewEnd,
	}, nil
}

// resolveWindowStart maps the optional "YYYY-MM" month parameter to the
// window anchor date: today inside the current month, the 1st otherwise.
func (uc *UseCase) resolveWindowStart(month string) (types.DateString, error) {
	now := uc.timeProvider.Now()
	today := types.NewDateString(now)

	year, m := now.Year(), now.Month()
	if month != "" {
		parsed, err := time.Parse("2006-01", month)
		if err != nil {
			return "", fmt.Errorf("%w: month must be YYYY-MM: %v", ErrInvalidInput, err)
		}
		year, m = parsed.Year(), parsed.Month()
	}

	windowStart, err := domain.WindowStart(year, m, today)
	if err != nil {
		return "", fmt.Errorf("%w: failed to resolve window start: %v", ErrInternal, err)
	}
	return windowStart, nil
}
