package get_board

import (
	"context"
	"fmt"
	"time"

	"github.com/hoteleiro/HFD-ReservationService/internal/domain"
	"github.com/hoteleiro/HFD-ReservationService/pkg/types"
)

// UseCase assembles the laid-out reservation board for one month window.
type UseCase struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	timeProvider    TimeProvider
	logger          Logger

	layout domain.Layout
}

// NewUseCase creates a new use case instance
func NewUseCase(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	layout domain.Layout,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
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

// Execute builds the board for the requested month
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetBoard: month=%q", req.Month)

	// 1. Resolve the window anchor
	now := uc.timeProvider.Now()
	today := types.NewDateString(now)

	year, month := now.Year(), now.Month()
	if req.Month != "" {
		parsed, err := time.Parse("2006-01", req.Month)
		if err != nil {
			uc.logger.Warn("GetBoard: bad month %q: %v", req.Month, err)
			return nil, fmt.Errorf("%w: month must be YYYY-MM: %v", ErrInvalidInput, err)
		}
		year, month = parsed.Year(), parsed.Month()
	}

	windowStart, err := domain.WindowStart(year, month, today)
	if err != nil {
		uc.logger.Error("GetBoard: failed to resolve window start: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve window start: %v", ErrInternal, err)
	}

	windowEnd, err := windowStart.AddDays(uc.layout.WindowDays)
	if err != nil {
		uc.logger.Error("GetBoard: failed to compute window end: %v", err)
		return nil, fmt.Errorf("%w: failed to compute window end: %v", ErrInternal, err)
	}

	// 2. Header columns
	days := make([]DayResponse, 0, uc.layout.WindowDays)
	for col := 0; col < uc.layout.WindowDays; col++ {
		date, err := uc.layout.DateForColumn(windowStart, col)
		if err != nil {
			uc.logger.Error("GetBoard: failed to compute column date: %v", err)
			return nil, fmt.Errorf("%w: failed to compute column date: %v", ErrInternal, err)
		}
		days = append(days, DayResponse{Date: date, X: uc.layout.XForColumn(col)})
	}

	// 3. Rows: rooms grouped under category bands
	rooms, err := uc.roomRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetBoard: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	gridRows := domain.BuildRows(rooms)
	rows := make([]RowResponse, 0, len(gridRows))
	roomY := make(map[int64]int, len(rooms))
	for i, row := range gridRows {
		y := uc.layout.YForRow(gridRows, i)
		resp := RowResponse{
			Band:     row.Band,
			Category: string(row.Category),
			Y:        y,
			Height:   uc.layout.RowHeight,
		}
		if row.Band {
			resp.Height = uc.layout.BandHeight
		} else {
			resp.RoomID = row.Room.ID
			resp.RoomName = row.Room.Name
			roomY[row.Room.ID] = y
		}
		rows = append(rows, resp)
	}

	// 4. Reservation bars intersecting the window
	reservations, err := uc.reservationRepo.ListByWindow(ctx, domain.WindowFilter{
		From: windowStart,
		To:   windowEnd,
	})
	if err != nil {
		uc.logger.Error("GetBoard: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	bars := make([]BarResponse, 0, len(reservations))
	for _, res := range reservations {
		y, ok := roomY[res.RoomID]
		if !ok {
			uc.logger.Warn("GetBoard: reservation id=%d references unknown room id=%d, skipped",
				res.ID, res.RoomID)
			continue
		}

		left, width, visible, err := uc.layout.BarGeometry(windowStart, res.Start, res.End)
		if err != nil {
			uc.logger.Error("GetBoard: failed to place reservation id=%d: %v", res.ID, err)
			return nil, fmt.Errorf("%w: failed to place reservation: %v", ErrInternal, err)
		}
		if !visible {
			continue
		}

		bars = append(bars, BarResponse{
			ReservationID: res.ID,
			RoomID:        res.RoomID,
			Title:         res.Title,
			Status:        string(res.Status),
			Checkin:       res.Start,
			Checkout:      res.End,
			People:        res.People,
			X:             left,
			Y:             y,
			Width:         width,
			Height:        uc.layout.RowHeight,
		})
	}

	uc.logger.Info("GetBoard: window %s..%s, %d rows, %d bars",
		windowStart, windowEnd, len(rows), len(bars))

	return &Response{
		WindowStart: windowStart,
		Days:        days,
		Rows:        rows,
		Bars:        bars,
		LabelWidth:  uc.layout.LabelWidth,
		DayWidth:    uc.layout.DayWidth,
		RowHeight:   uc.layout.RowHeight,
		BandHeight:  uc.layout.BandHeight,
	}, nil
}
