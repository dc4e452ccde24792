package stage_gesture

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoteleiro/HFD-ReservationService/internal/domain"
	reservationRepo "github.com/hoteleiro/HFD-ReservationService/internal/infra/storage/reservation"
	"github.com/hoteleiro/HFD-ReservationService/internal/service/holds"
)

// --- Mocks ---

type mockReservationRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.Reservation, error)
}

func (m *mockReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	return m.getByIDFn(ctx, id)
}

type mockRoomRepo struct {
	rooms []*domain.Room
}

func (m *mockRoomRepo) List(ctx context.Context) ([]*domain.Room, error) {
	return m.rooms, nil
}

type mockHoldService struct {
	staged *domain.PendingChange
}

func (m *mockHoldService) Stage(change domain.PendingChange) *holds.Hold {
	m.staged = &change
	return &holds.Hold{
		ID:        1,
		Change:    change,
		CreatedAt: time.Date(2025, 8, 21, 10, 0, 0, 0, time.UTC),
		ExpiresAt: time.Date(2025, 8, 21, 10, 5, 0, 0, time.UTC),
	}
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testLayout() domain.Layout {
	return domain.Layout{
		LabelWidth: 150,
		DayWidth:   40,
		RowHeight:  40,
		BandHeight: 28,
		WindowDays: 31,
	}
}

func storedReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:     101,
		RoomID: 1,
		Start:  "2025-08-21",
		End:    "2025-08-27",
		Title:  "Maria Souza",
		Status: domain.StatusReserved,
	}
}

func newTestUseCase(res *domain.Reservation, holdSvc *mockHoldService) *UseCase {
	repo := &mockReservationRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Reservation, error) {
			if res == nil {
				return nil, reservationRepo.ErrReservationNotFound
			}
			return res, nil
		},
	}
	rooms := &mockRoomRepo{rooms: []*domain.Room{{ID: 1, Name: "01"}, {ID: 2, Name: "02"}}}

	return NewUseCase(repo, rooms, holdSvc, testLayout(), nopLogger{}).
		WithTimeProvider(&fixedTime{now: time.Date(2025, 8, 21, 10, 0, 0, 0, time.UTC)})
}

// --- Tests ---

// Dragging the bar two columns right and one row down re-homes the
// six-night stay into room 2 starting two days later.
func TestExecute_MoveStagesHold(t *testing.T) {
	holdSvc := &mockHoldService{}
	uc := newTestUseCase(storedReservation(), holdSvc)

	// Rows: band 0-27, room 1 at 28-67, room 2 at 68-107.
	// Column for x=235: (235-150)/40 = 2 -> 2025-08-23.
	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: 101,
		Kind:          "move",
		X:             235,
		Y:             70,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, int64(1), resp.HoldID)
	assert.Equal(t, "move", resp.ChangeType)
	assert.Equal(t, int64(2), resp.NewRoomID)
	assert.Equal(t, "2025-08-23", resp.NewCheckin.String())
	assert.Equal(t, "2025-08-29", resp.NewCheckout.String())
}

func TestExecute_ResizeEndStagesResize(t *testing.T) {
	holdSvc := &mockHoldService{}
	uc := newTestUseCase(storedReservation(), holdSvc)

	// Column 8 -> 2025-08-29, extending the stay by two nights.
	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: 101,
		Kind:          "resize_end",
		X:             150 + 8*40,
		Y:             40,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "resize", resp.ChangeType)
	assert.Equal(t, int64(1), resp.NewRoomID)
	assert.Equal(t, "2025-08-21", resp.NewCheckin.String())
	assert.Equal(t, "2025-08-29", resp.NewCheckout.String())
}

// A drop on the original placement is a silent no-op: nil response and
// nothing staged.
func TestExecute_NoChangeStagesNothing(t *testing.T) {
	holdSvc := &mockHoldService{}
	uc := newTestUseCase(storedReservation(), holdSvc)

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: 101,
		Kind:          "move",
		X:             155, // column 0 -> original start
		Y:             40,  // room 1 -> original room
	})
	require.NoError(t, err)
	assert.Nil(t, resp)
	assert.Nil(t, holdSvc.staged)
}

// A drop outside the grid keeps the last valid candidate, here the
// original placement, so nothing is staged either.
func TestExecute_DropOutsideGridStagesNothing(t *testing.T) {
	holdSvc := &mockHoldService{}
	uc := newTestUseCase(storedReservation(), holdSvc)

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: 101,
		Kind:          "move",
		X:             20, // left of the label column
		Y:             10, // category band
	})
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestExecute_UnknownReservation(t *testing.T) {
	uc := newTestUseCase(nil, &mockHoldService{})

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 999,
		Kind:          "move",
		X:             200,
		Y:             40,
	})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecute_CancelledReservationImmovable(t *testing.T) {
	res := storedReservation()
	res.Status = domain.StatusCancelled
	uc := newTestUseCase(res, &mockHoldService{})

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 101,
		Kind:          "move",
		X:             200,
		Y:             40,
	})
	assert.ErrorIs(t, err, ErrReservationImmovable)
}

func TestExecute_UnknownKind(t *testing.T) {
	uc := newTestUseCase(storedReservation(), &mockHoldService{})

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 101,
		Kind:          "wiggle",
		X:             200,
		Y:             40,
	})
	assert.ErrorIs(t, err, ErrInvalidGesture)
}

func TestExecute_BadMonth(t *testing.T) {
	uc := newTestUseCase(storedReservation(), &mockHoldService{})

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 101,
		Kind:          "move",
		X:             200,
		Y:             40,
		Month:         "agosto",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
