package holds

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoteleiro/HFD-ReservationService/internal/domain"
	"github.com/hoteleiro/HFD-ReservationService/pkg/types"
)

// --- Mocks ---

type mockReservationRepo struct {
	getByIDFn         func(ctx context.Context, id int64) (*domain.Reservation, error)
	listByWindowFn    func(ctx context.Context, filter domain.WindowFilter) ([]*domain.Reservation, error)
	updatePlacementFn func(ctx context.Context, id int64, roomID int64, start, end types.DateString) error
}

func (m *mockReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockReservationRepo) ListByWindow(ctx context.Context, filter domain.WindowFilter) ([]*domain.Reservation, error) {
	return m.listByWindowFn(ctx, filter)
}
func (m *mockReservationRepo) UpdatePlacement(ctx context.Context, id int64, roomID int64, start, end types.DateString) error {
	return m.updatePlacementFn(ctx, id, roomID, start, end)
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

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

func moveChange() domain.PendingChange {
	return domain.PendingChange{
		Type:          domain.ChangeMove,
		ReservationID: 101,
		NewRoomID:     2,
		NewStart:      "2025-08-23",
		NewEnd:        "2025-08-29",
	}
}

// --- Tests ---

func TestStageAndGet(t *testing.T) {
	svc := NewService(&mockReservationRepo{}, passthroughTxManager{}, 5*time.Minute, true, nopLogger{})

	hold := svc.Stage(moveChange())
	require.NotZero(t, hold.ID)

	got, err := svc.Get(hold.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ChangeMove, got.Change.Type)
	assert.Equal(t, int64(2), got.Change.NewRoomID)
}

func TestGet_UnknownHold(t *testing.T) {
	svc := NewService(&mockReservationRepo{}, passthroughTxManager{}, 5*time.Minute, true, nopLogger{})

	_, err := svc.Get(42)
	assert.ErrorIs(t, err, ErrHoldNotFound)
}

func TestGet_ExpiredHold(t *testing.T) {
	clock := &fixedTime{now: time.Date(2025, 8, 21, 10, 0, 0, 0, time.UTC)}
	svc := NewService(&mockReservationRepo{}, passthroughTxManager{}, 5*time.Minute, true, nopLogger{}).
		WithTimeProvider(clock)

	hold := svc.Stage(moveChange())

	clock.now = clock.now.Add(6 * time.Minute)
	_, err := svc.Get(hold.ID)
	assert.ErrorIs(t, err, ErrHoldExpired)
}

func TestConfirm_AppliesPlacement(t *testing.T) {
	var appliedRoom int64
	var appliedStart, appliedEnd types.DateString

	stored := storedReservation()
	repo := &mockReservationRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Reservation, error) {
			return stored, nil
		},
		updatePlacementFn: func(ctx context.Context, id int64, roomID int64, start, end types.DateString) error {
			appliedRoom, appliedStart, appliedEnd = roomID, start, end
			stored.RoomID, stored.Start, stored.End = roomID, start, end
			return nil
		},
	}

	svc := NewService(repo, passthroughTxManager{}, 5*time.Minute, true, nopLogger{})
	hold := svc.Stage(moveChange())

	updated, err := svc.Confirm(context.Background(), hold.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), appliedRoom)
	assert.Equal(t, types.DateString("2025-08-23"), appliedStart)
	assert.Equal(t, types.DateString("2025-08-29"), appliedEnd)
	assert.Equal(t, int64(2), updated.RoomID)

	// The hold is consumed by confirmation.
	_, err = svc.Get(hold.ID)
	assert.ErrorIs(t, err, ErrHoldNotFound)
}

func TestConfirm_RejectsConflictWhenOverbookingDisabled(t *testing.T) {
	repo := &mockReservationRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Reservation, error) {
			return storedReservation(), nil
		},
		listByWindowFn: func(ctx context.Context, filter domain.WindowFilter) ([]*domain.Reservation, error) {
			return []*domain.Reservation{
				{ID: 202, RoomID: 2, Start: "2025-08-25", End: "2025-08-30", Status: domain.StatusReserved},
			}, nil
		},
		updatePlacementFn: func(ctx context.Context, id int64, roomID int64, start, end types.DateString) error {
			t.Fatal("placement must not be applied on conflict")
			return nil
		},
	}

	svc := NewService(repo, passthroughTxManager{}, 5*time.Minute, false, nopLogger{})
	hold := svc.Stage(moveChange())

	_, err := svc.Confirm(context.Background(), hold.ID)
	assert.ErrorIs(t, err, ErrRoomConflict)
}

func TestCancel_DiscardsWithoutMutation(t *testing.T) {
	repo := &mockReservationRepo{
		updatePlacementFn: func(ctx context.Context, id int64, roomID int64, start, end types.DateString) error {
			t.Fatal("cancel must not touch the store")
			return nil
		},
	}

	svc := NewService(repo, passthroughTxManager{}, 5*time.Minute, true, nopLogger{})
	hold := svc.Stage(moveChange())

	require.NoError(t, svc.Cancel(hold.ID))

	_, err := svc.Get(hold.ID)
	assert.ErrorIs(t, err, ErrHoldNotFound)
}

func TestCancel_ExpiredHoldDiscardsCleanly(t *testing.T) {
	clock := &fixedTime{now: time.Date(2025, 8, 21, 10, 0, 0, 0, time.UTC)}
	svc := NewService(&mockReservationRepo{}, passthroughTxManager{}, time.Minute, true, nopLogger{}).
		WithTimeProvider(clock)

	hold := svc.Stage(moveChange())
	clock.now = clock.now.Add(2 * time.Minute)

	// The confirm dialog can sit open past the TTL; dismissing it is
	// still a plain discard, not an error.
	require.NoError(t, svc.Cancel(hold.ID))
	assert.ErrorIs(t, svc.Cancel(hold.ID), ErrHoldNotFound)
}
