package reservations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoteleiro/HFD-ReservationService/internal/domain"
	reservationRepo "github.com/hoteleiro/HFD-ReservationService/internal/infra/storage/reservation"
	roomRepo "github.com/hoteleiro/HFD-ReservationService/internal/infra/storage/room"
	"github.com/hoteleiro/HFD-ReservationService/internal/service/reservations/models"
	"github.com/hoteleiro/HFD-ReservationService/pkg/ptr"
)

// --- Mocks ---

type mockReservationRepo struct {
	getByIDFn      func(ctx context.Context, id int64) (*domain.Reservation, error)
	listByWindowFn func(ctx context.Context, filter domain.WindowFilter) ([]*domain.Reservation, error)
	updateFn       func(ctx context.Context, id int64, fields reservationRepo.UpdateFields) error
	cancelFn       func(ctx context.Context, id int64, reason string) error
}

func (m *mockReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockReservationRepo) ListByWindow(ctx context.Context, filter domain.WindowFilter) ([]*domain.Reservation, error) {
	if m.listByWindowFn == nil {
		return nil, nil
	}
	return m.listByWindowFn(ctx, filter)
}
func (m *mockReservationRepo) Update(ctx context.Context, id int64, fields reservationRepo.UpdateFields) error {
	return m.updateFn(ctx, id, fields)
}
func (m *mockReservationRepo) Cancel(ctx context.Context, id int64, reason string) error {
	return m.cancelFn(ctx, id, reason)
}

type mockRoomRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.Room, error)
}

func (m *mockRoomRepo) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	if m.getByIDFn == nil {
		return &domain.Room{ID: id, Name: "Quarto"}, nil
	}
	return m.getByIDFn(ctx, id)
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func storedReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:          101,
		RoomID:      1,
		Start:       "2025-08-21",
		End:         "2025-08-27",
		Title:       "Maria Souza",
		Status:      domain.StatusReserved,
		People:      2,
		NightlyRate: 150,
	}
}

// --- Tests ---

func TestGetByID(t *testing.T) {
	repo := &mockReservationRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Reservation, error) {
			return storedReservation(), nil
		},
	}
	svc := NewService(repo, &mockRoomRepo{}, passthroughTxManager{}, true, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 101)
	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, "2025-08-21", resp.Checkin)
	assert.Equal(t, "2025-08-27", resp.Checkout)
	assert.Equal(t, 6, resp.Nights)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &mockReservationRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Reservation, error) {
			return nil, reservationRepo.ErrReservationNotFound
		},
	}
	svc := NewService(repo, &mockRoomRepo{}, passthroughTxManager{}, true, nopLogger{})

	_, err := svc.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestUpdate_MergesEditorFields(t *testing.T) {
	stored := storedReservation()
	var applied reservationRepo.UpdateFields
	repo := &mockReservationRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Reservation, error) {
			return stored, nil
		},
		updateFn: func(ctx context.Context, id int64, fields reservationRepo.UpdateFields) error {
			applied = fields
			if fields.RoomID != nil {
				stored.RoomID = *fields.RoomID
			}
			if fields.End != nil {
				stored.End = *fields.End
			}
			return nil
		},
	}
	svc := NewService(repo, &mockRoomRepo{}, passthroughTxManager{}, true, nopLogger{})

	resp, err := svc.Update(context.Background(), 101, &models.UpdateReservationRequest{
		RoomID:   ptr.Ptr(int64(2)),
		Checkout: ptr.Ptr("2025-08-29"),
		Notes:    ptr.Ptr("late checkout requested"),
	})
	require.NoError(t, err)

	require.NotNil(t, applied.RoomID)
	assert.Equal(t, int64(2), *applied.RoomID)
	require.NotNil(t, applied.End)
	assert.Equal(t, "2025-08-29", applied.End.String())
	assert.Equal(t, int64(2), resp.RoomID)
}

func TestUpdate_RejectsInvertedRange(t *testing.T) {
	repo := &mockReservationRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Reservation, error) {
			return storedReservation(), nil
		},
		updateFn: func(ctx context.Context, id int64, fields reservationRepo.UpdateFields) error {
			t.Fatal("update must not run with inverted dates")
			return nil
		},
	}
	svc := NewService(repo, &mockRoomRepo{}, passthroughTxManager{}, true, nopLogger{})

	_, err := svc.Update(context.Background(), 101, &models.UpdateReservationRequest{
		Checkout: ptr.Ptr("2025-08-20"), // before the stored checkin
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_RejectsUnknownRoom(t *testing.T) {
	repo := &mockReservationRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Reservation, error) {
			return storedReservation(), nil
		},
	}
	rooms := &mockRoomRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Room, error) {
			return nil, roomRepo.ErrRoomNotFound
		},
	}
	svc := NewService(repo, rooms, passthroughTxManager{}, true, nopLogger{})

	_, err := svc.Update(context.Background(), 101, &models.UpdateReservationRequest{
		RoomID: ptr.Ptr(int64(99)),
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestUpdate_RejectsConflictWhenOverbookingDisabled(t *testing.T) {
	repo := &mockReservationRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Reservation, error) {
			return storedReservation(), nil
		},
		listByWindowFn: func(ctx context.Context, filter domain.WindowFilter) ([]*domain.Reservation, error) {
			return []*domain.Reservation{
				{ID: 202, RoomID: 2, Start: "2025-08-25", End: "2025-08-30", Status: domain.StatusReserved},
			}, nil
		},
		updateFn: func(ctx context.Context, id int64, fields reservationRepo.UpdateFields) error {
			t.Fatal("update must not run on conflict")
			return nil
		},
	}
	svc := NewService(repo, &mockRoomRepo{}, passthroughTxManager{}, false, nopLogger{})

	_, err := svc.Update(context.Background(), 101, &models.UpdateReservationRequest{
		RoomID: ptr.Ptr(int64(2)),
	})
	assert.ErrorIs(t, err, ErrRoomConflict)
}

func TestCancel(t *testing.T) {
	var gotReason string
	repo := &mockReservationRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Reservation, error) {
			return storedReservation(), nil
		},
		cancelFn: func(ctx context.Context, id int64, reason string) error {
			gotReason = reason
			return nil
		},
	}
	svc := NewService(repo, &mockRoomRepo{}, passthroughTxManager{}, true, nopLogger{})

	err := svc.Cancel(context.Background(), 101, &models.CancelReservationRequest{Reason: "no-show"})
	require.NoError(t, err)
	assert.Equal(t, "no-show", gotReason)
}

func TestCancel_CheckedInCannotBeCancelled(t *testing.T) {
	res := storedReservation()
	res.Status = domain.StatusCheckedIn
	repo := &mockReservationRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Reservation, error) {
			return res, nil
		},
		cancelFn: func(ctx context.Context, id int64, reason string) error {
			t.Fatal("cancel must not run for checked-in stays")
			return nil
		},
	}
	svc := NewService(repo, &mockRoomRepo{}, passthroughTxManager{}, true, nopLogger{})

	err := svc.Cancel(context.Background(), 101, &models.CancelReservationRequest{})
	assert.ErrorIs(t, err, ErrCannotCancel)
}
