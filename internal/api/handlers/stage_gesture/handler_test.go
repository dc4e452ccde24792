package stage_gesture

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stageGesture "github.com/hoteleiro/HFD-ReservationService/internal/usecase/stage_gesture"
)

type mockUseCase struct {
	executeFn func(ctx context.Context, req *stageGesture.Request) (*stageGesture.Response, error)
	gotReq    *stageGesture.Request
}

func (m *mockUseCase) Execute(ctx context.Context, req *stageGesture.Request) (*stageGesture.Response, error) {
	m.gotReq = req
	return m.executeFn(ctx, req)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *mockUseCase, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/reservations/{reservationId}/gestures",
		NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_StagedHold(t *testing.T) {
	uc := &mockUseCase{
		executeFn: func(ctx context.Context, req *stageGesture.Request) (*stageGesture.Response, error) {
			return &stageGesture.Response{
				HoldID:        1,
				ExpiresAt:     time.Date(2025, 8, 21, 10, 5, 0, 0, time.UTC),
				ChangeType:    "move",
				ReservationID: req.ReservationID,
				NewRoomID:     2,
				NewCheckin:    "2025-08-23",
				NewCheckout:   "2025-08-29",
			}, nil
		},
	}

	rec := doRequest(t, uc, "/api/v1/reservations/101/gestures",
		StageGestureRequest{Kind: "move", X: 235, Y: 70})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(101), uc.gotReq.ReservationID)

	var resp HoldResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.HoldID)
	assert.Equal(t, "move", resp.ChangeType)
	assert.Equal(t, int64(2), resp.NewRoomID)
	assert.Equal(t, "2025-08-23", resp.NewCheckin)
	assert.Equal(t, "2025-08-29", resp.NewCheckout)
}

func TestHandle_NoOpGesture(t *testing.T) {
	uc := &mockUseCase{
		executeFn: func(ctx context.Context, req *stageGesture.Request) (*stageGesture.Response, error) {
			return nil, nil
		},
	}

	rec := doRequest(t, uc, "/api/v1/reservations/101/gestures",
		StageGestureRequest{Kind: "move", X: 155, Y: 40})

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}

func TestHandle_ReservationNotFound(t *testing.T) {
	uc := &mockUseCase{
		executeFn: func(ctx context.Context, req *stageGesture.Request) (*stageGesture.Response, error) {
			return nil, stageGesture.ErrReservationNotFound
		},
	}

	rec := doRequest(t, uc, "/api/v1/reservations/999/gestures",
		StageGestureRequest{Kind: "move", X: 235, Y: 70})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InvalidKind(t *testing.T) {
	uc := &mockUseCase{
		executeFn: func(ctx context.Context, req *stageGesture.Request) (*stageGesture.Response, error) {
			return nil, stageGesture.ErrInvalidGesture
		},
	}

	rec := doRequest(t, uc, "/api/v1/reservations/101/gestures",
		StageGestureRequest{Kind: "wiggle", X: 235, Y: 70})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidReservationID(t *testing.T) {
	uc := &mockUseCase{
		executeFn: func(ctx context.Context, req *stageGesture.Request) (*stageGesture.Response, error) {
			t.Fatal("use case must not run")
			return nil, nil
		},
	}

	rec := doRequest(t, uc, "/api/v1/reservations/abc/gestures",
		StageGestureRequest{Kind: "move", X: 235, Y: 70})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
