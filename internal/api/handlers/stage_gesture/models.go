package stage_gesture

import (
	"time"

	stageGesture "github.com/hoteleiro/HFD-ReservationService/internal/usecase/stage_gesture"
)

// StageGestureRequest HTTP request model. X and Y are the pointer-up
// position in content coordinates; the client adds its scroll offsets
// before reporting.
type StageGestureRequest struct {
	Kind  string `json:"kind"` // move | resize_start | resize_end
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Month string `json:"month,omitempty"` // "YYYY-MM", defaults to the current month
}

// HoldResponse HTTP response model for a staged change.
type HoldResponse struct {
	HoldID    int64  `json:"holdId"`
	ExpiresAt string `json:"expiresAt"`

	ChangeType    string `json:"changeType"`
	ReservationID int64  `json:"reservationId"`
	NewRoomID     int64  `json:"newRoomId"`
	NewCheckin    string `json:"newCheckin"`
	NewCheckout   string `json:"newCheckout"`
}

// FromUseCaseResponse converts the use case response into the HTTP model
func FromUseCaseResponse(resp *stageGesture.Response) *HoldResponse {
	return &HoldResponse{
		HoldID:        resp.HoldID,
		ExpiresAt:     resp.ExpiresAt.Format(time.RFC3339),
		ChangeType:    resp.ChangeType,
		ReservationID: resp.ReservationID,
		NewRoomID:     resp.NewRoomID,
		NewCheckin:    resp.NewCheckin.String(),
		NewCheckout:   resp.NewCheckout.String(),
	}
}
