package stage_gesture

import (
	"time"

	"github.com/hoteleiro/HFD-ReservationService/pkg/types"
)

// Request carries the gesture kind and the pointer-up position in content
// coordinates (scroll offsets already applied by the caller). Month selects
// the viewed board window, empty for the current month.
type Request struct {
	ReservationID int64
	Kind          string // move | resize_start | resize_end
	X             int
	Y             int
	Month         string // "YYYY-MM", optional
}

// Response describes the staged hold. A nil response means the gesture
// ended where it started and nothing was staged.
type Response struct {
	HoldID    int64
	ExpiresAt time.Time

	ChangeType    string
	ReservationID int64
	NewRoomID     int64
	NewCheckin    types.DateString
	NewCheckout   types.DateString
}
