package get_board

import (
	"github.com/hoteleiro/HFD-ReservationService/pkg/types"
)

// Request selects the viewed month, empty for the current one.
type Request struct {
	Month string // "YYYY-MM", optional
}

// Response is the fully laid out board: the client renders it verbatim
// and reports pointer coordinates back against the same geometry.
type Response struct {
	WindowStart types.DateString
	Days        []DayResponse
	Rows        []RowResponse
	Bars        []BarResponse

	LabelWidth int
	DayWidth   int
	RowHeight  int
	BandHeight int
}

// DayResponse is one header column of the window.
type DayResponse struct {
	Date types.DateString
	X    int // left edge in content pixels
}

// RowResponse is one horizontal strip: a category band or a room row.
type RowResponse struct {
	Band     bool
	Category string
	RoomID   int64  // zero for bands
	RoomName string // empty for bands
	Y        int
	Height   int
}

// BarResponse is one reservation bar, clipped to the window.
type BarResponse struct {
	ReservationID int64
	RoomID        int64
	Title         string
	Status        string
	Checkin       types.DateString
	Checkout      types.DateString
	People        int

	X      int
	Y      int
	Width  int
	Height int
}
