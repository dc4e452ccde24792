package domain

// Default board layout values, in pixels. These mirror the front-desk
// calendar the service renders for: a fixed room-label gutter followed by
// equal-width day columns.
const (
	DefaultLabelWidth = 150
	DefaultDayWidth   = 40
	DefaultRowHeight  = 40
	DefaultBandHeight = 28
	DefaultWindowDays = 31
)

// Default pricing values
const (
	DefaultNightlyRate = 150.0
)

// Business validation constants
const (
	MinNights                   = 1
	MaxNights                   = 365
	MaxPeoplePerReservation     = 12
	MaxTitleLength              = 120
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses lists statuses excluded from occupancy and conflict
// checks.
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
}

// ActiveStatuses lists statuses that occupy a room on the board.
var ActiveStatuses = []ReservationStatus{
	StatusReserved,
	StatusCheckedIn,
	StatusCheckedOut,
}
