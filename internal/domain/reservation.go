package domain

import (
	"time"

	"github.com/hoteleiro/HFD-ReservationService/pkg/types"
)

// ReservationStatus represents the lifecycle state of a reservation.
// A checked-in or checked-out record is what the front desk calls a
// "pernoite" (an active or completed overnight stay), as opposed to a
// future-dated reservation.
type ReservationStatus string

const (
	StatusReserved   ReservationStatus = "reserved"
	StatusCheckedIn  ReservationStatus = "checked_in"
	StatusCheckedOut ReservationStatus = "checked_out"
	StatusCancelled  ReservationStatus = "cancelled"
)

// Guest is a guest attached to a reservation. Exactly one guest per
// reservation is the titular (the primary contact and payer).
type Guest struct {
	ID         int64
	RegistryID *int64 // ID in the external people registry, if registered
	Name       string
	Titular    bool
}

// Payment is a payment entry recorded against a reservation.
type Payment struct {
	ID     int64
	Method string
	Amount float64
	PaidAt time.Time
}

// Reservation represents a room occupancy over a date range.
// Start is the checkin date (inclusive), End the checkout date
// (exclusive): the checkout day is not occupied.
type Reservation struct {
	ID     int64
	RoomID int64
	Start  types.DateString
	End    types.DateString
	Title  string
	Status ReservationStatus

	People        int
	NightlyRate   float64
	RatePerPerson *float64
	Notes         *string

	Guests   []Guest
	Payments []Payment

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation occupies its room on the board.
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// CanBeCancelled returns true if the reservation can still be cancelled.
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusReserved
}

// CanBeMoved returns true if the reservation can be moved or resized on
// the board. A checked-in stay can still change rooms.
func (r *Reservation) CanBeMoved() bool {
	return r.Status == StatusReserved || r.Status == StatusCheckedIn
}

// Nights returns the stay length in nights. Zero for malformed dates.
func (r *Reservation) Nights() int {
	n, err := r.Start.DaysUntil(r.End)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Placement returns the board position of the reservation.
func (r *Reservation) Placement() Placement {
	return Placement{RoomID: r.RoomID, Start: r.Start, End: r.End}
}

// Overlaps reports whether the reservation occupies any night of
// [start, end) in the given room. Ranges that merely touch (one ends
// where the other starts) do not overlap.
func (r *Reservation) Overlaps(roomID int64, start, end types.DateString) bool {
	if r.RoomID != roomID {
		return false
	}
	return start.IsBefore(r.End) && r.Start.IsBefore(end)
}

// TitularName returns the name of the titular guest, or "" when the guest
// list is empty.
func (r *Reservation) TitularName() string {
	for _, g := range r.Guests {
		if g.Titular {
			return g.Name
		}
	}
	return ""
}

// WindowFilter selects reservations intersecting a date window on the
// board. From is inclusive, To exclusive, matching checkin/checkout
// semantics.
type WindowFilter struct {
	RoomIDs         []int64          // empty = all rooms
	From            types.DateString // window start (inclusive)
	To              types.DateString // window end (exclusive)
	IncludeInactive bool             // include cancelled reservations
}
