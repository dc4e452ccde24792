package domain

import (
	"github.com/hoteleiro/HFD-ReservationService/pkg/types"
)

// SelectionState is the phase of the two-click range selection gesture.
type SelectionState int

const (
	SelectionIdle SelectionState = iota
	SelectionAwaitingEnd
)

// CompletedRange is the result of a finished two-click selection, ready
// for review: checkin inclusive, checkout exclusive.
type CompletedRange struct {
	RoomID   int64
	Checkin  types.DateString
	Checkout types.DateString
}

// Nights returns the stay length, never below MinNights for a completed
// range.
func (r CompletedRange) Nights() int {
	n, err := r.Checkin.DaysUntil(r.Checkout)
	if err != nil || n < MinNights {
		return MinNights
	}
	return n
}

// Selection is the two-click range selection state machine. The first
// valid click on a room cell arms the anchor; the second click in the same
// room completes the range. Past dates never arm an anchor, and a click
// in a different room abandons the anchor and re-arms there.
type Selection struct {
	state  SelectionState
	roomID int64
	anchor types.DateString
}

// State returns the current phase.
func (s *Selection) State() SelectionState {
	return s.state
}

// Anchor returns the armed room and start date. Only meaningful while the
// state is SelectionAwaitingEnd.
func (s *Selection) Anchor() (roomID int64, start types.DateString) {
	return s.roomID, s.anchor
}

// Click feeds one cell click into the machine. today guards against
// selections starting in the past. A non-nil CompletedRange means the
// gesture finished and the machine is back to idle.
func (s *Selection) Click(roomID int64, date, today types.DateString) (*CompletedRange, error) {
	if s.state == SelectionIdle || roomID != s.roomID {
		// First click, or a click in another room: (re)arm the anchor.
		// Past dates never start a selection.
		if date.IsBefore(today) {
			return nil, nil
		}
		s.state = SelectionAwaitingEnd
		s.roomID = roomID
		s.anchor = date
		return nil, nil
	}

	// Second click in the armed room: complete the range. A click at or
	// before the anchor is corrected to a one-night stay.
	checkout := date
	if !date.IsAfter(s.anchor) {
		bumped, err := s.anchor.AddDays(MinNights)
		if err != nil {
			return nil, err
		}
		checkout = bumped
	}

	completed := &CompletedRange{
		RoomID:   s.roomID,
		Checkin:  s.anchor,
		Checkout: checkout,
	}

	s.Reset()
	return completed, nil
}

// Preview returns the inclusive highlight span for a hovered cell while a
// selection is armed in the same room. ok is false otherwise. Hovering
// never changes state.
func (s *Selection) Preview(roomID int64, hover types.DateString) (from, to types.DateString, ok bool) {
	if s.state != SelectionAwaitingEnd || roomID != s.roomID {
		return "", "", false
	}
	return types.Min(s.anchor, hover), types.Max(s.anchor, hover), true
}

// Reset abandons any in-progress selection.
func (s *Selection) Reset() {
	s.state = SelectionIdle
	s.roomID = 0
	s.anchor = ""
}
