package domain

import (
	"errors"

	"github.com/hoteleiro/HFD-ReservationService/pkg/types"
)

// GestureKind identifies where on a reservation bar a drag started:
// the bar body moves the whole reservation, the edge handles resize it.
type GestureKind string

const (
	GestureMove        GestureKind = "move"
	GestureResizeStart GestureKind = "resize_start"
	GestureResizeEnd   GestureKind = "resize_end"
)

// Valid reports whether the kind is one of the known gestures.
func (k GestureKind) Valid() bool {
	return k == GestureMove || k == GestureResizeStart || k == GestureResizeEnd
}

// PendingChangeType classifies a staged change for the confirmation step.
type PendingChangeType string

const (
	ChangeMove   PendingChangeType = "move"
	ChangeResize PendingChangeType = "resize"
)

// Placement is a (room, date range) triple on the board.
type Placement struct {
	RoomID int64
	Start  types.DateString
	End    types.DateString
}

// Equal reports value equality of two placements.
func (p Placement) Equal(other Placement) bool {
	return p.RoomID == other.RoomID && p.Start == other.Start && p.End == other.End
}

// PendingChange is a staged move or resize awaiting explicit confirmation.
// The reservation store is never touched until the change is confirmed.
type PendingChange struct {
	Type          PendingChangeType
	ReservationID int64
	NewRoomID     int64
	NewStart      types.DateString
	NewEnd        types.DateString
}

// ErrInvalidGesture is returned for unknown gesture kinds or malformed
// original placements.
var ErrInvalidGesture = errors.New("domain: invalid gesture")

// DragSession tracks one drag or resize gesture over a reservation bar.
// Pointer ticks recompute the candidate placement; ticks resolving to an
// invalid target leave the candidate at the previous valid value, so the
// bar never snaps to an invalid state mid-gesture.
type DragSession struct {
	kind          GestureKind
	reservationID int64
	original      Placement
	candidate     Placement
	durationDays  int

	layout      Layout
	windowStart types.DateString
	rows        []Row
}

// NewDragSession starts a gesture over the given reservation placement.
func NewDragSession(
	kind GestureKind,
	reservationID int64,
	original Placement,
	layout Layout,
	windowStart types.DateString,
	rows []Row,
) (*DragSession, error) {
	if !kind.Valid() {
		return nil, ErrInvalidGesture
	}

	duration, err := original.Start.DaysUntil(original.End)
	if err != nil || duration < MinNights {
		return nil, ErrInvalidGesture
	}

	return &DragSession{
		kind:          kind,
		reservationID: reservationID,
		original:      original,
		candidate:     original,
		durationDays:  duration,
		layout:        layout,
		windowStart:   windowStart,
		rows:          rows,
	}, nil
}

// Kind returns the gesture kind.
func (s *DragSession) Kind() GestureKind {
	return s.kind
}

// Candidate returns the current candidate placement. The bar is rendered
// here for the whole gesture as optimistic feedback.
func (s *DragSession) Candidate() Placement {
	return s.candidate
}

// MoveTo feeds one pointer tick in content coordinates into the session.
func (s *DragSession) MoveTo(x, y int) error {
	column := s.layout.ColumnForX(x)

	switch s.kind {
	case GestureMove:
		roomID := s.layout.RoomIDForY(s.rows, y)
		if roomID == nil || !s.layout.ColumnInWindow(column) {
			return nil // invalid target, keep previous candidate
		}
		start, err := s.layout.DateForColumn(s.windowStart, column)
		if err != nil {
			return err
		}
		end, err := start.AddDays(s.durationDays)
		if err != nil {
			return err
		}
		s.candidate = Placement{RoomID: *roomID, Start: start, End: end}

	case GestureResizeStart:
		if !s.layout.ColumnInWindow(column) {
			return nil
		}
		start, err := s.layout.DateForColumn(s.windowStart, column)
		if err != nil {
			return err
		}
		// The start handle may not reach or cross the fixed end.
		if !start.IsBefore(s.original.End) {
			return nil
		}
		s.candidate.Start = start

	case GestureResizeEnd:
		if !s.layout.ColumnInWindow(column) {
			return nil
		}
		end, err := s.layout.DateForColumn(s.windowStart, column)
		if err != nil {
			return err
		}
		// The end handle may not reach or cross the fixed start.
		if !end.IsAfter(s.original.Start) {
			return nil
		}
		s.candidate.End = end
	}

	return nil
}

// Finish ends the gesture. A change is staged only when the candidate
// differs from the original placement; identical placements are discarded
// silently.
func (s *DragSession) Finish() *PendingChange {
	if s.candidate.Equal(s.original) {
		return nil
	}

	changeType := ChangeResize
	if s.kind == GestureMove {
		changeType = ChangeMove
	}

	return &PendingChange{
		Type:          changeType,
		ReservationID: s.reservationID,
		NewRoomID:     s.candidate.RoomID,
		NewStart:      s.candidate.Start,
		NewEnd:        s.candidate.End,
	}
}
