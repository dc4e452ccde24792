package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoteleiro/HFD-ReservationService/pkg/types"
)

const gestureWindowStart = types.DateString("2025-08-21")

func newTestSession(t *testing.T, kind GestureKind) *DragSession {
	t.Helper()

	session, err := NewDragSession(
		kind,
		101,
		Placement{RoomID: 1, Start: "2025-08-21", End: "2025-08-27"},
		testLayout(),
		gestureWindowStart,
		BuildRows(testRooms()),
	)
	require.NoError(t, err)
	return session
}

func TestDragSession_MovePreservesDuration(t *testing.T) {
	session := newTestSession(t, GestureMove)

	// Two day-columns right (column 2), one room row down (room 2).
	require.NoError(t, session.MoveTo(235, 70))

	candidate := session.Candidate()
	assert.Equal(t, int64(2), candidate.RoomID)
	assert.Equal(t, types.DateString("2025-08-23"), candidate.Start)
	assert.Equal(t, types.DateString("2025-08-29"), candidate.End)

	nights, err := candidate.Start.DaysUntil(candidate.End)
	require.NoError(t, err)
	assert.Equal(t, 6, nights)
}

func TestDragSession_MoveStagesPendingConfirmation(t *testing.T) {
	session := newTestSession(t, GestureMove)
	require.NoError(t, session.MoveTo(235, 70))

	pending := session.Finish()
	require.NotNil(t, pending)
	assert.Equal(t, ChangeMove, pending.Type)
	assert.Equal(t, int64(101), pending.ReservationID)
	assert.Equal(t, int64(2), pending.NewRoomID)
	assert.Equal(t, types.DateString("2025-08-23"), pending.NewStart)
	assert.Equal(t, types.DateString("2025-08-29"), pending.NewEnd)
}

func TestDragSession_InvalidTargetKeepsPreviousTick(t *testing.T) {
	session := newTestSession(t, GestureMove)

	require.NoError(t, session.MoveTo(235, 70))
	moved := session.Candidate()

	// Pointer over the label gutter: column resolves to -1.
	require.NoError(t, session.MoveTo(40, 70))
	assert.Equal(t, moved, session.Candidate())

	// Pointer over a category band: no room resolves.
	require.NoError(t, session.MoveTo(235, 10))
	assert.Equal(t, moved, session.Candidate())

	// Pointer below the last room row.
	require.NoError(t, session.MoveTo(235, 5000))
	assert.Equal(t, moved, session.Candidate())
}

func TestDragSession_ResizeStartRejectsInversion(t *testing.T) {
	session := newTestSession(t, GestureResizeStart)

	// Valid shrink: start handle to column 2 (2025-08-23).
	require.NoError(t, session.MoveTo(235, 30))
	assert.Equal(t, types.DateString("2025-08-23"), session.Candidate().Start)
	assert.Equal(t, types.DateString("2025-08-27"), session.Candidate().End, "end stays fixed")

	// Dragging to the fixed end (column 6, 2025-08-27) is ignored.
	require.NoError(t, session.MoveTo(150+6*40, 30))
	assert.Equal(t, types.DateString("2025-08-23"), session.Candidate().Start)

	// Past the fixed end as well.
	require.NoError(t, session.MoveTo(150+10*40, 30))
	assert.Equal(t, types.DateString("2025-08-23"), session.Candidate().Start)
}

func TestDragSession_ResizeEndRejectsInversion(t *testing.T) {
	session := newTestSession(t, GestureResizeEnd)

	// Valid extend: end handle to column 9 (2025-08-30).
	require.NoError(t, session.MoveTo(150+9*40, 30))
	assert.Equal(t, types.DateString("2025-08-30"), session.Candidate().End)
	assert.Equal(t, types.DateString("2025-08-21"), session.Candidate().Start, "start stays fixed")

	// Dragging to the fixed start (column 0) is ignored.
	require.NoError(t, session.MoveTo(150, 30))
	assert.Equal(t, types.DateString("2025-08-30"), session.Candidate().End)

	pending := session.Finish()
	require.NotNil(t, pending)
	assert.Equal(t, ChangeResize, pending.Type)
}

func TestDragSession_NoOpGestureStagesNothing(t *testing.T) {
	session := newTestSession(t, GestureMove)

	// Move away and back to the exact original placement.
	require.NoError(t, session.MoveTo(235, 70))
	require.NoError(t, session.MoveTo(155, 30))

	assert.Nil(t, session.Finish())
}

func TestDragSession_UntouchedGestureStagesNothing(t *testing.T) {
	session := newTestSession(t, GestureResizeEnd)
	assert.Nil(t, session.Finish())
}

func TestNewDragSession_RejectsBadInput(t *testing.T) {
	_, err := NewDragSession(
		GestureKind("stretch"),
		101,
		Placement{RoomID: 1, Start: "2025-08-21", End: "2025-08-27"},
		testLayout(),
		gestureWindowStart,
		nil,
	)
	assert.ErrorIs(t, err, ErrInvalidGesture)

	// Degenerate range: end not after start.
	_, err = NewDragSession(
		GestureMove,
		101,
		Placement{RoomID: 1, Start: "2025-08-27", End: "2025-08-27"},
		testLayout(),
		gestureWindowStart,
		nil,
	)
	assert.ErrorIs(t, err, ErrInvalidGesture)
}

func TestReservation_Overlaps(t *testing.T) {
	r := Reservation{ID: 1, RoomID: 1, Start: "2025-08-21", End: "2025-08-27", Status: StatusReserved}

	assert.True(t, r.Overlaps(1, "2025-08-26", "2025-08-28"))
	assert.True(t, r.Overlaps(1, "2025-08-20", "2025-08-22"))
	assert.False(t, r.Overlaps(1, "2025-08-27", "2025-08-29"), "checkout day is not occupied")
	assert.False(t, r.Overlaps(1, "2025-08-19", "2025-08-21"), "ranges that touch do not overlap")
	assert.False(t, r.Overlaps(2, "2025-08-22", "2025-08-24"), "other room never conflicts")
}
