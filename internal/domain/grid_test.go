package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoteleiro/HFD-ReservationService/pkg/types"
)

func testLayout() Layout {
	return Layout{
		LabelWidth: 150,
		DayWidth:   40,
		RowHeight:  40,
		BandHeight: 28,
		WindowDays: 31,
	}
}

func testRooms() []*Room {
	return []*Room{
		{ID: 1, Name: "101"},
		{ID: 2, Name: "102"},
		{ID: 6, Name: "201"},
		{ID: 7, Name: "202"},
	}
}

func TestWindowStart_CurrentMonthAnchorsAtToday(t *testing.T) {
	today := types.DateString("2025-08-21")

	start, err := WindowStart(2025, time.August, today)
	require.NoError(t, err)
	assert.Equal(t, today, start)
}

func TestWindowStart_OtherMonthAnchorsAtFirst(t *testing.T) {
	today := types.DateString("2025-08-21")

	start, err := WindowStart(2025, time.October, today)
	require.NoError(t, err)
	assert.Equal(t, types.DateString("2025-10-01"), start)

	start, err = WindowStart(2025, time.March, today)
	require.NoError(t, err)
	assert.Equal(t, types.DateString("2025-03-01"), start)
}

func TestDateForColumn_Monotone(t *testing.T) {
	layout := testLayout()
	windowStart := types.DateString("2025-08-21")

	prev := types.DateString("")
	for col := 0; col < layout.WindowDays; col++ {
		date, err := layout.DateForColumn(windowStart, col)
		require.NoError(t, err)

		if col == 0 {
			assert.Equal(t, windowStart, date)
		} else {
			assert.True(t, prev.IsBefore(date), "column %d must map after column %d", col, col-1)
		}
		prev = date
	}
}

func TestColumnForX(t *testing.T) {
	layout := testLayout()

	// Anything left of the label gutter is not a day column.
	assert.Equal(t, -1, layout.ColumnForX(0))
	assert.Equal(t, -1, layout.ColumnForX(149))

	assert.Equal(t, 0, layout.ColumnForX(150))
	assert.Equal(t, 0, layout.ColumnForX(189))
	assert.Equal(t, 1, layout.ColumnForX(190))
	assert.Equal(t, 2, layout.ColumnForX(230))
}

func TestBuildRows_InsertsBandPerCategory(t *testing.T) {
	rows := BuildRows(testRooms())

	require.Len(t, rows, 6)
	assert.True(t, rows[0].Band)
	assert.Equal(t, CategorySimples, rows[0].Category)
	assert.Equal(t, int64(1), rows[1].Room.ID)
	assert.Equal(t, int64(2), rows[2].Room.ID)
	assert.True(t, rows[3].Band)
	assert.Equal(t, CategoryDuplo, rows[3].Category)
	assert.Equal(t, int64(6), rows[4].Room.ID)
	assert.Equal(t, int64(7), rows[5].Room.ID)
}

func TestRoomIDForY(t *testing.T) {
	layout := testLayout()
	rows := BuildRows(testRooms())

	// Band 0..27, room 1 at 28..67, room 2 at 68..107,
	// band 108..135, room 6 at 136..175, room 7 at 176..215.
	assert.Nil(t, layout.RoomIDForY(rows, 10), "category band has no room")
	require.NotNil(t, layout.RoomIDForY(rows, 28))
	assert.Equal(t, int64(1), *layout.RoomIDForY(rows, 28))
	assert.Equal(t, int64(2), *layout.RoomIDForY(rows, 70))
	assert.Nil(t, layout.RoomIDForY(rows, 120), "second band has no room")
	assert.Equal(t, int64(6), *layout.RoomIDForY(rows, 140))
	assert.Equal(t, int64(7), *layout.RoomIDForY(rows, 215))

	assert.Nil(t, layout.RoomIDForY(rows, -5))
	assert.Nil(t, layout.RoomIDForY(rows, 216), "below the last row")
}

func TestBarGeometry(t *testing.T) {
	layout := testLayout()
	windowStart := types.DateString("2025-08-21")

	left, width, visible, err := layout.BarGeometry(windowStart, "2025-08-23", "2025-08-27")
	require.NoError(t, err)
	assert.True(t, visible)
	assert.Equal(t, 150+2*40, left)
	assert.Equal(t, 4*40, width)
}

func TestBarGeometry_ClipsToWindow(t *testing.T) {
	layout := testLayout()
	windowStart := types.DateString("2025-08-21")

	// Starts before the window: clipped to the first column.
	left, width, visible, err := layout.BarGeometry(windowStart, "2025-08-19", "2025-08-24")
	require.NoError(t, err)
	assert.True(t, visible)
	assert.Equal(t, 150, left)
	assert.Equal(t, 3*40, width)

	// Entirely before the window.
	_, _, visible, err = layout.BarGeometry(windowStart, "2025-08-10", "2025-08-21")
	require.NoError(t, err)
	assert.False(t, visible)

	// Entirely after the window (31 days from 2025-08-21 ends 2025-09-21).
	_, _, visible, err = layout.BarGeometry(windowStart, "2025-09-21", "2025-09-25")
	require.NoError(t, err)
	assert.False(t, visible)
}

func TestCategoryForRoom(t *testing.T) {
	assert.Equal(t, CategorySimples, CategoryForRoom(1))
	assert.Equal(t, CategorySimples, CategoryForRoom(5))
	assert.Equal(t, CategoryDuplo, CategoryForRoom(6))
	assert.Equal(t, CategoryTriplo, CategoryForRoom(11))
	assert.Equal(t, CategoryDeluxe, CategoryForRoom(20))
	assert.Equal(t, CategoryMaster, CategoryForRoom(21))
}
