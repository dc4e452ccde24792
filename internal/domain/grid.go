package domain

import (
	"time"

	"github.com/hoteleiro/HFD-ReservationService/pkg/types"
)

// Layout holds the fixed pixel geometry of the reservation board: a
// room-label gutter on the left followed by WindowDays equal day columns,
// and vertically a sequence of category bands and room rows.
//
// All functions here are pure: callers are responsible for adding scroll
// offsets before converting pointer coordinates.
type Layout struct {
	LabelWidth int // width of the room-label gutter
	DayWidth   int // width of one day column
	RowHeight  int // height of one room row
	BandHeight int // height of one category band
	WindowDays int // number of day columns
}

// DefaultLayout returns the layout used when none is configured.
func DefaultLayout() Layout {
	return Layout{
		LabelWidth: DefaultLabelWidth,
		DayWidth:   DefaultDayWidth,
		RowHeight:  DefaultRowHeight,
		BandHeight: DefaultBandHeight,
		WindowDays: DefaultWindowDays,
	}
}

// WindowStart returns the first date of the board window for a viewed
// month: today when the viewed month is the current month, the 1st of the
// viewed month otherwise.
func WindowStart(viewYear int, viewMonth time.Month, today types.DateString) (types.DateString, error) {
	t, err := today.Time()
	if err != nil {
		return "", err
	}
	if t.Year() == viewYear && t.Month() == viewMonth {
		return today, nil
	}
	return types.NewDateString(time.Date(viewYear, viewMonth, 1, 0, 0, 0, 0, time.UTC)), nil
}

// DateForColumn maps a day-column index to its calendar date.
func (l Layout) DateForColumn(windowStart types.DateString, column int) (types.DateString, error) {
	return windowStart.AddDays(column)
}

// ColumnForX maps a content x coordinate to a day-column index.
// Returns -1 when x falls inside the label gutter.
func (l Layout) ColumnForX(x int) int {
	if x < l.LabelWidth {
		return -1
	}
	return (x - l.LabelWidth) / l.DayWidth
}

// ColumnInWindow reports whether a column index is inside the window.
func (l Layout) ColumnInWindow(column int) bool {
	return column >= 0 && column < l.WindowDays
}

// XForColumn is the inverse of ColumnForX: the left pixel edge of a column.
func (l Layout) XForColumn(column int) int {
	return l.LabelWidth + column*l.DayWidth
}

// Row is one vertical slot of the board: either a category band (no
// interactive cells) or a room row.
type Row struct {
	Band     bool
	Category RoomCategory
	Room     *Room
}

// BuildRows lays out rooms into band and room rows. Rooms must be sorted
// by id; a band row is inserted whenever the category changes.
func BuildRows(rooms []*Room) []Row {
	rows := make([]Row, 0, len(rooms)+4)

	var current RoomCategory
	for _, room := range rooms {
		if cat := room.Category(); cat != current {
			rows = append(rows, Row{Band: true, Category: cat})
			current = cat
		}
		rows = append(rows, Row{Room: room, Category: current})
	}

	return rows
}

// rowHeight returns the pixel height of a row.
func (l Layout) rowHeight(row Row) int {
	if row.Band {
		return l.BandHeight
	}
	return l.RowHeight
}

// RoomIDForY walks the ordered rows accumulating offsets and returns the
// room whose row vertically contains y, or nil when y falls inside a
// category band or outside the board.
func (l Layout) RoomIDForY(rows []Row, y int) *int64 {
	if y < 0 {
		return nil
	}

	offset := 0
	for _, row := range rows {
		h := l.rowHeight(row)
		if y < offset+h {
			if row.Band {
				return nil
			}
			id := row.Room.ID
			return &id
		}
		offset += h
	}

	return nil
}

// YForRow returns the top pixel offset of the row at the given index.
func (l Layout) YForRow(rows []Row, index int) int {
	offset := 0
	for i := 0; i < index && i < len(rows); i++ {
		offset += l.rowHeight(rows[i])
	}
	return offset
}

// BarGeometry computes the horizontal pixel placement of a [start, end)
// reservation bar inside the window, clipped to the visible columns.
// visible is false when the range does not intersect the window at all.
func (l Layout) BarGeometry(windowStart, start, end types.DateString) (left, width int, visible bool, err error) {
	windowEnd, err := windowStart.AddDays(l.WindowDays)
	if err != nil {
		return 0, 0, false, err
	}

	if !start.IsBefore(windowEnd) || !windowStart.IsBefore(end) {
		return 0, 0, false, nil
	}

	from := types.Max(start, windowStart)
	to := types.Min(end, windowEnd)

	startCol, err := windowStart.DaysUntil(from)
	if err != nil {
		return 0, 0, false, err
	}
	nights, err := from.DaysUntil(to)
	if err != nil {
		return 0, 0, false, err
	}

	return l.XForColumn(startCol), nights * l.DayWidth, true, nil
}
