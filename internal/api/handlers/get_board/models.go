package get_board

import (
	getBoard "github.com/hoteleiro/HFD-ReservationService/internal/usecase/get_board"
)

// BoardResponse HTTP response model: the fully laid out month window.
type BoardResponse struct {
	WindowStart string         `json:"windowStart"`
	Days        []DayResponse  `json:"days"`
	Rows        []RowResponse  `json:"rows"`
	Bars        []BarResponse  `json:"bars"`
	Layout      LayoutResponse `json:"layout"`
}

// LayoutResponse carries the pixel sizes the geometry was computed with.
type LayoutResponse struct {
	LabelWidth int `json:"labelWidth"`
	DayWidth   int `json:"dayWidth"`
	RowHeight  int `json:"rowHeight"`
	BandHeight int `json:"bandHeight"`
}

// DayResponse is one header column.
type DayResponse struct {
	Date string `json:"date"`
	X    int    `json:"x"`
}

// RowResponse is one category band or room row.
type RowResponse struct {
	Band     bool   `json:"band"`
	Category string `json:"category"`
	RoomID   int64  `json:"roomId,omitempty"`
	RoomName string `json:"roomName,omitempty"`
	Y        int    `json:"y"`
	Height   int    `json:"height"`
}

// BarResponse is one reservation bar.
type BarResponse struct {
	ReservationID int64  `json:"reservationId"`
	RoomID        int64  `json:"roomId"`
	Title         string `json:"title"`
	Status        string `json:"status"`
	Checkin       string `json:"checkin"`
	Checkout      string `json:"checkout"`
	People        int    `json:"people"`

	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// FromUseCaseResponse converts the use case response into the HTTP model
func FromUseCaseResponse(resp *getBoard.Response) *BoardResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, d := range resp.Days {
		days = append(days, DayResponse{Date: d.Date.String(), X: d.X})
	}

	rows := make([]RowResponse, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		rows = append(rows, RowResponse{
			Band:     row.Band,
			Category: row.Category,
			RoomID:   row.RoomID,
			RoomName: row.RoomName,
			Y:        row.Y,
			Height:   row.Height,
		})
	}

	bars := make([]BarResponse, 0, len(resp.Bars))
	for _, bar := range resp.Bars {
		bars = append(bars, BarResponse{
			ReservationID: bar.ReservationID,
			RoomID:        bar.RoomID,
			Title:         bar.Title,
			Status:        bar.Status,
			Checkin:       bar.Checkin.String(),
			Checkout:      bar.Checkout.String(),
			People:        bar.People,
			X:             bar.X,
			Y:             bar.Y,
			Width:         bar.Width,
			Height:        bar.Height,
		})
	}

	return &BoardResponse{
		WindowStart: resp.WindowStart.String(),
		Days:        days,
		Rows:        rows,
		Bars:        bars,
		Layout: LayoutResponse{
			LabelWidth: resp.LabelWidth,
			DayWidth:   resp.DayWidth,
			RowHeight:  resp.RowHeight,
			BandHeight: resp.BandHeight,
		},
	}
}
