package create_reservation

import (
	"time"

	"github.com/hoteleiro/HFD-ReservationService/internal/domain"
	"github.com/hoteleiro/HFD-ReservationService/pkg/types"
)

// GuestInput is one guest on the creation request. Exactly one guest must
// be marked titular when the list is non-empty.
type GuestInput struct {
	RegistryID *int64
	Name       string
	Titular    bool
}

// Request is the creation request produced by a completed two-click range
// on the board plus the review form fields.
type Request struct {
	RoomID   int64
	Checkin  types.DateString
	Checkout types.DateString

	Title         *string // display label; resolved from registries when absent
	People        int
	RatePerPerson *float64
	Notes         *string

	Guests    []GuestInput
	PayerCnpj *string // company tax id when the payer is a company
}

// Response is the created reservation with the computed pricing summary.
type Response struct {
	ID       int64
	RoomID   int64
	Checkin  types.DateString
	Checkout types.DateString
	Title    string
	Status   string

	People        int
	Nights        int
	NightlyRate   float64
	RatePerPerson *float64
	Total         float64
	Notes         *string

	Guests []GuestResponse

	CreatedAt time.Time
	UpdatedAt time.Time
}

// GuestResponse is one guest on the created reservation.
type GuestResponse struct {
	ID         int64
	RegistryID *int64
	Name       string
	Titular    bool
}

func buildResponse(res *domain.Reservation, nights int, total float64) *Response {
	guests := make([]GuestResponse, 0, len(res.Guests))
	for _, g := range res.Guests {
		guests = append(guests, GuestResponse{
			ID:         g.ID,
			RegistryID: g.RegistryID,
			Name:       g.Name,
			Titular:    g.Titular,
		})
	}

	return &Response{
		ID:            res.ID,
		RoomID:        res.RoomID,
		Checkin:       res.Start,
		Checkout:      res.End,
		Title:         res.Title,
		Status:        string(res.Status),
		People:        res.People,
		Nights:        nights,
		NightlyRate:   res.NightlyRate,
		RatePerPerson: res.RatePerPerson,
		Total:         total,
		Notes:         res.Notes,
		Guests:        guests,
		CreatedAt:     res.CreatedAt,
		UpdatedAt:     res.UpdatedAt,
	}
}
