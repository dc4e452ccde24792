package create_reservation

import (
	"time"

	createReservation "github.com/hoteleiro/HFD-ReservationService/internal/usecase/create_reservation"
	"github.com/hoteleiro/HFD-ReservationService/pkg/types"
)

// GuestRequest is one guest on the creation request.
type GuestRequest struct {
	RegistryID *int64 `json:"registryId,omitempty"`
	Name       string `json:"name,omitempty"`
	Titular    bool   `json:"titular,omitempty"`
}

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	RoomID        int64          `json:"roomId"`
	Checkin       string         `json:"checkin"`  // "2025-08-21"
	Checkout      string         `json:"checkout"` // "2025-08-27"
	Title         *string        `json:"title,omitempty"`
	People        int            `json:"people"`
	RatePerPerson *float64       `json:"ratePerPerson,omitempty"`
	Notes         *string        `json:"notes,omitempty"`
	Guests        []GuestRequest `json:"guests,omitempty"`
	PayerCnpj     *string        `json:"payerCnpj,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID       int64  `json:"id"`
	RoomID   int64  `json:"roomId"`
	Checkin  string `json:"checkin"`
	Checkout string `json:"checkout"`
	Title    string `json:"title"`
	Status   string `json:"status"`

	People        int      `json:"people"`
	Nights        int      `json:"nights"`
	NightlyRate   float64  `json:"nightlyRate"`
	RatePerPerson *float64 `json:"ratePerPerson,omitempty"`
	Total         float64  `json:"total"`
	Notes         *string  `json:"notes,omitempty"`

	Guests []GuestResponse `json:"guests"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// GuestResponse is one guest on the created reservation.
type GuestResponse struct {
	ID         int64  `json:"id"`
	RegistryID *int64 `json:"registryId,omitempty"`
	Name       string `json:"name"`
	Titular    bool   `json:"titular"`
}

// ToUseCaseRequest converts the HTTP request into the use case model,
// validating the date strings on the way.
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	checkin, err := types.NewDateStringFromString(r.Checkin)
	if err != nil {
		return nil, err
	}
	checkout, err := types.NewDateStringFromString(r.Checkout)
	if err != nil {
		return nil, err
	}

	guests := make([]createReservation.GuestInput, 0, len(r.Guests))
	for _, g := range r.Guests {
		guests = append(guests, createReservation.GuestInput{
			RegistryID: g.RegistryID,
			Name:       g.Name,
			Titular:    g.Titular,
		})
	}

	return &createReservation.Request{
		RoomID:        r.RoomID,
		Checkin:       checkin,
		Checkout:      checkout,
		Title:         r.Title,
		People:        r.People,
		RatePerPerson: r.RatePerPerson,
		Notes:         r.Notes,
		Guests:        guests,
		PayerCnpj:     r.PayerCnpj,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	guests := make([]GuestResponse, 0, len(resp.Guests))
	for _, g := range resp.Guests {
		guests = append(guests, GuestResponse{
			ID:         g.ID,
			RegistryID: g.RegistryID,
			Name:       g.Name,
			Titular:    g.Titular,
		})
	}

	return &ReservationResponse{
		ID:            resp.ID,
		RoomID:        resp.RoomID,
		Checkin:       resp.Checkin.String(),
		Checkout:      resp.Checkout.String(),
		Title:         resp.Title,
		Status:        resp.Status,
		People:        resp.People,
		Nights:        resp.Nights,
		NightlyRate:   resp.NightlyRate,
		RatePerPerson: resp.RatePerPerson,
		Total:         resp.Total,
		Notes:         resp.Notes,
		Guests:        guests,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
