package models

import (
	"time"

	"github.com/hoteleiro/HFD-ReservationService/internal/domain"
	"github.com/hoteleiro/HFD-ReservationService/pkg/types"
)

// Request models

// UpdateReservationRequest is a partial edit coming back from the
// reservation editor. Nil fields are left untouched; checkin maps to the
// stored start date and checkout to the end date.
type UpdateReservationRequest struct {
	RoomID        *int64   `json:"roomId,omitempty"`
	Checkin       *string  `json:"checkin,omitempty"`  // "2025-08-21"
	Checkout      *string  `json:"checkout,omitempty"` // "2025-08-27"
	Title         *string  `json:"title,omitempty"`
	People        *int     `json:"people,omitempty"`
	RatePerPerson *float64 `json:"ratePerPerson,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}

// Empty reports whether the request changes nothing.
func (r *UpdateReservationRequest) Empty() bool {
	return r.RoomID == nil && r.Checkin == nil && r.Checkout == nil &&
		r.Title == nil && r.People == nil && r.RatePerPerson == nil && r.Notes == nil
}

// CancelReservationRequest is a cancellation with its reason.
type CancelReservationRequest struct {
	Reason string `json:"reason"`
}

// Response models

// GuestResponse is a guest entry on a reservation.
type GuestResponse struct {
	ID         int64  `json:"id"`
	RegistryID *int64 `json:"registryId,omitempty"`
	Name       string `json:"name"`
	Titular    bool   `json:"titular"`
}

// PaymentResponse is a payment entry on a reservation.
type PaymentResponse struct {
	ID     int64   `json:"id"`
	Method string  `json:"method"`
	Amount float64 `json:"amount"`
	PaidAt string  `json:"paidAt"` // ISO 8601
}

// ReservationResponse is the full reservation DTO.
type ReservationResponse struct {
	ID       int64  `json:"id"`
	RoomID   int64  `json:"roomId"`
	Checkin  string `json:"checkin"`
	Checkout string `json:"checkout"`
	Title    string `json:"title"`
	Status   string `json:"status"`
	Nights   int    `json:"nights"`

	People        int      `json:"people"`
	NightlyRate   float64  `json:"nightlyRate"`
	RatePerPerson *float64 `json:"ratePerPerson,omitempty"`
	Notes         *string  `json:"notes,omitempty"`

	Guests   []GuestResponse   `json:"guests"`
	Payments []PaymentResponse `json:"payments"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainReservation converts a domain reservation into its DTO.
func FromDomainReservation(res *domain.Reservation) *ReservationResponse {
	if res == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:            res.ID,
		RoomID:        res.RoomID,
		Checkin:       res.Start.String(),
		Checkout:      res.End.String(),
		Title:         res.Title,
		Status:        string(res.Status),
		Nights:        res.Nights(),
		People:        res.People,
		NightlyRate:   res.NightlyRate,
		RatePerPerson: res.RatePerPerson,
		Notes:         res.Notes,
		Guests:        make([]GuestResponse, 0, len(res.Guests)),
		Payments:      make([]PaymentResponse, 0, len(res.Payments)),

		CancellationReason: res.CancellationReason,
		CreatedAt:          res.CreatedAt,
		UpdatedAt:          res.UpdatedAt,
	}

	for _, g := range res.Guests {
		resp.Guests = append(resp.Guests, GuestResponse{
			ID:         g.ID,
			RegistryID: g.RegistryID,
			Name:       g.Name,
			Titular:    g.Titular,
		})
	}

	for _, p := range res.Payments {
		resp.Payments = append(resp.Payments, PaymentResponse{
			ID:     p.ID,
			Method: p.Method,
			Amount: p.Amount,
			PaidAt: p.PaidAt.Format(time.RFC3339),
		})
	}

	if res.CancelledAt != nil {
		cancelledStr := res.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// ParseDates validates and converts the optional checkin/checkout fields.
func (r *UpdateReservationRequest) ParseDates() (start, end *types.DateString, err error) {
	if r.Checkin != nil {
		d, perr := types.NewDateStringFromString(*r.Checkin)
		if perr != nil {
			return nil, nil, perr
		}
		start = &d
	}
	if r.Checkout != nil {
		d, perr := types.NewDateStringFromString(*r.Checkout)
		if perr != nil {
			return nil, nil, perr
		}
		end = &d
	}
	return start, end, nil
}
