package create_reservation

import (
	"fmt"

	"github.com/hoteleiro/HFD-ReservationService/internal/domain"
	"github.com/hoteleiro/HFD-ReservationService/pkg/types"
)

// validateRequest checks the creation request's structural constraints
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomId must be positive", ErrInvalidInput)
	}

	if req.Checkin.IsZero() {
		return fmt.Errorf("%w: checkin is required", ErrInvalidInput)
	}
	if err := req.Checkin.Validate(); err != nil {
		return fmt.Errorf("%w: invalid checkin: %v", ErrInvalidInput, err)
	}

	if req.Checkout.IsZero() {
		return fmt.Errorf("%w: checkout is required", ErrInvalidInput)
	}
	if err := req.Checkout.Validate(); err != nil {
		return fmt.Errorf("%w: invalid checkout: %v", ErrInvalidInput, err)
	}

	if req.People <= 0 || req.People > domain.MaxPeoplePerReservation {
		return fmt.Errorf("%w: people must be between 1 and %d", ErrInvalidInput, domain.MaxPeoplePerReservation)
	}

	if req.Title != nil && len(*req.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title exceeds %d characters", ErrInvalidInput, domain.MaxTitleLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.RatePerPerson != nil && *req.RatePerPerson < 0 {
		return fmt.Errorf("%w: ratePerPerson must not be negative", ErrInvalidInput)
	}

	return validateGuests(req.Guests)
}

// validateGuests requires exactly one titular guest on non-empty lists
func validateGuests(guests []GuestInput) error {
	if len(guests) == 0 {
		return nil
	}

	titulars := 0
	for _, g := range guests {
		if g.Name == "" && g.RegistryID == nil {
			return fmt.Errorf("%w: guest needs a name or a registry id", ErrInvalidInput)
		}
		if g.Titular {
			titulars++
		}
	}

	if titulars != 1 {
		return fmt.Errorf("%w: exactly one guest must be titular, got %d", ErrInvalidInput, titulars)
	}

	return nil
}

// normalizeRange applies the two-click completion rules: checkin may not be
// in the past, and checkout is bumped to checkin+1 when it does not land
// after checkin, so every reservation covers at least one night.
func normalizeRange(checkin, checkout, today types.DateString) (types.DateString, error) {
	if checkin.IsBefore(today) {
		return "", ErrDateInPast
	}

	if checkout.IsAfter(checkin) {
		return checkout, nil
	}

	bumped, err := checkin.AddDays(domain.MinNights)
	if err != nil {
		return "", fmt.Errorf("%w: failed to normalize checkout: %v", ErrInternal, err)
	}
	return bumped, nil
}

// findOverlap returns the first active reservation overlapping the range in
// the room, or nil
func findOverlap(existing []*domain.Reservation, roomID int64, start, end types.DateString) *domain.Reservation {
	for _, res := range existing {
		if res.Overlaps(roomID, start, end) {
			return res
		}
	}
	return nil
}
