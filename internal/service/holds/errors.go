package holds

import "errors"

var (
	// ErrHoldNotFound is returned when the hold id is unknown
	ErrHoldNotFound = errors.New("hold not found")

	// ErrHoldExpired is returned when the hold outlived its TTL
	ErrHoldExpired = errors.New("hold expired")

	// ErrReservationNotFound is returned when the held reservation was
	// removed between staging and confirmation
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrRoomConflict is returned when confirming would overlap another
	// active reservation and overbooking is disabled
	ErrRoomConflict = errors.New("room already occupied for the requested dates")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("service: internal error")
)
