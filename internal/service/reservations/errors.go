package reservations

import "errors"

var (
	// ErrReservationNotFound is returned when the reservation does not exist
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrRoomNotFound is returned when the target room does not exist
	ErrRoomNotFound = errors.New("room not found")

	// ErrCannotCancel is returned when the reservation is past cancelling
	ErrCannotCancel = errors.New("reservation cannot be cancelled")

	// ErrRoomConflict is returned when the edited range would overlap
	// another active reservation and overbooking is disabled
	ErrRoomConflict = errors.New("room already occupied for the requested dates")

	// ErrInvalidInput is returned for malformed edit requests
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("service: internal error")
)
