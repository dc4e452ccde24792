package stage_gesture

import "errors"

var (
	// ErrReservationNotFound is returned when the reservation does not exist
	ErrReservationNotFound = errors.New("stage_gesture: reservation not found")

	// ErrReservationImmovable is returned when the reservation status does
	// not allow moving or resizing (checked out or cancelled)
	ErrReservationImmovable = errors.New("stage_gesture: reservation cannot be moved")

	// ErrInvalidGesture is returned for unknown gesture kinds or
	// reservations too short to resize
	ErrInvalidGesture = errors.New("stage_gesture: invalid gesture")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("stage_gesture: invalid input data")

	// ErrInternal is returned on internal usecase failures
	ErrInternal = errors.New("stage_gesture: internal error")
)
