package create_reservation

import "errors"

var (
	// ErrRoomNotFound is returned when the target room does not exist
	ErrRoomNotFound = errors.New("create_reservation: room not found")

	// ErrDateInPast is returned when the checkin date is before today
	ErrDateInPast = errors.New("create_reservation: checkin date is in the past")

	// ErrRoomConflict is returned when overbooking is disabled and the
	// requested range overlaps an active reservation in the room
	ErrRoomConflict = errors.New("create_reservation: room already occupied for the requested dates")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal is returned on internal usecase failures
	ErrInternal = errors.New("create_reservation: internal error")
)
