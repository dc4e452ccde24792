package guestregistry

import "errors"

var (
	// ErrGuestNotFound is returned when the person is not registered
	ErrGuestNotFound = errors.New("guest not found in registry")

	// ErrInternal is returned on client-side failures
	ErrInternal = errors.New("guestregistry client: internal error")

	// ErrInvalidResponse is returned when the registry answers with an
	// unexpected payload or status code
	ErrInvalidResponse = errors.New("guestregistry client: invalid response")

	// ErrServiceDegraded is returned when the registry is unreachable and
	// the caller should fall back to locally supplied guest data
	ErrServiceDegraded = errors.New("guestregistry unavailable: graceful degradation applied")
)
