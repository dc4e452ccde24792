package cnpj

import "errors"

var (
	// ErrCompanyNotFound is returned when the tax id is not registered
	ErrCompanyNotFound = errors.New("company not found for cnpj")

	// ErrInvalidCnpj is returned for malformed tax ids
	ErrInvalidCnpj = errors.New("invalid cnpj: expected 14 digits")

	// ErrInternal is returned on client-side failures
	ErrInternal = errors.New("cnpj client: internal error")

	// ErrInvalidResponse is returned when the lookup service answers with
	// an unexpected payload or status code
	ErrInvalidResponse = errors.New("cnpj client: invalid response")

	// ErrServiceDegraded is returned when the lookup service is
	// unreachable and the caller should keep the manually entered name
	ErrServiceDegraded = errors.New("cnpj lookup unavailable: graceful degradation applied")
)
