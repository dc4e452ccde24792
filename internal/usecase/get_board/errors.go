package get_board

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("get_board: invalid input data")

	// ErrInternal is returned on internal usecase failures
	ErrInternal = errors.New("get_board: internal error")
)
