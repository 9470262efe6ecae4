package domain

import "errors"

var (
	// Validation errors
	ErrValidation     = errors.New("invalid movement")
	ErrInvalidKind    = errors.New("invalid movement kind")
	ErrInvalidSource  = errors.New("invalid movement source")
	ErrInvalidRefKind = errors.New("invalid reference kind")
	ErrMissingAmount  = errors.New("amount is missing or not a number")

	// Lookup errors
	ErrMovementNotFound = errors.New("movement not found")
)
