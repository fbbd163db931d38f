package domain

import "errors"

// Error taxonomy. Services wrap these with %w and a caller-facing detail;
// the HTTP layer maps them to status codes. Anything that does not match
// one of these sentinels is treated as an infrastructure failure.
var (
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
)
