package part

import "errors"

// Validation error kinds. Producers wrap these with context via
// fmt.Errorf("...: %w", ...); callers classify with errors.Is.
var (
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrGridOverflow     = errors.New("grid overflow")
	ErrHoleOverlap      = errors.New("holes overlap")
)
