package types

import "errors"

// Engine errors. All three are detected synchronously and surfaced to the
// caller on first violation; nothing is recoverable internally.
var (
	// ErrInvalidInput reports a name with no usable letters after
	// normalization.
	ErrInvalidInput = errors.New("name contains no usable letters")

	// ErrInvalidDate reports a birth date that matches neither accepted
	// format or is not a real calendar date.
	ErrInvalidDate = errors.New("unrecognized date format, use DD/MM/YYYY or YYYY-MM-DD")

	// ErrInvalidNumber reports a non-positive integer handed to a
	// reduction function. Unreachable from valid external input; if it
	// triggers, the caller has a logic defect.
	ErrInvalidNumber = errors.New("number to reduce must be positive")
)
