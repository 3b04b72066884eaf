package shift

import "errors"

// Shift catalog errors
var (
	ErrMisconfigured = errors.New("shift definition is misconfigured")
	ErrShiftNotFound = errors.New("shift not found")
	ErrNameExists    = errors.New("shift name already exists")
)
