package validator

import "errors"

// Validation categories. Each ValidationError wraps exactly one of them (or a
// caller-defined sentinel), and ValidationErrors matches them with errors.Is.
var (
	// ErrValidationFailed is matched by every non-empty ValidationErrors.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldRequired is returned when a required field is missing or empty.
	ErrFieldRequired = errors.New("field is required")

	// ErrInvalidType is returned when a field holds a value of the wrong type.
	ErrInvalidType = errors.New("invalid type")

	// ErrInvalidValue is returned when a field holds a value outside an enumerated set.
	ErrInvalidValue = errors.New("invalid value")

	// ErrOutOfRange is returned when a numeric value is NaN, infinite or out of bounds.
	ErrOutOfRange = errors.New("value out of range")
)
