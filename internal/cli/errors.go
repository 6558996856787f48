package cli

import "errors"

// ErrValidationFailed is returned when at least one input failed validation.
// Details are logged per field.
var ErrValidationFailed = errors.New("toast options failed validation")
