package config

import "errors"

var (
	// ErrParsingConfig wraps caarlos0/env failures: a missing required
	// variable or a value that does not convert to the field type.
	ErrParsingConfig = errors.New("config: cannot parse environment")

	// ErrInvalidConfig wraps a failed `validate` tag check.
	ErrInvalidConfig = errors.New("config: invalid values")

	ErrLoadingEnvFile  = errors.New("config: cannot read env file")
	ErrConfigNotLoaded = errors.New("config: not loaded")
	ErrNilPointer      = errors.New("config: nil destination")
)
