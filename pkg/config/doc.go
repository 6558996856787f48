// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv`, `github.com/caarlos0/env/v11` and
// `github.com/go-playground/validator/v10`:
//
//   - LoadEnv reads one or more `.env` files into the process environment
//     (the default `.env` in the working directory when called without
//     arguments).
//   - Load parses the environment into a struct using `env` tags, then checks
//     its `validate` tags.
//   - Each configuration type is parsed once and cached for the lifetime of
//     the process. ForceReload and ResetCache refresh the cache in tests.
//
// # Usage
//
// Toast defaults are tagged for this package, with every variable prefixed
// by TOAST_:
//
//	d := toast.DefaultDefaults()
//	if err := config.Load(&d); err != nil {
//	    log.Fatalf("toast defaults: %v", err)
//	}
//
//	// TOAST_INSERT=bottom
//	// TOAST_SLIDING_EXIT_DURATION=250ms
//	// TOAST_TOUCH_SLIDING_EXIT_FADE_CUBIC_BEZIER=ease-out
//
// Fields without a variable or envDefault keep the value the struct held
// before Load, so code defaults survive a partial environment.
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrInvalidConfig`  – the parsed struct failed its `validate` tags.
//   - `ErrLoadingEnvFile` – a `.env` file could not be read.
//   - `ErrConfigNotLoaded` – requested config type has not been loaded yet.
//   - `ErrNilPointer`      – nil pointer passed to `Load`/`MustLoad`.
package config
