package toast

import "errors"

var (
	// ErrUnknownType is returned when a notification type is neither built-in
	// nor registered as a user-defined type.
	ErrUnknownType = errors.New("toast: unknown notification type")

	// ErrUnknownContainer is returned when a notification references a
	// container outside the four screen corners.
	ErrUnknownContainer = errors.New("toast: unknown container")

	// ErrInvalidCatalog is returned when a user-defined type catalog cannot be decoded.
	ErrInvalidCatalog = errors.New("toast: invalid type catalog")
)
