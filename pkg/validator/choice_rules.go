package validator

import (
	"fmt"
	"slices"
	"strings"
)

// OneOf checks that value is one of allowed. The comparison is exact.
func OneOf[T ~string](field string, value T, allowed ...T) Rule {
	return choice(field, allowed, func() bool {
		return slices.Contains(allowed, value)
	})
}

// OneOfFold is OneOf with case-insensitive matching.
func OneOfFold[T ~string](field string, value T, allowed ...T) Rule {
	return choice(field, allowed, func() bool {
		return slices.ContainsFunc(allowed, func(a T) bool {
			return strings.EqualFold(string(a), string(value))
		})
	})
}

func choice[T ~string](field string, allowed []T, check func() bool) Rule {
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = fmt.Sprintf("%q", string(a))
	}
	return Rule{
		Check: check,
		Error: ValidationError{
			Field:          field,
			Message:        "must be one of " + strings.Join(names, ", "),
			TranslationKey: "validation.one_of",
			TranslationValues: map[string]any{
				"field":   field,
				"allowed": names,
			},
			Err: ErrInvalidValue,
		},
	}
}
