package validator

import "strings"

// NotBlank fails when value is empty or only whitespace.
func NotBlank(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{
			Field:             field,
			Message:           "must not be blank",
			TranslationKey:    "validation.not_blank",
			TranslationValues: map[string]any{"field": field},
			Err:               ErrFieldRequired,
		},
	}
}
