package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
	// Err is the category sentinel the failure belongs to.
	Err error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e ValidationError) Unwrap() error {
	return e.Err
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, err.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is reports ErrValidationFailed for any non-empty collection.
// Category sentinels are matched through Unwrap.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed && len(ve) > 0
}

// Unwrap exposes the category sentinel of every entry to errors.Is and errors.As.
func (ve ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(ve))
	for _, err := range ve {
		if err.Err != nil {
			errs = append(errs, err.Err)
		}
	}
	return errs
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// Merge appends the entries of err when it carries ValidationErrors.
// Any other non-nil error is recorded as a single entry for field.
func (ve *ValidationErrors) Merge(field string, err error) {
	if err == nil {
		return
	}
	if verrs := ExtractValidationErrors(err); verrs != nil {
		*ve = append(*ve, verrs...)
		return
	}
	ve.Add(ValidationError{
		Field:          field,
		Message:        err.Error(),
		TranslationKey: "validation.failed",
		Err:            err,
	})
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Err returns nil for an empty collection and the collection itself otherwise.
func (ve ValidationErrors) Err() error {
	if ve.IsEmpty() {
		return nil
	}
	return ve
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError

	// resolve reports the failure of composite rules, whose error depends on
	// which inner rule failed.
	resolve func() ValidationError
}

func (r Rule) failure() ValidationError {
	if r.resolve != nil {
		return r.resolve()
	}
	return r.Error
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.failure())
		}
	}

	return errs.Err()
}

// Chain evaluates rules in order and fails with the first failing rule's error.
// Use it to report one problem per field, e.g. "required" before "must be a string".
func Chain(rules ...Rule) Rule {
	failed := -1
	r := Rule{
		Check: func() bool {
			for i, rule := range rules {
				if !rule.Check() {
					failed = i
					return false
				}
			}
			failed = -1
			return true
		},
	}
	r.resolve = func() ValidationError {
		if failed < 0 {
			return ValidationError{}
		}
		return rules[failed].failure()
	}
	return r
}

// SkipNil passes when value is nil, otherwise it defers to rule.
func SkipNil(value any, rule Rule) Rule {
	return When(value != nil, rule)
}

// When evaluates rule only if cond holds.
func When(cond bool, rule Rule) Rule {
	return Rule{
		Check: func() bool {
			return !cond || rule.Check()
		},
		Error:   rule.Error,
		resolve: rule.resolve,
	}
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
