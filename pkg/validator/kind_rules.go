package validator

import (
	"fmt"
	"math"
	"reflect"
	"strings"
)

// Present validates that a dynamically typed value was supplied.
// Nil values and blank strings count as missing.
func Present(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			if value == nil {
				return false
			}
			if s, ok := value.(string); ok {
				return strings.TrimSpace(s) != ""
			}
			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
			Err: ErrFieldRequired,
		},
	}
}

// Defined validates that a dynamically typed value is not nil. Unlike Present
// it accepts blank strings, leaving their rejection to a type rule.
func Defined(field string, value any) Rule {
	r := Present(field, value)
	r.Check = func() bool {
		return value != nil
	}
	return r
}

// IsString validates that value holds a string.
func IsString(field string, value any) Rule {
	return OfKind[string](field, value, "a string")
}

// IsBool validates that value holds a boolean.
func IsBool(field string, value any) Rule {
	return OfKind[bool](field, value, "a boolean")
}

// IsMap validates that value holds an object decoded into a string-keyed map.
func IsMap(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			_, ok := AsMap(value)
			return ok
		},
		Error: typeError(field, "an object"),
	}
}

// IsStringList validates that value holds a list whose elements are all strings.
func IsStringList(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			_, ok := AsStringList(value)
			return ok
		},
		Error: typeError(field, "a list of strings"),
	}
}

// IsNumber validates that value holds a finite number of any Go numeric kind.
// NaN and infinities fail with ErrOutOfRange, non-numbers with ErrInvalidType.
func IsNumber(field string, value any) Rule {
	return Chain(
		Rule{
			Check: func() bool {
				_, ok := AsNumber(value)
				return ok
			},
			Error: typeError(field, "a number"),
		},
		Rule{
			Check: func() bool {
				n, _ := AsNumber(value)
				return !math.IsNaN(n) && !math.IsInf(n, 0)
			},
			Error: ValidationError{
				Field:          field,
				Message:        "must be a finite number",
				TranslationKey: "validation.finite",
				TranslationValues: map[string]any{
					"field": field,
				},
				Err: ErrOutOfRange,
			},
		},
	)
}

// NonNegative validates that value is a finite number greater than or equal to zero.
func NonNegative(field string, value any) Rule {
	return Chain(
		IsNumber(field, value),
		Rule{
			Check: func() bool {
				n, _ := AsNumber(value)
				return n >= 0
			},
			Error: ValidationError{
				Field:          field,
				Message:        "must not be negative",
				TranslationKey: "validation.non_negative",
				TranslationValues: map[string]any{
					"field": field,
				},
				Err: ErrOutOfRange,
			},
		},
	)
}

// OfKind validates that value holds a T. The description is used in the
// error message ("must be <description>").
func OfKind[T any](field string, value any, description string) Rule {
	return Rule{
		Check: func() bool {
			_, ok := value.(T)
			return ok
		},
		Error: typeError(field, description),
	}
}

func typeError(field, description string) ValidationError {
	return ValidationError{
		Field:          field,
		Message:        fmt.Sprintf("must be %s", description),
		TranslationKey: "validation.type",
		TranslationValues: map[string]any{
			"field": field,
			"type":  description,
		},
		Err: ErrInvalidType,
	}
}

// AsNumber converts any Go numeric kind to float64.
// Booleans and strings are not numbers.
func AsNumber(value any) (float64, bool) {
	if value == nil {
		return 0, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// AsMap returns value as a string-keyed map. Named map types with string keys
// and any values (map[string]any, custom option types) are accepted.
func AsMap(value any) (map[string]any, bool) {
	if m, ok := value.(map[string]any); ok {
		return m, true
	}
	if value == nil {
		return nil, false
	}
	rv := reflect.ValueOf(value)
	mapType := reflect.TypeOf(map[string]any(nil))
	if rv.Kind() != reflect.Map || !rv.Type().ConvertibleTo(mapType) {
		return nil, false
	}
	return rv.Convert(mapType).Interface().(map[string]any), true
}

// AsStringList returns value as []string. Both []string and []any holding
// only strings are accepted.
func AsStringList(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}
