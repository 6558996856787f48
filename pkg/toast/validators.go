package toast

import (
	"fmt"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/google/uuid"

	"github.com/dmitrymomot/toastkit/pkg/validator"
)

// unlessContent runs validate only when opts carries no content override.
// Title, message, type and user-defined type checks do not apply to content.
func unlessContent[T any](opts Options, validate func() (T, error)) (T, error) {
	if hasContent(opts) {
		var zero T
		return zero, nil
	}
	return validate()
}

func hasContent(opts Options) bool {
	return opts[KeyContent] != nil
}

// ValidateContent checks that a content override, when supplied, is a templ component.
func ValidateContent(opts Options) (templ.Component, error) {
	raw := opts[KeyContent]
	if err := validator.Apply(
		validator.SkipNil(raw, validator.OfKind[templ.Component](KeyContent, raw, "a templ component")),
	); err != nil {
		return nil, err
	}
	c, _ := raw.(templ.Component)
	return c, nil
}

// ValidateTitle returns the optional title. It is skipped for content overrides.
func ValidateTitle(opts Options) (string, error) {
	return unlessContent(opts, func() (string, error) {
		raw := opts[KeyTitle]
		if err := validator.Apply(validator.SkipNil(raw, validator.IsString(KeyTitle, raw))); err != nil {
			return "", err
		}
		title, _ := raw.(string)
		return title, nil
	})
}

// ValidateMessage returns the required message. It is skipped for content overrides.
func ValidateMessage(opts Options) (string, error) {
	return unlessContent(opts, func() (string, error) {
		raw := opts[KeyMessage]
		if err := validator.Apply(validator.Chain(
			validator.Present(KeyMessage, raw),
			validator.IsString(KeyMessage, raw),
		)); err != nil {
			return "", err
		}
		return raw.(string), nil
	})
}

// ValidateType returns the required type in lower case. It is skipped for
// content overrides.
func ValidateType(opts Options) (Type, error) {
	return unlessContent(opts, func() (Type, error) {
		raw := opts[KeyType]
		if err := validator.Apply(validator.Chain(
			validator.Present(KeyType, raw),
			validator.IsString(KeyType, raw),
		)); err != nil {
			return "", err
		}
		return Type(strings.ToLower(raw.(string))), nil
	})
}

// ValidateUserDefinedTypes checks that a type which is not built-in is
// registered in defined. The lookup is exact and case-sensitive. It is
// skipped for content overrides and for built-in types.
func ValidateUserDefinedTypes(opts Options, defined []UserDefinedType) error {
	_, err := unlessContent(opts, func() (struct{}, error) {
		name, ok := opts[KeyType].(string)
		if !ok || Type(strings.ToLower(name)).IsBuiltin() {
			return struct{}{}, nil
		}
		if _, found := findUserDefinedType(name, defined); found {
			return struct{}{}, nil
		}
		return struct{}{}, validator.ValidationErrors{{
			Field:          KeyType,
			Message:        fmt.Sprintf("%q is neither a built-in nor a user-defined type", name),
			TranslationKey: "validation.unknown_type",
			TranslationValues: map[string]any{
				"field": KeyType,
				"type":  name,
			},
			Err: ErrUnknownType,
		}}
	})
	return err
}

// ValidateContainer returns the required container name in lower case.
func ValidateContainer(raw any) (Container, error) {
	if err := validator.Apply(validator.Chain(
		validator.Present(KeyContainer, raw),
		validator.IsString(KeyContainer, raw),
	)); err != nil {
		return "", err
	}
	return Container(strings.ToLower(strings.TrimSpace(raw.(string)))), nil
}

// ValidateInsert returns the insertion direction, InsertTop when omitted.
func ValidateInsert(raw any) (Insertion, error) {
	if raw == nil {
		return InsertTop, nil
	}
	if err := validator.Apply(validator.IsString(KeyInsert, raw)); err != nil {
		return "", err
	}
	insert := Insertion(strings.TrimSpace(raw.(string)))
	if err := validator.Apply(validator.OneOfFold(KeyInsert, insert, InsertTop, InsertBottom)); err != nil {
		return "", err
	}
	return Insertion(strings.ToLower(string(insert))), nil
}

// ValidateWidth returns the optional width in pixels; zero when omitted.
func ValidateWidth(raw any) (float64, error) {
	if err := validator.Apply(validator.SkipNil(raw, validator.NonNegative(KeyWidth, raw))); err != nil {
		return 0, err
	}
	width, _ := validator.AsNumber(raw)
	return width, nil
}

// ValidateDismissable merges supplied click/touch flags over {Click: true, Touch: true}.
func ValidateDismissable(raw any) (Dismissable, error) {
	return validateDismissable(raw, Dismissable{Click: true, Touch: true})
}

func validateDismissable(raw any, defaults Dismissable) (Dismissable, error) {
	if raw == nil {
		return defaults, nil
	}
	m, err := objectOption(KeyDismissable, raw)
	if err != nil {
		return Dismissable{}, err
	}

	click, touch := m["click"], m["touch"]
	if err := validator.Apply(
		validator.SkipNil(click, validator.IsBool(KeyDismissable+".click", click)),
		validator.SkipNil(touch, validator.IsBool(KeyDismissable+".touch", touch)),
	); err != nil {
		return Dismissable{}, err
	}

	d := defaults
	if v, ok := click.(bool); ok {
		d.Click = v
	}
	if v, ok := touch.(bool); ok {
		d.Touch = v
	}
	return d, nil
}

// ValidateDismissIcon returns the dismiss icon, or nil when omitted. A supplied
// icon needs a className string and a templ component as content.
func ValidateDismissIcon(raw any) (*DismissIcon, error) {
	if raw == nil {
		return nil, nil
	}
	m, err := objectOption(KeyDismiss, raw)
	if err != nil {
		return nil, err
	}

	className, content := m["className"], m["content"]
	if err := validator.Apply(
		validator.Chain(
			validator.Present(KeyDismiss+".className", className),
			validator.IsString(KeyDismiss+".className", className),
		),
		validator.Chain(
			validator.Defined(KeyDismiss+".content", content),
			validator.OfKind[templ.Component](KeyDismiss+".content", content, "a templ component"),
		),
	); err != nil {
		return nil, err
	}

	return &DismissIcon{
		ClassName: className.(string),
		Content:   content.(templ.Component),
	}, nil
}

// ValidateTimeoutDismiss returns the auto-dismiss delay. Omitting the option
// is valid and yields zero; a supplied option needs a non-negative duration.
func ValidateTimeoutDismiss(raw any) (time.Duration, error) {
	if raw == nil {
		return 0, nil
	}
	m, err := objectOption(KeyTimeoutDismiss, raw)
	if err != nil {
		return 0, err
	}

	field := KeyTimeoutDismiss + ".duration"
	duration := m["duration"]
	if err := validator.Apply(validator.Chain(
		validator.Defined(field, duration),
		validator.NonNegative(field, duration),
	)); err != nil {
		return 0, err
	}
	return durationValue(duration), nil
}

// ValidateTransition merges supplied duration, cubicBezier and delay over defaults.
func ValidateTransition(raw any, defaults Transition) (Transition, error) {
	return validateTransition("transition", raw, defaults)
}

func validateTransition(field string, raw any, defaults Transition) (Transition, error) {
	if raw == nil {
		return defaults, nil
	}
	m, err := objectOption(field, raw)
	if err != nil {
		return Transition{}, err
	}

	duration, easing, delay := m["duration"], m["cubicBezier"], m["delay"]
	if err := validator.Apply(
		validator.SkipNil(duration, validator.NonNegative(field+".duration", duration)),
		validator.SkipNil(easing, validator.IsString(field+".cubicBezier", easing)),
		validator.SkipNil(delay, validator.NonNegative(field+".delay", delay)),
	); err != nil {
		return Transition{}, err
	}

	t := defaults
	if duration != nil {
		t.Duration = durationValue(duration)
	}
	if s, ok := easing.(string); ok && s != "" {
		t.CubicBezier = s
	}
	if delay != nil {
		t.Delay = durationValue(delay)
	}
	return t, nil
}

// ValidateTouchSlidingExit merges the swipe and fade transitions over defaults.
func ValidateTouchSlidingExit(raw any, defaults TouchSlidingExit) (TouchSlidingExit, error) {
	if raw == nil {
		return defaults, nil
	}
	m, err := objectOption(KeyTouchSlidingExit, raw)
	if err != nil {
		return TouchSlidingExit{}, err
	}

	var errs validator.ValidationErrors
	swipe, err := validateTransition(KeyTouchSlidingExit+".swipe", m["swipe"], defaults.Swipe)
	errs.Merge(KeyTouchSlidingExit+".swipe", err)
	fade, err := validateTransition(KeyTouchSlidingExit+".fade", m["fade"], defaults.Fade)
	errs.Merge(KeyTouchSlidingExit+".fade", err)
	if err := errs.Err(); err != nil {
		return TouchSlidingExit{}, err
	}
	return TouchSlidingExit{Swipe: swipe, Fade: fade}, nil
}

// ValidateID returns the supplied notification id or a new random one.
func ValidateID(raw any) (string, error) {
	if raw == nil {
		return uuid.NewString(), nil
	}
	if err := validator.Apply(validator.Chain(
		validator.Present(KeyID, raw),
		validator.IsString(KeyID, raw),
	)); err != nil {
		return "", err
	}
	return raw.(string), nil
}

// ValidateAnimation returns animation classes given either as a
// space-separated string or as a list of strings.
func ValidateAnimation(field string, raw any) ([]string, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		return strings.Fields(v), nil
	}
	if err := validator.Apply(validator.IsStringList(field, raw)); err != nil {
		return nil, err
	}
	classes, _ := validator.AsStringList(raw)
	return classes, nil
}

// ParseUserDefinedTypes decodes a list of {name, htmlClasses} entries. Names
// are required and must be unique.
func ParseUserDefinedTypes(raw any) ([]UserDefinedType, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []UserDefinedType:
		return v, validateUserDefinedTypeNames(v)
	case []map[string]any:
		items := make([]any, len(v))
		for i, m := range v {
			items[i] = m
		}
		raw = items
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, validator.Apply(validator.OfKind[[]any](KeyUserDefinedTypes, raw, "a list of types"))
	}

	types := make([]UserDefinedType, 0, len(items))
	var errs validator.ValidationErrors
	for i, item := range items {
		field := fmt.Sprintf("%s[%d]", KeyUserDefinedTypes, i)
		m, err := objectOption(field, item)
		if err != nil {
			errs.Merge(field, err)
			continue
		}

		name, classes := m["name"], m["htmlClasses"]
		if err := validator.Apply(
			validator.Chain(
				validator.Present(field+".name", name),
				validator.IsString(field+".name", name),
			),
			validator.SkipNil(classes, validator.IsStringList(field+".htmlClasses", classes)),
		); err != nil {
			errs.Merge(field, err)
			continue
		}

		list, _ := validator.AsStringList(classes)
		types = append(types, UserDefinedType{Name: name.(string), HTMLClasses: list})
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return types, validateUserDefinedTypeNames(types)
}

func validateUserDefinedTypeNames(types []UserDefinedType) error {
	var errs validator.ValidationErrors
	seen := make(map[string]bool, len(types))
	for i, t := range types {
		field := fmt.Sprintf("%s[%d].name", KeyUserDefinedTypes, i)
		if err := validator.Apply(validator.NotBlank(field, t.Name)); err != nil {
			errs.Merge(field, err)
			continue
		}
		if seen[t.Name] {
			errs.Add(validator.ValidationError{
				Field:          field,
				Message:        fmt.Sprintf("duplicate type %q", t.Name),
				TranslationKey: "validation.duplicate",
				TranslationValues: map[string]any{
					"field": field,
					"name":  t.Name,
				},
				Err: validator.ErrInvalidValue,
			})
		}
		seen[t.Name] = true
	}
	return errs.Err()
}

func objectOption(field string, raw any) (map[string]any, error) {
	if err := validator.Apply(validator.IsMap(field, raw)); err != nil {
		return nil, err
	}
	m, _ := validator.AsMap(raw)
	return m, nil
}

// durationValue interprets numbers as milliseconds; time.Duration values pass through.
func durationValue(v any) time.Duration {
	if d, ok := v.(time.Duration); ok {
		return d
	}
	ms, _ := validator.AsNumber(v)
	return time.Duration(ms * float64(time.Millisecond))
}
