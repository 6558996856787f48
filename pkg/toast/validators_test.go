package toast_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toastkit/pkg/toast"
	"github.com/dmitrymomot/toastkit/pkg/validator"
)

func TestValidateDismissIcon(t *testing.T) {
	t.Run("omitted", func(t *testing.T) {
		icon, err := toast.ValidateDismissIcon(nil)
		require.NoError(t, err)
		assert.Nil(t, icon)
	})

	t.Run("valid icon", func(t *testing.T) {
		icon, err := toast.ValidateDismissIcon(map[string]any{"className": "close", "content": text("×")})
		require.NoError(t, err)
		assert.Equal(t, "close", icon.ClassName)
		assert.NotNil(t, icon.Content)
	})

	tests := []struct {
		name    string
		raw     any
		wantErr error
	}{
		{"className missing", map[string]any{}, validator.ErrFieldRequired},
		{"className not a string", map[string]any{"className": false}, validator.ErrInvalidType},
		{"content missing", map[string]any{"className": "close"}, validator.ErrFieldRequired},
		{"content not a component", map[string]any{"className": []any{}, "content": []any{}}, validator.ErrInvalidType},
		{"not an object", "close", validator.ErrInvalidType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := toast.ValidateDismissIcon(tt.raw)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateTimeoutDismiss(t *testing.T) {
	t.Run("omitted is a no-op", func(t *testing.T) {
		d, err := toast.ValidateTimeoutDismiss(nil)
		require.NoError(t, err)
		assert.Zero(t, d)
	})

	t.Run("milliseconds", func(t *testing.T) {
		d, err := toast.ValidateTimeoutDismiss(map[string]any{"duration": 5000})
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, d)
	})

	t.Run("time.Duration passes through", func(t *testing.T) {
		d, err := toast.ValidateTimeoutDismiss(toast.Options{"duration": 2 * time.Second})
		require.NoError(t, err)
		assert.Equal(t, 2*time.Second, d)
	})

	t.Run("duration missing", func(t *testing.T) {
		_, err := toast.ValidateTimeoutDismiss(map[string]any{})
		assert.ErrorIs(t, err, validator.ErrFieldRequired)
	})

	t.Run("duration not a number", func(t *testing.T) {
		_, err := toast.ValidateTimeoutDismiss(map[string]any{"duration": ""})
		assert.ErrorIs(t, err, validator.ErrInvalidType)
	})

	t.Run("negative duration", func(t *testing.T) {
		_, err := toast.ValidateTimeoutDismiss(map[string]any{"duration": -100})
		assert.ErrorIs(t, err, validator.ErrOutOfRange)
	})

	t.Run("NaN duration", func(t *testing.T) {
		_, err := toast.ValidateTimeoutDismiss(map[string]any{"duration": math.NaN()})
		assert.ErrorIs(t, err, validator.ErrOutOfRange)
	})
}

func TestValidateTransition(t *testing.T) {
	defaults := toast.Transition{Duration: time.Second, CubicBezier: "linear", Delay: 0}

	t.Run("values are set", func(t *testing.T) {
		got, err := toast.ValidateTransition(map[string]any{
			"duration":    300,
			"cubicBezier": "ease-in",
			"delay":       200,
		}, defaults)
		require.NoError(t, err)
		assert.Equal(t, toast.Transition{
			Duration:    300 * time.Millisecond,
			CubicBezier: "ease-in",
			Delay:       200 * time.Millisecond,
		}, got)
	})

	t.Run("defaults are applied", func(t *testing.T) {
		got, err := toast.ValidateTransition(map[string]any{}, defaults)
		require.NoError(t, err)
		assert.Equal(t, defaults, got)

		got, err = toast.ValidateTransition(nil, defaults)
		require.NoError(t, err)
		assert.Equal(t, defaults, got)
	})

	t.Run("wrong types", func(t *testing.T) {
		_, err := toast.ValidateTransition(map[string]any{"duration": ""}, defaults)
		assert.ErrorIs(t, err, validator.ErrInvalidType)

		_, err = toast.ValidateTransition(map[string]any{"cubicBezier": 0}, defaults)
		assert.ErrorIs(t, err, validator.ErrInvalidType)

		_, err = toast.ValidateTransition(map[string]any{"delay": ""}, defaults)
		assert.ErrorIs(t, err, validator.ErrInvalidType)
	})

	t.Run("negative delay", func(t *testing.T) {
		_, err := toast.ValidateTransition(map[string]any{"delay": -1}, defaults)
		assert.ErrorIs(t, err, validator.ErrOutOfRange)
	})

	t.Run("errors name the field", func(t *testing.T) {
		_, err := toast.ValidateTransition(map[string]any{"duration": "", "delay": "x"}, defaults)
		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, []string{"transition.duration", "transition.delay"}, verrs.Fields())
	})
}

func TestValidateTouchSlidingExit(t *testing.T) {
	defaults := toast.DefaultDefaults().TouchSlidingExit

	got, err := toast.ValidateTouchSlidingExit(map[string]any{
		"fade": map[string]any{"duration": 100},
	}, defaults)
	require.NoError(t, err)
	assert.Equal(t, defaults.Swipe, got.Swipe)
	assert.Equal(t, 100*time.Millisecond, got.Fade.Duration)

	_, err = toast.ValidateTouchSlidingExit(map[string]any{
		"swipe": map[string]any{"delay": "soon"},
	}, defaults)
	verrs := validator.ExtractValidationErrors(err)
	require.NotNil(t, verrs)
	assert.True(t, verrs.Has("touchSlidingExit.swipe.delay"))
}

func TestValidateTitle(t *testing.T) {
	title, err := toast.ValidateTitle(toast.Options{"content": text("x"), "title": 0})
	require.NoError(t, err)
	assert.Empty(t, title, "skipped for content")

	title, err = toast.ValidateTitle(toast.Options{})
	require.NoError(t, err)
	assert.Empty(t, title)

	title, err = toast.ValidateTitle(toast.Options{"title": "Saved"})
	require.NoError(t, err)
	assert.Equal(t, "Saved", title)

	_, err = toast.ValidateTitle(toast.Options{"title": 0})
	assert.ErrorIs(t, err, validator.ErrInvalidType)
}

func TestValidateMessage(t *testing.T) {
	msg, err := toast.ValidateMessage(toast.Options{"content": text("x")})
	require.NoError(t, err)
	assert.Empty(t, msg, "skipped for content")

	_, err = toast.ValidateMessage(toast.Options{})
	assert.ErrorIs(t, err, validator.ErrFieldRequired)

	_, err = toast.ValidateMessage(toast.Options{"message": 0})
	assert.ErrorIs(t, err, validator.ErrInvalidType)

	msg, err = toast.ValidateMessage(toast.Options{"message": "Done"})
	require.NoError(t, err)
	assert.Equal(t, "Done", msg)
}

func TestValidateType(t *testing.T) {
	typ, err := toast.ValidateType(toast.Options{"content": text("x")})
	require.NoError(t, err)
	assert.Empty(t, typ)

	_, err = toast.ValidateType(nil)
	assert.ErrorIs(t, err, validator.ErrFieldRequired)

	_, err = toast.ValidateType(toast.Options{"type": map[string]any{}})
	assert.ErrorIs(t, err, validator.ErrInvalidType)

	typ, err = toast.ValidateType(toast.Options{"type": "SUCCESS"})
	require.NoError(t, err)
	assert.Equal(t, toast.TypeSuccess, typ)
}

func TestValidateContainer(t *testing.T) {
	_, err := toast.ValidateContainer(nil)
	assert.ErrorIs(t, err, validator.ErrFieldRequired)

	_, err = toast.ValidateContainer("")
	assert.ErrorIs(t, err, validator.ErrFieldRequired)

	_, err = toast.ValidateContainer(map[string]any{})
	assert.ErrorIs(t, err, validator.ErrInvalidType)

	c, err := toast.ValidateContainer("TOP")
	require.NoError(t, err)
	assert.Equal(t, toast.Container("top"), c)

	c, err = toast.ValidateContainer("Bottom-Left")
	require.NoError(t, err)
	assert.Equal(t, toast.ContainerBottomLeft, c)
}

func TestValidateDismissable(t *testing.T) {
	defaults := toast.Dismissable{Click: true, Touch: true}

	got, err := toast.ValidateDismissable(nil)
	require.NoError(t, err)
	assert.Equal(t, defaults, got)

	got, err = toast.ValidateDismissable(map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, defaults, got)

	for _, click := range []bool{true, false} {
		for _, touch := range []bool{true, false} {
			got, err := toast.ValidateDismissable(map[string]any{"click": click, "touch": touch})
			require.NoError(t, err)
			assert.Equal(t, toast.Dismissable{Click: click, Touch: touch}, got)
		}
	}

	_, err = toast.ValidateDismissable(map[string]any{"click": "true"})
	assert.ErrorIs(t, err, validator.ErrInvalidType)

	_, err = toast.ValidateDismissable(map[string]any{"touch": "true"})
	assert.ErrorIs(t, err, validator.ErrInvalidType)
}

func TestValidateUserDefinedTypes(t *testing.T) {
	definedTypes := []toast.UserDefinedType{{Name: "awesome"}}

	assert.NoError(t, toast.ValidateUserDefinedTypes(toast.Options{"content": text("x"), "type": "xtra"}, definedTypes))
	assert.NoError(t, toast.ValidateUserDefinedTypes(toast.Options{"type": "success"}, definedTypes))
	assert.NoError(t, toast.ValidateUserDefinedTypes(toast.Options{"type": "awesome"}, definedTypes))

	err := toast.ValidateUserDefinedTypes(toast.Options{"type": "xtra"}, definedTypes)
	assert.ErrorIs(t, err, toast.ErrUnknownType)
	assert.True(t, validator.IsValidationError(err))

	err = toast.ValidateUserDefinedTypes(toast.Options{"type": "Awesome"}, definedTypes)
	assert.ErrorIs(t, err, toast.ErrUnknownType, "lookup is case-sensitive")
}

func TestValidateInsert(t *testing.T) {
	insert, err := toast.ValidateInsert(nil)
	require.NoError(t, err)
	assert.Equal(t, toast.InsertTop, insert)

	insert, err = toast.ValidateInsert("top")
	require.NoError(t, err)
	assert.Equal(t, toast.InsertTop, insert)

	insert, err = toast.ValidateInsert("bottom")
	require.NoError(t, err)
	assert.Equal(t, toast.InsertBottom, insert)

	insert, err = toast.ValidateInsert("BOTTOM")
	require.NoError(t, err)
	assert.Equal(t, toast.InsertBottom, insert)

	_, err = toast.ValidateInsert(map[string]any{})
	assert.ErrorIs(t, err, validator.ErrInvalidType)

	_, err = toast.ValidateInsert("middle")
	assert.ErrorIs(t, err, validator.ErrInvalidValue)
}

func TestValidateWidth(t *testing.T) {
	width, err := toast.ValidateWidth(100)
	require.NoError(t, err)
	assert.Equal(t, 100.0, width)

	width, err = toast.ValidateWidth(nil)
	require.NoError(t, err)
	assert.Zero(t, width)

	_, err = toast.ValidateWidth(map[string]any{"width": map[string]any{}})
	assert.ErrorIs(t, err, validator.ErrInvalidType)

	_, err = toast.ValidateWidth(-5)
	assert.ErrorIs(t, err, validator.ErrOutOfRange)
}

func TestValidateID(t *testing.T) {
	id, err := toast.ValidateID(nil)
	require.NoError(t, err)
	assert.Len(t, id, 36)

	id, err = toast.ValidateID("order-42")
	require.NoError(t, err)
	assert.Equal(t, "order-42", id)

	_, err = toast.ValidateID(42)
	assert.ErrorIs(t, err, validator.ErrInvalidType)
}

func TestValidateAnimation(t *testing.T) {
	classes, err := toast.ValidateAnimation("animationIn", "animated  fadeIn")
	require.NoError(t, err)
	assert.Equal(t, []string{"animated", "fadeIn"}, classes)

	classes, err = toast.ValidateAnimation("animationIn", []any{"animated", "zoomIn"})
	require.NoError(t, err)
	assert.Equal(t, []string{"animated", "zoomIn"}, classes)

	_, err = toast.ValidateAnimation("animationIn", []any{"animated", 1})
	assert.ErrorIs(t, err, validator.ErrInvalidType)
}

func TestParseUserDefinedTypes(t *testing.T) {
	t.Run("decoded list", func(t *testing.T) {
		types, err := toast.ParseUserDefinedTypes([]any{
			map[string]any{"name": "awesome", "htmlClasses": []any{"awesome", "glow"}},
			map[string]any{"name": "plain"},
		})
		require.NoError(t, err)
		assert.Equal(t, []toast.UserDefinedType{
			{Name: "awesome", HTMLClasses: []string{"awesome", "glow"}},
			{Name: "plain"},
		}, types)
	})

	t.Run("typed list", func(t *testing.T) {
		in := []toast.UserDefinedType{{Name: "awesome"}}
		types, err := toast.ParseUserDefinedTypes(in)
		require.NoError(t, err)
		assert.Equal(t, in, types)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := toast.ParseUserDefinedTypes([]map[string]any{{"htmlClasses": []string{"x"}}})
		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.True(t, verrs.Has("userDefinedTypes[0].name"))
	})

	t.Run("duplicate names", func(t *testing.T) {
		_, err := toast.ParseUserDefinedTypes([]toast.UserDefinedType{{Name: "a"}, {Name: "a"}})
		assert.ErrorIs(t, err, validator.ErrInvalidValue)
	})

	t.Run("not a list", func(t *testing.T) {
		_, err := toast.ParseUserDefinedTypes("awesome")
		assert.ErrorIs(t, err, validator.ErrInvalidType)
	})
}
