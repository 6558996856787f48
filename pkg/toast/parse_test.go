package toast_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toastkit/pkg/toast"
	"github.com/dmitrymomot/toastkit/pkg/validator"
)

func TestParse(t *testing.T) {
	defaults := toast.DefaultDefaults()

	t.Run("minimal options", func(t *testing.T) {
		n, err := toast.Parse(toast.Options{
			"type":      "Success",
			"message":   "Saved",
			"container": "top-right",
		}, defaults)
		require.NoError(t, err)

		assert.NotEmpty(t, n.ID)
		assert.Equal(t, toast.TypeSuccess, n.Type)
		assert.Equal(t, "Saved", n.Message)
		assert.Equal(t, toast.ContainerTopRight, n.Container)
		assert.Equal(t, toast.InsertTop, n.Insert)
		assert.Equal(t, toast.Dismissable{Click: true, Touch: true}, n.Dismissable)
		assert.Nil(t, n.DismissIcon)
		assert.Zero(t, n.TimeoutDismiss)
		assert.Equal(t, defaults.SlidingEnter, n.SlidingEnter)
		assert.Equal(t, defaults.TouchSlidingExit, n.TouchSlidingExit)
	})

	t.Run("full options", func(t *testing.T) {
		n, err := toast.Parse(toast.Options{
			"id":             "n-1",
			"type":           "awesome",
			"title":          "Hi",
			"message":        "There",
			"container":      "BOTTOM-LEFT",
			"insert":         "bottom",
			"width":          320,
			"dismissable":    map[string]any{"touch": false},
			"dismiss":        map[string]any{"className": "close", "content": text("×")},
			"timeoutDismiss": map[string]any{"duration": 3000},
			"animationIn":    "animated fadeIn",
			"slidingExit":    map[string]any{"duration": 200, "cubicBezier": "ease-in"},
			"userDefinedTypes": []any{
				map[string]any{"name": "awesome", "htmlClasses": []any{"awesome"}},
			},
		}, defaults)
		require.NoError(t, err)

		assert.Equal(t, "n-1", n.ID)
		assert.Equal(t, toast.Type("awesome"), n.Type)
		assert.Equal(t, toast.ContainerBottomLeft, n.Container)
		assert.Equal(t, toast.InsertBottom, n.Insert)
		assert.Equal(t, 320.0, n.Width)
		assert.Equal(t, toast.Dismissable{Click: true, Touch: false}, n.Dismissable)
		require.NotNil(t, n.DismissIcon)
		assert.Equal(t, "close", n.DismissIcon.ClassName)
		assert.Equal(t, 3*time.Second, n.TimeoutDismiss)
		assert.Equal(t, []string{"animated", "fadeIn"}, n.AnimationIn)
		assert.Equal(t, 200*time.Millisecond, n.SlidingExit.Duration)
		assert.Equal(t, "ease-in", n.SlidingExit.CubicBezier)

		classes, err := toast.Classes(n)
		require.NoError(t, err)
		assert.Equal(t, []string{toast.BaseClass, "awesome", "animated", "fadeIn"}, classes)
	})

	t.Run("custom type keeps its spelling", func(t *testing.T) {
		n, err := toast.Parse(toast.Options{
			"type":             "Brand",
			"message":          "m",
			"container":        "top-left",
			"userDefinedTypes": []toast.UserDefinedType{{Name: "Brand"}},
		}, defaults)
		require.NoError(t, err)
		assert.Equal(t, toast.Type("Brand"), n.Type)
	})

	t.Run("content override skips body validation", func(t *testing.T) {
		n, err := toast.Parse(toast.Options{
			"content":   text("<b>custom</b>"),
			"type":      42,
			"container": "top-left",
		}, defaults)
		require.NoError(t, err)
		assert.True(t, n.HasContent())
		assert.Empty(t, n.Type)
		assert.Empty(t, n.Message)
	})

	t.Run("insert falls back to configured default", func(t *testing.T) {
		d := defaults
		d.Insert = toast.InsertBottom
		n, err := toast.Parse(toast.Options{"type": "info", "message": "m", "container": "top-left"}, d)
		require.NoError(t, err)
		assert.Equal(t, toast.InsertBottom, n.Insert)
	})

	t.Run("dismissable falls back to configured default", func(t *testing.T) {
		d := defaults
		d.DismissClick = false
		n, err := toast.Parse(toast.Options{"type": "info", "message": "m", "container": "top-left"}, d)
		require.NoError(t, err)
		assert.Equal(t, toast.Dismissable{Click: false, Touch: true}, n.Dismissable)
	})

	t.Run("unknown container", func(t *testing.T) {
		_, err := toast.Parse(toast.Options{"type": "info", "message": "m", "container": "top"}, defaults)
		assert.ErrorIs(t, err, validator.ErrInvalidValue)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := toast.Parse(toast.Options{"type": "xtra", "message": "m", "container": "top-left"}, defaults)
		assert.ErrorIs(t, err, toast.ErrUnknownType)
	})

	t.Run("every failing field is reported", func(t *testing.T) {
		_, err := toast.Parse(toast.Options{
			"type":           true,
			"width":          -1,
			"timeoutDismiss": map[string]any{},
		}, defaults)
		require.Error(t, err)
		assert.True(t, errors.Is(err, validator.ErrValidationFailed))

		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		for _, field := range []string{"message", "type", "container", "width", "timeoutDismiss.duration"} {
			assert.True(t, verrs.Has(field), field)
		}
		assert.ErrorIs(t, err, validator.ErrFieldRequired)
		assert.ErrorIs(t, err, validator.ErrInvalidType)
		assert.ErrorIs(t, err, validator.ErrOutOfRange)
	})
}

func TestParse_InsertDefault(t *testing.T) {
	opts := func() toast.Options {
		return toast.Options{"type": "info", "message": "m", "container": "top-left"}
	}

	t.Run("zero defaults insert at the top", func(t *testing.T) {
		n, err := toast.Parse(opts(), toast.Defaults{})
		require.NoError(t, err)
		assert.Equal(t, toast.InsertTop, n.Insert)
		assert.True(t, toast.ShouldHaveSliding(n.Insert, n.Container))
	})

	t.Run("configured default is normalized", func(t *testing.T) {
		d := toast.DefaultDefaults()
		d.Insert = "Bottom"
		n, err := toast.Parse(opts(), d)
		require.NoError(t, err)
		assert.Equal(t, toast.InsertBottom, n.Insert)
	})

	t.Run("invalid default is rejected", func(t *testing.T) {
		d := toast.DefaultDefaults()
		d.Insert = "sideways"
		_, err := toast.Parse(opts(), d)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrInvalidValue)
		assert.True(t, validator.ExtractValidationErrors(err).Has("insert"))
	})

	t.Run("explicit option wins over the default", func(t *testing.T) {
		d := toast.DefaultDefaults()
		d.Insert = toast.InsertBottom
		o := opts()
		o["insert"] = "top"
		n, err := toast.Parse(o, d)
		require.NoError(t, err)
		assert.Equal(t, toast.InsertTop, n.Insert)
	})
}
