package toast

import (
	"time"

	"github.com/a-h/templ"
)

// Options is the raw, loosely typed configuration a caller supplies when
// requesting a notification. It is usually a literal map or the result of
// decoding JSON, YAML or datastar signals.
//
// Recognized keys: id, type, title, message, content, container, insert,
// width, dismissable, dismiss, timeoutDismiss, animationIn, animationOut,
// slidingEnter, slidingExit, touchRevert, touchSlidingExit, userDefinedTypes.
//
// Durations are numbers of milliseconds; a time.Duration value is used as is.
type Options map[string]any

// Option keys.
const (
	KeyID               = "id"
	KeyType             = "type"
	KeyTitle            = "title"
	KeyMessage          = "message"
	KeyContent          = "content"
	KeyContainer        = "container"
	KeyInsert           = "insert"
	KeyWidth            = "width"
	KeyDismissable      = "dismissable"
	KeyDismiss          = "dismiss"
	KeyTimeoutDismiss   = "timeoutDismiss"
	KeyAnimationIn      = "animationIn"
	KeyAnimationOut     = "animationOut"
	KeySlidingEnter     = "slidingEnter"
	KeySlidingExit      = "slidingExit"
	KeyTouchRevert      = "touchRevert"
	KeyTouchSlidingExit = "touchSlidingExit"
	KeyUserDefinedTypes = "userDefinedTypes"
)

// Notification is a validated, normalized notification.
type Notification struct {
	ID      string
	Type    Type
	Title   string
	Message string
	// Content replaces the title/message body. When set, Type, Title and
	// Message are left empty.
	Content templ.Component

	Container Container
	Insert    Insertion
	// Width in pixels; zero leaves the width to the stylesheet.
	Width float64

	Dismissable Dismissable
	DismissIcon *DismissIcon
	// TimeoutDismiss removes the notification after the duration; zero disables it.
	TimeoutDismiss time.Duration

	AnimationIn  []string
	AnimationOut []string

	SlidingEnter     Transition
	SlidingExit      Transition
	TouchRevert      Transition
	TouchSlidingExit TouchSlidingExit

	UserDefinedTypes []UserDefinedType
}

// ElementID is the DOM id of the rendered notification.
func (n Notification) ElementID() string {
	return "toast-" + n.ID
}

// HasContent reports whether the notification renders a content override
// instead of its title and message.
func (n Notification) HasContent() bool {
	return n.Content != nil
}

// Dismissable controls which user gestures remove a notification.
type Dismissable struct {
	Click bool `yaml:"click"`
	Touch bool `yaml:"touch"`
}

// DismissIcon is the close button rendered inside a notification.
type DismissIcon struct {
	ClassName string
	Content   templ.Component
}

// Transition describes a CSS transition timing.
type Transition struct {
	Duration    time.Duration `env:"DURATION" yaml:"duration" validate:"gte=0"`
	CubicBezier string        `env:"CUBIC_BEZIER" yaml:"cubicBezier" validate:"required"`
	Delay       time.Duration `env:"DELAY" yaml:"delay" validate:"gte=0"`
}

// TouchSlidingExit is the pair of transitions played when a notification is swiped away.
type TouchSlidingExit struct {
	Swipe Transition `envPrefix:"SWIPE_" yaml:"swipe"`
	Fade  Transition `envPrefix:"FADE_" yaml:"fade"`
}

// UserDefinedType registers a custom notification type and its CSS classes.
// Name matching is exact and case-sensitive.
type UserDefinedType struct {
	Name        string   `yaml:"name"`
	HTMLClasses []string `yaml:"htmlClasses"`
}

// Defaults holds the values applied to omitted options. Fields are tagged for
// loading from the environment with pkg/config.
type Defaults struct {
	Insert           Insertion        `env:"TOAST_INSERT" envDefault:"top" validate:"oneof=top bottom"`
	DismissClick     bool             `env:"TOAST_DISMISS_CLICK" envDefault:"true"`
	DismissTouch     bool             `env:"TOAST_DISMISS_TOUCH" envDefault:"true"`
	SlidingEnter     Transition       `envPrefix:"TOAST_SLIDING_ENTER_"`
	SlidingExit      Transition       `envPrefix:"TOAST_SLIDING_EXIT_"`
	TouchRevert      Transition       `envPrefix:"TOAST_TOUCH_REVERT_"`
	TouchSlidingExit TouchSlidingExit `envPrefix:"TOAST_TOUCH_SLIDING_EXIT_"`
}

// DefaultDefaults returns the built-in defaults.
func DefaultDefaults() Defaults {
	slide := Transition{Duration: DefaultSlideDuration, CubicBezier: DefaultTransitionEasing}
	return Defaults{
		Insert:       InsertTop,
		DismissClick: true,
		DismissTouch: true,
		SlidingEnter: slide,
		SlidingExit:  slide,
		TouchRevert:  slide,
		TouchSlidingExit: TouchSlidingExit{
			Swipe: slide,
			Fade:  Transition{Duration: DefaultFadeDuration, CubicBezier: DefaultTransitionEasing},
		},
	}
}
