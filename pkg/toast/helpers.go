package toast

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// IsTopContainer reports whether c is one of the two top corners.
func IsTopContainer(c Container) bool {
	return c.IsTop()
}

// IsBottomContainer reports whether c is one of the two bottom corners.
func IsBottomContainer(c Container) bool {
	return c.IsBottom()
}

// ShouldHaveSliding reports whether a notification slides in: true iff the
// insertion direction matches the vertical half of its container.
func ShouldHaveSliding(insert Insertion, container Container) bool {
	return (insert == InsertTop && container.IsTop()) ||
		(insert == InsertBottom && container.IsBottom())
}

// CSSWidth formats a pixel width. An unset width (zero or less) yields an
// empty string, meaning no inline width.
func CSSWidth(width float64) string {
	if width <= 0 {
		return ""
	}
	return px(width)
}

// HTMLClassesForType returns the CSS classes of a notification type: the base
// class followed by "notification-<type>" for built-in types, or by the
// registered classes of a user-defined type. User-defined names match exactly.
func HTMLClassesForType(t Type, userDefinedTypes []UserDefinedType) ([]string, error) {
	if t.IsBuiltin() {
		return []string{BaseClass, TypeClassPrefix + string(t)}, nil
	}

	udt, ok := findUserDefinedType(string(t), userDefinedTypes)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}

	classes := make([]string, 0, len(udt.HTMLClasses)+1)
	classes = append(classes, BaseClass)
	return append(classes, udt.HTMLClasses...), nil
}

// Classes returns the full class list of a notification element: type classes
// followed by its entrance animation classes.
func Classes(n Notification) ([]string, error) {
	t := n.Type
	if n.HasContent() && t == "" {
		t = TypeDefault
	}
	classes, err := HTMLClassesForType(t, n.UserDefinedTypes)
	if err != nil {
		return nil, err
	}
	return append(classes, n.AnimationIn...), nil
}

func findUserDefinedType(name string, types []UserDefinedType) (UserDefinedType, bool) {
	for _, udt := range types {
		if udt.Name == name {
			return udt, true
		}
	}
	return UserDefinedType{}, false
}

// MobileView groups notifications by vertical half only.
type MobileView struct {
	Top    []Notification
	Bottom []Notification
}

// NotificationsForMobileView splits notifications into top and bottom stacks.
// Order within each stack is preserved.
func NotificationsForMobileView(notifications []Notification) (MobileView, error) {
	var view MobileView
	for _, n := range notifications {
		switch {
		case n.Container.IsTop():
			view.Top = append(view.Top, n)
		case n.Container.IsBottom():
			view.Bottom = append(view.Bottom, n)
		default:
			return MobileView{}, fmt.Errorf("%w: %q", ErrUnknownContainer, n.Container)
		}
	}
	return view, nil
}

// DesktopView groups notifications by screen corner.
type DesktopView struct {
	TopLeft     []Notification
	TopRight    []Notification
	BottomLeft  []Notification
	BottomRight []Notification
}

// NotificationsForEachContainer splits notifications into one stack per corner.
func NotificationsForEachContainer(notifications []Notification) (DesktopView, error) {
	var view DesktopView
	for _, n := range notifications {
		switch n.Container {
		case ContainerTopLeft:
			view.TopLeft = append(view.TopLeft, n)
		case ContainerTopRight:
			view.TopRight = append(view.TopRight, n)
		case ContainerBottomLeft:
			view.BottomLeft = append(view.BottomLeft, n)
		case ContainerBottomRight:
			view.BottomRight = append(view.BottomRight, n)
		default:
			return DesktopView{}, fmt.Errorf("%w: %q", ErrUnknownContainer, n.Container)
		}
	}
	return view, nil
}

// CubicBezierTransition builds a CSS transition shorthand
// "<duration>ms <property> <easing> <delay>ms". Arguments are positional in
// the order duration, easing, delay, property; an empty easing means
// "linear" and an empty property means "height".
func CubicBezierTransition(duration time.Duration, easing string, delay time.Duration, property string) string {
	if easing == "" {
		easing = DefaultTransitionEasing
	}
	if property == "" {
		property = DefaultTransitionProperty
	}
	return fmt.Sprintf("%dms %s %s %dms", duration.Milliseconds(), property, easing, delay.Milliseconds())
}

// DefaultCubicBezierTransition returns "500ms height linear 0ms".
func DefaultCubicBezierTransition() string {
	return CubicBezierTransition(DefaultTransitionDuration, "", 0, "")
}

// TransitionFor renders t as a CSS transition of property.
func TransitionFor(t Transition, property string) string {
	return CubicBezierTransition(t.Duration, t.CubicBezier, t.Delay, property)
}

// HasFullySwiped reports whether a horizontal swipe of distance pixels, in
// either direction, covers at least SwipeThreshold of the viewport width.
// An unknown (non-positive) viewport width never completes a swipe.
func HasFullySwiped(distance, viewportWidth float64) bool {
	if viewportWidth <= 0 {
		return false
	}
	return math.Abs(distance) >= SwipeThreshold*viewportWidth
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
