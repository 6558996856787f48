package toast

import "time"

// Container is one of the four screen corners notifications are stacked in.
type Container string

const (
	ContainerTopLeft     Container = "top-left"
	ContainerTopRight    Container = "top-right"
	ContainerBottomLeft  Container = "bottom-left"
	ContainerBottomRight Container = "bottom-right"
)

// Containers returns every container in rendering order.
func Containers() []Container {
	return []Container{ContainerTopLeft, ContainerTopRight, ContainerBottomLeft, ContainerBottomRight}
}

func (c Container) IsValid() bool {
	return c.IsTop() || c.IsBottom()
}

func (c Container) IsTop() bool {
	return c == ContainerTopLeft || c == ContainerTopRight
}

func (c Container) IsBottom() bool {
	return c == ContainerBottomLeft || c == ContainerBottomRight
}

// ElementID is the DOM id of the element the container's notifications are patched into.
func (c Container) ElementID() string {
	return "toast-container-" + string(c)
}

func (c Container) String() string {
	return string(c)
}

// Insertion is where a new notification enters its container's stack.
type Insertion string

const (
	InsertTop    Insertion = "top"
	InsertBottom Insertion = "bottom"
)

func (i Insertion) IsValid() bool {
	return i == InsertTop || i == InsertBottom
}

func (i Insertion) String() string {
	return string(i)
}

// Type is a notification category. Built-in types map to "notification-<type>"
// classes; any other value must be registered as a UserDefinedType.
type Type string

const (
	TypeDefault Type = "default"
	TypeSuccess Type = "success"
	TypeDanger  Type = "danger"
	TypeWarning Type = "warning"
	TypeInfo    Type = "info"
)

// BuiltinTypes returns the built-in notification types.
func BuiltinTypes() []Type {
	return []Type{TypeDefault, TypeSuccess, TypeDanger, TypeWarning, TypeInfo}
}

// IsBuiltin reports whether t is one of the built-in types. The match is exact.
func (t Type) IsBuiltin() bool {
	switch t {
	case TypeDefault, TypeSuccess, TypeDanger, TypeWarning, TypeInfo:
		return true
	}
	return false
}

func (t Type) String() string {
	return string(t)
}

// Stage names a point in a notification's removal lifecycle.
type Stage string

const (
	StageManualRemoval    Stage = "manual-removal"
	StageSlidingExit      Stage = "sliding-exit"
	StageTouchSlidingExit Stage = "touch-sliding-exit"
	StageTouchRevert      Stage = "touch-revert"
	StageTimeout          Stage = "timeout"
)

const (
	// BaseClass is carried by every notification element.
	BaseClass = "notification-item"

	// TypeClassPrefix prefixes built-in type names to form their CSS class.
	TypeClassPrefix = "notification-"

	// SwipeThreshold is the fraction of the viewport width a touch swipe must
	// travel to dismiss a notification.
	SwipeThreshold = 0.4
)

// CSS transition defaults used when a caller omits an argument.
const (
	DefaultTransitionDuration = 500 * time.Millisecond
	DefaultTransitionProperty = "height"
	DefaultTransitionEasing   = "linear"
)

// Lifecycle transition defaults.
const (
	DefaultSlideDuration = 600 * time.Millisecond
	DefaultFadeDuration  = 300 * time.Millisecond
)
