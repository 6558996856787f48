// Package toast validates toast notification options and derives the
// presentation state a renderer needs: container placement, mobile and
// desktop grouping, CSS classes, CSS transition strings, inline styles and
// swipe-completion thresholds.
//
// # Validation
//
// Callers describe a notification with a loosely typed Options map, usually
// a literal or the result of decoding JSON, YAML or datastar signals. Parse
// runs every validator and returns a normalized Notification, or a
// validator.ValidationErrors naming each offending field:
//
//	n, err := toast.Parse(toast.Options{
//	    "type":      "success",
//	    "title":     "Saved",
//	    "message":   "Your profile was updated",
//	    "container": "top-right",
//	    "timeoutDismiss": map[string]any{"duration": 5000},
//	}, toast.DefaultDefaults())
//	if errors.Is(err, validator.ErrFieldRequired) {
//	    // a required option is missing
//	}
//
// The individual validators (ValidateMessage, ValidateContainer,
// ValidateTransition, ...) are exported for callers that check a single
// option. Validators of the title, message, type and user-defined type are
// skipped when the options carry a content override: a templ.Component that
// replaces the default body.
//
// Failures wrap one of validator.ErrFieldRequired, validator.ErrInvalidType,
// validator.ErrOutOfRange, validator.ErrInvalidValue or ErrUnknownType.
//
// # Layout helpers
//
// The helpers are pure functions of a Notification:
//
//	classes, _ := toast.Classes(n)              // ["notification-item", "notification-success"]
//	style := toast.RootHeightStyle(n, 64)       // height + sliding exit transition
//	style, stage := toast.TouchEndStyle(n, dx, viewportWidth)
//	view, _ := toast.NotificationsForMobileView(active)
//
// HasFullySwiped takes the viewport width as an argument; a swipe completes
// once it covers SwipeThreshold (40%) of it.
//
// # Catalogs
//
// User-defined types can be registered inline through the userDefinedTypes
// option or loaded from a YAML/JSON catalog with LoadTypes.
package toast
