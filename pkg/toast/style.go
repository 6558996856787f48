package toast

import "strings"

// Style is a set of inline CSS declarations computed for a notification
// element. Empty fields are omitted when rendered.
type Style struct {
	Height     string
	Left       string
	Opacity    string
	Transition string
}

// String renders the declarations in a fixed order, e.g.
// "height: 100px; transition: 600ms height linear 0ms".
func (s Style) String() string {
	decls := make([]string, 0, 4)
	for _, d := range [...][2]string{
		{"height", s.Height},
		{"left", s.Left},
		{"opacity", s.Opacity},
		{"transition", s.Transition},
	} {
		if d[1] != "" {
			decls = append(decls, d[0]+": "+d[1])
		}
	}
	return strings.Join(decls, "; ")
}

// RootHeightStyle is the style of the root element while it collapses after
// the notification leaves: a fixed height with the sliding exit transition.
func RootHeightStyle(n Notification, height float64) Style {
	return Style{
		Height:     px(height),
		Transition: TransitionFor(n.SlidingExit, ""),
	}
}

// RootEnterStyle is the style of the root element once its content has been
// measured. Notifications that slide in animate their height; others snap.
func RootEnterStyle(n Notification, height float64) Style {
	s := Style{Height: px(height)}
	if ShouldHaveSliding(n.Insert, n.Container) {
		s.Transition = TransitionFor(n.SlidingEnter, "")
	}
	return s
}

// TouchEndStyle resolves a finished touch swipe. A full swipe moves the
// element off-screen in the swipe direction while fading it out and returns
// StageTouchSlidingExit; a partial swipe snaps it back and returns
// StageTouchRevert.
func TouchEndStyle(n Notification, distance, viewportWidth float64) (Style, Stage) {
	if !HasFullySwiped(distance, viewportWidth) {
		return Style{
			Left:       "0px",
			Transition: TransitionFor(n.TouchRevert, "left"),
		}, StageTouchRevert
	}

	left := viewportWidth
	if distance < 0 {
		left = -viewportWidth
	}
	return Style{
		Left:    px(left),
		Opacity: "0",
		Transition: TransitionFor(n.TouchSlidingExit.Swipe, "left") + ", " +
			TransitionFor(n.TouchSlidingExit.Fade, "opacity"),
	}, StageTouchSlidingExit
}
