package cli

import (
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/toastkit/pkg/toast"
)

// report is the YAML view of a validated notification.
type report struct {
	File        string            `yaml:"file,omitempty"`
	ID          string            `yaml:"id"`
	Type        string            `yaml:"type,omitempty"`
	Title       string            `yaml:"title,omitempty"`
	Message     string            `yaml:"message,omitempty"`
	Container   string            `yaml:"container"`
	ElementID   string            `yaml:"elementId"`
	Insert      string            `yaml:"insert"`
	Sliding     bool              `yaml:"sliding"`
	Width       string            `yaml:"width,omitempty"`
	Classes     []string          `yaml:"classes"`
	Dismissable toast.Dismissable `yaml:"dismissable"`
	Timeout     string            `yaml:"timeoutDismiss,omitempty"`
	Transitions transitionReport  `yaml:"transitions"`
}

type transitionReport struct {
	Enter       string `yaml:"enter"`
	Exit        string `yaml:"exit"`
	TouchRevert string `yaml:"touchRevert"`
	Swipe       string `yaml:"swipe"`
	Fade        string `yaml:"fade"`
}

func newReport(file string, n toast.Notification) (report, error) {
	classes, err := toast.Classes(n)
	if err != nil {
		return report{}, err
	}

	r := report{
		File:        file,
		ID:          n.ID,
		Type:        string(n.Type),
		Title:       n.Title,
		Message:     n.Message,
		Container:   string(n.Container),
		ElementID:   n.Container.ElementID(),
		Insert:      string(n.Insert),
		Sliding:     toast.ShouldHaveSliding(n.Insert, n.Container),
		Width:       toast.CSSWidth(n.Width),
		Classes:     classes,
		Dismissable: n.Dismissable,
		Transitions: transitionReport{
			Enter:       toast.TransitionFor(n.SlidingEnter, "height"),
			Exit:        toast.TransitionFor(n.SlidingExit, "height"),
			TouchRevert: toast.TransitionFor(n.TouchRevert, "left"),
			Swipe:       toast.TransitionFor(n.TouchSlidingExit.Swipe, "left"),
			Fade:        toast.TransitionFor(n.TouchSlidingExit.Fade, "opacity"),
		},
	}
	if n.TimeoutDismiss > 0 {
		r.Timeout = n.TimeoutDismiss.Round(time.Millisecond).String()
	}
	return r, nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
