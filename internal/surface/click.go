package surface

import "github.com/dshills/dragscroll/internal/geom"

// ListenerID identifies a registered click listener.
type ListenerID string

// ClickListener observes a click before the target element activates.
type ClickListener func(ev *ClickEvent)

// ClickEvent is a click delivered to an Element.
type ClickEvent struct {
	// Position is where the click landed, in content coordinates.
	Position geom.Vec

	prevented bool
	stopped   bool
}

// PreventDefault cancels the element's default activation.
func (e *ClickEvent) PreventDefault() {
	e.prevented = true
}

// StopImmediatePropagation skips every listener after the current one.
func (e *ClickEvent) StopImmediatePropagation() {
	e.stopped = true
}

// DefaultPrevented returns true if PreventDefault was called.
func (e *ClickEvent) DefaultPrevented() bool {
	return e.prevented
}

// PropagationStopped returns true if StopImmediatePropagation was called.
func (e *ClickEvent) PropagationStopped() bool {
	return e.stopped
}

// Cancelled returns true if the click must not reach application handlers.
func (e *ClickEvent) Cancelled() bool {
	return e.prevented || e.stopped
}
