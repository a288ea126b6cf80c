// Package surface defines the scroll target the drag controller acts on.
//
// A Surface exposes a mutable scroll offset, the scrollable and visible
// sizes, a cursor affordance, and its direct children. Children are
// Elements that accept click listeners, which is how a confirmed drag
// suppresses the click that follows pointer-up.
//
// Box and Node are an in-memory implementation used by the terminal host
// and by tests. Ref is the deferred binding used when the surface does not
// exist yet at the time the controller is constructed.
package surface

import "github.com/dshills/dragscroll/internal/geom"

// Surface is a scrollable container.
type Surface interface {
	// ScrollOffset returns the current scroll position.
	ScrollOffset() geom.Vec

	// SetScrollOffset moves the content. Implementations clamp to
	// [0, ScrollSize-ClientSize] per axis.
	SetScrollOffset(offset geom.Vec)

	// ScrollSize returns the full content size.
	ScrollSize() geom.Vec

	// ClientSize returns the visible size.
	ClientSize() geom.Vec

	// Cursor returns the surface's cursor style.
	Cursor() string

	// SetCursor changes the surface's cursor style.
	SetCursor(cursor string)

	// Children returns the direct children in document order.
	Children() []Element
}

// Element is a direct child of a Surface.
type Element interface {
	// Cursor returns the element's cursor style.
	Cursor() string

	// SetCursor changes the element's cursor style.
	SetCursor(cursor string)

	// AddClickListener registers a listener that runs before the element's
	// own activation. Listeners run in registration order.
	AddClickListener(listener ClickListener) ListenerID

	// RemoveClickListener deregisters a listener. Unknown IDs are ignored.
	RemoveClickListener(id ListenerID)
}

// MaxScroll returns ScrollSize - ClientSize per axis, never negative.
func MaxScroll(s Surface) geom.Vec {
	return s.ScrollSize().Sub(s.ClientSize()).NonNegative()
}
