package mouse

import (
	"time"

	"github.com/dshills/dragscroll/internal/geom"
)

// Button represents a mouse button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonMiddle is the middle mouse button (scroll wheel click).
	ButtonMiddle
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
	// ButtonBack is the back navigation button (mouse button 4).
	ButtonBack
	// ButtonForward is the forward navigation button (mouse button 5).
	ButtonForward
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonBack:
		return "back"
	case ButtonForward:
		return "forward"
	default:
		return "none"
	}
}

// Mask returns the Buttons bit for b.
func (b Button) Mask() ButtonMask {
	switch b {
	case ButtonLeft:
		return MaskPrimary
	case ButtonRight:
		return MaskSecondary
	case ButtonMiddle:
		return MaskAuxiliary
	case ButtonBack:
		return MaskBack
	case ButtonForward:
		return MaskForward
	default:
		return 0
	}
}

// ButtonMask is the set of buttons held during an event.
type ButtonMask uint8

const (
	// MaskPrimary is the primary (left) button bit.
	MaskPrimary ButtonMask = 1 << iota
	// MaskSecondary is the secondary (right) button bit.
	MaskSecondary
	// MaskAuxiliary is the middle button bit.
	MaskAuxiliary
	// MaskBack is the back button bit.
	MaskBack
	// MaskForward is the forward button bit.
	MaskForward
)

// Has returns true if the mask contains the given button bit.
func (m ButtonMask) Has(b ButtonMask) bool {
	return m&b != 0
}

// Action represents the type of mouse action.
type Action uint8

const (
	// ActionNone indicates no action.
	ActionNone Action = iota
	// ActionPress indicates a button press.
	ActionPress
	// ActionRelease indicates a button release.
	ActionRelease
	// ActionMove indicates mouse movement (no button held).
	ActionMove
	// ActionDrag indicates mouse movement with a button held.
	ActionDrag
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionRelease:
		return "release"
	case ActionMove:
		return "move"
	case ActionDrag:
		return "drag"
	default:
		return "none"
	}
}

// IsMotion returns true for move and drag actions.
func (a Action) IsMotion() bool {
	return a == ActionMove || a == ActionDrag
}

// Position represents a screen coordinate.
type Position struct {
	X int
	Y int
}

// Equal returns true if two positions are equal.
func (p Position) Equal(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

// Sub returns the per-axis difference p - other.
func (p Position) Sub(other Position) Position {
	return Position{X: p.X - other.X, Y: p.Y - other.Y}
}

// Vec converts the position into a float vector.
func (p Position) Vec() geom.Vec {
	return geom.Vec{X: float64(p.X), Y: float64(p.Y)}
}

// Modifier is the keyboard modifier state held during a mouse event.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0
	// ModShift is the Shift key.
	ModShift Modifier = 1 << iota
	// ModCtrl is the Control key.
	ModCtrl
	// ModAlt is the Alt/Option key.
	ModAlt
	// ModMeta is the Meta/Command key.
	ModMeta
)

// Has returns true if the modifier set contains mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// Event represents a mouse input event.
type Event struct {
	// Position is the screen coordinates.
	Position Position

	// Button is the mouse button involved (the one pressed or released).
	Button Button

	// Buttons is every button held when the event was produced.
	Buttons ButtonMask

	// Modifiers are any keyboard modifiers held during the event.
	Modifiers Modifier

	// Action is the type of mouse action.
	Action Action

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// IsPrimaryPress returns true if the event is a press of the primary button
// with no other button held.
func (e Event) IsPrimaryPress() bool {
	return e.Action == ActionPress && e.Button == ButtonLeft && e.Buttons == MaskPrimary
}

// Press builds a primary-button press at (x, y).
func Press(x, y int) Event {
	return Event{
		Position: Position{X: x, Y: y},
		Button:   ButtonLeft,
		Buttons:  MaskPrimary,
		Action:   ActionPress,
	}
}

// Drag builds a primary-button drag motion to (x, y).
func Drag(x, y int) Event {
	return Event{
		Position: Position{X: x, Y: y},
		Buttons:  MaskPrimary,
		Action:   ActionDrag,
	}
}

// Release builds a primary-button release at (x, y).
func Release(x, y int) Event {
	return Event{
		Position: Position{X: x, Y: y},
		Button:   ButtonLeft,
		Action:   ActionRelease,
	}
}
