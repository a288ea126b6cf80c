package dragscroll

import (
	"github.com/dshills/dragscroll/internal/clock"
	"github.com/dshills/dragscroll/internal/geom"
)

// State is the gesture phase.
type State uint8

const (
	// Idle means no gesture and no momentum.
	Idle State = iota
	// PointerDown means the primary button is held but has not moved.
	PointerDown
	// Dragging means the pointer moved while held.
	Dragging
	// Decaying means momentum is running on at least one axis.
	Decaying
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case PointerDown:
		return "pointer-down"
	case Dragging:
		return "dragging"
	case Decaying:
		return "decaying"
	default:
		return "unknown"
	}
}

// axis indexes the per-axis state.
type axis int

const (
	axisX axis = iota
	axisY
	numAxes
)

func (a axis) String() string {
	if a == axisX {
		return "x"
	}
	return "y"
}

func (a axis) of(v geom.Vec) float64 {
	if a == axisX {
		return v.X
	}
	return v.Y
}

func (a axis) set(v geom.Vec, x float64) geom.Vec {
	if a == axisX {
		v.X = x
	} else {
		v.Y = x
	}
	return v
}

// axisState is the per-axis part of the interaction record.
type axisState struct {
	enabled  bool
	dragging bool
	velocity float64
	timer    clock.Timer
}

func (s *axisState) decaying() bool {
	return s.timer != nil && !s.timer.Stopped()
}

// stop cancels momentum and clears the axis.
func (s *axisState) stop() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.velocity = 0
	s.dragging = false
}

// interaction is the mutable gesture record. It is owned by one Controller
// and only touched from its handlers.
type interaction struct {
	phase       State
	pointerDown bool
	initial     geom.Vec
	last        geom.Vec
	lastOffset  geom.Vec
	lastAxis    axis
	axes        [numAxes]axisState
}

// reset returns to Idle, cancelling any momentum.
func (in *interaction) reset() {
	for i := range in.axes {
		in.axes[i].stop()
	}
	in.phase = Idle
	in.pointerDown = false
	in.initial = geom.Vec{}
	in.last = geom.Vec{}
}

func (in *interaction) anyDragging() bool {
	for i := range in.axes {
		if in.axes[i].dragging {
			return true
		}
	}
	return false
}

func (in *interaction) anyDecaying() bool {
	for i := range in.axes {
		if in.axes[i].decaying() {
			return true
		}
	}
	return false
}
