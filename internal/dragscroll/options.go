package dragscroll

import (
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/dshills/dragscroll/internal/geom"
	"github.com/dshills/dragscroll/internal/surface"
)

// Defaults.
const (
	DefaultDecayRate        = 0.95
	DefaultSafeDisplacement = 10.0
	DefaultEpsilon          = 0.005
)

// Options holds the immutable per-controller configuration.
type Options struct {
	// DecayRate multiplies velocity once per momentum tick. Must be in (0, 1).
	DecayRate float64

	// SafeDisplacement is the total movement a gesture must exceed on some
	// axis to count as a drag.
	SafeDisplacement float64

	// RubberBand lets every moving axis decay at once. When false only the
	// last-moved axis decays.
	RubberBand bool

	// Mounted gates geometry measurement. See Controller.SetMounted.
	Mounted bool

	// Axis restricts panning and momentum.
	Axis geom.Axis

	// Epsilon is the velocity below which an axis stops decaying.
	Epsilon float64

	// GrabCursor is applied to the surface and its children while dragging.
	GrabCursor string

	// Logger receives debug logs of gesture transitions.
	Logger *logrus.Entry
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		DecayRate:        DefaultDecayRate,
		SafeDisplacement: DefaultSafeDisplacement,
		Mounted:          true,
		Axis:             geom.AxisBoth,
		Epsilon:          DefaultEpsilon,
		GrabCursor:       surface.CursorGrabbing,
	}
}

// Option configures a Controller.
type Option func(*Options)

// WithDecayRate sets the per-tick velocity multiplier.
func WithDecayRate(rate float64) Option {
	return func(o *Options) {
		o.DecayRate = rate
	}
}

// WithSafeDisplacement sets the drag threshold.
func WithSafeDisplacement(d float64) Option {
	return func(o *Options) {
		o.SafeDisplacement = d
	}
}

// WithRubberBand enables simultaneous two-axis momentum.
func WithRubberBand(enabled bool) Option {
	return func(o *Options) {
		o.RubberBand = enabled
	}
}

// WithMounted sets the initial mount state.
func WithMounted(mounted bool) Option {
	return func(o *Options) {
		o.Mounted = mounted
	}
}

// WithAxis restricts the controller to one axis.
func WithAxis(axis geom.Axis) Option {
	return func(o *Options) {
		o.Axis = axis
	}
}

// WithEpsilon sets the velocity floor.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		o.Epsilon = eps
	}
}

// WithGrabCursor sets the cursor shown while dragging.
func WithGrabCursor(cursor string) Option {
	return func(o *Options) {
		o.GrabCursor = cursor
	}
}

// WithLogger sets the logger. A nil entry discards logs.
func WithLogger(log *logrus.Entry) Option {
	return func(o *Options) {
		o.Logger = log
	}
}

// OptionError reports an invalid option value.
type OptionError struct {
	Option string
	Value  any
	Reason string
}

// Error implements the error interface.
func (e *OptionError) Error() string {
	return fmt.Sprintf("dragscroll: invalid %s %v: %s", e.Option, e.Value, e.Reason)
}

// Is matches ErrInvalidOption.
func (e *OptionError) Is(target error) bool {
	return target == ErrInvalidOption
}

func (o *Options) validate() error {
	switch {
	case math.IsNaN(o.DecayRate) || o.DecayRate <= 0 || o.DecayRate >= 1:
		return &OptionError{Option: "decay rate", Value: o.DecayRate, Reason: "must be in (0, 1)"}
	case math.IsNaN(o.SafeDisplacement) || o.SafeDisplacement < 0:
		return &OptionError{Option: "safe displacement", Value: o.SafeDisplacement, Reason: "must be non-negative"}
	case math.IsNaN(o.Epsilon) || o.Epsilon <= 0:
		return &OptionError{Option: "epsilon", Value: o.Epsilon, Reason: "must be positive"}
	case o.Axis != geom.AxisBoth && o.Axis != geom.AxisX && o.Axis != geom.AxisY:
		return &OptionError{Option: "axis", Value: o.Axis, Reason: "unknown axis"}
	}
	return nil
}

func discardLogger() *logrus.Entry {
	l := logrus.New()
	l.Out = io.Discard
	return logrus.NewEntry(l)
}
