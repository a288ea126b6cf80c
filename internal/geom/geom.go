// Package geom provides the two-axis vector and clamping helpers shared by
// the scroll surface and the drag controller.
package geom

import "math"

// Axis selects which scroll axes participate in a gesture.
type Axis uint8

const (
	// AxisBoth pans and decays horizontally and vertically.
	AxisBoth Axis = iota
	// AxisX restricts the gesture to horizontal scrolling.
	AxisX
	// AxisY restricts the gesture to vertical scrolling.
	AxisY
)

// String returns a string representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "both"
	}
}

// HasX returns true if horizontal scrolling is enabled.
func (a Axis) HasX() bool {
	return a == AxisBoth || a == AxisX
}

// HasY returns true if vertical scrolling is enabled.
func (a Axis) HasY() bool {
	return a == AxisBoth || a == AxisY
}

// ParseAxis parses "x", "y", "horizontal", "vertical" or "both".
// Returns false for anything else.
func ParseAxis(s string) (Axis, bool) {
	switch s {
	case "x", "X", "horizontal":
		return AxisX, true
	case "y", "Y", "vertical":
		return AxisY, true
	case "", "both", "xy":
		return AxisBoth, true
	default:
		return AxisBoth, false
	}
}

// Vec is a pair of per-axis values: an offset, a size or a velocity.
type Vec struct {
	X float64
	Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v with both components multiplied by f.
func (v Vec) Scale(f float64) Vec {
	return Vec{X: v.X * f, Y: v.Y * f}
}

// Clamp clamps each component of v into [0, max] of the same axis.
// A negative max is treated as 0.
func (v Vec) Clamp(max Vec) Vec {
	return Vec{X: Clamp(v.X, 0, max.X), Y: Clamp(v.Y, 0, max.Y)}
}

// NonNegative returns v with negative components replaced by 0.
func (v Vec) NonNegative() Vec {
	return Vec{X: math.Max(0, v.X), Y: math.Max(0, v.Y)}
}

// Clamp clamps x into [lo, hi]. When hi < lo the result is lo.
func Clamp(x, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Within returns true if x lies strictly between 0 and max.
func Within(x, max float64) bool {
	return x > 0 && x < max
}

// Rect is an axis-aligned rectangle with its origin at the top-left.
type Rect struct {
	Min  Vec
	Size Vec
}

// Max returns the bottom-right corner (exclusive).
func (r Rect) Max() Vec {
	return r.Min.Add(r.Size)
}

// Contains returns true if p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p Vec) bool {
	max := r.Max()
	return p.X >= r.Min.X && p.X < max.X && p.Y >= r.Min.Y && p.Y < max.Y
}
