// Package config loads dragscroll settings from TOML or YAML files with an
// environment overlay, validates them, and watches the file for changes.
//
// Precedence, lowest to highest: built-in defaults, the config file, then
// DRAGSCROLL_* environment variables.
//
//	cfg, err := config.Load("dragscroll.toml")
//	if err != nil {
//	    return err
//	}
//	ctrl, err := dragscroll.New(ref, hub, sched,
//	    dragscroll.WithDecayRate(cfg.DragScroll.DecayRate),
//	    dragscroll.WithAxis(cfg.DragScroll.AxisValue()),
//	)
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/dshills/dragscroll/internal/geom"
)

// Config is the complete configuration.
type Config struct {
	DragScroll DragScroll `toml:"dragscroll" yaml:"dragscroll"`
	Demo       Demo       `toml:"demo" yaml:"demo"`
	Log        Log        `toml:"log" yaml:"log"`
}

// DragScroll configures the drag controller.
type DragScroll struct {
	// DecayRate is the per-tick velocity multiplier during momentum, in (0, 1).
	DecayRate float64 `toml:"decay_rate" yaml:"decay_rate"`

	// SafeDisplacement is the minimum total movement for a gesture to count
	// as a drag rather than a click.
	SafeDisplacement float64 `toml:"safe_displacement" yaml:"safe_displacement"`

	// RubberBand enables simultaneous momentum on both axes.
	RubberBand bool `toml:"rubber_band" yaml:"rubber_band"`

	// Axis is "both", "x" or "y".
	Axis string `toml:"axis" yaml:"axis"`

	// Epsilon is the velocity below which momentum stops.
	Epsilon float64 `toml:"epsilon" yaml:"epsilon"`
}

// Demo configures the terminal host's card layout.
type Demo struct {
	// Layout is "horizontal", "vertical" or "grid".
	Layout string `toml:"layout" yaml:"layout"`

	// Cards is the number of cards.
	Cards int `toml:"cards" yaml:"cards"`

	// CardWidth and CardHeight are in terminal cells.
	CardWidth  int `toml:"card_width" yaml:"card_width"`
	CardHeight int `toml:"card_height" yaml:"card_height"`

	// Gap is the space between cards in cells.
	Gap int `toml:"gap" yaml:"gap"`

	// Columns is the column count for the grid layout.
	Columns int `toml:"columns" yaml:"columns"`
}

// Log configures logging.
type Log struct {
	// Level is debug, info, warn or error.
	Level string `toml:"level" yaml:"level"`

	// File receives log output. Empty discards logs.
	File string `toml:"file" yaml:"file"`
}

// Layouts.
const (
	LayoutHorizontal = "horizontal"
	LayoutVertical   = "vertical"
	LayoutGrid       = "grid"
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DragScroll: DefaultDragScroll(),
		Demo: Demo{
			Layout:     LayoutGrid,
			Cards:      21,
			CardWidth:  18,
			CardHeight: 5,
			Gap:        3,
			Columns:    4,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// DefaultDragScroll returns the controller defaults.
func DefaultDragScroll() DragScroll {
	return DragScroll{
		DecayRate:        0.95,
		SafeDisplacement: 10,
		RubberBand:       false,
		Axis:             geom.AxisBoth.String(),
		Epsilon:          0.005,
	}
}

// AxisValue returns the parsed axis. Invalid names yield AxisBoth; Validate
// reports them.
func (d DragScroll) AxisValue() geom.Axis {
	a, _ := geom.ParseAxis(d.Axis)
	return a
}

// Validate checks every field and returns all failures joined, or nil.
func (c *Config) Validate() error {
	var errs []error
	add := func(path, msg string, value any) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: value})
	}

	d := c.DragScroll
	if math.IsNaN(d.DecayRate) || d.DecayRate <= 0 || d.DecayRate >= 1 {
		add("dragscroll.decay_rate", "must be between 0 and 1 (exclusive)", d.DecayRate)
	}
	if math.IsNaN(d.SafeDisplacement) || d.SafeDisplacement < 0 {
		add("dragscroll.safe_displacement", "must be non-negative", d.SafeDisplacement)
	}
	if _, ok := geom.ParseAxis(d.Axis); !ok {
		add("dragscroll.axis", "must be one of both, x, y", d.Axis)
	}
	if math.IsNaN(d.Epsilon) || d.Epsilon <= 0 {
		add("dragscroll.epsilon", "must be positive", d.Epsilon)
	}

	m := c.Demo
	switch m.Layout {
	case LayoutHorizontal, LayoutVertical, LayoutGrid:
	default:
		add("demo.layout", "must be one of horizontal, vertical, grid", m.Layout)
	}
	if m.Cards < 0 {
		add("demo.cards", "must be non-negative", m.Cards)
	}
	if m.CardWidth < 3 || m.CardHeight < 3 {
		add("demo.card_size", "cards must be at least 3x3 cells", fmt.Sprintf("%dx%d", m.CardWidth, m.CardHeight))
	}
	if m.Gap < 0 {
		add("demo.gap", "must be non-negative", m.Gap)
	}
	if m.Layout == LayoutGrid && m.Columns < 1 {
		add("demo.columns", "grid layout needs at least one column", m.Columns)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		add("log.level", "must be one of debug, info, warn, error", c.Log.Level)
	}

	return errors.Join(errs...)
}
