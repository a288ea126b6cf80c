package app

import (
	"fmt"
	"math"
	"strings"

	"github.com/dshills/dragscroll/internal/geom"
	"github.com/dshills/dragscroll/internal/renderer/backend"
)

var (
	cardStyle    = backend.DefaultStyle().WithForeground(backend.ColorWhite).WithBackground(backend.ColorBlue)
	clickedStyle = backend.DefaultStyle().WithForeground(backend.ColorBlack).WithBackground(backend.ColorYellow).With(backend.AttrBold)
	statusStyle  = backend.DefaultStyle().With(backend.AttrReverse)
)

// render draws the visible cards and the status bar, then shows the frame.
func (app *Application) render() {
	b := app.backend
	if b == nil {
		return
	}
	b.Clear()

	clip := app.viewport()
	offset := app.box.ScrollOffset()
	origin := app.box.Origin()
	for _, n := range app.box.Visible() {
		style := cardStyle
		if n == app.lastClicked {
			style = clickedStyle
		}
		drawCard(b, clip, screenRect(n.Bounds, origin, offset), n.Label, style)
	}

	app.drawStatus()
	b.Show()
	app.dirty = false
}

// viewport returns the screen area of the box.
func (app *Application) viewport() backend.Rect {
	o, c := app.box.Origin(), app.box.ClientSize()
	return backend.RectFromSize(int(o.X), int(o.Y), int(c.X), int(c.Y))
}

// screenRect maps content bounds to screen cells.
func screenRect(bounds geom.Rect, origin, offset geom.Vec) backend.Rect {
	at := bounds.Min.Add(origin).Sub(offset)
	x, y := int(math.Floor(at.X)), int(math.Floor(at.Y))
	return backend.RectFromSize(x, y, int(bounds.Size.X), int(bounds.Size.Y))
}

func drawCard(b backend.Backend, clip, r backend.Rect, label string, style backend.Style) {
	visible := r.Intersect(clip)
	if visible.Empty() {
		return
	}
	b.Fill(visible, backend.NewCell(' ', style))

	w := r.Right - r.Left
	h := r.Bottom - r.Top
	if w >= 2 && h >= 2 {
		inner := strings.Repeat("─", w-2)
		backend.SetString(b, r.Left, r.Top, "┌"+inner+"┐", style, clip)
		backend.SetString(b, r.Left, r.Bottom-1, "└"+inner+"┘", style, clip)
		for y := r.Top + 1; y < r.Bottom-1; y++ {
			backend.SetString(b, r.Left, y, "│", style, clip)
			backend.SetString(b, r.Right-1, y, "│", style, clip)
		}
	}

	if n := len([]rune(label)); n <= w {
		backend.SetString(b, r.Left+(w-n)/2, r.Top+h/2, label, style, clip)
	}
}

// drawStatus fills the row below the box.
func (app *Application) drawStatus() {
	w, h := app.backend.Size()
	if h < 1 {
		return
	}
	row := backend.RectFromSize(0, h-1, w, 1)
	app.backend.Fill(row, backend.NewCell(' ', statusStyle))
	backend.SetString(app.backend, 0, h-1, app.statusLine(), statusStyle, row)
}

// statusLine summarises scroll position, gesture state and click count.
func (app *Application) statusLine() string {
	off := app.box.ScrollOffset()
	state := "closed"
	var limit, v geom.Vec
	if c := app.controller; c != nil {
		state = c.State().String()
		limit = c.MaxScroll()
		v = c.Velocity()
	}
	return fmt.Sprintf(" offset %.0f,%.0f / %.0f,%.0f  %-12s v %+.3f,%+.3f  clicks %d  cursor %s  [q]uit [r]eset",
		off.X, off.Y, limit.X, limit.Y, state, v.X, v.Y, app.clicks, app.box.Cursor())
}
