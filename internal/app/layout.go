package app

import (
	"fmt"

	"github.com/dshills/dragscroll/internal/config"
	"github.com/dshills/dragscroll/internal/geom"
	"github.com/dshills/dragscroll/internal/surface"
)

// layoutCards replaces the box's children with demo cards. Cards sit in a
// row, a column or a grid, separated by demo.Gap cells, with one gap of
// margin before the first card on each axis.
func layoutCards(box *surface.Box, demo config.Demo, onClick func(*surface.Node)) {
	offset := box.ScrollOffset()
	box.Clear()

	size := geom.Vec{X: float64(demo.CardWidth), Y: float64(demo.CardHeight)}
	step := size.Add(geom.Vec{X: float64(demo.Gap), Y: float64(demo.Gap)})
	margin := geom.Vec{X: float64(demo.Gap), Y: float64(demo.Gap)}

	for i := range demo.Cards {
		col, row := cardCell(i, demo)
		at := geom.Vec{X: float64(col) * step.X, Y: float64(row) * step.Y}.Add(margin)
		box.Add(surface.NewNode(fmt.Sprintf("Card %d", i+1), geom.Rect{Min: at, Size: size}, onClick))
	}
	box.SetPadding(margin)
	box.SetScrollOffset(offset)
}

// cardCell returns the column and row of card i.
func cardCell(i int, demo config.Demo) (col, row int) {
	switch demo.Layout {
	case config.LayoutHorizontal:
		return i, 0
	case config.LayoutVertical:
		return 0, i
	default:
		cols := max(demo.Columns, 1)
		return i % cols, i / cols
	}
}
