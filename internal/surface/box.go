package surface

import (
	"math"

	"github.com/dshills/dragscroll/internal/geom"
)

// Cursor styles.
const (
	CursorDefault  = "default"
	CursorGrab     = "grab"
	CursorGrabbing = "grabbing"
	CursorPointer  = "pointer"
)

// Box is an in-memory scroll container. Its children are Nodes placed in
// content coordinates; the visible window onto them starts at the scroll
// offset and spans the client size.
type Box struct {
	origin  geom.Vec
	client  geom.Vec
	content geom.Vec
	padding geom.Vec
	offset  geom.Vec
	cursor  string
	nodes   []*Node
}

// NewBox creates a box with the given visible size.
func NewBox(client geom.Vec) *Box {
	return &Box{
		client: client.NonNegative(),
		cursor: CursorGrab,
	}
}

// Origin returns the screen position of the box's top-left corner.
func (b *Box) Origin() geom.Vec {
	return b.origin
}

// SetOrigin moves the box on screen.
func (b *Box) SetOrigin(origin geom.Vec) {
	b.origin = origin
}

// SetClientSize changes the visible size. The offset is re-clamped.
func (b *Box) SetClientSize(client geom.Vec) {
	b.client = client.NonNegative()
	b.offset = b.offset.Clamp(MaxScroll(b))
}

// SetContentSize fixes the content size. A zero size means the content is
// sized to fit the children.
func (b *Box) SetContentSize(content geom.Vec) {
	b.content = content.NonNegative()
	b.offset = b.offset.Clamp(MaxScroll(b))
}

// SetPadding adds trailing space after the last child on each axis.
func (b *Box) SetPadding(padding geom.Vec) {
	b.padding = padding.NonNegative()
}

// Add appends nodes as direct children.
func (b *Box) Add(nodes ...*Node) {
	b.nodes = append(b.nodes, nodes...)
}

// Clear removes every child and resets the offset.
func (b *Box) Clear() {
	b.nodes = nil
	b.offset = geom.Vec{}
}

// Nodes returns the children as Nodes.
func (b *Box) Nodes() []*Node {
	return b.nodes
}

// ScrollOffset implements Surface.
func (b *Box) ScrollOffset() geom.Vec {
	return b.offset
}

// SetScrollOffset implements Surface.
func (b *Box) SetScrollOffset(offset geom.Vec) {
	b.offset = offset.Clamp(MaxScroll(b))
}

// ScrollSize implements Surface. Like a DOM element's scroll size it is
// never smaller than the client size.
func (b *Box) ScrollSize() geom.Vec {
	extent := b.content
	if extent == (geom.Vec{}) {
		for _, n := range b.nodes {
			max := n.Bounds.Max()
			extent.X = math.Max(extent.X, max.X)
			extent.Y = math.Max(extent.Y, max.Y)
		}
		if len(b.nodes) > 0 {
			extent = extent.Add(b.padding)
		}
	}
	return geom.Vec{X: math.Max(extent.X, b.client.X), Y: math.Max(extent.Y, b.client.Y)}
}

// ClientSize implements Surface.
func (b *Box) ClientSize() geom.Vec {
	return b.client
}

// Cursor implements Surface.
func (b *Box) Cursor() string {
	return b.cursor
}

// SetCursor implements Surface.
func (b *Box) SetCursor(cursor string) {
	b.cursor = cursor
}

// Children implements Surface.
func (b *Box) Children() []Element {
	out := make([]Element, len(b.nodes))
	for i, n := range b.nodes {
		out[i] = n
	}
	return out
}

// ContainsScreen returns true if a screen point lies in the visible area.
func (b *Box) ContainsScreen(p geom.Vec) bool {
	return geom.Rect{Min: b.origin, Size: b.client}.Contains(p)
}

// ScreenToContent converts a screen point into content coordinates.
func (b *Box) ScreenToContent(p geom.Vec) geom.Vec {
	return p.Sub(b.origin).Add(b.offset)
}

// HitTest returns the child under a screen point, or nil.
func (b *Box) HitTest(p geom.Vec) *Node {
	if !b.ContainsScreen(p) {
		return nil
	}
	c := b.ScreenToContent(p)
	for i := len(b.nodes) - 1; i >= 0; i-- {
		if b.nodes[i].Bounds.Contains(c) {
			return b.nodes[i]
		}
	}
	return nil
}

// Click dispatches a click at a screen point to the child under it.
// Returns true if a child activated.
func (b *Box) Click(p geom.Vec) bool {
	n := b.HitTest(p)
	if n == nil {
		return false
	}
	return n.Click(b.ScreenToContent(p))
}

// Visible returns the children that intersect the visible area.
func (b *Box) Visible() []*Node {
	view := geom.Rect{Min: b.offset, Size: b.client}
	var out []*Node
	for _, n := range b.nodes {
		if intersects(view, n.Bounds) {
			out = append(out, n)
		}
	}
	return out
}

func intersects(a, c geom.Rect) bool {
	am, cm := a.Max(), c.Max()
	return a.Min.X < cm.X && c.Min.X < am.X && a.Min.Y < cm.Y && c.Min.Y < am.Y
}
