package dragscroll

import "github.com/dshills/dragscroll/internal/surface"

// cursorSnapshot holds the surface's and its direct children's cursors as
// they were at mount.
type cursorSnapshot struct {
	taken    bool
	surface  string
	children []string
}

func snapshotCursors(s surface.Surface) cursorSnapshot {
	children := s.Children()
	snap := cursorSnapshot{
		taken:    true,
		surface:  s.Cursor(),
		children: make([]string, len(children)),
	}
	for i, child := range children {
		snap.children[i] = child.Cursor()
	}
	return snap
}

// restore reapplies the snapshot. Children added since the snapshot keep
// their current cursor.
func (snap cursorSnapshot) restore(s surface.Surface) {
	if !snap.taken {
		return
	}
	s.SetCursor(snap.surface)
	children := s.Children()
	n := min(len(children), len(snap.children))
	for i := 0; i < n; i++ {
		children[i].SetCursor(snap.children[i])
	}
}

// suppressor is a one-shot click listener installed on a child after a
// confirmed drag.
type suppressor struct {
	element surface.Element
	id      surface.ListenerID
}

// suppressClicks installs a suppressor on every direct child. Each one
// cancels the next click on its child and then removes itself.
func (c *Controller) suppressClicks(s surface.Surface) {
	for _, child := range s.Children() {
		var id surface.ListenerID
		id = child.AddClickListener(func(ev *surface.ClickEvent) {
			ev.PreventDefault()
			ev.StopImmediatePropagation()
			child.RemoveClickListener(id)
			c.forget(id)
		})
		c.suppressed = append(c.suppressed, suppressor{element: child, id: id})
	}
	c.log.WithField("children", len(c.suppressed)).Debug("click suppression installed")
}

// removeSuppressors removes every suppressor that has not fired yet.
func (c *Controller) removeSuppressors() {
	for _, sup := range c.suppressed {
		sup.element.RemoveClickListener(sup.id)
	}
	c.suppressed = nil
}

// Suppressors returns the number of installed click suppressors that have
// not fired yet.
func (c *Controller) Suppressors() int {
	return len(c.suppressed)
}

func (c *Controller) forget(id surface.ListenerID) {
	for i, sup := range c.suppressed {
		if sup.id == id {
			c.suppressed = append(c.suppressed[:i], c.suppressed[i+1:]...)
			return
		}
	}
}
