package surface

import (
	"github.com/google/uuid"

	"github.com/dshills/dragscroll/internal/geom"
)

// Node is a child element of a Box, laid out in content coordinates.
type Node struct {
	// Label is rendered by the host.
	Label string

	// Bounds is the node's area in content coordinates.
	Bounds geom.Rect

	cursor    string
	listeners []clickEntry
	onClick   func(n *Node)
}

type clickEntry struct {
	id       ListenerID
	listener ClickListener
}

// NewNode creates a node. onClick is the node's activation handler and may
// be nil.
func NewNode(label string, bounds geom.Rect, onClick func(n *Node)) *Node {
	return &Node{
		Label:   label,
		Bounds:  bounds,
		cursor:  CursorDefault,
		onClick: onClick,
	}
}

// Cursor implements Element.
func (n *Node) Cursor() string {
	return n.cursor
}

// SetCursor implements Element.
func (n *Node) SetCursor(cursor string) {
	n.cursor = cursor
}

// AddClickListener implements Element.
func (n *Node) AddClickListener(listener ClickListener) ListenerID {
	id := ListenerID(uuid.NewString())
	n.listeners = append(n.listeners, clickEntry{id: id, listener: listener})
	return id
}

// RemoveClickListener implements Element.
func (n *Node) RemoveClickListener(id ListenerID) {
	for i, e := range n.listeners {
		if e.id == id {
			n.listeners = append(n.listeners[:i:i], n.listeners[i+1:]...)
			return
		}
	}
}

// Listeners returns the number of registered click listeners.
func (n *Node) Listeners() int {
	return len(n.listeners)
}

// Click dispatches a click at pos. Listeners run first in registration
// order; the activation handler runs only if no listener cancelled the
// event. Returns true if the node activated.
func (n *Node) Click(pos geom.Vec) bool {
	ev := &ClickEvent{Position: pos}

	// Listeners may deregister themselves while running.
	snapshot := append([]clickEntry(nil), n.listeners...)
	for _, e := range snapshot {
		e.listener(ev)
		if ev.PropagationStopped() {
			break
		}
	}

	if ev.Cancelled() || n.onClick == nil {
		return false
	}
	n.onClick(n)
	return true
}
