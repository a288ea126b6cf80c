package event

import (
	"context"

	"github.com/dshills/dragscroll/internal/input/mouse"
)

// Topic names a stream of global input notifications.
type Topic string

// Global input topics.
const (
	// TopicPointerDown carries mouse.Event presses.
	TopicPointerDown Topic = "pointer.down"

	// TopicPointerMove carries mouse.Event moves and drags.
	TopicPointerMove Topic = "pointer.move"

	// TopicPointerUp carries mouse.Event releases.
	TopicPointerUp Topic = "pointer.up"

	// TopicResize carries Resize notifications.
	TopicResize Topic = "viewport.resize"
)

// String returns the topic name.
func (t Topic) String() string {
	return string(t)
}

// Topical is implemented by events that name their own topic.
type Topical interface {
	Topic() Topic
}

// Resize reports a new viewport size.
type Resize struct {
	Width  int
	Height int
}

// Topic implements Topical.
func (Resize) Topic() Topic {
	return TopicResize
}

// TopicOf returns the topic an event is published on.
// Returns "" for values that have no topic.
func TopicOf(ev any) Topic {
	switch e := ev.(type) {
	case mouse.Event:
		switch {
		case e.Action == mouse.ActionPress:
			return TopicPointerDown
		case e.Action == mouse.ActionRelease:
			return TopicPointerUp
		case e.Action.IsMotion():
			return TopicPointerMove
		}
		return ""
	case Topical:
		return e.Topic()
	default:
		return ""
	}
}

// Handler is the interface for event handlers.
type Handler interface {
	// Handle processes an event.
	// The event parameter is type-erased; handlers should type-assert.
	Handle(ctx context.Context, event any) error
}

// HandlerFunc is a function adapter for Handler.
type HandlerFunc func(ctx context.Context, event any) error

// Handle implements the Handler interface.
func (f HandlerFunc) Handle(ctx context.Context, event any) error {
	return f(ctx, event)
}

// MouseHandler adapts a mouse.Event callback into a Handler.
// Events of any other type are ignored.
func MouseHandler(fn func(mouse.Event)) Handler {
	return HandlerFunc(func(_ context.Context, ev any) error {
		if e, ok := ev.(mouse.Event); ok {
			fn(e)
		}
		return nil
	})
}

// ResizeHandler adapts a Resize callback into a Handler.
func ResizeHandler(fn func(Resize)) Handler {
	return HandlerFunc(func(_ context.Context, ev any) error {
		if e, ok := ev.(Resize); ok {
			fn(e)
		}
		return nil
	})
}
