package event

import (
	"context"
	"testing"

	"github.com/dshills/dragscroll/internal/input/mouse"
)

func TestGroupRelease(t *testing.T) {
	hub := NewHub()
	group := NewGroup(hub)
	moves := 0

	if err := group.Subscribe(TopicPointerMove, MouseHandler(func(mouse.Event) { moves++ })); err != nil {
		t.Fatal(err)
	}
	if err := group.Subscribe(TopicPointerUp, MouseHandler(func(mouse.Event) {})); err != nil {
		t.Fatal(err)
	}
	if err := group.Subscribe(TopicResize, ResizeHandler(func(Resize) {})); err != nil {
		t.Fatal(err)
	}

	if group.Len() != 3 {
		t.Fatalf("expected 3 subscriptions, got %d", group.Len())
	}
	if hub.Stats().Subscriptions != 3 {
		t.Fatalf("expected hub to hold 3 subscriptions, got %d", hub.Stats().Subscriptions)
	}

	if err := group.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	_ = hub.Publish(context.Background(), mouse.Drag(2, 2))

	if moves != 0 {
		t.Error("released group should not receive events")
	}
	if hub.Stats().Subscriptions != 0 {
		t.Errorf("expected empty hub, got %d", hub.Stats().Subscriptions)
	}
	if !group.Released() {
		t.Error("expected group to report released")
	}
}

func TestGroupReleaseIdempotent(t *testing.T) {
	hub := NewHub()
	group := NewGroup(hub)
	_ = group.Subscribe(TopicPointerUp, MouseHandler(func(mouse.Event) {}))

	// Subscriptions removed behind the group's back are skipped.
	for _, sub := range hub.registry.MatchActive(TopicPointerUp) {
		_ = hub.Unsubscribe(sub)
	}

	if err := group.Release(); err != nil {
		t.Errorf("Release after direct unsubscribe: %v", err)
	}
	if err := group.Release(); err != nil {
		t.Errorf("second Release: %v", err)
	}
}

func TestGroupSubscribeAfterRelease(t *testing.T) {
	hub := NewHub()
	group := NewGroup(hub)
	_ = group.Release()

	if err := group.Subscribe(TopicPointerMove, MouseHandler(func(mouse.Event) {})); err == nil {
		t.Error("expected error subscribing on a released group")
	}
	if hub.Listeners(TopicPointerMove) != 0 {
		t.Error("released group must not leak subscriptions")
	}
}
