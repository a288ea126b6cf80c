package event

import "errors"

// Group is a set of subscriptions acquired together and released with a
// single Release call. It is the handle a component holds for as long as it
// listens to the global input stream.
type Group struct {
	hub      *Hub
	subs     []Subscription
	released bool
}

// NewGroup creates an empty group bound to a hub.
func NewGroup(hub *Hub) *Group {
	return &Group{hub: hub}
}

// Subscribe subscribes a handler and adds it to the group.
// If the group was already released, it returns ErrSubscriptionNotFound
// without subscribing.
func (g *Group) Subscribe(t Topic, handler Handler) error {
	if g.released {
		return ErrSubscriptionNotFound
	}
	sub, err := g.hub.Subscribe(t, handler)
	if err != nil {
		return err
	}
	g.subs = append(g.subs, sub)
	return nil
}

// Len returns the number of subscriptions held.
func (g *Group) Len() int {
	return len(g.subs)
}

// Released returns true once Release has been called.
func (g *Group) Released() bool {
	return g.released
}

// Release unsubscribes every held subscription. Safe to call more than once.
func (g *Group) Release() error {
	if g.released {
		return nil
	}
	g.released = true

	var errs []error
	for _, sub := range g.subs {
		// The subscription may already have been unsubscribed directly.
		if err := g.hub.Unsubscribe(sub); err != nil && !errors.Is(err, ErrSubscriptionNotFound) {
			errs = append(errs, err)
		}
	}
	g.subs = nil
	return errors.Join(errs...)
}
