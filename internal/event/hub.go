package event

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/google/uuid"
)

// Hub delivers global input notifications (pointer motion, pointer release,
// viewport resize) to every listener subscribed to the matching topic.
//
// Delivery is synchronous on the publisher's goroutine, in subscription
// order. The host publishes from its event loop, so handlers never run
// concurrently with each other.
type Hub struct {
	registry *Registry

	published atomic.Uint64
	delivered atomic.Uint64
	failures  atomic.Uint64
	panics    atomic.Uint64
}

// Stats holds hub delivery counters.
type Stats struct {
	Published     uint64
	Delivered     uint64
	HandlerErrors uint64
	HandlerPanics uint64
	Subscriptions int
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{registry: NewRegistry()}
}

// Subscribe registers a handler for a topic.
func (h *Hub) Subscribe(t Topic, handler Handler) (Subscription, error) {
	if t == "" {
		return nil, ErrInvalidTopic
	}
	if handler == nil {
		return nil, ErrNilHandler
	}

	sub := newSubscription(uuid.NewString(), t, handler)
	h.registry.Add(sub)
	return sub, nil
}

// Unsubscribe cancels a subscription and removes it from the hub.
func (h *Hub) Unsubscribe(sub Subscription) error {
	if sub == nil {
		return ErrSubscriptionNotFound
	}
	sub.Cancel()
	if !h.registry.Remove(sub.ID()) {
		return ErrSubscriptionNotFound
	}
	return nil
}

// Publish delivers an event to every active subscription on its topic.
// Handler errors and panics are collected and returned joined; delivery to
// the remaining handlers continues regardless.
func (h *Hub) Publish(ctx context.Context, ev any) error {
	t := TopicOf(ev)
	if t == "" {
		return ErrInvalidEvent
	}

	subs := h.registry.MatchActive(t)
	if len(subs) == 0 {
		return nil
	}
	h.published.Add(1)

	var errs []error
	for _, sub := range subs {
		// An earlier handler may have cancelled this one.
		if !sub.IsActive() {
			continue
		}
		if err := h.deliver(ctx, sub, ev); err != nil {
			errs = append(errs, err)
			continue
		}
		h.delivered.Add(1)
	}

	return errors.Join(errs...)
}

func (h *Hub) deliver(ctx context.Context, sub *subscription, ev any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			h.panics.Add(1)
			err = &PanicError{SubscriptionID: sub.ID(), Topic: sub.Topic(), Value: r}
		}
	}()

	if herr := sub.Handler().Handle(ctx, ev); herr != nil {
		h.failures.Add(1)
		return &HandlerError{SubscriptionID: sub.ID(), Topic: sub.Topic(), Err: herr}
	}
	return nil
}

// Listeners returns the number of subscriptions registered for a topic.
func (h *Hub) Listeners(t Topic) int {
	return h.registry.CountTopic(t)
}

// Stats returns a snapshot of the delivery counters.
func (h *Hub) Stats() Stats {
	return Stats{
		Published:     h.published.Load(),
		Delivered:     h.delivered.Load(),
		HandlerErrors: h.failures.Load(),
		HandlerPanics: h.panics.Load(),
		Subscriptions: h.registry.Count(),
	}
}
