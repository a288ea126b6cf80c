package event

import "sync"

// Registry manages subscriptions organized by topic.
// Subscriptions for a topic are kept in registration order.
type Registry struct {
	mu   sync.RWMutex
	subs map[Topic][]*subscription
	byID map[string]*subscription
}

// NewRegistry creates a new subscription registry.
func NewRegistry() *Registry {
	return &Registry{
		subs: make(map[Topic][]*subscription),
		byID: make(map[string]*subscription),
	}
}

// Add adds a subscription.
func (r *Registry) Add(sub *subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.subs[sub.Topic()] = append(r.subs[sub.Topic()], sub)
	r.byID[sub.ID()] = sub
}

// Remove removes a subscription by ID.
func (r *Registry) Remove(subID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, exists := r.byID[subID]
	if !exists {
		return false
	}

	t := sub.Topic()
	subs := r.subs[t]
	for i, s := range subs {
		if s.ID() == subID {
			// Copy so an in-flight Match snapshot keeps its own slice.
			next := make([]*subscription, 0, len(subs)-1)
			next = append(next, subs[:i]...)
			r.subs[t] = append(next, subs[i+1:]...)
			break
		}
	}

	if len(r.subs[t]) == 0 {
		delete(r.subs, t)
	}
	delete(r.byID, subID)
	return true
}

// Get returns a subscription by ID.
func (r *Registry) Get(subID string) (*subscription, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sub, ok := r.byID[subID]
	return sub, ok
}

// MatchActive returns active subscriptions for a topic.
func (r *Registry) MatchActive(t Topic) []*subscription {
	r.mu.RLock()
	defer r.mu.RUnlock()

	subs := r.subs[t]
	result := make([]*subscription, 0, len(subs))
	for _, s := range subs {
		if s.IsActive() {
			result = append(result, s)
		}
	}
	return result
}

// Count returns the number of registered subscriptions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

// CountTopic returns the number of subscriptions registered for a topic.
func (r *Registry) CountTopic(t Topic) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs[t])
}
