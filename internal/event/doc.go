// Package event provides the global input hub the drag controller listens on.
//
// A gesture must keep tracking the pointer after it leaves the scroll
// surface, so pointer motion, pointer release and viewport resize are
// published to the Hub by the host rather than delivered to the surface.
//
// # Topics
//
//   - pointer.down: mouse.Event with ActionPress
//   - pointer.move: mouse.Event with ActionMove or ActionDrag
//   - pointer.up: mouse.Event with ActionRelease
//   - viewport.resize: Resize
//
// # Subscribing
//
//	sub, err := hub.Subscribe(event.TopicPointerMove, event.MouseHandler(func(e mouse.Event) {
//	    // track the pointer
//	}))
//	defer hub.Unsubscribe(sub)
//
// # Scoped Release
//
// Components that subscribe to several topics hold a Group and release all
// of them with one call on every teardown path:
//
//	listeners := event.NewGroup(hub)
//	_ = listeners.Subscribe(event.TopicPointerMove, onMove)
//	_ = listeners.Subscribe(event.TopicPointerUp, onUp)
//	defer listeners.Release()
//
// # Delivery
//
// Publish is synchronous. Handlers run in subscription order on the
// publishing goroutine. A handler that panics is recovered, counted, and
// reported as a PanicError without stopping delivery to other handlers.
package event
