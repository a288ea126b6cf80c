package app

import (
	"context"
	"time"

	"github.com/dshills/dragscroll/internal/clock"
	"github.com/dshills/dragscroll/internal/event"
	"github.com/dshills/dragscroll/internal/input/mouse"
	"github.com/dshills/dragscroll/internal/renderer/backend"
	"github.com/dshills/dragscroll/internal/surface"
)

// eventLoop is the main application loop. Input, scheduler ticks and
// posted reloads are all handled here, one at a time.
func (app *Application) eventLoop() error {
	events := app.startInputPolling()

	frameTicker := time.NewTicker(clock.FramePeriod)
	defer frameTicker.Stop()

	for {
		select {
		case <-app.done:
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := app.HandleEvent(ev); err != nil {
				return err
			}

		case task := <-app.loop.Tasks():
			task()
			app.dirty = true

		case <-frameTicker.C:
			if app.dirty {
				app.render()
			}
		}
	}
}

// HandleEvent processes one backend event.
// Returns ErrQuit if the application should exit.
func (app *Application) HandleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return app.handleKey(ev)
	case backend.EventMouse:
		app.handleMouse(ev.Mouse)
	case backend.EventResize:
		app.handleResize(ev.Width, ev.Height)
	case backend.EventInterrupt:
		app.dirty = true
	}
	return nil
}

// handleKey processes keyboard input.
func (app *Application) handleKey(ev backend.Event) error {
	switch {
	case ev.Key == backend.KeyCtrlC, ev.Key == backend.KeyRune && ev.Rune == 'q':
		return ErrQuit
	case ev.Key == backend.KeyRune && ev.Rune == 'r':
		app.clicks = 0
		app.lastClicked = nil
		app.dirty = true
	case ev.Key == backend.KeyCtrlL:
		app.dirty = true
	}
	return nil
}

// handleMouse gives presses over the box to the controller, publishes every
// mouse event, and turns a primary release over the pressed card into a
// click after the controller has seen the release.
func (app *Application) handleMouse(m mouse.Event) {
	p := m.Position.Vec()
	primary := m.Button == mouse.ButtonLeft

	if m.Action == mouse.ActionPress && primary {
		app.pressed = app.box.HitTest(p)
		if app.controller != nil && app.box.ContainsScreen(p) {
			app.controller.OnPointerDown(m)
		}
	}

	if err := app.hub.Publish(context.Background(), m); err != nil {
		component(app.log, "input").WithError(err).Warn("pointer delivery failed")
	}

	if m.Action == mouse.ActionRelease && primary {
		target := app.pressed
		app.pressed = nil
		if target != nil && app.box.HitTest(p) == target {
			app.box.Click(p)
		}
	}
	app.dirty = true
}

// handleResize resizes the box before listeners hear about it.
func (app *Application) handleResize(w, h int) {
	app.box.SetClientSize(clientSize(w, h))
	if err := app.hub.Publish(context.Background(), event.Resize{Width: w, Height: h}); err != nil {
		component(app.log, "input").WithError(err).Warn("resize delivery failed")
	}
	app.dirty = true
}

func (app *Application) onCardClick(n *surface.Node) {
	app.clicks++
	app.lastClicked = n
	component(app.log, "app").WithField("card", n.Label).Debug("card activated")
}

// startInputPolling starts a goroutine that polls for input events.
// Events are sent to the returned channel.
//
// PollEvent is blocking, so this goroutine exits once the backend is shut
// down and reports EventNone.
func (app *Application) startInputPolling() <-chan backend.Event {
	events := make(chan backend.Event, 100)

	go func() {
		defer close(events)

		for {
			ev := app.backend.PollEvent()
			if ev.Type == backend.EventNone {
				return
			}

			select {
			case events <- ev:
			case <-app.done:
				return
			}
		}
	}()

	return events
}
