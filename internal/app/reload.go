package app

import (
	"github.com/dshills/dragscroll/internal/config"
	"github.com/dshills/dragscroll/internal/dragscroll"
)

// buildController replaces the controller with one built from the current
// config. The old controller is unmounted and closed first, so its cursors
// are restored before the new one snapshots them.
func (app *Application) buildController() error {
	if app.controller != nil {
		app.controller.SetMounted(false)
		_ = app.controller.Close()
		app.controller = nil
	}

	ctrl, err := dragscroll.New(app.ref, app.hub, app.sched,
		controllerOptions(app.config.DragScroll),
		dragscroll.WithMounted(app.attached),
		dragscroll.WithLogger(component(app.log, "dragscroll")),
	)
	if err != nil {
		return NewComponentError("controller", "build", err)
	}
	app.controller = ctrl
	return nil
}

// controllerOptions applies a loaded dragscroll section.
func controllerOptions(c config.DragScroll) dragscroll.Option {
	return func(o *dragscroll.Options) {
		o.DecayRate = c.DecayRate
		o.SafeDisplacement = c.SafeDisplacement
		o.RubberBand = c.RubberBand
		o.Axis = c.AxisValue()
		o.Epsilon = c.Epsilon
	}
}

// onConfigChange runs on the watcher's goroutine and hands the new config
// to the loop.
func (app *Application) onConfigChange(cfg *config.Config) {
	if !app.loop.Post(func() { app.reload(cfg) }) {
		component(app.log, "config").Debug("reload dropped after shutdown")
	}
}

func (app *Application) onConfigError(err error) {
	component(app.log, "config").WithError(err).Warn("config reload failed, keeping previous settings")
}

// reload swaps in cfg. Command-line overrides still apply. The card layout
// is rebuilt when the demo section changed; the controller is always
// rebuilt so a gesture in progress ends.
func (app *Application) reload(cfg *config.Config) {
	log := component(app.log, "config")
	if err := app.opts.override(cfg); err != nil {
		log.WithError(err).Warn("config reload rejected")
		return
	}

	prev := app.config
	app.config = cfg
	app.log.SetLevel(ParseLogLevel(cfg.Log.Level))

	if cfg.Demo != prev.Demo {
		app.pressed = nil
		app.lastClicked = nil
		layoutCards(app.box, cfg.Demo, app.onCardClick)
	}
	if err := app.buildController(); err != nil {
		log.WithError(err).Error("controller rebuild failed")
		return
	}
	app.dirty = true
	log.WithField("decay_rate", cfg.DragScroll.DecayRate).Info("config reloaded")
}
