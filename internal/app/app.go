// Package app hosts a drag-scroll controller in the terminal. It lays out a
// scrollable box of cards, routes terminal input to the controller and the
// input hub, runs momentum ticks on the loop goroutine, and rebuilds the
// controller when the config file changes.
package app

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/dshills/dragscroll/internal/clock"
	"github.com/dshills/dragscroll/internal/config"
	"github.com/dshills/dragscroll/internal/dragscroll"
	"github.com/dshills/dragscroll/internal/event"
	"github.com/dshills/dragscroll/internal/geom"
	"github.com/dshills/dragscroll/internal/renderer/backend"
	"github.com/dshills/dragscroll/internal/surface"
)

// Application wires the card surface, the input hub and the controller to
// a terminal backend. Everything except Shutdown runs on the goroutine that
// calls Run.
type Application struct {
	opts   Options
	config *config.Config
	log    *logrus.Logger
	logOut io.Closer

	backend    backend.Backend
	hub        *event.Hub
	loop       *clock.Loop
	sched      clock.Scheduler
	box        *surface.Box
	ref        *surface.Ref
	controller *dragscroll.Controller
	watcher    *config.Watcher

	// attached is set once the box has a size and is bound to ref.
	attached bool

	clicks      int
	lastClicked *surface.Node
	pressed     *surface.Node
	dirty       bool

	running   atomic.Bool
	done      chan struct{}
	stopOnce  sync.Once
	closeOnce sync.Once
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// Watch reloads the configuration when the file changes.
	Watch bool

	// LogLevel and LogFile override the log section when set.
	LogLevel string
	LogFile  string

	// Layout overrides the demo layout when set.
	Layout string

	// LogOutput receives logs when no log file is configured.
	// Nil discards them.
	LogOutput io.Writer

	// Scheduler steps momentum. Defaults to the application loop.
	Scheduler clock.Scheduler

	// Env looks up environment overrides. Defaults to os.LookupEnv.
	Env func(string) (string, bool)
}

// New loads configuration and builds the application. The terminal is not
// touched until Run.
func New(opts Options) (*Application, error) {
	if opts.Env == nil {
		opts.Env = os.LookupEnv
	}

	cfg, err := LoadConfig(opts)
	if err != nil {
		return nil, err
	}

	logger, logOut, err := NewLogger(cfg.Log, opts.LogOutput)
	if err != nil {
		return nil, &InitError{Component: "logging", Err: err}
	}

	app := &Application{
		opts:   opts,
		config: cfg,
		log:    logger,
		logOut: logOut,
		hub:    event.NewHub(),
		loop:   clock.NewLoop(64),
		box:    surface.NewBox(geom.Vec{}),
		ref:    surface.NewRef(nil),
		done:   make(chan struct{}),
	}
	app.sched = opts.Scheduler
	if app.sched == nil {
		app.sched = app.loop
	}

	layoutCards(app.box, cfg.Demo, app.onCardClick)
	if err := app.buildController(); err != nil {
		app.shutdown()
		return nil, &InitError{Component: "controller", Err: err}
	}

	if opts.Watch && opts.ConfigPath != "" {
		app.watcher, err = config.Watch(opts.ConfigPath, app.onConfigChange,
			config.WithEnvLookup(opts.Env),
			config.WithErrorHandler(app.onConfigError),
		)
		if err != nil {
			app.shutdown()
			return nil, &InitError{Component: "config watcher", Err: err}
		}
	}

	component(logger, "app").WithFields(logrus.Fields{
		"config": opts.ConfigPath,
		"layout": cfg.Demo.Layout,
		"cards":  cfg.Demo.Cards,
	}).Info("application created")
	return app, nil
}

// LoadConfig resolves the configuration New would run with: defaults, the
// config file, the environment, then the command-line overrides in opts.
func LoadConfig(opts Options) (*config.Config, error) {
	env := opts.Env
	if env == nil {
		env = os.LookupEnv
	}
	cfg, err := config.LoadWithEnv(opts.ConfigPath, env)
	if err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}
	if err := opts.override(cfg); err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}
	return cfg, nil
}

// override applies command-line settings, which win over the file and the
// environment, and revalidates.
func (o Options) override(cfg *config.Config) error {
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	if o.LogFile != "" {
		cfg.Log.File = o.LogFile
	}
	if o.Layout != "" {
		cfg.Demo.Layout = o.Layout
	}
	return cfg.Validate()
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// Run starts the application main loop.
// Blocks until shutdown is requested or the user quits, in which case it
// returns ErrQuit.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.shutdown()
	defer app.running.Store(false)

	if err := app.start(); err != nil {
		return err
	}
	defer app.backend.Shutdown()

	return app.eventLoop()
}

// start initializes the backend, sizes the box to the terminal and mounts
// the controller on it.
func (app *Application) start() error {
	if app.backend == nil {
		return ErrNoBackend
	}
	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}

	w, h := app.backend.Size()
	app.box.SetClientSize(clientSize(w, h))
	app.ref.Set(app.box)
	app.attached = true
	if app.controller != nil {
		app.controller.SetMounted(true)
	}

	app.render()
	return nil
}

// Shutdown stops the event loop. Resources are released once Run returns,
// or immediately if the application is not running. Safe to call more than
// once and from any goroutine.
func (app *Application) Shutdown() {
	app.stopOnce.Do(func() { close(app.done) })
	if !app.running.Load() {
		app.shutdown()
	}
}

// shutdown releases components in reverse construction order.
func (app *Application) shutdown() {
	app.closeOnce.Do(func() {
		if app.watcher != nil {
			_ = app.watcher.Close()
		}
		if app.controller != nil {
			_ = app.controller.Close()
		}
		app.loop.Close()
		component(app.log, "app").Info("shut down")
		_ = app.logOut.Close()
	})
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Controller returns the active drag controller. It changes on reload and
// is nil if the last rebuild failed.
func (app *Application) Controller() *dragscroll.Controller {
	return app.controller
}

// Box returns the card surface.
func (app *Application) Box() *surface.Box {
	return app.box
}

// Hub returns the input hub.
func (app *Application) Hub() *event.Hub {
	return app.hub
}

// Clicks returns the number of card activations since the last reset.
func (app *Application) Clicks() int {
	return app.clicks
}

// LastClicked returns the most recently activated card, or nil.
func (app *Application) LastClicked() *surface.Node {
	return app.lastClicked
}

// clientSize leaves the bottom row for the status bar.
func clientSize(w, h int) geom.Vec {
	return geom.Vec{X: float64(w), Y: float64(max(h-1, 0))}
}
