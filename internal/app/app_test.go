package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/dragscroll/internal/clock"
	"github.com/dshills/dragscroll/internal/config"
	"github.com/dshills/dragscroll/internal/dragscroll"
	"github.com/dshills/dragscroll/internal/event"
	"github.com/dshills/dragscroll/internal/geom"
	"github.com/dshills/dragscroll/internal/input/mouse"
	"github.com/dshills/dragscroll/internal/renderer/backend"
)

func noEnv(string) (string, bool) { return "", false }

// newStarted builds an application on an 80x24 null backend with a manual
// scheduler and starts it without the event loop.
func newStarted(t *testing.T, opts Options) (*Application, *backend.NullBackend, *clock.Manual) {
	t.Helper()
	manual := clock.NewManual()
	opts.Scheduler = manual
	opts.Env = noEnv

	app, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(app.Shutdown)

	nb := backend.NewNullBackend(80, 24)
	require.NoError(t, app.SetBackend(nb))
	require.NoError(t, app.start())
	return app, nb, manual
}

func mouseEvent(m mouse.Event) backend.Event {
	return backend.Event{Type: backend.EventMouse, Mouse: m}
}

func keyEvent(r rune) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: r}
}

func TestNewApplication(t *testing.T) {
	app, err := New(Options{Env: noEnv})
	require.NoError(t, err)
	defer app.Shutdown()

	assert.NotNil(t, app.Controller())
	assert.False(t, app.Controller().Mounted(), "controller waits for the terminal size")
	assert.Len(t, app.Box().Nodes(), config.Default().Demo.Cards)
	assert.Equal(t, 1, app.Hub().Listeners(event.TopicPointerMove))
	assert.False(t, app.IsRunning())
}

func TestNewRejectsBadOverrides(t *testing.T) {
	_, err := New(Options{Env: noEnv, Layout: "spiral"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInitialization)
	assert.ErrorIs(t, err, config.ErrValidationFailed)
}

func TestNewRejectsBadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dragscroll.toml")
	require.NoError(t, os.WriteFile(path, []byte("[dragscroll]\ndecay_rate = 3\n"), 0o644))

	_, err := New(Options{Env: noEnv, ConfigPath: path})
	var ie *InitError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "config", ie.Component)
}

func TestStartMountsController(t *testing.T) {
	app, _, _ := newStarted(t, Options{})

	assert.Equal(t, geom.Vec{X: 80, Y: 23}, app.Box().ClientSize())
	assert.True(t, app.Controller().Mounted())

	// Four 18-wide columns and six 5-high rows with 3-cell gaps and margins.
	assert.Equal(t, geom.Vec{X: 7, Y: 28}, app.Controller().MaxScroll())
}

func TestStartWithoutBackend(t *testing.T) {
	app, err := New(Options{Env: noEnv})
	require.NoError(t, err)
	defer app.Shutdown()

	assert.ErrorIs(t, app.start(), ErrNoBackend)
	assert.ErrorIs(t, app.Run(), ErrNoBackend)
}

func TestClickActivatesCard(t *testing.T) {
	app, _, _ := newStarted(t, Options{})

	require.NoError(t, app.HandleEvent(mouseEvent(mouse.Press(5, 5))))
	require.NoError(t, app.HandleEvent(mouseEvent(mouse.Release(5, 5))))

	assert.Equal(t, 1, app.Clicks())
	require.NotNil(t, app.LastClicked())
	assert.Equal(t, "Card 1", app.LastClicked().Label)
	assert.Equal(t, dragscroll.Idle, app.Controller().State())
}

func TestReleaseOverAnotherCardIsNotAClick(t *testing.T) {
	app, _, _ := newStarted(t, Options{Layout: config.LayoutHorizontal})

	// A press on the gap between cards has no target.
	require.NoError(t, app.HandleEvent(mouseEvent(mouse.Press(1, 5))))
	require.NoError(t, app.HandleEvent(mouseEvent(mouse.Release(1, 5))))
	assert.Equal(t, 0, app.Clicks())

	require.NoError(t, app.HandleEvent(mouseEvent(mouse.Press(5, 5))))
	require.NoError(t, app.HandleEvent(mouseEvent(mouse.Release(30, 5))))
	assert.Equal(t, 0, app.Clicks())
}

func TestDragScrollsAndSuppressesClick(t *testing.T) {
	app, _, manual := newStarted(t, Options{Layout: config.LayoutHorizontal})
	ctrl := app.Controller()

	require.NoError(t, app.HandleEvent(mouseEvent(mouse.Press(50, 5))))
	require.NoError(t, app.HandleEvent(mouseEvent(mouse.Drag(40, 5))))
	require.NoError(t, app.HandleEvent(mouseEvent(mouse.Drag(30, 5))))
	assert.Equal(t, geom.Vec{X: 20, Y: 0}, app.Box().ScrollOffset())
	assert.Equal(t, "grabbing", app.Box().Cursor())

	// The content followed the pointer, so the release lands on the pressed
	// card. The click that follows the drag is swallowed.
	require.NoError(t, app.HandleEvent(mouseEvent(mouse.Release(30, 5))))
	assert.Equal(t, 0, app.Clicks())
	assert.Equal(t, dragscroll.Decaying, ctrl.State())
	assert.Equal(t, "grab", app.Box().Cursor())

	manual.RunUntilIdle(1000)
	assert.Equal(t, dragscroll.Idle, ctrl.State())
	assert.Greater(t, app.Box().ScrollOffset().X, 20.0)

	// The next plain click goes through.
	require.NoError(t, app.HandleEvent(mouseEvent(mouse.Press(30, 5))))
	require.NoError(t, app.HandleEvent(mouseEvent(mouse.Release(30, 5))))
	assert.Equal(t, 1, app.Clicks())
}

func TestPressOutsideBoxIsIgnored(t *testing.T) {
	app, _, _ := newStarted(t, Options{})

	// Row 23 is the status bar.
	require.NoError(t, app.HandleEvent(mouseEvent(mouse.Press(10, 23))))
	assert.Equal(t, dragscroll.Idle, app.Controller().State())
}

func TestResizeRemeasures(t *testing.T) {
	app, nb, _ := newStarted(t, Options{Layout: config.LayoutHorizontal})
	before := app.Controller().MaxScroll()

	nb.Resize(100, 30)
	require.NoError(t, app.HandleEvent(nb.PollEvent()))

	assert.Equal(t, geom.Vec{X: 100, Y: 29}, app.Box().ClientSize())
	assert.Equal(t, before.X-20, app.Controller().MaxScroll().X)
}

func TestKeys(t *testing.T) {
	app, _, _ := newStarted(t, Options{})

	require.NoError(t, app.HandleEvent(mouseEvent(mouse.Press(5, 5))))
	require.NoError(t, app.HandleEvent(mouseEvent(mouse.Release(5, 5))))
	require.Equal(t, 1, app.Clicks())

	require.NoError(t, app.HandleEvent(keyEvent('r')))
	assert.Equal(t, 0, app.Clicks())
	assert.Nil(t, app.LastClicked())

	assert.ErrorIs(t, app.HandleEvent(keyEvent('q')), ErrQuit)
	assert.ErrorIs(t, app.HandleEvent(backend.Event{Type: backend.EventKey, Key: backend.KeyCtrlC}), ErrQuit)
	assert.NoError(t, app.HandleEvent(keyEvent('x')))
}

func TestRender(t *testing.T) {
	app, nb, _ := newStarted(t, Options{})
	app.render()

	row := []rune(nb.Row(3))
	assert.Equal(t, '┌', row[3])
	assert.Equal(t, '┐', row[20])
	assert.Equal(t, "Card 1", string([]rune(nb.Row(5))[9:15]))

	status := nb.Row(23)
	assert.Contains(t, status, "offset 0,0 / 7,28")
	assert.Contains(t, status, "idle")
	assert.Contains(t, status, "clicks 0")
	assert.Greater(t, nb.Shows(), 0)
}

func TestRenderFollowsScroll(t *testing.T) {
	app, nb, _ := newStarted(t, Options{})

	app.Box().SetScrollOffset(geom.Vec{X: 3, Y: 3})
	app.render()

	assert.Equal(t, '┌', []rune(nb.Row(0))[0])
	assert.Contains(t, nb.Row(23), "offset 3,3")
}

func TestReloadRebuildsController(t *testing.T) {
	app, _, _ := newStarted(t, Options{})
	old := app.Controller()

	cfg := config.Default()
	cfg.DragScroll.DecayRate = 0.5
	app.reload(cfg)

	ctrl := app.Controller()
	require.NotSame(t, old, ctrl)
	assert.True(t, old.Closed())
	assert.Equal(t, 0.5, ctrl.Options().DecayRate)
	assert.True(t, ctrl.Mounted())
	assert.Equal(t, 1, app.Hub().Listeners(event.TopicPointerUp))
}

func TestControllerOptionsFromConfig(t *testing.T) {
	cfg := config.DefaultDragScroll()
	cfg.DecayRate = 0.8
	cfg.SafeDisplacement = 4
	cfg.RubberBand = true
	cfg.Axis = "y"
	cfg.Epsilon = 0.01

	o := dragscroll.DefaultOptions()
	controllerOptions(cfg)(&o)
	assert.Equal(t, 0.8, o.DecayRate)
	assert.Equal(t, 4.0, o.SafeDisplacement)
	assert.True(t, o.RubberBand)
	assert.Equal(t, geom.AxisY, o.Axis)
	assert.Equal(t, 0.01, o.Epsilon)
	assert.True(t, o.Mounted, "mount gate is left to the host")
}

func TestLoadConfigAppliesOverrides(t *testing.T) {
	cfg, err := LoadConfig(Options{Env: noEnv, Layout: config.LayoutVertical, LogLevel: "debug"})
	require.NoError(t, err)
	assert.Equal(t, config.LayoutVertical, cfg.Demo.Layout)
	assert.Equal(t, "debug", cfg.Log.Level)

	_, err = LoadConfig(Options{Env: noEnv, Layout: "spiral"})
	assert.ErrorIs(t, err, ErrInitialization)
}

func TestReloadMidGestureRestoresCursor(t *testing.T) {
	app, _, _ := newStarted(t, Options{Layout: config.LayoutHorizontal})

	require.NoError(t, app.HandleEvent(mouseEvent(mouse.Press(50, 5))))
	require.NoError(t, app.HandleEvent(mouseEvent(mouse.Drag(30, 5))))
	require.Equal(t, "grabbing", app.Box().Cursor())

	cfg := config.Default()
	cfg.Demo.Layout = config.LayoutHorizontal
	app.reload(cfg)

	assert.Equal(t, "grab", app.Box().Cursor())
	assert.Equal(t, dragscroll.Idle, app.Controller().State())

	// The release of the interrupted gesture is ignored.
	require.NoError(t, app.HandleEvent(mouseEvent(mouse.Release(30, 5))))
	assert.Equal(t, dragscroll.Idle, app.Controller().State())
}

func TestReloadKeepsOverrides(t *testing.T) {
	app, _, _ := newStarted(t, Options{Layout: config.LayoutVertical})

	cfg := config.Default()
	cfg.Demo.Cards = 3
	app.reload(cfg)

	assert.Equal(t, config.LayoutVertical, app.Config().Demo.Layout)
	assert.Len(t, app.Box().Nodes(), 3)
}

func TestReloadRejectsInvalidOverride(t *testing.T) {
	app, _, _ := newStarted(t, Options{})
	old := app.Controller()

	app.opts.Layout = "spiral"
	app.reload(config.Default())

	assert.Same(t, old, app.Controller())
}

func TestWatchReloadsThroughLoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dragscroll.toml")
	require.NoError(t, os.WriteFile(path, []byte("[dragscroll]\ndecay_rate = 0.9\n"), 0o644))

	app, _, _ := newStarted(t, Options{ConfigPath: path, Watch: true})
	require.Equal(t, 0.9, app.Controller().Options().DecayRate)

	require.NoError(t, os.WriteFile(path, []byte("[dragscroll]\ndecay_rate = 0.8\n"), 0o644))

	select {
	case task := <-app.loop.Tasks():
		task()
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for reload")
	}
	assert.Equal(t, 0.8, app.Controller().Options().DecayRate)
}

func TestRunQuits(t *testing.T) {
	app, err := New(Options{Env: noEnv})
	require.NoError(t, err)
	nb := backend.NewNullBackend(40, 12)
	require.NoError(t, app.SetBackend(nb))

	nb.PostEvent(keyEvent('q'))

	done := make(chan error, 1)
	go func() { done <- app.Run() }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrQuit)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}
	assert.False(t, app.IsRunning())
	assert.True(t, app.Controller().Closed())
	assert.Contains(t, nb.Row(11), "offset 0,0")
}

func TestRunStopsOnShutdown(t *testing.T) {
	app, err := New(Options{Env: noEnv})
	require.NoError(t, err)
	require.NoError(t, app.SetBackend(backend.NewNullBackend(40, 12)))

	done := make(chan error, 1)
	go func() { done <- app.Run() }()

	require.Eventually(t, app.IsRunning, 2*time.Second, 5*time.Millisecond)
	assert.ErrorIs(t, app.Run(), ErrAlreadyRunning)
	assert.ErrorIs(t, app.SetBackend(nil), ErrAlreadyRunning)

	app.Shutdown()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}
}

func TestShutdownIdempotent(t *testing.T) {
	app, err := New(Options{Env: noEnv})
	require.NoError(t, err)

	app.Shutdown()
	app.Shutdown()
	assert.True(t, app.Controller().Closed())
}
