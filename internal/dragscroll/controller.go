package dragscroll

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/dshills/dragscroll/internal/clock"
	"github.com/dshills/dragscroll/internal/event"
	"github.com/dshills/dragscroll/internal/geom"
	"github.com/dshills/dragscroll/internal/input/mouse"
	"github.com/dshills/dragscroll/internal/surface"
)

// tickMs is the momentum tick duration in milliseconds. Velocities are in
// screen units per millisecond.
const tickMs = 1000.0 / 60

// Controller turns pointer gestures on a surface into scroll offsets and
// release momentum.
//
// The host calls OnPointerDown for presses over the surface. Motion,
// release and resize arrive through the hub, so a drag keeps tracking the
// pointer after it leaves the surface. All methods must be called from the
// goroutine that publishes on the hub and runs scheduler ticks.
type Controller struct {
	ref   *surface.Ref
	sched clock.Scheduler
	opts  Options
	log   *logrus.Entry

	listeners *event.Group

	state      interaction
	mounted    bool
	measured   bool
	maxScroll  geom.Vec
	cursors    cursorSnapshot
	suppressed []suppressor
	closed     bool
}

// New creates a controller bound to ref and subscribes it to pointer motion,
// pointer release and resize on hub. The subscriptions are held until Close.
//
// If the controller starts mounted and ref is already bound, geometry and
// cursors are measured immediately. Otherwise measurement waits for
// SetMounted(true) or the first press on a bound surface.
func New(ref *surface.Ref, hub *event.Hub, sched clock.Scheduler, opts ...Option) (*Controller, error) {
	switch {
	case ref == nil:
		return nil, ErrNilRef
	case hub == nil:
		return nil, ErrNilHub
	case sched == nil:
		return nil, ErrNilScheduler
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if o.Logger == nil {
		o.Logger = discardLogger()
	}

	c := &Controller{
		ref:       ref,
		sched:     sched,
		opts:      o,
		log:       o.Logger.WithField("component", "dragscroll"),
		listeners: event.NewGroup(hub),
		mounted:   o.Mounted,
	}
	c.state.axes[axisX].enabled = o.Axis.HasX()
	c.state.axes[axisY].enabled = o.Axis.HasY()
	if !c.state.axes[axisX].enabled {
		c.state.lastAxis = axisY
	}

	subs := []struct {
		topic   event.Topic
		handler event.Handler
	}{
		{event.TopicPointerMove, event.MouseHandler(c.handleMove)},
		{event.TopicPointerUp, event.MouseHandler(c.handleUp)},
		{event.TopicResize, event.ResizeHandler(c.handleResize)},
	}
	for _, s := range subs {
		if err := c.listeners.Subscribe(s.topic, s.handler); err != nil {
			_ = c.listeners.Release()
			return nil, fmt.Errorf("dragscroll: subscribing to %s: %w", s.topic, err)
		}
	}

	if c.mounted {
		c.measure()
	}
	return c, nil
}

// Options returns the controller's configuration.
func (c *Controller) Options() Options {
	return c.opts
}

// State returns the current gesture phase.
func (c *Controller) State() State {
	return c.state.phase
}

// Velocity returns the current per-axis velocity in units per millisecond.
func (c *Controller) Velocity() geom.Vec {
	return geom.Vec{X: c.state.axes[axisX].velocity, Y: c.state.axes[axisY].velocity}
}

// MaxScroll returns the last measured scroll range.
func (c *Controller) MaxScroll() geom.Vec {
	return c.maxScroll
}

// Dragging returns the per-axis dragging flags.
func (c *Controller) Dragging() (x, y bool) {
	return c.state.axes[axisX].dragging, c.state.axes[axisY].dragging
}

// Mounted returns the mount gate.
func (c *Controller) Mounted() bool {
	return c.mounted
}

// Closed returns true once Close has been called.
func (c *Controller) Closed() bool {
	return c.closed
}

// OnPointerDown starts a gesture. Presses other than the primary button
// alone are ignored. A press during momentum cancels it.
func (c *Controller) OnPointerDown(ev mouse.Event) {
	if c.closed || !c.mounted || !ev.IsPrimaryPress() {
		return
	}
	if _, ok := c.ref.Get(); !ok {
		return
	}
	if !c.measured {
		c.measure()
	}

	if c.state.anyDecaying() {
		c.log.Debug("momentum interrupted by press")
	}
	c.state.reset()

	p := ev.Position.Vec()
	c.state.pointerDown = true
	c.state.initial = p
	c.state.last = p
	c.setPhase(PointerDown)
}

// handleMove pans the surface by the pointer delta.
func (c *Controller) handleMove(ev mouse.Event) {
	if c.closed || !c.state.pointerDown {
		return
	}
	s, ok := c.ref.Get()
	if !ok {
		return
	}

	p := ev.Position.Vec()
	delta := c.mask(c.state.last.Sub(p))
	c.state.last = p

	v := delta.Scale(1 / tickMs)
	for i := range c.state.axes {
		ax := &c.state.axes[i]
		if !ax.enabled {
			continue
		}
		ax.velocity = axis(i).of(v)
		if axis(i).of(delta) != 0 {
			ax.dragging = true
		}
	}
	if dx, dy := math.Abs(delta.X), math.Abs(delta.Y); dx != dy {
		if dx > dy {
			c.state.lastAxis = axisX
		} else {
			c.state.lastAxis = axisY
		}
	}

	// Motion only along disabled axes is not a drag.
	if delta == (geom.Vec{}) {
		return
	}
	c.setPhase(Dragging)
	c.grab(s)
	c.scrollTo(s, s.ScrollOffset().Add(delta))
}

// handleUp ends the gesture and starts momentum for a confirmed drag.
func (c *Controller) handleUp(ev mouse.Event) {
	if c.closed || !c.state.pointerDown {
		return
	}
	c.state.pointerDown = false
	c.state.last = geom.Vec{}

	s, ok := c.ref.Get()
	if !ok {
		c.state.reset()
		return
	}

	disp := c.mask(c.state.initial.Sub(ev.Position.Vec()))
	safe := c.opts.SafeDisplacement
	intentional := math.Abs(disp.X) > safe || math.Abs(disp.Y) > safe
	confirmed := c.state.anyDragging() && intentional

	c.removeSuppressors()
	if confirmed {
		c.suppressClicks(s)
	}
	c.cursors.restore(s)

	if !confirmed {
		c.state.reset()
		c.log.WithField("displacement", disp).Debug("click")
		return
	}
	c.startMomentum()
}

// handleResize re-measures the scroll range. Velocity and offset are left
// alone.
func (c *Controller) handleResize(event.Resize) {
	if c.closed || !c.mounted {
		return
	}
	s, ok := c.ref.Get()
	if !ok {
		return
	}
	c.maxScroll = surface.MaxScroll(s)
	c.state.lastOffset = c.state.lastOffset.Clamp(c.maxScroll)
	c.log.WithField("max", c.maxScroll).Debug("resized")
}

// SetMounted opens or closes the mount gate. Opening measures geometry and
// snapshots cursors when the surface is bound. Closing cancels any gesture
// or momentum and drops installed click suppressors.
func (c *Controller) SetMounted(mounted bool) {
	if c.closed || c.mounted == mounted {
		return
	}
	c.mounted = mounted

	if mounted {
		c.measure()
		return
	}

	c.releaseCursors()
	c.state.reset()
	c.removeSuppressors()
	c.measured = false
	c.maxScroll = geom.Vec{}
	c.cursors = cursorSnapshot{}
	c.log.Debug("unmounted")
}

// Close stops momentum, restores cursors changed by a drag in progress,
// removes click suppressors and releases the hub subscriptions. Safe to call
// more than once.
func (c *Controller) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.releaseCursors()
	c.state.reset()
	c.removeSuppressors()
	return c.listeners.Release()
}

// measure captures the scroll range and cursor snapshot from the bound
// surface. It is a no-op when nothing is bound.
func (c *Controller) measure() {
	s, ok := c.ref.Get()
	if !ok {
		c.measured = false
		return
	}
	c.maxScroll = surface.MaxScroll(s)
	c.state.lastOffset = s.ScrollOffset().Clamp(c.maxScroll)
	c.cursors = snapshotCursors(s)
	c.measured = true
	c.log.WithField("max", c.maxScroll).Debug("measured")
}

// mask zeroes the components of v on disabled axes.
func (c *Controller) mask(v geom.Vec) geom.Vec {
	if !c.state.axes[axisX].enabled {
		v.X = 0
	}
	if !c.state.axes[axisY].enabled {
		v.Y = 0
	}
	return v
}

// scrollTo applies a clamped offset and records it.
func (c *Controller) scrollTo(s surface.Surface, offset geom.Vec) {
	offset = offset.Clamp(c.maxScroll)
	s.SetScrollOffset(offset)
	c.state.lastOffset = offset
}

// releaseCursors restores the snapshot if a drag left the grab cursor
// applied.
func (c *Controller) releaseCursors() {
	if s, ok := c.ref.Get(); ok && c.state.phase == Dragging {
		c.cursors.restore(s)
	}
}

func (c *Controller) grab(s surface.Surface) {
	s.SetCursor(c.opts.GrabCursor)
	for _, child := range s.Children() {
		child.SetCursor(c.opts.GrabCursor)
	}
}

// startMomentum launches a decay loop on each participating axis that is
// not resting on a scroll boundary.
func (c *Controller) startMomentum() {
	for i := range c.state.axes {
		a := axis(i)
		ax := &c.state.axes[i]

		participates := ax.enabled && ax.dragging && (c.opts.RubberBand || a == c.state.lastAxis)
		if !participates || !geom.Within(a.of(c.state.lastOffset), a.of(c.maxScroll)) {
			ax.stop()
			continue
		}

		ax.timer = c.sched.Every(clock.FramePeriod, func() { c.tick(a) })
		c.log.WithFields(logrus.Fields{"axis": a, "velocity": ax.velocity}).Debug("momentum started")
	}

	if c.state.anyDecaying() {
		c.setPhase(Decaying)
	} else {
		c.setPhase(Idle)
	}
}

// tick advances momentum on one axis by a frame.
func (c *Controller) tick(a axis) {
	ax := &c.state.axes[a]
	if !ax.decaying() {
		return
	}
	s, ok := c.ref.Get()
	if c.closed || !c.mounted || !ok {
		ax.stop()
		c.settle()
		return
	}

	ax.velocity *= c.opts.DecayRate
	cur := a.of(s.ScrollOffset())
	next := geom.Clamp(cur+ax.velocity*tickMs, 0, a.of(c.maxScroll))
	s.SetScrollOffset(a.set(s.ScrollOffset(), next))
	c.state.lastOffset = a.set(c.state.lastOffset, next)

	if math.Abs(ax.velocity) < c.opts.Epsilon {
		ax.stop()
		c.log.WithField("axis", a).Debug("momentum stopped")
		c.settle()
	}
}

// settle returns to Idle once no axis is decaying.
func (c *Controller) settle() {
	if c.state.phase == Decaying && !c.state.anyDecaying() {
		c.setPhase(Idle)
	}
}

func (c *Controller) setPhase(s State) {
	if c.state.phase == s {
		return
	}
	c.log.WithFields(logrus.Fields{"from": c.state.phase, "to": s}).Debug("transition")
	c.state.phase = s
}
