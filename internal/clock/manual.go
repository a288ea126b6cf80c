package clock

import (
	"sort"
	"time"
)

// Manual is a Scheduler driven by explicit Advance calls. Tests use it to
// step momentum tick by tick without real time passing.
type Manual struct {
	now    time.Duration
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	period  time.Duration
	next    time.Duration
	seq     int
	fn      func()
	stopped bool
}

func (t *manualTimer) Stop()         { t.stopped = true }
func (t *manualTimer) Stopped() bool { return t.stopped }

// NewManual creates a manual scheduler at time zero.
func NewManual() *Manual {
	return &Manual{}
}

// Every implements Scheduler.
func (m *Manual) Every(period time.Duration, fn func()) Timer {
	if period <= 0 {
		period = FramePeriod
	}
	m.seq++
	t := &manualTimer{period: period, next: m.now + period, seq: m.seq, fn: fn}
	m.timers = append(m.timers, t)
	return t
}

// Now returns the elapsed manual time.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Active returns the number of timers that have not been stopped.
func (m *Manual) Active() int {
	n := 0
	for _, t := range m.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Advance moves time forward by d, firing every due tick in time order.
// Ticks due at the same instant fire in scheduling order.
func (m *Manual) Advance(d time.Duration) {
	end := m.now + d
	for {
		t := m.nextDue(end)
		if t == nil {
			break
		}
		m.now = t.next
		t.next += t.period
		t.fn()
	}
	m.now = end
	m.compact()
}

// Tick advances by exactly one frame period.
func (m *Manual) Tick() {
	m.Advance(FramePeriod)
}

// RunUntilIdle advances frame by frame until no timer is active or max
// frames have passed. Returns the number of frames advanced.
func (m *Manual) RunUntilIdle(max int) int {
	frames := 0
	for frames < max && m.Active() > 0 {
		m.Tick()
		frames++
	}
	return frames
}

func (m *Manual) nextDue(end time.Duration) *manualTimer {
	var due []*manualTimer
	for _, t := range m.timers {
		if !t.stopped && t.next <= end {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].next != due[j].next {
			return due[i].next < due[j].next
		}
		return due[i].seq < due[j].seq
	})
	return due[0]
}

func (m *Manual) compact() {
	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	m.timers = live
}
