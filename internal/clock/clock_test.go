package clock

import (
	"testing"
	"time"
)

func TestManualEvery(t *testing.T) {
	m := NewManual()
	calls := 0
	timer := m.Every(FramePeriod, func() { calls++ })

	m.Advance(FramePeriod * 3)
	if calls != 3 {
		t.Errorf("expected 3 ticks, got %d", calls)
	}

	timer.Stop()
	m.Advance(FramePeriod * 3)
	if calls != 3 {
		t.Errorf("stopped timer fired: %d calls", calls)
	}
	if !timer.Stopped() {
		t.Error("expected Stopped() true")
	}
	if m.Active() != 0 {
		t.Errorf("expected no active timers, got %d", m.Active())
	}
}

func TestManualStopInsideCallback(t *testing.T) {
	m := NewManual()
	calls := 0
	var timer Timer
	timer = m.Every(FramePeriod, func() {
		calls++
		if calls == 2 {
			timer.Stop()
		}
	})

	frames := m.RunUntilIdle(100)
	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
	if frames != 2 {
		t.Errorf("expected 2 frames, got %d", frames)
	}
}

func TestManualOrdering(t *testing.T) {
	m := NewManual()
	var order []string

	m.Every(FramePeriod, func() { order = append(order, "a") })
	m.Every(FramePeriod, func() { order = append(order, "b") })
	m.Every(2*FramePeriod, func() { order = append(order, "slow") })

	m.Advance(2 * FramePeriod)

	want := []string{"a", "b", "a", "b", "slow"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
	if m.Now() != 2*FramePeriod {
		t.Errorf("Now() = %v", m.Now())
	}
}

func TestManualDefaultPeriod(t *testing.T) {
	m := NewManual()
	calls := 0
	m.Every(0, func() { calls++ })
	m.Tick()
	if calls != 1 {
		t.Errorf("zero period should default to a frame, got %d calls", calls)
	}
}

func TestLoopRunsTicksOnDrain(t *testing.T) {
	l := NewLoop(8)
	defer l.Close()

	ticks := make(chan struct{}, 1)
	timer := l.Every(time.Millisecond, func() {
		select {
		case ticks <- struct{}{}:
		default:
		}
	})
	defer timer.Stop()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case fn := <-l.Tasks():
			fn()
		case <-ticks:
			return
		case <-deadline:
			t.Fatal("no tick delivered")
		}
	}
}

func TestLoopStoppedTimerDoesNotRun(t *testing.T) {
	l := NewLoop(8)
	defer l.Close()

	calls := 0
	timer := l.Every(time.Millisecond, func() { calls++ })

	// Wait until a tick is queued, then stop before draining it.
	select {
	case fn := <-l.Tasks():
		timer.Stop()
		fn()
	case <-time.After(2 * time.Second):
		t.Fatal("no tick queued")
	}

	if calls != 0 {
		t.Errorf("stopped timer ran %d times", calls)
	}
}

func TestLoopPostAfterClose(t *testing.T) {
	l := NewLoop(1)
	ran := false
	if !l.Post(func() { ran = true }) {
		t.Fatal("Post on open loop failed")
	}
	select {
	case fn := <-l.Tasks():
		fn()
	default:
		t.Fatal("posted task not queued")
	}
	if !ran {
		t.Error("posted task did not run")
	}

	l.Close()
	l.Close()
	if l.Post(func() {}) {
		t.Error("Post after Close should fail")
	}
}
