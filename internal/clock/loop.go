package clock

import (
	"sync/atomic"
	"time"
)

// Loop is a Scheduler whose callbacks execute on the goroutine that drains
// its task queue. The host event loop receives from Tasks and runs each
// task, so tick callbacks never race with input handling.
type Loop struct {
	tasks chan func()
	done  chan struct{}
	once  atomic.Bool
}

// NewLoop creates a loop with the given task queue capacity.
func NewLoop(capacity int) *Loop {
	if capacity <= 0 {
		capacity = 64
	}
	return &Loop{
		tasks: make(chan func(), capacity),
		done:  make(chan struct{}),
	}
}

// Tasks returns the queue the owning goroutine must drain.
func (l *Loop) Tasks() <-chan func() {
	return l.tasks
}

// Post queues fn for execution on the loop goroutine.
// Returns false if the loop is closed.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}

	select {
	case l.tasks <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Close stops accepting tasks and ends every ticker goroutine.
func (l *Loop) Close() {
	if l.once.CompareAndSwap(false, true) {
		close(l.done)
	}
}

// Every implements Scheduler. The ticker runs on its own goroutine and only
// posts work; fn itself runs when the loop goroutine drains the task. At most
// one tick per timer is queued at a time, so a busy loop coalesces ticks
// instead of building a backlog.
func (l *Loop) Every(period time.Duration, fn func()) Timer {
	if period <= 0 {
		period = FramePeriod
	}
	t := &loopTimer{stop: make(chan struct{})}

	run := func() {
		t.pending.Store(false)
		if t.stopped.Load() {
			return
		}
		fn()
	}

	go func() {
		ticker := time.NewTicker(period)
		defer ticker.Stop()

		for {
			select {
			case <-t.stop:
				return
			case <-l.done:
				return
			case <-ticker.C:
				if !t.pending.CompareAndSwap(false, true) {
					continue
				}
				if !l.Post(run) {
					return
				}
			}
		}
	}()

	return t
}

type loopTimer struct {
	stop    chan struct{}
	stopped atomic.Bool
	pending atomic.Bool
}

func (t *loopTimer) Stop() {
	if t.stopped.CompareAndSwap(false, true) {
		close(t.stop)
	}
}

func (t *loopTimer) Stopped() bool {
	return t.stopped.Load()
}
