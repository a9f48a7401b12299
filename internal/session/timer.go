package session

import (
	"time"

	"github.com/ayoisaiah/focuswatch/internal/clock"
)

// Timer is the main session countdown.
type Timer struct {
	sched      clock.Scheduler
	onTick     func(remaining int)
	onComplete func()
	stop       func()
	remaining  int
	gen        int
	armed      bool
}

// NewTimer returns a disarmed timer. onTick receives the remaining seconds
// after every tick; onComplete runs once when the countdown reaches zero.
func NewTimer(
	sched clock.Scheduler,
	onTick func(remaining int),
	onComplete func(),
) *Timer {
	return &Timer{
		sched:      sched,
		onTick:     onTick,
		onComplete: onComplete,
	}
}

// Start arms the countdown from durationSeconds, discarding any previous one.
// A non-positive duration completes immediately.
func (t *Timer) Start(durationSeconds int) {
	t.Stop()

	if durationSeconds <= 0 {
		t.remaining = 0
		t.complete()

		return
	}

	t.gen++
	gen := t.gen

	t.remaining = durationSeconds
	t.armed = true
	t.stop = t.sched.Every(time.Second, func() {
		t.tick(gen)
	})
}

// Stop disarms the countdown. It is safe to call at any time.
func (t *Timer) Stop() {
	t.armed = false

	if t.stop != nil {
		t.stop()
		t.stop = nil
	}
}

// Armed reports whether the countdown is running.
func (t *Timer) Armed() bool {
	return t.armed
}

// Remaining returns the seconds left on the countdown.
func (t *Timer) Remaining() int {
	return t.remaining
}

func (t *Timer) tick(gen int) {
	// A tick from an earlier arming may still be queued.
	if !t.armed || gen != t.gen {
		return
	}

	t.remaining--

	if t.onTick != nil {
		t.onTick(t.remaining)
	}

	if t.remaining <= 0 && t.armed && gen == t.gen {
		t.Stop()
		t.complete()
	}
}

func (t *Timer) complete() {
	if t.onComplete != nil {
		t.onComplete()
	}
}
