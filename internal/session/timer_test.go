package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/focuswatch/internal/clock"
)

// captureScheduler hands every armed callback to the test so that ticks can
// be delivered after the timer was stopped.
type captureScheduler struct {
	fns   []func()
	stops int
}

func (s *captureScheduler) Every(_ time.Duration, fn func()) func() {
	s.fns = append(s.fns, fn)

	return func() {
		s.stops++
	}
}

func TestTimerCountsDownToCompletion(t *testing.T) {
	m := clock.NewManual()

	var (
		ticks     []int
		completed int
	)

	timer := NewTimer(m, func(remaining int) {
		ticks = append(ticks, remaining)
	}, func() {
		completed++
	})

	timer.Start(3)
	assert.True(t, timer.Armed())

	m.Advance(10 * time.Second)

	assert.Equal(t, []int{2, 1, 0}, ticks)
	assert.Equal(t, 1, completed)
	assert.False(t, timer.Armed())
	assert.Zero(t, m.Armed())
}

func TestTimerNonPositiveDurationCompletesImmediately(t *testing.T) {
	for _, d := range []int{0, -5} {
		sched := &captureScheduler{}

		var completed int

		timer := NewTimer(sched, nil, func() {
			completed++
		})

		timer.Start(d)

		assert.Equal(t, 1, completed)
		assert.Empty(t, sched.fns)
		assert.False(t, timer.Armed())
	}
}

func TestTimerStopIsIdempotent(t *testing.T) {
	m := clock.NewManual()

	var ticks int

	timer := NewTimer(m, func(int) {
		ticks++
	}, nil)

	timer.Stop()
	timer.Start(60)
	m.Advance(2 * time.Second)
	timer.Stop()
	timer.Stop()
	m.Advance(5 * time.Second)

	assert.Equal(t, 2, ticks)
	assert.Equal(t, 58, timer.Remaining())
	assert.Zero(t, m.Armed())
}

func TestTimerIgnoresQueuedTickAfterStop(t *testing.T) {
	sched := &captureScheduler{}

	var ticks int

	timer := NewTimer(sched, func(int) {
		ticks++
	}, nil)

	timer.Start(10)
	timer.Stop()

	sched.fns[0]()

	assert.Zero(t, ticks)
	assert.Equal(t, 10, timer.Remaining())
}

func TestTimerRestartDiscardsPreviousArming(t *testing.T) {
	sched := &captureScheduler{}

	var ticks []int

	timer := NewTimer(sched, func(remaining int) {
		ticks = append(ticks, remaining)
	}, nil)

	timer.Start(10)
	timer.Start(5)

	// The first arming's tick arrives late and must not touch the new
	// countdown.
	sched.fns[0]()
	sched.fns[1]()

	assert.Equal(t, []int{4}, ticks)
	assert.Equal(t, 1, sched.stops)
}

func TestTimerStopFromTickSuppressesCompletion(t *testing.T) {
	m := clock.NewManual()

	var (
		timer     *Timer
		completed bool
	)

	timer = NewTimer(m, func(remaining int) {
		if remaining == 0 {
			timer.Stop()
		}
	}, func() {
		completed = true
	})

	timer.Start(2)
	m.Advance(5 * time.Second)

	assert.False(t, completed)
}
