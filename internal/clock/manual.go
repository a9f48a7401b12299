package clock

import "time"

type manualTimer struct {
	fn       func()
	interval time.Duration
	next     time.Duration
	seq      int
	stopped  bool
}

// Manual is a Scheduler whose time only moves when Advance is called. Due
// callbacks fire in due-time order, and callbacks due at the same instant fire
// in the order they were armed. Manual is not safe for concurrent use.
type Manual struct {
	timers []*manualTimer
	now    time.Duration
	seq    int
}

// NewManual returns a manual scheduler at elapsed time zero.
func NewManual() *Manual {
	return &Manual{}
}

// Every implements Scheduler.
func (m *Manual) Every(interval time.Duration, fn func()) func() {
	if interval <= 0 {
		panic("clock: non-positive interval for Manual.Every")
	}

	m.seq++

	t := &manualTimer{
		fn:       fn,
		interval: interval,
		next:     m.now + interval,
		seq:      m.seq,
	}

	m.timers = append(m.timers, t)

	return func() {
		t.stopped = true
	}
}

// Elapsed returns how far the scheduler has been advanced.
func (m *Manual) Elapsed() time.Duration {
	return m.now
}

// Armed returns the number of callbacks that have not been stopped.
func (m *Manual) Armed() int {
	var n int

	for _, t := range m.timers {
		if !t.stopped {
			n++
		}
	}

	return n
}

// Advance moves time forward by d, firing every callback that falls due.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d

	for {
		t := m.nextDue(target)
		if t == nil {
			break
		}

		m.now = t.next
		t.next += t.interval
		t.fn()
	}

	m.now = target
	m.prune()
}

func (m *Manual) nextDue(target time.Duration) *manualTimer {
	var due *manualTimer

	for _, t := range m.timers {
		if t.stopped || t.next > target {
			continue
		}

		if due == nil || t.next < due.next ||
			(t.next == due.next && t.seq < due.seq) {
			due = t
		}
	}

	return due
}

func (m *Manual) prune() {
	active := m.timers[:0]

	for _, t := range m.timers {
		if !t.stopped {
			active = append(active, t)
		}
	}

	for i := len(active); i < len(m.timers); i++ {
		m.timers[i] = nil
	}

	m.timers = active
}
