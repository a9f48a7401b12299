package session

import (
	"time"

	"github.com/ayoisaiah/focuswatch/internal/activity"
	"github.com/ayoisaiah/focuswatch/internal/clock"
)

// Policy decides how the monitor reacts to leaving the foreground.
type Policy struct {
	// Exempt sessions never arm a grace countdown.
	Exempt bool
}

// Gate is consulted on every transition the monitor receives.
type Gate interface {
	// ActivityPolicy returns the policy to apply and whether transitions
	// should be acted upon at all.
	ActivityPolicy() (p Policy, active bool)
}

// GraceHooks are the notifications a monitor emits. Nil hooks are skipped.
type GraceHooks struct {
	Started   func(remaining int)
	Tick      func(remaining int)
	Expired   func()
	Cancelled func()
}

// MonitorState is the state of the grace sub-machine.
type MonitorState int

const (
	MonitorIdle MonitorState = iota
	GraceArmed
	GraceExpired
)

// Monitor watches foreground/background transitions and runs the grace
// countdown while a non-exempt session is out of the foreground.
type Monitor struct {
	sched       clock.Scheduler
	gate        Gate
	hooks       GraceHooks
	stop        func()
	unsubscribe func()
	window      int
	remaining   int
	gen         int
	state       MonitorState
}

// NewMonitor returns an idle monitor with a grace window of windowSeconds.
func NewMonitor(
	sched clock.Scheduler,
	windowSeconds int,
	gate Gate,
	hooks GraceHooks,
) *Monitor {
	return &Monitor{
		sched:  sched,
		window: windowSeconds,
		gate:   gate,
		hooks:  hooks,
	}
}

// Attach subscribes the monitor to src, replacing any earlier subscription.
func (m *Monitor) Attach(src activity.Source) {
	m.Detach()

	if src == nil {
		return
	}

	m.unsubscribe = src.Subscribe(m.handle)
}

// Detach releases the subscription made by Attach.
func (m *Monitor) Detach() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// State returns the state of the grace sub-machine.
func (m *Monitor) State() MonitorState {
	return m.state
}

func (m *Monitor) handle(t activity.Transition) {
	policy := Policy{}

	if m.gate != nil {
		var active bool

		policy, active = m.gate.ActivityPolicy()
		if !active {
			return
		}
	}

	if t.InForeground() {
		m.ForegroundEnter()
		return
	}

	m.BackgroundEnter(policy)
}

// BackgroundEnter arms a fresh grace countdown unless p is exempt.
func (m *Monitor) BackgroundEnter(p Policy) {
	if p.Exempt || m.state == GraceExpired {
		return
	}

	m.disarm()

	if m.window <= 0 {
		m.expire()
		return
	}

	m.gen++
	gen := m.gen

	m.remaining = m.window
	m.state = GraceArmed
	m.stop = m.sched.Every(time.Second, func() {
		m.tick(gen)
	})

	if m.hooks.Started != nil {
		m.hooks.Started(m.remaining)
	}
}

// ForegroundEnter cancels a running grace countdown.
func (m *Monitor) ForegroundEnter() {
	if m.state != GraceArmed {
		return
	}

	m.disarm()
	m.state = MonitorIdle

	if m.hooks.Cancelled != nil {
		m.hooks.Cancelled()
	}
}

// Disarm stops any grace countdown without emitting a notification.
func (m *Monitor) Disarm() {
	m.disarm()

	if m.state == GraceArmed {
		m.state = MonitorIdle
	}
}

func (m *Monitor) disarm() {
	if m.stop != nil {
		m.stop()
		m.stop = nil
	}
}

func (m *Monitor) tick(gen int) {
	if m.state != GraceArmed || gen != m.gen {
		return
	}

	m.remaining--

	if m.hooks.Tick != nil {
		m.hooks.Tick(m.remaining)
	}

	if m.remaining <= 0 && m.state == GraceArmed && gen == m.gen {
		m.expire()
	}
}

func (m *Monitor) expire() {
	m.disarm()
	m.state = GraceExpired

	if m.hooks.Expired != nil {
		m.hooks.Expired()
	}
}
