// Package clock runs the callbacks that drive a focus session. Everything a
// session does (ticks, activity transitions, user commands) executes on the
// goroutine of a single Loop, so session state never needs locking.
package clock

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrLoopClosed is returned when work is submitted to a loop that has stopped
// running.
var ErrLoopClosed = errors.New("event loop is not running")

// Scheduler arms repeating callbacks.
type Scheduler interface {
	// Every arms fn to run once per interval until the returned stop function
	// is called. Calling stop more than once is a no-op.
	Every(interval time.Duration, fn func()) (stop func())
}

const queueSize = 64

// Loop is a single-goroutine event loop.
type Loop struct {
	queue chan func()
	done  chan struct{}
	once  sync.Once
}

// NewLoop creates a loop. Nothing runs until Run is called.
func NewLoop() *Loop {
	return &Loop{
		queue: make(chan func(), queueSize),
		done:  make(chan struct{}),
	}
}

// Run executes posted callbacks in the order they were posted until ctx is
// cancelled. It must be called at most once.
func (l *Loop) Run(ctx context.Context) error {
	defer l.once.Do(func() {
		close(l.done)
	})

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.queue:
			fn()
		}
	}
}

// Done is closed once the loop stops running.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Post queues fn for execution on the loop goroutine. It reports false if the
// loop has stopped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}

	select {
	case l.queue <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Do runs fn on the loop goroutine and waits for it to return. It must not be
// called from the loop goroutine itself.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	ran := make(chan struct{})

	if !l.Post(func() {
		fn()
		close(ran)
	}) {
		return ErrLoopClosed
	}

	select {
	case <-ran:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-l.done:
		select {
		case <-ran:
			return nil
		default:
			return ErrLoopClosed
		}
	}
}

// Every implements Scheduler. Ticks are delivered through Post, so a tick may
// already be queued when stop returns; callbacks must check their own armed
// state before acting.
func (l *Loop) Every(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	quit := make(chan struct{})

	var once sync.Once

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if !l.Post(fn) {
					return
				}
			case <-quit:
				return
			case <-l.done:
				return
			}
		}
	}()

	return func() {
		once.Do(func() {
			close(quit)
		})
	}
}
