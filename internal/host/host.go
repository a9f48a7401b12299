// Package host runs focus sessions on a clock.Loop on behalf of callers on
// other goroutines, such as the terminal UI.
package host

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ayoisaiah/focuswatch/internal/activity"
	"github.com/ayoisaiah/focuswatch/internal/audio"
	"github.com/ayoisaiah/focuswatch/internal/clock"
	"github.com/ayoisaiah/focuswatch/internal/session"
)

// Options are shared by every session a Host starts.
type Options struct {
	Catalog session.Catalog
	Audio   audio.Engine
	Logger  *slog.Logger
	// Scheduler defaults to the loop itself.
	Scheduler clock.Scheduler
	// OnEnd runs on its own goroutine after a session reaches a terminal
	// phase. Wait blocks until every call has returned.
	OnEnd func(ctx context.Context, o session.Outcome)
}

// SessionBinder is implemented by observers that need to know which session
// they observe. BindSession is called before the session begins.
type SessionBinder interface {
	BindSession(id string, cfg session.Config)
}

// Host owns the activity feed and the controller of the current session.
// Every method may be called from any goroutine except the loop's own.
type Host struct {
	loop *clock.Loop
	feed *activity.Feed
	ctrl *session.Controller
	opts Options
	wg   sync.WaitGroup
}

// New returns a host that runs sessions on loop.
func New(loop *clock.Loop, opts Options) *Host {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	if opts.Scheduler == nil {
		opts.Scheduler = loop
	}

	return &Host{
		loop: loop,
		feed: activity.NewFeed(),
		opts: opts,
	}
}

// Start begins a session with cfg. Observers receive its state and outcome
// on the loop goroutine, in the order given. It returns the session ID.
func (h *Host) Start(
	ctx context.Context,
	cfg session.Config,
	observers ...session.Observer,
) (string, error) {
	var (
		id     string
		runErr error
	)

	err := h.loop.Do(ctx, func() {
		if h.ctrl != nil {
			if _, ended := h.ctrl.Outcome(); !ended {
				runErr = ErrSessionActive
				return
			}
		}

		ctrl := session.NewController(session.Deps{
			Scheduler: h.opts.Scheduler,
			Catalog:   h.opts.Catalog,
			Audio:     h.opts.Audio,
			Activity:  h.feed,
			Logger:    h.opts.Logger,
			Observer: fanout{
				observers: observers,
				onEnd:     h.dispatchEnd,
			},
		})

		id = ctrl.ID()

		for _, o := range observers {
			if b, ok := o.(SessionBinder); ok {
				b.BindSession(id, cfg)
			}
		}

		runErr = ctrl.Begin(ctx, cfg)

		// A rejected configuration never produced a session.
		if runErr == nil || ctrl.State().Phase != session.Pending {
			h.ctrl = ctrl
		}
	})
	if err != nil {
		return "", err
	}

	return id, runErr
}

// Skip asks the current session to skip.
func (h *Host) Skip(ctx context.Context) error {
	var skipErr error

	err := h.loop.Do(ctx, func() {
		if h.ctrl == nil {
			skipErr = ErrNoSession
			return
		}

		skipErr = h.ctrl.RequestSkip(ctx)
	})
	if err != nil {
		return err
	}

	return skipErr
}

// Activity delivers a foreground transition to the current session.
func (h *Host) Activity(ctx context.Context, t activity.Transition) error {
	return h.loop.Do(ctx, func() {
		h.feed.Publish(t)
	})
}

// Close abandons the current session if it is still running.
func (h *Host) Close(ctx context.Context) error {
	return h.loop.Do(ctx, func() {
		if h.ctrl != nil {
			h.ctrl.Close(ctx)
		}
	})
}

// Outcome returns the outcome of the latest session, once it has ended.
func (h *Host) Outcome(ctx context.Context) (session.Outcome, bool) {
	var (
		out   session.Outcome
		ended bool
	)

	_ = h.loop.Do(ctx, func() {
		if h.ctrl != nil {
			out, ended = h.ctrl.Outcome()
		}
	})

	return out, ended
}

// Wait blocks until every OnEnd call has returned.
func (h *Host) Wait() {
	h.wg.Wait()
}

func (h *Host) dispatchEnd(o session.Outcome) {
	if h.opts.OnEnd == nil {
		return
	}

	h.wg.Add(1)

	go func() {
		defer h.wg.Done()

		h.opts.OnEnd(context.Background(), o)
	}()
}

type fanout struct {
	onEnd     func(session.Outcome)
	observers []session.Observer
}

func (f fanout) SessionUpdated(s session.State) {
	for _, o := range f.observers {
		o.SessionUpdated(s)
	}
}

func (f fanout) SessionEnded(out session.Outcome) {
	for _, o := range f.observers {
		o.SessionEnded(out)
	}

	f.onEnd(out)
}
