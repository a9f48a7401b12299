package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ayoisaiah/focuswatch/internal/activity"
	"github.com/ayoisaiah/focuswatch/internal/audio"
	"github.com/ayoisaiah/focuswatch/internal/clock"
	"github.com/ayoisaiah/focuswatch/internal/track"
)

const defaultTeardownTimeout = 3 * time.Second

// Catalog resolves a track ID to a playable asset.
type Catalog interface {
	Resolve(id track.ID) (audio.Asset, error)
}

// Observer receives the projection of a session. Both methods are called on
// the event loop goroutine and must not block.
type Observer interface {
	SessionUpdated(s State)
	SessionEnded(o Outcome)
}

type nopObserver struct{}

func (nopObserver) SessionUpdated(State) {}

func (nopObserver) SessionEnded(Outcome) {}

// Deps are the collaborators of a Controller.
type Deps struct {
	Scheduler clock.Scheduler
	Catalog   Catalog
	Audio     audio.Engine
	Activity  activity.Source
	Observer  Observer
	Logger    *slog.Logger
	// TeardownTimeout bounds each audio teardown call. Defaults to 3s.
	TeardownTimeout time.Duration
}

// Controller is the single authority on the phase of one session.
type Controller struct {
	deps    Deps
	handle  audio.Handle
	timer   *Timer
	monitor *Monitor
	log     *slog.Logger
	outcome *Outcome
	id      string
	cfg     Config
	state   State
	begun   bool
	stopped bool
}

// NewController wires a controller for a single session.
func NewController(deps Deps) *Controller {
	if deps.Observer == nil {
		deps.Observer = nopObserver{}
	}

	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	if deps.TeardownTimeout <= 0 {
		deps.TeardownTimeout = defaultTeardownTimeout
	}

	c := &Controller{
		deps: deps,
		id:   uuid.NewString(),
	}

	c.log = deps.Logger.With(slog.String("session_id", c.id))

	c.timer = NewTimer(deps.Scheduler, c.onTick, c.onComplete)
	c.monitor = NewMonitor(deps.Scheduler, GraceWindowSeconds, c, GraceHooks{
		Started:   c.onGraceStarted,
		Tick:      c.onGraceTick,
		Expired:   c.onGraceExpired,
		Cancelled: c.onGraceCancelled,
	})

	return c
}

// ID identifies the session in logs and outcomes.
func (c *Controller) ID() string {
	return c.id
}

// Config returns the configuration the session began with.
func (c *Controller) Config() Config {
	return c.cfg
}

// State returns a snapshot of the session.
func (c *Controller) State() State {
	return c.state.clone()
}

// Outcome returns the terminal outcome once the session has ended.
func (c *Controller) Outcome() (Outcome, bool) {
	if c.outcome == nil {
		return Outcome{}, false
	}

	return *c.outcome, true
}

// Begin starts the session: it loads and loops the track, then starts the
// countdown and begins watching foreground transitions. An invalid duration
// leaves the controller untouched. A track that cannot be played fails the
// session with ReasonTrackUnavailable.
func (c *Controller) Begin(ctx context.Context, cfg Config) error {
	if c.begun {
		return ErrAlreadyBegun
	}

	if cfg.DurationSeconds <= 0 {
		return ErrInvalidDuration.Fmt(cfg.DurationSeconds)
	}

	c.begun = true
	c.cfg = cfg
	c.state = State{
		Phase:            Pending,
		RemainingSeconds: cfg.DurationSeconds,
	}

	asset, err := c.deps.Catalog.Resolve(cfg.TrackID)
	if err == nil {
		c.handle, err = c.deps.Audio.Load(ctx, asset, audio.Options{Loop: true})
	}

	if err != nil {
		c.log.ErrorContext(
			ctx,
			"unable to start track",
			slog.String("track", string(cfg.TrackID)),
			slog.Any("error", err),
		)

		c.finish(ctx, Failed, ReasonTrackUnavailable)

		return ErrTrackUnavailable.Fmt(cfg.TrackID).Wrap(err)
	}

	c.state.Phase = Running

	c.monitor.Attach(c.deps.Activity)
	c.timer.Start(cfg.DurationSeconds)

	c.log.InfoContext(
		ctx,
		"session started",
		slog.Int("duration_seconds", cfg.DurationSeconds),
		slog.String("track", string(cfg.TrackID)),
		slog.Bool("premium", cfg.IsPremium),
	)

	c.publish()

	return nil
}

// RequestSkip ends a premium session early as Skipped. Free-tier sessions
// get ErrSkipNotAllowed and are left unchanged. Skipping a session that is
// not running is a no-op.
func (c *Controller) RequestSkip(ctx context.Context) error {
	if !c.cfg.IsPremium {
		return ErrSkipNotAllowed
	}

	if !c.state.Phase.Active() {
		return nil
	}

	c.finish(ctx, Skipped, ReasonSkipped)

	return nil
}

// StopSession ends the session as Completed or Failed. Only the first call
// has any effect.
func (c *Controller) StopSession(ctx context.Context, success bool, reason Reason) {
	phase := Failed
	if success {
		phase = Completed
	}

	c.finish(ctx, phase, reason)
}

// Close tears the session down when its owner goes away. A session that is
// still running fails with ReasonAbandoned.
func (c *Controller) Close(ctx context.Context) {
	c.finish(ctx, Failed, ReasonAbandoned)
}

// ActivityPolicy implements Gate.
func (c *Controller) ActivityPolicy() (Policy, bool) {
	return Policy{Exempt: c.cfg.IsPremium}, c.state.Phase.Active()
}

func (c *Controller) finish(ctx context.Context, phase Phase, reason Reason) {
	if !c.begun || c.stopped {
		return
	}

	c.stopped = true

	c.timer.Stop()
	c.monitor.Disarm()
	c.monitor.Detach()

	c.releaseAudio(ctx)

	c.state.Phase = phase
	c.state.GraceRemainingSeconds = nil

	out := Outcome{
		SessionID:        c.id,
		Phase:            phase,
		Reason:           reason,
		Success:          phase == Completed || phase == Skipped,
		RemainingSeconds: c.state.RemainingSeconds,
	}

	c.outcome = &out

	c.log.InfoContext(
		ctx,
		"session ended",
		slog.String("phase", phase.String()),
		slog.String("reason", string(reason)),
		slog.Int("remaining_seconds", out.RemainingSeconds),
	)

	c.deps.Observer.SessionEnded(out)
}

// releaseAudio stops then unloads the track. Failures are logged and never
// change the outcome.
func (c *Controller) releaseAudio(ctx context.Context) {
	h := c.handle
	c.handle = nil

	steps := []struct {
		fn   func(context.Context, audio.Handle) error
		name string
	}{
		{name: "stop", fn: c.deps.Audio.Stop},
		{name: "unload", fn: c.deps.Audio.Unload},
	}

	for _, step := range steps {
		err := c.teardown(ctx, h, step.fn)
		if err != nil {
			c.log.WarnContext(
				ctx,
				"audio teardown failed",
				slog.String("step", step.name),
				slog.Any("error", err),
			)
		}
	}
}

func (c *Controller) teardown(
	ctx context.Context,
	h audio.Handle,
	fn func(context.Context, audio.Handle) error,
) (err error) {
	ctx, cancel := context.WithTimeout(
		context.WithoutCancel(ctx),
		c.deps.TeardownTimeout,
	)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			err = errTeardownPanic.Fmt(r)
		}
	}()

	return fn(ctx, h)
}

func (c *Controller) publish() {
	c.deps.Observer.SessionUpdated(c.State())
}

func (c *Controller) onTick(remaining int) {
	if !c.state.Phase.Active() {
		return
	}

	c.state.RemainingSeconds = remaining

	c.publish()
}

func (c *Controller) onComplete() {
	c.StopSession(context.Background(), true, ReasonDurationElapsed)
}

func (c *Controller) onGraceStarted(remaining int) {
	if !c.state.Phase.Active() {
		return
	}

	c.state.Phase = GraceActive
	c.state.GraceRemainingSeconds = &remaining

	c.log.Info("left the foreground", slog.Int("grace_seconds", remaining))

	c.publish()
}

func (c *Controller) onGraceTick(remaining int) {
	if c.state.Phase != GraceActive {
		return
	}

	c.state.GraceRemainingSeconds = &remaining

	c.publish()
}

func (c *Controller) onGraceExpired() {
	c.StopSession(context.Background(), false, ReasonGraceExpired)
}

func (c *Controller) onGraceCancelled() {
	if c.state.Phase != GraceActive {
		return
	}

	c.state.Phase = Running
	c.state.GraceRemainingSeconds = nil

	c.log.Info("returned to the foreground")

	c.publish()
}
