package host

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/focuswatch/internal/activity"
	"github.com/ayoisaiah/focuswatch/internal/audio"
	"github.com/ayoisaiah/focuswatch/internal/clock"
	"github.com/ayoisaiah/focuswatch/internal/session"
	"github.com/ayoisaiah/focuswatch/internal/track"
)

type catalog struct{}

func (catalog) Resolve(id track.ID) (audio.Asset, error) {
	if id != "rain" {
		return audio.Asset{}, track.ErrNotFound.Fmt(id)
	}

	return audio.Asset{ID: "rain", Path: "/tracks/rain.ogg", Format: audio.OGG}, nil
}

type handle struct{ asset audio.Asset }

func (h handle) Asset() audio.Asset { return h.asset }

type engine struct{}

func (engine) Load(_ context.Context, a audio.Asset, _ audio.Options) (audio.Handle, error) {
	return handle{asset: a}, nil
}

func (engine) Stop(context.Context, audio.Handle) error { return nil }

func (engine) Unload(context.Context, audio.Handle) error { return nil }

type recorder struct {
	id       string
	states   []session.State
	outcomes []session.Outcome
}

func (r *recorder) BindSession(id string, _ session.Config) { r.id = id }

func (r *recorder) SessionUpdated(s session.State) { r.states = append(r.states, s) }

func (r *recorder) SessionEnded(o session.Outcome) { r.outcomes = append(r.outcomes, o) }

type fixture struct {
	ctx    context.Context
	loop   *clock.Loop
	manual *clock.Manual
	host   *Host
	mu     sync.Mutex
	ended  []session.Outcome
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())

	f := &fixture{
		ctx:    ctx,
		loop:   clock.NewLoop(),
		manual: clock.NewManual(),
	}

	f.host = New(f.loop, Options{
		Catalog:   catalog{},
		Audio:     engine{},
		Scheduler: f.manual,
		OnEnd: func(_ context.Context, o session.Outcome) {
			f.mu.Lock()
			defer f.mu.Unlock()

			f.ended = append(f.ended, o)
		},
	})

	go func() {
		_ = f.loop.Run(ctx)
	}()

	t.Cleanup(func() {
		cancel()
		<-f.loop.Done()
	})

	return f
}

func (f *fixture) advance(t *testing.T, seconds int) {
	t.Helper()

	err := f.loop.Do(f.ctx, func() {
		f.manual.Advance(time.Duration(seconds) * time.Second)
	})
	require.NoError(t, err)
}

func (f *fixture) endedOutcomes() []session.Outcome {
	f.host.Wait()

	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]session.Outcome(nil), f.ended...)
}

func freeSession() session.Config {
	return session.Config{TrackID: "rain", DurationSeconds: 1800}
}

func TestHostRunsSessionToGraceExpiry(t *testing.T) {
	f := newFixture(t)
	rec := &recorder{}

	id, err := f.host.Start(f.ctx, freeSession(), rec)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	f.advance(t, 3)
	require.NoError(t, f.host.Activity(f.ctx, activity.Background))
	f.advance(t, session.GraceWindowSeconds)

	out, ok := f.host.Outcome(f.ctx)
	require.True(t, ok)

	assert.Equal(t, id, out.SessionID)
	assert.Equal(t, id, rec.id)
	assert.Equal(t, session.ReasonGraceExpired, out.Reason)
	assert.Equal(t, 1800-3-session.GraceWindowSeconds, out.RemainingSeconds)
	assert.Equal(t, []session.Outcome{out}, rec.outcomes)
	assert.Equal(t, []session.Outcome{out}, f.endedOutcomes())
}

func TestHostAllowsOneActiveSession(t *testing.T) {
	f := newFixture(t)

	_, err := f.host.Start(f.ctx, freeSession())
	require.NoError(t, err)

	_, err = f.host.Start(f.ctx, freeSession())
	assert.ErrorIs(t, err, ErrSessionActive)

	require.NoError(t, f.host.Close(f.ctx))

	out, ok := f.host.Outcome(f.ctx)
	require.True(t, ok)
	assert.Equal(t, session.ReasonAbandoned, out.Reason)

	_, err = f.host.Start(f.ctx, freeSession())
	assert.NoError(t, err)
}

func TestHostSkip(t *testing.T) {
	f := newFixture(t)

	assert.ErrorIs(t, f.host.Skip(f.ctx), ErrNoSession)

	cfg := freeSession()
	cfg.IsPremium = true

	_, err := f.host.Start(f.ctx, cfg)
	require.NoError(t, err)

	f.advance(t, 60)
	require.NoError(t, f.host.Skip(f.ctx))

	out, ok := f.host.Outcome(f.ctx)
	require.True(t, ok)
	assert.Equal(t, session.Skipped, out.Phase)
	assert.Equal(t, 1740, out.RemainingSeconds)
}

func TestHostRejectedConfigLeavesNoSession(t *testing.T) {
	f := newFixture(t)

	_, err := f.host.Start(f.ctx, session.Config{TrackID: "rain"})
	assert.ErrorIs(t, err, session.ErrInvalidDuration)

	assert.ErrorIs(t, f.host.Skip(f.ctx), ErrNoSession)
	assert.Empty(t, f.endedOutcomes())
}

func TestHostTrackFailureEndsSession(t *testing.T) {
	f := newFixture(t)

	_, err := f.host.Start(f.ctx, session.Config{TrackID: "thunder", DurationSeconds: 60})
	assert.ErrorIs(t, err, session.ErrTrackUnavailable)

	ended := f.endedOutcomes()
	require.Len(t, ended, 1)
	assert.Equal(t, session.ReasonTrackUnavailable, ended[0].Reason)
}

func TestHostAfterLoopStops(t *testing.T) {
	loop := clock.NewLoop()
	h := New(loop, Options{Catalog: catalog{}, Audio: engine{}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_ = loop.Run(ctx)

	_, err := h.Start(context.Background(), freeSession())
	assert.ErrorIs(t, err, clock.ErrLoopClosed)
}
