package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/focuswatch/internal/activity"
	"github.com/ayoisaiah/focuswatch/internal/audio"
	"github.com/ayoisaiah/focuswatch/internal/clock"
	"github.com/ayoisaiah/focuswatch/internal/track"
)

var errBoom = errors.New("boom")

type fakeCatalog struct {
	assets map[track.ID]audio.Asset
}

func (c *fakeCatalog) Resolve(id track.ID) (audio.Asset, error) {
	a, ok := c.assets[id]
	if !ok {
		return audio.Asset{}, track.ErrNotFound.Fmt(id)
	}

	return a, nil
}

type fakeHandle struct {
	asset audio.Asset
}

func (h *fakeHandle) Asset() audio.Asset {
	return h.asset
}

type fakeEngine struct {
	loadErr     error
	stopErr     error
	unloadErr   error
	panicOnStop bool
	loaded      []audio.Asset
	opts        []audio.Options
	stopped     []audio.Handle
	unloaded    []audio.Handle
}

func (e *fakeEngine) Load(
	_ context.Context,
	asset audio.Asset,
	opts audio.Options,
) (audio.Handle, error) {
	if e.loadErr != nil {
		return nil, e.loadErr
	}

	e.loaded = append(e.loaded, asset)
	e.opts = append(e.opts, opts)

	return &fakeHandle{asset: asset}, nil
}

func (e *fakeEngine) Stop(_ context.Context, h audio.Handle) error {
	e.stopped = append(e.stopped, h)

	if e.panicOnStop {
		panic("device gone")
	}

	return e.stopErr
}

func (e *fakeEngine) Unload(_ context.Context, h audio.Handle) error {
	e.unloaded = append(e.unloaded, h)

	return e.unloadErr
}

type recorder struct {
	states   []State
	outcomes []Outcome
}

func (r *recorder) SessionUpdated(s State) {
	r.states = append(r.states, s)
}

func (r *recorder) SessionEnded(o Outcome) {
	r.outcomes = append(r.outcomes, o)
}

type harness struct {
	clock  *clock.Manual
	feed   *activity.Feed
	engine *fakeEngine
	rec    *recorder
	ctrl   *Controller
}

const focusTrack track.ID = "focus1"

func newHarness() *harness {
	h := &harness{
		clock:  clock.NewManual(),
		feed:   activity.NewFeed(),
		engine: &fakeEngine{},
		rec:    &recorder{},
	}

	h.ctrl = NewController(Deps{
		Scheduler: h.clock,
		Catalog: &fakeCatalog{
			assets: map[track.ID]audio.Asset{
				focusTrack: {
					ID:     string(focusTrack),
					Path:   "/tracks/focus1.ogg",
					Format: audio.OGG,
				},
			},
		},
		Audio:    h.engine,
		Activity: h.feed,
		Observer: h.rec,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return h
}

func (h *harness) begin(t *testing.T, cfg Config) {
	t.Helper()

	require.NoError(t, h.ctrl.Begin(context.Background(), cfg))
}

func (h *harness) advance(seconds int) {
	h.clock.Advance(time.Duration(seconds) * time.Second)
}

func (h *harness) phase() Phase {
	return h.ctrl.State().Phase
}

func minutes(n int) int {
	return n * 60
}
