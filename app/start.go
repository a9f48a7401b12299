package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focuswatch/internal/audio"
	"github.com/ayoisaiah/focuswatch/internal/clock"
	"github.com/ayoisaiah/focuswatch/internal/config"
	"github.com/ayoisaiah/focuswatch/internal/host"
	"github.com/ayoisaiah/focuswatch/internal/notify"
	"github.com/ayoisaiah/focuswatch/internal/pathutil"
	"github.com/ayoisaiah/focuswatch/internal/profile"
	"github.com/ayoisaiah/focuswatch/internal/session"
	"github.com/ayoisaiah/focuswatch/internal/status"
	"github.com/ayoisaiah/focuswatch/internal/track"
	"github.com/ayoisaiah/focuswatch/internal/tui"
	"github.com/ayoisaiah/focuswatch/internal/ui"
	"github.com/ayoisaiah/focuswatch/report"
)

// loadStartConfig merges the config file, environment and flags. The
// first-run prompt offers the tracks in catalog.
func loadStartConfig(
	ctx *cli.Context,
	catalog *track.Catalog,
) (*config.Config, []string, error) {
	ids, err := catalog.List()
	if err != nil {
		return nil, nil, err
	}

	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}

	configPath := pathutil.ConfigFilePath()

	cfg, err := config.New(
		config.WithEnv(),
		config.WithPromptConfig(configPath, names),
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, nil, err
	}

	return cfg, names, nil
}

// loadTier reads the profile and keeps the database open, which marks this
// process as the running instance until the returned store is closed.
func loadTier() (*profile.Store, bool, error) {
	store, err := profile.Open(pathutil.DBFilePath())
	if err != nil {
		return nil, false, err
	}

	p, err := store.Load()
	if err != nil {
		_ = store.Close()
		return nil, false, err
	}

	return store, p.IsPremium(time.Now()), nil
}

// startAction runs a focus session in the terminal.
func startAction(ctx *cli.Context) error {
	catalog := track.NewCatalog(pathutil.TracksDir())

	cfg, tracks, err := loadStartConfig(ctx, catalog)
	if err != nil {
		return err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	store, premium, err := loadTier()
	if err != nil {
		return err
	}

	defer store.Close()

	speaker := audio.NewSpeaker()
	defer speaker.Close()

	runCtx, cancel := context.WithCancel(contextOf(ctx))
	defer cancel()

	// The loop outlives runCtx so an interrupted session can still be
	// closed and reported below.
	loopCtx, stopLoop := context.WithCancel(context.Background())
	defer stopLoop()

	loop := clock.NewLoop()

	go func() {
		_ = loop.Run(loopCtx)
	}()

	logger := slog.Default()

	hooks := &notify.Hooks{
		Cmd:    cfg.Session.Cmd,
		Logger: logger,
	}

	if cfg.Notifications.Enabled {
		hooks.Notifier = notify.Desktop{}
	}

	h := host.New(loop, host.Options{
		Catalog: catalog,
		Audio:   speaker,
		Logger:  logger,
		OnEnd:   hooks.SessionEnded,
	})

	m, err := tui.Run(runCtx, tui.Options{
		Host:   h,
		Logger: logger,
		Styles: tui.NewStyles(
			cfg.Display.Color,
			cfg.Display.GraceColor,
			cfg.Display.DarkTheme,
		),
		Observers: []session.Observer{
			&status.Recorder{
				Path:   pathutil.StatusFilePath(),
				Logger: logger,
			},
		},
		Tracks:      tracks,
		Track:       cfg.Session.Track,
		Duration:    cfg.Session.Duration,
		Preselected: cfg.Session.Preselected,
		Premium:     premium,
		Debug:       cfg.Env.Debug,
	})

	// The view can exit without closing the session, e.g. on a terminal
	// error. A session must never outlive it.
	_ = h.Close(context.Background())

	h.Wait()

	if out, ok := h.Outcome(context.Background()); ok {
		report.Outcome(out)
		return nil
	}

	if err != nil {
		return err
	}

	return m.Err()
}
