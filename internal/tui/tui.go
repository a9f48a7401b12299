// Package tui is the terminal interface of a focus session: track and
// duration selection, the countdown view and the outcome screen.
package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/focuswatch/internal/activity"
	"github.com/ayoisaiah/focuswatch/internal/config"
	"github.com/ayoisaiah/focuswatch/internal/session"
	"github.com/ayoisaiah/focuswatch/internal/timeutil"
	"github.com/ayoisaiah/focuswatch/internal/track"
)

// Host runs sessions for the view. Its methods block, so the model only
// calls them from commands.
type Host interface {
	Start(ctx context.Context, cfg session.Config, observers ...session.Observer) (string, error)
	Skip(ctx context.Context) error
	Activity(ctx context.Context, t activity.Transition) error
	Close(ctx context.Context) error
}

// Options configure a Model.
type Options struct {
	Host   Host
	Logger *slog.Logger
	Styles Styles
	// Observers also receive the session's updates, after the view.
	Observers []session.Observer
	Tracks    []string
	Track     string
	// Duration is the preselected length in minutes.
	Duration int
	// Preselected skips the selection form.
	Preselected bool
	Premium     bool
	Debug       bool
}

type viewState int

const (
	selecting viewState = iota
	starting
	running
	ended
)

type (
	// StateMsg carries a session update into the program.
	StateMsg struct{ State session.State }

	// OutcomeMsg carries the terminal outcome into the program.
	OutcomeMsg struct{ Outcome session.Outcome }

	startedMsg struct{ err error }

	skipMsg struct{ err error }
)

type choice struct {
	track    string
	duration int
}

// Model is the bubbletea model of one focus session.
type Model struct {
	ctx      context.Context
	err      error
	form     *huh.Form
	choice   *choice
	bridge   *bridge
	outcome  *session.Outcome
	notice   string
	help     help.Model
	opts     Options
	progress progress.Model
	cfg      session.Config
	state    session.State
	keys     keymap
	view     viewState
}

// NewModel returns the model for opts. ctx bounds every host call.
func NewModel(ctx context.Context, opts Options) *Model {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	m := &Model{
		ctx:    ctx,
		opts:   opts,
		keys:   defaultKeymap,
		help:   help.New(),
		bridge: &bridge{},
		choice: &choice{
			duration: opts.Duration,
			track:    opts.Track,
		},
		progress: progress.New(
			progress.WithDefaultGradient(),
			progress.WithoutPercentage(),
		),
	}

	if !opts.Preselected {
		m.form = newSelectionForm(m.choice, opts.Tracks)
	}

	return m
}

func newSelectionForm(c *choice, tracks []string) *huh.Form {
	fields := []huh.Field{
		huh.NewSelect[int]().
			Title("Session length").
			Options(config.DurationOptions(c.duration)...).
			Value(&c.duration),
	}

	if len(tracks) > 0 {
		fields = append(fields, huh.NewSelect[string]().
			Title("Background track").
			Options(config.TrackOptions(tracks, c.track)...).
			Value(&c.track),
		)
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(true)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.form != nil {
		return m.form.Init()
	}

	return m.start()
}

// Outcome returns the outcome shown by the model, if the session ended.
func (m *Model) Outcome() (session.Outcome, bool) {
	if m.outcome == nil {
		return session.Outcome{}, false
	}

	return *m.outcome, true
}

// Err returns the error that prevented the session from starting, if any.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) start() tea.Cmd {
	m.view = starting
	m.cfg = session.Config{
		TrackID:         track.ID(m.choice.track),
		DurationSeconds: timeutil.MinutesToSeconds(m.choice.duration),
		IsPremium:       m.opts.Premium,
	}
	m.state = session.State{RemainingSeconds: m.cfg.DurationSeconds}

	cfg := m.cfg
	observers := append([]session.Observer{m.bridge}, m.opts.Observers...)

	return func() tea.Msg {
		_, err := m.opts.Host.Start(m.ctx, cfg, observers...)
		return startedMsg{err: err}
	}
}

func (m *Model) skip() tea.Cmd {
	return func() tea.Msg {
		return skipMsg{err: m.opts.Host.Skip(m.ctx)}
	}
}

func (m *Model) closeSession() tea.Cmd {
	return func() tea.Msg {
		if err := m.opts.Host.Close(m.ctx); err != nil {
			m.opts.Logger.Warn("unable to close session", slog.Any("error", err))
		}

		return nil
	}
}

func (m *Model) activity(t activity.Transition) tea.Cmd {
	return func() tea.Msg {
		if err := m.opts.Host.Activity(m.ctx, t); err != nil {
			m.opts.Logger.Warn(
				"unable to deliver activity",
				slog.String("transition", string(t)),
				slog.Any("error", err),
			)
		}

		return nil
	}
}

// Run shows the model until the user leaves it. It returns the model so the
// caller can read the outcome.
func Run(ctx context.Context, opts Options) (*Model, error) {
	m := NewModel(ctx, opts)

	p := tea.NewProgram(
		m,
		tea.WithContext(ctx),
		tea.WithReportFocus(),
		tea.WithAltScreen(),
	)

	m.bridge.send = p.Send

	if _, err := p.Run(); err != nil {
		return m, err
	}

	return m, nil
}
