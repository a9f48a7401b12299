package tui

import (
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/focuswatch/internal/activity"
	"github.com/ayoisaiah/focuswatch/internal/session"
)

const skipNotAllowedNotice = "Skipping is available on the premium tier"

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.opts.Debug {
		m.opts.Logger.Debug("tea message", slog.String("msg", spew.Sdump(msg)))
	}

	switch msg := msg.(type) {
	case tea.FocusMsg:
		return m, m.activity(activity.Foreground)

	case tea.BlurMsg:
		return m, m.activity(activity.Background)

	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - padding*2 - 4
		if m.progress.Width > maxWidth {
			m.progress.Width = maxWidth
		}

		return m, nil

	case StateMsg:
		m.state = msg.State
		if m.view == starting {
			m.view = running
		}

		return m, nil

	case OutcomeMsg:
		out := msg.Outcome
		m.outcome = &out
		m.state.Phase = out.Phase
		m.state.RemainingSeconds = out.RemainingSeconds
		m.state.GraceRemainingSeconds = nil
		m.view = ended

		return m, nil

	case startedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.view = ended
		}

		return m, nil

	case skipMsg:
		if errors.Is(msg.err, session.ErrSkipNotAllowed) {
			m.notice = skipNotAllowedNotice
		} else if msg.err != nil {
			m.notice = msg.err.Error()
		}

		return m, nil
	}

	if m.view == selecting && m.form != nil {
		return m.updateForm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyPress(keyMsg)
	}

	return m, nil
}

func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m, m.start()
	case huh.StateAborted:
		return m, tea.Quit
	}

	return m, cmd
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.view {
	case ended:
		if key.Matches(msg, m.keys.enter) {
			return m, tea.Quit
		}

	case starting, running:
		switch {
		case key.Matches(msg, m.keys.skip):
			m.notice = ""
			return m, m.skip()

		case key.Matches(msg, m.keys.quit):
			return m, tea.Sequence(m.closeSession(), tea.Quit)
		}
	}

	return m, nil
}
