package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/focuswatch/internal/session"
	"github.com/ayoisaiah/focuswatch/internal/timeutil"
)

// View implements tea.Model.
func (m *Model) View() string {
	var body string

	switch m.view {
	case selecting:
		body = m.form.View()
	case starting, running:
		body = m.sessionView()
	case ended:
		body = m.outcomeView()
	}

	return m.opts.Styles.Base.Render(body)
}

func (m *Model) header() string {
	title := fmt.Sprintf(
		"Focus · %d min · %s",
		m.cfg.DurationSeconds/60,
		m.cfg.TrackID,
	)

	s := m.opts.Styles.Title.Render(title)
	if m.cfg.IsPremium {
		s += " " + m.opts.Styles.Badge.Render("premium")
	}

	return s
}

func (m *Model) percentElapsed() float64 {
	if m.cfg.DurationSeconds <= 0 {
		return 0
	}

	elapsed := m.cfg.DurationSeconds - m.state.RemainingSeconds

	return float64(elapsed) / float64(m.cfg.DurationSeconds)
}

func (m *Model) sessionView() string {
	var s strings.Builder

	s.WriteString(m.header())
	s.WriteString("\n\n")
	s.WriteString(m.opts.Styles.Clock.Render(timeutil.Clock(m.state.RemainingSeconds)))
	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(m.percentElapsed()))
	s.WriteString("\n\n")

	if n, ok := m.state.GraceRemaining(); ok {
		s.WriteString(m.opts.Styles.Warning.Render(
			fmt.Sprintf("Come back within %ds or the session fails", n),
		))
		s.WriteString("\n\n")
	} else if !m.cfg.IsPremium {
		s.WriteString(m.opts.Styles.Hint.Render(
			fmt.Sprintf(
				"Leaving this window for more than %ds ends the session",
				session.GraceWindowSeconds,
			),
		))
		s.WriteString("\n\n")
	}

	if m.notice != "" {
		s.WriteString(m.opts.Styles.Hint.Render(m.notice))
		s.WriteString("\n\n")
	}

	s.WriteString(m.help.ShortHelpView([]key.Binding{
		m.keys.skip,
		m.keys.quit,
	}))

	return s.String()
}

func (m *Model) outcomeView() string {
	var s strings.Builder

	if m.cfg.TrackID != "" {
		s.WriteString(m.header())
		s.WriteString("\n\n")
	}

	switch {
	case m.outcome != nil && m.outcome.Success:
		s.WriteString(m.opts.Styles.Success.Render(m.outcome.Message()))
	case m.outcome != nil:
		s.WriteString(m.opts.Styles.Failure.Render(m.outcome.Message()))
	case m.err != nil:
		s.WriteString(m.opts.Styles.Failure.Render(m.err.Error()))
	}

	s.WriteString("\n\n")
	s.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.enter}))

	return s.String()
}
