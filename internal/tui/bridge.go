package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/focuswatch/internal/session"
)

// bridge forwards session notifications from the event loop into the
// program. tea.Program.Send returns once the program has exited, so a late
// notification never blocks the loop.
type bridge struct {
	send func(tea.Msg)
}

func (b *bridge) SessionUpdated(s session.State) {
	if b.send != nil {
		b.send(StateMsg{State: s})
	}
}

func (b *bridge) SessionEnded(o session.Outcome) {
	if b.send != nil {
		b.send(OutcomeMsg{Outcome: o})
	}
}
