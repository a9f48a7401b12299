package tui

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	skip  key.Binding
	quit  key.Binding
	enter key.Binding
}

var defaultKeymap = keymap{
	skip: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "skip session"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "give up"),
	),
	enter: key.NewBinding(
		key.WithKeys("enter", "q", "esc", "ctrl+c"),
		key.WithHelp("enter", "exit"),
	),
}
