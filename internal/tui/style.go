package tui

import "github.com/charmbracelet/lipgloss"

const (
	padding  = 2
	maxWidth = 80
)

// Styles are the lipgloss styles of the session view.
type Styles struct {
	Title   lipgloss.Style
	Clock   lipgloss.Style
	Hint    lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
	Badge   lipgloss.Style
	Base    lipgloss.Style
}

// NewStyles derives the styles from the main and grace colours.
func NewStyles(main, grace string, dark bool) Styles {
	hint := lipgloss.Color("#6C6C6C")
	if dark {
		hint = lipgloss.Color("#A8A8A8")
	}

	return Styles{
		Base:  lipgloss.NewStyle().Padding(1, padding),
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(main)),
		Clock: lipgloss.NewStyle().Bold(true),
		Hint:  lipgloss.NewStyle().Foreground(hint),
		Warning: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(grace)),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(main)),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color(grace)),
		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color(main)).
			Padding(0, 1),
	}
}
