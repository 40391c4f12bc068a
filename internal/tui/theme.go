package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Card   lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:  lipgloss.NewStyle().Bold(true),
		Label:  lipgloss.NewStyle().Faint(true),
		Help:   lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("36")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("161")),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
	}
}
