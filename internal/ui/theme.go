package ui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title     lipgloss.Style
	TabActive lipgloss.Style
	TabIdle   lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Selected  lipgloss.Style
	Date      lipgloss.Style
	Hint      lipgloss.Style
	Error     lipgloss.Style
	Cancelled lipgloss.Style
}

var DefaultTheme = Theme{
	Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	TabActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89B4FA")).Underline(true),
	TabIdle:   lipgloss.NewStyle().Faint(true),
	Label:     lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#89B4FA")),
	Value:     lipgloss.NewStyle().Foreground(lipgloss.Color("#F2CDCD")),
	Selected:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F9E2AF")),
	Date:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89B4FA")),
	Hint:      lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#CBA6F7")),
	Error:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
	Cancelled: lipgloss.NewStyle().Strikethrough(true).Faint(true),
}
