package ui

import "github.com/charmbracelet/lipgloss"

// Styles defines all lipgloss styles used in the CLI.
var Styles = struct {
	Bold      lipgloss.Style
	Assistant lipgloss.Style
	Sponsored lipgloss.Style
	Dim       lipgloss.Style
}{
	Bold: lipgloss.NewStyle().Bold(true),

	Assistant: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("86")).
		Padding(0, 1).
		Width(72),

	Sponsored: lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Bold(true),

	Dim: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}
