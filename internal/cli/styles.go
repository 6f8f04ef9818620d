package cli

import "github.com/charmbracelet/lipgloss"

// theme holds the styles used for terminal output.
type theme struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Cell   lipgloss.Style
	Muted  lipgloss.Style
	Border lipgloss.Style
	OK     lipgloss.Style
}

func defaultTheme() theme {
	accent := lipgloss.Color("#7aa2f7")
	text := lipgloss.Color("#c0caf5")
	muted := lipgloss.Color("#565f89")

	return theme{
		Title:  lipgloss.NewStyle().Foreground(accent).Bold(true),
		Header: lipgloss.NewStyle().Foreground(accent).Bold(true).Padding(0, 1),
		Cell:   lipgloss.NewStyle().Foreground(text).Padding(0, 1),
		Muted:  lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		Border: lipgloss.NewStyle().Foreground(muted),
		OK:     lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a")).Bold(true),
	}
}
