package cmd

import (
	"charm.land/lipgloss/v2"
)

// Shared styles for command output.
var (
	styleSuccess = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#22C55E")) // Green

	styleError = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F43F5E")) // Rose

	styleWarn = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F97316")) // Orange

	styleDim = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8")) // Slate

	styleHeading = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6")) // Vivid Purple
)
