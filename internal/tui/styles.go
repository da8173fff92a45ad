package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorPrimary   = lipgloss.Color("12")  // bright blue
	colorHighlight = lipgloss.Color("11")  // bright yellow
	colorDim       = lipgloss.Color("240") // gray

	styleCount = lipgloss.NewStyle().
			Foreground(colorDim).
			Bold(true)

	stylePrompt = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleKeys = lipgloss.NewStyle().
			Foreground(colorHighlight)

	styleSpinner = lipgloss.NewStyle().
			Foreground(colorPrimary)
)
