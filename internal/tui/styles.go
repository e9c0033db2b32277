// Package tui provides the interactive chat interface for openchat.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("12")
	colorAccent  = lipgloss.Color("10")
	colorError   = lipgloss.Color("9")
	colorDim     = lipgloss.Color("240")
	colorText    = lipgloss.Color("252")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)

	userLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	assistantLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary)

	systemLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorError)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	loadingStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)

	attachmentStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)
