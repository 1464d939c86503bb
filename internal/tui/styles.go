// Copyright (c) 2026 Wondertext Team
// Wondertext - text utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui provides the interactive terminal editor for Wondertext.
// This file defines the shared lipgloss styles used by the editor, the
// Morse reference and the language picker.
package tui // import "github.com/wondertext/wondertext/internal/tui"

import "github.com/charmbracelet/lipgloss"

// colorPalette defines the core colors used in the TUI.
const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // Teal/cyan
	colorSpecial   = lipgloss.Color("208") // Orange
	colorError     = lipgloss.Color("196") // Bright red
	colorSuccess   = lipgloss.Color("40")  // Green
	colorWhite     = lipgloss.Color("231")
	colorButton    = lipgloss.Color("237") // Dark gray
)

var (
	helpStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	specialStyle = lipgloss.NewStyle().Foreground(colorSpecial)

	mainTitleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			Padding(1, 3, 0, 3)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			Padding(1, 2)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorSubtle).
			Padding(0, 3)

	itemStyle         = lipgloss.NewStyle()
	selectedItemStyle = lipgloss.NewStyle().Foreground(colorHighlight)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 1)

	focusedPaneStyle = paneStyle.
				BorderForeground(colorHighlight)

	paneTitleStyle = lipgloss.NewStyle().Bold(true)

	// Tool buttons
	buttonStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorButton).
			Padding(0, 1).
			MarginRight(1)

	activeButtonStyle = buttonStyle.
				Background(colorHighlight).
				Underline(true)

	lastToolButtonStyle = buttonStyle.
				Foreground(colorHighlight)

	disabledButtonStyle = buttonStyle.
				Foreground(colorSubtle).
				Strikethrough(true)

	groupLabelStyle = lipgloss.NewStyle().
			Foreground(colorSubtle).
			Width(12)

	// Category tabs
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(colorSubtle)
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(colorWhite).Background(colorHighlight)

	patternStyle = lipgloss.NewStyle().Foreground(colorSpecial).Bold(true)

	// Status line
	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Italic(true)
)
