// Package tui provides an interactive terminal browser for pokescript.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#FF6B6B") // Red - titles, errors
	ColorSecondary = lipgloss.Color("#4ecdc4") // Teal - forms, subtitles
	ColorAccent    = lipgloss.Color("#ffe66d") // Yellow - selection, shiny
	ColorMuted     = lipgloss.Color("#666666") // Gray - help text
	ColorText      = lipgloss.Color("#f1faee") // Light text
	ColorBg        = lipgloss.Color("#1a1a2e") // Dark background
	ColorBgAlt     = lipgloss.Color("#2d3436") // Alt background
	ColorBorder    = lipgloss.Color("#3d5a80") // Border color
)

// List styles
var (
	ListStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderRight(true).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	ListItemStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, 1)

	ListItemActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent).
				Background(ColorBgAlt).
				Padding(0, 1)

	ListNumberStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Sprite pane styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBg).
			Padding(0, 1)

	ShinyStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	FormStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Italic(true)

	SearchBoxStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			MaxWidth(listWidth - 2)
)

// Status styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	CountStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)
)
