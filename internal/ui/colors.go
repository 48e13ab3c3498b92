// Package ui provides terminal UI components and styling
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSuccess   = lipgloss.Color("82")  // Green
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorError     = lipgloss.Color("196") // Red
	ColorInfo      = lipgloss.Color("87")  // Cyan
	ColorMuted     = lipgloss.Color("245") // Gray
	ColorHighlight = lipgloss.Color("212") // Pink
)

// Text styles
var (
	StyleBold = lipgloss.NewStyle().Bold(true)

	StylePrimary   = lipgloss.NewStyle().Foreground(ColorPrimary)
	StyleSuccess   = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleWarning   = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleError     = lipgloss.NewStyle().Foreground(ColorError)
	StyleInfo      = lipgloss.NewStyle().Foreground(ColorInfo)
	StyleMuted     = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleHighlight = lipgloss.NewStyle().Foreground(ColorHighlight)

	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	StyleSubtitle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)
)

// Task status indicators
var (
	StatusRunning   = StyleInfo.Render("◐")
	StatusCompleted = StyleSuccess.Render("●")
	StatusFailed    = StyleError.Render("✗")
)

// BoxStyle frames a block of text
var BoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorMuted).
	Padding(0, 1)

// Truncate shortens s to at most maxLen runes, marking the cut with "..."
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
