// Package cli renders faseed's terminal output with lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Status icons prefixed to one-line messages.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	InfoIcon    = "ℹ️"
	SeedIcon    = "🌱"
)

var (
	accentColor = lipgloss.Color("#4ECDC4")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(accentColor).MarginBottom(1)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE66D"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#95E1D3"))

	summaryStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(0, 2)

	// TableHeaderStyle styles table column headers. It has no border or
	// padding so a tabwriter can still align the columns.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("86"))
)

func line(style lipgloss.Style, icon, message string) string {
	return style.Render(icon + " " + message)
}

// FormatSuccess reports a completed step.
func FormatSuccess(message string) string { return line(successStyle, SuccessIcon, message) }

// FormatError reports a failed check.
func FormatError(message string) string { return line(errorStyle, ErrorIcon, message) }

// FormatWarning flags something the user should double-check.
func FormatWarning(message string) string { return line(warningStyle, WarningIcon, message) }

// FormatInfo is for neutral notices such as empty results.
func FormatInfo(message string) string { return line(infoStyle, InfoIcon, message) }

// FormatTitle renders a section heading.
func FormatTitle(title string) string { return line(titleStyle, SeedIcon, title) }

// RenderBox draws a seed summary: the title on top, content lines below.
func RenderBox(title, content string) string {
	return summaryStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.UnsetMargins().Render(title),
		content,
	))
}
