// Package render draws datasets, reports and notices for the terminal.
package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Semantic colors
var (
	Primary     = lipgloss.Color("#101F38")
	Accent      = lipgloss.Color("#2563eb")
	MutedColor  = lipgloss.Color("#6b7280")
	BorderColor = lipgloss.Color("#d1d5db")
	Destructive = lipgloss.Color("#dc2626")
	Success     = lipgloss.Color("#16a34a")
	Warning     = lipgloss.Color("#d97706")
	Info        = lipgloss.Color("#2563eb")
)

// Styles holds every style the renderers use.
type Styles struct {
	Color bool

	Title   lipgloss.Style
	Section lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	Card     lipgloss.Style
	Selected lipgloss.Style
	Divider  lipgloss.Style
}

// NewStyles returns the default palette, or plain text styles when color is false.
func NewStyles(color bool) Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return Styles{
			Title:    plain.Bold(true),
			Section:  plain.Bold(true),
			Body:     plain,
			Muted:    plain,
			Bold:     plain.Bold(true),
			Success:  plain,
			Error:    plain,
			Warning:  plain,
			Info:     plain,
			Card:     plain.Border(lipgloss.NormalBorder()).Padding(0, 1),
			Selected: plain.Bold(true),
			Divider:  plain,
		}
	}

	return Styles{
		Color: true,

		Title: lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true),

		Section: lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			Underline(true),

		Body:  lipgloss.NewStyle(),
		Muted: lipgloss.NewStyle().Foreground(MutedColor),
		Bold:  lipgloss.NewStyle().Bold(true),

		Success: lipgloss.NewStyle().Foreground(Success).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(Destructive).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(Warning),
		Info:    lipgloss.NewStyle().Foreground(Info),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1),

		Selected: lipgloss.NewStyle().Foreground(Accent).Bold(true),
		Divider:  lipgloss.NewStyle().Foreground(BorderColor),
	}
}

// Notice renders a one-line status message. level is one of info, success,
// warning or error.
func (s Styles) Notice(level, text string) string {
	switch level {
	case "success":
		return s.Success.Render("✔ " + text)
	case "warning":
		return s.Warning.Render("! " + text)
	case "error":
		return s.Error.Render("✖ " + text)
	default:
		return s.Info.Render("ℹ " + text)
	}
}

// Empty is the notice shown in place of a table without rows.
func (s Styles) Empty(msg string) string {
	return s.Notice("info", msg)
}
