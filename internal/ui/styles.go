package ui

import "github.com/charmbracelet/lipgloss"

var (
	Accent  = lipgloss.Color("#06B6D4")
	Success = lipgloss.Color("#22C55E")
	Warning = lipgloss.Color("#EAB308")
	Danger  = lipgloss.Color("#EF4444")
	Muted   = lipgloss.Color("#6B7280")
)

// Styles is the small palette used by prompts, the spinner and the summary.
type Styles struct {
	Title    lipgloss.Style
	Accent   lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
}

// DefaultStyles returns the colored palette.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Accent:   lipgloss.NewStyle().Foreground(Accent),
		Success:  lipgloss.NewStyle().Foreground(Success).Bold(true),
		Warning:  lipgloss.NewStyle().Foreground(Warning),
		Error:    lipgloss.NewStyle().Foreground(Danger),
		Muted:    lipgloss.NewStyle().Foreground(Muted),
		Selected: lipgloss.NewStyle().Foreground(Accent).Bold(true),
	}
}

// PlainStyles renders everything unstyled, for pipes and tests.
func PlainStyles() Styles {
	s := lipgloss.NewStyle()
	return Styles{Title: s, Accent: s, Success: s, Warning: s, Error: s, Muted: s, Selected: s}
}
