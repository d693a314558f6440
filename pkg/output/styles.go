package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors used by the list and check commands.
var (
	HeadingColor = lipgloss.AdaptiveColor{Light: "#1A1A2E", Dark: "#E0E0FF"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#8A8A8A"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#0F7B0F", Dark: "#4EC94E"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#9A6700", Dark: "#E3B341"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#CF222E", Dark: "#FF6A69"}
	AccentColor  = lipgloss.AdaptiveColor{Light: "#0550AE", Dark: "#79B8FF"}
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// Rule names and glob patterns
	RuleNameStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	GlobStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)
)
