package theme

import (
	"github.com/charmbracelet/lipgloss"

	"jobtrack/internal/domain"
)

// Main UI styles
var (
	CaptionStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSubtle)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Footer styles
var (
	HintKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHintKey).
			Bold(true)

	HintLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)

// Spinner style
var SpinnerStyle = lipgloss.NewStyle().
	Foreground(ColorSpinner)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// Success style
var SuccessStyle = lipgloss.NewStyle().
	Foreground(ColorSuccess)

// StatusStyle returns the style for an application status chip
func StatusStyle(status domain.Status) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(StatusColor(status))
}

// CountStyle returns the style for a KPI count in the stats row
func CountStyle(status domain.Status) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(StatusColor(status)).Bold(true)
}
