package theme

import (
	"github.com/charmbracelet/lipgloss"

	"jobtrack/internal/domain"
)

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Application status colors
const (
	ColorAccepted   Color = "2"   // Green
	ColorApplied    Color = "63"  // Indigo
	ColorInProgress Color = "214" // Orange
	ColorInterview  Color = "33"  // Blue
	ColorRejected   Color = "1"   // Red
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorHintKey Color = "226" // Yellow - footer shortcut keys
	ColorSpinner Color = "205" // Pink
	ColorSuccess Color = "42"  // Green - confirmations
)

// StatusColor returns the display color for an application status
func StatusColor(status domain.Status) Color {
	switch status {
	case domain.StatusApplied:
		return ColorApplied
	case domain.StatusInProgress:
		return ColorInProgress
	case domain.StatusInterview:
		return ColorInterview
	case domain.StatusRejected:
		return ColorRejected
	case domain.StatusAccepted:
		return ColorAccepted
	default:
		return ColorNormal
	}
}
