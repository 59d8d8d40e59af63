package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - totals
	ColorSecondary Color = "86" // Cyan - headers
)

// Diagnostic colors
const (
	ColorError   Color = "196" // Bright red
	ColorWarning Color = "3"   // Yellow
)

// UI semantic colors
const (
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorSubtle    Color = "245" // Light gray - labels
)

// Size colors
const (
	ColorPacked   Color = "2"  // Green
	ColorUnpacked Color = "33" // Blue
)
