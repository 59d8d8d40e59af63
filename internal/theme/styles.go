package theme

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the styles used on the diagnostic stream. Standard output
// carries machine-readable records and is never styled.
type Styles struct {
	// Diagnostics
	Error    lipgloss.Style
	Info     lipgloss.Style
	Progress lipgloss.Style
	Warning  lipgloss.Style

	// Summary
	Header    lipgloss.Style
	HumanSize lipgloss.Style
	Packed    lipgloss.Style
	Total     lipgloss.Style
	Unpacked  lipgloss.Style
}

// NewStyles builds styles for w. Writers that are not terminals get
// plain text.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)

	return Styles{
		Error: r.NewStyle().
			Foreground(ColorError).
			Bold(true),

		Info: r.NewStyle().
			Foreground(ColorSubtle),

		Progress: r.NewStyle().
			Foreground(ColorMuted),

		Warning: r.NewStyle().
			Foreground(ColorWarning).
			Bold(true),

		Header: r.NewStyle().
			Foreground(ColorSecondary).
			Bold(true),

		HumanSize: r.NewStyle().
			Foreground(ColorMuted),

		Packed: r.NewStyle().
			Foreground(ColorPacked),

		Total: r.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),

		Unpacked: r.NewStyle().
			Foreground(ColorUnpacked),
	}
}
