package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Palette of the text report.
var (
	ColorSuccess = lipgloss.Color("#2CD7C7")
	ColorWarning = lipgloss.Color("#F4D03F")
	ColorError   = lipgloss.Color("#E74C3C")
	ColorMuted   = lipgloss.Color("#2C4A54")
	ColorTitle   = lipgloss.Color("#20B9B4")
)

type styles struct {
	title   lipgloss.Style
	name    lipgloss.Style
	used    lipgloss.Style
	unused  lipgloss.Style
	ignored lipgloss.Style
	removed lipgloss.Style
	warning lipgloss.Style
	total   lipgloss.Style
}

// newStyles returns the styles bound to w. Without color every style renders
// its text unchanged.
func newStyles(w io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		plain := r.NewStyle()
		return styles{plain, plain, plain, plain, plain, plain, plain, plain}
	}

	return styles{
		title:   r.NewStyle().Bold(true).Foreground(ColorTitle),
		name:    r.NewStyle().Bold(true),
		used:    r.NewStyle().Foreground(ColorSuccess),
		unused:  r.NewStyle().Foreground(ColorError),
		ignored: r.NewStyle().Foreground(ColorMuted),
		removed: r.NewStyle().Foreground(ColorSuccess),
		warning: r.NewStyle().Foreground(ColorWarning),
		total:   r.NewStyle().Bold(true).Foreground(ColorWarning),
	}
}
