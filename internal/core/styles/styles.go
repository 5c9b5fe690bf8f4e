// Package styles provides lipgloss styles for console output.
package styles

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles colours fragments of console output. The zero value renders
// text unchanged.
type Styles struct {
	enabled bool

	Header  lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// Plain returns styles that never emit escape sequences.
func Plain() Styles {
	return Styles{}
}

// New builds styles from p, rendering for w. lipgloss drops colours on
// its own when w is not a terminal.
func New(w io.Writer, p Palette) Styles {
	r := lipgloss.NewRenderer(w)

	return Styles{
		enabled: true,
		Header: r.NewStyle().
			Foreground(p.Primary).
			Bold(true),
		Muted:   r.NewStyle().Foreground(p.Muted),
		Success: r.NewStyle().Foreground(p.Success),
		Warning: r.NewStyle().Foreground(p.Warning),
		Error:   r.NewStyle().Foreground(p.Error).Bold(true),
	}
}

// Enabled reports whether styling is active.
func (s Styles) Enabled() bool {
	return s.enabled
}

// Render applies st to text when styling is enabled.
func (s Styles) Render(st lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return st.Render(text)
}
