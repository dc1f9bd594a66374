package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme for terminal output.
type Theme struct {
	Primary lipgloss.Color // Main accent color
	Warn    lipgloss.Color // Degradation/warning color
	Dim     lipgloss.Color // Dimmed/help text color
}

// DefaultTheme is the default bright green theme.
var DefaultTheme = Theme{
	Primary: lipgloss.Color("#00ff9f"),
	Warn:    lipgloss.Color("#f0b429"),
	Dim:     lipgloss.Color("#6e7681"),
}

// Styles holds all styles derived from a theme.
type Styles struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
	Warn  lipgloss.Style
	Dim   lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Label: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Value: lipgloss.NewStyle(),
		Warn:  lipgloss.NewStyle().Foreground(t.Warn),
		Dim:   lipgloss.NewStyle().Foreground(t.Dim),
	}
}

// KV renders one aligned label/value line.
func (s Styles) KV(label, value string) string {
	const labelWidth = 14
	pad := labelWidth - lipgloss.Width(label)
	if pad < 0 {
		pad = 0
	}
	return s.Label.Render(label) + strings.Repeat(" ", pad) + s.Value.Render(value)
}
