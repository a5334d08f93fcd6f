package ui

import "github.com/charmbracelet/lipgloss"

// ThemeColors holds the dark-background palette as hex strings.
type ThemeColors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
	Text      string
	Border    string
}

// Theme is the shared visual configuration for ui components.
type Theme struct {
	Colors  ThemeColors
	NoColor bool
}

// NewTheme returns the cvue theme. With noColor every style renders plain.
func NewTheme(noColor bool) *Theme {
	return &Theme{
		Colors: ThemeColors{
			Primary:   "#42B883",
			Secondary: "#35495E",
			Success:   "#10B981",
			Warning:   "#F59E0B",
			Error:     "#EF4444",
			Muted:     "#9CA3AF",
			Text:      "#E5E7EB",
			Border:    "#4B5563",
		},
		NoColor: noColor,
	}
}

// Style returns a foreground style for a palette color, or a plain style
// when colors are disabled.
func (t *Theme) Style(color string) lipgloss.Style {
	if t.NoColor {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
