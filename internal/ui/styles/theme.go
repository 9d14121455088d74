package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Purple - accents, scroll indicator
	Secondary lipgloss.Color // Gold/orange - secondary accent

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Body text
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)
	FgTitle  lipgloss.Color // Header title, drawn over images

	// Backgrounds
	BgBase lipgloss.Color // Page background, what faded images blend into

	// Header shadow drawn under the title for contrast
	Shadow      lipgloss.Color
	ShadowAlpha float64

	// Status colors
	Error lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base   lipgloss.Style // Default text
	Muted  lipgloss.Style // Dimmed text
	Subtle lipgloss.Style // Very dim text
	Title  lipgloss.Style // Bold, bright
	Error  lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),
	FgTitle:  lipgloss.Color("#ffffff"),

	BgBase: lipgloss.Color("#1a1a1a"),

	Shadow:      lipgloss.Color("#000000"),
	ShadowAlpha: 0.7,

	Error: lipgloss.Color("#ff5555"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title: lipgloss.NewStyle().
			Foreground(t.FgTitle).
			Bold(true),
		Error: lipgloss.NewStyle().Foreground(t.Error),
	}
}
