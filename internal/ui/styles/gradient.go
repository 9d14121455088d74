package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyBoldGradient renders bold text with a horizontal color gradient.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	// Split into grapheme clusters for proper unicode handling
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	if len(clusters) == 1 {
		return lipgloss.NewStyle().Foreground(from).Bold(true).Render(text)
	}

	colors := blendColors(len(clusters), Colorful(from), Colorful(to))

	var b strings.Builder
	for i, cluster := range clusters {
		style := lipgloss.NewStyle().Foreground(Lip(colors[i])).Bold(true)
		b.WriteString(style.Render(cluster))
	}

	return b.String()
}

// blendColors returns size colors blended between from and to.
// Blending is done in HCL color space for perceptually uniform transitions.
func blendColors(size int, from, to colorful.Color) []colorful.Color {
	if size < 2 {
		return []colorful.Color{from}
	}

	colors := make([]colorful.Color, size)
	for i := range size {
		t := float64(i) / float64(size-1)
		colors[i] = from.BlendHcl(to, t).Clamped()
	}

	return colors
}

// Fade composites fg over bg at opacity alpha.
func Fade(fg, bg colorful.Color, alpha float64) colorful.Color {
	switch {
	case alpha <= 0:
		return bg
	case alpha >= 1:
		return fg
	}
	return bg.BlendRgb(fg, alpha).Clamped()
}

// Colorful converts a lipgloss.Color to a colorful.Color.
func Colorful(c lipgloss.Color) colorful.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		col, err := colorful.Hex(hex)
		if err == nil {
			return col
		}
	}
	// Fallback for ANSI colors - return a neutral gray
	col, _ := colorful.MakeColor(color.RGBA{R: 128, G: 128, B: 128, A: 255})
	return col
}

// Lip converts a colorful.Color to a lipgloss hex color.
func Lip(c colorful.Color) lipgloss.Color {
	return lipgloss.Color(c.Clamped().Hex())
}
