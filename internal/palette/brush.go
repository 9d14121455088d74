package palette

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/llehouerou/parallax/internal/interp"
)

// Brush is a paintable background: ordered colour stops spread evenly from
// left to right, drawn at a given opacity.
type Brush struct {
	stops []colorful.Color
	alpha float64
}

// Transparent returns the brush used before any palette is available.
func Transparent() Brush {
	return Brush{}
}

// HorizontalGradient builds a left-to-right gradient through colors.
func HorizontalGradient(colors []colorful.Color) Brush {
	stops := make([]colorful.Color, len(colors))
	copy(stops, colors)
	return Brush{stops: stops, alpha: 1}
}

// FromSwatches builds a horizontal gradient from swatch colours in order.
func FromSwatches(swatches []Swatch) Brush {
	colors := make([]colorful.Color, len(swatches))
	for i, s := range swatches {
		colors[i] = s.Color
	}
	return HorizontalGradient(colors)
}

// WithAlpha returns a copy of the brush drawn at opacity a, clamped to [0, 1].
func (b Brush) WithAlpha(a float64) Brush {
	b.alpha = interp.Clamp(a, 0, 1)
	return b
}

// Alpha returns the brush opacity.
func (b Brush) Alpha() float64 { return b.alpha }

// Colors returns a copy of the colour stops.
func (b Brush) Colors() []colorful.Color {
	out := make([]colorful.Color, len(b.stops))
	copy(out, b.stops)
	return out
}

// IsTransparent reports whether painting the brush has no visible effect.
func (b Brush) IsTransparent() bool {
	return len(b.stops) == 0 || b.alpha == 0
}

// At returns the colour at horizontal position t in [0, 1], where 0 is the
// left edge.
// Neighbouring stops are blended in HCL space. ok is false for a brush
// without stops.
func (b Brush) At(t float64) (c colorful.Color, ok bool) {
	switch len(b.stops) {
	case 0:
		return colorful.Color{}, false
	case 1:
		return b.stops[0], true
	}

	t = interp.Clamp(t, 0, 1)
	segments := float64(len(b.stops) - 1)
	pos := t * segments
	i := min(int(pos), len(b.stops)-2)
	local := pos - float64(i)
	return b.stops[i].BlendHcl(b.stops[i+1], local).Clamped(), true
}

// Over composites the brush colour at t over bg using the brush opacity.
func (b Brush) Over(bg colorful.Color, t float64) colorful.Color {
	c, ok := b.At(t)
	if !ok || b.alpha == 0 {
		return bg
	}
	return bg.BlendRgb(c, b.alpha).Clamped()
}

// Hex lists the stops as hex strings, for logs and CLI output.
func (b Brush) Hex() string {
	parts := make([]string, len(b.stops))
	for i, c := range b.stops {
		parts[i] = c.Hex()
	}
	return strings.Join(parts, ",")
}
