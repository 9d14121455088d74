package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/llehouerou/parallax/internal/ui/testutil"
)

func TestFade(t *testing.T) {
	white, _ := colorful.Hex("#ffffff")
	black, _ := colorful.Hex("#000000")

	if got := Fade(white, black, 0); got != black {
		t.Errorf("Fade(alpha 0) = %v, want background", got.Hex())
	}
	if got := Fade(white, black, 1); got != white {
		t.Errorf("Fade(alpha 1) = %v, want foreground", got.Hex())
	}
	if got := Fade(white, black, 0.5).Hex(); got != "#808080" {
		t.Errorf("Fade(alpha 0.5) = %s, want #808080", got)
	}
	if got := Fade(white, black, 7); got != white {
		t.Errorf("Fade(alpha > 1) should clamp to foreground, got %s", got.Hex())
	}
}

func TestColorfulRoundTrip(t *testing.T) {
	c := Colorful(lipgloss.Color("#a78bfa"))
	if got := Lip(c); got != lipgloss.Color("#a78bfa") {
		t.Errorf("Lip(Colorful(#a78bfa)) = %s", got)
	}

	if got := Colorful(lipgloss.Color("240")).Hex(); got != "#808080" {
		t.Errorf("ANSI color fallback = %s, want #808080", got)
	}
}

func TestBlendColors(t *testing.T) {
	from, _ := colorful.Hex("#ff0000")
	to, _ := colorful.Hex("#0000ff")

	colors := blendColors(5, from, to)
	if len(colors) != 5 {
		t.Fatalf("len = %d, want 5", len(colors))
	}
	if colors[0].Hex() != "#ff0000" || colors[4].Hex() != "#0000ff" {
		t.Errorf("endpoints = %s..%s", colors[0].Hex(), colors[4].Hex())
	}

	if got := blendColors(1, from, to); len(got) != 1 {
		t.Errorf("blendColors(1) len = %d", len(got))
	}
}

func TestApplyBoldGradient(t *testing.T) {
	if ApplyBoldGradient("", "#ff0000", "#0000ff") != "" {
		t.Error("empty text should render empty")
	}

	out := ApplyBoldGradient("parallax", "#ff0000", "#0000ff")
	if !strings.Contains(testutil.StripANSI(out), "parallax") {
		t.Errorf("rendered gradient lost text: %q", out)
	}
}

func TestThemeStylesCached(t *testing.T) {
	th := T()
	if th.S() != th.S() {
		t.Error("S() should build styles once")
	}
	if th.ShadowAlpha <= 0 || th.ShadowAlpha > 1 {
		t.Errorf("ShadowAlpha = %g, want within (0, 1]", th.ShadowAlpha)
	}
}
