package parallax

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/llehouerou/parallax/internal/header"
	"github.com/llehouerou/parallax/internal/ui/halfblock"
	"github.com/llehouerou/parallax/internal/ui/layout"
	"github.com/llehouerou/parallax/internal/ui/render"
	"github.com/llehouerou/parallax/internal/ui/styles"
)

// boldTitleScale is the title scale above which the title is drawn bold.
const boldTitleScale = 0.85

// renderHeader paints the header background, then the toolbar decorations,
// then the title.
func (m *Model) renderHeader(st header.State, rows int) []string {
	w := m.Width()
	canvas := halfblock.NewCanvas(w, rows)
	canvas.Fill(m.backgroundPixel(st, rows))

	if m.opts.HeaderContent != nil {
		m.paintContent(canvas, st, rows)
	}
	m.paintToolbar(canvas)
	m.paintTitle(canvas, st, rows)
	return canvas.Lines()
}

// backgroundPixel composes, bottom to top: the theme background, the image
// faded by the content alpha, the toolbar gradient, and the shadow. The
// shadow spans the lower half of the expanded header and darkens toward the
// header's bottom edge, behind the title.
func (m *Model) backgroundPixel(st header.State, rows int) func(x, y int) colorful.Color {
	th := styles.T()
	cfg := m.ctrl.Config()
	bg := styles.Colorful(th.BgBase)
	shadow := styles.Colorful(th.Shadow)
	shadowPx := max(layout.Rows(cfg.DefaultHeight/2), 1) * 2
	shadowTop := rows*2 - shadowPx
	imgRow := layout.ParallaxRow(layout.Rows(cfg.DefaultHeight), rows)
	w := m.Width()

	brush := m.ctrl.Gradient()
	if !m.opts.ToolbarBrush {
		brush = brush.WithAlpha(0)
	}

	return func(x, y int) colorful.Color {
		c := bg
		if px, ok := m.pic.Pixel(x, imgRow*2+y); ok {
			c = styles.Fade(px, bg, st.ContentAlpha)
		}
		if !brush.IsTransparent() {
			c = brush.Over(c, position(x, w))
		}
		if m.opts.Shadow && y >= shadowTop {
			depth := float64(y-shadowTop+1) / float64(shadowPx)
			c = styles.Fade(shadow, c, st.ShadowAlpha*th.ShadowAlpha*depth)
		}
		return c
	}
}

// position maps a column to its place along a horizontal gradient.
func position(x, width int) float64 {
	if width <= 1 {
		return 0
	}
	return float64(x) / float64(width-1)
}

// paintContent draws custom header content as plain text faded with the
// content alpha.
func (m *Model) paintContent(canvas *halfblock.Canvas, st header.State, rows int) {
	fg := styles.Colorful(styles.T().FgBase)
	content := m.opts.HeaderContent(st.Collapsed, st.ContentAlpha, m.Width(), rows)
	for row, line := range strings.Split(content, "\n") {
		if row >= rows {
			break
		}
		text := render.Sanitize(ansi.Strip(line))
		for col, r := range columns(text) {
			canvas.Text(col, row, r, styles.Fade(fg, canvas.Background(col, row), st.ContentAlpha), false)
		}
	}
}

// columns splits text into runs starting at each non-blank column, so
// blank cells keep the header background.
func columns(text string) map[int]string {
	runs := make(map[int]string)
	col, start := 0, -1
	var run strings.Builder
	flush := func() {
		if start >= 0 {
			runs[start] = run.String()
			run.Reset()
			start = -1
		}
	}
	for _, r := range text {
		if r == ' ' {
			flush()
			col++
			continue
		}
		if start < 0 {
			start = col
		}
		run.WriteRune(r)
		col += ansi.StringWidth(string(r))
	}
	flush()
	return runs
}

func (m *Model) paintToolbar(canvas *halfblock.Canvas) {
	cfg := m.ctrl.Config()
	row := layout.ToolbarRow(cfg.StatusBarInset, cfg.ToolbarHeight)
	pad := layout.Rows(cfg.ContentPadding)
	fg := m.titleColor()

	if nav := render.Sanitize(m.opts.NavigationIcon); nav != "" {
		canvas.Text(pad, row, ansi.Strip(nav), fg, false)
	}
	if actions := render.Sanitize(m.opts.Actions); actions != "" {
		actions = ansi.Strip(actions)
		col := m.Width() - pad - ansi.StringWidth(actions)
		canvas.Text(col, row, actions, fg, false)
	}
}

// paintTitle wraps the title to its natural width, clamps it to the current
// line count and places its last line on the row the title offset points
// at. Glyphs cannot shrink, so scaling only moves the title.
func (m *Model) paintTitle(canvas *halfblock.Canvas, st header.State, rows int) {
	if m.opts.Title == "" {
		return
	}
	cfg := m.ctrl.Config()
	meas := m.ctrl.Measurements()
	pad := layout.Rows(cfg.ContentPadding)

	col := max(layout.TitleColumn(st.TitleOffsetX, meas.TitleSize.Width, st.TitleScale), 0)
	last := layout.TitleRow(rows, st.TitleOffsetY)

	avail := m.Width() - col - pad
	// Sharing the toolbar row, the title stops short of the actions.
	if last == layout.ToolbarRow(cfg.StatusBarInset, cfg.ToolbarHeight) && meas.HasActions {
		avail -= int(meas.ActionsWidth) + 1
	}
	width := min(max(int(meas.TitleSize.Width), 1), max(avail, 1))

	lines := render.ClampLines(m.opts.Title, width, st.TitleLineClamp)
	fg := m.titleColor()
	bold := st.TitleScale >= boldTitleScale
	first := last - len(lines) + 1
	for i, line := range lines {
		canvas.Text(col, first+i, line, fg, bold)
	}
}

func (m *Model) titleColor() colorful.Color {
	if m.opts.TitleColor != "" {
		return styles.Colorful(m.opts.TitleColor)
	}
	return styles.Colorful(styles.T().FgTitle)
}
