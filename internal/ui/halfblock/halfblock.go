// Package halfblock paints pixels into terminal cells with the upper half
// block glyph: the foreground colours the top pixel of a cell and the
// background colours the bottom one, doubling vertical resolution.
package halfblock

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/llehouerou/parallax/internal/imagesrc"
	"github.com/llehouerou/parallax/internal/ui/styles"
)

const upperHalf = "▀"

// Picture is an image resampled to a grid of cells, two pixels per cell.
type Picture struct {
	width, rows int
	px          []colorful.Color
}

// NewPicture resamples img to width cells by rows cells. Transparent pixels
// are composited over bg.
func NewPicture(img image.Image, width, rows int, mode imagesrc.ContentScale, bg colorful.Color) *Picture {
	p := &Picture{width: max(width, 0), rows: max(rows, 0)}
	if img == nil || p.width == 0 || p.rows == 0 {
		return p
	}

	scaled := imagesrc.Scale(img, p.width, p.rows*2, mode)
	if scaled == nil {
		return p
	}
	b := scaled.Bounds()
	p.px = make([]colorful.Color, p.width*p.rows*2)
	for y := range p.rows * 2 {
		for x := range p.width {
			p.px[y*p.width+x] = over(scaled.At(b.Min.X+x, b.Min.Y+y), bg)
		}
	}
	return p
}

func over(c color.Color, bg colorful.Color) colorful.Color {
	_, _, _, a := c.RGBA()
	if a == 0 {
		return bg
	}
	col, _ := colorful.MakeColor(c)
	return styles.Fade(col, bg, float64(a)/0xffff)
}

// Width returns the picture width in cells.
func (p *Picture) Width() int { return p.width }

// Rows returns the picture height in cells.
func (p *Picture) Rows() int { return p.rows }

// Pixel returns the pixel at column x and half-row y. ok is false outside
// the picture.
func (p *Picture) Pixel(x, y int) (c colorful.Color, ok bool) {
	if p == nil || x < 0 || y < 0 || x >= p.width || y >= p.rows*2 || len(p.px) == 0 {
		return colorful.Color{}, false
	}
	return p.px[y*p.width+x], true
}

// cell is one terminal cell: either two pixels or a glyph over a flat
// background. cont marks the trailing half of a wide glyph.
type cell struct {
	top, bottom colorful.Color
	text        string
	fg          colorful.Color
	bold        bool
	cont        bool
}

// Canvas is a grid of cells painted pixel by pixel, with text on top.
type Canvas struct {
	width, height int
	cells         []cell
}

// NewCanvas returns a width by height canvas.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	return &Canvas{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
	}
}

// Size returns the canvas size in cells.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Fill colours every pixel. y counts half-rows, so it runs to twice the
// canvas height.
func (c *Canvas) Fill(pixel func(x, y int) colorful.Color) {
	for row := range c.height {
		for x := range c.width {
			cl := &c.cells[row*c.width+x]
			cl.top = pixel(x, row*2)
			cl.bottom = pixel(x, row*2+1)
		}
	}
}

// Background returns the flat colour text is drawn over at a cell.
func (c *Canvas) Background(col, row int) colorful.Color {
	if col < 0 || row < 0 || col >= c.width || row >= c.height {
		return colorful.Color{}
	}
	cl := c.cells[row*c.width+col]
	return cl.top.BlendRgb(cl.bottom, 0.5).Clamped()
}

// Text writes s on row starting at col, grapheme by grapheme. Glyphs falling
// outside the canvas are clipped. Each glyph sits over the average of the
// two pixels it replaces.
func (c *Canvas) Text(col, row int, s string, fg colorful.Color, bold bool) {
	if row < 0 || row >= c.height {
		return
	}
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		cluster := gr.Str()
		w := runewidth.StringWidth(cluster)
		if w == 0 {
			continue
		}
		if col >= 0 && col+w <= c.width {
			bg := c.Background(col, row)
			c.cells[row*c.width+col] = cell{top: bg, bottom: bg, text: cluster, fg: fg, bold: bold}
			for i := 1; i < w; i++ {
				c.cells[row*c.width+col+i] = cell{top: bg, bottom: bg, cont: true}
			}
		}
		col += w
	}
}

// Lines renders the canvas, one string per row. Runs of identical pixel
// cells share one style.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.height)
	for row := range c.height {
		lines[row] = c.renderRow(c.cells[row*c.width : (row+1)*c.width])
	}
	return lines
}

// String renders the canvas as newline-separated rows.
func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}

func (c *Canvas) renderRow(cells []cell) string {
	var b strings.Builder
	for i := 0; i < len(cells); {
		cl := cells[i]
		if cl.cont {
			i++
			continue
		}
		if cl.text != "" {
			style := lipgloss.NewStyle().
				Foreground(styles.Lip(cl.fg)).
				Background(styles.Lip(cl.top)).
				Bold(cl.bold)
			b.WriteString(style.Render(cl.text))
			i++
			continue
		}

		top, bottom := styles.Lip(cl.top), styles.Lip(cl.bottom)
		n := 1
		for i+n < len(cells) {
			next := cells[i+n]
			if next.text != "" || next.cont || styles.Lip(next.top) != top || styles.Lip(next.bottom) != bottom {
				break
			}
			n++
		}
		style := lipgloss.NewStyle().Foreground(top).Background(bottom)
		b.WriteString(style.Render(strings.Repeat(upperHalf, n)))
		i += n
	}
	return b.String()
}
