package halfblock

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/parallax/internal/imagesrc"
	"github.com/llehouerou/parallax/internal/ui/testutil"
)

func solid(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestNewPicture(t *testing.T) {
	bg, _ := colorful.Hex("#000000")
	pic := NewPicture(solid(40, 40, color.RGBA{R: 255, A: 255}), 10, 4, imagesrc.Stretch, bg)

	assert.Equal(t, 10, pic.Width())
	assert.Equal(t, 4, pic.Rows())

	c, ok := pic.Pixel(9, 7)
	require.True(t, ok)
	assert.Equal(t, "#ff0000", c.Hex())

	_, ok = pic.Pixel(10, 0)
	assert.False(t, ok, "column past width")
	_, ok = pic.Pixel(0, 8)
	assert.False(t, ok, "half-row past height")
}

func TestNewPictureTransparentUsesBackground(t *testing.T) {
	bg, _ := colorful.Hex("#123456")
	pic := NewPicture(solid(8, 8, color.RGBA{}), 4, 2, imagesrc.Stretch, bg)

	c, ok := pic.Pixel(0, 0)
	require.True(t, ok)
	assert.Equal(t, "#123456", c.Hex())
}

func TestNewPictureEmpty(t *testing.T) {
	pic := NewPicture(nil, 10, 4, imagesrc.Crop, colorful.Color{})
	_, ok := pic.Pixel(0, 0)
	assert.False(t, ok)

	var nilPic *Picture
	_, ok = nilPic.Pixel(0, 0)
	assert.False(t, ok)
}

func TestCanvasLines(t *testing.T) {
	c := NewCanvas(6, 2)
	red, _ := colorful.Hex("#ff0000")
	c.Fill(func(x, y int) colorful.Color { return red })

	lines := c.Lines()
	require.Len(t, lines, 2)
	for _, l := range lines {
		assert.Equal(t, strings.Repeat(upperHalf, 6), testutil.StripANSI(l))
	}
}

func TestCanvasText(t *testing.T) {
	c := NewCanvas(8, 2)
	white, _ := colorful.Hex("#ffffff")
	c.Text(2, 1, "hi", white, true)

	lines := c.Lines()
	assert.Equal(t, strings.Repeat(upperHalf, 8), testutil.StripANSI(lines[0]))
	assert.Equal(t, "▀▀hi▀▀▀▀", testutil.StripANSI(lines[1]))
}

func TestCanvasTextClipping(t *testing.T) {
	white, _ := colorful.Hex("#ffffff")

	tests := []struct {
		name string
		col  int
		row  int
		text string
		want string
	}{
		{"clipped right", 4, 0, "hello", "▀▀▀▀hel"},
		{"clipped left", -2, 0, "hello", "llo▀▀▀▀"},
		{"row out of range", 0, 3, "hello", "▀▀▀▀▀▀▀"},
		{"wide glyph", 1, 0, "日本", "▀日本▀▀"},
		{"wide glyph cut at edge", 6, 0, "日", "▀▀▀▀▀▀▀"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(7, 1)
			c.Text(tt.col, tt.row, tt.text, white, false)
			assert.Equal(t, tt.want, testutil.StripANSI(c.Lines()[0]))
			assert.Equal(t, 7, testutil.MeasureWidth(c.Lines()[0]))
		})
	}
}

func TestCanvasBackground(t *testing.T) {
	c := NewCanvas(1, 1)
	white, _ := colorful.Hex("#ffffff")
	black, _ := colorful.Hex("#000000")
	c.Fill(func(_, y int) colorful.Color {
		if y == 0 {
			return white
		}
		return black
	})

	assert.Equal(t, "#808080", c.Background(0, 0).Hex())
	assert.Equal(t, colorful.Color{}, c.Background(5, 5))
}
