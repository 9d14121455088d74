// Package palette extracts dominant colours (swatches) from images and turns
// them into gradient brushes.
package palette

import (
	"cmp"
	"context"
	"errors"
	"image"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// DefaultMaxColors is the number of swatches used for a header gradient.
const DefaultMaxColors = 3

// sampleSize bounds the image before quantisation; 112x112 keeps extraction
// well under a frame budget while preserving dominant colours.
const sampleSize = 112

// quantizeBits is the per-channel precision of the colour histogram.
const quantizeBits = 5

// ErrNoSwatches is returned when an image has no usable pixels.
var ErrNoSwatches = errors.New("no swatches")

// Swatch is a dominant colour and the number of sampled pixels it represents.
type Swatch struct {
	Color      colorful.Color
	Population int
}

// Hex returns the swatch colour as #rrggbb.
func (s Swatch) Hex() string {
	return s.Color.Hex()
}

// Extractor finds up to maxColors dominant colours in an image, ordered by
// prominence.
type Extractor interface {
	Extract(ctx context.Context, img image.Image, maxColors int) ([]Swatch, error)
}

// Filter reports whether a colour may become a swatch.
type Filter func(c colorful.Color) bool

// DefaultFilter rejects colours too close to black or white to make a
// useful tint.
func DefaultFilter(c colorful.Color) bool {
	l, _, _ := c.Hcl()
	return l > 0.05 && l < 0.95
}

// MedianCut quantises an image with the median cut algorithm.
type MedianCut struct {
	// Filter drops candidate colours before quantisation. Nil accepts all.
	Filter Filter
}

// NewMedianCut returns an extractor using DefaultFilter.
func NewMedianCut() *MedianCut {
	return &MedianCut{Filter: DefaultFilter}
}

// Extract implements Extractor.
func (m *MedianCut) Extract(ctx context.Context, img image.Image, maxColors int) ([]Swatch, error) {
	if img == nil || maxColors <= 0 {
		return nil, ErrNoSwatches
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b := img.Bounds()
	if b.Dx() > sampleSize || b.Dy() > sampleSize {
		img = resize.Thumbnail(sampleSize, sampleSize, img, resize.Bilinear)
	}

	hist := m.histogram(img)
	if len(hist) == 0 {
		return nil, ErrNoSwatches
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries := make([]histEntry, 0, len(hist))
	for key, count := range hist {
		entries = append(entries, histEntry{key: key, count: count})
	}

	boxes := []*vbox{newVBox(entries)}
	for len(boxes) < maxColors {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		idx := largestSplittable(boxes)
		if idx < 0 {
			break
		}
		left, right := boxes[idx].split()
		boxes[idx] = left
		boxes = append(boxes, right)
	}

	swatches := make([]Swatch, 0, len(boxes))
	for _, bx := range boxes {
		swatches = append(swatches, bx.swatch())
	}
	slices.SortStableFunc(swatches, func(a, b Swatch) int {
		return cmp.Compare(b.Population, a.Population)
	})
	return swatches, nil
}

// histogram counts opaque pixels by quantised colour.
func (m *MedianCut) histogram(img image.Image) map[uint16]int {
	b := img.Bounds()
	hist := make(map[uint16]int)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			if a < 0x8000 {
				continue
			}
			// Un-premultiply before quantising.
			if a != 0xffff {
				r = r * 0xffff / a
				g = g * 0xffff / a
				bl = bl * 0xffff / a
			}
			key := pack(quantize(r), quantize(g), quantize(bl))
			if m.Filter != nil && !m.Filter(unpack(key)) {
				continue
			}
			hist[key]++
		}
	}
	return hist
}

const channelMax = 1<<quantizeBits - 1

func quantize(v uint32) uint16 {
	return uint16(v >> (16 - quantizeBits)) //nolint:gosec // shifted into 5 bits
}

func pack(r, g, b uint16) uint16 {
	return r<<(2*quantizeBits) | g<<quantizeBits | b
}

func channels(key uint16) (r, g, b uint16) {
	return key >> (2 * quantizeBits) & channelMax, key >> quantizeBits & channelMax, key & channelMax
}

func unpack(key uint16) colorful.Color {
	r, g, b := channels(key)
	return colorful.Color{
		R: float64(r) / channelMax,
		G: float64(g) / channelMax,
		B: float64(b) / channelMax,
	}
}

type histEntry struct {
	key   uint16
	count int
}

// vbox is a box in quantised RGB space holding histogram entries.
type vbox struct {
	entries    []histEntry
	population int
	lo, hi     [3]uint16
}

func newVBox(entries []histEntry) *vbox {
	v := &vbox{entries: entries}
	v.lo = [3]uint16{channelMax, channelMax, channelMax}
	for _, e := range entries {
		v.population += e.count
		r, g, b := channels(e.key)
		for i, c := range [3]uint16{r, g, b} {
			v.lo[i] = min(v.lo[i], c)
			v.hi[i] = max(v.hi[i], c)
		}
	}
	return v
}

func (v *vbox) volume() int {
	return int(v.hi[0]-v.lo[0]+1) * int(v.hi[1]-v.lo[1]+1) * int(v.hi[2]-v.lo[2]+1)
}

func (v *vbox) canSplit() bool {
	return len(v.entries) > 1
}

func (v *vbox) longestDimension() int {
	dim := 0
	for i := 1; i < 3; i++ {
		if v.hi[i]-v.lo[i] > v.hi[dim]-v.lo[dim] {
			dim = i
		}
	}
	return dim
}

// split divides the box at the population median of its longest side.
func (v *vbox) split() (*vbox, *vbox) {
	dim := v.longestDimension()
	component := func(key uint16) uint16 {
		r, g, b := channels(key)
		return [3]uint16{r, g, b}[dim]
	}
	sorted := slices.Clone(v.entries)
	slices.SortFunc(sorted, func(a, b histEntry) int {
		return cmp.Or(cmp.Compare(component(a.key), component(b.key)), cmp.Compare(a.key, b.key))
	})

	half := v.population / 2
	acc := 0
	cut := 1
	for i, e := range sorted[:len(sorted)-1] {
		acc += e.count
		if acc >= half {
			cut = i + 1
			break
		}
		cut = i + 1
	}
	return newVBox(sorted[:cut]), newVBox(sorted[cut:])
}

func (v *vbox) swatch() Swatch {
	var r, g, b float64
	for _, e := range v.entries {
		c := unpack(e.key)
		w := float64(e.count)
		r += c.R * w
		g += c.G * w
		b += c.B * w
	}
	p := float64(v.population)
	return Swatch{
		Color:      colorful.Color{R: r / p, G: g / p, B: b / p}.Clamped(),
		Population: v.population,
	}
}

func largestSplittable(boxes []*vbox) int {
	best := -1
	for i, bx := range boxes {
		if !bx.canSplit() {
			continue
		}
		if best < 0 || bx.volume()*bx.population > boxes[best].volume()*boxes[best].population {
			best = i
		}
	}
	return best
}
