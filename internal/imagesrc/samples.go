package imagesrc

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Sample resource names registered by RegisterSamples.
const (
	SampleSunset = "sunset"
	SampleForest = "forest"
	SampleOcean  = "ocean"
	SampleDusk   = "dusk"
)

const sampleWidth, sampleHeight = 160, 90

// RegisterSamples adds procedurally drawn landscapes to r so the header can
// be shown without any image files.
func RegisterSamples(r *Resources) {
	r.Register(SampleSunset, landscape("#ff7e5f", "#feb47b", "#3a1c71", 0.35))
	r.Register(SampleForest, landscape("#a8e063", "#56ab2f", "#134e5e", 0.55))
	r.Register(SampleOcean, landscape("#2193b0", "#6dd5ed", "#0b3d91", 0.5))
	r.Register(SampleDusk, landscape("#2c3e50", "#fd746c", "#1a1a2e", 0.4))
}

// landscape draws a sky gradient over a rolling horizon.
func landscape(skyTop, skyBottom, ground string, horizon float64) image.Image {
	top, _ := colorful.Hex(skyTop)
	bottom, _ := colorful.Hex(skyBottom)
	land, _ := colorful.Hex(ground)

	img := image.NewRGBA(image.Rect(0, 0, sampleWidth, sampleHeight))
	for x := range sampleWidth {
		fx := float64(x) / sampleWidth
		ridge := horizon + 0.08*math.Sin(fx*2*math.Pi*1.5) + 0.04*math.Sin(fx*2*math.Pi*4.2)
		for y := range sampleHeight {
			fy := float64(y) / sampleHeight
			var c colorful.Color
			if fy < 1-ridge {
				c = top.BlendHcl(bottom, fy/(1-ridge)).Clamped()
			} else {
				depth := (fy - (1 - ridge)) / ridge
				c = land.BlendRgb(colorful.Color{}, depth*0.6)
			}
			r, g, b := c.RGB255()
			img.Set(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}
