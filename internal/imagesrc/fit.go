package imagesrc

import (
	"image"
	"image/draw"

	"github.com/nfnt/resize"
)

// ContentScale decides how an image fills a target area.
type ContentScale int

const (
	// Crop fills the area and trims the overflow, keeping the centre.
	Crop ContentScale = iota
	// Fit scales the whole image inside the area, leaving transparent bars.
	Fit
	// Stretch ignores the aspect ratio.
	Stretch
)

// ParseContentScale maps a config value to a ContentScale. Unknown values
// fall back to Crop.
func ParseContentScale(s string) ContentScale {
	switch s {
	case "fit":
		return Fit
	case "stretch":
		return Stretch
	default:
		return Crop
	}
}

func (c ContentScale) String() string {
	switch c {
	case Fit:
		return "fit"
	case Stretch:
		return "stretch"
	default:
		return "crop"
	}
}

// Scale resizes img to exactly width x height pixels.
func Scale(img image.Image, width, height int, mode ContentScale) image.Image {
	if img == nil || width <= 0 || height <= 0 {
		return nil
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil
	}

	w, h := uint(width), uint(height) //nolint:gosec // checked positive above

	switch mode {
	case Stretch:
		return resize.Resize(w, h, img, resize.Bilinear)
	case Fit:
		thumb := resize.Thumbnail(w, h, img, resize.Bilinear)
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		tb := thumb.Bounds()
		offset := image.Pt((width-tb.Dx())/2, (height-tb.Dy())/2)
		draw.Draw(dst, tb.Sub(tb.Min).Add(offset), thumb, tb.Min, draw.Src)
		return dst
	default:
		// Scale so the image covers the area, then crop the centre.
		sx := float64(width) / float64(b.Dx())
		sy := float64(height) / float64(b.Dy())
		s := max(sx, sy)
		cw := max(uint(float64(b.Dx())*s+0.5), w)
		ch := max(uint(float64(b.Dy())*s+0.5), h)
		scaled := resize.Resize(cw, ch, img, resize.Bilinear)
		sb := scaled.Bounds()
		origin := image.Pt(sb.Min.X+(sb.Dx()-width)/2, sb.Min.Y+(sb.Dy()-height)/2)
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.Draw(dst, dst.Bounds(), scaled, origin, draw.Src)
		return dst
	}
}
