package parallax

import (
	"errors"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/parallax/internal/imagesrc"
	"github.com/llehouerou/parallax/internal/logger"
	"github.com/llehouerou/parallax/internal/palette"
)

// ErrConflictingHeader is returned when both an image and custom header
// content are configured; the header shows one or the other.
var ErrConflictingHeader = errors.New("header image and header content are mutually exclusive")

// ContentFunc draws custom header content for a header of width by height
// cells. alpha is the content alpha: 1 when expanded, 0 when collapsed.
type ContentFunc func(collapsed bool, alpha float64, width, height int) string

// Options configures a Model.
type Options struct {
	Title string
	// Image is painted behind the header and seeds the toolbar gradient.
	Image *imagesrc.Source
	// HeaderContent replaces the image with custom text.
	HeaderContent ContentFunc
	// NavigationIcon is drawn at the start of the toolbar, Actions at its end.
	NavigationIcon string
	Actions        string

	// ToolbarBrush paints the palette gradient behind the toolbar as the
	// header collapses.
	ToolbarBrush bool
	// Shadow darkens the bottom of the expanded header behind the title,
	// fading out with the image as the header collapses.
	Shadow       bool
	ContentScale imagesrc.ContentScale
	MaxColors    int
	// TitleColor overrides the theme title colour.
	TitleColor lipgloss.Color
	// SmoothScroll animates page jumps with a spring.
	SmoothScroll bool

	// OnGradient is called once for each palette gradient that is applied.
	OnGradient func(palette.Brush)
	Logger     *logger.Logger
}

func (o Options) validate() error {
	if o.Image != nil && o.HeaderContent != nil {
		return ErrConflictingHeader
	}
	return nil
}
