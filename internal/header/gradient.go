package header

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/parallax/internal/imagesrc"
	"github.com/llehouerou/parallax/internal/palette"
)

// ErrNoLoader is reported when a gradient is requested without a loader.
var ErrNoLoader = errors.New("no image loader configured")

// GradientMsg carries a finished palette fetch back to the event loop.
// Pass it to Controller.Update.
type GradientMsg struct {
	HeaderID  string
	RequestID uint64
	Source    imagesrc.Source
	Brush     palette.Brush
	Err       error
}

// fetch is the single in-flight gradient request.
type fetch struct {
	id       uint64
	source   imagesrc.Source
	cancel   context.CancelFunc
	callback func(palette.Brush)
}

// RequestPaletteGradient starts building a gradient from the dominant colours
// of src. The returned command does the loading and extraction off the
// event loop; its GradientMsg must be fed back through Update, which invokes
// callback exactly once if the fetch succeeded and is still current.
//
// A newer request supersedes and cancels an older one. On failure no
// callback fires and the current gradient stays in place.
func (c *Controller) RequestPaletteGradient(src imagesrc.Source, maxColors int, callback func(palette.Brush)) tea.Cmd {
	if c.closed {
		return nil
	}
	if maxColors <= 0 {
		maxColors = palette.DefaultMaxColors
	}

	c.cancelFetch()
	c.requestSeq++
	ctx, cancel := c.fetchContext()
	f := &fetch{
		id:       c.requestSeq,
		source:   src,
		cancel:   cancel,
		callback: callback,
	}
	c.fetch = f

	loader, extractor := c.loader, c.extractor
	headerID := c.id
	c.log.WithFields(map[string]any{"source": src.Key(), "request": f.id}).Debug("palette gradient requested")

	return func() tea.Msg {
		defer cancel()
		brush, err := buildGradient(ctx, loader, extractor, src, maxColors)
		return GradientMsg{
			HeaderID:  headerID,
			RequestID: f.id,
			Source:    src,
			Brush:     brush,
			Err:       err,
		}
	}
}

func buildGradient(
	ctx context.Context,
	loader imagesrc.Loader,
	extractor palette.Extractor,
	src imagesrc.Source,
	maxColors int,
) (palette.Brush, error) {
	if loader == nil {
		return palette.Brush{}, ErrNoLoader
	}
	img, err := loader.Load(ctx, src)
	if err != nil {
		return palette.Brush{}, fmt.Errorf("load %s: %w", src, err)
	}
	swatches, err := extractor.Extract(ctx, img, maxColors)
	if err != nil {
		return palette.Brush{}, fmt.Errorf("extract palette: %w", err)
	}
	if len(swatches) == 0 {
		return palette.Brush{}, palette.ErrNoSwatches
	}
	if len(swatches) > maxColors {
		swatches = swatches[:maxColors]
	}
	return palette.FromSwatches(swatches), nil
}

// Update applies messages produced by the controller's commands. It
// reports whether the message changed the gradient.
func (c *Controller) Update(msg tea.Msg) bool {
	m, ok := msg.(GradientMsg)
	if !ok || m.HeaderID != c.id {
		return false
	}

	log := c.log.WithFields(map[string]any{"source": m.Source.Key(), "request": m.RequestID})
	if c.closed || c.fetch == nil || c.fetch.id != m.RequestID {
		log.Debug("stale palette gradient discarded")
		return false
	}

	f := c.fetch
	c.fetch = nil

	if m.Err != nil {
		if errors.Is(m.Err, context.Canceled) {
			log.Debug("palette gradient cancelled")
		} else {
			log.WarnErr(m.Err, "palette gradient unavailable")
		}
		if c.onGradErr != nil {
			c.onGradErr(m.Source, m.Err)
		}
		return false
	}

	c.gradient = m.Brush
	c.gradSource = m.Source
	log.WithFields(map[string]any{"colors": m.Brush.Hex()}).Debug("palette gradient applied")
	if f.callback != nil {
		f.callback(c.Gradient())
	}
	return true
}

// Pending reports whether a gradient fetch is in flight.
func (c *Controller) Pending() bool {
	return c.fetch != nil
}

func (c *Controller) cancelFetch() {
	if c.fetch == nil {
		return
	}
	c.fetch.cancel()
	c.fetch = nil
}
