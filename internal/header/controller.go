// Package header owns the collapsing header state: it turns a scroll offset
// into header height and every visual property derived from it, caches the
// decoration measurements the title layout depends on, and fetches the
// palette gradient painted behind the toolbar.
package header

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/llehouerou/parallax/internal/imagesrc"
	"github.com/llehouerou/parallax/internal/interp"
	"github.com/llehouerou/parallax/internal/logger"
	"github.com/llehouerou/parallax/internal/palette"
)

// State is the bundle of values the renderer paints from. It is recomputed
// from scratch on every scroll change.
type State struct {
	ScrollOffset float64
	HeaderHeight float64
	// Progress is 0 when fully collapsed and 1 when fully expanded.
	Progress       float64
	ContentAlpha   float64
	GradientAlpha  float64
	ShadowAlpha    float64
	TitleScale     float64
	TitleLineClamp int
	HeaderScale    float64
	TitleOffsetX   float64
	TitleOffsetY   float64
	Collapsed      bool
}

type observer struct {
	id int
	fn func(State)
}

// Controller is the stateful half of the header. It is not safe for
// concurrent use: every method must be called from the UI event loop.
// Background work is confined to the commands returned by
// RequestPaletteGradient.
type Controller struct {
	id      string
	cfg     Config
	heights interp.Range[float64]
	state   State
	offset  float64

	cache    measurementCache
	expected Slot
	phase    Phase

	observers  []observer
	nextObsID  int
	log        *logger.Logger
	onGradErr  func(imagesrc.Source, error)
	loader     imagesrc.Loader
	extractor  palette.Extractor
	timeout    time.Duration
	gradient   palette.Brush
	gradSource imagesrc.Source
	fetch      *fetch
	requestSeq uint64
	closed     bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *logger.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithLoader sets the image loader used for gradient fetches.
func WithLoader(l imagesrc.Loader) Option {
	return func(c *Controller) { c.loader = l }
}

// WithExtractor replaces the swatch extractor.
func WithExtractor(e palette.Extractor) Option {
	return func(c *Controller) { c.extractor = e }
}

// WithFetchTimeout bounds a single gradient fetch. Zero disables the bound.
func WithFetchTimeout(d time.Duration) Option {
	return func(c *Controller) { c.timeout = d }
}

// WithGradientErrorHandler registers a hook told about failed gradient
// fetches. Failures never change the gradient; the hook is diagnostics only.
func WithGradientErrorHandler(fn func(src imagesrc.Source, err error)) Option {
	return func(c *Controller) { c.onGradErr = fn }
}

// New creates a controller in the fully expanded position.
func New(cfg Config, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	heights, err := interp.NewRange(cfg.MinHeight(), cfg.DefaultHeight)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		id:        uuid.NewString(),
		cfg:       cfg,
		heights:   heights,
		extractor: palette.NewMedianCut(),
		timeout:   10 * time.Second,
		gradient:  palette.Transparent(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.WithFields(map[string]any{"header": c.id})
	c.state = c.compute(0)
	return c, nil
}

// ID identifies the controller instance in logs and messages.
func (c *Controller) ID() string { return c.id }

// Config returns the header dimensions.
func (c *Controller) Config() Config { return c.cfg }

// State returns the most recently computed state.
func (c *Controller) State() State { return c.state }

// Phase returns the lifecycle stage.
func (c *Controller) Phase() Phase { return c.phase }

// Measurements returns a snapshot of the measurement cache.
func (c *Controller) Measurements() Measurements { return c.cache.snapshot() }

// OnScrollChanged recomputes the header for a new content scroll offset and
// notifies subscribers. Negative and non-finite offsets are treated as
// zero; offsets past the collapse distance keep the header collapsed.
func (c *Controller) OnScrollChanged(offset float64) State {
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		offset = 0
	}
	c.offset = max(offset, 0)
	c.recompute()
	return c.state
}

// Subscribe registers fn to be called synchronously after every
// recomputation. The returned func removes the subscription.
func (c *Controller) Subscribe(fn func(State)) (unsubscribe func()) {
	c.nextObsID++
	id := c.nextObsID
	c.observers = append(c.observers, observer{id: id, fn: fn})
	return func() {
		for i, o := range c.observers {
			if o.id == id {
				c.observers = append(c.observers[:i], c.observers[i+1:]...)
				return
			}
		}
	}
}

// Expect declares which decorations exist and must be measured before the
// header is Ready. Calling it marks the start of layout.
func (c *Controller) Expect(slots Slot) {
	c.expected = slots
	if c.phase == Uninitialized {
		c.phase = Measuring
	}
	c.updatePhase()
}

// CaptureNavigationIconWidth records the navigation icon width. Only the
// first call after mount or Reset takes effect; it reports whether it did.
func (c *Controller) CaptureNavigationIconWidth(width float64) bool {
	return c.captured(c.cache.navIcon.capture(width))
}

// CaptureActionsWidth records the width of the action row, write-once.
func (c *Controller) CaptureActionsWidth(width float64) bool {
	return c.captured(c.cache.actions.capture(width))
}

// CaptureTitleNaturalSize records the title size at full scale, write-once.
func (c *Controller) CaptureTitleNaturalSize(size Size) bool {
	return c.captured(c.cache.title.capture(size))
}

func (c *Controller) captured(changed bool) bool {
	if !changed {
		return false
	}
	if c.phase == Uninitialized {
		c.phase = Measuring
	}
	c.updatePhase()
	c.recompute()
	return true
}

func (c *Controller) updatePhase() {
	if c.phase == Measuring && c.cache.captured()&c.expected == c.expected {
		c.phase = Ready
	}
}

// Reset forgets all measurements, as on remount. Decorations are measured
// again on the next layout.
func (c *Controller) Reset() {
	c.cache = measurementCache{}
	c.expected = 0
	c.phase = Uninitialized
	c.recompute()
}

func (c *Controller) recompute() {
	c.state = c.compute(c.offset)
	for _, o := range c.observers {
		o.fn(c.state)
	}
}

// compute derives the full state for an offset. The height is clamped into
// the header range before any interpolation, so the fail-fast engine never
// sees an out-of-domain value.
func (c *Controller) compute(offset float64) State {
	minH := c.cfg.MinHeight()
	height := c.heights.Clamp(max(c.cfg.DefaultHeight-offset, minH))

	contentAlpha := c.mapHeight(height, interp.Unit)
	headerScale := c.mapHeight(height, interp.Unit)
	titleScale := c.mapHeight(height, c.cfg.TitleScale)
	lines := interp.RoundHalfUp(c.mapHeight(height, c.cfg.TitleLines))
	collapsedFraction := c.invert(headerScale)

	titleWidth := c.cache.title.value.Width
	titlePadding := c.cfg.TitlePadding * headerScale
	scaleDiff := (titleWidth - titleWidth*titleScale) / 2
	startPadding := c.cfg.ContentPadding - scaleDiff
	textPadding := collapsedFraction*c.cache.navIcon.value + c.cfg.CollapsedTitlePadding

	return State{
		ScrollOffset:   offset,
		HeaderHeight:   height,
		Progress:       contentAlpha,
		ContentAlpha:   contentAlpha,
		GradientAlpha:  c.invert(contentAlpha),
		ShadowAlpha:    contentAlpha,
		TitleScale:     titleScale,
		TitleLineClamp: lines,
		HeaderScale:    headerScale,
		TitleOffsetX: interp.Lerp(
			startPadding+titlePadding,
			startPadding+textPadding,
			collapsedFraction,
		),
		TitleOffsetY: -c.cfg.ToolbarHeight/2 - titlePadding,
		Collapsed:    height == minH,
	}
}

func (c *Controller) mapHeight(height float64, to interp.Range[float64]) float64 {
	v, err := interp.Map(height, c.heights, to)
	if err != nil {
		c.log.Error(err, "header height escaped its range")
		return interp.MapClamped(height, c.heights, to)
	}
	return v
}

func (c *Controller) invert(x float64) float64 {
	v, err := interp.Invert(x)
	if err != nil {
		c.log.Error(err, "alpha escaped [0, 1]")
		return 1 - interp.Unit.Clamp(x)
	}
	return v
}

// Gradient returns the toolbar brush at the current gradient opacity. It is
// transparent until a palette fetch succeeds.
func (c *Controller) Gradient() palette.Brush {
	return c.gradient.WithAlpha(c.state.GradientAlpha)
}

// GradientSource returns the image the current gradient was built from.
func (c *Controller) GradientSource() imagesrc.Source { return c.gradSource }

// Close cancels any in-flight gradient fetch and detaches subscribers.
// Results arriving afterwards are ignored.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.cancelFetch()
	c.observers = nil
	c.log.Debug("header closed")
}

// Closed reports whether Close has been called.
func (c *Controller) Closed() bool { return c.closed }

// fetchContext returns a context for a new fetch, bounded by the fetch timeout.
func (c *Controller) fetchContext() (context.Context, context.CancelFunc) {
	if c.timeout > 0 {
		return context.WithTimeout(context.Background(), c.timeout)
	}
	return context.WithCancel(context.Background())
}
