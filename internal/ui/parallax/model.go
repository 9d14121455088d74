// Package parallax renders a collapsing header over scrolling content as a
// bubbletea model. Scrolling the content shrinks the header from its
// expanded height down to the toolbar, fading the header image out and the
// palette gradient in while the title shrinks into the toolbar.
package parallax

import (
	"context"
	"image"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/parallax/internal/header"
	"github.com/llehouerou/parallax/internal/imagesrc"
	"github.com/llehouerou/parallax/internal/keymap"
	"github.com/llehouerou/parallax/internal/logger"
	"github.com/llehouerou/parallax/internal/palette"
	"github.com/llehouerou/parallax/internal/ui"
	"github.com/llehouerou/parallax/internal/ui/halfblock"
	"github.com/llehouerou/parallax/internal/ui/layout"
	"github.com/llehouerou/parallax/internal/ui/render"
	"github.com/llehouerou/parallax/internal/ui/styles"
)

const imageLoadTimeout = 10 * time.Second

// Compile-time check that Model implements tea.Model.
var _ tea.Model = (*Model)(nil)

// imageMsg carries a decoded header image back to the event loop.
type imageMsg struct {
	id     string
	source imagesrc.Source
	img    image.Image
	err    error
}

// Model is a page with a collapsing header. The header controller is owned
// by the caller, which must Close it when the page goes away.
type Model struct {
	ui.Base
	ctrl   *header.Controller
	loader imagesrc.Loader
	opts   Options
	log    *logger.Logger
	keys   *keymap.Resolver

	vp     viewport.Model
	body   string
	offset float64
	anim   animation

	img image.Image
	pic *halfblock.Picture
}

// New creates a page over ctrl. loader resolves the header image. It fails
// with ErrConflictingHeader when both an image and header content are set.
func New(ctrl *header.Controller, loader imagesrc.Loader, opts Options) (*Model, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.MaxColors <= 0 {
		opts.MaxColors = palette.DefaultMaxColors
	}
	vp := viewport.New(0, 0)
	vp.KeyMap = viewport.KeyMap{}

	return &Model{
		ctrl:   ctrl,
		loader: loader,
		opts:   opts,
		log:    opts.Logger.WithFields(map[string]any{"header": ctrl.ID()}),
		keys:   keymap.ForContext("scroll"),
		vp:     vp,
		anim:   newAnimation(),
	}, nil
}

// Controller returns the header controller driving the page.
func (m *Model) Controller() *header.Controller { return m.ctrl }

// Offset returns the current scroll offset in rows.
func (m *Model) Offset() float64 { return m.offset }

// Init loads the header image and, with the toolbar brush enabled, starts
// the palette gradient fetch.
func (m *Model) Init() tea.Cmd {
	if m.opts.Image == nil {
		return nil
	}
	return m.requestImage(*m.opts.Image)
}

// SetImage switches the header image. It does nothing when the image is
// unchanged and fails when the page shows header content instead.
func (m *Model) SetImage(src imagesrc.Source) (tea.Cmd, error) {
	if m.opts.HeaderContent != nil {
		return nil, ErrConflictingHeader
	}
	if m.opts.Image != nil && m.opts.Image.Key() == src.Key() {
		return nil, nil
	}
	m.opts.Image = &src
	return m.requestImage(src), nil
}

func (m *Model) requestImage(src imagesrc.Source) tea.Cmd {
	cmds := []tea.Cmd{m.loadImage(src)}
	if m.opts.ToolbarBrush {
		cmds = append(cmds, m.ctrl.RequestPaletteGradient(src, m.opts.MaxColors, m.opts.OnGradient))
	}
	return tea.Batch(cmds...)
}

func (m *Model) loadImage(src imagesrc.Source) tea.Cmd {
	loader, id := m.loader, m.ctrl.ID()
	if loader == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), imageLoadTimeout)
		defer cancel()
		img, err := loader.Load(ctx, src)
		return imageMsg{id: id, source: src, img: img, err: err}
	}
}

// SetContent replaces the scrolling body text. It is wrapped to the page
// width inside the content padding.
func (m *Model) SetContent(body string) {
	m.body = body
	m.refreshContent()
}

// SetSize lays the page out for a width by height area. The first layout
// measures the toolbar decorations and the title.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.vp.Width = width
	m.vp.Height = height
	m.refreshContent()
	m.measure()
	m.repaint()
	m.stopAnimation()
	m.vp.SetYOffset(int(math.Round(m.offset)))
	m.syncOffset()
}

// refreshContent rebuilds the viewport lines: one blank row per expanded
// header row, so the body starts right under the expanded header and the
// header collapses as the blank rows scroll away, then the wrapped body.
func (m *Model) refreshContent() {
	w := m.Width()
	if w == 0 {
		return
	}
	cfg := m.ctrl.Config()
	pad := layout.Rows(cfg.ContentPadding)
	body := render.Wrap(m.body, max(w-2*pad, 1), pad)
	m.vp.SetContent(strings.Repeat("\n", layout.Rows(cfg.DefaultHeight)) + body)
}

func (m *Model) measure() {
	if !m.Ready() {
		return
	}
	var slots header.Slot
	if m.opts.NavigationIcon != "" {
		slots |= header.SlotNavigationIcon
	}
	if m.opts.Actions != "" {
		slots |= header.SlotActions
	}
	if m.opts.Title != "" {
		slots |= header.SlotTitle
	}
	if m.ctrl.Phase() == header.Uninitialized {
		m.ctrl.Expect(slots)
	}

	if slots&header.SlotNavigationIcon != 0 {
		m.ctrl.CaptureNavigationIconWidth(float64(lipgloss.Width(m.opts.NavigationIcon)))
	}
	if slots&header.SlotActions != 0 {
		m.ctrl.CaptureActionsWidth(float64(lipgloss.Width(m.opts.Actions)))
	}
	if slots&header.SlotTitle != 0 {
		w, h := render.NaturalSize(m.opts.Title, layout.TitleWidth(m.Width(), m.ctrl.Config().ContentPadding))
		m.ctrl.CaptureTitleNaturalSize(header.Size{Width: float64(w), Height: float64(h)})
	}
}

// repaint resamples the header image for the current width.
func (m *Model) repaint() {
	if m.img == nil || m.Width() == 0 {
		m.pic = nil
		return
	}
	rows := layout.Rows(m.ctrl.Config().DefaultHeight)
	bg := styles.Colorful(styles.T().BgBase)
	m.pic = halfblock.NewPicture(m.img, m.Width(), rows, m.opts.ContentScale, bg)
}

// Update handles scrolling input, image loads and palette results.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	case header.GradientMsg:
		m.ctrl.Update(msg)
		return m, nil
	case imageMsg:
		m.handleImage(msg)
		return m, nil
	case frameMsg:
		return m, m.handleFrame(msg)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		m.stopAnimation()
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		m.syncOffset()
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	page := float64(max(m.Height()-layout.Rows(m.ctrl.Config().MinHeight()), 1))
	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionScrollDown:
		return m.scrollBy(1)
	case keymap.ActionScrollUp:
		return m.scrollBy(-1)
	case keymap.ActionPageDown:
		return m.scrollTo(m.target()+page, true)
	case keymap.ActionPageUp:
		return m.scrollTo(m.target()-page, true)
	case keymap.ActionHalfPageDown:
		return m.scrollTo(m.target()+page/2, true)
	case keymap.ActionHalfPageUp:
		return m.scrollTo(m.target()-page/2, true)
	case keymap.ActionJumpStart:
		return m.scrollTo(0, true)
	case keymap.ActionJumpEnd:
		return m.scrollTo(m.maxOffset(), true)
	}
	return nil
}

// target is where the content is heading: the animation target while
// animating, the current offset otherwise.
func (m *Model) target() float64 {
	if m.anim.active {
		return m.anim.target
	}
	return m.offset
}

func (m *Model) handleImage(msg imageMsg) {
	if msg.id != m.ctrl.ID() || m.opts.Image == nil || msg.source.Key() != m.opts.Image.Key() {
		return
	}
	if msg.err != nil {
		m.log.WithFields(map[string]any{"source": msg.source.Key()}).WarnErr(msg.err, "header image unavailable")
		return
	}
	m.img = msg.img
	m.repaint()
}

// View renders the header over the top rows of the scrolled content.
func (m *Model) View() string {
	if !m.Ready() {
		return ""
	}
	st := m.ctrl.State()
	rows := min(layout.Rows(st.HeaderHeight), m.Height())

	lines := strings.Split(m.vp.View(), "\n")
	for i, l := range m.renderHeader(st, rows) {
		if i < len(lines) {
			lines[i] = l
		}
	}
	return strings.Join(lines, "\n")
}
