// Package app wires the collapsing header page into a runnable demo.
package app

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/llehouerou/parallax/internal/config"
	"github.com/llehouerou/parallax/internal/errmsg"
	"github.com/llehouerou/parallax/internal/header"
	"github.com/llehouerou/parallax/internal/icons"
	"github.com/llehouerou/parallax/internal/imagesrc"
	"github.com/llehouerou/parallax/internal/keymap"
	"github.com/llehouerou/parallax/internal/logger"
	"github.com/llehouerou/parallax/internal/palette"
	"github.com/llehouerou/parallax/internal/ui"
	"github.com/llehouerou/parallax/internal/ui/layout"
	"github.com/llehouerou/parallax/internal/ui/parallax"
	"github.com/llehouerou/parallax/internal/ui/render"
	"github.com/llehouerou/parallax/internal/ui/styles"
)

// Options describes what the demo shows.
type Options struct {
	Config *config.Config
	Title  string
	// Image is the header image; nil shows Banner instead, or a plain
	// header when Banner is empty too.
	Image  *imagesrc.Source
	Banner string
	Body   string
	Loader imagesrc.Loader
	// Samples lists resource names the "s" key cycles through.
	Samples []string
	Logger  *logger.Logger
}

// Model is the root application model.
type Model struct {
	ui.Base
	ctrl    *header.Controller
	page    *parallax.Model
	samples []string
	sample  int
	colors  []colorful.Color
	errMsg  string
	keys    *keymap.Resolver
	log     *logger.Logger
}

// New builds the page and its header controller.
func New(opts Options) (*Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	m := &Model{
		samples: opts.Samples,
		keys:    keymap.ForContext("global"),
		log:     opts.Logger,
	}
	ctrl, err := header.New(cfg.Header.Header(),
		header.WithLogger(opts.Logger),
		header.WithLoader(opts.Loader),
		header.WithGradientErrorHandler(m.gradientFailed),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errmsg.OpHeaderCreate, err)
	}
	m.ctrl = ctrl
	if opts.Image != nil {
		m.sample = max(slices.Index(opts.Samples, opts.Image.Name), 0)
	}

	pageOpts := parallax.Options{
		Title:          opts.Title,
		Image:          opts.Image,
		NavigationIcon: icons.Back(),
		Actions:        icons.Actions(),
		ToolbarBrush:   cfg.Header.ToolbarBrush,
		Shadow:         cfg.Header.Shadow,
		ContentScale:   cfg.Header.Scale(),
		MaxColors:      cfg.Header.MaxColors,
		SmoothScroll:   cfg.Header.SmoothScroll,
		OnGradient:     m.gradientApplied,
		Logger:         opts.Logger,
	}
	if opts.Image == nil && opts.Banner != "" {
		pageOpts.HeaderContent = banner(opts.Banner)
	}

	page, err := parallax.New(ctrl, opts.Loader, pageOpts)
	if err != nil {
		ctrl.Close()
		return nil, fmt.Errorf("%s: %w", errmsg.OpHeaderCreate, err)
	}
	page.SetContent(opts.Body)
	m.page = page
	return m, nil
}

// banner centres text in the expanded header and hides it once collapsed.
func banner(text string) parallax.ContentFunc {
	return func(collapsed bool, _ float64, width, height int) string {
		if collapsed {
			return ""
		}
		lines := make([]string, height/2)
		pad := max((width-lipgloss.Width(text))/2, 0)
		return strings.Join(lines, "\n") + "\n" + strings.Repeat(" ", pad) + text
	}
}

// gradientApplied runs on the event loop when a palette gradient lands.
func (m *Model) gradientApplied(b palette.Brush) {
	m.colors = b.Colors()
	m.errMsg = ""
	m.log.WithFields(map[string]any{"colors": b.Hex()}).Info("palette applied")
}

// gradientFailed shows a palette failure in the footer. The header keeps
// its previous gradient.
func (m *Model) gradientFailed(src imagesrc.Source, err error) {
	m.errMsg = errmsg.FormatWith(errmsg.OpPaletteExtract, src.String(), err)
}

// Controller returns the header controller.
func (m *Model) Controller() *header.Controller { return m.ctrl }

// Page returns the header page.
func (m *Model) Page() *parallax.Model { return m.page }

// Close stops any in-flight palette fetch.
func (m *Model) Close() {
	m.ctrl.Close()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.page.Init()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.page.SetSize(msg.Width, layout.PageHeight(msg.Height, ui.FooterHeight))
		return m, nil
	case tea.KeyMsg:
		switch m.keys.Resolve(msg.String()) {
		case keymap.ActionQuit:
			m.Close()
			return m, tea.Quit
		case keymap.ActionNextSample:
			return m, m.nextSample()
		}
	}

	_, cmd := m.page.Update(msg)
	return m, cmd
}

// nextSample switches the header to the next sample image.
func (m *Model) nextSample() tea.Cmd {
	if len(m.samples) == 0 {
		return nil
	}
	m.sample = (m.sample + 1) % len(m.samples)
	cmd, err := m.page.SetImage(imagesrc.Resource(m.samples[m.sample]))
	if err != nil {
		m.errMsg = errmsg.Format(errmsg.OpImageLoad, err)
		return nil
	}
	return cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	w, h := m.Size()
	if !m.Ready() {
		return ""
	}
	if w < ui.MinWidth || h < ui.MinHeight {
		return styles.T().S().Muted.Render("Terminal too small")
	}
	return m.page.View() + "\n" + m.footer(w)
}

func (m *Model) footer(width int) string {
	t := styles.T()
	left := styles.ApplyBoldGradient("parallax", t.Primary, t.Secondary)

	st := m.ctrl.State()
	status := fmt.Sprintf(" offset %.0f  height %.1f", st.ScrollOffset, st.HeaderHeight)
	if st.Collapsed {
		status += "  collapsed"
	}
	left += t.S().Muted.Render(status)

	right := m.swatches()
	if m.errMsg != "" {
		right = t.S().Error.Render(render.Truncate(m.errMsg, max(width/2, 1)))
	}
	return render.Row(left, right, width)
}

func (m *Model) swatches() string {
	var b strings.Builder
	for _, c := range m.colors {
		b.WriteString(lipgloss.NewStyle().Foreground(styles.Lip(c)).Render("■"))
	}
	return b.String()
}
