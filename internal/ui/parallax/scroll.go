package parallax

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"github.com/llehouerou/parallax/internal/ui"
)

const (
	springFrequency = 6.0
	springDamping   = 1.0
	// settleEpsilon is how close to rest, in rows, a spring must get to stop.
	settleEpsilon = 0.01
)

// frameMsg advances the scroll animation of the model with the same id.
type frameMsg struct {
	id  string
	gen int
}

// animation is a spring-driven scroll toward target.
type animation struct {
	spring harmonica.Spring
	active bool
	gen    int
	pos    float64
	vel    float64
	target float64
}

func newAnimation() animation {
	return animation{spring: harmonica.NewSpring(harmonica.FPS(ui.FrameRate), springFrequency, springDamping)}
}

// step advances one frame and reports whether the spring came to rest.
func (a *animation) step() bool {
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.target)
	if math.Abs(a.pos-a.target) < settleEpsilon && math.Abs(a.vel) < settleEpsilon {
		a.pos, a.vel = a.target, 0
		a.active = false
		return true
	}
	return false
}

func (m *Model) maxOffset() float64 {
	return float64(max(m.vp.TotalLineCount()-m.vp.Height, 0))
}

// scrollBy moves the content by delta rows. During an animation the
// target moves instead so line scrolling stays smooth.
func (m *Model) scrollBy(delta float64) tea.Cmd {
	if m.anim.active {
		m.anim.target = clampOffset(m.anim.target+delta, m.maxOffset())
		return nil
	}
	return m.scrollTo(m.offset+delta, false)
}

// scrollTo moves the content to target, animated for page jumps when
// smooth scrolling is enabled.
func (m *Model) scrollTo(target float64, animate bool) tea.Cmd {
	target = clampOffset(target, m.maxOffset())
	if !m.opts.SmoothScroll || !animate {
		m.stopAnimation()
		m.vp.SetYOffset(int(math.Round(target)))
		m.setOffset(float64(m.vp.YOffset))
		return nil
	}

	m.anim.target = target
	if m.anim.active {
		return nil
	}
	m.anim.active = true
	m.anim.gen++
	m.anim.pos = m.offset
	m.anim.vel = 0
	return m.frame()
}

func (m *Model) stopAnimation() {
	if m.anim.active {
		m.anim.active = false
		m.anim.gen++
	}
}

func (m *Model) frame() tea.Cmd {
	msg := frameMsg{id: m.ctrl.ID(), gen: m.anim.gen}
	return tea.Tick(time.Second/ui.FrameRate, func(time.Time) tea.Msg {
		return msg
	})
}

func (m *Model) handleFrame(msg frameMsg) tea.Cmd {
	if msg.id != m.ctrl.ID() || msg.gen != m.anim.gen || !m.anim.active {
		return nil
	}
	done := m.anim.step()
	pos := clampOffset(m.anim.pos, m.maxOffset())
	m.vp.SetYOffset(int(math.Round(pos)))
	m.setOffset(pos)
	if done {
		return nil
	}
	return m.frame()
}

// syncOffset pulls the offset from the viewport after it scrolled itself.
func (m *Model) syncOffset() {
	m.setOffset(float64(m.vp.YOffset))
}

// setOffset pushes a scroll offset to the header controller.
func (m *Model) setOffset(offset float64) {
	m.offset = offset
	m.ctrl.OnScrollChanged(offset)
}

func clampOffset(v, upper float64) float64 {
	return max(0, min(v, upper))
}
