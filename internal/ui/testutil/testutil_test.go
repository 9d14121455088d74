package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", "hello"},
		{"sgr color", "\x1b[38;2;255;0;0mred\x1b[0m", "red"},
		{"bold and reset", "\x1b[1mbold\x1b[m text", "bold text"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMeasureWidth(t *testing.T) {
	assert.Equal(t, 5, MeasureWidth("\x1b[1mhello\x1b[0m"))
	assert.Equal(t, 4, MeasureWidth("日本"))
}

func TestFindLine(t *testing.T) {
	output := "header\n\x1b[1mtitle\x1b[0m\nbody"

	assert.Equal(t, 1, FindLine(output, "title"))
	assert.Equal(t, -1, FindLine(output, "missing"))
	assert.True(t, ContainsLine(output, "body"))
	assert.False(t, ContainsLine(output, "footer"))
}

func TestCountLines(t *testing.T) {
	assert.Equal(t, 2, CountLines("one\n   \ntwo\n"))
	assert.Equal(t, 0, CountLines(""))
	assert.Equal(t, []string{"a", "b"}, Lines("\x1b[1ma\x1b[0m\nb"))
}

type pingMsg struct{}

type pongMsg struct{}

// counter counts pongs; each ping schedules a pong.
type counter struct {
	pongs int
	keys  string
	w, h  int
}

func (c counter) Init() tea.Cmd {
	return func() tea.Msg { return pingMsg{} }
}

func (c counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pingMsg:
		return c, tea.Batch(
			func() tea.Msg { return pongMsg{} },
			func() tea.Msg { return pongMsg{} },
		)
	case pongMsg:
		c.pongs++
	case tea.KeyMsg:
		c.keys += msg.String()
	case tea.WindowSizeMsg:
		c.w, c.h = msg.Width, msg.Height
	}
	return c, nil
}

func (c counter) View() string { return c.keys }

func TestHarnessDrainFollowsCommands(t *testing.T) {
	h := NewHarness(counter{})
	require.Len(t, h.Commands(), 1)

	msgs := h.Drain(5)

	assert.Len(t, msgs, 3, "ping then two batched pongs")
	assert.Equal(t, 2, h.Model().(counter).pongs)
	assert.Empty(t, h.Commands())
}

func TestHarnessKeysAndResize(t *testing.T) {
	h := NewHarness(counter{})
	h.Resize(80, 24)
	h.SendKey("j")
	h.SendSpecialKey(tea.KeyDown)

	c := h.Model().(counter)
	assert.Equal(t, 80, c.w)
	assert.Equal(t, 24, c.h)
	assert.Equal(t, "jdown", h.View())
}
