package testutil

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives a bubbletea model in tests: it records commands, can run
// them synchronously and feeds their messages back, the way the event loop
// would.
type Harness struct {
	model tea.Model
	cmds  []tea.Cmd
}

// NewHarness initializes m and captures its init command.
func NewHarness(m tea.Model) *Harness {
	h := &Harness{model: m}
	if cmd := m.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// Model returns the current model for type assertion.
func (h *Harness) Model() tea.Model {
	return h.model
}

// View returns the model's rendered content.
func (h *Harness) View() string {
	return h.model.View()
}

// Send delivers msg to the model and records the resulting command.
func (h *Harness) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// Resize sends a window size message.
func (h *Harness) Resize(width, height int) {
	h.Send(tea.WindowSizeMsg{Width: width, Height: height})
}

// SendKey simulates typing key.
func (h *Harness) SendKey(key string) tea.Cmd {
	return h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey sends a special key (down, pgdown, home, etc.).
func (h *Harness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.Send(tea.KeyMsg{Type: keyType})
}

// Commands returns recorded commands that have not been drained.
func (h *Harness) Commands() []tea.Cmd {
	return h.cmds
}

// Drain runs pending commands and feeds their messages back until no
// commands remain or limit rounds have run. Commands producing tea.QuitMsg
// or tick-style messages are the caller's concern: set limit accordingly.
// It returns every message delivered.
func (h *Harness) Drain(limit int) []tea.Msg {
	var delivered []tea.Msg
	for range limit {
		if len(h.cmds) == 0 {
			break
		}
		pending := h.cmds
		h.cmds = nil
		for _, cmd := range pending {
			for _, msg := range run(cmd) {
				delivered = append(delivered, msg)
				h.Send(msg)
			}
		}
	}
	return delivered
}

// run executes cmd, flattening batches.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}
