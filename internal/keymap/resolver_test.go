package keymap

import (
	"slices"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionPageDown, []string{" "}, "Page down", "scroll"},
		{ActionScrollUp, []string{"k", "up"}, "Scroll up", "scroll"},
	}

	r := NewResolver(bindings)

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{" ", ActionPageDown},
		{"k", ActionScrollUp},
		{"up", ActionScrollUp},
		{"unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := r.Resolve(tt.key); got != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.expected)
			}
		})
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionJumpEnd, []string{"end", "G"}, "Bottom", "scroll"},
	})

	if got := r.KeysFor(ActionQuit); !slices.Equal(got, []string{"q", "ctrl+c"}) {
		t.Errorf("KeysFor(quit) = %v", got)
	}
	if got := r.KeysFor(Action("unknown")); got != nil {
		t.Errorf("KeysFor(unknown) = %v, want nil", got)
	}
}

func TestResolver_DeduplicatesKeys(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionScrollDown, []string{"j", "down"}, "Scroll down", "scroll"},
		{ActionScrollDown, []string{"j"}, "Scroll down", "global"},
	})

	if got := r.KeysFor(ActionScrollDown); !slices.Equal(got, []string{"j", "down"}) {
		t.Errorf("KeysFor() = %v, want deduplicated keys", got)
	}
}

func TestForContext(t *testing.T) {
	scroll := ForContext("scroll")
	if got := scroll.Resolve("G"); got != ActionJumpEnd {
		t.Errorf("Resolve(G) = %q, want %q", got, ActionJumpEnd)
	}
	if got := scroll.Resolve("q"); got != "" {
		t.Errorf("scroll context should not see global keys, got %q", got)
	}

	global := ForContext("global")
	if got := global.Resolve("esc"); got != ActionQuit {
		t.Errorf("Resolve(esc) = %q, want %q", got, ActionQuit)
	}
}

func TestDedupe(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"no duplicates", []string{"a", "b", "c"}, []string{"a", "b", "c"}},
		{"with duplicates", []string{"a", "b", "a", "c", "b"}, []string{"a", "b", "c"}},
		{"empty slice", []string{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dedupe(tt.input); !slices.Equal(got, tt.expected) {
				t.Errorf("dedupe(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
