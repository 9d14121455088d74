package keymap

import "strings"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "scroll"
}

// All contains all key bindings.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c", "esc"}, "Quit", "global"},
	{ActionNextSample, []string{"s"}, "Next sample image", "global"},

	// Scroll
	{ActionScrollDown, []string{"down", "j"}, "Scroll down", "scroll"},
	{ActionScrollUp, []string{"up", "k"}, "Scroll up", "scroll"},
	{ActionPageDown, []string{"pgdown", " ", "f"}, "Page down", "scroll"},
	{ActionPageUp, []string{"pgup", "b"}, "Page up", "scroll"},
	{ActionHalfPageDown, []string{"ctrl+d"}, "Half page down", "scroll"},
	{ActionHalfPageUp, []string{"ctrl+u"}, "Half page up", "scroll"},
	{ActionJumpStart, []string{"home", "g"}, "Top", "scroll"},
	{ActionJumpEnd, []string{"end", "G"}, "Bottom", "scroll"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Hint renders bindings as "key description" pairs using each binding's
// first key.
func Hint(bindings []Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		parts = append(parts, displayKey(b.Keys[0])+" "+strings.ToLower(b.Description))
	}
	return strings.Join(parts, " · ")
}

func displayKey(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
