package icons

import "testing"

func TestInit(t *testing.T) {
	tests := []struct {
		name     string
		style    string
		expected Icons
	}{
		{"nerd style", "nerd", nerdIcons},
		{"unicode style", "unicode", unicodeIcons},
		{"none style", "none", noneIcons},
		{"empty string defaults to unicode", "", unicodeIcons},
		{"unknown style defaults to unicode", "invalid", unicodeIcons},
		{"case sensitive", "NERD", unicodeIcons},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.style)
			if current != tt.expected {
				t.Errorf("Init(%q) selected %+v, want %+v", tt.style, current, tt.expected)
			}
		})
	}

	Init("unicode")
}

func TestToolbarIcons(t *testing.T) {
	t.Cleanup(func() { Init("unicode") })

	tests := []struct {
		style   string
		back    string
		actions string
	}{
		{"unicode", "←", "♡ ⇪ ⋮"},
		{"none", "<", "* ^ ="},
		{"nerd", "\uf060", "󰣐 \uf1e0 󰇙"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			Init(tt.style)
			if got := Back(); got != tt.back {
				t.Errorf("Back() = %q, want %q", got, tt.back)
			}
			if got := Actions(); got != tt.actions {
				t.Errorf("Actions() = %q, want %q", got, tt.actions)
			}
			if got := Favorite(); got != current.Favorite {
				t.Errorf("Favorite() = %q, want %q", got, current.Favorite)
			}
		})
	}
}
