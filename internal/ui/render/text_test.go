package render

import (
	"reflect"
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{
			name:     "no truncation needed",
			input:    "hello",
			maxWidth: 10,
			want:     "hello",
		},
		{
			name:     "exact fit",
			input:    "hello",
			maxWidth: 5,
			want:     "hello",
		},
		{
			name:     "truncation with ellipsis",
			input:    "hello world",
			maxWidth: 8,
			want:     "hello w…",
		},
		{
			name:     "zero width",
			input:    "hello",
			maxWidth: 0,
			want:     "",
		},
		{
			name:     "empty string",
			input:    "",
			maxWidth: 10,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxWidth)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean text", "Mountains", "Mountains"},
		{"control chars dropped", "Moun\x07tains", "Mountains"},
		{"newline kept", "two\nlines", "two\nlines"},
		{"nbsp replaced", "a\u00a0b", "a b"},
		{"invalid byte dropped", "a\xffb", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestClampLines(t *testing.T) {
	const title = "the quick brown fox jumps"

	tests := []struct {
		name     string
		text     string
		width    int
		maxLines int
		want     []string
	}{
		{
			name:     "fits in three lines",
			text:     title,
			width:    10,
			maxLines: 3,
			want:     []string{"the quick", "brown fox", "jumps"},
		},
		{
			name:     "clamped to two lines",
			text:     title,
			width:    10,
			maxLines: 2,
			want:     []string{"the quick", "brown fox…"},
		},
		{
			name:     "clamped to one line",
			text:     title,
			width:    10,
			maxLines: 1,
			want:     []string{"the quick…"},
		},
		{
			name:     "last line already full",
			text:     "abcdefghij klm",
			width:    10,
			maxLines: 1,
			want:     []string{"abcdefghi…"},
		},
		{
			name:     "long word is broken",
			text:     "supercalifragilistic",
			width:    8,
			maxLines: 3,
			want:     []string{"supercal", "ifragili", "stic"},
		},
		{
			name:     "empty text",
			text:     "   ",
			width:    10,
			maxLines: 3,
			want:     nil,
		},
		{
			name:     "zero width",
			text:     title,
			width:    0,
			maxLines: 3,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampLines(tt.text, tt.width, tt.maxLines)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ClampLines() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNaturalSize(t *testing.T) {
	w, h := NaturalSize("the quick brown fox jumps", 10)
	if w != 9 || h != 3 {
		t.Errorf("NaturalSize() = %dx%d, want 9x3", w, h)
	}

	w, h = NaturalSize("", 10)
	if w != 0 || h != 0 {
		t.Errorf("NaturalSize(empty) = %dx%d, want 0x0", w, h)
	}
}

func TestOverlay(t *testing.T) {
	tests := []struct {
		name string
		bg   string
		fg   string
		col  int
		want string
	}{
		{"inside", "abcdefghij", "XY", 3, "abcXYfghij"},
		{"at start", "abcdefghij", "XY", 0, "XYcdefghij"},
		{"overflows end", "abcdefghij", "XY", 9, "abcdefghiXY"},
		{"past end", "abcdefghij", "XY", 12, "abcdefghij  XY"},
		{"negative column", "abcdefghij", "XYZ", -1, "YZcdefghij"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlay(tt.bg, tt.fg, tt.col); got != tt.want {
				t.Errorf("Overlay() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPad(t *testing.T) {
	if got := Pad("ab", 5); got != "ab   " {
		t.Errorf("Pad() = %q, want %q", got, "ab   ")
	}
	if got := Pad("abcdef", 3); got != "abcdef" {
		t.Errorf("Pad() should not truncate, got %q", got)
	}
}

func TestRow(t *testing.T) {
	tests := []struct {
		name  string
		left  string
		right string
		width int
		want  string
	}{
		{
			name:  "basic row",
			left:  "<",
			right: "+ x",
			width: 10,
			want:  "<      + x",
		},
		{
			name:  "minimum gap",
			left:  "left",
			right: "right",
			width: 5,
			want:  "left right",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Row(tt.left, tt.right, tt.width); got != tt.want {
				t.Errorf("Row() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEmptyLine(t *testing.T) {
	if got := EmptyLine(4); got != strings.Repeat(" ", 4) {
		t.Errorf("EmptyLine(4) = %q", got)
	}
	if got := EmptyLine(-1); got != "" {
		t.Errorf("EmptyLine(-1) = %q, want empty", got)
	}
}

func TestWrap(t *testing.T) {
	got := Wrap("the quick brown fox", 10, 2)
	want := "  the quick\n  brown fox"
	if got != want {
		t.Errorf("Wrap() = %q, want %q", got, want)
	}

	if got := Wrap("abc", 0, 2); got != "" {
		t.Errorf("Wrap(width 0) = %q, want empty", got)
	}
}
