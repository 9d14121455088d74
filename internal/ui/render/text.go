// Package render provides text rendering utilities for TUI components.
package render

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// Ellipsis marks text cut short by truncation or line clamping.
const Ellipsis = "…"

// Sanitize removes control characters (except tab and newline) and invalid
// UTF-8 bytes, and turns non-breaking spaces into plain ones so titles wrap.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			i++
			continue
		}
		if r != '\t' && r != '\n' && unicode.IsControl(r) {
			i += size
			continue
		}
		// Replace non-breaking space with regular space
		if r == '\u00a0' {
			b.WriteByte(' ')
			i += size
			continue
		}
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}

// needsSanitize returns true if the string contains bytes that need sanitizing.
func needsSanitize(s string) bool {
	for i := range len(s) {
		b := s[i]
		if b < 0x20 && b != '\t' && b != '\n' {
			return true
		}
		if b >= 0x80 && b <= 0x9f {
			return true
		}
		if b == 0xc2 {
			if i+1 < len(s) && s[i+1] == 0xa0 {
				return true
			}
		}
	}
	return false
}

// Truncate shortens a string to fit within maxWidth, adding an ellipsis if truncated.
// Uses runewidth for proper handling of wide characters (CJK, emoji).
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(Sanitize(s), maxWidth, Ellipsis)
}

// Pad fills a string with spaces to reach the specified width.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// ClampLines word-wraps text to width and keeps at most maxLines lines. When
// lines are dropped the last kept line ends with an ellipsis.
func ClampLines(text string, width, maxLines int) []string {
	if width <= 0 || maxLines <= 0 {
		return nil
	}
	text = strings.TrimSpace(Sanitize(text))
	if text == "" {
		return nil
	}

	wrapped := wrap.String(wordwrap.String(text, width), width)
	lines := strings.Split(wrapped, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	if len(lines) <= maxLines {
		return lines
	}

	lines = lines[:maxLines]
	last := lines[maxLines-1]
	if runewidth.StringWidth(last)+runewidth.StringWidth(Ellipsis) > width {
		last = runewidth.Truncate(last, width-1, "") + Ellipsis
	} else {
		last += Ellipsis
	}
	lines[maxLines-1] = last
	return lines
}

// Wrap word-wraps text to width, breaking words longer than a line, and
// indents every line by margin columns.
func Wrap(text string, width, margin int) string {
	if width <= 0 {
		return ""
	}
	wrapped := wrap.String(wordwrap.String(Sanitize(text), width), width)
	if margin <= 0 {
		return wrapped
	}
	return indent.String(wrapped, uint(margin))
}

// NaturalSize returns the width and line count of text wrapped to maxWidth.
func NaturalSize(text string, maxWidth int) (width, height int) {
	lines := ClampLines(text, maxWidth, math.MaxInt)
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l))
	}
	return width, len(lines)
}

// Overlay writes fg over bg starting at column col, keeping the styled bg
// cells on either side. Columns past the end of bg are padded with spaces.
func Overlay(bg, fg string, col int) string {
	if col < 0 {
		fg = ansi.TruncateLeft(fg, -col, "")
		col = 0
	}
	bgWidth := lipgloss.Width(bg)
	if col > bgWidth {
		bg += strings.Repeat(" ", col-bgWidth)
		bgWidth = col
	}
	fgWidth := lipgloss.Width(fg)
	left := ansi.Truncate(bg, col, "")
	right := ""
	if col+fgWidth < bgWidth {
		right = ansi.TruncateLeft(bg, col+fgWidth, "")
	}
	return left + fg + right
}

// Row creates a row with left and right aligned content separated by spaces.
// The total width of the output will be exactly width characters.
func Row(left, right string, width int) string {
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	gap := max(width-leftWidth-rightWidth, 1)
	return left + strings.Repeat(" ", gap) + right
}

// EmptyLine creates an empty line (spaces) of the specified width.
func EmptyLine(width int) string {
	return strings.Repeat(" ", max(width, 0))
}
