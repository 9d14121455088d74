// Package testutil provides common testing utilities for UI components.
package testutil

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;:]*m`)

// StripANSI removes ANSI escape codes from a string for easier testing.
// This allows comparing rendered output without style interference.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// MeasureWidth returns the visual width of a string, accounting for
// wide characters (CJK, emoji) and stripping ANSI codes.
func MeasureWidth(s string) int {
	return lipgloss.Width(StripANSI(s))
}

// ContainsLine checks if any line in the output contains the given substring.
func ContainsLine(output, substr string) bool {
	return FindLine(output, substr) >= 0
}

// FindLine returns the index of the first line containing substr, ignoring
// styling, or -1.
func FindLine(output, substr string) int {
	for i, line := range strings.Split(StripANSI(output), "\n") {
		if strings.Contains(line, substr) {
			return i
		}
	}
	return -1
}

// Lines splits rendered output into unstyled lines.
func Lines(output string) []string {
	return strings.Split(StripANSI(output), "\n")
}

// CountLines returns the number of non-empty lines in the output.
func CountLines(output string) int {
	count := 0
	for _, line := range Lines(output) {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}
