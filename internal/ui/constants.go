// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// FooterHeight is the single status line under the page.
	FooterHeight = 1

	// MinWidth is the narrowest terminal the page renders in.
	MinWidth = 20

	// MinHeight is the shortest terminal the page renders in.
	MinHeight = 5

	// FrameRate drives scroll animations, in frames per second.
	FrameRate = 60
)
