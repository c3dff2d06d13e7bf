// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// HeaderHeight is the space for the deck title line and its separator.
	HeaderHeight = 2

	// FooterHeight is the separator plus the help or error line.
	FooterHeight = 2

	// ProgressHeight is the blank line above the progress track plus the
	// track itself.
	ProgressHeight = 2

	// MinProgressBarWidth is the minimum width for a usable progress bar.
	MinProgressBarWidth = 5

	// MinCardWidth is the narrowest card the carousel will draw, border
	// included.
	MinCardWidth = 12
)
