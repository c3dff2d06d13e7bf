// Package overlay paints ANSI-styled blocks on top of each other.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Canvas returns height blank lines of the given width.
func Canvas(width, height int) []string {
	lines := make([]string, max(height, 0))
	blank := strings.Repeat(" ", max(width, 0))
	for i := range lines {
		lines[i] = blank
	}
	return lines
}

// Place paints block onto canvas with its top-left cell at (x, y). The
// block is opaque: its spaces hide what is below. Parts falling outside
// the canvas are clipped, so x and y may be negative. Each line of block
// may additionally be shifted by shift(i) columns.
func Place(canvas []string, block string, x, y, width int, shift func(line int) int) {
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= len(canvas) {
			continue
		}
		lx := x
		if shift != nil {
			lx += shift(i)
		}
		lineWidth := ansi.StringWidth(line)
		left := max(lx, 0)
		right := min(lx+lineWidth, width)
		if left >= right {
			continue
		}
		segment := ansi.Cut(line, left-lx, right-lx)
		base := canvas[row]
		canvas[row] = ansi.Cut(base, 0, left) + segment + ansi.Cut(base, right, width)
	}
}

// Compose overlays content on top of a base view.
// Non-space characters in overlay replace the base at the same position;
// leading and trailing spaces on each overlay line are transparent.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")

	for i, overlayLine := range strings.Split(overlay, "\n") {
		if i >= len(baseLines) {
			break
		}

		plain := ansi.Strip(overlayLine)
		if strings.TrimSpace(plain) == "" {
			continue
		}

		startCol := ansi.StringWidth(plain) - ansi.StringWidth(strings.TrimLeft(plain, " "))
		endCol := ansi.StringWidth(strings.TrimRight(plain, " "))

		baseLine := baseLines[i]
		if w := ansi.StringWidth(baseLine); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		result := ansi.Cut(baseLine, 0, startCol) + ansi.Cut(overlayLine, startCol, endCol)
		if endCol < width {
			result += ansi.Cut(baseLine, endCol, width)
		}
		baseLines[i] = result
	}

	return strings.Join(baseLines, "\n")
}
