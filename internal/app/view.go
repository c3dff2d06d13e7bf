// internal/app/view.go
package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/cardstack/internal/keymap"
	"github.com/llehouerou/cardstack/internal/slider"
	"github.com/llehouerou/cardstack/internal/ui/overlay"
	"github.com/llehouerou/cardstack/internal/ui/render"
	"github.com/llehouerou/cardstack/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	// Can't render before we know terminal size
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	lines := make([]string, 0, m.Height)
	lines = append(lines, m.renderHeader()...)

	top := m.carouselTop()
	for len(lines) < top {
		lines = append(lines, "")
	}
	if body := m.Carousel.View(); body != "" {
		lines = append(lines, strings.Split(body, "\n")...)
	}
	for len(lines) < m.Height-len(m.renderFooter()) {
		lines = append(lines, "")
	}
	lines = append(lines, m.renderFooter()...)

	view := enforceHeight(strings.Join(lines, "\n"), m.Height)

	if m.ShowHelp {
		view = overlay.Compose(view, m.renderHelp(), m.Width)
	}
	return view
}

// Position returns the focused card as "3rd of 12".
func (m Model) Position() string {
	items := m.Carousel.Slider().Items()
	if len(items) == 0 {
		return "empty deck"
	}
	index := m.Carousel.Slider().ActiveIndex() % len(items)
	return fmt.Sprintf("%s of %d", humanize.Ordinal(index+1), len(items))
}

func (m Model) renderHeader() []string {
	t := styles.T()
	title := t.S().Title.Render(render.Truncate(render.Sanitize(m.Deck.Title), m.Width/2))
	return []string{
		render.Row(" "+title, t.S().Muted.Render(m.Position())+" ", m.Width),
		t.S().Subtle.Render(render.Separator(m.Width)),
	}
}

func (m Model) renderFooter() []string {
	t := styles.T()
	var status string
	if m.ErrorMsg != "" {
		status = " " + t.S().Error.Render(render.Truncate(m.ErrorMsg, m.Width-2))
	} else {
		cursor := "◇ " + slider.CursorGrab
		if m.Carousel.CursorStyle() == slider.CursorGrabbing {
			cursor = "◆ " + slider.CursorGrabbing
		}
		status = render.Row(" "+m.Help.View(keymap.NewHelpKeyMap(keymap.All)), t.S().Subtle.Render(cursor)+" ", m.Width)
	}
	return []string{
		t.S().Subtle.Render(render.Separator(m.Width)),
		status,
	}
}

// renderHelp returns the full key help as a box centered on screen, padded
// with transparent spaces for overlay.Compose.
func (m Model) renderHelp() string {
	t := styles.T()
	full := m.Help.FullHelpView(keymap.NewHelpKeyMap(keymap.All).FullHelp())
	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(0, 2).
		Render(t.S().Title.Render("Keys") + "\n\n" + full)

	boxLines := strings.Split(box, "\n")
	left := strings.Repeat(" ", max((m.Width-lipgloss.Width(box))/2, 0))
	out := make([]string, max((m.Height-len(boxLines))/2, 0), m.Height)
	for _, l := range boxLines {
		out = append(out, left+l)
	}
	return strings.Join(out, "\n")
}

// enforceHeight ensures the view has exactly the specified number of lines.
func enforceHeight(view string, targetHeight int) string {
	lines := strings.Split(view, "\n")
	currentHeight := len(lines)

	if currentHeight == targetHeight {
		return view
	}

	if currentHeight < targetHeight {
		// Pad with empty lines
		for i := currentHeight; i < targetHeight; i++ {
			lines = append(lines, "")
		}
	} else {
		// Truncate (shouldn't normally happen)
		lines = lines[:targetHeight]
	}

	return strings.Join(lines, "\n")
}
