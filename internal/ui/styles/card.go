package styles

import "github.com/charmbracelet/lipgloss"

// CardStyle returns the box style for a card of the given outer width.
// The active card takes its accent color on the border; the others use the
// neutral border color.
func CardStyle(width int, active bool, accent lipgloss.Color) lipgloss.Style {
	t := T()
	border := t.Border
	if active {
		border = accent
		if border == "" {
			border = t.Primary
		}
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Background(t.BgCard).
		Padding(0, 1).
		Width(max(width-2, 0))
}
