package carousel

import (
	"cmp"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/cardstack/internal/deck"
	"github.com/llehouerou/cardstack/internal/ui"
	"github.com/llehouerou/cardstack/internal/ui/overlay"
	"github.com/llehouerou/cardstack/internal/ui/render"
	"github.com/llehouerou/cardstack/internal/ui/styles"
)

const (
	// headroom is the blank space above the active card that lifted cards
	// can move into while dragging.
	headroom = 1
	// bodyLines caps the wrapped card body.
	bodyLines = 6
	// progressMargin is the horizontal inset of the progress bar.
	progressMargin = 2
)

// placement is a card positioned on the stage grid.
type placement struct {
	index int
	x, y  int
	cols  int
	rows  int
	rot   float64
	z     int
	block string
}

// cardCols is the outer width of a card in columns.
func (m Model) cardCols() int {
	cols := int(math.Round(m.slider.Config().SlideWidth / m.metrics.CellWidth))
	cols = min(cols, m.Width()-2)
	return max(cols, ui.MinCardWidth)
}

// stageRows is the height of the card area. It follows the measured
// container height plus room for the first neighbour's drop, bounded by
// the space left above the progress bar.
func (m Model) stageRows() int {
	avail := max(m.Height()-ui.ProgressHeight, 0)
	h := m.slider.ContainerHeight()
	if h <= 0 {
		return avail
	}
	want := headroom +
		int(math.Ceil(h/m.metrics.CellHeight)) +
		int(math.Round(m.slider.Config().FirstOffsetY/m.metrics.CellHeight)) + 1
	return min(avail, want)
}

// Rows is the number of lines View renders.
func (m Model) Rows() int {
	if m.Width() <= 0 || m.Height() <= 0 {
		return 0
	}
	return m.stageRows() + ui.ProgressHeight
}

// refresh re-renders the visible cards and reports their heights to the
// slider. Hidden cards are dropped from measurement.
func (m Model) refresh() {
	items := m.slider.ExtendedItems()
	active := m.slider.ActiveIndex()
	for i, card := range items {
		if !m.slider.SlideStyle(i).Visible {
			delete(m.cards, i)
			m.slider.Unregister(i)
			continue
		}
		block := m.renderCard(card, i == active)
		m.cards[i] = block
		m.slider.Register(i, float64(lipgloss.Height(block))*m.metrics.CellHeight)
	}
	for i := range m.cards {
		if i >= len(items) {
			delete(m.cards, i)
		}
	}
}

func (m Model) renderCard(card deck.Card, active bool) string {
	t := styles.T()
	cols := m.cardCols()
	inner := max(cols-4, 1)

	lines := []string{t.S().Title.Render(render.Truncate(render.Sanitize(card.Title), inner))}
	if card.Subtitle != "" {
		lines = append(lines, t.S().Muted.Render(render.Truncate(render.Sanitize(card.Subtitle), inner)))
	}
	if body := render.Wrap(render.Sanitize(card.Body), inner, bodyLines); len(body) > 0 {
		lines = append(lines, "")
		for _, l := range body {
			lines = append(lines, t.S().Base.Render(l))
		}
	}
	return styles.CardStyle(cols, active, lipgloss.Color(card.Accent)).
		Render(strings.Join(lines, "\n"))
}

// pose returns where card i is drawn at now.
func (m Model) pose(i int, now time.Time) pose {
	target := poseOf(m.slider.SlideStyle(i))
	if m.slider.IsDragging() || !m.motion.active {
		return target
	}
	from, ok := m.motion.from[i]
	if !ok {
		return target
	}
	return from.lerp(target, m.motion.progress(now))
}

// progressFraction returns the drawn progress bar fill at now.
func (m Model) progressFraction(now time.Time) float64 {
	target := m.slider.ProgressFraction()
	if !m.motion.active {
		return target
	}
	return lerp(m.motion.fromProgress, target, m.motion.progress(now))
}

// snapshot captures the drawn state so a transition can start from it.
func (m Model) snapshot(now time.Time) snapshot {
	snap := snapshot{
		poses:    make(map[int]pose, len(m.cards)),
		progress: m.progressFraction(now),
	}
	for i := range m.cards {
		snap.poses[i] = m.pose(i, now)
	}
	return snap
}

// placements lays out the shown cards back to front.
func (m Model) placements(now time.Time) []placement {
	center := m.Width() / 2
	out := make([]placement, 0, len(m.cards))
	for i, block := range m.cards {
		p := m.pose(i, now)
		cols := lipgloss.Width(block)
		out = append(out, placement{
			index: i,
			x:     center + int(math.Round(p.X/m.metrics.CellWidth)) - cols/2,
			y:     headroom + int(math.Round(p.Y/m.metrics.CellHeight)),
			cols:  cols,
			rows:  lipgloss.Height(block),
			rot:   p.Rot,
			z:     m.slider.SlideStyle(i).ZIndex,
			block: block,
		})
	}
	slices.SortFunc(out, func(a, b placement) int {
		if c := cmp.Compare(a.z, b.z); c != 0 {
			return c
		}
		return cmp.Compare(a.index, b.index)
	})
	return out
}

// shear approximates a rotation on the cell grid by shifting each line of
// a card horizontally around its middle.
func (m Model) shear(p placement) func(line int) int {
	if p.rot == 0 {
		return nil
	}
	sin := math.Sin(p.rot * math.Pi / 180)
	return func(line int) int {
		dy := (float64(line) + 0.5 - float64(p.rows)/2) * m.metrics.CellHeight
		return int(math.Round(-dy * sin / m.metrics.CellWidth))
	}
}

// cardAt returns the index of the topmost card drawn under the local cell
// (lx, ly), or -1.
func (m Model) cardAt(lx, ly int, now time.Time) int {
	ps := m.placements(now)
	for k := len(ps) - 1; k >= 0; k-- {
		p := ps[k]
		line := ly - p.y
		if line < 0 || line >= p.rows {
			continue
		}
		x := p.x
		if shift := m.shear(p); shift != nil {
			x += shift(line)
		}
		if lx >= x && lx < x+p.cols {
			return p.index
		}
	}
	return -1
}

// progressBar returns the bar's left column and width; width is zero when
// there is no room for a bar.
func (m Model) progressBar() (left, width int) {
	width = m.Width() - 2*progressMargin
	if width < ui.MinProgressBarWidth {
		return 0, 0
	}
	return progressMargin, width
}

// progressRow is the local row of the progress bar.
func (m Model) progressRow() int {
	return m.stageRows() + ui.ProgressHeight - 1
}

// View renders the stage followed by the progress bar.
func (m Model) View() string {
	w := m.Width()
	if w <= 0 || m.Height() <= 0 {
		return ""
	}
	now := m.now()
	t := styles.T()

	stage := overlay.Canvas(w, m.stageRows())
	if m.slider.TotalItems() == 0 {
		if len(stage) > 0 {
			stage[len(stage)/2] = render.Center(t.S().Muted.Render("No cards"), w)
		}
	}
	for _, p := range m.placements(now) {
		overlay.Place(stage, p.block, p.x, p.y, w, m.shear(p))
	}

	lines := append(stage, render.EmptyLine(w), m.renderProgress(now))
	return strings.Join(lines, "\n")
}

func (m Model) renderProgress(now time.Time) string {
	left, width := m.progressBar()
	if width == 0 {
		return render.EmptyLine(m.Width())
	}
	t := styles.T()
	filled := int(math.Round(m.progressFraction(now) * float64(width)))
	filled = max(0, min(filled, width))

	bar := styles.GradientBar("━", filled, t.Primary, t.Secondary) +
		t.S().Subtle.Render(strings.Repeat("─", width-filled))
	return strings.Repeat(" ", left) + bar + strings.Repeat(" ", max(m.Width()-left-width, 0))
}
