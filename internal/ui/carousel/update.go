package carousel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cardstack/internal/keymap"
)

// Update handles mouse gestures, navigation keys, focus loss, resizes and
// animation frames.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		return m, m.motion.frame(msg, m.now())
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.MouseMsg, tea.BlurMsg, tea.KeyMsg:
	default:
		return m, nil
	}

	now := m.now()
	before := m.slider.ActiveIndex()
	wasDragging := m.slider.IsDragging()
	var snap snapshot
	if m.motion.enabled {
		snap = m.snapshot(now)
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.handleMouse(msg, now)
	case tea.BlurMsg:
		// The pointer left the window; treat it like a release.
		m.endDrag()
	case tea.KeyMsg:
		if !m.HandlesKey(msg) {
			return m, nil
		}
		m.handleKey(msg)
	}
	return m, m.settle(before, wasDragging, snap, now)
}

// HandlesKey reports whether the carousel consumes msg.
func (m Model) HandlesKey(msg tea.KeyMsg) bool {
	if !m.IsFocused() {
		return false
	}
	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionPrev, keymap.ActionNext, keymap.ActionFirst, keymap.ActionLast:
		return true
	}
	return false
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionPrev:
		m.slider.Prev()
	case keymap.ActionNext:
		m.slider.Next()
	case keymap.ActionFirst:
		m.slider.SetActiveIndex(0)
	case keymap.ActionLast:
		m.slider.SetActiveIndex(m.slider.TotalItems() - 1)
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg, now time.Time) {
	lx, ly, inside := m.Local(msg.X, msg.Y)
	px := (float64(lx) + 0.5) * m.metrics.CellWidth

	switch msg.Action {
	case tea.MouseActionPress:
		if !inside {
			return
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			m.slider.Prev()
			return
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
			m.slider.Next()
			return
		case tea.MouseButtonLeft:
		default:
			return
		}
		if ly == m.progressRow() {
			m.scrub(lx)
			return
		}
		if ly >= m.stageRows() {
			return
		}
		m.press = &press{hit: m.cardAt(lx, ly, now)}
		m.slider.DragStart(px)

	case tea.MouseActionMotion:
		if !m.slider.IsDragging() {
			return
		}
		if !inside {
			m.endDrag()
			return
		}
		m.slider.DragMove(px)

	case tea.MouseActionRelease:
		// The click goes first so a drag that stayed under the swipe
		// threshold still focuses the card it started on.
		if m.press != nil && m.press.hit >= 0 && inside &&
			m.cardAt(lx, ly, now) == m.press.hit {
			m.slider.SlideClick(m.press.hit)
		}
		m.endDrag()
	}
}

func (m *Model) endDrag() {
	m.press = nil
	m.slider.DragEnd()
}

// scrub jumps to the card under column lx of the progress bar.
func (m *Model) scrub(lx int) {
	left, width := m.progressBar()
	if width == 0 || lx < left || lx >= left+width {
		return
	}
	m.slider.ScrubTo((float64(lx-left) + 0.5) / float64(width))
}

// settle re-renders after a state change, starts or cancels the
// transition and reports a new active card.
func (m *Model) settle(before int, wasDragging bool, snap snapshot, now time.Time) tea.Cmd {
	active := m.slider.ActiveIndex()
	changed := active != before
	dragging := m.slider.IsDragging()
	if changed || dragging != wasDragging {
		m.refresh()
	}

	var cmds []tea.Cmd
	switch {
	case dragging:
		m.motion.stop()
	case changed || wasDragging:
		tr := m.slider.SlideStyle(active).Transition
		cmds = append(cmds, m.motion.begin(snap, tr, now))
	}
	if changed {
		card, _ := m.slider.Active()
		cmds = append(cmds, func() tea.Msg {
			return ActiveChangedMsg{Index: active, Card: card}
		})
	}
	return tea.Batch(cmds...)
}
