// Package carousel renders a slider of deck cards in the terminal and
// translates mouse and keyboard input into slider gestures.
package carousel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cardstack/internal/deck"
	"github.com/llehouerou/cardstack/internal/keymap"
	"github.com/llehouerou/cardstack/internal/slider"
	"github.com/llehouerou/cardstack/internal/ui"
)

// Metrics is the pixel size of one terminal cell. Slider geometry is in
// pixels; the carousel divides by these to place cards on the grid.
type Metrics struct {
	CellWidth  float64
	CellHeight float64
}

// DefaultMetrics approximates a typical 2:1 terminal cell.
var DefaultMetrics = Metrics{CellWidth: 16, CellHeight: 32}

// Options configures a carousel.
type Options struct {
	Metrics Metrics
	// Animate enables eased transitions between settled states.
	Animate bool
	// Keys resolves key presses; nil uses keymap.Default().
	Keys *keymap.Resolver
	// Now is the clock used for animation; nil uses time.Now.
	Now func() time.Time
}

// ActiveChangedMsg is emitted whenever the focused card changes.
type ActiveChangedMsg struct {
	Index int
	Card  deck.Card
}

// Model is the carousel component. It reads all geometry from the slider
// and only adds terminal layout on top.
type Model struct {
	ui.Base
	slider  *slider.Slider[deck.Card]
	metrics Metrics
	keys    *keymap.Resolver
	resize  *resizeSignal
	unmount func()

	cards  map[int]string // rendered blocks of the cards currently shown
	press  *press
	motion *motion
	now    func() time.Time
}

// press is the pointer-down state used to tell clicks from drags.
type press struct {
	hit int // card under the pointer at press time, -1 for none
}

// New builds a carousel over s and mounts it. Close must be called when
// the carousel is discarded.
func New(s *slider.Slider[deck.Card], opts Options) (Model, error) {
	if err := slider.Require("new carousel", s); err != nil {
		return Model{}, err
	}
	if opts.Metrics.CellWidth <= 0 || opts.Metrics.CellHeight <= 0 {
		opts.Metrics = DefaultMetrics
	}
	if opts.Keys == nil {
		opts.Keys = keymap.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	m := Model{
		slider:  s,
		metrics: opts.Metrics,
		keys:    opts.Keys,
		resize:  newResizeSignal(),
		cards:   make(map[int]string),
		motion:  &motion{enabled: opts.Animate},
		now:     opts.Now,
	}
	m.refresh()
	m.unmount = s.Mount(m.resize)
	return m, nil
}

// Init implements the bubbletea component contract.
func (m Model) Init() tea.Cmd {
	return nil
}

// Close unmounts the carousel from its slider.
func (m Model) Close() {
	if m.unmount != nil {
		m.unmount()
	}
}

// Slider returns the slider the carousel renders.
func (m Model) Slider() *slider.Slider[deck.Card] {
	return m.slider
}

// SetSize resizes the carousel, re-renders the cards at the new width and
// notifies the slider so it re-measures the container.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.refresh()
	m.resize.Notify()
}

// CursorStyle reports the pointer style: "grab" when idle, "grabbing"
// while dragging.
func (m Model) CursorStyle() string {
	return m.slider.CursorStyle()
}

// Animating reports whether a transition is in progress.
func (m Model) Animating() bool {
	return m.motion.running(m.now())
}
