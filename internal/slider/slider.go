package slider

import "log/slog"

// Slider holds the state of one carousel instance. It is not safe for
// concurrent use: every method is expected to run on the UI event loop.
type Slider[T any] struct {
	items    []T
	extended []T
	cfg      Config

	active          int
	containerHeight float64

	dragging     bool
	dragStartX   float64
	dragCurrentX float64
	dragOffset   float64

	heights map[int]float64
	unmount func()
}

// New creates the initial slider state for items: first card active,
// idle, nothing measured yet.
func New[T any](items []T, cfg Config) *Slider[T] {
	s := &Slider[T]{
		items:   items,
		cfg:     cfg,
		heights: make(map[int]float64),
	}
	s.extended = extend(items, cfg.Loop)
	return s
}

// extend doubles items when looping so there is always a card on both
// sides of the active one.
func extend[T any](items []T, loop bool) []T {
	if !loop {
		return items
	}
	out := make([]T, 0, 2*len(items))
	out = append(out, items...)
	return append(out, items...)
}

// Config returns the resolved configuration.
func (s *Slider[T]) Config() Config {
	return s.cfg
}

// Items returns the caller-supplied items.
func (s *Slider[T]) Items() []T {
	return s.items
}

// ExtendedItems returns the items actually laid out by the slider.
func (s *Slider[T]) ExtendedItems() []T {
	return s.extended
}

// TotalItems returns the number of laid out items.
func (s *Slider[T]) TotalItems() int {
	return len(s.extended)
}

// ActiveIndex returns the index of the focused item in ExtendedItems.
func (s *Slider[T]) ActiveIndex() int {
	return s.active
}

// Active returns the focused item, or false when the slider is empty.
func (s *Slider[T]) Active() (T, bool) {
	if s.active >= len(s.extended) {
		var zero T
		return zero, false
	}
	return s.extended[s.active], true
}

// SetItems replaces the items. The extended sequence is rebuilt and the
// active index clamped into the new range.
func (s *Slider[T]) SetItems(items []T) {
	s.items = items
	s.rederive()
}

// SetLoop toggles wrap-around, rebuilding the extended sequence.
func (s *Slider[T]) SetLoop(loop bool) {
	if s.cfg.Loop == loop {
		return
	}
	s.cfg.Loop = loop
	s.rederive()
}

// rederive is the only place extended is recomputed. Drag updates must
// never reach it.
func (s *Slider[T]) rederive() {
	s.extended = extend(s.items, s.cfg.Loop)
	s.active = clampIndex(s.active, len(s.extended))
	for i := range s.heights {
		if i >= len(s.extended) {
			delete(s.heights, i)
		}
	}
}

// SetActiveIndex jumps directly to index, clamped to the valid range.
// Wrap rules do not apply.
func (s *Slider[T]) SetActiveIndex(index int) {
	s.setActive(clampIndex(index, len(s.extended)), "set")
}

func (s *Slider[T]) setActive(index int, cause string) {
	if index == s.active {
		return
	}
	Logger().Debug("active index changed",
		slog.Int("from", s.active),
		slog.Int("to", index),
		slog.String("cause", cause))
	s.active = index
}

// Prev moves to the previous item, wrapping to the last one when looping
// and stopping at the first otherwise.
func (s *Slider[T]) Prev() {
	s.step(-1, "prev")
}

// Next moves to the next item, wrapping to the first one when looping
// and stopping at the last otherwise.
func (s *Slider[T]) Next() {
	s.step(1, "next")
}

func (s *Slider[T]) step(dir int, cause string) {
	total := len(s.extended)
	if total == 0 {
		return
	}
	next := s.active + dir
	switch {
	case next < 0:
		if s.cfg.Loop {
			next = total - 1
		} else {
			next = 0
		}
	case next >= total:
		if s.cfg.Loop {
			next = 0
		} else {
			next = total - 1
		}
	}
	s.setActive(next, cause)
}

func clampIndex(i, total int) int {
	if total <= 0 || i < 0 {
		return 0
	}
	if i > total-1 {
		return total - 1
	}
	return i
}
