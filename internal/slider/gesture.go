package slider

import (
	"log/slog"
	"math"
)

// dragDamping scales raw pointer travel down to the visual drag offset.
const dragDamping = 3

// Cursor styles reported by CursorStyle.
const (
	CursorGrab     = "grab"
	CursorGrabbing = "grabbing"
)

// DragStart begins a drag at clientX. Starting while already dragging
// restarts the gesture from the new position.
func (s *Slider[T]) DragStart(clientX float64) {
	s.dragging = true
	s.dragStartX = clientX
	s.dragCurrentX = clientX
	s.dragOffset = 0
	Logger().Debug("drag start", slog.Float64("x", clientX))
}

// DragMove tracks the pointer while dragging. It does nothing when idle.
func (s *Slider[T]) DragMove(clientX float64) {
	if !s.dragging {
		return
	}
	s.dragCurrentX = clientX
	s.dragOffset = (clientX - s.dragStartX) / dragDamping
}

// DragEnd finishes a drag. A swipe longer than the swipe sensitivity moves
// one item: rightwards to the previous item, leftwards to the next.
// It does nothing when idle.
func (s *Slider[T]) DragEnd() {
	if !s.dragging {
		return
	}
	diffX := s.dragCurrentX - s.dragStartX
	Logger().Debug("drag end", slog.Float64("diff", diffX))
	if math.Abs(diffX) > s.cfg.SwipeSensitivity {
		switch {
		case diffX > 0:
			s.step(-1, "swipe")
		case diffX < 0:
			s.step(1, "swipe")
		}
	}
	s.dragging = false
	s.dragOffset = 0
}

// SlideClick focuses the item at index unless the pointer moved far enough
// to count as a drag. Wrap rules do not apply.
func (s *Slider[T]) SlideClick(index int) {
	if math.Abs(s.dragOffset) > s.cfg.SwipeSensitivity {
		return
	}
	if index < 0 || index >= len(s.extended) {
		return
	}
	s.setActive(index, "click")
}

// TouchStart starts a drag from the first touch point. Events without a
// touch point are ignored.
func (s *Slider[T]) TouchStart(touches []float64) {
	if len(touches) == 0 {
		return
	}
	s.DragStart(touches[0])
}

// TouchMove follows the first touch point. Events without a touch point
// are ignored.
func (s *Slider[T]) TouchMove(touches []float64) {
	if len(touches) == 0 {
		return
	}
	s.DragMove(touches[0])
}

// TouchEnd ends the touch drag.
func (s *Slider[T]) TouchEnd() {
	s.DragEnd()
}

// IsDragging reports whether a gesture is in progress.
func (s *Slider[T]) IsDragging() bool {
	return s.dragging
}

// DragOffset returns the damped horizontal drag offset in pixels.
func (s *Slider[T]) DragOffset() float64 {
	return s.dragOffset
}

// CursorStyle returns "grabbing" while dragging and "grab" otherwise.
func (s *Slider[T]) CursorStyle() string {
	if s.dragging {
		return CursorGrabbing
	}
	return CursorGrab
}
