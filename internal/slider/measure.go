package slider

import (
	"log/slog"
	"strconv"
)

// ResizeSource notifies subscribers when the layout may have changed size.
// Subscribe returns a function that removes the subscription.
type ResizeSource interface {
	Subscribe(fn func()) (cancel func())
}

// Register records the measured height of the rendered item at index.
func (s *Slider[T]) Register(index int, height float64) {
	if index < 0 || index >= len(s.extended) {
		return
	}
	s.heights[index] = height
}

// Unregister forgets the item at index, typically when it is no longer
// rendered.
func (s *Slider[T]) Unregister(index int) {
	delete(s.heights, index)
}

// Measure sets the container height to the tallest registered item. It
// keeps the previous height when nothing is registered so the container
// does not collapse while items are re-attached.
func (s *Slider[T]) Measure() {
	var tallest float64
	for _, h := range s.heights {
		tallest = max(tallest, h)
	}
	if tallest <= 0 {
		return
	}
	if tallest != s.containerHeight {
		Logger().Debug("container height", slog.Float64("height", tallest))
	}
	s.containerHeight = tallest
}

// Mount measures once and re-measures on every resize notification until
// the returned function is called. Mounting again replaces the previous
// subscription.
func (s *Slider[T]) Mount(src ResizeSource) (unmount func()) {
	s.Unmount()
	s.Measure()
	if src == nil {
		return s.Unmount
	}
	s.unmount = src.Subscribe(s.Measure)
	return s.Unmount
}

// Unmount drops the resize subscription. It is safe to call more than once.
func (s *Slider[T]) Unmount() {
	if s.unmount == nil {
		return
	}
	s.unmount()
	s.unmount = nil
}

// Mounted reports whether a resize subscription is active.
func (s *Slider[T]) Mounted() bool {
	return s.unmount != nil
}

// ContainerHeight returns the measured container height, 0 until the
// first successful measurement.
func (s *Slider[T]) ContainerHeight() float64 {
	return s.containerHeight
}

// ContainerHeightStyle returns the height as a pixel length, or "auto"
// before anything was measured.
func (s *Slider[T]) ContainerHeightStyle() string {
	if s.containerHeight == 0 {
		return "auto"
	}
	return strconv.FormatFloat(s.containerHeight, 'f', -1, 64) + "px"
}
