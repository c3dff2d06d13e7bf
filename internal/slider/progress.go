package slider

import "math"

// ProgressStyle describes the fill of a progress track.
type ProgressStyle struct {
	Fraction   float64
	Transition Transition
}

// ProgressFraction maps the active index onto [0, 1]. A slider with fewer
// than two items reports 0.
func (s *Slider[T]) ProgressFraction() float64 {
	total := len(s.extended)
	if total <= 1 {
		return 0
	}
	return float64(s.active) / float64(total-1)
}

// ProgressStyle returns the fill fraction with its eased transition.
func (s *Slider[T]) ProgressStyle() ProgressStyle {
	return ProgressStyle{
		Fraction:   s.ProgressFraction(),
		Transition: TransitionEased,
	}
}

// ScrubIndex maps a normalised track position to an item index.
// Positions outside [0, 1] are clamped first. Returns -1 when total is 0
// or the position is NaN.
func ScrubIndex(position float64, total int) int {
	if total <= 0 || math.IsNaN(position) {
		return -1
	}
	position = math.Max(0, math.Min(1, position))
	return min(int(math.Floor(position*float64(total))), total-1)
}

// ScrubTo jumps to the item under a click at the normalised track position.
func (s *Slider[T]) ScrubTo(position float64) {
	index := ScrubIndex(position, len(s.extended))
	if index < 0 {
		return
	}
	s.setActive(index, "scrub")
}
