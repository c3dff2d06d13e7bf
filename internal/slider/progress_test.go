package slider

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressFraction(t *testing.T) {
	s := newLetters(false, "A", "B", "C", "D", "E")

	assert.Equal(t, 0.0, s.ProgressFraction())

	s.SetActiveIndex(2)
	assert.Equal(t, 0.5, s.ProgressFraction())

	s.SetActiveIndex(4)
	assert.Equal(t, 1.0, s.ProgressFraction())
}

func TestProgressFraction_Degenerate(t *testing.T) {
	for _, s := range []*Slider[string]{
		newLetters(false),
		newLetters(false, "A"),
		newLetters(true),
	} {
		f := s.ProgressFraction()
		assert.False(t, math.IsNaN(f) || math.IsInf(f, 0))
		assert.Equal(t, 0.0, f)
	}
}

func TestProgressStyle(t *testing.T) {
	s := newLetters(false, "A", "B")
	s.SetActiveIndex(1)

	assert.Equal(t, ProgressStyle{Fraction: 1, Transition: TransitionEased}, s.ProgressStyle())
}

func TestScrubIndex(t *testing.T) {
	tests := []struct {
		name     string
		position float64
		total    int
		want     int
	}{
		{"start", 0, 5, 0},
		{"middle", 0.5, 5, 2},
		{"near end clamps below total", 0.999, 5, 4},
		{"end clamps below total", 1, 5, 4},
		{"negative clamps to start", -0.2, 5, 0},
		{"beyond end clamps", 1.7, 5, 4},
		{"single item", 0.8, 1, 0},
		{"empty", 0.5, 0, -1},
		{"NaN", math.NaN(), 5, -1},
		{"positive infinity clamps", math.Inf(1), 5, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScrubIndex(tt.position, tt.total))
		})
	}
}

func TestScrubTo(t *testing.T) {
	s := newLetters(false, "A", "B", "C", "D", "E")

	s.ScrubTo(0.999)
	assert.Equal(t, 4, s.ActiveIndex())

	s.ScrubTo(0.25)
	assert.Equal(t, 1, s.ActiveIndex())
}

func TestScrubTo_BypassesWrap(t *testing.T) {
	s := newLetters(true, "A", "B", "C")

	s.ScrubTo(0.9)

	assert.Equal(t, 5, s.ActiveIndex())
}

func TestScrubTo_EmptyIsNoop(t *testing.T) {
	s := newLetters(true)
	s.ScrubTo(0.5)
	assert.Equal(t, 0, s.ActiveIndex())
}

func TestScrubTo_NaNIsNoop(t *testing.T) {
	s := newLetters(false, "A", "B", "C", "D", "E")
	s.SetActiveIndex(2)

	s.ScrubTo(math.NaN())

	assert.Equal(t, 2, s.ActiveIndex())
}
