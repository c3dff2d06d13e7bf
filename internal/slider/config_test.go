package slider

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestResolve_Defaults(t *testing.T) {
	cfg := Resolve(Options{})

	assert.Equal(t, Config{
		Loop:               true,
		Gap:                60,
		SlideWidth:         650,
		RotationAngle:      5,
		FirstOffsetY:       45,
		ProgressiveOffsetY: 20,
		HideDistantSlides:  true,
		SwipeSensitivity:   5,
	}, cfg)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestResolve_Overrides(t *testing.T) {
	cfg := Resolve(Options{
		Loop:              ptr(false),
		Gap:               ptr(40.0),
		SlideWidth:        ptr(600.0),
		HideDistantSlides: ptr(false),
	})

	assert.False(t, cfg.Loop)
	assert.Equal(t, 40.0, cfg.Gap)
	assert.Equal(t, 600.0, cfg.SlideWidth)
	assert.False(t, cfg.HideDistantSlides)
	// untouched fields keep their defaults
	assert.Equal(t, 5.0, cfg.RotationAngle)
	assert.Equal(t, 45.0, cfg.FirstOffsetY)
	assert.Equal(t, 20.0, cfg.ProgressiveOffsetY)
	assert.Equal(t, 5.0, cfg.SwipeSensitivity)
}

func TestResolve_PassesThroughZeroAndNegative(t *testing.T) {
	cfg := Resolve(Options{
		Gap:              ptr(0.0),
		SlideWidth:       ptr(-10.0),
		SwipeSensitivity: ptr(-1.0),
	})

	assert.Equal(t, 0.0, cfg.Gap)
	assert.Equal(t, -10.0, cfg.SlideWidth)
	assert.Equal(t, -1.0, cfg.SwipeSensitivity)
}

func TestConfig_OptionsRoundTrip(t *testing.T) {
	cfg := Config{Gap: 1, SlideWidth: 2, RotationAngle: 3, FirstOffsetY: 4, ProgressiveOffsetY: 5, SwipeSensitivity: 6}
	assert.Equal(t, cfg, Resolve(cfg.Options()))
}

func TestTransition_String(t *testing.T) {
	assert.Equal(t, "all 0.3s ease", TransitionEased.String())
	assert.Equal(t, "none", TransitionNone.String())
	assert.True(t, TransitionEased.Enabled())
	assert.False(t, TransitionNone.Enabled())
	assert.Equal(t, 300*time.Millisecond, TransitionEased.Duration)
}
