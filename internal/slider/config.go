// Package slider implements the state machine and geometry behind a stacked
// card carousel: gesture handling, index wrap-around, per-card transforms and
// progress mapping. Rendering is left to the caller.
package slider

import "time"

// Config is the resolved, immutable configuration of a slider.
// Lengths are in pixels, angles in degrees.
type Config struct {
	Loop               bool
	Gap                float64
	SlideWidth         float64
	RotationAngle      float64
	FirstOffsetY       float64
	ProgressiveOffsetY float64
	HideDistantSlides  bool
	SwipeSensitivity   float64
}

// Options is a partial configuration. Nil fields fall back to defaults.
type Options struct {
	Loop               *bool
	Gap                *float64
	SlideWidth         *float64
	RotationAngle      *float64
	FirstOffsetY       *float64
	ProgressiveOffsetY *float64
	HideDistantSlides  *bool
	SwipeSensitivity   *float64
}

var defaultConfig = Config{
	Loop:               true,
	Gap:                60,
	SlideWidth:         650,
	RotationAngle:      5,
	FirstOffsetY:       45,
	ProgressiveOffsetY: 20,
	HideDistantSlides:  true,
	SwipeSensitivity:   5,
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return defaultConfig
}

// Resolve merges opts over the defaults. Values are not validated:
// zero and negative numbers are passed through unchanged.
func Resolve(opts Options) Config {
	cfg := defaultConfig
	if opts.Loop != nil {
		cfg.Loop = *opts.Loop
	}
	if opts.Gap != nil {
		cfg.Gap = *opts.Gap
	}
	if opts.SlideWidth != nil {
		cfg.SlideWidth = *opts.SlideWidth
	}
	if opts.RotationAngle != nil {
		cfg.RotationAngle = *opts.RotationAngle
	}
	if opts.FirstOffsetY != nil {
		cfg.FirstOffsetY = *opts.FirstOffsetY
	}
	if opts.ProgressiveOffsetY != nil {
		cfg.ProgressiveOffsetY = *opts.ProgressiveOffsetY
	}
	if opts.HideDistantSlides != nil {
		cfg.HideDistantSlides = *opts.HideDistantSlides
	}
	if opts.SwipeSensitivity != nil {
		cfg.SwipeSensitivity = *opts.SwipeSensitivity
	}
	return cfg
}

// Options returns a fully populated Options holding c's values.
func (c Config) Options() Options {
	return Options{
		Loop:               &c.Loop,
		Gap:                &c.Gap,
		SlideWidth:         &c.SlideWidth,
		RotationAngle:      &c.RotationAngle,
		FirstOffsetY:       &c.FirstOffsetY,
		ProgressiveOffsetY: &c.ProgressiveOffsetY,
		HideDistantSlides:  &c.HideDistantSlides,
		SwipeSensitivity:   &c.SwipeSensitivity,
	}
}

// Easing names a CSS-style timing function.
type Easing string

const (
	EaseNone Easing = "none"
	Ease     Easing = "ease"
)

// TransitionDuration is the duration of eased slide and progress transitions.
const TransitionDuration = 300 * time.Millisecond

// Transition describes how a renderer should move from the previous value
// to the current one. A zero Duration means jump immediately.
type Transition struct {
	Duration time.Duration
	Easing   Easing
}

var (
	// TransitionNone is used while dragging so cards track the pointer 1:1.
	TransitionNone = Transition{Easing: EaseNone}
	// TransitionEased is used for every settled state change.
	TransitionEased = Transition{Duration: TransitionDuration, Easing: Ease}
)

// Enabled reports whether the transition animates.
func (t Transition) Enabled() bool {
	return t.Duration > 0
}

// String renders the transition the way a CSS transition property would.
func (t Transition) String() string {
	if !t.Enabled() {
		return string(EaseNone)
	}
	return "all " + formatSeconds(t.Duration) + " " + string(t.Easing)
}
