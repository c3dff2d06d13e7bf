package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/cardstack/internal/slider"
)

const appName = "cardstack"

type Config struct {
	Deck     string `koanf:"deck"`      // path to a deck file; empty means the built-in sample
	LogLevel string `koanf:"log_level"` // "debug", "info", "warn" or "error" (default: "warn")
	LogFile  string `koanf:"log_file"`  // empty means $XDG_STATE_HOME/cardstack/cardstack.log

	// Carousel geometry and gesture settings
	Slider SliderConfig `koanf:"slider"`

	// Terminal cell metrics used to map pixels to cells
	Display DisplayConfig `koanf:"display"`
}

// SliderConfig holds carousel options. Unset fields keep the slider defaults.
type SliderConfig struct {
	Loop               *bool    `koanf:"loop"`                 // wrap around (default: true)
	Gap                *float64 `koanf:"gap"`                  // px between card centers beyond the width (default: 60)
	SlideWidth         *float64 `koanf:"slide_width"`          // px (default: 650)
	RotationAngle      *float64 `koanf:"rotation_angle"`       // degrees per position (default: 5)
	FirstOffsetY       *float64 `koanf:"first_offset_y"`       // px drop of direct neighbours (default: 45)
	ProgressiveOffsetY *float64 `koanf:"progressive_offset_y"` // quadratic drop coefficient (default: 20)
	HideDistantSlides  *bool    `koanf:"hide_distant_slides"`  // hide cards two or more away (default: true)
	SwipeSensitivity   *float64 `koanf:"swipe_sensitivity"`    // px before a drag counts as a swipe (default: 5)
}

// DisplayConfig describes the pixel size of one terminal cell and how cards
// move on screen.
type DisplayConfig struct {
	CellWidth  float64 `koanf:"cell_width"`  // px per column (default: 16)
	CellHeight float64 `koanf:"cell_height"` // px per row (default: 32)
	Animations *bool   `koanf:"animations"`  // ease between cards (default: true)
}

func Load() (*Config, error) {
	return LoadFiles(getConfigPaths()...)
}

// LoadFiles loads the given files in order, later files overriding
// earlier ones. Missing files are skipped.
func LoadFiles(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Expand ~ in paths
	cfg.Deck = expandPath(cfg.Deck)
	cfg.LogFile = expandPath(cfg.LogFile)

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/cardstack/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// SliderOptions converts the slider section into slider options.
func (c *Config) SliderOptions() slider.Options {
	s := c.Slider
	return slider.Options{
		Loop:               s.Loop,
		Gap:                s.Gap,
		SlideWidth:         s.SlideWidth,
		RotationAngle:      s.RotationAngle,
		FirstOffsetY:       s.FirstOffsetY,
		ProgressiveOffsetY: s.ProgressiveOffsetY,
		HideDistantSlides:  s.HideDistantSlides,
		SwipeSensitivity:   s.SwipeSensitivity,
	}
}

// GetDisplayConfig returns the display configuration with defaults applied.
func (c *Config) GetDisplayConfig() DisplayConfig {
	cfg := c.Display
	if cfg.CellWidth <= 0 {
		cfg.CellWidth = 16
	}
	if cfg.CellHeight <= 0 {
		cfg.CellHeight = 32
	}
	return cfg
}

// AnimationsEnabled reports whether card transitions are animated.
func (c *Config) AnimationsEnabled() bool {
	if c.Display.Animations == nil {
		return true
	}
	return *c.Display.Animations
}

// SlogLevel parses LogLevel, defaulting to warn.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	}
	return slog.LevelWarn
}

// LogPath returns the log file path, creating its directory if needed.
func (c *Config) LogPath() (string, error) {
	if c.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(c.LogFile), 0o755); err != nil {
			return "", err
		}
		return c.LogFile, nil
	}
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}
