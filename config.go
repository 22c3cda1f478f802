package marquee

import (
	"fmt"
	"os"
	"time"

	"github.com/fogleman/ease"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the per-mount configuration of a marquee. It is immutable
// once the marquee starts; use Reconfigure to swap it.
type Config struct {
	// TotalTime is the duration of one full loop cycle (default: 10s).
	TotalTime time.Duration

	// FPS bounds how often progress updates are published, independent of
	// the host's actual refresh rate (default: 60).
	FPS int

	// OffsetTop and OffsetBottom widen or narrow the viewport-intersection
	// test in pixels (default: 0).
	OffsetTop    float64
	OffsetBottom float64

	// Easing maps time progress 0-1 to value progress 0-1 at render time.
	// The published progress itself stays linear so pause/resume and loop
	// resets are exact. Default: ease.Linear.
	Easing func(float64) float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		TotalTime: 10 * time.Second,
		FPS:       60,
		Easing:    ease.Linear,
	}
}

// WithOffset sets both viewport offsets to the same value.
func (c Config) WithOffset(px float64) Config {
	c.OffsetTop = px
	c.OffsetBottom = px
	return c
}

// frameInterval returns the minimum time between accepted frames.
func (c Config) frameInterval() time.Duration {
	fps := c.FPS
	if fps < 1 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}

// normalized fills zero or invalid fields with defaults.
func (c Config) normalized() Config {
	if c.TotalTime <= 0 {
		c.TotalTime = 10 * time.Second
	}
	if c.FPS < 1 {
		c.FPS = 60
	}
	if c.OffsetTop < 0 {
		c.OffsetTop = 0
	}
	if c.OffsetBottom < 0 {
		c.OffsetBottom = 0
	}
	if c.Easing == nil {
		c.Easing = ease.Linear
	}
	return c
}

// fileConfig represents the marquee.toml configuration file.
type fileConfig struct {
	Animation animationConfig `toml:"animation"`
	Viewport  viewportConfig  `toml:"viewport"`
}

type animationConfig struct {
	// TotalTimeMs is the loop duration in milliseconds.
	TotalTimeMs int `toml:"total_time_ms"`
	// FPS caps the progress update rate.
	FPS int `toml:"fps"`
}

type viewportConfig struct {
	OffsetTop    float64 `toml:"offset_top"`
	OffsetBottom float64 `toml:"offset_bottom"`
}

// LoadConfig reads a marquee.toml file and merges it over the defaults.
// Missing or zero fields keep their default values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if fc.Animation.TotalTimeMs > 0 {
		cfg.TotalTime = time.Duration(fc.Animation.TotalTimeMs) * time.Millisecond
	}
	if fc.Animation.FPS > 0 {
		cfg.FPS = fc.Animation.FPS
	}
	if fc.Viewport.OffsetTop > 0 {
		cfg.OffsetTop = fc.Viewport.OffsetTop
	}
	if fc.Viewport.OffsetBottom > 0 {
		cfg.OffsetBottom = fc.Viewport.OffsetBottom
	}
	return cfg, nil
}
