package engine

import (
	"time"

	"backdrop/internal/core"
	"backdrop/internal/inject"
	"backdrop/internal/seed"
	"backdrop/internal/sims/fade"
	"backdrop/internal/surface"
)

// Config holds the engine constants.
type Config struct {
	CellSize          int
	BackgroundOpacity float64
	AccentOpacity     float64
	Interval          time.Duration
	Debounce          time.Duration
	FadeLife          int
	Radius            int
	Density           float64
	Mode              core.AccentMode

	// FadeEveryFrame ages the fade trail on every frame instead of on the
	// accent tick.
	FadeEveryFrame bool
}

// DefaultConfig returns the stock background settings.
func DefaultConfig() Config {
	return Config{
		CellSize:          8,
		BackgroundOpacity: 0.3,
		AccentOpacity:     0.6,
		Interval:          100 * time.Millisecond,
		Debounce:          surface.DefaultDebounce,
		FadeLife:          fade.DefaultMaxAge,
		Radius:            inject.DefaultRadius,
		Density:           seed.DefaultDensity,
		Mode:              core.ModeFade,
	}
}

// Validate replaces out-of-range values with defaults.
func (c Config) Validate() Config {
	d := DefaultConfig()
	if c.CellSize <= 0 {
		c.CellSize = d.CellSize
	}
	if c.BackgroundOpacity < 0 || c.BackgroundOpacity > 1 {
		c.BackgroundOpacity = d.BackgroundOpacity
	}
	if c.AccentOpacity < 0 || c.AccentOpacity > 1 {
		c.AccentOpacity = d.AccentOpacity
	}
	if c.Interval < 0 {
		c.Interval = d.Interval
	}
	if c.Debounce < 0 {
		c.Debounce = d.Debounce
	}
	if c.FadeLife <= 0 {
		c.FadeLife = d.FadeLife
	}
	if c.Radius < 0 {
		c.Radius = d.Radius
	}
	if c.Density < 0 || c.Density > 1 {
		c.Density = d.Density
	}
	if c.Mode != core.ModeLife && c.Mode != core.ModeFade {
		c.Mode = d.Mode
	}
	return c
}
