package app

import (
	"flag"
	"fmt"
	"time"

	"backdrop/internal/core"
	"backdrop/internal/engine"
	"backdrop/internal/seed"
)

// Config represents the command-line parameters shared by both frontends.
type Config struct {
	Mode           string
	Seed           string
	Cell           int
	BgOpacity      float64
	AccentOpacity  float64
	Interval       time.Duration
	FadeLife       int
	Radius         int
	Density        float64
	FadeEveryFrame bool

	Width      int
	Height     int
	Panel      int
	Breakpoint int
	TPS        int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := engine.DefaultConfig()
	return &Config{
		Mode:          d.Mode.String(),
		Seed:          "random",
		Cell:          d.CellSize,
		BgOpacity:     d.BackgroundOpacity,
		AccentOpacity: d.AccentOpacity,
		Interval:      d.Interval,
		FadeLife:      d.FadeLife,
		Radius:        d.Radius,
		Density:       d.Density,
		Width:         1280,
		Height:        800,
		Panel:         220,
		Breakpoint:    960,
		TPS:           60,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Mode, "mode", c.Mode, "accent mode: fade or life")
	fs.StringVar(&c.Seed, "seed", c.Seed, "background seeding: random or noise")
	fs.IntVar(&c.Cell, "cell", c.Cell, "cell size in pixels")
	fs.Float64Var(&c.BgOpacity, "bg-opacity", c.BgOpacity, "background cell opacity")
	fs.Float64Var(&c.AccentOpacity, "accent-opacity", c.AccentOpacity, "accent cell opacity")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "minimum time between generations")
	fs.IntVar(&c.FadeLife, "fade-life", c.FadeLife, "fade trail lifetime in ticks")
	fs.IntVar(&c.Radius, "radius", c.Radius, "fade spawn radius in cells")
	fs.Float64Var(&c.Density, "density", c.Density, "initial live-cell probability")
	fs.BoolVar(&c.FadeEveryFrame, "fade-every-frame", c.FadeEveryFrame, "age the fade trail every frame instead of every tick")
	fs.IntVar(&c.Width, "width", c.Width, "initial window width")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height")
	fs.IntVar(&c.Panel, "panel", c.Panel, "side panel width (0 hides it)")
	fs.IntVar(&c.Breakpoint, "breakpoint", c.Breakpoint, "window width at or below which the panel stops being pinned")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
}

// Engine converts the flags into an engine configuration.
func (c *Config) Engine() (engine.Config, error) {
	mode, err := core.ParseAccentMode(c.Mode)
	if err != nil {
		return engine.Config{}, fmt.Errorf("parse -mode: %w", err)
	}
	ec := engine.DefaultConfig()
	ec.Mode = mode
	ec.CellSize = c.Cell
	ec.BackgroundOpacity = c.BgOpacity
	ec.AccentOpacity = c.AccentOpacity
	ec.Interval = c.Interval
	ec.FadeLife = c.FadeLife
	ec.Radius = c.Radius
	ec.Density = c.Density
	ec.FadeEveryFrame = c.FadeEveryFrame
	return ec.Validate(), nil
}

// Filler returns the background seeding strategy named by -seed.
func (c *Config) Filler() seed.Filler {
	density := engine.Config{Density: c.Density}.Validate().Density
	return seed.ByName(c.Seed, density)
}
