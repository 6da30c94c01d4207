package engine

import "backdrop/internal/core"

// Parameters reports the live engine state for the HUD.
func (e *Engine) Parameters() core.ParameterSnapshot {
	grid := e.store.Size()
	m := e.surface.Metrics()
	var accent int
	if l := e.store.AccentLattice(); l != nil {
		accent = l.Alive()
	} else {
		accent = len(e.store.Trail())
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Surface",
			Params: []core.Parameter{
				core.IntParam("width", "Width", m.Width),
				core.IntParam("height", "Height", m.Height),
				core.IntParam("cols", "Cols", grid.W),
				core.IntParam("rows", "Rows", grid.H),
				core.IntParam("cell", "Cell", e.cfg.CellSize),
			},
		},
		{
			Name: "Background",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", e.generations),
				core.IntParam("alive", "Alive", e.store.Background().Alive()),
				core.DurationParam("interval", "Interval", e.cfg.Interval),
			},
		},
		{
			Name: "Accent",
			Params: []core.Parameter{
				core.StringParam("mode", "Mode", e.store.Mode().String()),
				core.IntParam("accent_ticks", "Ticks", e.accentGens),
				core.IntParam("accent_cells", "Cells", accent),
			},
		},
		{
			Name: "Loop",
			Params: []core.Parameter{
				core.IntParam("frames", "Frames", e.frames),
			},
		},
	}}
}
