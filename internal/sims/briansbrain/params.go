package briansbrain

import (
	"gridpar/internal/core"
	"gridpar/internal/engine"
)

const maxWorkers = 64

// Parameters reports the board and engine state.
func (b *Brain) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Board", Params: []core.Parameter{
			core.IntParam("w", "Width", b.board.Width()),
			core.IntParam("h", "Height", b.board.Height()),
			core.IntParam("tick", "Tick", b.tick),
		}},
		{Name: "Engine", Params: []core.Parameter{
			core.IntParam("workers", "Workers", b.cfg.Engine.Workers),
			core.StringParam("mode", "Mode", b.mode.String()),
			core.StringParam("step_avg", "Avg step", b.stats.Average().String()),
		}},
	}}
}

// ParameterControls exposes the worker count.
func (b *Brain) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "workers", Label: "Workers", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: maxWorkers, HasMin: true, HasMax: true},
	}
}

// SetIntParameter sets "workers"; 0 selects the sequential path.
func (b *Brain) SetIntParameter(key string, value int) bool {
	if key != "workers" || value < 0 || value > maxWorkers {
		return false
	}
	b.cfg.Engine.Workers = value
	b.mode = b.cfg.Engine.Mode()
	b.stats.Reset()
	return true
}

// Mode returns the current execution mode.
func (b *Brain) Mode() engine.Mode { return b.mode }

// Stats exposes the rolling step timings.
func (b *Brain) Stats() *core.StepStats { return b.stats }
