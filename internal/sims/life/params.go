package life

import (
	"math"

	"gridpar/internal/core"
)

const maxWorkers = 64

// Parameters reports the board and engine settings for the HUD.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				core.IntParam("w", "Width", l.cfg.Width),
				core.IntParam("h", "Height", l.cfg.Height),
				core.FloatParam("chance", "Live chance", l.cfg.Chance),
				core.Int64Param("seed", "Seed", l.cfg.Seed),
				core.IntParam("generation", "Generation", l.gen),
			},
		},
		{
			Name: "Engine",
			Params: []core.Parameter{
				core.IntParam("workers", "Workers", l.cfg.Engine.Workers),
				core.StringParam("mode", "Mode", l.mode.String()),
				core.StringParam("step_last", "Last step", l.stats.Last().String()),
				core.StringParam("step_avg", "Avg step", l.stats.Average().String()),
			},
		},
	}}
}

// ParameterControls lists the values adjustable from the HUD.
func (l *Life) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "workers", Label: "Workers", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: maxWorkers, HasMin: true, HasMax: true},
		{Key: "chance", Label: "Live chance", Type: core.ParamTypeFloat, Step: 0.1, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates "workers"; 0 switches to the sequential path.
func (l *Life) SetIntParameter(key string, value int) bool {
	switch key {
	case "workers":
		if value < 0 || value > maxWorkers {
			return false
		}
		l.cfg.Engine.Workers = value
		return l.SetMode(l.cfg.Engine.Mode()) == nil
	}
	return false
}

// SetFloatParameter updates "chance", applied on the next Reset.
func (l *Life) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "chance":
		l.cfg.Chance = math.Max(0, math.Min(1, value))
		return true
	}
	return false
}

var _ interface {
	core.Sim
	core.ParameterProvider
	core.ParameterControlsProvider
	core.IntParameterSetter
	core.FloatParameterSetter
} = (*Life)(nil)
