package app

import (
	"fmt"
	"strconv"
	"time"

	"gridpar/internal/core"
)

type statsProvider interface {
	Stats() *core.StepStats
}

// nudgeWorkers moves the sim's "workers" parameter by delta and returns the
// new value. It reports false when the sim has no such parameter or refuses
// the value.
func nudgeWorkers(sim core.Sim, delta int) (int, bool) {
	provider, ok := sim.(core.ParameterProvider)
	if !ok {
		return 0, false
	}
	setter, ok := sim.(core.IntParameterSetter)
	if !ok {
		return 0, false
	}
	p, ok := provider.Parameters().Lookup("workers")
	if !ok {
		return 0, false
	}
	cur, err := strconv.Atoi(p.Value)
	if err != nil {
		return 0, false
	}
	next := max(cur+delta, 0)
	if next == cur || !setter.SetIntParameter("workers", next) {
		return cur, false
	}
	return next, true
}

// windowTitle formats the viewer title with the last step time and the
// rolling average once the window holds samples.
func windowTitle(sim core.Sim) string {
	title := "gridpar: " + sim.Name()
	if p, ok := sim.(core.ParameterProvider); ok {
		if mode, ok := p.Parameters().Lookup("mode"); ok {
			title += " [" + mode.Value + "]"
		}
	}
	sp, ok := sim.(statsProvider)
	if !ok || sp.Stats().Count() == 0 {
		return title
	}
	st := sp.Stats()
	return fmt.Sprintf("%s  update %s  avg %s", title, ms(st.Last()), ms(st.Average()))
}

func ms(d time.Duration) string {
	return strconv.FormatFloat(float64(d.Microseconds())/1000, 'f', 2, 64) + "ms"
}
