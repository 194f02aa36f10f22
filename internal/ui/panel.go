package ui

import (
	"image"
	"math"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"gridpar/internal/core"
)

var titleCaser = cases.Title(language.English)

// panelTitle returns the HUD heading for sim, e.g. "Briansbrain Controls".
func panelTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	return titleCaser.String(sim.Name()) + " Controls"
}

// infoParams returns snapshot entries that are not backed by a control, in
// snapshot order.
func infoParams(snapshot core.ParameterSnapshot, controls []core.ParameterControl) []core.Parameter {
	skip := make(map[string]bool, len(controls))
	for _, ctrl := range controls {
		skip[ctrl.Key] = true
	}
	var out []core.Parameter
	for _, group := range snapshot.Groups {
		for _, p := range group.Params {
			if !skip[p.Key] {
				out = append(out, p)
			}
		}
	}
	return out
}

// formatFloat renders value with a precision derived from the control step.
func formatFloat(ctrl core.ParameterControl, value float64) string {
	precision := 1
	switch step := ctrl.Step; {
	case step <= 0:
		precision = 2
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// control is the HUD state of one adjustable parameter.
type control struct {
	def   core.ParameterControl
	text  string
	num   float64
	valid bool
	top   int
	minus image.Rectangle
	plus  image.Rectangle
}

func (c *control) refresh(snapshot core.ParameterSnapshot) {
	c.valid = false
	c.text = "--"
	p, ok := snapshot.Lookup(c.def.Key)
	if !ok {
		return
	}
	switch c.def.Type {
	case core.ParamTypeInt:
		n, err := strconv.Atoi(p.Value)
		if err != nil {
			return
		}
		c.num = float64(n)
		c.text = strconv.Itoa(n)
	case core.ParamTypeFloat:
		f, err := strconv.ParseFloat(p.Value, 64)
		if err != nil {
			return
		}
		c.num = f
		c.text = formatFloat(c.def, f)
	default:
		return
	}
	c.valid = true
}

// target returns the value one step in direction, clamped to the bounds, and
// whether it differs from the current value.
func (c *control) target(direction int) (float64, bool) {
	step := c.def.Step
	if c.def.Type == core.ParamTypeInt {
		step = math.Max(math.Round(step), 1)
	} else if step <= 0 {
		step = 0.05
	}
	v := c.num + float64(direction)*step
	if c.def.HasMin {
		v = math.Max(v, c.def.Min)
	}
	if c.def.HasMax {
		v = math.Min(v, c.def.Max)
	}
	return v, math.Abs(v-c.num) > 1e-9
}
