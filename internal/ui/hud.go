//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"gridpar/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBG     = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	headerFG    = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelFG     = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimFG       = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonBG    = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonOffBG = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	buttonOffFG = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

// HUD renders the parameter panel to the right of the grid view. Int and
// float controls get -/+ buttons; every other published parameter, such as
// the execution mode and step timings, is listed read-only below them.
type HUD struct {
	sim      core.Sim
	width    int
	panel    *ebiten.Image
	pixel    *ebiten.Image
	title    string
	offsetX  int
	snapshot core.ParameterSnapshot

	controls    []control
	info        []core.Parameter
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
}

// NewHUD builds a panel of the given pixel width for sim.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, width: max(width, 0), title: panelTitle(sim)}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if p, ok := sim.(core.ParameterControlsProvider); ok {
		for i, def := range p.ParameterControls() {
			top := controlsTop + i*lineHeight
			y := top + (lineHeight-buttonSize)/2
			plus := image.Rect(h.width-panelPadding-buttonSize, y, h.width-panelPadding, y+buttonSize)
			minus := plus.Sub(image.Pt(buttonSize+buttonGap, 0))
			h.controls = append(h.controls, control{def: def, text: "--", top: top, minus: minus, plus: plus})
		}
	}
	h.intSetter, _ = sim.(core.IntParameterSetter)
	h.floatSetter, _ = sim.(core.FloatParameterSetter)
	return h
}

// Update pulls a fresh snapshot from the sim and applies button clicks.
// offsetX is the panel's left edge in screen pixels.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.offsetX = offsetX
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		h.info = nil
		return
	}
	h.snapshot = provider.Parameters()
	defs := make([]core.ParameterControl, len(h.controls))
	for i := range h.controls {
		h.controls[i].refresh(h.snapshot)
		defs[i] = h.controls[i].def
	}
	h.info = infoParams(h.snapshot, defs)
	h.handleClick()
}

// Draw paints the panel at offsetX. scale is the cell size used by the grid
// view, so the panel matches its height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := h.sim.Size().H * max(scale, 1)
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBG)
	h.drawPanel()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) settable(c *control) bool {
	switch c.def.Type {
	case core.ParamTypeInt:
		return h.intSetter != nil
	case core.ParamTypeFloat:
		return h.floatSetter != nil
	}
	return false
}

func (h *HUD) canAdjust(c *control, direction int) bool {
	if !c.valid || !h.settable(c) {
		return false
	}
	_, moved := c.target(direction)
	return moved
}

func (h *HUD) handleClick() {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	pt := image.Pt(mx-h.offsetX, my)
	for i := range h.controls {
		c := &h.controls[i]
		switch {
		case pt.In(c.minus):
			h.adjust(c, -1)
			return
		case pt.In(c.plus):
			h.adjust(c, 1)
			return
		}
	}
}

func (h *HUD) adjust(c *control, direction int) {
	if !h.canAdjust(c, direction) {
		return
	}
	v, _ := c.target(direction)
	switch c.def.Type {
	case core.ParamTypeInt:
		n := int(math.Round(v))
		if h.intSetter.SetIntParameter(c.def.Key, n) {
			c.num = float64(n)
			c.text = strconv.Itoa(n)
		}
	case core.ParamTypeFloat:
		if h.floatSetter.SetFloatParameter(c.def.Key, v) {
			c.num = v
			c.text = formatFloat(c.def, v)
		}
	}
}

func (h *HUD) drawPanel() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, headerFG)
	if len(h.controls) == 0 && len(h.info) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, y+infoSpacing, dimFG)
		return
	}
	for i := range h.controls {
		c := &h.controls[i]
		baseline := c.top + labelBaseline
		text.Draw(h.panel, c.def.Label, face, panelPadding, baseline, labelFG)
		fg := labelFG
		if !c.valid {
			fg = dimFG
		}
		w := text.BoundString(face, c.text).Dx()
		text.Draw(h.panel, c.text, face, c.minus.Min.X-buttonGap-w, baseline, fg)
		h.drawButton(c.minus, "-", h.canAdjust(c, -1))
		h.drawButton(c.plus, "+", h.canAdjust(c, 1))
	}
	y = controlsTop + len(h.controls)*lineHeight + infoLine
	for _, p := range h.info {
		text.Draw(h.panel, p.Label, face, panelPadding, y, dimFG)
		w := text.BoundString(face, p.Value).Dx()
		text.Draw(h.panel, p.Value, face, h.width-panelPadding-w, y, labelFG)
		y += infoLine
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonBG, labelFG
	if !enabled {
		bg, fg = buttonOffBG, buttonOffFG
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()+b.Dy())/2
	text.Draw(h.panel, label, face, x, y, fg)
}

const (
	panelPadding   = 12
	lineHeight     = 36
	infoLine       = 18
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	controlsTop    = panelPadding + headerBaseline + 14
)
