//go:build ebiten

package ui

import (
	"image/color"

	"gridpar/internal/core"
	"gridpar/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay tints each worker's row band on top of the grid view. B toggles it.
type Overlay struct {
	sim   core.Sim
	scale int
	show  bool
	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for sim drawn at scale pixels per cell.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Visible reports whether the bands are drawn.
func (o *Overlay) Visible() bool { return o.show }

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		o.show = !o.show
	}
}

// Draw renders the partition bands onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	provider, ok := o.sim.(PartitionProvider)
	if !ok {
		return
	}
	for _, b := range partitionBands(provider.Partitions(), o.sim.Size().W, o.scale) {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(b.rect.Dx()), float64(b.rect.Dy()))
		op.GeoM.Translate(float64(b.rect.Min.X), float64(b.rect.Min.Y))
		op.ColorScale.ScaleWithColor(render.BandColor(b.index))
		screen.DrawImage(o.pixel, op)
	}
}
