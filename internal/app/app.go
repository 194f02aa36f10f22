//go:build ebiten

package app

import (
	"image/color"
	"log/slog"
	"time"

	"gridpar/internal/core"
	"gridpar/internal/engine"
	"gridpar/internal/render"
	"gridpar/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the pixel width of the parameter panel right of the grid.
const HUDWidth = 220

type paletteProvider interface {
	Palette() []color.RGBA
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	clock   *core.FixedStep

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
	err      error
}

// New constructs a Game for sim drawn at scale pixels per cell, stepping
// ups times per second.
func New(sim core.Sim, scale, ups int, seed int64) *Game {
	scale = max(scale, 1)
	size := sim.Size()
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim, scale),
		hud:      ui.NewHUD(sim, HUDWidth),
		clock:    core.NewFixedStep(ups),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		seed:     seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	if sp, ok := g.sim.(statsProvider); ok {
		sp.Stats().Reset()
	}
	ebiten.SetWindowTitle(windowTitle(g.sim))
}

// Update handles per-frame logic and advances the simulation at the fixed
// step rate. A failed step stops the game with that error.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.nudge(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.nudge(-1)
	}

	g.overlay.Update()
	g.hud.Update(g.gridWidth())

	due := g.clock.ShouldStep()
	if g.tickOnce || (!g.paused && due) {
		g.tickOnce = false
		if err := g.sim.Step(); err != nil {
			g.err = err
			return err
		}
		g.report()
	}
	return nil
}

func (g *Game) nudge(delta int) {
	if n, ok := nudgeWorkers(g.sim, delta); ok {
		engine.Logger().Info("workers changed", "sim", g.sim.Name(), "workers", n)
		ebiten.SetWindowTitle(windowTitle(g.sim))
	}
}

// report refreshes the title after each step and logs the rolling average
// whenever the timing window fills.
func (g *Game) report() {
	ebiten.SetWindowTitle(windowTitle(g.sim))
	sp, ok := g.sim.(statsProvider)
	if !ok {
		return
	}
	st := sp.Stats()
	if st.Count()%core.DefaultStatsWindow == 0 {
		engine.Logger().Debug("step timing",
			slog.String("sim", g.sim.Name()),
			slog.Duration("last", st.Last()),
			slog.Duration("avg", st.Average()),
			slog.Int("samples", st.Count()))
	}
}

// Draw renders the current simulation state, the partition overlay and the
// HUD panel.
func (g *Game) Draw(screen *ebiten.Image) {
	if pp, ok := g.sim.(paletteProvider); ok {
		g.painter.BlitPalette(screen, g.sim.Cells(), pp.Palette(), g.scale)
	} else {
		g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	}
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.gridWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.gridWidth() + HUDWidth, g.sim.Size().H * g.scale
}

func (g *Game) gridWidth() int { return g.sim.Size().W * g.scale }
