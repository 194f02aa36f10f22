package briansbrain

import (
	"fmt"
	"image/color"
	"strconv"

	"gridpar/internal/core"
	"gridpar/internal/engine"
)

const (
	stateDead  = 0
	stateOn    = 1
	stateDying = 2
)

// Config holds the board size and engine settings.
type Config struct {
	Width  int
	Height int
	Seed   int64
	Engine engine.Config
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Seed: 7, Engine: engine.DefaultConfig()}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	c.Engine = engine.FromMap(cfg)
	return c
}

// Brain implements Brian's Brain on a bounded board.
type Brain struct {
	cfg   Config
	mode  engine.Mode
	board *core.Grid[uint8]
	cells []uint8
	tick  int
	stats *core.StepStats
}

// New creates a Brain simulation with the provided dimensions.
func New(w, h int) *Brain {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = w, h
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Brain simulation from cfg.
func NewWithConfig(cfg Config) *Brain {
	b := &Brain{
		cfg:   cfg,
		mode:  cfg.Engine.Mode(),
		board: core.NewGrid[uint8](cfg.Width, cfg.Height),
		stats: core.NewStepStats(core.DefaultStatsWindow),
	}
	b.cells = make([]uint8, b.board.Width()*b.board.Height())
	return b
}

// Name identifies the simulation.
func (b *Brain) Name() string { return "briansbrain" }

// Size returns the grid dimensions.
func (b *Brain) Size() core.Size { return b.board.Size() }

// Cells exposes the current state buffer.
func (b *Brain) Cells() []uint8 { return b.cells }

// Board returns the current generation.
func (b *Brain) Board() *core.Grid[uint8] { return b.board }

// Palette maps dead, firing and dying cells to colours.
func (b *Brain) Palette() []color.RGBA {
	return []color.RGBA{
		stateDead:  {R: 0, G: 0, B: 0, A: 255},
		stateOn:    {R: 240, G: 240, B: 255, A: 255},
		stateDying: {R: 60, G: 90, B: 200, A: 255},
	}
}

// Partitions returns the row split the current mode uses.
func (b *Brain) Partitions() []engine.Partition {
	parts, err := engine.Partitions(b.board.Height(), b.mode.Workers())
	if err != nil {
		return nil
	}
	return parts
}

// Reset randomizes cells into dead or firing states.
func (b *Brain) Reset(seed int64) {
	if seed == 0 {
		seed = b.cfg.Seed
	}
	rng := core.NewRNG(seed).Source()
	for _, row := range b.board.Rows() {
		for x := range row {
			row[x] = stateDead
			if rng.IntN(8) == 0 {
				row[x] = stateOn
			}
		}
	}
	b.tick = 0
	b.syncCells()
}

// Next returns the state following board. Firing cells start dying, dying
// cells die, and dead cells fire when exactly two neighbours are firing.
func Next(board *core.Grid[uint8], mode engine.Mode) (*core.Grid[uint8], error) {
	return engine.Stencil(board, mode, cell)
}

func isOn(v uint8) bool { return v == stateOn }

func cell(w *engine.Window[uint8], row, col int) uint8 {
	cur, _ := w.At(row, col)
	switch cur {
	case stateOn:
		return stateDying
	case stateDying:
		return stateDead
	}
	if engine.CountNeighbors(w, row, col, isOn) == 2 {
		return stateOn
	}
	return stateDead
}

// Step advances the automaton by one tick.
func (b *Brain) Step() error {
	var next *core.Grid[uint8]
	err := b.stats.Time(func() error {
		var err error
		next, err = Next(b.board, b.mode)
		return err
	})
	if err != nil {
		return fmt.Errorf("briansbrain: step: %w", err)
	}
	b.board = next
	b.tick++
	b.syncCells()
	return nil
}

func (b *Brain) syncCells() {
	w := b.board.Width()
	for r, row := range b.board.Rows() {
		copy(b.cells[r*w:(r+1)*w], row)
	}
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
