package life

import (
	"fmt"

	"gridpar/internal/core"
	"gridpar/internal/engine"
)

// Life runs Conway's Game of Life on a bounded board. Each Step replaces the
// board with a freshly computed generation, so the previous one stays intact
// until the swap.
type Life struct {
	cfg   Config
	mode  engine.Mode
	board *core.Grid[bool]
	cells []uint8
	gen   int
	stats *core.StepStats
}

// New returns a Life simulation with the provided dimensions using defaults.
func New(w, h int) *Life {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a Life simulation configured from cfg.
func NewWithConfig(cfg Config) *Life {
	l := &Life{
		cfg:   cfg,
		mode:  cfg.Engine.Mode(),
		board: core.NewGrid[bool](cfg.Width, cfg.Height),
		stats: core.NewStepStats(core.DefaultStatsWindow),
	}
	l.cells = make([]uint8, l.board.Width()*l.board.Height())
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.board.Size() }

// Cells exposes the current generation as 0/1 bytes.
func (l *Life) Cells() []uint8 { return l.cells }

// Board returns the current generation. Callers must treat it as read-only.
func (l *Life) Board() *core.Grid[bool] { return l.board }

// SetBoard replaces the current generation with a copy of board.
func (l *Life) SetBoard(board *core.Grid[bool]) error {
	if board.Size() != l.board.Size() {
		return &engine.DimensionError{
			Op:     "set board",
			Left:   l.board.Size(),
			Right:  board.Size(),
			Detail: "board size cannot change",
		}
	}
	l.board = board.Clone()
	l.gen = 0
	l.syncCells()
	return nil
}

// Generation returns how many steps have been taken since the last reset.
func (l *Life) Generation() int { return l.gen }

// Mode returns the execution mode used by Step.
func (l *Life) Mode() engine.Mode { return l.mode }

// SetMode changes the execution mode used by subsequent steps.
func (l *Life) SetMode(m engine.Mode) error {
	if err := m.Validate(); err != nil {
		return err
	}
	l.mode = m
	l.stats.Reset()
	return nil
}

// Stats exposes the step timing window.
func (l *Life) Stats() *core.StepStats { return l.stats }

// Partitions returns the row split the current mode uses.
func (l *Life) Partitions() []engine.Partition {
	parts, err := engine.Partitions(l.board.Height(), l.mode.Workers())
	if err != nil {
		return nil
	}
	return parts
}

// Reset randomizes the board. A zero seed falls back to the configured one.
func (l *Life) Reset(seed int64) {
	if seed == 0 {
		seed = l.cfg.Seed
	}
	l.board = core.NewRNG(seed).RandomBoard(l.cfg.Width, l.cfg.Height, l.cfg.Chance)
	l.gen = 0
	l.syncCells()
}

// Step advances the simulation by one generation.
func (l *Life) Step() error {
	var next *core.Grid[bool]
	err := l.stats.Time(func() error {
		var err error
		next, err = Advance(l.board, l.board.Width(), l.board.Height(), l.mode)
		return err
	})
	if err != nil {
		return fmt.Errorf("life: generation %d: %w", l.gen+1, err)
	}
	l.board = next
	l.gen++
	l.syncCells()
	return nil
}

func (l *Life) syncCells() {
	w := l.board.Width()
	for r, row := range l.board.Rows() {
		base := r * w
		for c, alive := range row {
			if alive {
				l.cells[base+c] = 1
			} else {
				l.cells[base+c] = 0
			}
		}
	}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
