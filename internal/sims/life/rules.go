package life

import (
	"fmt"

	"gridpar/internal/core"
	"gridpar/internal/engine"
)

// Rule returns the next state of a cell: born with exactly 3 live
// neighbours, unchanged with exactly 2, dead otherwise.
func Rule(alive bool, neighbors int) bool {
	switch neighbors {
	case 3:
		return true
	case 2:
		return alive
	default:
		return false
	}
}

// Neighbors counts the live Moore neighbours of (row, col). Cells outside
// the board count as dead; the board does not wrap.
func Neighbors(board *core.Grid[bool], row, col int) int {
	h, w := board.Height(), board.Width()
	n := 0
	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 || r >= h {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			c := col + dc
			if c < 0 || c >= w || (dr == 0 && dc == 0) {
				continue
			}
			if board.At(r, c) {
				n++
			}
		}
	}
	return n
}

// StepSequential computes the next generation in a single pass. It is the
// reference the partitioned path is checked against.
func StepSequential(board *core.Grid[bool]) *core.Grid[bool] {
	next := core.NewGrid[bool](board.Width(), board.Height())
	for r := 0; r < board.Height(); r++ {
		row := next.Row(r)
		for c := range row {
			row[c] = Rule(board.At(r, c), Neighbors(board, r, c))
		}
	}
	return next
}

func isAlive(v bool) bool { return v }

// cell is the per-cell worker rule run inside each partition.
func cell(w *engine.Window[bool], row, col int) bool {
	alive, _ := w.At(row, col)
	return Rule(alive, engine.CountNeighbors(w, row, col, isAlive))
}

// Advance returns the generation after board. width and height must match
// the board. The input is never modified.
func Advance(board *core.Grid[bool], width, height int, mode engine.Mode) (*core.Grid[bool], error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}
	if board.Width() != width || board.Height() != height {
		return nil, &engine.DimensionError{
			Op:     "advance",
			Left:   board.Size(),
			Right:  core.Size{W: width, H: height},
			Detail: "board does not match the requested size",
		}
	}
	if !mode.IsThreaded() {
		return StepSequential(board), nil
	}
	next, err := engine.Stencil(board, mode, cell)
	if err != nil {
		return nil, fmt.Errorf("life: advance %s: %w", mode, err)
	}
	return next, nil
}
