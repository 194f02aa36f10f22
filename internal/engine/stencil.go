package engine

import "gridpar/internal/core"

// Window is the halo-extended, read-only slice of a grid handed to a stencil
// task. It is addressed with global coordinates.
type Window[T any] struct {
	rows          [][]T
	offset        int
	width, height int
}

// HaloView borrows the halo-extended rows of p from g without copying.
func HaloView[T any](g *core.Grid[T], p Partition) *Window[T] {
	halo := p.Halo(g.Height())
	return &Window[T]{
		rows:   g.Rows()[halo.Start:halo.End],
		offset: halo.Start,
		width:  g.Width(),
		height: g.Height(),
	}
}

// HaloCopy is HaloView with the rows copied, so the task owns its input.
func HaloCopy[T any](g *core.Grid[T], p Partition) *Window[T] {
	w := HaloView(g, p)
	rows := make([][]T, len(w.rows))
	for i, src := range w.rows {
		rows[i] = append([]T(nil), src...)
	}
	w.rows = rows
	return w
}

// Width returns the width of the whole grid.
func (w *Window[T]) Width() int { return w.width }

// Height returns the height of the whole grid.
func (w *Window[T]) Height() int { return w.height }

// Rows returns the global row range held by the window.
func (w *Window[T]) Rows() Partition {
	return Partition{Start: w.offset, End: w.offset + len(w.rows)}
}

// At returns the cell at global (row, col). ok is false for coordinates
// outside the grid; reading a row inside the grid but outside the window
// panics, which the dispatcher reports as a task failure.
func (w *Window[T]) At(row, col int) (v T, ok bool) {
	if row < 0 || row >= w.height || col < 0 || col >= w.width {
		return v, false
	}
	return w.rows[row-w.offset][col], true
}

// CountNeighbors counts the Moore neighbours of (row, col) matching pred.
// Neighbours outside the grid are absent, there is no wraparound.
func CountNeighbors[T any](w *Window[T], row, col int, pred func(T) bool) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if v, ok := w.At(row+dr, col+dc); ok && pred(v) {
				n++
			}
		}
	}
	return n
}

// CellRule computes the next value of the cell at global (row, col).
type CellRule[T any] func(w *Window[T], row, col int) T

// Stencil applies rule to every cell of g and returns the next generation.
// In threaded mode each task receives a private copy of its halo-extended
// rows; g itself is never modified.
func Stencil[T any](g *core.Grid[T], mode Mode, rule CellRule[T]) (*core.Grid[T], error) {
	width := g.Width()
	threaded := mode.IsThreaded()
	return Run(g.Height(), width, mode, func(p Partition) ([][]T, error) {
		var win *Window[T]
		if threaded {
			win = HaloCopy(g, p)
		} else {
			win = HaloView(g, p)
		}
		out := make([][]T, p.Len())
		for i := range out {
			row := make([]T, width)
			r := p.Start + i
			for c := range row {
				row[c] = rule(win, r, c)
			}
			out[i] = row
		}
		return out, nil
	})
}
