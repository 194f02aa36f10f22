package core

import "fmt"

// Grid stores a rectangular 2D grid of cells as a slice of rows.
type Grid[T any] struct {
	w, h int
	rows [][]T
}

// NewGrid allocates a zero-valued grid with the given dimensions.
func NewGrid[T any](w, h int) *Grid[T] {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	data := make([]T, w*h)
	rows := make([][]T, h)
	for y := range rows {
		rows[y] = data[y*w : (y+1)*w : (y+1)*w]
	}
	return &Grid[T]{w: w, h: h, rows: rows}
}

// FromRows copies rows into a new grid. Every row must have the length of
// the first one.
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 {
		return NewGrid[T](0, 0), nil
	}
	w := len(rows[0])
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("core: row %d has length %d, expected %d", i, len(row), w)
		}
	}
	g := NewGrid[T](w, len(rows))
	for y, row := range rows {
		copy(g.rows[y], row)
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *Grid[T]) Size() Size { return Size{W: g.w, H: g.h} }

// At returns the cell at (row, col).
func (g *Grid[T]) At(row, col int) T { return g.rows[row][col] }

// Set stores v at (row, col).
func (g *Grid[T]) Set(row, col int, v T) { g.rows[row][col] = v }

// Row exposes row i without copying.
func (g *Grid[T]) Row(i int) []T { return g.rows[i] }

// Rows exposes the backing rows without copying. Callers must not resize them.
func (g *Grid[T]) Rows() [][]T { return g.rows }

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	c := NewGrid[T](g.w, g.h)
	for y, row := range g.rows {
		copy(c.rows[y], row)
	}
	return c
}

// Count returns how many cells satisfy pred.
func (g *Grid[T]) Count(pred func(T) bool) int {
	n := 0
	for _, row := range g.rows {
		for _, v := range row {
			if pred(v) {
				n++
			}
		}
	}
	return n
}

// Equal reports whether a and b have the same shape and cells.
func Equal[T comparable](a, b *Grid[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.w != b.w || a.h != b.h {
		return false
	}
	for y := range a.rows {
		ra, rb := a.rows[y], b.rows[y]
		for x := range ra {
			if ra[x] != rb[x] {
				return false
			}
		}
	}
	return true
}
