package matrix

import "gridpar/internal/core"

// SumSequential returns a+b computed in one pass. Shapes are not checked.
func SumSequential(a, b *core.Grid[int]) *core.Grid[int] {
	out := core.NewGrid[int](a.Width(), a.Height())
	for i := 0; i < a.Height(); i++ {
		for j := 0; j < a.Width(); j++ {
			out.Set(i, j, a.At(i, j)+b.At(i, j))
		}
	}
	return out
}

// SubSequential returns a-b computed in one pass. Shapes are not checked.
func SubSequential(a, b *core.Grid[int]) *core.Grid[int] {
	out := core.NewGrid[int](a.Width(), a.Height())
	for i := 0; i < a.Height(); i++ {
		for j := 0; j < a.Width(); j++ {
			out.Set(i, j, a.At(i, j)-b.At(i, j))
		}
	}
	return out
}

// ProductSequential returns a*b computed in one pass. Shapes are not checked.
func ProductSequential(a, b *core.Grid[int]) *core.Grid[int] {
	out := core.NewGrid[int](b.Width(), a.Height())
	for i := 0; i < a.Height(); i++ {
		for j := 0; j < b.Width(); j++ {
			sum := 0
			for k := 0; k < a.Width(); k++ {
				sum += a.At(i, k) * b.At(k, j)
			}
			out.Set(i, j, sum)
		}
	}
	return out
}

// Identity returns the n x n identity matrix.
func Identity(n int) *core.Grid[int] {
	g := core.NewGrid[int](n, n)
	for i := 0; i < n; i++ {
		g.Set(i, i, 1)
	}
	return g
}

// Zero returns a rows x cols matrix of zeros.
func Zero(rows, cols int) *core.Grid[int] {
	return core.NewGrid[int](cols, rows)
}
