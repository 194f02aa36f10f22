// Package matrix implements integer matrix sum, subtraction and product on
// top of the row-partitioned engine.
package matrix

import (
	"fmt"
	"strings"

	"gridpar/internal/core"
	"gridpar/internal/engine"
)

// Op enumerates the supported operations.
type Op int

const (
	Sum Op = iota
	Sub
	Product
)

func (op Op) String() string {
	switch op {
	case Sum:
		return "sum"
	case Sub:
		return "sub"
	case Product:
		return "product"
	default:
		return fmt.Sprintf("op(%d)", int(op))
	}
}

// Ops lists every operation in a stable order.
func Ops() []Op { return []Op{Sum, Sub, Product} }

// ParseOp accepts the names printed by Op.String plus "add", "mul" and "mult".
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sum", "add":
		return Sum, nil
	case "sub", "subtract", "subtraction":
		return Sub, nil
	case "product", "mul", "mult":
		return Product, nil
	}
	return 0, fmt.Errorf("matrix: unknown operation %q", s)
}

// Check validates operand shapes for op.
func Check(op Op, a, b *core.Grid[int]) error {
	switch op {
	case Sum, Sub:
		if a.Size() != b.Size() {
			return &engine.DimensionError{Op: op.String(), Left: a.Size(), Right: b.Size(), Detail: "operands must have identical shapes"}
		}
	case Product:
		if a.Width() != b.Height() {
			return &engine.DimensionError{Op: op.String(), Left: a.Size(), Right: b.Size(), Detail: "left columns must equal right rows"}
		}
	default:
		return fmt.Errorf("matrix: unknown operation %v", op)
	}
	return nil
}

// Compute applies op to a and b. Shapes are checked before any work is
// scheduled. Neither operand is modified.
func Compute(op Op, a, b *core.Grid[int], mode engine.Mode) (*core.Grid[int], error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}
	if err := Check(op, a, b); err != nil {
		return nil, err
	}
	if !mode.IsThreaded() {
		switch op {
		case Sum:
			return SumSequential(a, b), nil
		case Sub:
			return SubSequential(a, b), nil
		default:
			return ProductSequential(a, b), nil
		}
	}

	var (
		task  engine.Task[int]
		width = a.Width()
	)
	switch op {
	case Sum:
		task = elementwise(a, b, add)
	case Sub:
		task = elementwise(a, b, sub)
	default:
		task = product(a, b)
		width = b.Width()
	}
	out, err := engine.Run(a.Height(), width, mode, task)
	if err != nil {
		return nil, fmt.Errorf("matrix: %s %s: %w", op, mode, err)
	}
	return out, nil
}

func add(x, y int) int { return x + y }
func sub(x, y int) int { return x - y }

// elementwise builds the task for row-local operations. A task reads only
// its own rows of a and b.
func elementwise(a, b *core.Grid[int], fn func(x, y int) int) engine.Task[int] {
	return func(p engine.Partition) ([][]int, error) {
		out := make([][]int, p.Len())
		for i := range out {
			ra, rb := a.Row(p.Start+i), b.Row(p.Start+i)
			row := make([]int, len(ra))
			for j := range row {
				row[j] = fn(ra[j], rb[j])
			}
			out[i] = row
		}
		return out, nil
	}
}

// product builds the task for a*b. Each task reads its rows of a and all of
// b, which is shared read-only between tasks.
func product(a, b *core.Grid[int]) engine.Task[int] {
	n, k := b.Width(), a.Width()
	return func(p engine.Partition) ([][]int, error) {
		out := make([][]int, p.Len())
		for i := range out {
			ra := a.Row(p.Start + i)
			row := make([]int, n)
			for j := range row {
				s := 0
				for x := 0; x < k; x++ {
					s += ra[x] * b.At(x, j)
				}
				row[j] = s
			}
			out[i] = row
		}
		return out, nil
	}
}
