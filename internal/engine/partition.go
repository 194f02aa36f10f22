// Package engine splits row-major grids into contiguous row partitions, runs
// one task per partition concurrently and stitches the partial results back
// together in partition order.
package engine

import "fmt"

// Partition is the half-open row range [Start, End) owned by one worker.
type Partition struct {
	Start int
	End   int
}

// Len returns the number of rows the partition must produce.
func (p Partition) Len() int { return p.End - p.Start }

// Empty reports whether the partition owns no rows.
func (p Partition) Empty() bool { return p.End <= p.Start }

// HaloTop returns how many borrowed rows sit above the partition (0 or 1).
func (p Partition) HaloTop() int {
	if p.Empty() || p.Start == 0 {
		return 0
	}
	return 1
}

// HaloBottom returns how many borrowed rows sit below the partition (0 or 1).
func (p Partition) HaloBottom(height int) int {
	if p.Empty() || p.End == height {
		return 0
	}
	return 1
}

// Halo returns the row range a stencil task has to read: the partition plus
// one neighbouring row on each side that lies inside [0, height).
func (p Partition) Halo(height int) Partition {
	if p.Empty() {
		return Partition{Start: p.Start, End: p.Start}
	}
	return Partition{Start: p.Start - p.HaloTop(), End: p.End + p.HaloBottom(height)}
}

func (p Partition) String() string { return fmt.Sprintf("[%d,%d)", p.Start, p.End) }

// Partitions divides height rows among workers. Worker i owns
// [i*height/workers, (i+1)*height/workers) and the last worker always ends at
// height. With more workers than rows some partitions are empty.
func Partitions(height, workers int) ([]Partition, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWorkers, workers)
	}
	if height < 0 {
		return nil, fmt.Errorf("%w: height %d", ErrInvalidDimensions, height)
	}
	parts := make([]Partition, workers)
	for i := range parts {
		parts[i] = Partition{
			Start: i * height / workers,
			End:   (i + 1) * height / workers,
		}
	}
	parts[workers-1].End = height
	return parts, nil
}

// CheckCover verifies that parts tile [0, height) in order with no gaps or
// overlaps.
func CheckCover(parts []Partition, height int) error {
	next := 0
	for i, p := range parts {
		if p.Start != next || p.End < p.Start {
			return fmt.Errorf("%w: partition %d is %s, expected start %d", ErrJoin, i, p, next)
		}
		next = p.End
	}
	if next != height {
		return fmt.Errorf("%w: partitions end at %d, height is %d", ErrJoin, next, height)
	}
	return nil
}
