package engine

import (
	"errors"
	"fmt"

	"gridpar/internal/core"
)

var (
	// ErrInvalidWorkers is returned for a threaded mode with fewer than one worker.
	ErrInvalidWorkers = errors.New("engine: worker count must be at least 1")
	// ErrInvalidDimensions is the root of every shape related failure.
	ErrInvalidDimensions = errors.New("engine: invalid dimensions")
	// ErrTaskPanic marks a worker task that panicked instead of returning.
	ErrTaskPanic = errors.New("engine: task panicked")
	// ErrJoin is returned when partition results do not tile the output grid.
	ErrJoin = errors.New("engine: partition results do not tile the grid")
)

// DimensionError reports operands whose shapes are incompatible with an
// operation. Sizes are printed rows x cols.
type DimensionError struct {
	Op     string
	Left   core.Size
	Right  core.Size
	Detail string
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("engine: %s: incompatible dimensions %dx%d and %dx%d: %s",
		e.Op, e.Left.H, e.Left.W, e.Right.H, e.Right.W, e.Detail)
}

// Unwrap lets errors.Is match ErrInvalidDimensions.
func (e *DimensionError) Unwrap() error { return ErrInvalidDimensions }

// PartitionError identifies the partition whose task failed.
type PartitionError struct {
	Index     int
	Partition Partition
	Err       error
}

func (e *PartitionError) Error() string {
	return fmt.Sprintf("engine: partition %d [%d,%d): %v", e.Index, e.Partition.Start, e.Partition.End, e.Err)
}

func (e *PartitionError) Unwrap() error { return e.Err }
