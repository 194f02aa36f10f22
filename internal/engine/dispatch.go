package engine

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"gridpar/internal/core"
)

// Task computes the output rows of one partition. It must return exactly
// p.Len() rows and must not write to any shared input.
type Task[T any] func(p Partition) ([][]T, error)

// Dispatch runs task once per partition, each on its own goroutine, and
// blocks until all of them have finished. Results are indexed like parts
// regardless of completion order. A failing or panicking task fails the
// whole call with a *PartitionError.
func Dispatch[T any](parts []Partition, task Task[T]) ([][][]T, error) {
	chunks := make([][][]T, len(parts))
	if len(parts) == 0 {
		return chunks, nil
	}
	var g errgroup.Group
	g.SetLimit(len(parts))
	for i, p := range parts {
		g.Go(func() error {
			rows, err := runTask(i, p, task)
			if err != nil {
				return err
			}
			chunks[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		Logger().Warn("engine: task failed", "err", err)
		return nil, err
	}
	return chunks, nil
}

func runTask[T any](i int, p Partition, task Task[T]) (rows [][]T, err error) {
	if p.Empty() {
		return nil, nil
	}
	defer func() {
		if r := recover(); r != nil {
			rows = nil
			err = &PartitionError{Index: i, Partition: p, Err: fmt.Errorf("%w: %v", ErrTaskPanic, r)}
		}
	}()
	rows, err = task(p)
	if err != nil {
		return nil, &PartitionError{Index: i, Partition: p, Err: err}
	}
	return rows, nil
}

// Join concatenates chunks in partition order into a fresh width-column grid.
// Every chunk must hold exactly its partition's row count, each row exactly
// width cells, and the partitions must tile [0, height) for the last End.
func Join[T any](parts []Partition, chunks [][][]T, width int) (*core.Grid[T], error) {
	if len(chunks) != len(parts) {
		return nil, fmt.Errorf("%w: %d chunks for %d partitions", ErrJoin, len(chunks), len(parts))
	}
	height := 0
	if len(parts) > 0 {
		height = parts[len(parts)-1].End
	}
	if err := CheckCover(parts, height); err != nil {
		return nil, err
	}
	out := core.NewGrid[T](width, height)
	for i, p := range parts {
		chunk := chunks[i]
		if len(chunk) != p.Len() {
			return nil, fmt.Errorf("%w: partition %d %s returned %d rows", ErrJoin, i, p, len(chunk))
		}
		for r, row := range chunk {
			if len(row) != width {
				return nil, fmt.Errorf("%w: partition %d row %d has %d cells, expected %d", ErrJoin, i, p.Start+r, len(row), width)
			}
			copy(out.Row(p.Start+r), row)
		}
	}
	return out, nil
}

// Run partitions height rows according to mode, executes task for every
// partition and joins the results into a height x width grid. Sequential
// mode runs a single task over all rows on the calling goroutine.
func Run[T any](height, width int, mode Mode, task Task[T]) (*core.Grid[T], error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}
	if height < 0 || width < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, height, width)
	}
	parts, err := Partitions(height, mode.Workers())
	if err != nil {
		return nil, err
	}
	log := Logger()
	start := time.Now()

	var chunks [][][]T
	if mode.IsThreaded() {
		log.Debug("engine: dispatch", "mode", mode.String(), "height", height, "width", width, "partitions", parts)
		chunks, err = Dispatch(parts, task)
	} else {
		var rows [][]T
		rows, err = runTask(0, parts[0], task)
		chunks = [][][]T{rows}
	}
	if err != nil {
		return nil, err
	}
	out, err := Join(parts, chunks, width)
	if err != nil {
		return nil, err
	}
	log.Debug("engine: joined", "mode", mode.String(), "elapsed", time.Since(start))
	return out, nil
}
