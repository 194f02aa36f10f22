package engine

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"gridpar/internal/core"
)

// rowIndexTask fills every output row with its global row index.
func rowIndexTask(width int) Task[int] {
	return func(p Partition) ([][]int, error) {
		out := make([][]int, p.Len())
		for i := range out {
			row := make([]int, width)
			for c := range row {
				row[c] = p.Start + i
			}
			out[i] = row
		}
		return out, nil
	}
}

func TestDispatchPreservesPartitionOrder(t *testing.T) {
	parts, err := Partitions(12, 4)
	if err != nil {
		t.Fatalf("Partitions returned error: %v", err)
	}
	// Later partitions finish first.
	task := func(p Partition) ([][]int, error) {
		time.Sleep(time.Duration(12-p.Start) * time.Millisecond)
		return rowIndexTask(3)(p)
	}
	chunks, err := Dispatch(parts, task)
	if err != nil {
		t.Fatalf("Dispatch returned error: %v", err)
	}
	grid, err := Join(parts, chunks, 3)
	if err != nil {
		t.Fatalf("Join returned error: %v", err)
	}
	for r := 0; r < 12; r++ {
		for c := 0; c < 3; c++ {
			if got := grid.At(r, c); got != r {
				t.Fatalf("cell (%d,%d): got %d want %d", r, c, got, r)
			}
		}
	}
}

func TestDispatchSkipsEmptyPartitions(t *testing.T) {
	parts, err := Partitions(2, 6)
	if err != nil {
		t.Fatalf("Partitions returned error: %v", err)
	}
	var calls atomic.Int32
	task := func(p Partition) ([][]int, error) {
		calls.Add(1)
		return rowIndexTask(1)(p)
	}
	chunks, err := Dispatch(parts, task)
	if err != nil {
		t.Fatalf("Dispatch returned error: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected 2 task invocations for 2 non-empty partitions, got %d", got)
	}
	grid, err := Join(parts, chunks, 1)
	if err != nil {
		t.Fatalf("Join returned error: %v", err)
	}
	if grid.Height() != 2 {
		t.Fatalf("expected height 2, got %d", grid.Height())
	}
}

func TestDispatchReportsFailingPartition(t *testing.T) {
	parts, _ := Partitions(8, 4)
	boom := errors.New("boom")
	task := func(p Partition) ([][]int, error) {
		if p.Start == 4 {
			return nil, boom
		}
		return rowIndexTask(2)(p)
	}
	chunks, err := Dispatch(parts, task)
	if chunks != nil {
		t.Fatal("expected no results on failure")
	}
	var perr *PartitionError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *PartitionError, got %v", err)
	}
	if perr.Index != 2 || perr.Partition != (Partition{4, 6}) {
		t.Fatalf("unexpected failing partition: %+v", perr)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped task error, got %v", err)
	}
}

func TestDispatchRecoversPanics(t *testing.T) {
	parts, _ := Partitions(4, 2)
	task := func(p Partition) ([][]int, error) {
		var rows [][]int
		_ = rows[p.End] // out of range
		return nil, nil
	}
	_, err := Dispatch(parts, task)
	if !errors.Is(err, ErrTaskPanic) {
		t.Fatalf("expected ErrTaskPanic, got %v", err)
	}
	var perr *PartitionError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *PartitionError, got %T", err)
	}
}

func TestJoinRejectsWrongRowCount(t *testing.T) {
	parts := []Partition{{0, 2}, {2, 4}}
	chunks := [][][]int{
		{{1}, {2}},
		{{3}},
	}
	if _, err := Join(parts, chunks, 1); !errors.Is(err, ErrJoin) {
		t.Fatalf("expected ErrJoin for short chunk, got %v", err)
	}
	chunks[1] = [][]int{{3}, {4, 5}}
	if _, err := Join(parts, chunks, 1); !errors.Is(err, ErrJoin) {
		t.Fatalf("expected ErrJoin for wide row, got %v", err)
	}
}

func TestRunSequentialMatchesThreaded(t *testing.T) {
	want, err := Run(11, 5, Sequential(), rowIndexTask(5))
	if err != nil {
		t.Fatalf("sequential Run returned error: %v", err)
	}
	for _, workers := range []int{1, 2, 3, 4, 11, 20} {
		got, err := Run(11, 5, Threaded(workers), rowIndexTask(5))
		if err != nil {
			t.Fatalf("Run with %d workers returned error: %v", workers, err)
		}
		if !core.Equal(want, got) {
			t.Fatalf("Run with %d workers differs from sequential", workers)
		}
	}
}

func TestRunRejectsInvalidMode(t *testing.T) {
	grid, err := Run(4, 4, Threaded(0), rowIndexTask(4))
	if !errors.Is(err, ErrInvalidWorkers) {
		t.Fatalf("expected ErrInvalidWorkers, got %v", err)
	}
	if grid != nil {
		t.Fatal("expected nil grid on failure")
	}
}
