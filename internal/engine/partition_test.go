package engine

import (
	"errors"
	"testing"
)

func TestPartitionsCoverRows(t *testing.T) {
	for height := 0; height <= 37; height++ {
		for workers := 1; workers <= 12; workers++ {
			parts, err := Partitions(height, workers)
			if err != nil {
				t.Fatalf("Partitions(%d, %d) returned error: %v", height, workers, err)
			}
			if len(parts) != workers {
				t.Fatalf("Partitions(%d, %d) returned %d partitions", height, workers, len(parts))
			}
			if parts[0].Start != 0 {
				t.Fatalf("height=%d workers=%d: first partition starts at %d", height, workers, parts[0].Start)
			}
			for i := 0; i+1 < len(parts); i++ {
				if parts[i].End != parts[i+1].Start {
					t.Fatalf("height=%d workers=%d: gap or overlap between %v and %v", height, workers, parts[i], parts[i+1])
				}
			}
			if last := parts[len(parts)-1]; last.End != height {
				t.Fatalf("height=%d workers=%d: last partition ends at %d", height, workers, last.End)
			}
			if err := CheckCover(parts, height); err != nil {
				t.Fatalf("CheckCover rejected its own plan: %v", err)
			}
		}
	}
}

func TestPartitionsLastAbsorbsRemainder(t *testing.T) {
	parts, err := Partitions(10, 3)
	if err != nil {
		t.Fatalf("Partitions returned error: %v", err)
	}
	want := []Partition{{0, 3}, {3, 6}, {6, 10}}
	for i := range want {
		if parts[i] != want[i] {
			t.Fatalf("partition %d: got %v want %v", i, parts[i], want[i])
		}
	}
}

func TestPartitionsMoreWorkersThanRows(t *testing.T) {
	parts, err := Partitions(2, 5)
	if err != nil {
		t.Fatalf("Partitions returned error: %v", err)
	}
	empty := 0
	rows := 0
	for _, p := range parts {
		if p.Empty() {
			empty++
		}
		rows += p.Len()
	}
	if empty != 3 || rows != 2 {
		t.Fatalf("expected 3 empty partitions and 2 rows, got %d empty and %d rows: %v", empty, rows, parts)
	}
}

func TestPartitionsRejectsZeroWorkers(t *testing.T) {
	if _, err := Partitions(10, 0); !errors.Is(err, ErrInvalidWorkers) {
		t.Fatalf("expected ErrInvalidWorkers, got %v", err)
	}
	if _, err := Partitions(-1, 2); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("expected ErrInvalidDimensions, got %v", err)
	}
}

func TestHaloRanges(t *testing.T) {
	const height = 9
	cases := []struct {
		p    Partition
		want Partition
		top  int
	}{
		{Partition{0, 3}, Partition{0, 4}, 0},
		{Partition{3, 6}, Partition{2, 7}, 1},
		{Partition{6, 9}, Partition{5, 9}, 1},
		{Partition{0, 9}, Partition{0, 9}, 0},
		{Partition{4, 4}, Partition{4, 4}, 0},
	}
	for _, tc := range cases {
		if got := tc.p.Halo(height); got != tc.want {
			t.Fatalf("Halo(%v): got %v want %v", tc.p, got, tc.want)
		}
		if got := tc.p.HaloTop(); got != tc.top {
			t.Fatalf("HaloTop(%v): got %d want %d", tc.p, got, tc.top)
		}
	}
}

func TestCheckCoverDetectsGaps(t *testing.T) {
	if err := CheckCover([]Partition{{0, 2}, {3, 5}}, 5); !errors.Is(err, ErrJoin) {
		t.Fatalf("expected gap to be rejected, got %v", err)
	}
	if err := CheckCover([]Partition{{0, 3}, {2, 5}}, 5); !errors.Is(err, ErrJoin) {
		t.Fatalf("expected overlap to be rejected, got %v", err)
	}
	if err := CheckCover([]Partition{{0, 3}}, 5); !errors.Is(err, ErrJoin) {
		t.Fatalf("expected short cover to be rejected, got %v", err)
	}
}
