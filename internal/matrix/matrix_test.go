package matrix

import (
	"errors"
	"testing"

	"gridpar/internal/core"
	"gridpar/internal/engine"
)

func mustRows(t *testing.T, rows [][]int) *core.Grid[int] {
	t.Helper()
	g, err := core.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows returned error: %v", err)
	}
	return g
}

func modes(height int) []engine.Mode {
	return []engine.Mode{
		engine.Sequential(),
		engine.Threaded(1),
		engine.Threaded(2),
		engine.Threaded(4),
		engine.Threaded(height),
		engine.Threaded(height + 2),
	}
}

func TestSmallProduct(t *testing.T) {
	a := mustRows(t, [][]int{{1, 0, 2}, {2, 1, 3}})
	b := mustRows(t, [][]int{{2, 1}, {0, 1}, {4, 3}})
	want := mustRows(t, [][]int{{10, 7}, {16, 12}})
	for _, mode := range modes(2) {
		got, err := Compute(Product, a, b, mode)
		if err != nil {
			t.Fatalf("%v: Compute returned error: %v", mode, err)
		}
		if !core.Equal(want, got) {
			t.Fatalf("%v: got %v want %v", mode, got.Rows(), want.Rows())
		}
	}
}

func TestSumAndSub(t *testing.T) {
	a := mustRows(t, [][]int{{1, 2}, {3, 4}, {5, 6}})
	b := mustRows(t, [][]int{{6, 5}, {4, 3}, {2, 1}})
	sum := mustRows(t, [][]int{{7, 7}, {7, 7}, {7, 7}})
	diff := mustRows(t, [][]int{{-5, -3}, {-1, 1}, {3, 5}})
	for _, mode := range modes(3) {
		got, err := Compute(Sum, a, b, mode)
		if err != nil || !core.Equal(sum, got) {
			t.Fatalf("%v: sum got %v (err %v)", mode, got, err)
		}
		got, err = Compute(Sub, a, b, mode)
		if err != nil || !core.Equal(diff, got) {
			t.Fatalf("%v: sub got %v (err %v)", mode, got, err)
		}
	}
}

func TestIdentities(t *testing.T) {
	a := core.NewRNG(5).RandomMatrix(9, 9, 10)
	for _, mode := range modes(9) {
		got, err := Compute(Sum, a, Zero(9, 9), mode)
		if err != nil {
			t.Fatalf("%v: Compute returned error: %v", mode, err)
		}
		if !core.Equal(a, got) {
			t.Fatalf("%v: A + 0 != A", mode)
		}
		got, err = Compute(Product, Identity(9), a, mode)
		if err != nil {
			t.Fatalf("%v: Compute returned error: %v", mode, err)
		}
		if !core.Equal(a, got) {
			t.Fatalf("%v: I * A != A", mode)
		}
		got, err = Compute(Sub, a, a, mode)
		if err != nil {
			t.Fatalf("%v: Compute returned error: %v", mode, err)
		}
		if !core.Equal(Zero(9, 9), got) {
			t.Fatalf("%v: A - A != 0", mode)
		}
	}
}

func TestThreadedMatchesSequential(t *testing.T) {
	rng := core.NewRNG(100)
	a := rng.RandomMatrix(23, 31, 10)
	b := rng.RandomMatrix(23, 31, 10)
	c := rng.RandomMatrix(17, 23, 10)
	refs := map[Op]*core.Grid[int]{
		Sum:     SumSequential(a, b),
		Sub:     SubSequential(a, b),
		Product: ProductSequential(a, c),
	}
	for _, op := range Ops() {
		right := b
		if op == Product {
			right = c
		}
		for _, mode := range modes(a.Height()) {
			first, err := Compute(op, a, right, mode)
			if err != nil {
				t.Fatalf("%s %v: Compute returned error: %v", op, mode, err)
			}
			if !core.Equal(refs[op], first) {
				t.Fatalf("%s %v differs from sequential", op, mode)
			}
			second, err := Compute(op, a, right, mode)
			if err != nil {
				t.Fatalf("%s %v: Compute returned error: %v", op, mode, err)
			}
			if !core.Equal(first, second) {
				t.Fatalf("%s %v is not deterministic", op, mode)
			}
		}
	}
	if a.Height() != 31 || refs[Product].Width() != 17 {
		t.Fatalf("unexpected product shape %dx%d", refs[Product].Height(), refs[Product].Width())
	}
}

func TestDimensionMismatch(t *testing.T) {
	a := core.NewGrid[int](3, 2)
	b := core.NewGrid[int](2, 3)
	for _, op := range []Op{Sum, Sub} {
		_, err := Compute(op, a, b, engine.Threaded(2))
		var derr *engine.DimensionError
		if !errors.As(err, &derr) || !errors.Is(err, engine.ErrInvalidDimensions) {
			t.Fatalf("%s: expected DimensionError, got %v", op, err)
		}
		if derr.Op != op.String() {
			t.Fatalf("%s: unexpected op in error: %q", op, derr.Op)
		}
	}
	// 2x3 * 2x3 has mismatched inner dimensions.
	if _, err := Compute(Product, a, a, engine.Sequential()); !errors.Is(err, engine.ErrInvalidDimensions) {
		t.Fatalf("product: expected ErrInvalidDimensions, got %v", err)
	}
	if _, err := Compute(Product, a, b, engine.Threaded(0)); !errors.Is(err, engine.ErrInvalidWorkers) {
		t.Fatalf("expected ErrInvalidWorkers, got %v", err)
	}
}

func TestParseOp(t *testing.T) {
	for _, op := range Ops() {
		got, err := ParseOp(op.String())
		if err != nil || got != op {
			t.Fatalf("ParseOp(%q) = %v, %v", op.String(), got, err)
		}
	}
	if got, err := ParseOp("MUL"); err != nil || got != Product {
		t.Fatalf("ParseOp(MUL) = %v, %v", got, err)
	}
	if _, err := ParseOp("divide"); err == nil {
		t.Fatal("expected error for unknown op")
	}
}
