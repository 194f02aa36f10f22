package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance draws a tenth in [0, 1) and reports whether it falls below p.
// Probabilities therefore resolve in steps of 0.1.
func (r *RNG) Chance(p float64) bool {
	return float64(r.r.IntN(10))/10 < p
}

// RandomBoard returns a w*h board where each cell is alive with probability chance.
func (r *RNG) RandomBoard(w, h int, chance float64) *Grid[bool] {
	g := NewGrid[bool](w, h)
	for _, row := range g.Rows() {
		for x := range row {
			row[x] = r.Chance(chance)
		}
	}
	return g
}

// RandomMatrix returns a w*h matrix with values drawn from [0, limit).
func (r *RNG) RandomMatrix(w, h, limit int) *Grid[int] {
	g := NewGrid[int](w, h)
	if limit <= 0 {
		return g
	}
	for _, row := range g.Rows() {
		for x := range row {
			row[x] = r.r.IntN(limit)
		}
	}
	return g
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
