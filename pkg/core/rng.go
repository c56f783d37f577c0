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

// Chance draws a uniform sample and reports whether it fell below p.
// Non-positive p never fires without consuming a draw, so rules disabled
// by a zero bias leave the random stream untouched.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	return r.r.Float64() < p
}

// Float64 returns a uniform sample in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// FillDensity sets each buffer entry to 1 with the given probability.
func FillDensity(r *rand.Rand, buf []uint8, density float64) {
	for i := range buf {
		buf[i] = 0
		if r.Float64() < density {
			buf[i] = 1
		}
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
