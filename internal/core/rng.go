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

// FillBinary sets each cell of buf to 1 with probability density and to 0
// otherwise.
func (r *RNG) FillBinary(buf []uint8, density float64) {
	for i := range buf {
		if r.r.Float64() < density {
			buf[i] = 1
			continue
		}
		buf[i] = 0
	}
}
