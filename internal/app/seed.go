package app

import "spacetime-ca/internal/core"

// Seed fills the live generation of sim at random with the given density.
// A non-positive density leaves the grid untouched.
func Seed(sim core.Sim, density float64, seed int64) {
	if density <= 0 {
		return
	}
	core.NewRNG(seed).FillBinary(sim.Cells(), density)
}
