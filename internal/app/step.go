package app

import "spacetime-ca/internal/core"

// StepWithPointer advances sim by steps generations. When sim accepts cell
// injection the cell reported by pointer is pending before every tick, and
// is armed once more afterwards so the overlay can mark it between frames.
func StepWithPointer(sim core.Sim, steps int, pointer func() (x, y int, ok bool)) {
	inj, _ := sim.(core.CellInjector)
	arm := func() {
		if inj == nil {
			return
		}
		x, y, ok := pointer()
		if !ok || inj.AddCell(x, y) != nil {
			inj.ClearPending()
		}
	}
	for i := 0; i < steps; i++ {
		arm()
		sim.Step()
	}
	arm()
}
