package elementary

type rollPhase int

const (
	// phasePrime derives the child of row 0 into scratch without touching
	// the grid.
	phasePrime rollPhase = iota
	// phaseRoll commits scratch into row i while deriving the child of
	// row i's old contents.
	phaseRoll
	// phaseCommit writes the held-back new row 0, derived last from the
	// old final row.
	phaseCommit
	phaseDone
)

// rollingBuffer updates the grid in place using one width-sized scratch row.
// Row 0 is not overwritten until every other row has been processed because
// its new value depends on the old last row.
type rollingBuffer struct {
	pending []uint8
}

func newRollingBuffer(width int) *rollingBuffer {
	return &rollingBuffer{pending: make([]uint8, width)}
}

func (r *rollingBuffer) Kind() Kind   { return RollingBuffer }
func (r *rollingBuffer) Buffers() int { return 1 }

func (r *rollingBuffer) Compute(s *Store) {
	g := s.Current()
	phase, row := phasePrime, 0
	for phase != phaseDone {
		switch phase {
		case phasePrime:
			stepRowUnrolled(r.pending, g.Row(0))
			phase, row = phaseRoll, 1
		case phaseRoll:
			if row >= g.H {
				phase = phaseCommit
				continue
			}
			rollRow(g.Row(row), r.pending)
			row++
		case phaseCommit:
			copy(g.Row(0), r.pending)
			phase = phaseDone
		}
	}
}
