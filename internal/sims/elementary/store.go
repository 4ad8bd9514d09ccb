package elementary

import "spacetime-ca/internal/core"

// Store holds the generation grids for one automaton. Single-buffered
// strategies allocate one grid; double-buffered strategies allocate two and
// flip cur instead of exchanging pointers.
type Store struct {
	w, h int
	bufs [2]*core.ByteGrid
	n    int
	cur  int
}

func newStore(w, h, buffers int) (*Store, error) {
	if buffers < 1 || buffers > 2 {
		buffers = 1
	}
	s := &Store{w: w, h: h, n: buffers}
	for i := 0; i < buffers; i++ {
		g, err := core.NewByteGrid(w, h)
		if err != nil {
			return nil, err
		}
		s.bufs[i] = g
	}
	return s, nil
}

// Current returns the grid holding the live generation.
func (s *Store) Current() *core.ByteGrid { return s.bufs[s.cur] }

// Next returns the write-side grid of a double-buffered store.
func (s *Store) Next() *core.ByteGrid {
	if s.n < 2 {
		panic("elementary: Next called on single-buffered store")
	}
	return s.bufs[1-s.cur]
}

// Swap makes the write-side grid current.
func (s *Store) Swap() {
	if s.n == 2 {
		s.cur = 1 - s.cur
	}
}

// Commit deep-copies the write-side grid into the current grid.
func (s *Store) Commit() {
	s.Current().CopyFrom(s.Next())
}

// Clear zeroes every allocated buffer and points cur back at the first one.
func (s *Store) Clear() {
	for i := 0; i < s.n; i++ {
		s.bufs[i].Clear()
	}
	s.cur = 0
}

// Buffers reports how many full grids the store owns.
func (s *Store) Buffers() int { return s.n }
