package elementary

import (
	"fmt"
	"slices"

	"spacetime-ca/internal/core"
)

// Automaton is a cyclic one-dimensional automaton stepped down the rows of a
// toroidal grid: row y of generation N+1 is the child of row y-1 of
// generation N. It is not safe for concurrent use.
type Automaton struct {
	w, h     int
	workers  int
	strategy Strategy
	store    *Store

	pending    point
	hasPending bool
	generation int
}

type point struct{ x, y int }

// New creates an automaton with every cell cleared.
func New(cfg Config) (*Automaton, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &Automaton{w: cfg.Width, h: cfg.Height, workers: cfg.Workers}
	if err := a.install(cfg.Strategy); err != nil {
		return nil, err
	}
	logger().Debug("automaton created", "width", a.w, "height", a.h, "strategy", cfg.Strategy.String())
	return a, nil
}

func (a *Automaton) install(k Kind) error {
	s, err := newStrategy(k, a.w, a.workers)
	if err != nil {
		return err
	}
	store, err := newStore(a.w, a.h, s.Buffers())
	if err != nil {
		return err
	}
	a.strategy, a.store = s, store
	a.hasPending = false
	a.generation = 0
	return nil
}

// Name returns the simulation identifier.
func (a *Automaton) Name() string { return a.strategy.Kind().String() }

// Size returns the grid dimensions.
func (a *Automaton) Size() core.Size { return core.Size{W: a.w, H: a.h} }

// Kind reports the active strategy.
func (a *Automaton) Kind() Kind { return a.strategy.Kind() }

// Generation counts Advance calls since construction or the last reset.
func (a *Automaton) Generation() int { return a.generation }

// Workers reports the per-generation goroutine bound.
func (a *Automaton) Workers() int { return a.workers }

func (a *Automaton) checkCell(x, y int) error {
	if x < 0 || x >= a.w || y < 0 || y >= a.h {
		return fmt.Errorf("cell (%d,%d) outside %dx%d grid: %w", x, y, a.w, a.h, core.ErrInvalidCoordinate)
	}
	return nil
}

// AddCell schedules (x, y) to be forced to 1 immediately before the next
// generation is computed. Only one point is pending at a time; a later call
// replaces an earlier one.
func (a *Automaton) AddCell(x, y int) error {
	if err := a.checkCell(x, y); err != nil {
		return err
	}
	a.pending = point{x, y}
	a.hasPending = true
	return nil
}

// ClearPending drops the pending injection point, if any.
func (a *Automaton) ClearPending() { a.hasPending = false }

// Pending returns the pending injection point.
func (a *Automaton) Pending() (x, y int, ok bool) {
	return a.pending.x, a.pending.y, a.hasPending
}

// SetCell sets (x, y) of the current generation to 1 right away.
func (a *Automaton) SetCell(x, y int) error {
	if err := a.checkCell(x, y); err != nil {
		return err
	}
	return a.store.Current().Set(x, y, 1)
}

// Advance applies the pending injection, clears it and computes the next
// generation.
func (a *Automaton) Advance() {
	if a.hasPending {
		g := a.store.Current()
		g.Cells()[g.Index(a.pending.x, a.pending.y)] = 1
		a.hasPending = false
	}
	a.strategy.Compute(a.store)
	a.generation++
}

// Step advances the simulation by one generation.
func (a *Automaton) Step() { a.Advance() }

// Reset clears every cell and the pending injection point.
func (a *Automaton) Reset() {
	a.store.Clear()
	a.hasPending = false
	a.generation = 0
	logger().Debug("automaton reset", "strategy", a.Kind().String())
}

// SetStrategy switches to strategy k. Dimensions are kept; generation state
// is discarded because strategies do not share buffer layouts.
func (a *Automaton) SetStrategy(k Kind) error {
	if !k.Valid() {
		return fmt.Errorf("strategy %v: %w", k, core.ErrInvalidConfiguration)
	}
	prev := a.Kind()
	if err := a.install(k); err != nil {
		return err
	}
	logger().Debug("strategy switched", "from", prev.String(), "to", k.String())
	return nil
}

// SetWorkers changes the goroutine bound used from the next generation on.
// The current generation is kept.
func (a *Automaton) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	a.workers = n
	switch s := a.strategy.(type) {
	case *copyBuffer:
		s.workers = n
	case *swapBuffer:
		s.workers = n
	}
}

// Cells exposes the render buffer. It is valid until the next Advance.
func (a *Automaton) Cells() []uint8 { return a.store.Current().Cells() }

// Bitmap returns a read-only view of the current generation, valid until the
// next Advance.
func (a *Automaton) Bitmap() Bitmap {
	return Bitmap{W: a.w, H: a.h, cells: a.store.Current().Cells()}
}

// Snapshot returns a copy of the current generation that outlives later
// calls to Advance.
func (a *Automaton) Snapshot() Bitmap {
	return Bitmap{W: a.w, H: a.h, cells: append([]uint8(nil), a.Cells()...)}
}

// Bitmap is a row-major binary image of one generation.
type Bitmap struct {
	W, H  int
	cells []uint8
}

// NewBitmap wraps cells, which must hold w*h values.
func NewBitmap(w, h int, cells []uint8) (Bitmap, error) {
	if w <= 0 || h <= 0 || len(cells) != w*h {
		return Bitmap{}, fmt.Errorf("bitmap %dx%d with %d cells: %w", w, h, len(cells), core.ErrInvalidConfiguration)
	}
	return Bitmap{W: w, H: h, cells: cells}, nil
}

// At returns the cell at (x, y).
func (b Bitmap) At(x, y int) uint8 { return b.cells[y*b.W+x] }

// Row returns row y. Callers must not modify it.
func (b Bitmap) Row(y int) []uint8 { return b.cells[y*b.W : (y+1)*b.W] }

// Cells returns the row-major cell values. Callers must not modify them.
func (b Bitmap) Cells() []uint8 { return b.cells }

// Count returns the number of live cells.
func (b Bitmap) Count() int {
	n := 0
	for _, c := range b.cells {
		n += int(c)
	}
	return n
}

// Equal reports whether b and o have the same size and cells.
func (b Bitmap) Equal(o Bitmap) bool {
	return b.W == o.W && b.H == o.H && slices.Equal(b.cells, o.cells)
}

// Load replaces the current generation with bm, which must match the
// automaton's size. Non-zero cells are stored as 1.
func (a *Automaton) Load(bm Bitmap) error {
	if bm.W != a.w || bm.H != a.h {
		return fmt.Errorf("load %dx%d into %dx%d: %w", bm.W, bm.H, a.w, a.h, core.ErrInvalidConfiguration)
	}
	dst := a.store.Current().Cells()
	for i, c := range bm.cells {
		if c != 0 {
			c = 1
		}
		dst[i] = c
	}
	return nil
}
