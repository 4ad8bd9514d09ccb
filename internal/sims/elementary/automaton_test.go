package elementary

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"spacetime-ca/internal/core"
)

// nextReference computes one generation cell by cell straight from the
// neighbour formula.
func nextReference(cur []uint8, w, h int) []uint8 {
	out := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		top := (y - 1 + h) % h
		for x := 0; x < w; x++ {
			p := cur[top*w+(x-1+w)%w]
			q := cur[top*w+x]
			r := cur[top*w+(x+1)%w]
			out[y*w+x] = Rule(p, q, r)
		}
	}
	return out
}

func newAutomaton(t testing.TB, w, h int, k Kind) *Automaton {
	t.Helper()
	a, err := New(Config{Width: w, Height: h, Strategy: k, Workers: 1})
	if err != nil {
		t.Fatalf("New(%d,%d,%v): %v", w, h, k, err)
	}
	return a
}

func randomCells(w, h int, seed int64) []uint8 {
	cells := make([]uint8, w*h)
	core.NewRNG(seed).FillBinary(cells, 0.4)
	return cells
}

func load(t testing.TB, a *Automaton, cells []uint8) {
	t.Helper()
	bm, err := NewBitmap(a.w, a.h, cells)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Load(bm); err != nil {
		t.Fatal(err)
	}
}

var equivalenceSizes = [][2]int{
	{1, 1}, {1, 4}, {4, 1}, {2, 2}, {2, 3}, {3, 2}, {5, 3}, {17, 9}, {64, 33},
}

func TestStrategiesMatchReference(t *testing.T) {
	for _, size := range equivalenceSizes {
		w, h := size[0], size[1]
		for _, k := range Kinds() {
			t.Run(fmt.Sprintf("%s/%dx%d", k, w, h), func(t *testing.T) {
				cells := randomCells(w, h, int64(w*31+h))
				a := newAutomaton(t, w, h, k)
				load(t, a, cells)
				want := cells
				for gen := 1; gen <= 6; gen++ {
					want = nextReference(want, w, h)
					a.Advance()
					if !slices.Equal(a.Cells(), want) {
						t.Fatalf("generation %d differs from reference:\n got %v\nwant %v", gen, a.Cells(), want)
					}
				}
			})
		}
	}
}

func TestStrategiesAgree(t *testing.T) {
	const w, h = 37, 23
	for seed := int64(1); seed <= 5; seed++ {
		cells := randomCells(w, h, seed)
		var results []Bitmap
		for _, k := range Kinds() {
			a := newAutomaton(t, w, h, k)
			load(t, a, cells)
			a.Advance()
			results = append(results, a.Snapshot())
		}
		for i := 1; i < len(results); i++ {
			if !results[i].Equal(results[0]) {
				t.Fatalf("seed %d: %v disagrees with %v", seed, Kinds()[i], Kinds()[0])
			}
		}
	}
}

func TestParallelWorkersMatchSequential(t *testing.T) {
	const w, h = 41, 29
	cells := randomCells(w, h, 7)
	for _, k := range []Kind{CopyBuffer, SwapBuffer, SwapBufferUnrolled} {
		for _, workers := range []int{2, 3, 8, 64} {
			seq := newAutomaton(t, w, h, k)
			par, err := New(Config{Width: w, Height: h, Strategy: k, Workers: workers})
			if err != nil {
				t.Fatal(err)
			}
			load(t, seq, cells)
			load(t, par, cells)
			for i := 0; i < 5; i++ {
				seq.Advance()
				par.Advance()
			}
			if !par.Bitmap().Equal(seq.Bitmap()) {
				t.Fatalf("%v with %d workers diverged from sequential run", k, workers)
			}
		}
	}
}

func TestToroidalWrap(t *testing.T) {
	const w, h = 5, 3
	for _, k := range Kinds() {
		a := newAutomaton(t, w, h, k)
		if err := a.AddCell(0, 0); err != nil {
			t.Fatal(err)
		}
		a.Advance()
		bm := a.Bitmap()

		// Row 1 reads row 0; columns 4 and 1 are the wrapped left and
		// plain right neighbours of column 0.
		left := (0 - 1 + w) % w
		right := (0 + 1) % w
		if left != 4 || right != 1 {
			t.Fatalf("neighbour indices of column 0 = %d,%d", left, right)
		}
		for x := 0; x < w; x++ {
			want := uint8(0)
			if x == left || x == right {
				want = 1
			}
			if got := bm.At(x, 1); got != want {
				t.Fatalf("%v: cell (%d,1) = %d, want %d", k, x, got, want)
			}
		}
		for _, y := range []int{0, 2} {
			for x := 0; x < w; x++ {
				if bm.At(x, y) != 0 {
					t.Fatalf("%v: cell (%d,%d) must stay clear", k, x, y)
				}
			}
		}
	}
}

func TestLastRowFeedsFirstRow(t *testing.T) {
	const w, h = 6, 4
	for _, k := range Kinds() {
		a := newAutomaton(t, w, h, k)
		if err := a.SetCell(2, h-1); err != nil {
			t.Fatal(err)
		}
		a.Advance()
		want := []uint8{0, 1, 0, 1, 0, 0}
		if got := a.Bitmap().Row(0); !slices.Equal(got, want) {
			t.Fatalf("%v: row 0 = %v, want %v", k, got, want)
		}
	}
}

func TestDegenerateDimensions(t *testing.T) {
	for _, k := range Kinds() {
		// A single cell is its own left, centre, right and top parent.
		a := newAutomaton(t, 1, 1, k)
		a.SetCell(0, 0)
		a.Advance()
		if got := a.Bitmap().At(0, 0); got != Rule(1, 1, 1) {
			t.Fatalf("%v 1x1: got %d", k, got)
		}

		// Height 1: the row is its own parent.
		b := newAutomaton(t, 5, 1, k)
		b.SetCell(0, 0)
		b.Advance()
		if got, want := b.Bitmap().Row(0), []uint8{0, 1, 0, 0, 1}; !slices.Equal(got, want) {
			t.Fatalf("%v 5x1: row = %v, want %v", k, got, want)
		}

		// Width 1: each row inherits Rule(c,c,c) from the row above.
		c := newAutomaton(t, 1, 3, k)
		c.SetCell(0, 1)
		c.Advance()
		if got, want := c.Cells(), []uint8{0, 0, Rule(1, 1, 1)}; !slices.Equal(got, want) {
			t.Fatalf("%v 1x3: cells = %v, want %v", k, got, want)
		}
	}
}

func TestResetClearsHistory(t *testing.T) {
	const w, h = 12, 7
	for _, k := range Kinds() {
		a := newAutomaton(t, w, h, k)
		load(t, a, randomCells(w, h, 3))
		for i := 0; i < 9; i++ {
			a.Advance()
		}
		a.AddCell(1, 1)
		a.Reset()

		bm := a.Bitmap()
		if bm.W != w || bm.H != h {
			t.Fatalf("%v: reset changed size to %dx%d", k, bm.W, bm.H)
		}
		if n := bm.Count(); n != 0 {
			t.Fatalf("%v: %d live cells after reset", k, n)
		}
		if _, _, ok := a.Pending(); ok {
			t.Fatalf("%v: pending point survived reset", k)
		}
		if a.Generation() != 0 {
			t.Fatalf("%v: generation = %d after reset", k, a.Generation())
		}

		a.Reset()
		if a.Bitmap().Count() != 0 {
			t.Fatalf("%v: second reset left live cells", k)
		}
		a.Advance()
		if a.Bitmap().Count() != 0 {
			t.Fatalf("%v: empty grid must stay empty", k)
		}
	}
}

func TestDeterministicReplay(t *testing.T) {
	script := func(k Kind) Bitmap {
		a := newAutomaton(t, 30, 20, k)
		a.SetCell(15, 0)
		for i := 0; i < 40; i++ {
			if i%7 == 0 {
				a.AddCell(i%30, i%20)
			}
			a.Advance()
		}
		return a.Snapshot()
	}
	for _, k := range Kinds() {
		first := script(k)
		if !script(k).Equal(first) {
			t.Fatalf("%v: identical scripts produced different bitmaps", k)
		}
		if first.Count() == 0 {
			t.Fatalf("%v: script should leave live cells", k)
		}
	}
}

func TestLatestPendingCellWins(t *testing.T) {
	const w, h = 8, 4
	for _, k := range Kinds() {
		a := newAutomaton(t, w, h, k)
		if err := a.AddCell(1, 0); err != nil {
			t.Fatal(err)
		}
		if err := a.AddCell(5, 2); err != nil {
			t.Fatal(err)
		}
		if x, y, ok := a.Pending(); !ok || x != 5 || y != 2 {
			t.Fatalf("%v: pending = (%d,%d,%v), want (5,2,true)", k, x, y, ok)
		}
		a.Advance()
		if _, _, ok := a.Pending(); ok {
			t.Fatalf("%v: pending point not cleared by Advance", k)
		}

		only := make([]uint8, w*h)
		only[2*w+5] = 1
		if want := nextReference(only, w, h); !slices.Equal(a.Cells(), want) {
			t.Fatalf("%v: got %v, want only (5,2) injected %v", k, a.Cells(), want)
		}

		// The injection does not repeat on the following tick.
		want := nextReference(a.Snapshot().Cells(), w, h)
		a.Advance()
		if !slices.Equal(a.Cells(), want) {
			t.Fatalf("%v: injection leaked into a second generation", k)
		}
	}
}

func TestClearPending(t *testing.T) {
	a := newAutomaton(t, 4, 4, SwapBuffer)
	a.AddCell(2, 2)
	a.ClearPending()
	a.Advance()
	if a.Bitmap().Count() != 0 {
		t.Fatal("cleared pending point was still injected")
	}
}

func TestOutOfRangeCellsRejected(t *testing.T) {
	const w, h = 6, 3
	for _, k := range Kinds() {
		a := newAutomaton(t, w, h, k)
		a.SetCell(2, 1)
		before := a.Snapshot()
		for _, c := range [][2]int{{w, 0}, {-1, 0}, {0, h}, {0, -1}} {
			if err := a.AddCell(c[0], c[1]); !errors.Is(err, core.ErrInvalidCoordinate) {
				t.Fatalf("%v: AddCell(%d,%d) error = %v, want ErrInvalidCoordinate", k, c[0], c[1], err)
			}
			if err := a.SetCell(c[0], c[1]); !errors.Is(err, core.ErrInvalidCoordinate) {
				t.Fatalf("%v: SetCell(%d,%d) error = %v, want ErrInvalidCoordinate", k, c[0], c[1], err)
			}
		}
		if _, _, ok := a.Pending(); ok {
			t.Fatalf("%v: rejected AddCell left a pending point", k)
		}
		if !a.Bitmap().Equal(before) {
			t.Fatalf("%v: rejected writes changed the grid", k)
		}
	}
}

func TestNewRejectsInvalidConfiguration(t *testing.T) {
	cases := []Config{
		{Width: 0, Height: 5},
		{Width: 5, Height: 0},
		{Width: -3, Height: 2},
		{Width: 4, Height: 4, Strategy: Kind(7)},
	}
	for _, cfg := range cases {
		if _, err := New(cfg); !errors.Is(err, core.ErrInvalidConfiguration) {
			t.Fatalf("New(%+v) error = %v, want ErrInvalidConfiguration", cfg, err)
		}
	}
}

func TestSetStrategyResets(t *testing.T) {
	a := newAutomaton(t, 9, 9, CopyBuffer)
	load(t, a, randomCells(9, 9, 11))
	a.Advance()
	a.AddCell(3, 3)

	if err := a.SetStrategy(RollingBuffer); err != nil {
		t.Fatal(err)
	}
	if a.Kind() != RollingBuffer || a.Name() != "rolling" {
		t.Fatalf("active strategy = %v", a.Kind())
	}
	if s := a.Size(); s.W != 9 || s.H != 9 {
		t.Fatalf("size changed to %+v", s)
	}
	if a.Bitmap().Count() != 0 || a.Generation() != 0 {
		t.Fatal("strategy switch must start from a cleared grid")
	}
	if _, _, ok := a.Pending(); ok {
		t.Fatal("strategy switch must drop the pending point")
	}
	if err := a.SetStrategy(Kind(42)); !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Fatalf("SetStrategy(42) error = %v", err)
	}
	if a.Kind() != RollingBuffer {
		t.Fatal("failed switch must keep the active strategy")
	}
}

func TestSnapshotOutlivesAdvance(t *testing.T) {
	a := newAutomaton(t, 8, 8, SwapBuffer)
	a.SetCell(4, 0)
	snap := a.Snapshot()
	for i := 0; i < 3; i++ {
		a.Advance()
	}
	if snap.Count() != 1 || snap.At(4, 0) != 1 {
		t.Fatal("snapshot was modified by later generations")
	}
	if a.Generation() != 3 {
		t.Fatalf("generation = %d, want 3", a.Generation())
	}
}

func TestLoadRejectsMismatchedSize(t *testing.T) {
	a := newAutomaton(t, 4, 4, SwapBuffer)
	bm, err := NewBitmap(2, 8, make([]uint8, 16))
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Load(bm); !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Fatalf("Load error = %v", err)
	}
	if _, err := NewBitmap(3, 3, make([]uint8, 8)); !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Fatalf("NewBitmap error = %v", err)
	}
}
