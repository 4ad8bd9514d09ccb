package elementary

import (
	"golang.org/x/sync/errgroup"

	"spacetime-ca/internal/core"
)

// rowFunc writes into dst the child row of parent row src. dst and src have
// equal length and never alias.
type rowFunc func(dst, src []uint8)

// stepRow derives every child from its wrapped parents with explicit modulo
// arithmetic per cell.
func stepRow(dst, src []uint8) {
	w := len(src)
	for x := 0; x < w; x++ {
		left := src[(x-1+w)%w]
		right := src[(x+1)%w]
		dst[x] = Rule(left, src[x], right)
	}
}

// stepRowUnrolled slides a three-cell window across src, carrying the left
// parent forward. Only columns 0 and w-1 touch the wrap.
func stepRowUnrolled(dst, src []uint8) {
	w := len(src)
	if w == 1 {
		dst[0] = Rule(src[0], src[0], src[0])
		return
	}
	first, second := src[0], src[1]
	prev := first
	for x := 1; x < w-1; x++ {
		cur := src[x]
		dst[x] = Rule(prev, cur, src[x+1])
		prev = cur
	}
	last := src[w-1]
	dst[w-1] = Rule(prev, last, first)
	dst[0] = Rule(last, first, second)
}

// rollRow overwrites row with pending and leaves in pending the child row of
// the old contents of row. Each column is read before it is written and the
// wrap values are captured up front.
func rollRow(row, pending []uint8) {
	w := len(row)
	first, last := row[0], row[w-1]
	if w == 1 {
		row[0], pending[0] = pending[0], Rule(first, first, first)
		return
	}
	second := row[1]
	row[0], pending[0] = pending[0], Rule(last, first, second)
	prev := first
	for x := 1; x < w-1; x++ {
		cur := row[x]
		row[x] = pending[x]
		pending[x] = Rule(prev, cur, row[x+1])
		prev = cur
	}
	row[w-1], pending[w-1] = pending[w-1], Rule(prev, last, first)
}

// fillGeneration writes into dst the generation following src. Row y reads
// only row y-1 of src, so bands of rows are independent and run on up to
// workers goroutines.
func fillGeneration(dst, src *core.ByteGrid, workers int, fn rowFunc) {
	h := src.H
	if workers <= 1 || h < 2 {
		fillRows(dst, src, 0, h, fn)
		return
	}
	if workers > h {
		workers = h
	}
	per := (h + workers - 1) / workers
	var eg errgroup.Group
	for start := 0; start < h; start += per {
		end := min(start+per, h)
		eg.Go(func() error {
			fillRows(dst, src, start, end, fn)
			return nil
		})
	}
	// Row computation cannot fail; Wait is only a barrier.
	_ = eg.Wait()
}

func fillRows(dst, src *core.ByteGrid, start, end int, fn rowFunc) {
	h := src.H
	for y := start; y < end; y++ {
		top := (y - 1 + h) % h
		fn(dst.Row(y), src.Row(top))
	}
}
