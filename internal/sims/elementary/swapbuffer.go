package elementary

// swapBuffer serves both SwapBuffer and SwapBufferUnrolled; they differ only
// in the row kernel.
type swapBuffer struct {
	workers int
	row     rowFunc
	kind    Kind
}

func (b *swapBuffer) Kind() Kind   { return b.kind }
func (b *swapBuffer) Buffers() int { return 2 }

func (b *swapBuffer) Compute(s *Store) {
	fillGeneration(s.Next(), s.Current(), b.workers, b.row)
	s.Swap()
}
