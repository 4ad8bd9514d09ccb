package elementary

type copyBuffer struct {
	workers int
}

func (c *copyBuffer) Kind() Kind   { return CopyBuffer }
func (c *copyBuffer) Buffers() int { return 2 }

func (c *copyBuffer) Compute(s *Store) {
	fillGeneration(s.Next(), s.Current(), c.workers, stepRow)
	s.Commit()
}
