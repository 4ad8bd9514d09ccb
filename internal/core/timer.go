package core

import "time"

// maxCatchUp bounds how many ticks Due reports after a long stall so a slow
// frame never triggers an unbounded burst of generations.
const maxCatchUp = 64

// FixedStep paces simulation ticks at a steady period independent of the
// caller's frame rate.
type FixedStep struct {
	period      time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep that fires once per period. A
// non-positive period falls back to one tick per millisecond.
func NewFixedStep(period time.Duration) *FixedStep {
	f := &FixedStep{}
	f.SetPeriod(period)
	return f
}

// SetPeriod changes the tick period without discarding accumulated time.
func (f *FixedStep) SetPeriod(period time.Duration) {
	if period <= 0 {
		period = time.Millisecond
	}
	f.period = period
}

// Period returns the current tick period.
func (f *FixedStep) Period() time.Duration { return f.period }

// Reset forgets accumulated time; the next call to Due starts a fresh window.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// Due reports how many ticks elapsed since the previous call. The first call
// always reports one tick so a freshly started loop shows progress at once.
func (f *FixedStep) Due(now time.Time) int {
	if f.last.IsZero() {
		f.last = now
		return 1
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta < 0 {
		return 0
	}
	f.accumulator += delta
	n := int(f.accumulator / f.period)
	f.accumulator -= time.Duration(n) * f.period
	if n > maxCatchUp {
		n = maxCatchUp
		f.accumulator = 0
	}
	return n
}
