package elementary

import (
	"fmt"
	"strconv"

	"spacetime-ca/internal/core"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width    int
	Height   int
	Strategy Kind
	// Workers bounds the goroutines used per generation by the
	// double-buffered strategies. Values below 2 compute sequentially.
	Workers int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 500, Height: 500, Strategy: SwapBufferUnrolled, Workers: 1}
}

// Validate reports whether c can build an automaton.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("size %dx%d: %w", c.Width, c.Height, core.ErrInvalidConfiguration)
	}
	if !c.Strategy.Valid() {
		return fmt.Errorf("strategy %v: %w", c.Strategy, core.ErrInvalidConfiguration)
	}
	return nil
}

// FromMap populates a Config from a string map. Malformed values are
// reported, not skipped.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["w"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return c, fmt.Errorf("w=%q: %w", v, core.ErrInvalidConfiguration)
		}
		c.Width = parsed
	}
	if v, ok := cfg["h"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return c, fmt.Errorf("h=%q: %w", v, core.ErrInvalidConfiguration)
		}
		c.Height = parsed
	}
	if v, ok := cfg["strategy"]; ok {
		k, err := ParseKind(v)
		if err != nil {
			return c, err
		}
		c.Strategy = k
	}
	if v, ok := cfg["workers"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			return c, fmt.Errorf("workers=%q: %w", v, core.ErrInvalidConfiguration)
		}
		c.Workers = parsed
	}
	return c, nil
}
