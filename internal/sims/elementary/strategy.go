package elementary

import (
	"fmt"
	"strings"

	"spacetime-ca/internal/core"
)

// Kind identifies one of the interchangeable update strategies.
type Kind int

const (
	// CopyBuffer fills a second grid and copies it back into the first.
	CopyBuffer Kind = iota
	// SwapBuffer fills a second grid and flips which grid is current.
	SwapBuffer
	// SwapBufferUnrolled is SwapBuffer with a sliding-window row scan.
	SwapBufferUnrolled
	// RollingBuffer updates a single grid in place through one scratch row.
	RollingBuffer
)

var kindNames = [...]string{
	CopyBuffer:         "copy",
	SwapBuffer:         "swap",
	SwapBufferUnrolled: "swap-unrolled",
	RollingBuffer:      "rolling",
}

// Legacy strategy names, still accepted by ParseKind.
var legacyKindNames = map[string]Kind{
	"naifca":          CopyBuffer,
	"buffswapca":      SwapBuffer,
	"buffswapnomodca": SwapBufferUnrolled,
	"littlebufca":     RollingBuffer,
}

// Kinds lists every strategy in declaration order.
func Kinds() []Kind {
	return []Kind{CopyBuffer, SwapBuffer, SwapBufferUnrolled, RollingBuffer}
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Valid reports whether k names a known strategy.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < len(kindNames)
}

// ParseKind resolves a strategy by canonical or legacy name, ignoring case.
func ParseKind(name string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range kindNames {
		if n == key {
			return Kind(i), nil
		}
	}
	if k, ok := legacyKindNames[key]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("unknown strategy %q: %w", name, core.ErrInvalidConfiguration)
}

// Strategy computes generation N+1 from generation N inside a Store.
type Strategy interface {
	Kind() Kind
	// Buffers reports how many full grids the strategy needs.
	Buffers() int
	// Compute advances the store by one generation. On return
	// store.Current() holds the new generation.
	Compute(store *Store)
}

func newStrategy(k Kind, width, workers int) (Strategy, error) {
	switch k {
	case CopyBuffer:
		return &copyBuffer{workers: workers}, nil
	case SwapBuffer:
		return &swapBuffer{workers: workers, row: stepRow, kind: SwapBuffer}, nil
	case SwapBufferUnrolled:
		return &swapBuffer{workers: workers, row: stepRowUnrolled, kind: SwapBufferUnrolled}, nil
	case RollingBuffer:
		return newRollingBuffer(width), nil
	}
	return nil, fmt.Errorf("strategy %v: %w", k, core.ErrInvalidConfiguration)
}
