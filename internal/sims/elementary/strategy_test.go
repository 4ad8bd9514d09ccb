package elementary

import (
	"errors"
	"testing"

	"spacetime-ca/internal/core"
)

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"copy":            CopyBuffer,
		"swap":            SwapBuffer,
		"Swap-Unrolled":   SwapBufferUnrolled,
		" rolling ":       RollingBuffer,
		"NaifCA":          CopyBuffer,
		"BuffSwapCA":      SwapBuffer,
		"BuffSwapNoModCA": SwapBufferUnrolled,
		"LittleBufCA":     RollingBuffer,
	}
	for name, want := range cases {
		got, err := ParseKind(name)
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", name, err)
		}
		if got != want {
			t.Fatalf("ParseKind(%q) = %v, want %v", name, got, want)
		}
	}

	if _, err := ParseKind("triple-buffer"); !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Fatalf("unknown strategy error = %v, want ErrInvalidConfiguration", err)
	}
}

func TestKindStringRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Fatalf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if Kind(9).Valid() {
		t.Fatal("Kind(9) must be invalid")
	}
	if s := Kind(-1).String(); s != "Kind(-1)" {
		t.Fatalf("Kind(-1).String() = %q", s)
	}
}

func TestStrategyBufferCounts(t *testing.T) {
	want := map[Kind]int{CopyBuffer: 2, SwapBuffer: 2, SwapBufferUnrolled: 2, RollingBuffer: 1}
	for k, n := range want {
		a, err := New(Config{Width: 4, Height: 4, Strategy: k})
		if err != nil {
			t.Fatal(err)
		}
		if got := a.store.Buffers(); got != n {
			t.Fatalf("%v allocates %d grids, want %d", k, got, n)
		}
	}
}
