package app

import (
	"errors"
	"flag"
	"testing"
	"time"

	"spacetime-ca/internal/core"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-sim", "rolling", "-w", "320", "-h", "200", "-period", "5ms", "-fill", "0.25", "-workers", "3"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Sim != "rolling" || cfg.Width != 320 || cfg.Height != 200 {
		t.Fatalf("parsed config = %+v", cfg)
	}
	if cfg.Period != 5*time.Millisecond || cfg.Fill != 0.25 {
		t.Fatalf("parsed config = %+v", cfg)
	}

	m := cfg.SimConfig()
	if m["w"] != "320" || m["h"] != "200" || m["workers"] != "3" {
		t.Fatalf("SimConfig() = %v", m)
	}
}

func TestConfigSimName(t *testing.T) {
	cases := map[string]string{
		"swap-unrolled":   "swap-unrolled",
		"NaifCA":          "copy",
		"BuffSwapCA":      "swap",
		"BuffSwapNoModCA": "swap-unrolled",
		"LittleBufCA":     "rolling",
	}
	for sim, want := range cases {
		cfg := NewConfig()
		cfg.Sim = sim
		got, err := cfg.SimName()
		if err != nil {
			t.Fatalf("SimName(%q): %v", sim, err)
		}
		if got != want {
			t.Fatalf("SimName(%q) = %q, want %q", sim, got, want)
		}
		if _, err := core.NewSim(got, cfg.SimConfig()); err != nil {
			t.Fatalf("NewSim(%q): %v", got, err)
		}
	}

	cfg := NewConfig()
	cfg.Sim = "quad"
	if _, err := cfg.SimName(); !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Fatalf("SimName(quad) error = %v", err)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.Sim != "swap-unrolled" || cfg.Width != 500 || cfg.Height != 500 {
		t.Fatalf("defaults = %+v", cfg)
	}
	if cfg.Period != time.Millisecond {
		t.Fatalf("default period = %v", cfg.Period)
	}
}
