//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"spacetime-ca/internal/app"
	"spacetime-ca/internal/core"
	"spacetime-ca/internal/sims/elementary"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)
	elementary.SetLogger(log)

	name, err := cfg.SimName()
	if err != nil {
		log.Error("unknown strategy", "sim", cfg.Sim, "known", core.SimNames(), "err", err)
		os.Exit(1)
	}
	sim, err := core.NewSim(name, cfg.SimConfig())
	if err != nil {
		log.Error("cannot build sim", "sim", cfg.Sim, "known", core.SimNames(), "err", err)
		os.Exit(1)
	}
	app.Seed(sim, cfg.Fill, cfg.Seed)

	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("spacetime-ca — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("game loop failed", "err", err)
		os.Exit(1)
	}
}
