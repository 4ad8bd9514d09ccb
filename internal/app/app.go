//go:build ebiten

package app

import (
	"fmt"
	"log/slog"
	"time"

	"spacetime-ca/internal/core"
	"spacetime-ca/internal/render"
	"spacetime-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width in pixels of the parameter panel right of the grid.
const HUDWidth = 240

var strategyKeys = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	cfg     *Config
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	palette render.Palette
	ticker  *core.FixedStep

	paused    bool
	tickOnce  bool
	snapshots int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		cfg:     cfg,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(sim, HUDWidth),
		overlay: ui.NewOverlay(sim, cfg.Scale),
		palette: render.DefaultPalette(),
		ticker:  core.NewFixedStep(cfg.Period),
	}
}

// Reset clears the simulation and reapplies the random fill.
func (g *Game) Reset() {
	g.sim.Reset()
	Seed(g.sim, g.cfg.Fill, g.cfg.Seed)
	g.ticker.Reset()
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.ticker.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.saveSnapshot()
	}
	if setter, ok := g.sim.(core.IntParameterSetter); ok {
		for i, key := range strategyKeys {
			if !inpututil.IsKeyJustPressed(key) {
				continue
			}
			if cur, ok := setter.IntParameter("strategy"); ok && cur == i {
				continue
			}
			if setter.SetIntParameter("strategy", i) {
				Seed(g.sim, g.cfg.Fill, g.cfg.Seed)
			}
		}
	}
	size := g.sim.Size()
	g.hud.Update(size.W * g.cfg.Scale)
	g.overlay.Update()

	steps := 0
	switch {
	case g.tickOnce:
		steps = 1
		g.tickOnce = false
	case !g.paused:
		steps = g.ticker.Due(time.Now())
	}
	StepWithPointer(g.sim, steps, g.cursorCell)
	return nil
}

// cursorCell maps the cursor position to a grid cell.
func (g *Game) cursorCell() (x, y int, ok bool) {
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 {
		return 0, 0, false
	}
	return mx / g.cfg.Scale, my / g.cfg.Scale, true
}

func (g *Game) saveSnapshot() {
	size := g.sim.Size()
	path := fmt.Sprintf("%s-%03d.png", g.sim.Name(), g.snapshots)
	if err := render.SavePNG(path, size.W, size.H, g.sim.Cells(), g.palette, g.cfg.Scale); err != nil {
		slog.Error("snapshot failed", "path", path, "err", err)
		return
	}
	g.snapshots++
	slog.Info("snapshot saved", "path", path)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.cfg.Scale)
	g.overlay.Draw(screen)
	size := g.sim.Size()
	g.hud.Draw(screen, size.W*g.cfg.Scale, size.H*g.cfg.Scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.cfg.Scale + HUDWidth, s.H * g.cfg.Scale
}
