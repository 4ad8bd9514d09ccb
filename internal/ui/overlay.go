//go:build ebiten

package ui

import (
	"image/color"

	"spacetime-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type pendingProvider interface {
	Pending() (x, y int, ok bool)
}

var helpLines = []string{
	"space  pause / resume",
	"n      single generation",
	"r      reset",
	"1-4    copy, swap, swap-unrolled, rolling",
	"p      save PNG snapshot",
	"h      toggle this help",
	"q      quit",
}

// Overlay marks the pending injection cell and shows key help.
type Overlay struct {
	sim      core.Sim
	scale    int
	showHelp bool
	pixel    *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, showHelp: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the help text.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHelp = !o.showHelp
	}
}

// Draw paints the overlay on top of the grid.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if p, ok := o.sim.(pendingProvider); ok {
		if x, y, pending := p.Pending(); pending {
			size := float64(o.scale + 2)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(size, size)
			op.GeoM.Translate(float64(x*o.scale-1), float64(y*o.scale-1))
			op.ColorScale.Scale(1, 0.85, 0.3, 0.8)
			screen.DrawImage(o.pixel, op)
		}
	}
	if !o.showHelp {
		return
	}
	face := basicfont.Face7x13
	for i, line := range helpLines {
		text.Draw(screen, line, face, 8, 16+i*14, color.RGBA{R: 230, G: 230, B: 240, A: 220})
	}
}
