package render

import (
	"fmt"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/gogpu/gg"
)

// Default cell colours: rust on a slate background.
var (
	DefaultOn  = gg.Hex("#863621")
	DefaultOff = gg.Hex("#204243")
)

// Palette holds the live and dead cell colours used by exports.
type Palette struct {
	On  color.Color
	Off color.Color
}

// DefaultPalette returns the rust-on-slate palette.
func DefaultPalette() Palette {
	return Palette{On: opaque(DefaultOn), Off: opaque(DefaultOff)}
}

// opaque rounds c to 8-bit channels; gg.RGBA.Color truncates, which turns
// some hex values into their predecessor.
func opaque(c gg.RGBA) color.Color {
	return color.NRGBA{
		R: uint8(math.Round(c.R * 255)),
		G: uint8(math.Round(c.G * 255)),
		B: uint8(math.Round(c.B * 255)),
		A: uint8(math.Round(c.A * 255)),
	}
}

// Pixmap rasterises a w×h binary grid at scale pixels per cell.
func Pixmap(w, h int, cells []uint8, pal Palette, scale int) (*gg.Pixmap, error) {
	if w <= 0 || h <= 0 || len(cells) != w*h {
		return nil, fmt.Errorf("render: %dx%d grid with %d cells", w, h, len(cells))
	}
	if scale < 1 {
		scale = 1
	}
	base := gg.NewPixmap(w, h)
	fillBinaryRGBA(base.Data(), cells, pal.On, pal.Off)
	if scale == 1 {
		return base, nil
	}
	pm := gg.NewPixmap(w*scale, h*scale)
	src, dst := base.Data(), pm.Data()
	stride := w * scale * 4
	for y := 0; y < h; y++ {
		line := dst[y*scale*stride : y*scale*stride+stride]
		for x := 0; x < w; x++ {
			px := src[(y*w+x)*4 : (y*w+x)*4+4]
			for k := 0; k < scale; k++ {
				copy(line[(x*scale+k)*4:], px)
			}
		}
		for k := 1; k < scale; k++ {
			copy(dst[(y*scale+k)*stride:], line)
		}
	}
	return pm, nil
}

// WritePNG encodes the grid as a PNG image.
func WritePNG(out io.Writer, w, h int, cells []uint8, pal Palette, scale int) error {
	pm, err := Pixmap(w, h, cells, pal, scale)
	if err != nil {
		return err
	}
	return png.Encode(out, pm.ToImage())
}

// SavePNG writes the grid to path as a PNG image.
func SavePNG(path string, w, h int, cells []uint8, pal Palette, scale int) error {
	pm, err := Pixmap(w, h, cells, pal, scale)
	if err != nil {
		return err
	}
	if err := pm.SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}
