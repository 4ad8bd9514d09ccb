// Command spacetime runs the elementary automaton headless and exports the
// resulting space-time bitmap.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"spacetime-ca/internal/core"
	"spacetime-ca/internal/render"
	"spacetime-ca/internal/sims/elementary"
)

type options struct {
	strategy string
	width    int
	height   int
	steps    int
	workers  int
	cells    string
	fill     float64
	seed     int64
	in       string
	png      string
	scale    int
	pbm      string
	verify   bool
	verbose  bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "spacetime:", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var o options
	fs := flag.NewFlagSet("spacetime", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.strategy, "strategy", "swap-unrolled", "update strategy: copy, swap, swap-unrolled or rolling")
	fs.IntVar(&o.width, "w", 64, "grid width in cells")
	fs.IntVar(&o.height, "h", 64, "grid height in cells")
	fs.IntVar(&o.steps, "steps", 64, "generations to compute")
	fs.IntVar(&o.workers, "workers", 1, "goroutines per generation for double-buffered strategies")
	fs.StringVar(&o.cells, "cells", "", "initial live cells as space separated x,y pairs")
	fs.Float64Var(&o.fill, "fill", 0, "probability that a cell starts alive")
	fs.Int64Var(&o.seed, "seed", 42, "seed for -fill")
	fs.StringVar(&o.in, "in", "", "plain PBM file holding the initial generation")
	fs.StringVar(&o.png, "png", "", "write the final generation as PNG to this path")
	fs.IntVar(&o.scale, "scale", 1, "PNG pixels per cell")
	fs.StringVar(&o.pbm, "pbm", "", "write the final generation as plain PBM to this path (- for stdout)")
	fs.BoolVar(&o.verify, "verify", false, "run every strategy and fail if their results differ")
	fs.BoolVar(&o.verbose, "v", false, "log debug events")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	elementary.SetLogger(log)
	defer elementary.SetLogger(nil)

	kind, err := elementary.ParseKind(o.strategy)
	if err != nil {
		return err
	}
	start, err := initialBitmap(o)
	if err != nil {
		return err
	}

	final, err := simulate(kind, o.workers, start, o.steps)
	if err != nil {
		return err
	}
	log.Info("simulation finished", "strategy", kind.String(), "width", final.W, "height", final.H,
		"generations", o.steps, "alive", final.Count())

	if o.verify {
		for _, k := range elementary.Kinds() {
			if k == kind {
				continue
			}
			other, err := simulate(k, o.workers, start, o.steps)
			if err != nil {
				return err
			}
			if !other.Equal(final) {
				return fmt.Errorf("strategy %s disagrees with %s after %d generations", k, kind, o.steps)
			}
			log.Debug("strategy agrees", "strategy", k.String())
		}
		log.Info("all strategies agree", "generations", o.steps)
	}

	if o.png != "" {
		if err := render.SavePNG(o.png, final.W, final.H, final.Cells(), render.DefaultPalette(), o.scale); err != nil {
			return err
		}
		log.Info("wrote png", "path", o.png)
	}
	if o.pbm != "" {
		if err := writePBM(o.pbm, stdout, final); err != nil {
			return err
		}
	}
	return nil
}

// initialBitmap builds the starting generation from -in, -fill and -cells,
// applied in that order.
func initialBitmap(o options) (elementary.Bitmap, error) {
	w, h := o.width, o.height
	var cells []uint8
	if o.in != "" {
		f, err := os.Open(o.in)
		if err != nil {
			return elementary.Bitmap{}, err
		}
		defer f.Close()
		w, h, cells, err = render.ReadPBM(f)
		if err != nil {
			return elementary.Bitmap{}, fmt.Errorf("%s: %w", o.in, err)
		}
	}
	grid, err := core.NewByteGrid(w, h)
	if err != nil {
		return elementary.Bitmap{}, err
	}
	if cells != nil {
		copy(grid.Cells(), cells)
	}
	if o.fill > 0 {
		core.NewRNG(o.seed).FillBinary(grid.Cells(), o.fill)
	}
	points, err := parseCells(o.cells)
	if err != nil {
		return elementary.Bitmap{}, err
	}
	for _, p := range points {
		if err := grid.Set(p[0], p[1], 1); err != nil {
			return elementary.Bitmap{}, err
		}
	}
	return elementary.NewBitmap(w, h, grid.Cells())
}

func simulate(kind elementary.Kind, workers int, start elementary.Bitmap, steps int) (elementary.Bitmap, error) {
	a, err := elementary.New(elementary.Config{Width: start.W, Height: start.H, Strategy: kind, Workers: workers})
	if err != nil {
		return elementary.Bitmap{}, err
	}
	if err := a.Load(start); err != nil {
		return elementary.Bitmap{}, err
	}
	for i := 0; i < steps; i++ {
		a.Advance()
	}
	return a.Snapshot(), nil
}

// parseCells reads "x,y x,y ...". Pairs may also be separated by semicolons.
func parseCells(s string) ([][2]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ';' || r == '\t' || r == '\n' })
	points := make([][2]int, 0, len(fields))
	for _, f := range fields {
		xs, ys, ok := strings.Cut(f, ",")
		if !ok {
			return nil, fmt.Errorf("cell %q: want x,y: %w", f, core.ErrInvalidCoordinate)
		}
		x, errX := strconv.Atoi(strings.TrimSpace(xs))
		y, errY := strconv.Atoi(strings.TrimSpace(ys))
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("cell %q: %w", f, core.ErrInvalidCoordinate)
		}
		points = append(points, [2]int{x, y})
	}
	return points, nil
}

func writePBM(path string, stdout io.Writer, bm elementary.Bitmap) error {
	if path == "-" {
		return render.WritePBM(stdout, bm.W, bm.H, bm.Cells())
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.WritePBM(f, bm.W, bm.H, bm.Cells()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
