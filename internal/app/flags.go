package app

import (
	"flag"
	"strconv"
	"time"

	"spacetime-ca/internal/sims/elementary"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim     string
	Width   int
	Height  int
	Workers int
	Scale   int
	TPS     int
	Period  time.Duration
	Fill    float64
	Seed    int64
	Verbose bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:     "swap-unrolled",
		Width:   500,
		Height:  500,
		Workers: 1,
		Scale:   2,
		TPS:     60,
		Period:  time.Millisecond,
		Seed:    42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "update strategy: copy, swap, swap-unrolled or rolling")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per generation for double-buffered strategies")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.DurationVar(&c.Period, "period", c.Period, "time between generations")
	fs.Float64Var(&c.Fill, "fill", c.Fill, "probability that a cell starts alive")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fill")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log debug events")
}

// SimConfig returns the key/value map handed to the sim factory.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"workers": strconv.Itoa(c.Workers),
	}
}

// SimName resolves Sim, which may be a canonical or legacy strategy name, to
// its registry key.
func (c *Config) SimName() (string, error) {
	k, err := elementary.ParseKind(c.Sim)
	if err != nil {
		return "", err
	}
	return k.String(), nil
}
