package app

import (
	"flag"
	"strconv"

	"gridpar/internal/engine"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	// UPS is the number of simulation steps per second, independent of TPS.
	UPS     int
	Seed    int64
	Workers int
	W, H    int
	Chance  float64
	Verbose bool
}

// NewConfig returns a Config populated with sensible defaults. Zero W and H
// and a negative Chance leave the sim's own defaults in place.
func NewConfig() *Config {
	return &Config{
		Sim:     "life",
		Scale:   4,
		TPS:     60,
		UPS:     16,
		Seed:    42,
		Workers: engine.DefaultWorkers,
		Chance:  -1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.UPS, "ups", c.UPS, "simulation steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Workers, "workers", c.Workers, "worker goroutines per step (0 = sequential)")
	fs.IntVar(&c.W, "w", c.W, "grid width in cells (0 = sim default)")
	fs.IntVar(&c.H, "h", c.H, "grid height in cells (0 = sim default)")
	fs.Float64Var(&c.Chance, "chance", c.Chance, "initial live-cell probability (<0 = sim default)")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log partition plans and step timings")
}

// SimConfig renders the sim-facing options as the map consumed by
// core.Factory.
func (c *Config) SimConfig() map[string]string {
	m := map[string]string{
		"workers": strconv.Itoa(c.Workers),
		"seed":    strconv.FormatInt(c.Seed, 10),
	}
	if c.W > 0 {
		m["w"] = strconv.Itoa(c.W)
	}
	if c.H > 0 {
		m["h"] = strconv.Itoa(c.H)
	}
	if c.Chance >= 0 {
		m["chance"] = strconv.FormatFloat(c.Chance, 'f', -1, 64)
	}
	return m
}
