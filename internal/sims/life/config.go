package life

import (
	"strconv"

	"gridpar/internal/engine"
)

// Config controls the Life board and how generations are computed.
type Config struct {
	Width  int
	Height int
	// Chance is the probability that a cell starts alive on Reset.
	Chance float64
	Seed   int64

	Engine engine.Config
}

// DefaultConfig returns an 800x800 window worth of 4px cells.
func DefaultConfig() Config {
	return Config{
		Width:  200,
		Height: 200,
		Chance: 0.4,
		Seed:   42,
		Engine: engine.DefaultConfig(),
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Chance = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	c.Engine = engine.FromMap(cfg)
	return c
}
