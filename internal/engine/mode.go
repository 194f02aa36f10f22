package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultWorkers is the degree of parallelism used when none is configured.
const DefaultWorkers = 4

// Mode selects between the single-threaded reference path and the
// partitioned path. The zero value is Sequential.
type Mode struct {
	workers  int
	threaded bool
}

// Sequential runs an operation as one pass on the calling goroutine.
func Sequential() Mode { return Mode{} }

// Threaded splits an operation across the given number of workers.
func Threaded(workers int) Mode { return Mode{workers: workers, threaded: true} }

// IsThreaded reports whether the mode fans out to workers.
func (m Mode) IsThreaded() bool { return m.threaded }

// Workers returns the degree of parallelism; 1 for Sequential.
func (m Mode) Workers() int {
	if !m.threaded {
		return 1
	}
	return m.workers
}

// Validate rejects threaded modes without at least one worker.
func (m Mode) Validate() error {
	if m.threaded && m.workers < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, m.workers)
	}
	return nil
}

func (m Mode) String() string {
	if !m.threaded {
		return "sequential"
	}
	return fmt.Sprintf("threaded(%d)", m.workers)
}

// ParseMode accepts "seq", "sequential", "threaded(N)", "threads=N" or a bare
// worker count.
func ParseMode(s string) (Mode, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "", "seq", "sequential":
		return Sequential(), nil
	}
	v = strings.TrimPrefix(v, "threads=")
	if strings.HasPrefix(v, "threaded(") && strings.HasSuffix(v, ")") {
		v = v[len("threaded(") : len(v)-1]
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return Mode{}, fmt.Errorf("engine: unrecognised mode %q", s)
	}
	m := Threaded(n)
	if err := m.Validate(); err != nil {
		return Mode{}, err
	}
	return m, nil
}

// Config holds the engine's tunables.
type Config struct {
	Workers int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Workers: DefaultWorkers}
}

// FromMap populates a Config from a string map. A "workers" value of 0 selects
// the sequential path; negative or malformed values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	return c
}

// Mode converts the configuration into an execution mode.
func (c Config) Mode() Mode {
	if c.Workers <= 0 {
		return Sequential()
	}
	return Threaded(c.Workers)
}
