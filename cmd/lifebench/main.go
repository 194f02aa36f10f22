// Command lifebench advances one random Life board sequentially and then once
// per worker count, printing per-generation timings and failing if any run
// ends on a different board.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"gridpar/internal/core"
	"gridpar/internal/engine"
	"gridpar/internal/sims/life"
)

type sweep struct {
	width, height int
	steps         int
	chance        float64
	seed          int64
	workers       []int
}

type result struct {
	mode  engine.Mode
	board *core.Grid[bool]
	avg   time.Duration
}

func main() {
	s := sweep{}
	flag.IntVar(&s.width, "w", 400, "board width")
	flag.IntVar(&s.height, "h", 400, "board height")
	flag.IntVar(&s.steps, "steps", 60, "generations per run")
	flag.Float64Var(&s.chance, "chance", 0.4, "initial live-cell probability")
	flag.Int64Var(&s.seed, "seed", 42, "random seed")
	list := flag.String("workers", defaultWorkers(), "comma separated worker counts")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	engine.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	var err error
	if s.workers, err = parseWorkers(*list); err != nil {
		log.Fatal(err)
	}
	if err := s.run(os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func defaultWorkers() string {
	parts := []string{"1", "2", "4"}
	if n := runtime.NumCPU(); n > 4 {
		parts = append(parts, strconv.Itoa(n))
	}
	return strings.Join(parts, ",")
}

func parseWorkers(list string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid worker count %q", field)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no worker counts in %q", list)
	}
	return out, nil
}

func (s sweep) run(out io.Writer) error {
	start := core.NewRNG(s.seed).RandomBoard(s.width, s.height, s.chance)
	ref, err := s.advance(start, engine.Sequential())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%-14s avg %8.3fms\n", ref.mode, millis(ref.avg))
	for _, w := range s.workers {
		res, err := s.advance(start, engine.Threaded(w))
		if err != nil {
			return err
		}
		speedup := 0.0
		if res.avg > 0 {
			speedup = float64(ref.avg) / float64(res.avg)
		}
		fmt.Fprintf(out, "%-14s avg %8.3fms  x%.2f\n", res.mode, millis(res.avg), speedup)
		if !core.Equal(ref.board, res.board) {
			return fmt.Errorf("%s diverged from sequential after %d generations", res.mode, s.steps)
		}
	}
	return nil
}

func (s sweep) advance(board *core.Grid[bool], mode engine.Mode) (result, error) {
	stats := core.NewStepStats(core.DefaultStatsWindow)
	for gen := 0; gen < s.steps; gen++ {
		err := stats.Time(func() error {
			next, err := life.Advance(board, s.width, s.height, mode)
			board = next
			return err
		})
		if err != nil {
			return result{}, fmt.Errorf("%s generation %d: %w", mode, gen+1, err)
		}
	}
	return result{mode: mode, board: board, avg: stats.Average()}, nil
}

func millis(d time.Duration) float64 { return float64(d.Microseconds()) / 1000 }
