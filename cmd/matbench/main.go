// Command matbench times every matrix operation sequentially and threaded on
// random matrices and fails when the two results differ.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"gridpar/internal/core"
	"gridpar/internal/engine"
	"gridpar/internal/matrix"
)

type options struct {
	size    int
	limit   int
	workers int
	seed    int64
	ops     string
}

var errMismatch = errors.New("threaded result differs from sequential")

func main() {
	opts := options{}
	flag.IntVar(&opts.size, "size", 100, "rows and columns of each matrix")
	flag.IntVar(&opts.limit, "max", 10, "cell values are drawn from [0, max)")
	flag.IntVar(&opts.workers, "workers", 10, "worker goroutines for the threaded run")
	flag.Int64Var(&opts.seed, "seed", 1, "random seed")
	flag.StringVar(&opts.ops, "op", "", "run a single operation (sum, sub, product)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	engine.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(opts, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(opts options, out io.Writer) error {
	ops := matrix.Ops()
	if opts.ops != "" {
		op, err := matrix.ParseOp(opts.ops)
		if err != nil {
			return err
		}
		ops = []matrix.Op{op}
	}
	rng := core.NewRNG(opts.seed)
	a := rng.RandomMatrix(opts.size, opts.size, opts.limit)
	b := rng.RandomMatrix(opts.size, opts.size, opts.limit)
	threaded := engine.Threaded(opts.workers)

	for _, op := range ops {
		seq, seqTime, err := timed(op, a, b, engine.Sequential())
		if err != nil {
			return err
		}
		par, parTime, err := timed(op, a, b, threaded)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-8s sequential %8.3fms  %s %8.3fms\n", op, millis(seqTime), threaded, millis(parTime))
		if !core.Equal(seq, par) {
			return fmt.Errorf("%s: %w", op, errMismatch)
		}
	}
	return nil
}

func timed(op matrix.Op, a, b *core.Grid[int], mode engine.Mode) (*core.Grid[int], time.Duration, error) {
	start := time.Now()
	g, err := matrix.Compute(op, a, b, mode)
	return g, time.Since(start), err
}

func millis(d time.Duration) float64 { return float64(d.Microseconds()) / 1000 }
