// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The patiencebench command times patience sort against slices.Sort on
// generated inputs and reports the results as structured log entries.
//
// For every input shape it runs each sorter for a number of rounds, each
// round on fresh input from a seeded generator, checks that the output
// is sorted, and logs a timing summary together with the patience sort
// statistics (runs found, merges, elements moved and skipped).
//
// Example usage:
//
//	patiencebench -n 1000000 -shape mixed -rounds 20
//
//	patiencebench -n 20 -shape random -rounds 1 -trace -dev
package main

import (
	"cmp"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/patiencesort/internal/shape"
	"github.com/patiencesort/patience"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
	"golang.org/x/xerrors"
)

var (
	nFlag      = flag.Int("n", 100_000, "number of elements to sort per round")
	shapeFlag  = flag.String("shape", "all", "input shape: all, or a comma-separated list of "+shapeNames())
	roundsFlag = flag.Int("rounds", 10, "timed rounds per shape and sorter")
	seedFlag   = flag.Int64("seed", 1, "seed for the first round's input")
	growthFlag = flag.String("growth", "bidirectional", "run growth: bidirectional or tail-only")
	poolFlag   = flag.Bool("pool", false, "reuse scratch buffers between rounds")
	devFlag    = flag.Bool("dev", false, "write human-readable logs instead of JSON")
	traceFlag  = flag.Bool("trace", false, "log every merge to stderr; use with small -n")
)

func main() {
	flag.Parse()

	var logger *zap.Logger
	var err error
	if *devFlag {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := parseConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}
	if err := run(cfg, logger); err != nil {
		logger.Error("benchmark failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

type config struct {
	n, rounds int
	seed      int64
	shapes    []shape.Shape
	growth    patience.Growth
	pool      bool
	trace     bool
}

func parseConfig() (config, error) {
	cfg := config{
		n:      *nFlag,
		rounds: *roundsFlag,
		seed:   *seedFlag,
		pool:   *poolFlag,
		trace:  *traceFlag,
	}
	if cfg.n < 0 {
		return cfg, xerrors.Errorf("-n must not be negative, got %d", cfg.n)
	}
	if cfg.rounds < 1 {
		return cfg, xerrors.Errorf("-rounds must be positive, got %d", cfg.rounds)
	}
	var err error
	if cfg.shapes, err = parseShapes(*shapeFlag); err != nil {
		return cfg, err
	}
	if cfg.growth, err = parseGrowth(*growthFlag); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func shapeNames() string {
	var names []string
	for _, s := range shape.All() {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}

func parseShapes(list string) ([]shape.Shape, error) {
	if list == "all" {
		return shape.All(), nil
	}
	var shapes []shape.Shape
	for _, name := range strings.Split(list, ",") {
		s, err := shape.Parse(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, s)
	}
	return shapes, nil
}

func parseGrowth(name string) (patience.Growth, error) {
	for _, g := range []patience.Growth{patience.Bidirectional, patience.TailOnly} {
		if g.String() == name {
			return g, nil
		}
	}
	return 0, xerrors.Errorf("unknown growth %q", name)
}

// A contender is one sort under test. sort returns the patience
// statistics, or the zero Stats for sorts that have none.
type contender struct {
	name string
	sort func([]int) (patience.Stats, error)
}

func contenders(cfg config) []contender {
	sorter := &patience.Sorter[int]{
		Cmp:    cmp.Compare[int],
		Growth: cfg.growth,
	}
	if cfg.pool {
		sorter.Alloc = new(patience.PoolAllocator[int])
	}
	if cfg.trace {
		sorter.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return []contender{
		{"patience", sorter.Sort},
		{"slices", func(x []int) (patience.Stats, error) {
			slices.Sort(x)
			return patience.Stats{Len: len(x)}, nil
		}},
	}
}

func run(cfg config, logger *zap.Logger) error {
	logger.Info("starting",
		zap.Int("n", cfg.n),
		zap.Int("rounds", cfg.rounds),
		zap.Int64("seed", cfg.seed),
		zap.Stringer("growth", cfg.growth),
		zap.Bool("pool", cfg.pool))

	data := make([]int, cfg.n)
	for _, s := range cfg.shapes {
		for _, c := range contenders(cfg) {
			timings := make([]time.Duration, 0, cfg.rounds)
			var st patience.Stats
			for r := 0; r < cfg.rounds; r++ {
				shape.Fill(data, s, cfg.seed+int64(r))
				start := time.Now()
				var err error
				st, err = c.sort(data)
				elapsed := time.Since(start)
				if err != nil {
					return xerrors.Errorf("%s on %v input: %w", c.name, s, err)
				}
				if !patience.IsSorted(data) {
					return xerrors.Errorf("%s left %v input unsorted in round %d", c.name, s, r)
				}
				timings = append(timings, elapsed)
			}
			sum := summarize(timings)
			fields := []zap.Field{
				zap.String("sorter", c.name),
				zap.Stringer("shape", s),
				zap.Duration("mean", sum.Mean),
				zap.Duration("stddev", sum.StdDev),
				zap.Duration("median", sum.Median),
				zap.Duration("p90", sum.P90),
				zap.Duration("min", sum.Min),
				zap.Duration("max", sum.Max),
			}
			if c.name == "patience" {
				fields = append(fields,
					zap.Int("runs", st.Runs),
					zap.Int("merges", st.Merges),
					zap.Int("blind_merges", st.BlindMerges),
					zap.Int("moved", st.Moved),
					zap.Int("skipped", st.Skipped),
					zap.Bool("copied_back", st.CopiedBack))
			}
			logger.Info("result", fields...)
		}
	}
	return nil
}
