// SPDX-License-Identifier: MIT
// Command vqe-maxcut solves Max-Cut on a small random graph with VQE and
// compares the result with the exhaustive optimum.
//
// Scenario:
//
//	A seeded G(n, m) graph is drawn (n = 4, m from [2n, 3n), clamped to the
//	complete graph), turned into a weight matrix and handed to vqe.Run.
//	The exhaustive optimum is printed first, then the cut value VQE reached.
//
// Usage:
//
//	vqe-maxcut [-config run.yaml] [-log-level debug]
//
// Without flags the built-in run is used: 4 qubits, 1 layer, 1000 shots,
// graph seed 10. Logs go to stderr; the two result lines go to stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/vqecut/builder"
	"github.com/katalvlaran/vqecut/config"
	"github.com/katalvlaran/vqecut/matrix"
	"github.com/katalvlaran/vqecut/maxcut"
	"github.com/katalvlaran/vqecut/simulator"
	"github.com/katalvlaran/vqecut/vqe"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "vqe-maxcut:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("vqe-maxcut", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "YAML run file")
	level := fs.String("log-level", "", "log level; overrides log_level in the run file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	file, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *level != "" {
		file.LogLevel = *level
		if err = file.Validate(); err != nil {
			return err
		}
	}

	lvl, err := file.Level()
	if err != nil {
		return err
	}
	logger, err := newLogger(lvl)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger.Debug("resolved config", zap.String("file", spew.Sdump(file)))

	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(file.GraphSeed)},
		builder.RandomGnm(file.Qubits, file.Edges))
	if err != nil {
		return fmt.Errorf("build graph: %w", err)
	}
	w, err := matrix.NewWeightMatrix(g)
	if err != nil {
		return fmt.Errorf("weight matrix: %w", err)
	}
	logger.Info("graph ready",
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Int64("seed", file.GraphSeed))
	logger.Debug("weights", zap.Stringer("w", w.Dense))

	baseline, err := maxcut.LocalSearch(w, nil)
	if err != nil {
		return fmt.Errorf("local search: %w", err)
	}
	logger.Info("classical baseline",
		zap.Float64("local_search_cut", baseline.Best),
		zap.Ints("assignment", baseline.Assignment))

	rep, err := vqe.Run(ctx, w, runOptions(file, logger)...)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "The optimal cost value is %s\n\n", formatFloat(rep.BestCost))
	fmt.Fprintf(stdout, "The optimal expectation value found by VQE is %s\n", formatFloat(rep.Expectation))

	return nil
}

// runOptions maps the run file onto vqe options.
func runOptions(file *config.File, logger *zap.Logger) []vqe.Option {
	var simOpts []simulator.Option
	if file.SimulatorSeed != nil {
		simOpts = append(simOpts, simulator.WithSeed(*file.SimulatorSeed))
	}
	opts := []vqe.Option{
		vqe.WithConfig(file.VQE()),
		vqe.WithLogger(logger),
		vqe.WithSimulator(simulator.NewSampler(simOpts...)),
		vqe.WithMinimizer(&vqe.NelderMead{
			MaxIterations:  file.MaxIterations,
			MaxEvaluations: file.MaxEvaluations,
			Logger:         logger,
		}),
	}
	if file.AngleSeed != nil {
		opts = append(opts, vqe.WithSeed(*file.AngleSeed))
	}

	return opts
}

// newLogger builds a console logger on stderr at lvl.
func newLogger(lvl zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if lvl == zapcore.DebugLevel {
		cfg.Development = true
	}

	return cfg.Build()
}

// formatFloat prints the shortest representation, keeping ".0" on integral values.
func formatFloat(x float64) string {
	s := strconv.FormatFloat(x, 'g', -1, 64)
	if strings.ContainsAny(s, ".eIN") {
		return s
	}

	return s + ".0"
}
