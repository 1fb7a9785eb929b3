// SPDX-License-Identifier: MIT
package vqe

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/vqecut/matrix"
	"github.com/katalvlaran/vqecut/maxcut"
	"github.com/katalvlaran/vqecut/simulator"
)

// Report is the outcome of Run.
type Report struct {
	// BestCost is the exhaustive Max-Cut optimum.
	BestCost float64
	// Expectation is −F: the cut value VQE reached, in the sign of BestCost.
	Expectation float64
	// OptimalAngles is the best angle vector found.
	OptimalAngles []float64
	// InitialAngles is the starting point of the search.
	InitialAngles []float64
	// ProbabilityOfOptimal is measured on a fresh evaluation at OptimalAngles.
	ProbabilityOfOptimal float64
	// Evaluations, Iterations and Status come from the minimizer.
	Evaluations int
	Iterations  int
	Status      string
}

// Run solves Max-Cut on w with VQE.
//
// Steps:
//  1. Resolve options; validate the config and w against it.
//  2. Compute the exhaustive optimum.
//  3. Draw initial angles uniformly in [0, 2π), unless WithInitialAngles is given.
//  4. Minimize the objective.
//  5. Re-evaluate at the optimum to measure ProbabilityOfOptimal.
//
// Errors: ErrConfig, ErrSizeMismatch, ErrAngleCount, matrix validation errors,
// maxcut errors, and simulator or minimizer errors, which end the run at once.
func Run(ctx context.Context, w matrix.Matrix, opts ...Option) (*Report, error) {
	rc := newRunConfig(opts...)
	cfg := rc.cfg
	log := rc.logger

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	if err := checkWeights(cfg, w); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	sim := rc.sim
	if sim == nil {
		var simOpts []simulator.Option
		if cfg.Qubits > simulator.DefaultMaxQubits {
			simOpts = append(simOpts, simulator.WithMaxQubits(min(cfg.Qubits, simulator.HardMaxQubits)))
		}
		sim = simulator.NewSampler(simOpts...)
	}
	minimizer := rc.minimizer
	if minimizer == nil {
		minimizer = &NelderMead{Logger: log}
	}

	best, err := maxcut.BestCostBrute(w)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	x0 := rc.x0
	if x0 == nil {
		x0 = RandomAngles(newRand(rc.seed, rc.seeded), cfg.ParamCount())
	} else if len(x0) != cfg.ParamCount() {
		return nil, fmt.Errorf("Run: %d initial angles, want %d: %w", len(x0), cfg.ParamCount(), ErrAngleCount)
	}

	log.Info("vqe start",
		zap.Int("qubits", cfg.Qubits),
		zap.Int("layers", cfg.Layers),
		zap.Int("shots", cfg.Shots),
		zap.Float64("best_cost", best))

	res, err := minimizer.Minimize(ctx, Objective(ctx, cfg, w, sim), x0)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	est, err := New(ctx, cfg, w, res.X, sim)
	if err != nil {
		return nil, fmt.Errorf("Run: final evaluation: %w", err)
	}
	pOpt, err := est.ProbabilityOfOptimal()
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	rep := &Report{
		BestCost:             best,
		Expectation:          -res.F,
		OptimalAngles:        res.X,
		InitialAngles:        append([]float64(nil), x0...),
		ProbabilityOfOptimal: pOpt,
		Evaluations:          res.Evaluations,
		Iterations:           res.Iterations,
		Status:               res.Status,
	}
	log.Info("vqe done",
		zap.Float64("best_cost", rep.BestCost),
		zap.Float64("expectation", rep.Expectation),
		zap.Float64("p_optimal", rep.ProbabilityOfOptimal),
		zap.Int("evaluations", rep.Evaluations),
		zap.Int("iterations", rep.Iterations),
		zap.String("status", rep.Status))

	return rep, nil
}
