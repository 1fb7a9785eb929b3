// SPDX-License-Identifier: MIT
package vqe

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/optimize"
)

// OptimizeResult is the outcome of a minimization.
type OptimizeResult struct {
	// X is the best angle vector found.
	X []float64
	// F is the objective value at X.
	F float64
	// Iterations and Evaluations count major iterations and objective calls.
	Iterations  int
	Evaluations int
	// Status is the optimizer's termination reason.
	Status string
}

// Minimizer searches for a minimum of f starting from x0.
type Minimizer interface {
	Minimize(ctx context.Context, f ObjectiveFunc, x0 []float64) (OptimizeResult, error)
}

// Defaults for NelderMead; zero fields fall back to these.
const (
	DefaultMaxIterations  = 200
	DefaultMaxEvaluations = 1000
	DefaultAbsoluteTol    = 1e-4
	DefaultConvergeWindow = 25
)

// NelderMead is the default Minimizer: gonum's derivative-free simplex method
// evaluated one point at a time.
//
// An objective error stops the search at the next status check and is
// returned as is. Context cancellation stops it the same way.
type NelderMead struct {
	// MaxIterations caps major iterations.
	MaxIterations int
	// MaxEvaluations caps objective calls.
	MaxEvaluations int
	// Absolute and Relative are the FunctionConverge tolerances.
	Absolute float64
	Relative float64
	// Window is the number of iterations without improvement before convergence.
	Window int
	// SimplexSize is the initial simplex edge; 0 uses gonum's default.
	SimplexSize float64
	// Logger receives one Debug entry per evaluation; nil disables logging.
	Logger *zap.Logger
}

var _ Minimizer = (*NelderMead)(nil)

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}

	return v
}

// Minimize runs Nelder–Mead on f from x0.
//
// Errors: ErrNilObjective, ErrAngleCount for an empty x0, the first objective
// error, ctx errors.
func (nm *NelderMead) Minimize(ctx context.Context, f ObjectiveFunc, x0 []float64) (OptimizeResult, error) {
	if f == nil {
		return OptimizeResult{}, fmt.Errorf("NelderMead.Minimize: %w", ErrNilObjective)
	}
	if len(x0) == 0 {
		return OptimizeResult{}, fmt.Errorf("NelderMead.Minimize: empty start: %w", ErrAngleCount)
	}
	log := nm.Logger
	if log == nil {
		log = zap.NewNop()
	}

	var (
		evalErr error
		evals   int
	)
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			if evalErr != nil {
				return math.Inf(1)
			}
			v, err := f(x)
			evals++
			if err != nil {
				evalErr = err
				log.Debug("objective failed", zap.Int("eval", evals), zap.Error(err))
				return math.Inf(1)
			}
			log.Debug("objective", zap.Int("eval", evals), zap.Float64("value", v))
			return v
		},
		Status: func() (optimize.Status, error) {
			if evalErr != nil {
				return optimize.Failure, evalErr
			}
			if err := ctx.Err(); err != nil {
				return optimize.Failure, err
			}
			return optimize.NotTerminated, nil
		},
	}

	abs := nm.Absolute
	if abs <= 0 && nm.Relative <= 0 {
		abs = DefaultAbsoluteTol
	}
	settings := &optimize.Settings{
		Converger: &optimize.FunctionConverge{
			Absolute:   abs,
			Relative:   nm.Relative,
			Iterations: orDefault(nm.Window, DefaultConvergeWindow),
		},
		MajorIterations: orDefault(nm.MaxIterations, DefaultMaxIterations),
		FuncEvaluations: orDefault(nm.MaxEvaluations, DefaultMaxEvaluations),
		Concurrent:      1,
	}

	start := make([]float64, len(x0))
	copy(start, x0)
	res, err := optimize.Minimize(problem, start, settings, &optimize.NelderMead{SimplexSize: nm.SimplexSize})
	if err != nil {
		return OptimizeResult{}, fmt.Errorf("NelderMead.Minimize: %w", err)
	}

	out := OptimizeResult{
		X:           append([]float64(nil), res.X...),
		F:           res.F,
		Iterations:  res.MajorIterations,
		Evaluations: res.FuncEvaluations,
		Status:      res.Status.String(),
	}
	log.Debug("minimize done",
		zap.String("status", out.Status),
		zap.Int("iterations", out.Iterations),
		zap.Int("evaluations", out.Evaluations),
		zap.Float64("f", out.F))

	return out, nil
}
