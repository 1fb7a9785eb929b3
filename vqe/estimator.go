// SPDX-License-Identifier: MIT
package vqe

import (
	"context"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/vqecut/circuit"
	"github.com/katalvlaran/vqecut/matrix"
	"github.com/katalvlaran/vqecut/maxcut"
	"github.com/katalvlaran/vqecut/simulator"
)

// Estimator reduces one measured distribution to Max-Cut quantities.
// It is immutable once built; each objective evaluation builds a new one.
type Estimator struct {
	cfg    Config
	w      matrix.Matrix
	counts *simulator.Counts
	circ   *circuit.Circuit
}

// EnergyStats summarizes the per-shot energies of one distribution.
type EnergyStats struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// NewEstimator checks w against cfg and wraps counts.
//
// Errors: ErrConfig, ErrSizeMismatch, ErrShotMismatch, matrix validation errors.
func NewEstimator(cfg Config, w matrix.Matrix, counts *simulator.Counts) (*Estimator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("NewEstimator: %w", err)
	}
	if err := checkWeights(cfg, w); err != nil {
		return nil, fmt.Errorf("NewEstimator: %w", err)
	}
	if counts == nil || counts.Shots() != cfg.Shots {
		return nil, fmt.Errorf("NewEstimator: %w", ErrShotMismatch)
	}
	if counts.Width() != cfg.Qubits {
		return nil, fmt.Errorf("NewEstimator: counts width %d, qubits %d: %w", counts.Width(), cfg.Qubits, ErrSizeMismatch)
	}

	return &Estimator{cfg: cfg, w: w.Clone(), counts: counts}, nil
}

// New builds the ansatz for thetas, evaluates it once on sim and wraps the
// result in an Estimator.
func New(ctx context.Context, cfg Config, w matrix.Matrix, thetas []float64, sim simulator.Simulator) (*Estimator, error) {
	c, err := BuildAnsatz(cfg, thetas)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	counts, err := Evaluate(ctx, c, sim, cfg.Shots)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	est, err := NewEstimator(cfg, w, counts)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	est.circ = c

	return est, nil
}

// checkWeights validates w as an N×N Max-Cut weight matrix with N = cfg.Qubits.
func checkWeights(cfg Config, w matrix.Matrix) error {
	if err := matrix.ValidateSquare(w); err != nil {
		return err
	}
	if w.Rows() != cfg.Qubits {
		return fmt.Errorf("order %d, qubits %d: %w", w.Rows(), cfg.Qubits, ErrSizeMismatch)
	}

	return matrix.ValidateWeights(w)
}

// energies returns the energy and count of every observed bitstring, in key order.
func (e *Estimator) energies() ([]float64, []float64, error) {
	xs := make([]float64, 0, e.counts.Len())
	ws := make([]float64, 0, e.counts.Len())
	var err error
	e.counts.Each(func(s string, n int) {
		if err != nil {
			return
		}
		var en float64
		if en, err = maxcut.Energy(s, e.w); err != nil {
			return
		}
		xs = append(xs, en)
		ws = append(ws, float64(n))
	})

	return xs, ws, err
}

// ExpectedValue returns Σ_s count[s]/shots · Energy(s).
func (e *Estimator) ExpectedValue() (float64, error) {
	xs, ws, err := e.energies()
	if err != nil {
		return 0, fmt.Errorf("ExpectedValue: %w", err)
	}

	return stat.Mean(xs, ws), nil
}

// BestCostBrute returns the exhaustive Max-Cut optimum of the weight matrix.
// The measured distribution plays no part.
func (e *Estimator) BestCostBrute() (float64, error) {
	return maxcut.BestCostBrute(e.w)
}

// round2 rounds half away from zero to two decimals.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// ProbabilityOfOptimal returns the fraction of shots whose energy, rounded to
// two decimals, equals −round(best, 2).
func (e *Estimator) ProbabilityOfOptimal() (float64, error) {
	best, err := e.BestCostBrute()
	if err != nil {
		return 0, fmt.Errorf("ProbabilityOfOptimal: %w", err)
	}
	target := -round2(best)

	xs, ws, err := e.energies()
	if err != nil {
		return 0, fmt.Errorf("ProbabilityOfOptimal: %w", err)
	}
	var hits float64
	for i, en := range xs {
		if round2(en) == target {
			hits += ws[i]
		}
	}

	return hits / float64(e.counts.Shots()), nil
}

// ExactCounts returns one energy per shot, sorted ascending.
func (e *Estimator) ExactCounts() ([]float64, error) {
	xs, ws, err := e.energies()
	if err != nil {
		return nil, fmt.Errorf("ExactCounts: %w", err)
	}
	out := make([]float64, 0, e.counts.Shots())
	for i, en := range xs {
		for k := 0; k < int(ws[i]); k++ {
			out = append(out, en)
		}
	}
	sort.Float64s(out)

	return out, nil
}

// Offset returns maxcut.Offset of the weight matrix.
func (e *Estimator) Offset() (float64, error) {
	return maxcut.Offset(e.w)
}

// Stats returns the shot-weighted mean and standard deviation together with
// the extreme observed energies.
func (e *Estimator) Stats() (EnergyStats, error) {
	xs, ws, err := e.energies()
	if err != nil {
		return EnergyStats{}, fmt.Errorf("Stats: %w", err)
	}
	var st EnergyStats
	st.Mean, st.StdDev = stat.MeanStdDev(xs, ws)
	if e.counts.Shots() < 2 {
		st.StdDev = 0
	}
	st.Min = floats.Min(xs)
	st.Max = floats.Max(xs)

	return st, nil
}

// Counts returns the measured distribution.
func (e *Estimator) Counts() *simulator.Counts { return e.counts }

// Circuit returns the evaluated circuit, or nil for an Estimator built by NewEstimator.
func (e *Estimator) Circuit() *circuit.Circuit { return e.circ }

// Config returns the problem shape.
func (e *Estimator) Config() Config { return e.cfg }
