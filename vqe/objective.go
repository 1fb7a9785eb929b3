// SPDX-License-Identifier: MIT
package vqe

import (
	"context"

	"github.com/katalvlaran/vqecut/matrix"
	"github.com/katalvlaran/vqecut/simulator"
)

// ObjectiveFunc maps an angle vector to the expected energy of the ansatz.
type ObjectiveFunc func(thetas []float64) (float64, error)

// Objective returns the VQE objective for (cfg, w, sim). Every call builds a
// fresh circuit, simulates it once and reduces the counts; no state is shared
// between calls.
func Objective(ctx context.Context, cfg Config, w matrix.Matrix, sim simulator.Simulator) ObjectiveFunc {
	return func(thetas []float64) (float64, error) {
		est, err := New(ctx, cfg, w, thetas, sim)
		if err != nil {
			return 0, err
		}

		return est.ExpectedValue()
	}
}
