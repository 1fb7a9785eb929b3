// SPDX-License-Identifier: MIT
package vqe

import (
	"context"
	"fmt"

	"github.com/katalvlaran/vqecut/circuit"
	"github.com/katalvlaran/vqecut/simulator"
)

// BuildAnsatz lays out the hardware-efficient ansatz for thetas.
//
// Layout:
//  1. RY(thetas[q]) on every qubit, then a barrier.
//  2. For each layer l: CZ(q1,q2) for every pair q1<q2 (q1 outer), then
//     RY(thetas[(l+1)·N+q]) on every qubit.
//  3. A barrier, then Measure(q → c_q) on every qubit.
//
// Errors: ErrConfig, ErrAngleCount, circuit errors for non-finite angles.
func BuildAnsatz(cfg Config, thetas []float64) (*circuit.Circuit, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("BuildAnsatz: %w", err)
	}
	if len(thetas) != cfg.ParamCount() {
		return nil, fmt.Errorf("BuildAnsatz: %d angles, want %d: %w", len(thetas), cfg.ParamCount(), ErrAngleCount)
	}

	n := cfg.Qubits
	c, err := circuit.New(n)
	if err != nil {
		return nil, fmt.Errorf("BuildAnsatz: %w", err)
	}
	for q := 0; q < n; q++ {
		if err = c.RY(thetas[q], q); err != nil {
			return nil, fmt.Errorf("BuildAnsatz: %w", err)
		}
	}
	c.Barrier()

	for l := 0; l < cfg.Layers; l++ {
		for q1 := 0; q1 < n; q1++ {
			for q2 := q1 + 1; q2 < n; q2++ {
				if err = c.CZ(q1, q2); err != nil {
					return nil, fmt.Errorf("BuildAnsatz: %w", err)
				}
			}
		}
		base := (l + 1) * n
		for q := 0; q < n; q++ {
			if err = c.RY(thetas[base+q], q); err != nil {
				return nil, fmt.Errorf("BuildAnsatz: layer %d: %w", l, err)
			}
		}
	}

	c.Barrier()
	c.MeasureAll()

	return c, nil
}

// Evaluate runs c on sim once and checks that the returned counts sum to shots.
//
// Errors: ErrNilSimulator, ErrShotMismatch, simulator errors.
func Evaluate(ctx context.Context, c *circuit.Circuit, sim simulator.Simulator, shots int) (*simulator.Counts, error) {
	if sim == nil {
		return nil, fmt.Errorf("Evaluate: %w", ErrNilSimulator)
	}
	counts, err := sim.Run(ctx, c, shots)
	if err != nil {
		return nil, fmt.Errorf("Evaluate: %w", err)
	}
	if counts == nil || counts.Shots() != shots {
		got := 0
		if counts != nil {
			got = counts.Shots()
		}
		return nil, fmt.Errorf("Evaluate: got %d shots, want %d: %w", got, shots, ErrShotMismatch)
	}

	return counts, nil
}
