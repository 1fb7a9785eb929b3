// SPDX-License-Identifier: MIT
package vqe_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vqecut/circuit"
	"github.com/katalvlaran/vqecut/matrix"
	"github.com/katalvlaran/vqecut/simulator"
)

// fixedSim returns the same distribution for every circuit.
type fixedSim struct {
	counts map[string]int
	width  int
	calls  int
}

func (f *fixedSim) Run(_ context.Context, _ *circuit.Circuit, _ int) (*simulator.Counts, error) {
	f.calls++
	c := simulator.NewCounts(f.width)
	for k, n := range f.counts {
		if err := c.Add(k, n); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// failSim always fails.
type failSim struct{ err error }

func (f failSim) Run(context.Context, *circuit.Circuit, int) (*simulator.Counts, error) {
	return nil, f.err
}

func mustWeights(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	w, err := matrix.FromRows(rows)
	require.NoError(t, err)
	return w
}

func pair(t testing.TB) *matrix.Dense {
	return mustWeights(t, [][]float64{{0, 1}, {1, 0}})
}

func k4(t testing.TB) *matrix.Dense {
	return mustWeights(t, [][]float64{
		{0, 1, 1, 1},
		{1, 0, 1, 1},
		{1, 1, 0, 1},
		{1, 1, 1, 0},
	})
}
