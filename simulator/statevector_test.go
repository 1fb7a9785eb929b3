// SPDX-License-Identifier: MIT
package simulator_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vqecut/circuit"
	"github.com/katalvlaran/vqecut/simulator"
)

const tol = 1e-12

func TestApplyRY_PiFlips(t *testing.T) {
	sv, err := simulator.NewStateVector(2)
	require.NoError(t, err)
	sv.ApplyRY(1, math.Pi)

	p := sv.Probabilities()
	// Qubit 1 is bit 1: basis index 2.
	assert.InDelta(t, 1.0, p[2], tol)
	assert.InDelta(t, 0.0, p[0], tol)
}

func TestApplyRY_HalfPiSuperposition(t *testing.T) {
	sv, err := simulator.NewStateVector(1)
	require.NoError(t, err)
	sv.ApplyRY(0, math.Pi/2)
	p := sv.Probabilities()
	assert.InDelta(t, 0.5, p[0], tol)
	assert.InDelta(t, 0.5, p[1], tol)

	amps := sv.Amplitudes()
	assert.InDelta(t, 1/math.Sqrt2, real(amps[0]), tol)
	assert.InDelta(t, 1/math.Sqrt2, real(amps[1]), tol)
}

func TestApplyCZ_PhaseOnly(t *testing.T) {
	sv, err := simulator.NewStateVector(2)
	require.NoError(t, err)
	sv.ApplyRY(0, math.Pi/2)
	sv.ApplyRY(1, math.Pi/2)
	sv.ApplyCZ(0, 1)

	amps := sv.Amplitudes()
	assert.InDelta(t, -0.5, real(amps[3]), tol)
	assert.InDelta(t, 0.5, real(amps[1]), tol)
	for _, p := range sv.Probabilities() {
		assert.InDelta(t, 0.25, p, tol)
	}
}

func TestNewStateVector_Bounds(t *testing.T) {
	_, err := simulator.NewStateVector(0)
	assert.ErrorIs(t, err, simulator.ErrTooManyQubits)
	_, err = simulator.NewStateVector(simulator.HardMaxQubits + 1)
	assert.ErrorIs(t, err, simulator.ErrTooManyQubits)
}

func TestEvolve(t *testing.T) {
	c, err := circuit.New(3)
	require.NoError(t, err)
	require.NoError(t, c.RY(math.Pi, 0))
	c.Barrier()
	c.MeasureAll()

	sv, err := simulator.Evolve(context.Background(), c)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sv.Probabilities()[1], tol)
	assert.Equal(t, 3, sv.NumQubits())

	_, err = simulator.Evolve(context.Background(), nil)
	assert.ErrorIs(t, err, simulator.ErrNilCircuit)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = simulator.Evolve(ctx, c)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBitstring_QubitOrder(t *testing.T) {
	assert.Equal(t, "0001", simulator.Bitstring(1, 4))
	assert.Equal(t, "1000", simulator.Bitstring(8, 4))
	assert.Equal(t, "110", simulator.Bitstring(6, 3))
}
