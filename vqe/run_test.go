// SPDX-License-Identifier: MIT
package vqe_test

import (
	"context"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/vqecut/simulator"
	"github.com/katalvlaran/vqecut/vqe"
)

// stubMinimizer returns a fixed point without calling the objective.
type stubMinimizer struct {
	x  []float64
	f  float64
	x0 []float64
}

func (s *stubMinimizer) Minimize(_ context.Context, _ vqe.ObjectiveFunc, x0 []float64) (vqe.OptimizeResult, error) {
	s.x0 = x0
	return vqe.OptimizeResult{X: s.x, F: s.f, Iterations: 1, Evaluations: 1, Status: "Stub"}, nil
}

func TestRun_StubMinimizer(t *testing.T) {
	stub := &stubMinimizer{x: []float64{math.Pi, 0, 0, 0}, f: -1}
	rep, err := vqe.Run(context.Background(), pair(t),
		vqe.WithConfig(vqe.Config{Qubits: 2, Layers: 1, Shots: 200}),
		vqe.WithSimulator(simulator.NewSampler(simulator.WithSeed(2))),
		vqe.WithMinimizer(stub),
		vqe.WithInitialAngles([]float64{0.5, 0.5, 0.5, 0.5}),
	)
	require.NoError(t, err)

	assert.Equal(t, 1.0, rep.BestCost)
	assert.Equal(t, 1.0, rep.Expectation)
	assert.Equal(t, 1.0, rep.ProbabilityOfOptimal)
	assert.Equal(t, []float64{0.5, 0.5, 0.5, 0.5}, rep.InitialAngles)
	assert.Equal(t, []float64{0.5, 0.5, 0.5, 0.5}, stub.x0)
	assert.Equal(t, "Stub", rep.Status)
}

func TestRun_Reproducible(t *testing.T) {
	run := func() *vqe.Report {
		rep, err := vqe.Run(context.Background(), pair(t),
			vqe.WithConfig(vqe.Config{Qubits: 2, Layers: 1, Shots: 200}),
			vqe.WithSimulator(simulator.NewSampler(simulator.WithSeed(11))),
			vqe.WithSeed(5),
		)
		require.NoError(t, err)
		return rep
	}
	a, b := run(), run()
	assert.Equal(t, a, b)

	assert.Equal(t, 1.0, a.BestCost)
	assert.GreaterOrEqual(t, a.Expectation, 0.0)
	assert.LessOrEqual(t, a.Expectation, 1.0)
	assert.Len(t, a.OptimalAngles, 4)
	assert.Positive(t, a.Evaluations)
}

func TestRun_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := vqe.Run(ctx, pair(t), vqe.WithConfig(vqe.Config{Qubits: 2, Layers: 1, Shots: 0}))
	assert.ErrorIs(t, err, vqe.ErrConfig)

	_, err = vqe.Run(ctx, pair(t))
	assert.ErrorIs(t, err, vqe.ErrSizeMismatch)

	_, err = vqe.Run(ctx, k4(t), vqe.WithInitialAngles([]float64{1, 2}))
	assert.ErrorIs(t, err, vqe.ErrAngleCount)

	boom := simulator.ErrTooManyQubits
	_, err = vqe.Run(ctx, k4(t), vqe.WithSimulator(failSim{err: boom}), vqe.WithSeed(1))
	assert.ErrorIs(t, err, boom)
}

func TestRun_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { vqe.WithSimulator(nil) })
	assert.Panics(t, func() { vqe.WithMinimizer(nil) })
	assert.Panics(t, func() { vqe.WithLogger(nil) })
}

func TestRun_LogsSummary(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	stub := &stubMinimizer{x: []float64{math.Pi, 0, 0, 0}, f: -1}
	_, err := vqe.Run(context.Background(), pair(t),
		vqe.WithConfig(vqe.Config{Qubits: 2, Layers: 1, Shots: 10}),
		vqe.WithMinimizer(stub),
		vqe.WithSeed(3),
		vqe.WithLogger(zap.New(core)),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("vqe start").Len())
	assert.Equal(t, 1, logs.FilterMessage("vqe done").Len())
}

func TestRandomAngles(t *testing.T) {
	a := vqe.RandomAngles(rand.New(rand.NewPCG(1, 2)), 16)
	b := vqe.RandomAngles(rand.New(rand.NewPCG(1, 2)), 16)
	require.Len(t, a, 16)
	assert.Equal(t, a, b)
	for _, x := range a {
		assert.GreaterOrEqual(t, x, 0.0)
		assert.Less(t, x, 2*math.Pi)
	}
}
