// SPDX-License-Identifier: MIT
package vqe

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/vqecut/simulator"
)

// Option configures Run. Option constructors panic on nil arguments.
type Option func(*runConfig)

// runConfig holds the resolved Run settings.
type runConfig struct {
	cfg       Config
	sim       simulator.Simulator
	minimizer Minimizer
	seed      uint64
	seeded    bool
	x0        []float64
	logger    *zap.Logger
}

func newRunConfig(opts ...Option) runConfig {
	rc := runConfig{cfg: DefaultConfig(), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&rc)
	}

	return rc
}

// WithConfig sets the problem shape. Run validates it.
func WithConfig(cfg Config) Option {
	return func(rc *runConfig) { rc.cfg = cfg }
}

// WithSimulator sets the simulator. Panics on nil.
func WithSimulator(sim simulator.Simulator) Option {
	if sim == nil {
		panic("vqe: WithSimulator(nil)")
	}
	return func(rc *runConfig) { rc.sim = sim }
}

// WithMinimizer sets the optimizer. Panics on nil.
func WithMinimizer(m Minimizer) Option {
	if m == nil {
		panic("vqe: WithMinimizer(nil)")
	}
	return func(rc *runConfig) { rc.minimizer = m }
}

// WithSeed makes the initial angles reproducible.
func WithSeed(seed uint64) Option {
	return func(rc *runConfig) {
		rc.seed = seed
		rc.seeded = true
	}
}

// WithInitialAngles starts the search from thetas instead of random angles.
// The slice is copied.
func WithInitialAngles(thetas []float64) Option {
	x0 := append([]float64(nil), thetas...)
	return func(rc *runConfig) { rc.x0 = x0 }
}

// WithLogger sets the logger for the run and the default minimizer. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("vqe: WithLogger(nil)")
	}
	return func(rc *runConfig) { rc.logger = l }
}
