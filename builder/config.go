// SPDX-License-Identifier: MIT
// Package: vqecut/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • idFn     = DefaultIDFn     ("0","1","2",...)
//   • rng      = nil             (pure/deterministic unless seeded)
//   • weightFn = DefaultWeightFn (1.0)

package builder

import "math/rand/v2"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges; used only for weighted graphs.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// edgeWeight returns the weight passed to core.AddEdge: the weight function
// result on weighted graphs and 0 on unweighted ones.
func (c builderConfig) edgeWeight(weighted bool) float64 {
	if !weighted {
		return 0
	}

	return c.weightFn(c.rng)
}

// seededRand builds the PCG-backed generator used by WithSeed. The same seed
// always yields the same stream.
func seededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^pcgStream))
}

// pcgStream decorrelates the two PCG words derived from a single seed.
const pcgStream = 0x9E3779B97F4A7C15
