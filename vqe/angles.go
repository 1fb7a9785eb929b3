// SPDX-License-Identifier: MIT
package vqe

import (
	"math"
	"math/rand/v2"
)

// pcgStream decorrelates the two PCG words derived from a single seed.
const pcgStream = 0x9E3779B97F4A7C15

// newRand returns a PCG-backed generator; unseeded runs draw their seed
// from the runtime generator.
func newRand(seed uint64, seeded bool) *rand.Rand {
	if !seeded {
		seed = rand.Uint64()
	}

	return rand.New(rand.NewPCG(seed, seed^pcgStream))
}

// RandomAngles draws n angles uniformly from [0, 2π).
func RandomAngles(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64() * 2 * math.Pi
	}

	return out
}
