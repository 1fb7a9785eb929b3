// SPDX-License-Identifier: MIT
package simulator

import (
	"fmt"
	"math/rand/v2"
)

// Option configures a Sampler. Option constructors panic on nonsense values.
type Option func(*Sampler)

// WithSeed makes shot sampling reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Sampler) {
		s.src = rand.NewPCG(seed, seed^pcgStream)
	}
}

// WithSource sets the random source used for sampling. Panics on nil.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic("simulator: WithSource(nil)")
	}
	return func(s *Sampler) {
		s.src = src
	}
}

// WithMaxQubits bounds the accepted circuit width.
// Panics if n is outside [1, HardMaxQubits].
func WithMaxQubits(n int) Option {
	if n < 1 || n > HardMaxQubits {
		panic(fmt.Sprintf("simulator: WithMaxQubits(%d) outside [1,%d]", n, HardMaxQubits))
	}
	return func(s *Sampler) {
		s.maxQubits = n
	}
}

// pcgStream decorrelates the two PCG words derived from a single seed.
const pcgStream = 0xDA942042E4DD58B5
