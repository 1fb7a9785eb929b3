// SPDX-License-Identifier: MIT
package simulator

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/vqecut/circuit"
)

// Sampler is the default Simulator: an exact state-vector evolution followed
// by categorical sampling of the measured basis states.
//
// A Sampler is safe for concurrent use; draws are serialized on its source.
type Sampler struct {
	mu        sync.Mutex
	src       rand.Source
	maxQubits int
}

var _ Simulator = (*Sampler)(nil)

// NewSampler returns a Sampler. Without WithSeed or WithSource the source is
// seeded from the runtime's random generator.
func NewSampler(opts ...Option) *Sampler {
	s := &Sampler{maxQubits: DefaultMaxQubits}
	for _, opt := range opts {
		opt(s)
	}
	if s.src == nil {
		s.src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	return s
}

// Run evolves c, then draws shots samples from the measurement distribution.
//
// Steps:
//  1. Validate shots, width and measurement layout.
//  2. Evolve the state vector.
//  3. Draw shots basis indices from distuv.Categorical and tally them.
//
// Errors: ErrNoShots, ErrNilCircuit, ErrTooManyQubits, ErrMeasurement,
// ErrUnsupportedGate, circuit validation errors, ctx errors.
func (s *Sampler) Run(ctx context.Context, c *circuit.Circuit, shots int) (*Counts, error) {
	if shots <= 0 {
		return nil, fmt.Errorf("Sampler.Run: shots=%d: %w", shots, ErrNoShots)
	}
	if c == nil {
		return nil, fmt.Errorf("Sampler.Run: %w", ErrNilCircuit)
	}
	if c.NumQubits > s.maxQubits {
		return nil, fmt.Errorf("Sampler.Run: %d qubits > max %d: %w", c.NumQubits, s.maxQubits, ErrTooManyQubits)
	}
	if !c.Measured() {
		return nil, fmt.Errorf("Sampler.Run: %w", ErrMeasurement)
	}

	sv, err := Evolve(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("Sampler.Run: %w", err)
	}

	hist, err := s.draw(ctx, sv.Probabilities(), shots)
	if err != nil {
		return nil, fmt.Errorf("Sampler.Run: %w", err)
	}

	counts := NewCounts(c.NumQubits)
	for k, n := range hist {
		if n == 0 {
			continue
		}
		if err = counts.Add(Bitstring(k, c.NumQubits), n); err != nil {
			return nil, fmt.Errorf("Sampler.Run: %w", err)
		}
	}

	return counts, nil
}

// draw tallies shots categorical samples over probs, indexed by basis state.
func (s *Sampler) draw(ctx context.Context, probs []float64, shots int) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cat := distuv.NewCategorical(probs, s.src)
	hist := make([]int, len(probs))
	for i := 0; i < shots; i++ {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		hist[int(cat.Rand())]++
	}

	return hist, nil
}
