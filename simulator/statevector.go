// SPDX-License-Identifier: MIT
package simulator

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/vqecut/circuit"
)

// StateVector holds the 2^n complex amplitudes of an n-qubit register.
// Qubit q is bit q of the basis-state index.
type StateVector struct {
	amps      []complex128
	numQubits int
}

// NewStateVector returns |0…0⟩ on n qubits.
//
// Errors: ErrTooManyQubits if n is outside [1, HardMaxQubits].
func NewStateVector(n int) (*StateVector, error) {
	if n < 1 || n > HardMaxQubits {
		return nil, fmt.Errorf("NewStateVector(%d): %w", n, ErrTooManyQubits)
	}
	amps := make([]complex128, 1<<n)
	amps[0] = 1

	return &StateVector{amps: amps, numQubits: n}, nil
}

// NumQubits returns the register width.
func (s *StateVector) NumQubits() int { return s.numQubits }

// Amplitudes returns a copy of the amplitudes.
func (s *StateVector) Amplitudes() []complex128 {
	out := make([]complex128, len(s.amps))
	copy(out, s.amps)

	return out
}

// ApplyRY rotates qubit q about Y by theta:
//
//	|0⟩ → cos(θ/2)|0⟩ + sin(θ/2)|1⟩
//	|1⟩ → −sin(θ/2)|0⟩ + cos(θ/2)|1⟩
func (s *StateVector) ApplyRY(q int, theta float64) {
	c := complex(math.Cos(theta/2), 0)
	sn := complex(math.Sin(theta/2), 0)
	bit := 1 << q
	for i := range s.amps {
		if i&bit != 0 {
			continue
		}
		j := i | bit
		a0, a1 := s.amps[i], s.amps[j]
		s.amps[i] = c*a0 - sn*a1
		s.amps[j] = sn*a0 + c*a1
	}
}

// ApplyCZ negates every amplitude whose qubits a and b are both 1.
func (s *StateVector) ApplyCZ(a, b int) {
	mask := (1 << a) | (1 << b)
	for i := range s.amps {
		if i&mask == mask {
			s.amps[i] = -s.amps[i]
		}
	}
}

// Probabilities returns |amp|² per basis index, renormalized to sum to 1.
func (s *StateVector) Probabilities() []float64 {
	probs := make([]float64, len(s.amps))
	var total float64
	for i, a := range s.amps {
		p := real(a)*real(a) + imag(a)*imag(a)
		probs[i] = p
		total += p
	}
	if total > 0 {
		for i := range probs {
			probs[i] /= total
		}
	}

	return probs
}

// Evolve runs the unitary part of c on |0…0⟩ and returns the final state.
// Barriers and measurements are skipped; measurement is applied by sampling.
//
// Errors: ErrNilCircuit, circuit validation errors, ErrTooManyQubits,
// ErrUnsupportedGate, ctx errors.
func Evolve(ctx context.Context, c *circuit.Circuit) (*StateVector, error) {
	if c == nil {
		return nil, fmt.Errorf("Evolve: %w", ErrNilCircuit)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("Evolve: %w", err)
	}
	sv, err := NewStateVector(c.NumQubits)
	if err != nil {
		return nil, fmt.Errorf("Evolve: %w", err)
	}

	for i, op := range c.Ops() {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		switch op.Gate {
		case circuit.RY:
			sv.ApplyRY(op.Qubits[0], op.Param)
		case circuit.CZ:
			sv.ApplyCZ(op.Qubits[0], op.Qubits[1])
		case circuit.Barrier, circuit.Measure:
		default:
			return nil, fmt.Errorf("Evolve: op %d (%s): %w", i, op.Gate, ErrUnsupportedGate)
		}
	}

	return sv, nil
}

// Bitstring renders basis index k on n qubits with qubit n-1 first.
func Bitstring(k, n int) string {
	buf := make([]byte, n)
	for p := 0; p < n; p++ {
		if (k>>(n-1-p))&1 == 1 {
			buf[p] = '1'
		} else {
			buf[p] = '0'
		}
	}

	return string(buf)
}
