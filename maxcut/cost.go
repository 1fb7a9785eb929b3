// SPDX-License-Identifier: MIT
package maxcut

import (
	"fmt"

	"github.com/katalvlaran/vqecut/matrix"
)

// Sigma maps a computational-basis bit to its Z eigenvalue: 0 → +1, 1 → −1.
//
// Errors: ErrInvalidSpin for any other value.
func Sigma(z int) (int, error) {
	switch z {
	case 0:
		return 1, nil
	case 1:
		return -1, nil
	default:
		return 0, fmt.Errorf("Sigma(%d): %w", z, ErrInvalidSpin)
	}
}

// order returns N for a square, non-empty weight matrix.
func order(method string, w matrix.Matrix) (int, error) {
	if err := matrix.ValidateSquare(w); err != nil {
		return 0, fmt.Errorf("%s: %w: %w", method, ErrDimensionMismatch, err)
	}

	return w.Rows(), nil
}

// CostHamiltonian evaluates ½·Σ_{i<j, w≠0} w[i][j]·σ(spins[i])·σ(spins[j]).
// spins[i] is the bit of vertex/qubit i.
//
// Errors: ErrDimensionMismatch, ErrInvalidSpin.
// Complexity: O(N²).
func CostHamiltonian(spins []int, w matrix.Matrix) (float64, error) {
	n, err := order("CostHamiltonian", w)
	if err != nil {
		return 0, err
	}
	if len(spins) != n {
		return 0, fmt.Errorf("CostHamiltonian: %d spins for order %d: %w", len(spins), n, ErrDimensionMismatch)
	}

	sig := make([]float64, n)
	for i, z := range spins {
		s, err := Sigma(z)
		if err != nil {
			return 0, fmt.Errorf("CostHamiltonian: spin %d: %w", i, err)
		}
		sig[i] = float64(s)
	}

	var total float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			wij, _ := w.At(i, j)
			if wij == 0 {
				continue
			}
			total += wij * sig[i] * sig[j]
		}
	}

	return total / 2, nil
}

// Offset returns −Σ_{i<j} w[i][j]/2, the assignment-independent constant
// that turns CostHamiltonian into the negated cut value.
//
// Errors: ErrDimensionMismatch.
func Offset(w matrix.Matrix) (float64, error) {
	n, err := order("Offset", w)
	if err != nil {
		return 0, err
	}

	var total float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			wij, _ := w.At(i, j)
			total += wij
		}
	}

	return -total / 2, nil
}

// DecodeBitstring reverses a measured bitstring (qubit N-1 first) so that
// spins[i] is the bit of qubit i.
//
// Errors: ErrInvalidSpin for runes other than '0'/'1'.
func DecodeBitstring(s string) ([]int, error) {
	spins := make([]int, len(s))
	for k := 0; k < len(s); k++ {
		i := len(s) - 1 - k
		switch s[k] {
		case '0':
			spins[i] = 0
		case '1':
			spins[i] = 1
		default:
			return nil, fmt.Errorf("DecodeBitstring(%q): position %d: %w", s, k, ErrInvalidSpin)
		}
	}

	return spins, nil
}

// Energy is CostHamiltonian(DecodeBitstring(s)) + Offset: the negated cut
// value of the assignment a measured bitstring encodes.
//
// Errors: ErrInvalidSpin, ErrDimensionMismatch.
func Energy(bitstring string, w matrix.Matrix) (float64, error) {
	spins, err := DecodeBitstring(bitstring)
	if err != nil {
		return 0, fmt.Errorf("Energy: %w", err)
	}
	h, err := CostHamiltonian(spins, w)
	if err != nil {
		return 0, fmt.Errorf("Energy: %w", err)
	}
	off, err := Offset(w)
	if err != nil {
		return 0, fmt.Errorf("Energy: %w", err)
	}

	return h + off, nil
}
