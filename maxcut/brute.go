// SPDX-License-Identifier: MIT
package maxcut

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/vqecut/matrix"
)

// MaxBruteNodes bounds exhaustive enumeration (2^N assignments).
const MaxBruteNodes = 24

// Result is the outcome of exhaustive enumeration.
type Result struct {
	// Best is max_x Σ_{i,j} w[i][j]·x_i·(1−x_j), never below 0.
	Best float64
	// Assignment is the first x (in mask order) reaching Best; x[i] is bit i
	// of the mask. Nil when no assignment beats 0.
	Assignment []int
}

// BruteForce enumerates all 2^N assignments x ∈ {0,1}^N, with x[i] = bit i
// of the mask, and maximizes xᵀ·W·(1−x) using gonum's mat.Inner.
//
// Algorithm:
//  1. Validate W is square and N ≤ MaxBruteNodes.
//  2. For mask in [0, 2^N): fill x and y=1−x, cost = mat.Inner(x, W, y).
//  3. Keep the first strictly larger cost; the running maximum starts at 0.
//
// Errors: ErrDimensionMismatch, ErrTooManyNodes.
// Complexity: O(2^N · N²) time, O(N²) space.
func BruteForce(w matrix.Matrix) (Result, error) {
	n, err := order("BruteForce", w)
	if err != nil {
		return Result{}, err
	}
	if n > MaxBruteNodes {
		return Result{}, fmt.Errorf("BruteForce: N=%d > %d: %w", n, MaxBruteNodes, ErrTooManyNodes)
	}
	W, err := matrix.ToGonum(w)
	if err != nil {
		return Result{}, fmt.Errorf("BruteForce: %w", err)
	}

	x := mat.NewVecDense(n, nil)
	y := mat.NewVecDense(n, nil)
	var res Result
	bestMask := -1
	for mask := 0; mask < 1<<n; mask++ {
		for i := 0; i < n; i++ {
			bit := float64((mask >> i) & 1)
			x.SetVec(i, bit)
			y.SetVec(i, 1-bit)
		}
		if cost := mat.Inner(x, W, y); cost > res.Best {
			res.Best = cost
			bestMask = mask
		}
	}

	if bestMask >= 0 {
		res.Assignment = make([]int, n)
		for i := range res.Assignment {
			res.Assignment[i] = (bestMask >> i) & 1
		}
	}

	return res, nil
}

// BestCostBrute returns BruteForce(w).Best.
func BestCostBrute(w matrix.Matrix) (float64, error) {
	res, err := BruteForce(w)
	if err != nil {
		return 0, err
	}

	return res.Best, nil
}

// CutValue returns Σ_{i<j, x_i≠x_j} w[i][j] for a 0/1 assignment.
//
// Errors: ErrDimensionMismatch, ErrInvalidSpin.
func CutValue(x []int, w matrix.Matrix) (float64, error) {
	n, err := order("CutValue", w)
	if err != nil {
		return 0, err
	}
	if len(x) != n {
		return 0, fmt.Errorf("CutValue: %d bits for order %d: %w", len(x), n, ErrDimensionMismatch)
	}
	for i, b := range x {
		if b != 0 && b != 1 {
			return 0, fmt.Errorf("CutValue: bit %d=%d: %w", i, b, ErrInvalidSpin)
		}
	}

	var cut float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if x[i] != x[j] {
				wij, _ := w.At(i, j)
				cut += wij
			}
		}
	}

	return cut, nil
}
