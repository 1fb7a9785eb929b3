// SPDX-License-Identifier: MIT
// Package maxcut holds the classical side of the Max-Cut problem: the Ising
// cost of a measured bitstring, an exhaustive ground-truth oracle and a
// one-flip local search baseline.
//
// Conventions:
//
//   - A bit b maps to spin σ(b): 0 → +1, 1 → −1.
//   - Measured bitstrings put qubit N-1 first; DecodeBitstring reverses them.
//   - Energy(s) = CostHamiltonian + Offset = −(cut value of s) on symmetric,
//     zero-diagonal weights.
//   - BruteForce indexes assignments by mask bit i = vertex i, with no
//     reversal. The optimum is unaffected since every assignment is enumerated.
//
// All functions are pure and safe for concurrent use.
package maxcut
