// SPDX-License-Identifier: MIT
// Package matrix holds the dense weight matrix of a Max-Cut instance.
//
// The matrix package provides:
//
//   - Dense, a bounds-checked row-major float64 matrix (At/Set return errors).
//   - FromRows for the raw (node_count, weight_matrix) input boundary.
//   - WeightMatrix, a Dense built from a core.Graph in vertex insertion order,
//     together with the vertex ID ↔ row index mapping.
//   - Validators; ValidateWeights enforces the Max-Cut contract:
//     square → symmetric → zero diagonal → finite.
//   - Gonum/ToGonum bridges into gonum.org/v1/gonum/mat for linear algebra.
//
// Matrices are O(N²) in memory, which is negligible for the qubit counts a
// state-vector simulation can handle.
package matrix
