// SPDX-License-Identifier: MIT
// Package simulator executes circuit.Circuit values on a classical
// state-vector backend and returns measurement shot distributions.
//
// The Simulator interface is the only thing the optimizer depends on; Sampler
// is the default implementation. It evolves |0…0⟩ exactly (2^n complex128
// amplitudes, qubit q is bit q of the basis index), then draws shots from the
// resulting probabilities with gonum's distuv.Categorical.
//
// Bitstrings put qubit n-1 first, so the rightmost character is qubit 0.
package simulator
