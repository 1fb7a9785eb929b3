// SPDX-License-Identifier: MIT
// Package: vqecut/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).
//
// Priority (tie-break when multiple validations fail):
//   ErrTooFewVertices → ErrInvalidProbability / ErrInvalidEdgeCount → ErrNeedRandSource
//   → ErrConstructFailed.

package builder

import "errors"

// ErrTooFewVertices indicates that the vertex count is smaller than the allowed
// minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// RNG in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that construction could not complete, either
// because of a nil constructor or a failure in the underlying generator.
var ErrConstructFailed = errors.New("builder: construction failed")
