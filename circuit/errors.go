// SPDX-License-Identifier: MIT
// Package circuit: sentinel error set. Call sites wrap these with the method
// name; callers match with errors.Is.

package circuit

import "errors"

var (
	// ErrBadQubitCount indicates a circuit was requested with fewer than one qubit.
	ErrBadQubitCount = errors.New("circuit: qubit count must be > 0")

	// ErrQubitOutOfRange indicates a gate referenced a qubit outside [0, NumQubits).
	ErrQubitOutOfRange = errors.New("circuit: qubit index out of range")

	// ErrSameQubit indicates a two-qubit gate was given the same qubit twice.
	ErrSameQubit = errors.New("circuit: two-qubit gate on a single qubit")

	// ErrBadAngle indicates a rotation angle that is NaN or ±Inf.
	ErrBadAngle = errors.New("circuit: rotation angle is NaN or Inf")
)
