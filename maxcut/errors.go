// SPDX-License-Identifier: MIT
// Package maxcut: sentinel error set.

package maxcut

import "errors"

var (
	// ErrInvalidSpin indicates a spin value other than 0/1 (or a bitstring rune
	// other than '0'/'1').
	ErrInvalidSpin = errors.New("maxcut: invalid spin value")

	// ErrDimensionMismatch indicates a non-square weight matrix, or a spin
	// vector/bitstring whose length differs from the matrix order.
	ErrDimensionMismatch = errors.New("maxcut: dimension mismatch")

	// ErrTooManyNodes indicates a graph too large for exhaustive enumeration.
	ErrTooManyNodes = errors.New("maxcut: too many nodes for brute force")
)
