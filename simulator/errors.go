// SPDX-License-Identifier: MIT
// Package simulator: sentinel error set.

package simulator

import "errors"

var (
	// ErrNoShots indicates a non-positive shot budget.
	ErrNoShots = errors.New("simulator: shots must be > 0")

	// ErrTooManyQubits indicates the circuit exceeds the configured state-vector width.
	ErrTooManyQubits = errors.New("simulator: too many qubits")

	// ErrUnsupportedGate indicates an instruction the simulator cannot apply.
	ErrUnsupportedGate = errors.New("simulator: unsupported gate")

	// ErrMeasurement indicates the circuit does not measure every qubit into
	// the classical bit of the same index.
	ErrMeasurement = errors.New("simulator: circuit lacks a full measurement")

	// ErrNilCircuit indicates a nil *circuit.Circuit was passed to Run.
	ErrNilCircuit = errors.New("simulator: circuit is nil")

	// ErrBadBitstring indicates a key that is not a '0'/'1' string of the counts width,
	// or a negative count.
	ErrBadBitstring = errors.New("simulator: malformed bitstring")

	// ErrCountMismatch indicates counts that do not sum to the requested shots.
	ErrCountMismatch = errors.New("simulator: counts do not sum to shots")
)
