// SPDX-License-Identifier: MIT
package circuit

// Gate identifies the operation kind of an Op.
type Gate int

const (
	// RY is a single-qubit Y rotation by Op.Param radians.
	RY Gate = iota
	// CZ is the symmetric controlled-Z on Op.Qubits[0] and Op.Qubits[1].
	CZ
	// Barrier separates layers; it has no effect on the state.
	Barrier
	// Measure reads Op.Qubits[0] into classical bit Op.Clbit.
	Measure
)

// String returns the OpenQASM mnemonic of g.
func (g Gate) String() string {
	switch g {
	case RY:
		return "ry"
	case CZ:
		return "cz"
	case Barrier:
		return "barrier"
	case Measure:
		return "measure"
	default:
		return "unknown"
	}
}

// Op is one instruction of a Circuit.
type Op struct {
	Gate   Gate
	Qubits []int   // targets; empty for a full-width Barrier
	Param  float64 // rotation angle for RY
	Clbit  int     // destination bit for Measure
}

// Circuit is an ordered list of operations on NumQubits qubits and NumClbits
// classical bits. Build it with New and the gate methods; a built circuit is
// read-only by convention.
type Circuit struct {
	NumQubits int
	NumClbits int
	ops       []Op
}
