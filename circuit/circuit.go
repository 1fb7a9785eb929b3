// SPDX-License-Identifier: MIT
package circuit

import (
	"fmt"
	"math"
	"strings"
)

// New returns an empty circuit with n qubits and n classical bits.
//
// Errors: ErrBadQubitCount if n < 1.
func New(n int) (*Circuit, error) {
	if n < 1 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrBadQubitCount)
	}

	return &Circuit{NumQubits: n, NumClbits: n}, nil
}

func (c *Circuit) checkQubit(method string, q int) error {
	if q < 0 || q >= c.NumQubits {
		return fmt.Errorf("%s: qubit %d of %d: %w", method, q, c.NumQubits, ErrQubitOutOfRange)
	}

	return nil
}

// RY appends a Y rotation by theta radians on qubit q.
//
// Errors: ErrBadAngle, ErrQubitOutOfRange.
func (c *Circuit) RY(theta float64, q int) error {
	if math.IsNaN(theta) || math.IsInf(theta, 0) {
		return fmt.Errorf("RY: %w", ErrBadAngle)
	}
	if err := c.checkQubit("RY", q); err != nil {
		return err
	}
	c.ops = append(c.ops, Op{Gate: RY, Qubits: []int{q}, Param: theta})

	return nil
}

// CZ appends a controlled-Z between qubits a and b.
//
// Errors: ErrQubitOutOfRange, ErrSameQubit.
func (c *Circuit) CZ(a, b int) error {
	if err := c.checkQubit("CZ", a); err != nil {
		return err
	}
	if err := c.checkQubit("CZ", b); err != nil {
		return err
	}
	if a == b {
		return fmt.Errorf("CZ(%d,%d): %w", a, b, ErrSameQubit)
	}
	c.ops = append(c.ops, Op{Gate: CZ, Qubits: []int{a, b}})

	return nil
}

// Barrier appends a full-width barrier.
func (c *Circuit) Barrier() {
	c.ops = append(c.ops, Op{Gate: Barrier})
}

// MeasureAll appends Measure(q → c_q) for every qubit in ascending order.
func (c *Circuit) MeasureAll() {
	for q := 0; q < c.NumQubits; q++ {
		c.ops = append(c.ops, Op{Gate: Measure, Qubits: []int{q}, Clbit: q})
	}
}

// Ops returns a copy of the instruction list.
func (c *Circuit) Ops() []Op {
	out := make([]Op, len(c.ops))
	copy(out, c.ops)

	return out
}

// Len returns the number of instructions.
func (c *Circuit) Len() int { return len(c.ops) }

// CountOps returns the number of instructions per gate kind.
func (c *Circuit) CountOps() map[Gate]int {
	counts := make(map[Gate]int, 4)
	for _, op := range c.ops {
		counts[op.Gate]++
	}

	return counts
}

// Measured reports whether every qubit is measured into the classical bit
// of the same index.
func (c *Circuit) Measured() bool {
	if c.NumQubits < 1 {
		return false
	}
	seen := make([]bool, c.NumQubits)
	for _, op := range c.ops {
		if op.Gate != Measure || len(op.Qubits) != 1 {
			continue
		}
		if q := op.Qubits[0]; q >= 0 && q < c.NumQubits && op.Clbit == q {
			seen[q] = true
		}
	}
	for _, ok := range seen {
		if !ok {
			return false
		}
	}

	return true
}

// Validate re-checks every instruction against the circuit width. Circuits
// built through the gate methods always pass; the check guards hand-built values.
func (c *Circuit) Validate() error {
	if c.NumQubits < 1 {
		return fmt.Errorf("Validate: %w", ErrBadQubitCount)
	}
	for i, op := range c.ops {
		for _, q := range op.Qubits {
			if q < 0 || q >= c.NumQubits {
				return fmt.Errorf("Validate: op %d (%s): %w", i, op.Gate, ErrQubitOutOfRange)
			}
		}
		switch op.Gate {
		case RY:
			if len(op.Qubits) != 1 {
				return fmt.Errorf("Validate: op %d (ry): %w", i, ErrQubitOutOfRange)
			}
			if math.IsNaN(op.Param) || math.IsInf(op.Param, 0) {
				return fmt.Errorf("Validate: op %d (ry): %w", i, ErrBadAngle)
			}
		case CZ:
			if len(op.Qubits) != 2 {
				return fmt.Errorf("Validate: op %d (cz): %w", i, ErrQubitOutOfRange)
			}
			if op.Qubits[0] == op.Qubits[1] {
				return fmt.Errorf("Validate: op %d (cz): %w", i, ErrSameQubit)
			}
		case Measure:
			if len(op.Qubits) != 1 || op.Clbit < 0 || op.Clbit >= c.NumClbits {
				return fmt.Errorf("Validate: op %d (measure): %w", i, ErrQubitOutOfRange)
			}
		}
	}

	return nil
}

// QASM renders the circuit as OpenQASM 2.0 text.
func (c *Circuit) QASM() string {
	var sb strings.Builder

	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", c.NumQubits)
	fmt.Fprintf(&sb, "creg c[%d];\n", c.NumClbits)

	for _, op := range c.ops {
		switch op.Gate {
		case RY:
			fmt.Fprintf(&sb, "ry(%.17g) q[%d];\n", op.Param, op.Qubits[0])
		case CZ:
			fmt.Fprintf(&sb, "cz q[%d],q[%d];\n", op.Qubits[0], op.Qubits[1])
		case Barrier:
			qs := make([]string, c.NumQubits)
			for q := range qs {
				qs[q] = fmt.Sprintf("q[%d]", q)
			}
			fmt.Fprintf(&sb, "barrier %s;\n", strings.Join(qs, ","))
		case Measure:
			fmt.Fprintf(&sb, "measure q[%d] -> c[%d];\n", op.Qubits[0], op.Clbit)
		}
	}

	return sb.String()
}
