// SPDX-License-Identifier: MIT
// Package circuit describes gate-model quantum circuits built from the small
// gate set the Max-Cut ansatz needs: RY rotations, CZ entanglers, barriers and
// computational-basis measurement.
//
// A Circuit is a plain instruction list; it does not simulate anything.
// Simulators consume Ops(). QASM() renders OpenQASM 2.0 for inspection.
package circuit
