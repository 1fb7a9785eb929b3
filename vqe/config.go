// SPDX-License-Identifier: MIT
package vqe

import "fmt"

// Default problem shape.
const (
	DefaultQubits = 4
	DefaultLayers = 1
	DefaultShots  = 1000
)

// Config fixes the problem shape for every component of a run.
//
// Fields:
//   - Qubits: number of qubits, equal to the number of graph vertices.
//   - Layers: entangling layers after the initial rotation layer (≥ 0).
//   - Shots:  measurement samples per circuit evaluation (≥ 1).
//
// A Config is passed by value; nothing in this package keeps one globally.
type Config struct {
	Qubits int
	Layers int
	Shots  int
}

// DefaultConfig returns {Qubits: 4, Layers: 1, Shots: 1000}.
func DefaultConfig() Config {
	return Config{Qubits: DefaultQubits, Layers: DefaultLayers, Shots: DefaultShots}
}

// Validate reports ErrConfig for a shape no circuit can be built from.
func (c Config) Validate() error {
	switch {
	case c.Qubits < 1:
		return fmt.Errorf("Config.Validate: qubits=%d: %w", c.Qubits, ErrConfig)
	case c.Layers < 0:
		return fmt.Errorf("Config.Validate: layers=%d: %w", c.Layers, ErrConfig)
	case c.Shots < 1:
		return fmt.Errorf("Config.Validate: shots=%d: %w", c.Shots, ErrConfig)
	}

	return nil
}

// ParamCount is the ansatz angle count, (Layers+1)·Qubits.
func (c Config) ParamCount() int {
	return (c.Layers + 1) * c.Qubits
}
