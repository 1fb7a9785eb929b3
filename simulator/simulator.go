// SPDX-License-Identifier: MIT
package simulator

import (
	"context"

	"github.com/katalvlaran/vqecut/circuit"
)

// Simulator executes a measured circuit and returns the shot distribution.
// Implementations must return Counts whose Shots() equals shots.
type Simulator interface {
	Run(ctx context.Context, c *circuit.Circuit, shots int) (*Counts, error)
}

const (
	// DefaultMaxQubits bounds the register a Sampler accepts unless WithMaxQubits is set.
	DefaultMaxQubits = 20

	// HardMaxQubits is the widest state vector this package allocates.
	HardMaxQubits = 28

	// ctxCheckEvery is the number of shots drawn between context checks.
	ctxCheckEvery = 1024
)
