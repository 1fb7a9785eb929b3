// SPDX-License-Identifier: MIT
package circuit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vqecut/circuit"
)

func TestNew(t *testing.T) {
	_, err := circuit.New(0)
	assert.ErrorIs(t, err, circuit.ErrBadQubitCount)

	c, err := circuit.New(3)
	require.NoError(t, err)
	assert.Equal(t, 3, c.NumQubits)
	assert.Equal(t, 3, c.NumClbits)
	assert.Equal(t, 0, c.Len())
}

func TestGateErrors(t *testing.T) {
	c, err := circuit.New(2)
	require.NoError(t, err)

	assert.ErrorIs(t, c.RY(math.NaN(), 0), circuit.ErrBadAngle)
	assert.ErrorIs(t, c.RY(math.Inf(-1), 0), circuit.ErrBadAngle)
	assert.ErrorIs(t, c.RY(1, 2), circuit.ErrQubitOutOfRange)
	assert.ErrorIs(t, c.CZ(0, 5), circuit.ErrQubitOutOfRange)
	assert.ErrorIs(t, c.CZ(1, 1), circuit.ErrSameQubit)
	assert.Equal(t, 0, c.Len(), "failed gates must not be appended")
}

func TestCountOpsAndMeasured(t *testing.T) {
	c, err := circuit.New(2)
	require.NoError(t, err)
	require.NoError(t, c.RY(0.5, 0))
	require.NoError(t, c.RY(-7.25, 1))
	require.NoError(t, c.CZ(0, 1))
	c.Barrier()
	assert.False(t, c.Measured())
	c.MeasureAll()
	assert.True(t, c.Measured())
	require.NoError(t, c.Validate())

	counts := c.CountOps()
	assert.Equal(t, 2, counts[circuit.RY])
	assert.Equal(t, 1, counts[circuit.CZ])
	assert.Equal(t, 1, counts[circuit.Barrier])
	assert.Equal(t, 2, counts[circuit.Measure])

	ops := c.Ops()
	ops[0].Param = 99
	assert.Equal(t, 0.5, c.Ops()[0].Param, "Ops returns a copy")
}

func TestValidate_HandBuilt(t *testing.T) {
	c := &circuit.Circuit{}
	assert.ErrorIs(t, c.Validate(), circuit.ErrBadQubitCount)
}

func TestGateString(t *testing.T) {
	assert.Equal(t, "ry", circuit.RY.String())
	assert.Equal(t, "cz", circuit.CZ.String())
	assert.Equal(t, "barrier", circuit.Barrier.String())
	assert.Equal(t, "measure", circuit.Measure.String())
	assert.Equal(t, "unknown", circuit.Gate(42).String())
}
