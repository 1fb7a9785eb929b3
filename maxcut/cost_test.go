// SPDX-License-Identifier: MIT
package maxcut_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vqecut/matrix"
	"github.com/katalvlaran/vqecut/maxcut"
)

// weights builds a Dense or fails the test.
func weights(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// k4 is the complete graph on four vertices with unit weights.
func k4(t testing.TB) *matrix.Dense {
	return weights(t, [][]float64{
		{0, 1, 1, 1},
		{1, 0, 1, 1},
		{1, 1, 0, 1},
		{1, 1, 1, 0},
	})
}

func TestSigma(t *testing.T) {
	s, err := maxcut.Sigma(0)
	require.NoError(t, err)
	assert.Equal(t, 1, s)
	s, err = maxcut.Sigma(1)
	require.NoError(t, err)
	assert.Equal(t, -1, s)
	_, err = maxcut.Sigma(2)
	assert.ErrorIs(t, err, maxcut.ErrInvalidSpin)
}

func TestDecodeBitstring_Reverses(t *testing.T) {
	spins, err := maxcut.DecodeBitstring("0011")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 0, 0}, spins)

	_, err = maxcut.DecodeBitstring("01x")
	assert.ErrorIs(t, err, maxcut.ErrInvalidSpin)
}

func TestTwoNodes(t *testing.T) {
	w := weights(t, [][]float64{{0, 1}, {1, 0}})

	off, err := maxcut.Offset(w)
	require.NoError(t, err)
	assert.Equal(t, -0.5, off)

	h, err := maxcut.CostHamiltonian([]int{0, 1}, w)
	require.NoError(t, err)
	assert.Equal(t, -0.5, h)

	e, err := maxcut.Energy("01", w)
	require.NoError(t, err)
	assert.Equal(t, -1.0, e)
	e, err = maxcut.Energy("11", w)
	require.NoError(t, err)
	assert.Equal(t, 0.0, e)
}

func TestEnergy_IsNegatedCut(t *testing.T) {
	w := weights(t, [][]float64{
		{0, 2, 0, 1},
		{2, 0, 3, 0},
		{0, 3, 0, 4},
		{1, 0, 4, 0},
	})
	for mask := 0; mask < 16; mask++ {
		bs := make([]byte, 4)
		x := make([]int, 4)
		for q := 0; q < 4; q++ {
			bit := (mask >> q) & 1
			x[q] = bit
			bs[3-q] = byte('0' + bit)
		}
		e, err := maxcut.Energy(string(bs), w)
		require.NoError(t, err)
		cut, err := maxcut.CutValue(x, w)
		require.NoError(t, err)
		assert.InDelta(t, -cut, e, 1e-12, string(bs))
	}
}

func TestEnergy_FlipSymmetry(t *testing.T) {
	w := k4(t)
	flip := map[byte]byte{'0': '1', '1': '0'}
	for _, s := range []string{"0000", "0101", "0011", "1110"} {
		f := make([]byte, len(s))
		for i := range f {
			f[i] = flip[s[i]]
		}
		a, err := maxcut.Energy(s, w)
		require.NoError(t, err)
		b, err := maxcut.Energy(string(f), w)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestShapeErrors(t *testing.T) {
	w := k4(t)
	_, err := maxcut.CostHamiltonian([]int{0, 1}, w)
	assert.ErrorIs(t, err, maxcut.ErrDimensionMismatch)
	_, err = maxcut.Energy("010", w)
	assert.ErrorIs(t, err, maxcut.ErrDimensionMismatch)
	_, err = maxcut.CostHamiltonian([]int{0, 1, 2, 0}, w)
	assert.ErrorIs(t, err, maxcut.ErrInvalidSpin)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = maxcut.Offset(rect)
	assert.ErrorIs(t, err, maxcut.ErrDimensionMismatch)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = maxcut.Offset(nil)
	assert.ErrorIs(t, err, maxcut.ErrDimensionMismatch)
}
