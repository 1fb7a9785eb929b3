// SPDX-License-Identifier: MIT
package maxcut_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vqecut/maxcut"
)

func TestLocalSearch_ReachesOptimumOnSmallGraphs(t *testing.T) {
	res, err := maxcut.LocalSearch(k4(t), nil)
	require.NoError(t, err)
	assert.Equal(t, 4.0, res.Best)

	cut, err := maxcut.CutValue(res.Assignment, k4(t))
	require.NoError(t, err)
	assert.Equal(t, res.Best, cut)

	// Path 0-1-2: alternating sides is both local and global optimum.
	path := weights(t, [][]float64{{0, 5, 0}, {5, 0, 1}, {0, 1, 0}})
	res, err = maxcut.LocalSearch(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 6.0, res.Best)
}

func TestLocalSearch_NeverBeatsBruteForce(t *testing.T) {
	w := weights(t, [][]float64{
		{0, 3, 1, 0, 2},
		{3, 0, 0, 4, 0},
		{1, 0, 0, 1, 5},
		{0, 4, 1, 0, 1},
		{2, 0, 5, 1, 0},
	})
	best, err := maxcut.BestCostBrute(w)
	require.NoError(t, err)

	for mask := 0; mask < 32; mask++ {
		x0 := make([]int, 5)
		for i := range x0 {
			x0[i] = (mask >> i) & 1
		}
		start, err := maxcut.CutValue(x0, w)
		require.NoError(t, err)

		res, err := maxcut.LocalSearch(w, x0)
		require.NoError(t, err)
		assert.LessOrEqual(t, res.Best, best)
		assert.GreaterOrEqual(t, res.Best, start)
	}
}

func TestLocalSearch_Errors(t *testing.T) {
	_, err := maxcut.LocalSearch(k4(t), []int{0, 1})
	assert.ErrorIs(t, err, maxcut.ErrDimensionMismatch)
	_, err = maxcut.LocalSearch(k4(t), []int{0, 1, 2, 0})
	assert.ErrorIs(t, err, maxcut.ErrInvalidSpin)
	_, err = maxcut.LocalSearch(nil, nil)
	assert.ErrorIs(t, err, maxcut.ErrDimensionMismatch)
}
