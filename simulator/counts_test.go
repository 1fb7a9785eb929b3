// SPDX-License-Identifier: MIT
package simulator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vqecut/simulator"
)

func TestCounts(t *testing.T) {
	c := simulator.NewCounts(2)
	require.NoError(t, c.Add("10", 3))
	require.NoError(t, c.Add("01", 5))
	require.NoError(t, c.Add("10", 2))
	require.NoError(t, c.Add("11", 0))

	assert.Equal(t, []string{"01", "10"}, c.Keys())
	assert.Equal(t, 5, c.Get("10"))
	assert.Equal(t, 0, c.Get("11"))
	assert.Equal(t, 10, c.Shots())
	assert.Equal(t, 2, c.Len())

	var seen []string
	c.Each(func(s string, n int) { seen = append(seen, s) })
	assert.Equal(t, []string{"01", "10"}, seen)

	best, n := c.MostFrequent()
	assert.Equal(t, "01", best)
	assert.Equal(t, 5, n)

	require.NoError(t, c.Validate(10))
	assert.ErrorIs(t, c.Validate(11), simulator.ErrCountMismatch)
}

func TestCounts_AddErrors(t *testing.T) {
	c := simulator.NewCounts(3)
	assert.ErrorIs(t, c.Add("01", 1), simulator.ErrBadBitstring)
	assert.ErrorIs(t, c.Add("012", 1), simulator.ErrBadBitstring)
	assert.ErrorIs(t, c.Add("010", -1), simulator.ErrBadBitstring)
	assert.Equal(t, 0, c.Shots())

	best, n := c.MostFrequent()
	assert.Equal(t, "", best)
	assert.Equal(t, 0, n)
}
