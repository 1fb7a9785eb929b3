// SPDX-License-Identifier: MIT
package simulator

import (
	"fmt"
	"sort"
)

// Counts is a measurement outcome distribution: fixed-width bitstrings
// (qubit N-1 first) mapped to non-negative shot counts. Keys iterate in
// ascending lexicographic order.
type Counts struct {
	width int
	m     map[string]int
	shots int
}

// NewCounts returns an empty distribution over width-bit strings.
func NewCounts(width int) *Counts {
	return &Counts{width: width, m: make(map[string]int)}
}

// Add records n more shots of bitstring s.
//
// Errors: ErrBadBitstring for a wrong width, a non-binary rune or n < 0.
func (c *Counts) Add(s string, n int) error {
	if n < 0 {
		return fmt.Errorf("Counts.Add(%q, %d): %w", s, n, ErrBadBitstring)
	}
	if len(s) != c.width {
		return fmt.Errorf("Counts.Add(%q): width %d, want %d: %w", s, len(s), c.width, ErrBadBitstring)
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return fmt.Errorf("Counts.Add(%q): %w", s, ErrBadBitstring)
		}
	}
	if n == 0 {
		return nil
	}
	c.m[s] += n
	c.shots += n

	return nil
}

// Get returns the count of s (0 when absent).
func (c *Counts) Get(s string) int { return c.m[s] }

// Keys returns the observed bitstrings in ascending order.
func (c *Counts) Keys() []string {
	keys := make([]string, 0, len(c.m))
	for k := range c.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Each calls fn for every observed bitstring in ascending order.
func (c *Counts) Each(fn func(bitstring string, count int)) {
	for _, k := range c.Keys() {
		fn(k, c.m[k])
	}
}

// Shots returns the total number of recorded shots.
func (c *Counts) Shots() int { return c.shots }

// Width returns the bitstring width.
func (c *Counts) Width() int { return c.width }

// Len returns the number of distinct bitstrings observed.
func (c *Counts) Len() int { return len(c.m) }

// MostFrequent returns the most observed bitstring; ties go to the smaller key.
func (c *Counts) MostFrequent() (string, int) {
	var best string
	bestN := -1
	for _, k := range c.Keys() {
		if n := c.m[k]; n > bestN {
			best, bestN = k, n
		}
	}
	if bestN < 0 {
		return "", 0
	}

	return best, bestN
}

// Validate checks that the counts sum to shots.
func (c *Counts) Validate(shots int) error {
	if c.shots != shots {
		return fmt.Errorf("Counts.Validate: got %d, want %d: %w", c.shots, shots, ErrCountMismatch)
	}

	return nil
}
