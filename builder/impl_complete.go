// SPDX-License-Identifier: MIT
// Package: vqecut/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits each unordered pair {i,j} with i<j exactly once.
//   • Weight policy: if g.Weighted() then cfg.weightFn(cfg.rng) else 0.
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges emission.
//   • Space: O(n) extra for the precomputed ID slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vqecut/core"
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinNodes, ErrTooFewVertices)
		}

		ids, err := addVertices(g, cfg, MethodComplete, n)
		if err != nil {
			return err
		}

		useWeight := g.Weighted()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(g, MethodComplete, ids[i], ids[j], cfg.edgeWeight(useWeight)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// addVertices inserts n vertices named by cfg.idFn in index order and returns their IDs.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// addEdge wraps core.AddEdge with method context.
func addEdge(g *core.Graph, method, u, v string, w float64) error {
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}
