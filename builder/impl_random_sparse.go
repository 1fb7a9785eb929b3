// SPDX-License-Identifier: MIT
// Package: vqecut/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model: Erdős–Rényi G(n, p); include each unordered pair {i,j}, i<j,
// independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//
// Determinism:
//   - Stable edge-trial order: for each i asc, j asc (j>i).

package builder

import (
	"fmt"

	"github.com/katalvlaran/vqecut/core"
)

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomSparse, n, MinNodes, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		ids, err := addVertices(g, cfg, MethodRandomSparse, n)
		if err != nil {
			return err
		}

		useWeight := g.Weighted()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var keep bool
				switch p {
				case MinProbability:
					keep = false
				case MaxProbability:
					keep = true
				default:
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err = addEdge(g, MethodRandomSparse, ids[i], ids[j], cfg.edgeWeight(useWeight)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
