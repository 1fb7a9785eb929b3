// SPDX-License-Identifier: MIT
// Package: vqecut/builder
//
// impl_random_gnm.go - implementation of RandomGnm(n, m) constructor.
//
// Model: Erdős–Rényi G(n, m), uniform over simple graphs with exactly m edges,
// sampled by gonum's Batagelj–Brandes generator on a simple.UndirectedGraph
// and then copied into the core graph.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - m == DrawEdgeCount: m is drawn uniformly from [2n, 3n) using cfg.rng.
//     Any other m < 0 is ErrTooFewVertices.
//   - m ≥ C(n,2): the complete graph K_n is emitted; no randomness is needed.
//   - 0 < m < C(n,2): cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Determinism:
//   - gonum nodes are mapped to vertex indices by ascending node ID.
//   - Edges are emitted sorted by (i, j), i<j, so edge IDs do not depend on
//     gonum's internal map iteration order.
//
// Complexity:
//   - Time: O(n + m log m) expected. Space: O(n + m).

package builder

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/graphs/gen"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/vqecut/core"
)

// RandomGnm returns a Constructor that samples G(n, m).
func RandomGnm(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomGnm, n, MinNodes, ErrTooFewVertices)
		}
		if m < 0 && m != DrawEdgeCount {
			return fmt.Errorf("%s: m=%d < 0: %w", MethodRandomGnm, m, ErrTooFewVertices)
		}

		if m == DrawEdgeCount {
			if cfg.rng == nil {
				return fmt.Errorf("%s: drawing m: %w", MethodRandomGnm, ErrNeedRandSource)
			}
			m = EdgeFactorLow*n + cfg.rng.IntN((EdgeFactorHigh-EdgeFactorLow)*n)
		}

		if m >= MaxEdges(n) {
			return Complete(n)(g, cfg)
		}
		if m > 0 && cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomGnm, ErrNeedRandSource)
		}

		// A nil *rand.Rand must not reach gen as a non-nil interface.
		var src rand.Source
		if cfg.rng != nil {
			src = cfg.rng
		}
		sg := simple.NewUndirectedGraph()
		if err := gen.Gnm(sg, n, m, src); err != nil {
			return fmt.Errorf("%s: %v: %w", MethodRandomGnm, err, ErrConstructFailed)
		}

		// Map gonum node IDs onto 0..n-1.
		nodes := graph.NodesOf(sg.Nodes())
		sort.Slice(nodes, func(a, b int) bool { return nodes[a].ID() < nodes[b].ID() })
		index := make(map[int64]int, len(nodes))
		for i, nd := range nodes {
			index[nd.ID()] = i
		}

		ids, err := addVertices(g, cfg, MethodRandomGnm, n)
		if err != nil {
			return err
		}

		type pair struct{ i, j int }
		edges := graph.EdgesOf(sg.Edges())
		pairs := make([]pair, 0, len(edges))
		for _, e := range edges {
			i, j := index[e.From().ID()], index[e.To().ID()]
			if i > j {
				i, j = j, i
			}
			pairs = append(pairs, pair{i, j})
		}
		sort.Slice(pairs, func(a, b int) bool {
			if pairs[a].i != pairs[b].i {
				return pairs[a].i < pairs[b].i
			}
			return pairs[a].j < pairs[b].j
		})

		useWeight := g.Weighted()
		for _, p := range pairs {
			if err = addEdge(g, MethodRandomGnm, ids[p.i], ids[p.j], cfg.edgeWeight(useWeight)); err != nil {
				return err
			}
		}

		return nil
	}
}
