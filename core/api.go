// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// Weighted reports whether the graph accepts non-zero edge weights.
//
// Returns:
//   - true if the Graph was created with WithWeighted().
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - For unweighted graphs Weight(u, v) reports 1 for every existing edge.
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	// TotalWeight is Σ of effective edge weights (1 per edge when unweighted).
	// For a Max-Cut instance it is the value of cutting every edge.
	TotalWeight float64
	Weighted    bool
}

// Stats returns a GraphStats snapshot.
//
// Implementation:
//   - Stage 1: Read flags and vertex count under muVert.
//   - Stage 2: Sum weights under muEdgeAdj.
//
// Complexity:
//   - Time O(E), Space O(1).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	s := &GraphStats{VertexCount: len(g.vertices), Weighted: g.weighted}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	s.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		if s.Weighted {
			s.TotalWeight += e.Weight
		} else {
			s.TotalWeight++
		}
	}

	return s
}
