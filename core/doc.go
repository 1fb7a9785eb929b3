// SPDX-License-Identifier: MIT
// Package core provides a small, thread-safe in-memory Graph used to describe
// Max-Cut instances.
//
// The Graph G = (V,E) is always simple and undirected:
//
//   - No self-loops (ErrLoopNotAllowed); a cut never separates a vertex from itself.
//   - No parallel edges (ErrMultiEdgeNotAllowed); one coupling per vertex pair.
//   - Weighted vs. unweighted edges (WithWeighted). Unweighted edges are added
//     with weight 0 and report an effective weight of 1.
//   - Atomic Edge.ID generation ("e1", "e2", …).
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj).
//
// Determinism:
//
//   - Vertices() returns IDs in insertion order, which defines the row order of
//     the weight matrix and therefore the qubit index of every vertex.
//   - Edges() returns edges in creation order.
//   - NeighborIDs() returns sorted IDs.
//
// Example:
//
//	g := core.NewGraph(core.WithWeighted())
//	_, _ = g.AddEdge("0", "1", 2.5)
//	w, _ := g.Weight("1", "0") // 2.5
//
// Errors are sentinel values; compare with errors.Is.
package core
