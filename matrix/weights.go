// SPDX-License-Identifier: MIT
package matrix

import (
	"fmt"

	"github.com/katalvlaran/vqecut/core"
)

// WeightMatrix is the dense N×N coupling matrix of a graph.
//
// Description:
//
//	Row/column i corresponds to the i-th vertex of g.Vertices() (insertion
//	order), which is also the qubit index of that vertex. Entry (i,j) holds
//	the effective weight of edge {i,j}, or zero if none.
//
// Algorithm NewWeightMatrix:
//  1. Build Index map: vertex ID → row/col index.
//  2. Allocate an N×N zero Dense.
//  3. For every edge set both (i,j) and (j,i) to g.Weight(from, to).
//
// Time complexity: O(V² + E). Memory: O(V²).
type WeightMatrix struct {
	*Dense

	// Index maps vertex ID → row/column index.
	Index map[string]int

	// IDs lists vertex IDs by row index.
	IDs []string
}

// NewWeightMatrix builds a WeightMatrix from g.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrInvalidDimensions if g has no vertices.
func NewWeightMatrix(g *core.Graph) (*WeightMatrix, error) {
	if g == nil {
		return nil, fmt.Errorf("NewWeightMatrix: %w", ErrGraphNil)
	}
	ids := g.Vertices()
	d, err := NewDense(len(ids), len(ids))
	if err != nil {
		return nil, fmt.Errorf("NewWeightMatrix: %w", err)
	}

	idx := make(map[string]int, len(ids))
	for i, id := range ids {
		idx[id] = i
	}

	for _, e := range g.Edges() {
		w, err := g.Weight(e.From, e.To)
		if err != nil {
			return nil, fmt.Errorf("NewWeightMatrix: edge %s: %w", e.ID, err)
		}
		i, j := idx[e.From], idx[e.To]
		d.data[i*d.c+j] = w
		d.data[j*d.c+i] = w
	}

	return &WeightMatrix{Dense: d, Index: idx, IDs: ids}, nil
}

// Weight returns the coupling between two vertex IDs.
//
// Errors: ErrUnknownVertex if either ID is not indexed.
// Complexity: O(1).
func (m *WeightMatrix) Weight(fromID, toID string) (float64, error) {
	i, ok := m.Index[fromID]
	if !ok {
		return 0, fmt.Errorf("WeightMatrix.Weight(%q): %w", fromID, ErrUnknownVertex)
	}
	j, ok := m.Index[toID]
	if !ok {
		return 0, fmt.Errorf("WeightMatrix.Weight(%q): %w", toID, ErrUnknownVertex)
	}

	return m.Dense.At(i, j)
}

// Size returns the number of vertices N.
func (m *WeightMatrix) Size() int { return len(m.IDs) }

// ToGraph reconstructs a weighted *core.Graph from the matrix, adding
// vertices in row order and one edge per non-zero upper-triangle entry.
//
// Complexity: O(V²).
func (m *WeightMatrix) ToGraph() (*core.Graph, error) {
	return GraphFromDense(m.Dense, m.IDs)
}

// GraphFromDense builds a weighted graph from a square weight matrix.
// ids names row i; when nil, rows are named "0".."n-1".
//
// Errors: validation errors from ValidateWeights, ErrDimensionMismatch
// if len(ids) != n, and core errors from AddEdge.
func GraphFromDense(d Matrix, ids []string) (*core.Graph, error) {
	if err := ValidateWeights(d); err != nil {
		return nil, fmt.Errorf("GraphFromDense: %w", err)
	}
	n := d.Rows()
	if ids == nil {
		ids = make([]string, n)
		for i := range ids {
			ids[i] = fmt.Sprint(i)
		}
	}
	if len(ids) != n {
		return nil, fmt.Errorf("GraphFromDense: %d ids for %d rows: %w", len(ids), n, ErrDimensionMismatch)
	}

	g := core.NewGraph(core.WithWeighted())
	for _, id := range ids {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("GraphFromDense: %w", err)
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w, _ := d.At(i, j)
			if w == 0 {
				continue
			}
			if _, err := g.AddEdge(ids[i], ids[j], w); err != nil {
				return nil, fmt.Errorf("GraphFromDense: %w", err)
			}
		}
	}

	return g, nil
}
