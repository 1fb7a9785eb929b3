// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/vqecut/core"
)

// BenchmarkAddEdge_Unweighted measures performance of adding edges
// in an unweighted graph (default configuration).
func BenchmarkAddEdge_Unweighted(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge("Root", fmt.Sprintf("N%d", i), 0)
	}
}

// BenchmarkAddEdge_Weighted measures performance of adding edges
// in a weighted graph (non-zero weights allowed).
func BenchmarkAddEdge_Weighted(b *testing.B) {
	g := core.NewGraph(core.WithWeighted())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge("Root", fmt.Sprintf("N%d", i), float64(i%7)+1)
	}
}

// BenchmarkNeighborIDs measures neighbor lookup in a star topology.
func BenchmarkNeighborIDs(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 1000; i++ {
		_, _ = g.AddEdge("Center", fmt.Sprintf("Node%d", i), 0)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.NeighborIDs("Center")
	}
}
