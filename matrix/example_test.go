package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/vqecut/core"
	"github.com/katalvlaran/vqecut/matrix"
)

// ExampleNewWeightMatrix builds the weight matrix of a triangle.
func ExampleNewWeightMatrix() {
	g := core.NewGraph()
	_, _ = g.AddEdge("0", "1", 0)
	_, _ = g.AddEdge("1", "2", 0)
	_, _ = g.AddEdge("2", "0", 0)

	wm, _ := matrix.NewWeightMatrix(g)
	fmt.Print(wm.Dense)
	fmt.Println(matrix.ValidateWeights(wm) == nil)

	// Output:
	// [0, 1, 1]
	// [1, 0, 1]
	// [1, 1, 0]
	// true
}
