package vqe_test

import (
	"fmt"

	"github.com/katalvlaran/vqecut/circuit"
	"github.com/katalvlaran/vqecut/matrix"
	"github.com/katalvlaran/vqecut/simulator"
	"github.com/katalvlaran/vqecut/vqe"
)

// ExampleBuildAnsatz shows the gate budget of the default ansatz.
func ExampleBuildAnsatz() {
	cfg := vqe.DefaultConfig()
	c, _ := vqe.BuildAnsatz(cfg, make([]float64, cfg.ParamCount()))
	n := c.CountOps()
	fmt.Println("ry", n[circuit.RY], "cz", n[circuit.CZ], "measure", n[circuit.Measure])

	// Output:
	// ry 8 cz 6 measure 4
}

// ExampleNewEstimator reduces a hand-made distribution on one edge.
func ExampleNewEstimator() {
	w, _ := matrix.FromRows([][]float64{{0, 1}, {1, 0}})
	counts := simulator.NewCounts(2)
	_ = counts.Add("01", 3)
	_ = counts.Add("00", 1)

	est, _ := vqe.NewEstimator(vqe.Config{Qubits: 2, Layers: 1, Shots: 4}, w, counts)
	ev, _ := est.ExpectedValue()
	p, _ := est.ProbabilityOfOptimal()
	fmt.Println(ev, p)

	// Output:
	// -0.75 0.75
}
