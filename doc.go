// SPDX-License-Identifier: MIT
// Package vqecut solves weighted Max-Cut with a toy variational quantum
// eigensolver and checks the answer against exhaustive search.
//
// Subpackages:
//
//	core/      - thread-safe simple undirected Graph (vertices, weighted edges)
//	builder/   - seeded graph constructors: Complete, RandomSparse, RandomGnm
//	matrix/    - dense weight matrices, validators, Graph ↔ matrix conversion
//	maxcut/    - Ising cost, bitstring energy, brute-force oracle, local search
//	circuit/   - RY/CZ/barrier/measure circuits with OpenQASM 2.0 output
//	simulator/ - state-vector evolution and shot sampling
//	vqe/       - ansatz, estimator, Nelder–Mead loop and the Run driver
//	config/    - YAML run file for cmd/vqe-maxcut
//
// Quick sketch:
//
//	g, _ := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(10)},
//		builder.RandomGnm(4, builder.DrawEdgeCount))
//	w, _ := matrix.NewWeightMatrix(g)
//	rep, _ := vqe.Run(ctx, w, vqe.WithSeed(7))
//	fmt.Println(rep.BestCost, rep.Expectation)
//
//	go install github.com/katalvlaran/vqecut/cmd/vqe-maxcut@latest
package vqecut
