// SPDX-License-Identifier: MIT
// Package vqe solves weighted Max-Cut with a variational quantum eigensolver.
//
// A run has three moving parts:
//
//   - BuildAnsatz lays out RY rotations and all-pairs CZ layers for an angle
//     vector; Evaluate samples it once on a simulator.Simulator.
//   - Estimator turns the measured counts into the expected energy and
//     related diagnostics. The energy of a bitstring is the negated cut value,
//     so minimizing it maximizes the cut.
//   - A Minimizer (NelderMead by default) drives the angles.
//
// Run ties them together and reports the exhaustive optimum next to the
// value VQE reached:
//
//	rep, err := vqe.Run(ctx, w, vqe.WithSeed(7))
//	if err != nil {
//	  // handle ErrConfig, ErrSizeMismatch, simulator errors
//	}
//	fmt.Println(rep.BestCost, rep.Expectation)
//
// Config is passed explicitly everywhere. Every objective call builds a new
// circuit and a new Estimator, so evaluations share no state.
package vqe
