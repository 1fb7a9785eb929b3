// SPDX-License-Identifier: MIT
package vqe_test

import (
	"context"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/katalvlaran/vqecut/builder"
	"github.com/katalvlaran/vqecut/matrix"
	"github.com/katalvlaran/vqecut/simulator"
	"github.com/katalvlaran/vqecut/vqe"
)

func TestScenario_DefaultInstance(t *testing.T) {
	Convey("Given the default four-vertex instance", t, func() {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(10)},
			builder.RandomGnm(vqe.DefaultQubits, builder.DrawEdgeCount))
		So(err, ShouldBeNil)
		w, err := matrix.NewWeightMatrix(g)
		So(err, ShouldBeNil)
		So(w.Size(), ShouldEqual, 4)

		Convey("When VQE runs with fixed seeds", func() {
			rep, err := vqe.Run(context.Background(), w,
				vqe.WithSimulator(simulator.NewSampler(simulator.WithSeed(7))),
				vqe.WithSeed(7),
			)
			So(err, ShouldBeNil)

			Convey("The brute-force optimum is the K4 cut", func() {
				So(rep.BestCost, ShouldEqual, 4.0)
			})

			Convey("The VQE value is a cut value no better than the optimum", func() {
				So(rep.Expectation, ShouldBeBetweenOrEqual, 0, rep.BestCost)
				So(rep.ProbabilityOfOptimal, ShouldBeBetweenOrEqual, 0, 1)
			})

			Convey("The angles keep the ansatz shape", func() {
				So(rep.OptimalAngles, ShouldHaveLength, 8)
				So(rep.InitialAngles, ShouldHaveLength, 8)
				for _, x := range rep.InitialAngles {
					So(x, ShouldBeBetweenOrEqual, 0, 2*math.Pi)
				}
			})

			Convey("A second run with the same seeds agrees", func() {
				again, err := vqe.Run(context.Background(), w,
					vqe.WithSimulator(simulator.NewSampler(simulator.WithSeed(7))),
					vqe.WithSeed(7),
				)
				So(err, ShouldBeNil)
				So(again.BestCost, ShouldEqual, rep.BestCost)
				So(again.Expectation, ShouldEqual, rep.Expectation)
			})
		})
	})
}

func TestScenario_Estimator(t *testing.T) {
	Convey("Given an estimator over a sampled K4 distribution", t, func() {
		cfg := vqe.DefaultConfig()
		thetas := []float64{1, 2, 3, 4, 5, 6, 0.5, 1.5}
		est, err := vqe.New(context.Background(), cfg, k4(t), thetas, simulator.NewSampler(simulator.WithSeed(21)))
		So(err, ShouldBeNil)

		Convey("Every shot has an energy and the list is sorted", func() {
			exact, err := est.ExactCounts()
			So(err, ShouldBeNil)
			So(exact, ShouldHaveLength, cfg.Shots)
			for i := 1; i < len(exact); i++ {
				So(exact[i-1], ShouldBeLessThanOrEqualTo, exact[i])
			}
		})

		Convey("The expected value matches the mean of the shot energies", func() {
			ev, err := est.ExpectedValue()
			So(err, ShouldBeNil)
			st, err := est.Stats()
			So(err, ShouldBeNil)
			So(ev, ShouldAlmostEqual, st.Mean, 1e-9)
			So(ev, ShouldBeBetweenOrEqual, st.Min, st.Max)
			So(st.Min, ShouldBeGreaterThanOrEqualTo, -4)
			So(st.Max, ShouldBeLessThanOrEqualTo, 0)
		})
	})
}
