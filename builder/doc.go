// Package builder provides reusable “functional‐options”‐style graph
// constructors for Max-Cut instances. It lives alongside the core and matrix
// packages to centralize ID schemes, weight distributions and seeding.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): creates a core.Graph and applies
//     Constructors in order.
//   - Constructors:
//     – RandomGnm(n, m):   Erdős–Rényi G(n, m) via gonum graph/graphs/gen.
//     Pass DrawEdgeCount to draw m from [2n, 3n); m ≥ C(n,2) yields K_n.
//     – RandomSparse(n, p): Erdős–Rényi G(n, p) Bernoulli trials.
//     – Complete(n):       K_n.
//   - Configuration primitives:
//     – WithSeed / WithRand: math/rand/v2 generators for stochastic builders.
//     – WithIDScheme:      vertex naming (DefaultIDFn, SymbolIDFn, SymbolNumberIDFn).
//     – WithWeightFn:      edge weights (DefaultWeightFn, ConstantWeightFn, UniformWeightFn).
//
// Guarantees:
//
//   - Vertices are added in index order, so with DefaultIDFn vertex "i" is
//     row i of the weight matrix and qubit i of the ansatz.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Sentinel runtime errors for invalid build parameters, wrapped with the
//     constructor name.
//   - Same seed, options and constructor order ⇒ identical graphs.
package builder
