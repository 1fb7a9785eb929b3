// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodRandomGnm is the canonical name for the RandomGnm constructor.
	MethodRandomGnm = "RandomGnm"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts and Probability Bounds
//-----------------------------------------------------------------------------

// MinNodes is the smallest graph any constructor accepts.
const MinNodes = 1

// MinProbability is the lower bound for p in RandomSparse, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for p in RandomSparse, inclusive.
const MaxProbability = 1.0

//-----------------------------------------------------------------------------
// Edge-count rule
//-----------------------------------------------------------------------------

// DrawEdgeCount is the sentinel m for RandomGnm meaning "draw m uniformly
// from [EdgeFactorLow*n, EdgeFactorHigh*n)".
const DrawEdgeCount = -1

// EdgeFactorLow and EdgeFactorHigh bound the drawn edge count per vertex.
const (
	EdgeFactorLow  = 2
	EdgeFactorHigh = 3
)
