// Package topology defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package topology

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodBarabasiAlbert is the canonical name for the BarabasiAlbert constructor.
	MethodBarabasiAlbert = "BarabasiAlbert"
	// MethodWattsStrogatz is the canonical name for the WattsStrogatz constructor.
	MethodWattsStrogatz = "WattsStrogatz"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinGridDim is the smallest allowed dimension (rows or cols) for a 2D Grid.
// A grid of size 1×1 has no edges, but is considered valid.
const MinGridDim = 1

// MinBAAttachment is the smallest allowed attachment count m for BarabasiAlbert.
const MinBAAttachment = 1

// MinWSNeighbors is the smallest allowed ring-neighbor count k for
// WattsStrogatz (k/2 on each side); k must also be even so the ring
// lattice is symmetric.
const MinWSNeighbors = 2

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the lower bound for probability parameters (RandomSparse's
// p, WattsStrogatz's rewiring beta), inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for probability parameters, inclusive.
const MaxProbability = 1.0
