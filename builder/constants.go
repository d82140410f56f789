// Package builder defines shared constants used by graph builders, ensuring
// consistent validation across all topology constructors.
package builder

// Canonical constructor names, used to prefix errors.
const (
	MethodEmpty             = "Empty"
	MethodPath              = "Path"
	MethodCycle             = "Cycle"
	MethodStar              = "Star"
	MethodComplete          = "Complete"
	MethodRandomSparse      = "RandomSparse"
	MethodBoundedDegree     = "BoundedDegree"
	MethodWheel             = "Wheel"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodGrid              = "Grid"
	MethodRandomRegular     = "RandomRegular"
)

// Minimum node counts.
const (
	// MinCycleNodes: fewer than 3 nodes cannot form a simple ring.
	MinCycleNodes = 3
	// MinPathNodes: a path of fewer than 2 nodes has no edges.
	MinPathNodes = 2
	// MinStarNodes: one center plus at least one leaf.
	MinStarNodes = 2
	// MinWheelNodes: the rim (n-1) must itself be a cycle.
	MinWheelNodes = 4
	// MinPartitionSize: each side of a bipartite graph is non-empty.
	MinPartitionSize = 1
	// MinGridDim: smallest grid side.
	MinGridDim = 1
	// MinNodes is the lower bound for every other constructor.
	MinNodes = 1
)

// MaxStubMatchingAttempts bounds the reshuffles of RandomRegular.
const MaxStubMatchingAttempts = 50

// Probability bounds for RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
