package coloring

import (
	"math/rand"

	"github.com/katalvlaran/beecolor/core"
)

// GraphView is the read-only graph surface consumed by the search.
// It must not change while a search is running. *core.Graph implements it.
type GraphView interface {
	// Nodes returns every node ID, sorted ascending.
	Nodes() []int
	// Edges returns every undirected edge exactly once.
	Edges() []core.Edge
	// Neighbors returns the neighbor IDs of id.
	Neighbors(id int) []int
	// Degree returns len(Neighbors(id)).
	Degree(id int) int
}

var _ GraphView = (*core.Graph)(nil)

// Assignment maps node ID (index) to color (value). Colors are ≥ 1; 0 marks
// an index that is not a node of the graph.
type Assignment []int

// NewAssignment returns an assignment sized for nodes with every node set
// to color c. Negative IDs cannot be indexed and are skipped.
func NewAssignment(nodes []int, c int) Assignment {
	a := make(Assignment, span(nodes))
	for _, v := range nodes {
		if v >= 0 {
			a[v] = c
		}
	}

	return a
}

// RandomAssignment draws each node's color uniformly from [1, k], visiting
// nodes in the given order. k < 1 is treated as 1; negative IDs are skipped
// without consuming randomness.
func RandomAssignment(nodes []int, k int, rng *rand.Rand) Assignment {
	if k < 1 {
		k = 1
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}
	a := make(Assignment, span(nodes))
	for _, v := range nodes {
		if v >= 0 {
			a[v] = rng.Intn(k) + 1
		}
	}

	return a
}

// Clone returns an independent copy.
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	copy(out, a)

	return out
}

// Color returns the color of v and whether v is covered.
func (a Assignment) Color(v int) (int, bool) {
	if v < 0 || v >= len(a) || a[v] < 1 {
		return 0, false
	}

	return a[v], true
}

// ColorCount returns the number of distinct colors used by nodes.
func (a Assignment) ColorCount(nodes []int) int {
	seen := make(map[int]struct{})
	for _, v := range nodes {
		if c, ok := a.Color(v); ok {
			seen[c] = struct{}{}
		}
	}

	return len(seen)
}

// MaxColor returns the largest color used by nodes (0 if none is covered).
func (a Assignment) MaxColor(nodes []int) int {
	top := 0
	for _, v := range nodes {
		if c, ok := a.Color(v); ok && c > top {
			top = c
		}
	}

	return top
}

// span returns 1 + the largest node ID (0 for no nodes).
func span(nodes []int) int {
	n := 0
	for _, v := range nodes {
		if v+1 > n {
			n = v + 1
		}
	}

	return n
}

// checkCoverage fails with ErrUncoveredNode on the first node without a color.
func checkCoverage(op string, nodes []int, a Assignment) error {
	for _, v := range nodes {
		if _, ok := a.Color(v); !ok {
			return domainErr(op, v, ErrUncoveredNode)
		}
	}

	return nil
}

// Result is the outcome of Search.
type Result struct {
	// Best is the snapshot with the highest quality observed.
	Best Assignment
	// Quality is the quality of Best (≤ 0).
	Quality int
	// Trace holds the best-known quality before the loop and then every
	// Interval iterations; it is non-decreasing.
	Trace []int
	// Interval is the sampling interval the trace was recorded with.
	Interval int
	// BestIteration is the iteration that produced Best (0 = initial).
	BestIteration int
	// Iterations is the number of scout/repair rounds performed.
	Iterations int
	// Colors is the number of distinct colors in Best.
	Colors int
}

// TraceAxis returns the iteration index of every trace entry (k*Interval).
func (r *Result) TraceAxis() []int {
	xs := make([]int, len(r.Trace))
	for k := range xs {
		xs[k] = k * r.Interval
	}

	return xs
}

// TraceLen returns the trace length of a run: 1 + ⌊(maxIterations−1)/interval⌋.
func TraceLen(maxIterations, interval int) int {
	if maxIterations < 1 || interval < 1 {
		return 0
	}

	return 1 + (maxIterations-1)/interval
}
