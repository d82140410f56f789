package coloring_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beecolor/builder"
	"github.com/katalvlaran/beecolor/core"
)

// build assembles a graph from constructors and fails the test on error.
func build(t testing.TB, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, cons...)
	require.NoError(t, err)

	return g
}

// randomGraph returns the bounded-degree graph used by the driver, scaled down.
func randomGraph(t testing.TB, seed int64, n, maxDegree int) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.BoundedDegree(n, maxDegree))
	require.NoError(t, err)

	return g
}

// fakeView is a GraphView whose edges may reference missing nodes.
type fakeView struct {
	nodes []int
	edges []core.Edge
}

func (f fakeView) Nodes() []int       { return f.nodes }
func (f fakeView) Edges() []core.Edge { return f.edges }
func (f fakeView) Neighbors(id int) []int {
	var out []int
	for _, e := range f.edges {
		switch id {
		case e.From:
			out = append(out, e.To)
		case e.To:
			out = append(out, e.From)
		}
	}
	return out
}
func (f fakeView) Degree(id int) int { return len(f.Neighbors(id)) }

func newRand(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }
