// File: builder_impl_test.go
// Package builder_test contains functional tests for the Constructor
// implementations, verifying topology, counts, determinism and sentinels.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beecolor/builder"
	"github.com/katalvlaran/beecolor/core"
)

// TestBuilders_Functional runs table-driven functional tests for each
// deterministic builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Empty(4)", ctor: builder.Empty(4), wantV: 4, wantE: 0,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.Equal(t, []int{0, 1, 2, 3}, g.Isolated())
			},
		},
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 3; i++ {
					require.True(t, g.HasEdge(i, i+1))
				}
			},
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 5; i++ {
					require.Equal(t, 2, g.Degree(i))
					require.True(t, g.HasEdge(i, (i+1)%5))
				}
			},
		},
		{
			name: "Star(4)", ctor: builder.Star(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.Equal(t, []int{1, 2, 3}, g.Neighbors(0))
			},
		},
		{
			name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 4; i++ {
					require.Equal(t, 3, g.Degree(i))
				}
			},
		},
		{
			name: "Wheel(6)", ctor: builder.Wheel(6), wantV: 6, wantE: 10,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.Equal(t, []int{0, 1, 2, 3, 4}, g.Neighbors(5))
				require.Equal(t, 3, g.Degree(0))
			},
		},
		{
			name: "CompleteBipartite(2,3)", ctor: builder.CompleteBipartite(2, 3), wantV: 5, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.Equal(t, []int{2, 3, 4}, g.Neighbors(0))
				require.Equal(t, []int{0, 1}, g.Neighbors(4))
				require.False(t, g.HasEdge(0, 1))
			},
		},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 7,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.Equal(t, 4, builder.GridID(1, 1, 3))
				require.Equal(t, []int{1, 3, 5}, g.Neighbors(4))
				require.Equal(t, 2, g.Degree(0))
			},
		},
		{
			name: "RandomSparse(5,1)", ctor: builder.RandomSparse(5, 1), wantV: 5, wantE: 10,
		},
		{
			name: "RandomSparse(5,0)", ctor: builder.RandomSparse(5, 0), wantV: 5, wantE: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			require.Equal(t, tc.wantV, g.VertexCount())
			require.Equal(t, tc.wantE, g.EdgeCount())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

// TestBuilders_Validation checks sentinel errors for invalid parameters.
func TestBuilders_Validation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		opts []builder.BuilderOption
		ctor builder.Constructor
		want error
	}{
		{"Empty(0)", nil, builder.Empty(0), builder.ErrTooFewVertices},
		{"Path(1)", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", nil, builder.Star(1), builder.ErrTooFewVertices},
		{"Complete(0)", nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"RandomSparse p<0", nil, builder.RandomSparse(3, -0.1), builder.ErrInvalidProbability},
		{"RandomSparse p>1", nil, builder.RandomSparse(3, 1.1), builder.ErrInvalidProbability},
		{"RandomSparse no rng", nil, builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"BoundedDegree no rng", nil, builder.BoundedDegree(3, 2), builder.ErrNeedRandSource},
		{"BoundedDegree n=0", []builder.BuilderOption{builder.WithSeed(1)}, builder.BoundedDegree(0, 2), builder.ErrTooFewVertices},
		{"BoundedDegree d<0", []builder.BuilderOption{builder.WithSeed(1)}, builder.BoundedDegree(3, -1), builder.ErrTooFewVertices},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.BuildGraph(tc.opts, tc.ctor)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestBoundedDegree_Properties checks the degree cap on initiating vertices,
// the absence of isolated vertices, and same-seed determinism.
func TestBoundedDegree_Properties(t *testing.T) {
	t.Parallel()

	const n, maxDeg = 60, 5
	build := func(seed int64) *core.Graph {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.BoundedDegree(n, maxDeg))
		require.NoError(t, err)
		return g
	}

	g := build(11)
	require.Equal(t, n, g.VertexCount())
	require.Empty(t, g.Isolated())
	// Every vertex reached the cap (the pool is large enough for n=60).
	for _, v := range g.Nodes() {
		require.GreaterOrEqual(t, g.Degree(v), maxDeg)
	}
	// Vertex 0 initiates first, so its degree is exactly the cap.
	require.Equal(t, maxDeg, g.Degree(0))

	require.Equal(t, g.Edges(), build(11).Edges())
}

// TestBoundedDegree_ZeroCap checks that the isolated-vertex repair alone
// connects every vertex when no capped growth happens.
func TestBoundedDegree_ZeroCap(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(3)}, builder.BoundedDegree(10, 0))
	require.NoError(t, err)
	require.Empty(t, g.Isolated())
	require.Positive(t, g.EdgeCount())

	single, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(3)}, builder.BoundedDegree(1, 3))
	require.NoError(t, err)
	require.Equal(t, []int{0}, single.Isolated())
}

// TestApply verifies running constructors against an existing graph.
func TestApply(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	require.NoError(t, builder.Apply(g, nil, builder.Path(3), builder.Empty(5)))
	require.Equal(t, 5, g.VertexCount())
	require.Equal(t, 2, g.EdgeCount())
	// Re-emitting an existing edge surfaces the core sentinel through the wrap chain.
	require.ErrorIs(t, builder.Apply(g, nil, builder.Path(2)), core.ErrMultiEdgeNotAllowed)
	require.ErrorIs(t, builder.Apply(nil, nil, builder.Path(3)), builder.ErrConstructFailed)
}

// TestRandomRegular checks degree regularity, determinism and validation.
func TestRandomRegular(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(4)}
	g, err := builder.BuildGraph(opts, builder.RandomRegular(12, 2))
	require.NoError(t, err)
	require.Equal(t, 12, g.VertexCount())
	require.Equal(t, 12, g.EdgeCount())
	for _, v := range g.Nodes() {
		require.Equal(t, 2, g.Degree(v))
	}

	again, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(4)}, builder.RandomRegular(12, 2))
	require.NoError(t, err)
	require.Equal(t, g.Edges(), again.Edges())

	zero, err := builder.BuildGraph(opts, builder.RandomRegular(5, 0))
	require.NoError(t, err)
	require.Zero(t, zero.EdgeCount())

	_, err = builder.BuildGraph(opts, builder.RandomRegular(5, 3))
	require.ErrorIs(t, err, builder.ErrTooFewVertices, "odd n*d")
	_, err = builder.BuildGraph(opts, builder.RandomRegular(4, 4))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.BuildGraph(nil, builder.RandomRegular(4, 2))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

// TestFixtureValidation covers the minima of the fixture constructors.
func TestFixtureValidation(t *testing.T) {
	for name, ctor := range map[string]builder.Constructor{
		"Wheel(3)":               builder.Wheel(3),
		"CompleteBipartite(0,2)": builder.CompleteBipartite(0, 2),
		"CompleteBipartite(2,0)": builder.CompleteBipartite(2, 0),
		"Grid(0,3)":              builder.Grid(0, 3),
		"Grid(3,0)":              builder.Grid(3, 0),
	} {
		_, err := builder.BuildGraph(nil, ctor)
		require.ErrorIs(t, err, builder.ErrTooFewVertices, name)
	}
}
