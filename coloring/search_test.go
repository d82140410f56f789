package coloring_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/beecolor/builder"
	"github.com/katalvlaran/beecolor/coloring"
	"github.com/katalvlaran/beecolor/core"
)

// SearchSuite runs the loop on one shared bounded-degree graph.
type SearchSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *SearchSuite) SetupSuite() {
	s.g = randomGraph(s.T(), 2024, 60, 8)
}

// TestTraceShape: length follows TraceLen and values never decrease.
func (s *SearchSuite) TestTraceShape() {
	for _, tc := range []struct{ iters, interval int }{{1, 20}, {20, 20}, {101, 10}, {250, 7}} {
		res, err := coloring.Search(s.g,
			coloring.WithSeed(3),
			coloring.WithMaxIterations(tc.iters),
			coloring.WithSamplingInterval(tc.interval),
		)
		s.Require().NoError(err)
		s.Len(res.Trace, coloring.TraceLen(tc.iters, tc.interval), "iters=%d interval=%d", tc.iters, tc.interval)
		for k := 1; k < len(res.Trace); k++ {
			s.GreaterOrEqual(res.Trace[k], res.Trace[k-1])
		}
		s.GreaterOrEqual(res.Quality, res.Trace[len(res.Trace)-1])
		s.Equal(tc.iters-1, res.Iterations)
	}
}

// TestBestIsConsistent: Quality is the real score of Best and Best covers
// every node.
func (s *SearchSuite) TestBestIsConsistent() {
	for _, p := range []coloring.WorkerPolicy{coloring.Exhaustive{}, coloring.Sampled{Workers: 10}} {
		res, err := coloring.Search(s.g, coloring.WithSeed(11), coloring.WithPolicy(p), coloring.WithMaxIterations(200))
		s.Require().NoError(err)

		q, err := coloring.Evaluate(s.g, res.Best)
		s.Require().NoError(err)
		s.Equal(res.Quality, q, p.Name())
		s.Equal(res.Best.ColorCount(s.g.Nodes()), res.Colors)
		s.LessOrEqual(res.BestIteration, res.Iterations)
		for _, v := range s.g.Nodes() {
			c, ok := res.Best.Color(v)
			s.True(ok)
			s.GreaterOrEqual(c, 1)
		}
	}
}

// TestDeterministic: identical seeds give identical results.
func (s *SearchSuite) TestDeterministic() {
	run := func() *coloring.Result {
		res, err := coloring.Search(s.g, coloring.WithSeed(77), coloring.WithMaxIterations(150),
			coloring.WithPolicy(coloring.Sampled{Workers: 6}))
		s.Require().NoError(err)
		return res
	}
	if diff := cmp.Diff(run(), run()); diff != "" {
		s.Failf("same seed, different result", "(-first +second):\n%s", diff)
	}
}

// TestOnSample is called once per trace entry with the recorded value.
func (s *SearchSuite) TestOnSample() {
	var iters, vals []int
	res, err := coloring.Search(s.g,
		coloring.WithMaxIterations(95),
		coloring.WithSamplingInterval(15),
		coloring.WithOnSample(func(i, best int) {
			iters = append(iters, i)
			vals = append(vals, best)
		}),
	)
	s.Require().NoError(err)
	s.Equal(res.Trace, vals)
	s.Equal(res.TraceAxis(), iters)
}

func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(SearchSuite))
}

// TestSearch_SingleIteration returns the initial draw untouched.
func TestSearch_SingleIteration(t *testing.T) {
	g := randomGraph(t, 6, 30, 5)

	res, err := coloring.Search(g, coloring.WithSeed(123), coloring.WithMaxIterations(1), coloring.WithInitialColors(4))
	require.NoError(t, err)

	initial := coloring.RandomAssignment(g.Nodes(), 4, newRand(123))
	q, err := coloring.Evaluate(g, initial)
	require.NoError(t, err)

	assert.Equal(t, initial, res.Best)
	assert.Equal(t, []int{q}, res.Trace)
	assert.Equal(t, q, res.Quality)
	assert.Zero(t, res.Iterations)
	assert.Zero(t, res.BestIteration)
}

// TestSearch_Edgeless: every trace entry is 0.
func TestSearch_Edgeless(t *testing.T) {
	g := build(t, builder.Empty(10))

	res, err := coloring.Search(g, coloring.WithMaxIterations(41), coloring.WithSamplingInterval(10))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0, 0}, res.Trace)
	assert.Zero(t, res.Quality)
}

// TestSearch_Improves: with three colors always available the exhaustive
// repair makes a cycle proper in one pass.
func TestSearch_Improves(t *testing.T) {
	g := build(t, builder.Cycle(6))

	res, err := coloring.Search(g,
		coloring.WithSeed(5),
		coloring.WithInitialColors(3),
		coloring.WithScouts(1),
		coloring.WithPolicy(coloring.Exhaustive{Bound: 3}),
		coloring.WithMaxIterations(50),
		coloring.WithSamplingInterval(5),
	)
	require.NoError(t, err)
	assert.Zero(t, res.Quality)
	assert.Zero(t, res.Trace[len(res.Trace)-1])
}

// TestSearch_Errors covers option violations and domain errors.
func TestSearch_Errors(t *testing.T) {
	g := build(t, builder.Path(3))

	bad := []coloring.Option{
		coloring.WithInitialColors(0),
		coloring.WithScouts(-1),
		coloring.WithPolicy(nil),
		coloring.WithMaxIterations(0),
		coloring.WithSamplingInterval(0),
	}
	for _, opt := range bad {
		_, err := coloring.Search(g, opt)
		assert.ErrorIs(t, err, coloring.ErrOptionViolation)
	}

	_, err := coloring.Search(g, coloring.WithScouts(4))
	assert.ErrorIs(t, err, coloring.ErrScoutCount)
	assert.ErrorIs(t, err, coloring.ErrDomain)

	_, err = coloring.Search(core.NewGraph())
	assert.ErrorIs(t, err, coloring.ErrEmptyGraph)

	_, err = coloring.Search(fakeView{nodes: []int{0}, edges: []core.Edge{{From: 0, To: 2}}})
	assert.ErrorIs(t, err, coloring.ErrUnknownNode)

	require.NotPanics(t, func() {
		_, err = coloring.Search(fakeView{nodes: []int{-1, 0}, edges: []core.Edge{{From: -1, To: 0}}}, coloring.WithScouts(1))
	})
	assert.ErrorIs(t, err, coloring.ErrNegativeNode)
	assert.ErrorIs(t, err, coloring.ErrDomain)

	_, err = coloring.Search(g, coloring.WithPolicy(coloring.Sampled{Workers: -2}))
	assert.ErrorIs(t, err, coloring.ErrOptionViolation)
}

// TestSearch_Logger: debug events reach an injected logger.
func TestSearch_Logger(t *testing.T) {
	g := build(t, builder.Cycle(5))
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	_, err := coloring.Search(g, coloring.WithLogger(logger), coloring.WithMaxIterations(10))
	require.NoError(t, err)

	entries := hook.AllEntries()
	require.GreaterOrEqual(t, len(entries), 2)
	assert.Equal(t, "search started", entries[0].Message)
	last := hook.LastEntry()
	assert.Equal(t, "search finished", last.Message)
	assert.Equal(t, coloring.PolicyExhaustive, last.Data["policy"])
	assert.Contains(t, last.Data, "colors")
}
