package coloring_test

import (
	"fmt"

	"github.com/katalvlaran/beecolor/builder"
	"github.com/katalvlaran/beecolor/coloring"
)

// ExampleEvaluate scores a path colored with one conflict.
func ExampleEvaluate() {
	g, _ := builder.BuildGraph(nil, builder.Path(3))
	a := coloring.Assignment{1, 1, 2}

	q, _ := coloring.Evaluate(g, a)
	bad, _ := coloring.ConflictingEdges(g, a)
	fmt.Println("quality:", q)
	fmt.Println("conflicts:", bad)
	// Output:
	// quality: -1
	// conflicts: [{0 1}]
}

// ExampleExhaustive repairs a monochrome K4 with a four-color bound.
func ExampleExhaustive() {
	g, _ := builder.BuildGraph(nil, builder.Complete(4))
	a := coloring.NewAssignment(g.Nodes(), 1)

	_ = coloring.Exhaustive{Bound: 4}.Repair(g, a, nil)
	q, _ := coloring.Evaluate(g, a)
	fmt.Println(a, q)
	// Output:
	// [2 3 4 1] 0
}

// ExampleSearch runs a short search on a graph without edges.
func ExampleSearch() {
	g, _ := builder.BuildGraph(nil, builder.Empty(8))

	res, _ := coloring.Search(g,
		coloring.WithSeed(1),
		coloring.WithMaxIterations(50),
		coloring.WithSamplingInterval(20),
	)
	fmt.Println("quality:", res.Quality)
	fmt.Println("trace:", res.Trace)
	fmt.Println("axis:", res.TraceAxis())
	// Output:
	// quality: 0
	// trace: [0 0 0]
	// axis: [0 20 40]
}
