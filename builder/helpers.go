package builder

import (
	"fmt"

	"github.com/katalvlaran/beecolor/core"
)

// addVertices inserts 0..n-1 in ascending order.
func addVertices(method string, g *core.Graph, n int) error {
	for i := 0; i < n; i++ {
		if err := g.AddVertex(i); err != nil {
			return fmt.Errorf("%s: AddVertex(%d): %w", method, i, err)
		}
	}

	return nil
}

// addEdge wraps core.AddEdge with method context.
func addEdge(method string, g *core.Graph, u, v int) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d-%d): %w", method, u, v, err)
	}

	return nil
}

// validateMin ensures got ≥ min, wrapping ErrTooFewVertices otherwise.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
	}

	return nil
}
