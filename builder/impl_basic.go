// SPDX-License-Identifier: MIT
// Package: beecolor/builder
//
// impl_basic.go — deterministic topologies: Empty, Path, Cycle, Star, Complete.
//
// Contract:
//   • Adds vertices 0..n-1 in ascending order.
//   • Emits edges in a stable, documented order.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Empty/Path/Cycle/Star: O(n). Complete: O(n²).

package builder

import "github.com/katalvlaran/beecolor/core"

// Empty returns a Constructor that adds n isolated vertices (n ≥ 1).
func Empty(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodEmpty, "n", n, MinNodes); err != nil {
			return err
		}

		return addVertices(MethodEmpty, g, n)
	}
}

// Path returns a Constructor that builds P_n: edges i–(i+1) for i=0..n-2.
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}
		if err := addVertices(MethodPath, g, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(MethodPath, g, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds C_n: edges i–(i+1)%n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}
		if err := addVertices(MethodCycle, g, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(MethodCycle, g, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor with center 0 and leaves 1..n-1.
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		if err := addVertices(MethodStar, g, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(MethodStar, g, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor that builds K_n, emitting pairs {i,j}
// with i<j in lexicographic order.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinNodes); err != nil {
			return err
		}
		if err := addVertices(MethodComplete, g, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(MethodComplete, g, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
