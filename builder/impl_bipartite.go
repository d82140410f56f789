// SPDX-License-Identifier: MIT
// Package: beecolor/builder
//
// impl_bipartite.go — CompleteBipartite(n1, n2): K_{n1,n2}.
//
// Contract:
//   • n1 ≥ 1, n2 ≥ 1.
//   • Left partition 0..n1-1, right partition n1..n1+n2-1.
//   • Cross edges are emitted left-major: (0,n1), (0,n1+1), ...
//
// Complexity: O(n1·n2).

package builder

import "github.com/katalvlaran/beecolor/core"

// CompleteBipartite returns a Constructor for K_{n1,n2}. The result is
// 2-colorable by construction.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodCompleteBipartite, "n1", n1, MinPartitionSize); err != nil {
			return err
		}
		if err := validateMin(MethodCompleteBipartite, "n2", n2, MinPartitionSize); err != nil {
			return err
		}
		if err := addVertices(MethodCompleteBipartite, g, n1+n2); err != nil {
			return err
		}

		for i := 0; i < n1; i++ {
			for j := n1; j < n1+n2; j++ {
				if err := addEdge(MethodCompleteBipartite, g, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
