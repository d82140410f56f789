// SPDX-License-Identifier: MIT
// Package: beecolor/builder
//
// impl_bounded_degree.go - implementation of BoundedDegree(n, maxDegree).
//
// Model (greedy degree-capped synthesis):
//   - Phase 1: for each vertex u in ascending order, shuffle the pool of
//     vertices that are neither u nor already adjacent to u, and connect u
//     to pool members in shuffled order while deg(u) < maxDegree.
//     Only u's degree is capped; a pool member may end above maxDegree
//     because it is picked by several later vertices.
//   - Phase 2: while isolated vertices remain, attach each one to a
//     uniformly random other vertex.
//
// Contract:
//   - n ≥ 1, maxDegree ≥ 0 (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - With n ≥ 2 the result has no isolated vertices.
//
// Complexity:
//   - Time: O(n²) pool construction + O(n·maxDegree) edge insertions.
//   - Space: O(n) for the pool buffer.
//
// Determinism:
//   - Fixed vertex order and a single RNG stream ⇒ identical graphs per seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/beecolor/core"
)

// BoundedDegree returns a Constructor that synthesizes a random graph in
// which every vertex initiates edges until it reaches maxDegree.
func BoundedDegree(n, maxDegree int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodBoundedDegree, "n", n, MinNodes); err != nil {
			return err
		}
		if err := validateMin(MethodBoundedDegree, "maxDegree", maxDegree, 0); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodBoundedDegree, ErrNeedRandSource)
		}
		if err := addVertices(MethodBoundedDegree, g, n); err != nil {
			return err
		}

		rng := cfg.rng
		pool := make([]int, 0, n)

		// Phase 1: capped growth.
		for u := 0; u < n; u++ {
			pool = pool[:0]
			for v := 0; v < n; v++ {
				if v != u && !g.HasEdge(u, v) {
					pool = append(pool, v)
				}
			}
			rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
			for _, v := range pool {
				if g.Degree(u) >= maxDegree {
					break
				}
				if err := addEdge(MethodBoundedDegree, g, u, v); err != nil {
					return err
				}
			}
		}

		// Phase 2: no vertex is left isolated (needs a partner to exist).
		if n < 2 {
			return nil
		}
		for isolated := g.Isolated(); len(isolated) > 0; isolated = g.Isolated() {
			for _, u := range isolated {
				v := rng.Intn(n - 1)
				if v >= u {
					v++ // uniform over all vertices except u
				}
				if g.HasEdge(u, v) {
					continue
				}
				if err := addEdge(MethodBoundedDegree, g, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
