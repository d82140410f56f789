// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summaries on top of the core types.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	MinDegree   int
	MaxDegree   int
	// MeanDegree is 2|E|/|V| (0 for an empty graph).
	MeanDegree float64
	// IsolatedCount is the number of degree-0 vertices.
	IsolatedCount int
}

// Stats returns a deterministic summary of the graph.
//
// Implementation:
//   - Stage 1: Snapshot vertex IDs under muVert.
//   - Stage 2: Scan degrees under muEdgeAdj.
//
// Complexity:
//   - Time O(V), Space O(1) beyond the vertex snapshot.
func (g *Graph) Stats() GraphStats {
	g.muVert.RLock()
	ids := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	stats := GraphStats{VertexCount: len(ids), EdgeCount: g.edgeCount}
	if len(ids) == 0 {
		return stats
	}
	stats.MinDegree = len(g.adjacency[ids[0]])
	for _, id := range ids {
		d := len(g.adjacency[id])
		if d < stats.MinDegree {
			stats.MinDegree = d
		}
		if d > stats.MaxDegree {
			stats.MaxDegree = d
		}
		if d == 0 {
			stats.IsolatedCount++
		}
	}
	stats.MeanDegree = 2 * float64(g.edgeCount) / float64(len(ids))

	return stats
}
