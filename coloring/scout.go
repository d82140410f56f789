package coloring

import (
	"container/heap"
	"math/rand"
)

// Scout releases scouts: it ranks every node by its local conflict count
// and reassigns the `scouts` nodes at the MINIMUM end of that ranking (ties
// broken by smaller node ID) to a uniformly random color in [1, max], where
// max is the largest color in use at the moment of each reassignment.
//
// Exactly `scouts` nodes are touched and each is recolored unconditionally,
// whether or not that helps. Ranking happens once, before any reassignment.
//
// Errors (*DomainError):
//   - ErrEmptyGraph if g has no nodes.
//   - ErrScoutCount if scouts < 0 or scouts > |V|.
//   - ErrUncoveredNode if a has no color for some node.
//
// Complexity: O(|V| + |E| + scouts·log|V|).
func Scout(g GraphView, a Assignment, scouts int, rng *rand.Rand) error {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return domainErr("Scout", noNode, ErrEmptyGraph)
	}
	if scouts < 0 || scouts > len(nodes) {
		return domainErr("Scout", noNode, ErrScoutCount)
	}
	if err := checkCoverage("Scout", nodes, a); err != nil {
		return err
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}

	scout(g, a, nodes, scouts, rng)

	return nil
}

// scout is the validated body of Scout.
func scout(g GraphView, a Assignment, nodes []int, scouts int, rng *rand.Rand) {
	if scouts == 0 {
		return
	}

	pq := make(conflictPQ, 0, len(nodes))
	for _, v := range nodes {
		pq = append(pq, conflictItem{node: v, conflicts: localConflicts(g, a, v)})
	}
	heap.Init(&pq)

	pal := newPalette(a, nodes)
	for i := 0; i < scouts; i++ {
		it := heap.Pop(&pq).(conflictItem)
		pal.set(a, it.node, rng.Intn(pal.max)+1)
	}
}
