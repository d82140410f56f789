package coloring

import "github.com/katalvlaran/beecolor/core"

// Evaluate returns −(number of conflicting edges) for a under g.
// An edge is conflicting when both endpoints share a color.
//
// Errors: *DomainError{ErrUncoveredNode} if an edge endpoint has no color.
// Complexity: O(|E|). Pure: neither g nor a is modified.
func Evaluate(g GraphView, a Assignment) (int, error) {
	conflicts := 0
	for _, e := range g.Edges() {
		cu, ok := a.Color(e.From)
		if !ok {
			return 0, domainErr("Evaluate", e.From, ErrUncoveredNode)
		}
		cv, ok := a.Color(e.To)
		if !ok {
			return 0, domainErr("Evaluate", e.To, ErrUncoveredNode)
		}
		if cu == cv {
			conflicts++
		}
	}

	return -conflicts, nil
}

// ConflictingEdges returns the edges whose endpoints share a color, in the
// order of g.Edges().
func ConflictingEdges(g GraphView, a Assignment) ([]core.Edge, error) {
	var out []core.Edge
	for _, e := range g.Edges() {
		cu, ok := a.Color(e.From)
		if !ok {
			return nil, domainErr("ConflictingEdges", e.From, ErrUncoveredNode)
		}
		cv, ok := a.Color(e.To)
		if !ok {
			return nil, domainErr("ConflictingEdges", e.To, ErrUncoveredNode)
		}
		if cu == cv {
			out = append(out, e)
		}
	}

	return out, nil
}

// LocalConflicts returns how many neighbors of v share v's color.
func LocalConflicts(g GraphView, a Assignment, v int) (int, error) {
	if _, ok := a.Color(v); !ok {
		return 0, domainErr("LocalConflicts", v, ErrUncoveredNode)
	}
	for _, u := range g.Neighbors(v) {
		if _, ok := a.Color(u); !ok {
			return 0, domainErr("LocalConflicts", u, ErrUncoveredNode)
		}
	}

	return localConflicts(g, a, v), nil
}

// localConflicts is the unchecked hot-path form of LocalConflicts.
func localConflicts(g GraphView, a Assignment, v int) int {
	n := 0
	c := a[v]
	for _, u := range g.Neighbors(v) {
		if cu, ok := a.Color(u); ok && cu == c {
			n++
		}
	}

	return n
}

// ValidateGraph checks that g has nodes, that every node ID is non-negative
// and that every edge endpoint is one of them.
//
// Errors: *DomainError wrapping ErrEmptyGraph, ErrNegativeNode or
// ErrUnknownNode.
// Complexity: O(|V| + |E|).
func ValidateGraph(g GraphView) error {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return domainErr("ValidateGraph", noNode, ErrEmptyGraph)
	}
	known := make(map[int]struct{}, len(nodes))
	for _, v := range nodes {
		if v < 0 {
			return domainErr("ValidateGraph", v, ErrNegativeNode)
		}
		known[v] = struct{}{}
	}
	for _, e := range g.Edges() {
		if _, ok := known[e.From]; !ok {
			return domainErr("ValidateGraph", e.From, ErrUnknownNode)
		}
		if _, ok := known[e.To]; !ok {
			return domainErr("ValidateGraph", e.To, ErrUnknownNode)
		}
	}

	return nil
}
