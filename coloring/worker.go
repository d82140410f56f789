package coloring

import (
	"fmt"
	"math/rand"
	"strings"
)

// Policy names accepted by ParsePolicy.
const (
	PolicyExhaustive = "exhaustive"
	PolicySampled    = "sampled"
)

// WorkerPolicy is the repair half of an iteration. Both policies apply the
// same greedy rule to a node v: with max the largest color in use at that
// instant, move v to the smallest color in [1, max] that no neighbor uses;
// if every color in [1, max] is taken, leave v unchanged. A repaired node's
// local conflict count therefore never increases.
//
// Both policies accept a Bound: when it exceeds the largest color in use,
// the candidate range widens to [1, Bound]. The zero value keeps the plain
// max-color rule.
type WorkerPolicy interface {
	// Repair mutates a in place.
	Repair(g GraphView, a Assignment, rng *rand.Rand) error
	// Name returns the policy name (see ParsePolicy).
	Name() string
}

// Exhaustive visits every node exactly once, in ascending ID order.
// It does not consume randomness.
type Exhaustive struct {
	Bound int
}

// Name implements WorkerPolicy.
func (Exhaustive) Name() string { return PolicyExhaustive }

// Repair implements WorkerPolicy.
//
// Errors (*DomainError): ErrEmptyGraph, ErrUncoveredNode.
// Complexity: O(|V| + |E| + Σ max) per call.
func (e Exhaustive) Repair(g GraphView, a Assignment, _ *rand.Rand) error {
	nodes := g.Nodes()
	if err := checkRepairable("Exhaustive.Repair", nodes, a); err != nil {
		return err
	}

	r := newRepairer(a, nodes, e.Bound)
	for _, v := range nodes {
		r.repair(g, v)
	}

	return nil
}

// Sampled performs Workers independent repair attempts, each on a node
// drawn uniformly at random with replacement.
type Sampled struct {
	Workers int
	Bound   int
}

// Name implements WorkerPolicy.
func (Sampled) Name() string { return PolicySampled }

// Repair implements WorkerPolicy.
//
// Errors: ErrOptionViolation if Workers < 0; *DomainError for ErrEmptyGraph
// and ErrUncoveredNode.
func (s Sampled) Repair(g GraphView, a Assignment, rng *rand.Rand) error {
	if s.Workers < 0 {
		return fmt.Errorf("%w: Sampled.Workers cannot be negative (%d)", ErrOptionViolation, s.Workers)
	}
	nodes := g.Nodes()
	if err := checkRepairable("Sampled.Repair", nodes, a); err != nil {
		return err
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}

	r := newRepairer(a, nodes, s.Bound)
	for i := 0; i < s.Workers; i++ {
		r.repair(g, nodes[rng.Intn(len(nodes))])
	}

	return nil
}

// ParsePolicy maps a policy name to a WorkerPolicy. workers is used by the
// sampled policy only.
func ParsePolicy(name string, workers int) (WorkerPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case PolicyExhaustive:
		return Exhaustive{}, nil
	case PolicySampled:
		if workers < 1 {
			return nil, fmt.Errorf("%w: sampled policy needs workers ≥ 1, got %d", ErrOptionViolation, workers)
		}
		return Sampled{Workers: workers}, nil
	default:
		return nil, fmt.Errorf("%w: unknown worker policy %q", ErrOptionViolation, name)
	}
}

func checkRepairable(op string, nodes []int, a Assignment) error {
	if len(nodes) == 0 {
		return domainErr(op, noNode, ErrEmptyGraph)
	}

	return checkCoverage(op, nodes, a)
}

// repairer holds the palette and a reusable "color used by a neighbor"
// mark buffer for one Repair call.
//
// limit caps the scanned range at |V|+1: a node has at most |V|-1
// neighbors, so whenever the range reaches that far the smallest free color
// lies inside it, and the cap never changes the chosen color.
type repairer struct {
	a     Assignment
	pal   *palette
	bound int
	limit int
	used  []bool
}

func newRepairer(a Assignment, nodes []int, bound int) *repairer {
	return &repairer{a: a, pal: newPalette(a, nodes), bound: bound, limit: len(nodes) + 1}
}

// repair applies the greedy rule to v.
func (r *repairer) repair(g GraphView, v int) {
	top := r.pal.max
	if r.bound > top {
		top = r.bound
	}
	if top > r.limit {
		top = r.limit
	}
	if cap(r.used) < top+1 {
		r.used = make([]bool, top+1)
	}
	used := r.used[:top+1]

	nbrs := g.Neighbors(v)
	// Neighbors outside the assignment are ignored; ValidateGraph rejects
	// such graphs before a search starts.
	for _, u := range nbrs {
		if c, ok := r.a.Color(u); ok && c <= top {
			used[c] = true
		}
	}
	free := 0
	for c := 1; c <= top; c++ {
		if !used[c] {
			free = c
			break
		}
	}
	for _, u := range nbrs {
		if c, ok := r.a.Color(u); ok && c <= top {
			used[c] = false
		}
	}

	if free > 0 {
		r.pal.set(r.a, v, free)
	}
}
