package coloring

import (
	"errors"
	"fmt"
)

// Sentinel errors of the coloring package.
var (
	// ErrDomain is the class of every precondition violation; *DomainError
	// matches it via errors.Is.
	ErrDomain = errors.New("coloring: domain error")

	// ErrEmptyGraph indicates a graph with zero nodes.
	ErrEmptyGraph = errors.New("coloring: graph has no nodes")

	// ErrUncoveredNode indicates that the assignment has no color for a node.
	ErrUncoveredNode = errors.New("coloring: node has no color")

	// ErrNegativeNode indicates a node ID below zero.
	ErrNegativeNode = errors.New("coloring: negative node ID")

	// ErrUnknownNode indicates an edge endpoint missing from the node set.
	ErrUnknownNode = errors.New("coloring: edge references unknown node")

	// ErrScoutCount indicates a scout count outside [0, |V|].
	ErrScoutCount = errors.New("coloring: scout count out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("coloring: invalid option supplied")
)

// noNode marks a DomainError that is not about a specific node.
const noNode = -1

// DomainError reports a malformed graph/assignment or an out-of-range
// parameter, detected at the point of use. It is never retried.
type DomainError struct {
	Op   string // operation that detected the violation: "Evaluate", "Scout", ...
	Node int    // offending node, or -1
	Err  error  // concrete sentinel (ErrEmptyGraph, ErrUncoveredNode, ...)
}

func (e *DomainError) Error() string {
	if e.Node == noNode {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: node %d: %v", e.Op, e.Node, e.Err)
}

// Unwrap exposes the concrete sentinel to errors.Is/As.
func (e *DomainError) Unwrap() error { return e.Err }

// Is makes every DomainError match ErrDomain.
func (e *DomainError) Is(target error) bool { return target == ErrDomain }

func domainErr(op string, node int, err error) error {
	return &DomainError{Op: op, Node: node, Err: err}
}
