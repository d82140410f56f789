package coloring

import "github.com/sirupsen/logrus"

// Search runs the bee-colony loop on g.
//
// Implementation:
//   - Stage 1: Resolve options; validate g (ValidateGraph) and S ≤ |V|.
//   - Stage 2: Draw the live assignment uniformly from [1, K0], evaluate it,
//     seed the best snapshot and the trace.
//   - Stage 3: For i = 1 .. MaxIterations-1: Scout, Repair, Evaluate; on
//     strict improvement snapshot the live assignment; when
//     i % SamplingInterval == 0 append the BEST quality to the trace.
//
// There is no early exit: the full budget always runs, even after a proper
// coloring is found.
//
// Errors:
//   - ErrOptionViolation for invalid options.
//   - *DomainError (ErrEmptyGraph, ErrNegativeNode, ErrUnknownNode,
//     ErrScoutCount) for
//     malformed input; step errors are propagated unchanged.
//
// Complexity: O(MaxIterations · (|V| log |V| + |E| + repair cost)).
func Search(g GraphView, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if err := ValidateGraph(g); err != nil {
		return nil, err
	}
	nodes := g.Nodes()
	if o.Scouts > len(nodes) {
		return nil, domainErr("Search", noNode, ErrScoutCount)
	}

	live := RandomAssignment(nodes, o.InitialColors, o.Rand)
	quality, err := Evaluate(g, live)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Best:     live.Clone(),
		Quality:  quality,
		Trace:    make([]int, 0, TraceLen(o.MaxIterations, o.SamplingInterval)),
		Interval: o.SamplingInterval,
	}
	res.Trace = append(res.Trace, quality)
	if o.OnSample != nil {
		o.OnSample(0, quality)
	}
	log := o.Logger.WithField("policy", o.Policy.Name())
	log.WithFields(logrus.Fields{"nodes": len(nodes), "quality": quality}).Debug("search started")

	for i := 1; i < o.MaxIterations; i++ {
		scout(g, live, nodes, o.Scouts, o.Rand)
		if err = o.Policy.Repair(g, live, o.Rand); err != nil {
			return nil, err
		}
		if quality, err = Evaluate(g, live); err != nil {
			return nil, err
		}

		if quality > res.Quality {
			res.Best = live.Clone()
			res.Quality = quality
			res.BestIteration = i
			log.WithFields(logrus.Fields{"iteration": i, "quality": quality}).Debug("new best coloring")
		}
		if i%o.SamplingInterval == 0 {
			res.Trace = append(res.Trace, res.Quality)
			if o.OnSample != nil {
				o.OnSample(i, res.Quality)
			}
		}
		res.Iterations = i
	}

	res.Colors = res.Best.ColorCount(nodes)
	log.WithFields(logrus.Fields{
		"quality":        res.Quality,
		"colors":         res.Colors,
		"best_iteration": res.BestIteration,
	}).Debug("search finished")

	return res, nil
}
