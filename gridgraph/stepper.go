package gridgraph

// Snapshot describes one iteration of a Stepper.
type Snapshot struct {
	Current     Node   // node finalized by this step (zero Node once exhausted)
	Distance    int    // final distance of Current
	FrontierLen int    // nodes still unfinalized after this step
	StepIndex   int    // 1-based count of finalized nodes
	Done        bool   // the search has ended
	Found       bool   // end was reached
	Path        []Node // set once Done; empty if end is unreachable
}

// Stepper runs the FindPath search one finalized node at a time, for UIs
// that animate the frontier.
//
// The Stepper works on a copy of the block registry taken by NewStepper,
// so edits made while stepping do not affect it and it holds no lock
// between calls. It is not safe for concurrent use.
type Stepper struct {
	r    *runner
	last Snapshot
}

// NewStepper prepares a step-by-step search from start to end.
// Validation matches FindPath. When start == end the Stepper is done from
// the outset with an empty path.
func (g *GridGraph) NewStepper(start, end Node, opts ...SearchOption) (*Stepper, error) {
	cfg := DefaultSearchOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if err := g.checkNode(start); err != nil {
		return nil, err
	}
	if err := g.checkNode(end); err != nil {
		return nil, err
	}

	blocked, _ := g.snapshot()
	s := &Stepper{
		r: newRunner(g, blocked, start, end, cfg),
	}
	if start == end {
		s.r.state = stepExhausted
		s.last = Snapshot{Done: true, FrontierLen: s.r.front.Len(), Path: []Node{}}
	}

	return s, nil
}

// Done reports whether the search has ended.
func (s *Stepper) Done() bool { return s.last.Done }

// Step finalizes the next node and returns the resulting Snapshot.
// After the search ends it keeps returning the final Snapshot.
// A cancelled search context ends the search with the context error.
func (s *Stepper) Step() (Snapshot, error) {
	if s.last.Done {
		return s.last, nil
	}
	if err := s.r.opts.Ctx.Err(); err != nil {
		return s.last, err
	}

	u, st := s.r.step()
	snap := Snapshot{
		FrontierLen: s.r.front.Len(),
		StepIndex:   s.r.finalized,
	}
	if u >= 0 {
		snap.Current = s.r.g.node(u)
		snap.Distance = s.r.dist[u]
	}
	if st != stepExpanded {
		snap.Done = true
		snap.Path = s.r.path()
		snap.Found = len(snap.Path) > 0
	}
	s.last = snap

	return snap, nil
}

// Run steps until the search ends and returns the final Snapshot.
func (s *Stepper) Run() (Snapshot, error) {
	for !s.last.Done {
		if _, err := s.Step(); err != nil {
			return s.last, err
		}
	}

	return s.last, nil
}

// Distances returns a copy of the current distance table in row-major
// order; unreached nodes hold Infinity.
func (s *Stepper) Distances() []int {
	out := make([]int, len(s.r.dist))
	copy(out, s.r.dist)

	return out
}

// Finalized reports whether n has already left the frontier.
func (s *Stepper) Finalized(n Node) bool {
	if !s.r.g.InBounds(n) {
		return false
	}

	return !s.r.front.contains(s.r.g.index(n))
}
