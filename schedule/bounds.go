package schedule

// Root compiles if dirty, then returns the unique event whose every
// incoming dispatchable edge has weight <= 0 (equivalently, no event
// precedes it), and true. If several candidates exist, the one with
// the lowest EventID is returned (an arbitrary but deterministic
// tie-break). If compilation fails, or no candidate exists, returns
// (0, false).
func (s *Schedule) Root() (EventID, bool) {
	if err := s.Compile(); err != nil {
		return 0, false
	}
	return s.rootFromCompiled()
}

// rootFromCompiled assumes the dispatchable graph is already current.
func (s *Schedule) rootFromCompiled() (EventID, bool) {
	nodes := s.graph.Nodes() // sorted ascending

	for _, v := range nodes {
		if s.hasNoPredecessor(v, nodes) {
			return v, true
		}
	}

	return 0, false
}

// hasNoPredecessor reports whether every u != v from which v is
// reachable has a non-positive dispatchable distance to v.
func (s *Schedule) hasNoPredecessor(v EventID, nodes []EventID) bool {
	for _, u := range nodes {
		if u == v {
			continue
		}
		w, ok := s.dispatchable.Weight(u, v)
		if !ok {
			continue
		}
		if w > 0 {
			return false
		}
	}
	return true
}
