package schedule

import "github.com/chronoplan/stnet/apsp"

// Compile rebuilds the dispatchable graph from the raw constraint
// graph if dirty; otherwise it is a no-op. On success, dirty is
// cleared before commitments are re-applied, so commitEvent (called
// internally below) does not recurse back into a dirty Compile.
//
// Re-applying commitments happens in commitOrder (insertion-iteration
// order), per spec: "re-applied commitments during compile are
// processed in insertion iteration order of K".
//
// A negative-cycle failure poisons the next query: dirty remains set,
// the stale dispatchable graph (if any) is discarded, and the error is
// returned as-is (an *apsp.NegativeCycleError) for the caller to
// inspect with errors.As.
func (s *Schedule) Compile() error {
	if !s.dirty {
		return nil
	}

	compiled, err := apsp.Compile(s.graph)
	if err != nil {
		s.dispatchable = nil
		return err
	}

	s.dispatchable = compiled
	s.dirty = false

	for _, event := range s.commitOrder {
		tau := s.commitments[event]
		if err := s.commitEvent(event, tau); err != nil {
			return err
		}
	}

	return nil
}
