package schedule

import "github.com/chronoplan/stnet/interval"

// CommitEvent is the low-level API for marking an event complete.
// Advanced use only: CompleteEpisode should be preferred unless the
// caller can explain why committing a bare event is needed. Commits
// event to time tau and greedily updates the
// execution windows of its uncommitted dispatchable neighbours. Time
// is elapsed time since the schedule's root.
//
// CommitEvent does not verify that tau lies within the event's current
// window; callers requiring that check must call Window first.
func (s *Schedule) CommitEvent(event EventID, tau float64) error {
	return s.commitEvent(event, tau)
}

// CompleteEpisode is equivalent to CommitEvent(episode.End, tau).
func (s *Schedule) CompleteEpisode(e Episode, tau float64) error {
	return s.commitEvent(e.End, tau)
}

// commitEvent records the commitment and propagates it. Compile's
// re-application loop calls this directly (bypassing CommitEvent's
// exported wrapper, which exists only to name the public entry point).
func (s *Schedule) commitEvent(event EventID, tau float64) error {
	s.commitments[event] = tau
	s.recordCommitOrder(event)
	s.windows[event] = interval.New(tau, tau)

	return s.propagate(event)
}

// recordCommitOrder appends event to commitOrder unless already
// present, preserving first-commit insertion order across re-commits.
func (s *Schedule) recordCommitOrder(event EventID) {
	for _, e := range s.commitOrder {
		if e == event {
			return
		}
	}
	s.commitOrder = append(s.commitOrder, event)
}

// propagate tightens the execution window of every uncommitted
// dispatchable out-neighbour of event, one hop, per spec §4.4.1.
// Ensures the dispatchable graph is current first (a no-op when
// already compiled, as it always is by the time propagate runs from
// within Compile's re-application loop).
func (s *Schedule) propagate(event EventID) error {
	if err := s.Compile(); err != nil {
		return err
	}

	eventWindow := s.windows[event]

	for _, neighbour := range s.dispatchable.Neighbours(event) {
		if _, committed := s.commitments[neighbour]; committed {
			continue
		}

		delta, err := s.Interval(event, neighbour)
		if err != nil {
			return err
		}

		s.windows[neighbour] = s.windows[neighbour].Meet(eventWindow.Add(delta))
	}

	return nil
}
