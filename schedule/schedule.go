// Package schedule implements the Simple Temporal Network scheduling
// engine: event/episode lifecycle, constraint addition, lazy
// recompilation via the apsp package, interval queries, execution-
// window state, and online commitment with one-hop propagation.
//
// A Schedule is a self-contained mutable value; it is not safe for
// concurrent use (see distgraph's concurrency note — the same
// single-goroutine-owner model applies here, one level up).
package schedule

import (
	"fmt"

	"github.com/chronoplan/stnet/apsp"
	"github.com/chronoplan/stnet/distgraph"
	"github.com/chronoplan/stnet/interval"
)

// EventID identifies a timepoint. Re-exported from distgraph so
// callers never need to import distgraph directly.
type EventID = distgraph.EventID

// Episode is an ordered pair of event IDs: the start and end of an
// action with a duration. Episodes are value-copy handles; identity is
// the pair of event IDs, not a pointer into the Schedule.
type Episode struct {
	Start EventID
	End   EventID
}

// defaultMagnitude is M, the bound of the unconstrained window
// [-M,+M] assigned to every event on creation.
const defaultMagnitude = interval.M

// Schedule orchestrates events and the timing constraints between
// them. The zero value is not usable; construct with New.
type Schedule struct {
	// events records creation order, for deterministic iteration where
	// the STN itself has none to offer (e.g. fixture dumps).
	events []EventID

	// graph is the STN as built by the user: w(u->v)=upper, w(v->u)=-lower
	// per constraint, overwritten on re-statement.
	graph *distgraph.Graph

	// dispatchable is the STN in minimal-network form after APSP. Nil
	// before the first successful compile and after a failed one; after
	// a mutation it is stale until the next Compile rebuilds it.
	dispatchable *apsp.Dispatchable

	// windows holds the current feasible execution window per event,
	// referenced to a timeline where the schedule's root is t=0.
	windows map[EventID]interval.Interval

	// commitments holds user-provided event completion times, also
	// referenced to the root-at-zero timeline.
	commitments map[EventID]float64

	// commitOrder mirrors commitments' insertion order: Go maps have no
	// defined iteration order, so re-applying commitments after compile
	// (spec requires insertion-iteration order) needs a side slice.
	// Re-committing an already-committed event does not duplicate its
	// entry.
	commitOrder []EventID

	// dirty is true whenever graph has changed since the last
	// successful compile.
	dirty bool

	epsilon   float64
	magnitude float64
}

// New returns an empty, dirty Schedule.
func New(opts ...Option) *Schedule {
	s := &Schedule{
		graph:       distgraph.New(),
		windows:     make(map[EventID]interval.Interval),
		commitments: make(map[EventID]float64),
		dirty:       true,
		epsilon:     interval.ConvergenceEpsilon,
		magnitude:   defaultMagnitude,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateEvent is the low-level API for allocating a bare event.
// Advanced use only: AddEpisode should be preferred unless the caller
// can explain why a bare event is needed. Allocates the next dense
// integer ID, inserts the vertex, sets its window to [-M,+M], and
// marks the schedule dirty.
func (s *Schedule) CreateEvent() EventID {
	id := EventID(len(s.events))
	s.events = append(s.events, id)
	s.graph.AddVertex(id)
	s.windows[id] = interval.New(-s.magnitude, s.magnitude)
	s.dirty = true
	return id
}

// AddEpisode creates a new Episode (two fresh events) and installs the
// interval constraint duration between them (default [0,0] if nil).
// A duration with lower > upper is accepted here and surfaces later as
// a negative-cycle compile error.
func (s *Schedule) AddEpisode(duration *interval.Interval) Episode {
	d := interval.Zero()
	if duration != nil {
		d = *duration
	}

	start := s.CreateEvent()
	end := s.CreateEvent()

	// Edges are inserted directly: both endpoints already exist, so
	// this cannot fail the way AddConstraint's public contract can.
	_ = s.graph.UpsertEdge(start, end, d.Upper)
	_ = s.graph.UpsertEdge(end, start, -d.Lower)

	s.dirty = true
	return Episode{Start: start, End: end}
}

// AddConstraint installs the interval constraint (default [0,0],
// encoding simultaneity) between source and target, overwriting any
// prior constraint between the same ordered pair. Fails with
// ErrUnknownEvent if either endpoint is absent.
func (s *Schedule) AddConstraint(source, target EventID, bound *interval.Interval) error {
	if !s.graph.ContainsVertex(source) {
		return fmt.Errorf("schedule: add constraint: event %d: %w", source, ErrUnknownEvent)
	}
	if !s.graph.ContainsVertex(target) {
		return fmt.Errorf("schedule: add constraint: event %d: %w", target, ErrUnknownEvent)
	}

	d := interval.Zero()
	if bound != nil {
		d = *bound
	}

	if err := s.graph.UpsertEdge(source, target, d.Upper); err != nil {
		return fmt.Errorf("schedule: add constraint: %w", err)
	}
	if err := s.graph.UpsertEdge(target, source, -d.Lower); err != nil {
		return fmt.Errorf("schedule: add constraint: %w", err)
	}

	s.dirty = true
	return nil
}

// GetDuration returns the controllable duration of an episode:
// [-w(end->start), w(start->end)], read from the raw constraint graph
// (not the compiled dispatchable graph). Defaults to [0,0] per edge if
// an edge is missing.
func (s *Schedule) GetDuration(e Episode) interval.Interval {
	lower, ok := s.graph.EdgeWeight(e.End, e.Start)
	if !ok {
		lower = 0
	}
	upper, ok := s.graph.EdgeWeight(e.Start, e.End)
	if !ok {
		upper = 0
	}
	return interval.New(-lower, upper)
}

// EventCount returns the number of events created so far.
func (s *Schedule) EventCount() int {
	return len(s.events)
}

// Events returns every event ID in creation order. The returned slice
// is a copy; mutating it does not affect the Schedule.
func (s *Schedule) Events() []EventID {
	out := make([]EventID, len(s.events))
	copy(out, s.events)
	return out
}

// Converged reports whether i has collapsed to within the Schedule's
// convergence epsilon (default interval.ConvergenceEpsilon, overridable
// with WithEpsilon).
func (s *Schedule) Converged(i interval.Interval) bool {
	return i.ConvergedWithin(s.epsilon)
}
