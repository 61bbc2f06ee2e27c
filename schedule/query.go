package schedule

import (
	"fmt"

	"github.com/chronoplan/stnet/interval"
)

// Interval compiles if dirty, then returns the feasible offset
// [-w*(target->source), w*(source->target)] between source and
// target. Fails with ErrMissingEdge if either direction is absent in
// the dispatchable graph (the two events are not mutually reachable).
//
// The lower bound is never returned as negative zero: a computed -0
// (from negating a dispatchable weight of exactly 0) is normalized to
// +0 before the Interval is constructed.
func (s *Schedule) Interval(source, target EventID) (interval.Interval, error) {
	if err := s.Compile(); err != nil {
		return interval.Interval{}, err
	}

	l, ok := s.dispatchable.Weight(target, source)
	if !ok {
		return interval.Interval{}, fmt.Errorf("schedule: interval(%d,%d): %w", source, target, ErrMissingEdge)
	}
	u, ok := s.dispatchable.Weight(source, target)
	if !ok {
		return interval.Interval{}, fmt.Errorf("schedule: interval(%d,%d): %w", source, target, ErrMissingEdge)
	}

	lower := -l
	if lower == 0 {
		lower = 0 // suppress negative zero
	}

	return interval.New(lower, u), nil
}

// EventDistance is the low-level API for the directional distance
// between two events. Advanced use only: Interval should be preferred
// unless the caller can explain why a raw directed distance is needed.
// Compiles if dirty. Fails with ErrUnknownEvent if either endpoint was
// never created, or ErrNoPath if the dispatchable graph has no edge
// source->target.
func (s *Schedule) EventDistance(source, target EventID) (float64, error) {
	if !s.graph.ContainsVertex(source) {
		return 0, fmt.Errorf("schedule: event distance: event %d: %w", source, ErrUnknownEvent)
	}
	if !s.graph.ContainsVertex(target) {
		return 0, fmt.Errorf("schedule: event distance: event %d: %w", target, ErrUnknownEvent)
	}

	if err := s.Compile(); err != nil {
		return 0, err
	}

	w, ok := s.dispatchable.Weight(source, target)
	if !ok {
		return 0, fmt.Errorf("schedule: event distance(%d,%d): %w", source, target, ErrNoPath)
	}

	return w, nil
}

// Window returns the current execution window of event. No compile is
// required: windows are maintained incrementally by propagation and
// read directly. Fails with ErrUnknownEvent if event was never
// created.
func (s *Schedule) Window(event EventID) (interval.Interval, error) {
	w, ok := s.windows[event]
	if !ok {
		return interval.Interval{}, fmt.Errorf("schedule: window: event %d: %w", event, ErrUnknownEvent)
	}
	return w, nil
}
