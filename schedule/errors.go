package schedule

import "errors"

// Sentinel errors for schedule operations.
var (
	// ErrUnknownEvent indicates an operation referenced an EventID that
	// has not been created via CreateEvent/AddEpisode.
	ErrUnknownEvent = errors.New("schedule: unknown event")

	// ErrMissingEdge indicates a query for a pair of events that are not
	// mutually reachable in the compiled dispatchable graph.
	ErrMissingEdge = errors.New("schedule: missing edge")

	// ErrNoPath indicates EventDistance was asked for a directed
	// distance that does not exist in the dispatchable graph.
	ErrNoPath = errors.New("schedule: no path")

	// ErrNoRoot indicates Order was called on a schedule that compiled
	// but has no discoverable root (every candidate eliminated). An
	// empty schedule fails earlier, in Compile, with apsp.ErrEmptyGraph.
	ErrNoRoot = errors.New("schedule: no root event")
)
