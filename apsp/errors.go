// Package apsp computes the all-pairs shortest paths closure of a
// distgraph.Graph (the STN "dispatchable graph"), using a dense
// Floyd-Warshall relaxation with a fixed k->i->j loop order for
// deterministic accumulation, and detects negative cycles (STN
// inconsistency) during relaxation rather than only after.
//
// Complexity: O(V^3) time, O(V^2) memory, matching spec's §4.3.
package apsp

import (
	"errors"
	"strconv"
)

// ErrEmptyGraph indicates Compile was called on a graph with no
// vertices; there is nothing to close.
var ErrEmptyGraph = errors.New("apsp: empty graph")

// ErrMissingEdge indicates a query for a pair (i,j) absent from the
// dispatchable graph, i.e. i and j are not mutually reachable.
var ErrMissingEdge = errors.New("apsp: missing edge")

// NegativeCycleError reports a negative cycle discovered while closing
// vertex k: the cycle closes through EventID, with the two summands
// d(i,k) and d(k,j) (here i == j == EventID) that produced a negative
// self-distance.
type NegativeCycleError struct {
	EventID int
	DIK     float64
	DKJ     float64
}

// Error implements the error interface.
func (e *NegativeCycleError) Error() string {
	return "apsp: negative cycle at event " + strconv.Itoa(e.EventID)
}
