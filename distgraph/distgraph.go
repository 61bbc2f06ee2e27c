// Package distgraph implements the STN distance graph: a directed
// weighted multigraph keyed by dense non-negative integer event IDs,
// where adding a second edge between the same ordered pair overwrites
// the existing weight (see schedule package, §"fundamental encoding
// invariant").
//
// Unlike a general-purpose graph library, distgraph has no
// directed/undirected toggle, no loop/multi-edge policy, and no
// weighted/unweighted distinction: every edge is directed and carries a
// float64 distance, because that is all the STN encoding ever needs.
// distgraph is not safe for concurrent use; the schedule core that owns
// it mutates it from a single goroutine (see spec §5).
package distgraph

import (
	"errors"
	"sort"
)

// EventID identifies a vertex (timepoint) in the distance graph.
type EventID int

// Sentinel errors for distance-graph operations.
var (
	// ErrUnknownVertex indicates an operation referenced an EventID that
	// has not been inserted via AddVertex.
	ErrUnknownVertex = errors.New("distgraph: unknown vertex")
)

// Graph is a directed weighted graph over EventID vertices.
//
// adjacency[u][v] holds the weight of edge u->v, if present. A second
// call to UpsertEdge(u, v, ...) replaces the stored weight in place;
// the graph never holds more than one edge per ordered pair.
type Graph struct {
	vertices  map[EventID]struct{}
	adjacency map[EventID]map[EventID]float64
	// incoming mirrors adjacency for O(1) reverse-neighbour queries,
	// analogous to core.Graph's adjacencyList mirroring for undirected
	// edges — here it exists purely for directed reverse lookups.
	incoming map[EventID]map[EventID]struct{}
}

// New returns an empty distance graph.
func New() *Graph {
	return &Graph{
		vertices:  make(map[EventID]struct{}),
		adjacency: make(map[EventID]map[EventID]float64),
		incoming:  make(map[EventID]map[EventID]struct{}),
	}
}

// AddVertex inserts v if absent. Idempotent: inserting an existing
// vertex is a no-op.
func (g *Graph) AddVertex(v EventID) {
	if _, ok := g.vertices[v]; ok {
		return
	}
	g.vertices[v] = struct{}{}
	g.adjacency[v] = make(map[EventID]float64)
	g.incoming[v] = make(map[EventID]struct{})
}

// ContainsVertex reports whether v has been inserted.
func (g *Graph) ContainsVertex(v EventID) bool {
	_, ok := g.vertices[v]
	return ok
}

// UpsertEdge sets the weight of the directed edge u->v, creating it if
// absent or overwriting the prior weight if present. Both endpoints
// must already exist; UpsertEdge never implicitly creates vertices
// (callers insert both endpoints via AddVertex first, matching the
// schedule core's own vertex-then-edge ordering).
func (g *Graph) UpsertEdge(u, v EventID, weight float64) error {
	if !g.ContainsVertex(u) {
		return ErrUnknownVertex
	}
	if !g.ContainsVertex(v) {
		return ErrUnknownVertex
	}

	g.adjacency[u][v] = weight
	g.incoming[v][u] = struct{}{}

	return nil
}

// EdgeWeight returns the weight of edge u->v and true if present, or
// (0, false) if absent.
func (g *Graph) EdgeWeight(u, v EventID) (float64, bool) {
	out, ok := g.adjacency[u]
	if !ok {
		return 0, false
	}
	w, ok := out[v]
	return w, ok
}

// NeighboursOut returns the vertices v for which an edge u->v exists,
// sorted ascending by EventID for deterministic iteration.
func (g *Graph) NeighboursOut(u EventID) []EventID {
	out, ok := g.adjacency[u]
	if !ok {
		return nil
	}

	neighbours := make([]EventID, 0, len(out))
	for v := range out {
		neighbours = append(neighbours, v)
	}
	sort.Slice(neighbours, func(i, j int) bool { return neighbours[i] < neighbours[j] })

	return neighbours
}

// Incoming returns the vertices u for which an edge u->v exists, sorted
// ascending by EventID for deterministic iteration.
func (g *Graph) Incoming(v EventID) []EventID {
	in, ok := g.incoming[v]
	if !ok {
		return nil
	}

	preds := make([]EventID, 0, len(in))
	for u := range in {
		preds = append(preds, u)
	}
	sort.Slice(preds, func(i, j int) bool { return preds[i] < preds[j] })

	return preds
}

// Nodes returns every vertex in the graph, sorted ascending by EventID.
func (g *Graph) Nodes() []EventID {
	nodes := make([]EventID, 0, len(g.vertices))
	for v := range g.vertices {
		nodes = append(nodes, v)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })

	return nodes
}

// NodeCount returns the number of vertices in the graph.
func (g *Graph) NodeCount() int {
	return len(g.vertices)
}
