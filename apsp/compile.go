package apsp

import (
	"math"

	"github.com/chronoplan/stnet/distgraph"
)

// Dispatchable is the minimal equivalent network produced by Compile:
// the all-pairs shortest-paths closure of a distgraph.Graph. It is
// rebuilt whole on every Compile call and never mutated incrementally
// (spec.md §3, "Dispatchable graph").
type Dispatchable struct {
	// index maps EventID -> dense row/column position.
	index map[distgraph.EventID]int
	// order is the inverse of index: position -> EventID, used to
	// report NegativeCycleError with the original EventID rather than
	// a row/column offset.
	order []distgraph.EventID
	// data is the row-major n*n distance buffer, n == len(order).
	data []float64
}

// n returns the dimension of the closed dispatchable graph.
func (d *Dispatchable) n() int {
	return len(d.order)
}

// Weight returns the shortest-path distance w*(u->v) and true if u and
// v are present and v is reachable from u (i.e. w*(u->v) survived
// closure as a finite distance), or (0, false) otherwise. The reverse
// direction v->u is not consulted.
func (d *Dispatchable) Weight(u, v distgraph.EventID) (float64, bool) {
	pi, ok := d.index[u]
	if !ok {
		return 0, false
	}
	pj, ok := d.index[v]
	if !ok {
		return 0, false
	}

	w := d.data[pi*d.n()+pj]
	if math.IsInf(w, 1) {
		return 0, false
	}

	return w, true
}

// Contains reports whether v was part of the graph closed by Compile.
func (d *Dispatchable) Contains(v distgraph.EventID) bool {
	_, ok := d.index[v]
	return ok
}

// Neighbours returns the out-neighbours of u in the dispatchable graph
// (every v != u reachable from u with a finite w*(u->v)), sorted
// ascending by EventID for deterministic propagation order (spec.md
// §4.4.1 guarantees the final result is independent of this order, but
// deterministic iteration still matters for reproducible test goldens).
func (d *Dispatchable) Neighbours(u distgraph.EventID) []distgraph.EventID {
	pi, ok := d.index[u]
	if !ok {
		return nil
	}

	n := d.n()
	base := pi * n
	out := make([]distgraph.EventID, 0, n)
	for pj := 0; pj < n; pj++ {
		if pj == pi {
			continue
		}
		if !math.IsInf(d.data[base+pj], 1) {
			out = append(out, d.order[pj])
		}
	}

	return out
}

// Compile computes the all-pairs shortest-paths closure of g: a fresh
// Dispatchable whose w*(u->v) is the shortest-path distance from u to v
// in g, for every mutually reachable ordered pair.
//
// Initialization: D(u,u) = 0 for every vertex; D(u,v) = w(u->v) if the
// edge is present; otherwise +Inf.
//
// Relaxation: for every ordered triple (k,i,j) of vertices, i == j
// included, D(i,j) <- min(D(i,j), D(i,k)+D(k,j)); +Inf additions saturate (a
// missing pair stays unreachable). The loop order is fixed k -> i -> j,
// matching the teacher's matrix.FloydWarshall, so results are a
// function of (V,E,w) alone up to IEEE-754 rounding, never of map
// iteration order.
//
// If at any point i == j and D(i,j) < 0, g contains a negative cycle:
// Compile returns immediately with a *NegativeCycleError carrying the
// two summands that closed the cycle, reported before any further
// relaxation work (spec.md §4.3, "reporting it before other work is
// required for reproducibility").
func Compile(g *distgraph.Graph) (*Dispatchable, error) {
	nodes := g.Nodes() // already sorted ascending by distgraph.Graph.Nodes
	n := len(nodes)
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	index := make(map[distgraph.EventID]int, n)
	for position, v := range nodes {
		index[v] = position
	}

	data := make([]float64, n*n)
	for i := range data {
		data[i] = math.Inf(1)
	}
	for pi, u := range nodes {
		data[pi*n+pi] = 0
		for _, v := range g.NeighboursOut(u) {
			w, ok := g.EdgeWeight(u, v)
			if !ok {
				continue
			}
			pj := index[v]
			data[pi*n+pj] = w
		}
	}

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, ij   float64
		cand         float64
	)

	for k = 0; k < n; k++ {
		baseK = k * n

		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n

			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}

				ij = data[baseI+j]
				cand = ik + kj
				if cand < ij {
					if i == j && cand < 0 {
						return nil, &NegativeCycleError{
							EventID: int(nodes[i]),
							DIK:     ik,
							DKJ:     kj,
						}
					}
					data[baseI+j] = cand
				}
			}
		}
	}

	return &Dispatchable{index: index, order: nodes, data: data}, nil
}
