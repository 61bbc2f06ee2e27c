package schedule

import (
	"math"
	"sort"
)

// Order returns every event in chronological order: ascending earliest-
// start time w*(root->v), tie-broken by EventID ascending. Events
// unreachable from the root sort last, in EventID order among
// themselves.
//
// If no root can be discovered, Order returns the error from the
// triggering compile if one failed, or ErrNoRoot otherwise.
func (s *Schedule) Order() ([]EventID, error) {
	if err := s.Compile(); err != nil {
		return nil, err
	}

	root, ok := s.rootFromCompiled()
	if !ok {
		return nil, ErrNoRoot
	}

	nodes := s.graph.Nodes()
	distances := make(map[EventID]float64, len(nodes))
	for _, v := range nodes {
		if w, ok := s.dispatchable.Weight(root, v); ok {
			distances[v] = w
		} else {
			distances[v] = math.Inf(1)
		}
	}

	order := make([]EventID, len(nodes))
	copy(order, nodes)
	sort.SliceStable(order, func(i, j int) bool {
		di, dj := distances[order[i]], distances[order[j]]
		if di != dj {
			return di < dj
		}
		return order[i] < order[j]
	})

	return order, nil
}
