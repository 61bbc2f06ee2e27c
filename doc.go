// Package stnet is a Simple Temporal Network scheduling engine: it
// maintains a set of timepoints ("events") and binary temporal
// constraints of the form `lower <= t_j - t_i <= upper` between them,
// and answers scheduling queries — pairwise feasible intervals,
// per-event execution windows, earliest/latest dispatch times — while
// supporting online commitment of events to concrete times as the
// schedule executes.
//
// Under the hood, the engine is organized under four subpackages:
//
//	interval/  — closed interval arithmetic: add, negate, subtract, meet
//	distgraph/ — the directed weighted distance graph encoding constraints
//	apsp/      — all-pairs shortest paths compilation into a dispatchable
//	             minimal network, with negative-cycle (inconsistency) detection
//	schedule/  — the Schedule type: events, episodes, constraints, lazy
//	             recompilation, interval/window queries, online commitment
//
// fixtures/ builds deterministic chain, fan-out, and fan-in
// *schedule.Schedule topologies for tests and benchmarks.
//
// A minimal walkthrough:
//
//	s := schedule.New()
//	episode1 := s.AddEpisode(&interval.Interval{Lower: 6, Upper: 17})
//	episode2 := s.AddEpisode(&interval.Interval{Lower: 8, Upper: 29})
//	s.AddConstraint(episode1.End, episode2.Start, nil)
//
//	root, _ := s.Root()
//	window, _ := s.Interval(root, episode2.Start) // [6,17]
//
// Scheduling model: single-threaded cooperative. A Schedule is a
// self-contained mutable value; all operations are synchronous and
// non-blocking. Concurrent mutation of one Schedule from multiple
// goroutines is undefined; independent Schedule instances share no
// state.
//
//	go get github.com/chronoplan/stnet
package stnet
