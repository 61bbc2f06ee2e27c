// Package fixtures provides deterministic Schedule builders for tests
// and benchmarks: Chain (a sequence of episodes), FanOut (one episode
// feeding n parallel children), and FanIn (n parallel episodes joining
// a single successor). Grounded in the teacher's builder package
// (Path, Star) but producing *schedule.Schedule values rather than
// *core.Graph.
package fixtures

import "errors"

// ErrTooFewEpisodes indicates a fixture was asked to build fewer
// episodes than its topology requires.
var ErrTooFewEpisodes = errors.New("fixtures: too few episodes")
