package fixtures

import (
	"fmt"

	"github.com/chronoplan/stnet/interval"
	"github.com/chronoplan/stnet/schedule"
)

// FanIn builds a Schedule with n parallel source episodes and one sink
// episode, each source ending exactly when the sink starts (a [0,0]
// constraint from source.End to sink.Start). Each episode carries the
// given duration. Requires n >= 2.
func FanIn(n int, duration interval.Interval) (*schedule.Schedule, []schedule.Episode, schedule.Episode, error) {
	if n < minFanEpisodes {
		return nil, nil, schedule.Episode{}, fmt.Errorf("fixtures: FanIn: n=%d < min=%d: %w", n, minFanEpisodes, ErrTooFewEpisodes)
	}

	s := schedule.New()

	sources := make([]schedule.Episode, n)
	for i := 0; i < n; i++ {
		sources[i] = s.AddEpisode(&duration)
	}

	sink := s.AddEpisode(&duration)
	for i := 0; i < n; i++ {
		if err := s.AddConstraint(sources[i].End, sink.Start, nil); err != nil {
			return nil, nil, schedule.Episode{}, fmt.Errorf("fixtures: FanIn: link source %d: %w", i, err)
		}
	}

	return s, sources, sink, nil
}
