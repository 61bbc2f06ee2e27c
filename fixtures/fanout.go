package fixtures

import (
	"fmt"

	"github.com/chronoplan/stnet/interval"
	"github.com/chronoplan/stnet/schedule"
)

// minFanEpisodes is the smallest fan-out/fan-in branch count fixtures
// will build.
const minFanEpisodes = 2

// FanOut builds a Schedule with one hub episode and n child episodes,
// each child starting exactly when the hub ends (a [0,0] constraint
// from hub.End to child.Start). Each episode carries the given
// duration. Requires n >= 2.
func FanOut(n int, duration interval.Interval) (*schedule.Schedule, schedule.Episode, []schedule.Episode, error) {
	if n < minFanEpisodes {
		return nil, schedule.Episode{}, nil, fmt.Errorf("fixtures: FanOut: n=%d < min=%d: %w", n, minFanEpisodes, ErrTooFewEpisodes)
	}

	s := schedule.New()
	hub := s.AddEpisode(&duration)

	children := make([]schedule.Episode, n)
	for i := 0; i < n; i++ {
		children[i] = s.AddEpisode(&duration)
		if err := s.AddConstraint(hub.End, children[i].Start, nil); err != nil {
			return nil, schedule.Episode{}, nil, fmt.Errorf("fixtures: FanOut: link child %d: %w", i, err)
		}
	}

	return s, hub, children, nil
}
