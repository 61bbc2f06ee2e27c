package fixtures

import (
	"fmt"

	"github.com/chronoplan/stnet/interval"
	"github.com/chronoplan/stnet/schedule"
)

// minChainEpisodes is the smallest chain fixtures will build.
const minChainEpisodes = 1

// Chain builds a Schedule of n episodes, each with the given duration,
// joined end-to-start by a [0,0] (simultaneity) constraint:
// episode[i].End == episode[i+1].Start in dispatchable time. Returns
// the episodes in creation order. Requires n >= 1.
func Chain(n int, duration interval.Interval) (*schedule.Schedule, []schedule.Episode, error) {
	if n < minChainEpisodes {
		return nil, nil, fmt.Errorf("fixtures: Chain: n=%d < min=%d: %w", n, minChainEpisodes, ErrTooFewEpisodes)
	}

	s := schedule.New()
	episodes := make([]schedule.Episode, n)

	for i := 0; i < n; i++ {
		episodes[i] = s.AddEpisode(&duration)
		if i > 0 {
			if err := s.AddConstraint(episodes[i-1].End, episodes[i].Start, nil); err != nil {
				return nil, nil, fmt.Errorf("fixtures: Chain: link episode %d: %w", i, err)
			}
		}
	}

	return s, episodes, nil
}
