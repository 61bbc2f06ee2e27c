package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronoplan/stnet/fixtures"
	"github.com/chronoplan/stnet/interval"
)

func TestChainTooFewEpisodes(t *testing.T) {
	t.Parallel()

	_, _, err := fixtures.Chain(0, interval.New(1, 1))
	assert.ErrorIs(t, err, fixtures.ErrTooFewEpisodes)
}

func TestChainProducesSerialDurations(t *testing.T) {
	t.Parallel()

	s, episodes, err := fixtures.Chain(3, interval.New(5, 5))
	require.NoError(t, err)
	require.Len(t, episodes, 3)

	root, ok := s.Root()
	require.True(t, ok)

	// Each episode takes exactly 5 units, chained end-to-start: the
	// third episode's end is 15 units after the root.
	got, err := s.Interval(root, episodes[2].End)
	require.NoError(t, err)
	assert.Equal(t, interval.New(15, 15), got)
}

func TestFanOutTooFewEpisodes(t *testing.T) {
	t.Parallel()

	_, _, _, err := fixtures.FanOut(1, interval.New(1, 1))
	assert.ErrorIs(t, err, fixtures.ErrTooFewEpisodes)
}

func TestFanOutChildrenStartTogether(t *testing.T) {
	t.Parallel()

	s, hub, children, err := fixtures.FanOut(3, interval.New(4, 4))
	require.NoError(t, err)
	require.Len(t, children, 3)

	for _, child := range children {
		got, err := s.Interval(hub.End, child.Start)
		require.NoError(t, err)
		assert.Equal(t, interval.Zero(), got)
	}
}

func TestFanInTooFewEpisodes(t *testing.T) {
	t.Parallel()

	_, _, _, err := fixtures.FanIn(1, interval.New(1, 1))
	assert.ErrorIs(t, err, fixtures.ErrTooFewEpisodes)
}

func TestFanInSourcesJoinSink(t *testing.T) {
	t.Parallel()

	s, sources, sink, err := fixtures.FanIn(3, interval.New(2, 2))
	require.NoError(t, err)
	require.Len(t, sources, 3)

	for _, source := range sources {
		got, err := s.Interval(source.End, sink.Start)
		require.NoError(t, err)
		assert.Equal(t, interval.Zero(), got)
	}
}
