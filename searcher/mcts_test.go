package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"stonegrid/game"
)

/*
MCTS spec:
- every episode descends through exactly one root child: root child visits
  sum to the episode count, no lost simulations
- the returned action set is always complete and valid
- robust-child selection picks by visits, not value
- a fixed seed reproduces the whole search
*/

func TestMCTSVisitConservation(t *testing.T) {
	cfg := game.DefaultConfig()
	gs := midgameState(t, cfg)

	const episodes = 120
	m := NewMCTS(WithSimulations(episodes), WithMCTSSeed(3))
	root := newNode(nil, nil, gs.Copy(), game.Player1, cfg, m.maxPerTerritory, m.maxCandidates)
	m.search(root, game.Player1, cfg)

	sum := 0
	for _, child := range root.children {
		sum += child.visits
	}
	require.Equal(t, episodes, sum)
	require.Equal(t, episodes, root.visits)
	require.Equal(t, episodes, m.Metrics().Simulations)
}

func TestMCTSReturnsValidActions(t *testing.T) {
	cfg := game.DefaultConfig()
	gs := midgameState(t, cfg)

	m := NewMCTS(WithSimulations(60), WithMCTSSeed(5))
	actions := m.FindActions(gs, game.Player2, cfg)
	require.NoError(t, actions.Validate(gs, game.Player2))
}

func TestMCTSSeedReproducible(t *testing.T) {
	cfg := game.DefaultConfig()
	gs := midgameState(t, cfg)

	first := NewMCTS(WithSimulations(80), WithMCTSSeed(9)).FindActions(gs, game.Player1, cfg)
	second := NewMCTS(WithSimulations(80), WithMCTSSeed(9)).FindActions(gs, game.Player1, cfg)
	require.Equal(t, first, second)

	m := NewMCTS(WithSimulations(80), WithMCTSSeed(9))
	third := m.FindActions(gs, game.Player1, cfg)
	m.Reset()
	fourth := m.FindActions(gs, game.Player1, cfg)
	require.Equal(t, third, fourth)
}

func TestMCTSRolloutSmartnessBounds(t *testing.T) {
	cfg := game.DefaultConfig()
	gs := midgameState(t, cfg)

	for _, smartness := range []float64{0, 0.5, 1} {
		m := NewMCTS(WithSimulations(40), WithRolloutSmartness(smartness), WithMCTSSeed(7))
		actions := m.FindActions(gs, game.Player1, cfg)
		require.NoError(t, actions.Validate(gs, game.Player1), "smartness %v", smartness)
	}
}

func TestRobustChildPicksByVisits(t *testing.T) {
	parent := &node{}
	low := &node{visits: 10, value: 10} // perfect average
	high := &node{visits: 50, value: 20}
	parent.children = []*node{low, high}

	require.Same(t, high, parent.robustChild(),
		"final selection is by visit count, not average value")
}

func TestBestChildPrefersHigherMean(t *testing.T) {
	parent := &node{visits: 20}
	weak := &node{visits: 10, value: 2}
	strong := &node{visits: 10, value: 8}
	parent.children = []*node{weak, strong}

	require.Same(t, strong, parent.bestChild(1.0),
		"equal visits leave only the exploitation term")
}
