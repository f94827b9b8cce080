package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

/*
Evaluation spec: weighted sum of pure features, weights zeroable to
isolate a single one. Each subtest zeroes everything but the feature under
test.
*/

func isolate(set func(*Weights)) Config {
	cfg := DefaultConfig()
	cfg.Weights = Weights{}
	set(&cfg.Weights)
	return cfg
}

func TestEvaluateFeatures(t *testing.T) {
	gs := testState(5, map[Position]Territory{
		{0, 0}: {Player1, 4},
		{0, 1}: {Player1, 4},
		{1, 1}: {Player1, 2},
		{2, 2}: {Player1, 10},
		{4, 0}: {Player2, 6},
		{4, 4}: {Player2, 1},
	})

	t.Run("territory count is the ownership differential", func(t *testing.T) {
		cfg := isolate(func(w *Weights) { w.TerritoryCount = 1 })
		require.Equal(t, 2.0, Evaluate(gs, Player1, cfg))
		require.Equal(t, -2.0, Evaluate(gs, Player2, cfg))
	})

	t.Run("stone advantage is the stone differential", func(t *testing.T) {
		cfg := isolate(func(w *Weights) { w.StoneAdvantage = 1 })
		require.Equal(t, 13.0, Evaluate(gs, Player1, cfg)) // 20 vs 7
	})

	t.Run("growth potential counts cells below the cap", func(t *testing.T) {
		cfg := isolate(func(w *Weights) { w.GrowthPotential = 1 })
		require.Equal(t, 3.0, Evaluate(gs, Player1, cfg)) // (2,2) is capped
	})

	t.Run("expansion opportunity counts distinct neutral neighbors", func(t *testing.T) {
		cfg := isolate(func(w *Weights) { w.ExpansionOpportunity = 1 })
		// (0,0),(0,1),(1,1) ring: (1,0),(0,2),(1,2),(2,1); (2,2): (1,2) again,(2,1) again,(2,3),(3,2)
		require.Equal(t, 6.0, Evaluate(gs, Player1, cfg))
	})

	t.Run("center control decays with distance", func(t *testing.T) {
		cfg := isolate(func(w *Weights) { w.CenterControl = 1 })
		// distances to (2,2): 4, 3, 2, 0
		want := 1.0/5 + 1.0/4 + 1.0/3 + 1.0
		require.InDelta(t, want, Evaluate(gs, Player1, cfg), 1e-9)
	})

	t.Run("threatened territories have a stronger enemy neighbor", func(t *testing.T) {
		gs := testState(5, map[Position]Territory{
			{3, 0}: {Player1, 2},
			{4, 0}: {Player2, 6},
			{4, 4}: {Player2, 1},
		})
		cfg := isolate(func(w *Weights) { w.ThreatPenalty = -1 })
		require.Equal(t, -1.0, Evaluate(gs, Player1, cfg))
		require.Equal(t, 0.0, Evaluate(gs, Player2, cfg))
	})

	t.Run("attack opportunity needs the configured margin", func(t *testing.T) {
		gs := testState(5, map[Position]Territory{
			{3, 0}: {Player1, 2},
			{4, 0}: {Player2, 6},
			{4, 4}: {Player2, 1},
		})
		cfg := isolate(func(w *Weights) { w.AttackOpportunity = 1 })
		cfg.AttackMargin = 1
		// 6 > 2+1 at (4,0) vs (3,0); nothing borders (4,4).
		require.Equal(t, 1.0, Evaluate(gs, Player2, cfg))
		require.Equal(t, 0.0, Evaluate(gs, Player1, cfg))
	})

	t.Run("connectivity is the largest connected component", func(t *testing.T) {
		cfg := isolate(func(w *Weights) { w.Connectivity = 1 })
		require.Equal(t, 3.0, Evaluate(gs, Player1, cfg)) // (0,0)-(0,1)-(1,1)
		require.Equal(t, 1.0, Evaluate(gs, Player2, cfg))
	})

	t.Run("merge potential counts pairs fitting under the cap", func(t *testing.T) {
		cfg := isolate(func(w *Weights) { w.MergePotential = 1 })
		// (0,0)+(0,1)=8 ok, (0,1)+(1,1)=6 ok, (1,1)+(2,2) not adjacent.
		require.Equal(t, 2.0, Evaluate(gs, Player1, cfg))
	})

	t.Run("all weights zeroed scores zero", func(t *testing.T) {
		cfg := isolate(func(w *Weights) {})
		require.Zero(t, Evaluate(gs, Player1, cfg))
	})
}
