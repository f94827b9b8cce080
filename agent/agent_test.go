package agent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"stonegrid/game"
	"stonegrid/searcher"
)

func playingState(t *testing.T, cfg game.Config) *game.GameState {
	t.Helper()
	gs, err := game.ApplySetup(game.NewGameState(cfg),
		spreadSetup(game.Player1, cfg), spreadSetup(game.Player2, cfg), cfg)
	require.NoError(t, err)
	return gs
}

func TestSpreadSetupIsLegal(t *testing.T) {
	small := game.DefaultConfig()
	wide := game.DefaultConfig()
	wide.BoardSize = 7
	heavy := game.DefaultConfig()
	heavy.SetupStones = 25

	for _, cfg := range []game.Config{small, wide, heavy} {
		require.NoError(t, cfg.Validate())
		_, err := game.ApplySetup(game.NewGameState(cfg),
			spreadSetup(game.Player1, cfg), spreadSetup(game.Player2, cfg), cfg)
		require.NoError(t, err)
	}
}

func TestAgentsReturnCompleteActions(t *testing.T) {
	cfg := game.DefaultConfig()
	gs := playingState(t, cfg)

	agents := map[string]Agent{
		"random":  NewRandom(1),
		"greedy":  NewGreedy(),
		"minimax": NewMinimaxAgent(searcher.WithMaxDepth(1)),
		"mcts":    NewMCTSAgent(searcher.WithSimulations(30)),
	}
	for name, a := range agents {
		t.Run(name, func(t *testing.T) {
			setup := a.ChooseSetup(game.NewGameState(cfg), game.Player1, cfg)
			_, err := game.ApplySetup(game.NewGameState(cfg), setup,
				spreadSetup(game.Player2, cfg), cfg)
			require.NoError(t, err)

			actions := a.ChooseActions(gs, game.Player1, cfg)
			require.NoError(t, actions.Validate(gs, game.Player1))
			a.Reset()
		})
	}
}

func TestGreedyIsDeterministic(t *testing.T) {
	cfg := game.DefaultConfig()
	gs := playingState(t, cfg)

	g := NewGreedy()
	require.Equal(t, g.ChooseActions(gs, game.Player1, cfg), g.ChooseActions(gs, game.Player1, cfg))
}

func TestRandomResetReplays(t *testing.T) {
	cfg := game.DefaultConfig()
	gs := playingState(t, cfg)

	r := NewRandom(17)
	first := r.ChooseActions(gs, game.Player1, cfg)
	r.Reset()
	second := r.ChooseActions(gs, game.Player1, cfg)
	require.Equal(t, first, second)
}
