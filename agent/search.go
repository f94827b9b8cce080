package agent

import (
	"stonegrid/game"
	"stonegrid/searcher"
)

// MinimaxAgent plays the minimax search each turn and a deterministic
// center-weighted spread at setup.
type MinimaxAgent struct {
	search *searcher.Minimax
}

func NewMinimaxAgent(options ...searcher.MinimaxOption) *MinimaxAgent {
	return &MinimaxAgent{search: searcher.NewMinimax(options...)}
}

func (a *MinimaxAgent) ChooseSetup(_ *game.GameState, player game.Owner, cfg game.Config) game.SetupAction {
	return spreadSetup(player, cfg)
}

func (a *MinimaxAgent) ChooseActions(state *game.GameState, player game.Owner, cfg game.Config) game.TurnActions {
	return a.search.FindActions(state, player, cfg)
}

func (a *MinimaxAgent) Reset() {
	a.search.Reset()
}

// Metrics exposes the most recent search's diagnostic counters.
func (a *MinimaxAgent) Metrics() searcher.Metrics {
	return a.search.Metrics()
}

// MCTSAgent plays Monte Carlo tree search each turn.
type MCTSAgent struct {
	search *searcher.MCTS
}

func NewMCTSAgent(options ...searcher.MCTSOption) *MCTSAgent {
	return &MCTSAgent{search: searcher.NewMCTS(options...)}
}

func (a *MCTSAgent) ChooseSetup(_ *game.GameState, player game.Owner, cfg game.Config) game.SetupAction {
	return spreadSetup(player, cfg)
}

func (a *MCTSAgent) ChooseActions(state *game.GameState, player game.Owner, cfg game.Config) game.TurnActions {
	return a.search.FindActions(state, player, cfg)
}

func (a *MCTSAgent) Reset() {
	a.search.Reset()
}

func (a *MCTSAgent) Metrics() searcher.Metrics {
	return a.search.Metrics()
}
