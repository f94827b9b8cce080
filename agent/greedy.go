package agent

import "stonegrid/game"

// Greedy takes the single highest locally scored candidate set each turn,
// with no lookahead. It is fully deterministic.
type Greedy struct {
	maxPerTerritory int
	maxCandidates   int
}

func NewGreedy() *Greedy {
	return &Greedy{maxPerTerritory: 3, maxCandidates: 16}
}

func (g *Greedy) ChooseSetup(_ *game.GameState, player game.Owner, cfg game.Config) game.SetupAction {
	return spreadSetup(player, cfg)
}

func (g *Greedy) ChooseActions(state *game.GameState, player game.Owner, cfg game.Config) game.TurnActions {
	candidates := game.GenerateCandidates(state, player, cfg, g.maxPerTerritory, g.maxCandidates)
	return candidates[0].Actions
}

func (g *Greedy) Reset() {}
