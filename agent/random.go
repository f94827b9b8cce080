package agent

import (
	"math/rand"

	"stonegrid/game"
)

// Random plays uniformly random legal setups and actions. Useful as a
// baseline opponent and for exercising the engine in tests.
type Random struct {
	seed int64
	rng  *rand.Rand
}

func NewRandom(seed int64) *Random {
	return &Random{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) ChooseSetup(_ *game.GameState, player game.Owner, cfg game.Config) game.SetupAction {
	return game.RandomSetup(player, cfg, r.rng)
}

func (r *Random) ChooseActions(state *game.GameState, player game.Owner, _ game.Config) game.TurnActions {
	return game.RandomActions(state, player, r.rng)
}

func (r *Random) Reset() {
	r.rng = rand.New(rand.NewSource(r.seed))
}
