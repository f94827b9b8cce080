// Package agent defines the boundary the core exposes to drivers: a
// player picks initial placements once, then one complete action set per
// turn. Reset clears internal search state between independent games so
// seeded runs replay identically.
package agent

import "stonegrid/game"

type Agent interface {
	// ChooseSetup selects the initial stone placements, called once
	// before play begins.
	ChooseSetup(state *game.GameState, player game.Owner, cfg game.Config) game.SetupAction
	// ChooseActions is called once per turn and must return exactly one
	// action for every territory the player currently owns.
	ChooseActions(state *game.GameState, player game.Owner, cfg game.Config) game.TurnActions
	// Reset clears internal state (rng streams, caches) between games.
	Reset()
}
