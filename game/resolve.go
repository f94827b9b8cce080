package game

import (
	"fmt"
	"math/rand"
)

// Resolve plays one simultaneous turn: both players' complete action sets
// against the current state, returning a fresh state. The rng drives every
// expansion and combat roll of the turn, so a fixed seed replays the turn
// bit-identically. Both action sets are validated in full before the first
// draw; a validation failure aborts the turn with no partial application.
//
// Resolution is computed from the fully collected departure/arrival graph,
// never territory-by-territory, so the per-territory submission order of
// the action maps cannot change the outcome. Destinations are resolved in
// row-major order to keep the rng draw sequence reproducible.
func Resolve(state *GameState, p1, p2 TurnActions, cfg Config, rng *rand.Rand) (*GameState, error) {
	if state.Phase != PlayingPhase {
		return nil, fmt.Errorf("%w: game is in %s phase", ErrInvalidActions, state.Phase)
	}
	if err := p1.Validate(state, Player1); err != nil {
		return nil, err
	}
	if err := p2.Validate(state, Player2); err != nil {
		return nil, err
	}

	next := state.Copy()

	// Collect orders: pull departing stones off their sources and build
	// the arrival graph, split per sending player.
	arrivals := make(map[Position]*pools)
	departed := make(map[Position]int)
	collect := func(player Owner, ta TurnActions) {
		for from, action := range ta {
			for _, order := range action.Orders {
				in := arrivals[order.To]
				if in == nil {
					in = &pools{}
					arrivals[order.To] = in
				}
				in.add(player, order.Stones)
				departed[from] += order.Stones
			}
		}
	}
	collect(Player1, p1)
	collect(Player2, p2)

	for from, d := range departed {
		t := next.Board.At(from)
		next.Board.set(from, Territory{Owner: t.Owner, Stones: t.Stones - d})
	}

	for _, dest := range sortedKeys(arrivals) {
		in := arrivals[dest]
		// Classification is by the destination's pre-turn owner.
		if preOwner := state.Board.At(dest).Owner; preOwner == Neutral {
			resolveNeutral(next, dest, *in, cfg, rng)
		} else {
			resolveOccupied(next, dest, preOwner, *in, cfg, rng)
		}
	}

	applyGrowth(state, next, departed, cfg)

	next.Turn++
	if next.Turn >= cfg.TurnLimit ||
		len(next.Board.Owned(Player1)) == 0 ||
		len(next.Board.Owned(Player2)) == 0 {
		next.Phase = FinishedPhase
	}
	return next, nil
}

// pools holds each player's stones arriving at one destination.
type pools struct {
	p1 int
	p2 int
}

func (p *pools) add(player Owner, stones int) {
	if player == Player1 {
		p.p1 += stones
	} else {
		p.p2 += stones
	}
}

func (p pools) of(player Owner) int {
	if player == Player1 {
		return p.p1
	}
	return p.p2
}

// resolveNeutral claims (or fails to claim) a neutral destination. A lone
// sender rolls per-stone expansion; with k stones the claim succeeds with
// probability 1-(1-p)^k and lands the number of successes. When both
// players contest the cell, each side rolls its expansion independently
// (Player1 first) and the two success pools then fight with Player1's
// pool in the defender-rolls-first slot.
func resolveNeutral(next *GameState, dest Position, in pools, cfg Config, rng *rand.Rand) {
	succ1 := rollExpansion(in.p1, cfg.ExpansionProb, rng)
	succ2 := rollExpansion(in.p2, cfg.ExpansionProb, rng)

	if succ1 > 0 && succ2 > 0 {
		att, def := fight(succ2, succ1, cfg.CombatProb, rng)
		switch {
		case def > 0:
			next.Board.set(dest, Territory{Owner: Player1, Stones: capStones(def, cfg)})
		case att > 0:
			next.Board.set(dest, Territory{Owner: Player2, Stones: capStones(att, cfg)})
		default:
			next.Board.set(dest, Territory{})
		}
		return
	}
	if succ1 > 0 {
		next.Board.set(dest, Territory{Owner: Player1, Stones: capStones(succ1, cfg)})
	} else if succ2 > 0 {
		next.Board.set(dest, Territory{Owner: Player2, Stones: capStones(succ2, cfg)})
	}
	// All rolls failed: the cell stays neutral and the sent stones are
	// already gone from their sources.
}

// resolveOccupied handles arrivals at a cell some player held at the start
// of the turn. Same-owner arrivals reinforce unconditionally (capped) and
// defend alongside whatever remainder stayed home; enemy arrivals attack
// the combined pool.
func resolveOccupied(next *GameState, dest Position, owner Owner, in pools, cfg Config, rng *rand.Rand) {
	defenders := next.Board.At(dest).Stones + in.of(owner)
	defenders = capStones(defenders, cfg)
	attackers := in.of(owner.Opponent())

	if attackers == 0 {
		next.Board.set(dest, Territory{Owner: owner, Stones: defenders})
		return
	}

	attSurv, defSurv := fight(attackers, defenders, cfg.CombatProb, rng)
	switch {
	case defSurv > 0:
		next.Board.set(dest, Territory{Owner: owner, Stones: capStones(defSurv, cfg)})
	case attSurv > 0:
		next.Board.set(dest, Territory{Owner: owner.Opponent(), Stones: capStones(attSurv, cfg)})
	default:
		next.Board.set(dest, Territory{})
	}
}

// rollExpansion rolls one Bernoulli trial per stone and returns the number
// of successes.
func rollExpansion(stones int, p float64, rng *rand.Rand) int {
	successes := 0
	for i := 0; i < stones; i++ {
		if rng.Float64() < p {
			successes++
		}
	}
	return successes
}

// fight resolves combat between two pools by strictly alternating single
// rolls, defender first. A successful defender roll removes one attacker;
// a successful attacker roll removes one defender; the exchange repeats
// until one pool is empty. Pools shrink one stone at a time, so both can
// never hit zero in the same roll.
func fight(attackers, defenders int, p float64, rng *rand.Rand) (attSurvivors, defSurvivors int) {
	for attackers > 0 && defenders > 0 {
		if rng.Float64() < p {
			attackers--
		}
		if attackers == 0 {
			break
		}
		if rng.Float64() < p {
			defenders--
		}
	}
	return attackers, defenders
}

// applyGrowth grants +1 stone (capped) to every territory whose full
// pre-turn stone count did not depart: a stay order or a remainder after a
// partial departure. Arrivals alone earn nothing, and a territory that
// changed hands or was emptied during combat does not grow.
func applyGrowth(prev, next *GameState, departed map[Position]int, cfg Config) {
	size := next.Board.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			pos := Position{Row: row, Col: col}
			pre := prev.Board.At(pos)
			if pre.Owner == Neutral || departed[pos] >= pre.Stones {
				continue
			}
			cur := next.Board.At(pos)
			if cur.Owner != pre.Owner || cur.Stones == 0 {
				continue
			}
			next.Board.set(pos, Territory{Owner: cur.Owner, Stones: capStones(cur.Stones+1, cfg)})
		}
	}
}

func capStones(stones int, cfg Config) int {
	if stones > cfg.MaxStones {
		return cfg.MaxStones
	}
	return stones
}
