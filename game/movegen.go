package game

import (
	"math"

	"golang.org/x/exp/slices"
)

// Candidate is one complete action set with the local score used to rank
// it. GenerateCandidates returns candidates best-first, and the searchers
// reuse Score for move ordering and rollout biasing.
type Candidate struct {
	Actions TurnActions
	Score   float64
}

// territoryOption is one scored choice for a single territory.
type territoryOption struct {
	action Action
	score  float64
}

// GenerateCandidates enumerates a bounded set of sensible action sets for
// player. Each territory gets a menu of single-destination choices (stay,
// expand into each neutral neighbor, attack an outnumbered enemy neighbor,
// reinforce a threatened friendly neighbor), ranked by local score and
// truncated to maxPerTerritory before composing the cross-product. Full
// enumeration is options^territories, so the product is walked
// best-locals-first and cut off at maxCandidates; the result is then
// ordered by combined score. Everything here is deterministic.
func GenerateCandidates(state *GameState, player Owner, cfg Config, maxPerTerritory, maxCandidates int) []Candidate {
	if maxPerTerritory < 1 {
		maxPerTerritory = 1
	}
	if maxCandidates < 1 {
		maxCandidates = 1
	}

	owned := state.Board.Owned(player)
	if len(owned) == 0 {
		return []Candidate{{Actions: TurnActions{}}}
	}

	menus := make([][]territoryOption, len(owned))
	for i, pos := range owned {
		options := territoryOptions(state, pos, player, cfg)
		if len(options) > maxPerTerritory {
			options = options[:maxPerTerritory]
		}
		menus[i] = options
	}

	// Odometer walk over the truncated menus: index vector all-zeros is
	// every territory's best local option, later combinations swap in
	// progressively worse ones.
	indexes := make([]int, len(menus))
	candidates := make([]Candidate, 0, maxCandidates)
	for len(candidates) < maxCandidates {
		actions := make(TurnActions, len(owned))
		score := 0.0
		for i, pos := range owned {
			opt := menus[i][indexes[i]]
			actions[pos] = opt.action
			score += opt.score
		}
		candidates = append(candidates, Candidate{Actions: actions, Score: score})

		digit := len(indexes) - 1
		for digit >= 0 {
			indexes[digit]++
			if indexes[digit] < len(menus[digit]) {
				break
			}
			indexes[digit] = 0
			digit--
		}
		if digit < 0 { // Product exhausted
			break
		}
	}

	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})
	return candidates
}

// territoryOptions builds the scored option menu for one territory,
// best-first. Stay is always present, so every territory has at least one
// legal choice.
func territoryOptions(state *GameState, pos Position, player Owner, cfg Config) []territoryOption {
	stones := state.Board.At(pos).Stones
	size := state.Board.Size()
	opponent := player.Opponent()

	options := []territoryOption{{action: Stay(), score: stayScore(stones, cfg)}}

	for _, nb := range pos.Neighbors(size) {
		t := state.Board.At(nb)
		switch t.Owner {
		case Neutral:
			commit := stones
			if stones > 1 {
				commit = stones - 1 // keep a stone home to hold and grow
			}
			options = append(options, territoryOption{
				action: MoveTo(nb, commit),
				score:  2.0 * claimChance(commit, cfg.ExpansionProb),
			})
		case opponent:
			if stones < 2 {
				continue
			}
			commit := stones - 1
			if commit <= t.Stones+cfg.AttackMargin {
				continue
			}
			options = append(options, territoryOption{
				action: MoveTo(nb, commit),
				score:  1.0 + 0.5*float64(commit-t.Stones),
			})
		case player:
			if stones < 2 || !isThreatened(state, nb, player) {
				continue
			}
			options = append(options, territoryOption{
				action: MoveTo(nb, stones/2),
				score:  1.2,
			})
		}
	}

	slices.SortStableFunc(options, func(a, b territoryOption) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		default:
			return 0
		}
	})
	return options
}

func stayScore(stones int, cfg Config) float64 {
	if stones < cfg.MaxStones {
		return 1.0
	}
	return 0.25 // at the cap, growth would be discarded
}

// claimChance is the probability that at least one of k expansion rolls
// succeeds: 1-(1-p)^k.
func claimChance(stones int, p float64) float64 {
	return 1.0 - math.Pow(1.0-p, float64(stones))
}

func isThreatened(state *GameState, pos Position, player Owner) bool {
	mine := state.Board.At(pos).Stones
	opponent := player.Opponent()
	for _, nb := range pos.Neighbors(state.Board.Size()) {
		t := state.Board.At(nb)
		if t.Owner == opponent && t.Stones > mine {
			return true
		}
	}
	return false
}
