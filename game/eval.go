package game

// Evaluate scores a state for player as the weighted sum of the named
// features below. Every feature is a pure function of the state; weights
// come from the config and may be zeroed individually. Higher is better
// for player.
func Evaluate(state *GameState, player Owner, cfg Config) float64 {
	w := cfg.Weights
	return w.TerritoryCount*territoryCount(state, player) +
		w.StoneAdvantage*stoneAdvantage(state, player) +
		w.GrowthPotential*growthPotential(state, player, cfg) +
		w.ExpansionOpportunity*expansionOpportunity(state, player) +
		w.CenterControl*centerControl(state, player) +
		w.AttackOpportunity*attackOpportunity(state, player, cfg) +
		w.ThreatPenalty*threatenedTerritories(state, player) +
		w.Connectivity*connectivity(state, player) +
		w.MergePotential*mergePotential(state, player, cfg)
}

// territoryCount is the territory differential against the opponent.
func territoryCount(state *GameState, player Owner) float64 {
	return float64(len(state.Board.Owned(player)) - len(state.Board.Owned(player.Opponent())))
}

// stoneAdvantage is the total stone differential.
func stoneAdvantage(state *GameState, player Owner) float64 {
	return float64(state.Board.Stones(player) - state.Board.Stones(player.Opponent()))
}

// growthPotential counts owned territories still below the stone cap:
// each earns +1 per turn if it stays.
func growthPotential(state *GameState, player Owner, cfg Config) float64 {
	n := 0
	for _, pos := range state.Board.Owned(player) {
		if state.Board.At(pos).Stones < cfg.MaxStones {
			n++
		}
	}
	return float64(n)
}

// expansionOpportunity counts distinct neutral cells reachable from owned
// territory in one move.
func expansionOpportunity(state *GameState, player Owner) float64 {
	size := state.Board.Size()
	seen := make(map[Position]bool)
	for _, pos := range state.Board.Owned(player) {
		for _, n := range pos.Neighbors(size) {
			if state.Board.At(n).Owner == Neutral {
				seen[n] = true
			}
		}
	}
	return float64(len(seen))
}

// centerControl rewards holding cells near the board center, decaying
// with Manhattan distance.
func centerControl(state *GameState, player Owner) float64 {
	center := state.Board.Center()
	score := 0.0
	for _, pos := range state.Board.Owned(player) {
		score += 1.0 / float64(1+manhattan(pos, center))
	}
	return score
}

// attackOpportunity counts enemy neighbors that an owned territory
// outnumbers by more than the configured margin.
func attackOpportunity(state *GameState, player Owner, cfg Config) float64 {
	size := state.Board.Size()
	opponent := player.Opponent()
	n := 0
	for _, pos := range state.Board.Owned(player) {
		mine := state.Board.At(pos).Stones
		for _, nb := range pos.Neighbors(size) {
			t := state.Board.At(nb)
			if t.Owner == opponent && mine > t.Stones+cfg.AttackMargin {
				n++
			}
		}
	}
	return float64(n)
}

// threatenedTerritories counts owned territories with a stronger enemy
// neighbor. Paired with a negative weight by default.
func threatenedTerritories(state *GameState, player Owner) float64 {
	size := state.Board.Size()
	opponent := player.Opponent()
	n := 0
	for _, pos := range state.Board.Owned(player) {
		mine := state.Board.At(pos).Stones
		for _, nb := range pos.Neighbors(size) {
			t := state.Board.At(nb)
			if t.Owner == opponent && t.Stones > mine {
				n++
				break
			}
		}
	}
	return float64(n)
}

// connectivity is the size of the player's largest orthogonally connected
// group of territories.
func connectivity(state *GameState, player Owner) float64 {
	size := state.Board.Size()
	visited := make(map[Position]bool)
	largest := 0
	for _, pos := range state.Board.Owned(player) {
		if visited[pos] {
			continue
		}
		if n := componentSize(state, player, pos, size, visited); n > largest {
			largest = n
		}
	}
	return float64(largest)
}

func componentSize(state *GameState, player Owner, start Position, size int, visited map[Position]bool) int {
	if visited[start] {
		return 0
	}
	visited[start] = true
	n := 1
	for _, nb := range start.Neighbors(size) {
		if state.Board.At(nb).Owner == player {
			n += componentSize(state, player, nb, size, visited)
		}
	}
	return n
}

// mergePotential counts adjacent owned pairs whose combined stones still
// fit under the cap, i.e. pairs that could consolidate without waste.
func mergePotential(state *GameState, player Owner, cfg Config) float64 {
	size := state.Board.Size()
	n := 0
	for _, pos := range state.Board.Owned(player) {
		mine := state.Board.At(pos).Stones
		for _, nb := range pos.Neighbors(size) {
			if comparePositions(pos, nb) > 0 {
				continue // count each unordered pair once
			}
			t := state.Board.At(nb)
			if t.Owner == player && mine+t.Stones <= cfg.MaxStones {
				n++
			}
		}
	}
	return float64(n)
}
