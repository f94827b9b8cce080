package game

import "math/rand"

// RandomActions builds a uniformly random legal action set for player:
// each territory either stays or sends a uniform stone count to a uniform
// neighbor. Territories are walked in row-major order so a seeded rng
// reproduces the same choices.
func RandomActions(state *GameState, player Owner, rng *rand.Rand) TurnActions {
	size := state.Board.Size()
	actions := make(TurnActions)
	for _, pos := range state.Board.Owned(player) {
		neighbors := pos.Neighbors(size)
		pick := rng.Intn(len(neighbors) + 1)
		if pick == 0 {
			actions[pos] = Stay()
			continue
		}
		stones := state.Board.At(pos).Stones
		actions[pos] = MoveTo(neighbors[pick-1], 1+rng.Intn(stones))
	}
	return actions
}

// RandomSetup scatters the configured setup stones uniformly over the
// player's half of the board, skipping the center cell and respecting the
// per-territory cap.
func RandomSetup(player Owner, cfg Config, rng *rand.Rand) SetupAction {
	cells := placementCells(player, cfg)
	placements := make(SetupAction)
	remaining := cfg.SetupStones
	for remaining > 0 {
		pos := cells[rng.Intn(len(cells))]
		if placements[pos] >= cfg.MaxStones {
			continue
		}
		placements[pos]++
		remaining--
	}
	return placements
}

// placementCells lists the legal initial-placement cells for player in
// row-major order.
func placementCells(player Owner, cfg Config) []Position {
	minRow, maxRow := HalfRows(player, cfg.BoardSize)
	center := Position{Row: cfg.BoardSize / 2, Col: cfg.BoardSize / 2}
	var cells []Position
	for row := minRow; row <= maxRow; row++ {
		for col := 0; col < cfg.BoardSize; col++ {
			pos := Position{Row: row, Col: col}
			if pos != center {
				cells = append(cells, pos)
			}
		}
	}
	return cells
}
