package agent

import "stonegrid/game"

// spreadSetup deterministically stacks the setup stones across the
// own-half cells nearest the board center, using as few cells as the cap
// allows but at least three for some board presence.
func spreadSetup(player game.Owner, cfg game.Config) game.SetupAction {
	center := game.Position{Row: cfg.BoardSize / 2, Col: cfg.BoardSize / 2}
	minRow, maxRow := game.HalfRows(player, cfg.BoardSize)

	var cells []game.Position
	for row := minRow; row <= maxRow; row++ {
		for col := 0; col < cfg.BoardSize; col++ {
			pos := game.Position{Row: row, Col: col}
			if pos != center {
				cells = append(cells, pos)
			}
		}
	}
	// Row-major scan keeps ties stable; sort by distance to center.
	for i := 1; i < len(cells); i++ {
		for j := i; j > 0 && dist(cells[j], center) < dist(cells[j-1], center); j-- {
			cells[j], cells[j-1] = cells[j-1], cells[j]
		}
	}

	n := 3
	if n > len(cells) {
		n = len(cells)
	}
	for n < len(cells) && n*cfg.MaxStones < cfg.SetupStones {
		n++
	}

	placements := make(game.SetupAction)
	remaining := cfg.SetupStones
	for i := 0; remaining > 0; i = (i + 1) % n {
		pos := cells[i]
		if placements[pos] >= cfg.MaxStones {
			continue
		}
		placements[pos]++
		remaining--
	}
	return placements
}

func dist(a, b game.Position) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}
