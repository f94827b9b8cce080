package game

import "fmt"

// Position is a cell coordinate on an N x N board.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func (p Position) InBounds(size int) bool {
	return p.Row >= 0 && p.Row < size && p.Col >= 0 && p.Col < size
}

// Neighbors returns the orthogonal neighbors of p that lie on a board of
// the given size (up to 4, fewer at edges), in row-major order.
func (p Position) Neighbors(size int) []Position {
	candidates := [4]Position{
		{p.Row - 1, p.Col},
		{p.Row, p.Col - 1},
		{p.Row, p.Col + 1},
		{p.Row + 1, p.Col},
	}
	neighbors := make([]Position, 0, 4)
	for _, c := range candidates {
		if c.InBounds(size) {
			neighbors = append(neighbors, c)
		}
	}
	return neighbors
}

// Adjacent reports whether q is an orthogonal neighbor of p.
func (p Position) Adjacent(q Position) bool {
	dr := p.Row - q.Row
	dc := p.Col - q.Col
	return dr*dr+dc*dc == 1
}

func manhattan(a, b Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// comparePositions orders positions row-major. Used wherever map-keyed
// data must be walked in a reproducible order before consuming randomness.
func comparePositions(a, b Position) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}
	return a.Col - b.Col
}
