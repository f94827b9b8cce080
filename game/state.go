package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

type Owner int

const (
	Neutral Owner = iota
	Player1
	Player2
)

func (o Owner) String() string {
	switch o {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	default:
		return "Neutral"
	}
}

// Opponent returns the other player. Calling it on Neutral is a caller bug.
func (o Owner) Opponent() Owner {
	switch o {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		panic("neutral has no opponent")
	}
}

// Territory is a single board cell: who controls it and with how many
// stones. A neutral territory always holds zero stones; a controlled one
// always holds at least one.
type Territory struct {
	Owner  Owner
	Stones int
}

// Board is a fixed-size square grid of territories.
type Board struct {
	size  int
	cells []Territory
}

func NewBoard(size int) Board {
	return Board{
		size:  size,
		cells: make([]Territory, size*size),
	}
}

func (b Board) Size() int {
	return b.size
}

func (b Board) At(p Position) Territory {
	return b.cells[p.Row*b.size+p.Col]
}

func (b *Board) set(p Position, t Territory) {
	if t.Stones <= 0 {
		t = Territory{Owner: Neutral, Stones: 0}
	}
	b.cells[p.Row*b.size+p.Col] = t
}

// Center returns the designated center cell, forbidden as an initial
// placement.
func (b Board) Center() Position {
	return Position{Row: b.size / 2, Col: b.size / 2}
}

// Owned returns the positions controlled by owner, in row-major order.
func (b Board) Owned(owner Owner) []Position {
	var owned []Position
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			p := Position{Row: row, Col: col}
			if b.At(p).Owner == owner {
				owned = append(owned, p)
			}
		}
	}
	return owned
}

// Stones returns the total stone count controlled by owner.
func (b Board) Stones(owner Owner) int {
	total := 0
	for _, t := range b.cells {
		if t.Owner == owner {
			total += t.Stones
		}
	}
	return total
}

func (b Board) Copy() Board {
	cells := make([]Territory, len(b.cells))
	copy(cells, b.cells)
	return Board{size: b.size, cells: cells}
}

type Phase int

const (
	SetupPhase Phase = iota
	PlayingPhase
	FinishedPhase
)

func (p Phase) String() string {
	switch p {
	case SetupPhase:
		return "setup"
	case PlayingPhase:
		return "playing"
	default:
		return "finished"
	}
}

// GameState is the dynamic state of a match. Transitions are pure:
// ApplySetup and Resolve return fresh instances and never touch their
// input, so search branches can keep old states for backtracking.
type GameState struct {
	Board Board
	Turn  int
	Phase Phase
}

func NewGameState(cfg Config) *GameState {
	return &GameState{
		Board: NewBoard(cfg.BoardSize),
		Turn:  0,
		Phase: SetupPhase,
	}
}

func (gs *GameState) Copy() *GameState {
	return &GameState{
		Board: gs.Board.Copy(),
		Turn:  gs.Turn,
		Phase: gs.Phase,
	}
}

// Winner reports the leader by territory count. Neutral means a draw (or
// a game still in progress, which callers gate on Phase).
func (gs *GameState) Winner() Owner {
	p1 := len(gs.Board.Owned(Player1))
	p2 := len(gs.Board.Owned(Player2))
	switch {
	case p1 > p2:
		return Player1
	case p2 > p1:
		return Player2
	default:
		return Neutral
	}
}

// SetupAction maps initial placements to stone counts. Each player places
// into their own half of the board; the center cell is off limits.
type SetupAction map[Position]int

// HalfRows returns the inclusive row range a player may place into during
// setup. On odd-sized boards the middle row belongs to both halves, minus
// the center cell.
func HalfRows(player Owner, size int) (minRow, maxRow int) {
	switch player {
	case Player1:
		return 0, (size - 1) / 2
	case Player2:
		return size / 2, size - 1
	default:
		panic("neutral does not place stones")
	}
}

// ApplySetup validates both players' initial placements and returns the
// starting playing state. The input state must be in the setup phase.
func ApplySetup(state *GameState, p1, p2 SetupAction, cfg Config) (*GameState, error) {
	if state.Phase != SetupPhase {
		return nil, fmt.Errorf("%w: game is not in setup phase", ErrInvalidSetup)
	}
	if err := validateSetup(p1, Player1, cfg); err != nil {
		return nil, err
	}
	if err := validateSetup(p2, Player2, cfg); err != nil {
		return nil, err
	}

	next := state.Copy()
	for _, placement := range []struct {
		player Owner
		action SetupAction
	}{{Player1, p1}, {Player2, p2}} {
		for _, pos := range sortedKeys(placement.action) {
			next.Board.set(pos, Territory{
				Owner:  placement.player,
				Stones: placement.action[pos],
			})
		}
	}
	next.Phase = PlayingPhase
	return next, nil
}

func validateSetup(action SetupAction, player Owner, cfg Config) error {
	minRow, maxRow := HalfRows(player, cfg.BoardSize)
	center := Position{Row: cfg.BoardSize / 2, Col: cfg.BoardSize / 2}
	total := 0
	for pos, stones := range action {
		if !pos.InBounds(cfg.BoardSize) {
			return fmt.Errorf("%w: %s placement %s is off the board", ErrInvalidSetup, player, pos)
		}
		if pos == center {
			return fmt.Errorf("%w: %s placement %s is the center cell", ErrInvalidSetup, player, pos)
		}
		if pos.Row < minRow || pos.Row > maxRow {
			return fmt.Errorf("%w: %s placement %s is outside rows %d..%d", ErrInvalidSetup, player, pos, minRow, maxRow)
		}
		if stones < 1 || stones > cfg.MaxStones {
			return fmt.Errorf("%w: %s placement %s has %d stones", ErrInvalidSetup, player, pos, stones)
		}
		total += stones
	}
	if total != cfg.SetupStones {
		return fmt.Errorf("%w: %s placed %d stones, want %d", ErrInvalidSetup, player, total, cfg.SetupStones)
	}
	return nil
}

func sortedKeys[V any](m map[Position]V) []Position {
	keys := make([]Position, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, comparePositions)
	return keys
}
