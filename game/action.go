package game

import "fmt"

// MoveOrder sends a stone group to one orthogonal neighbor.
type MoveOrder struct {
	To     Position
	Stones int
}

// Action is everything one territory does in a turn. An empty order list
// means stay: all stones remain and the territory grows. Stones may be
// split across several destinations with a remainder staying behind.
type Action struct {
	Orders []MoveOrder
}

// Stay is the empty action.
func Stay() Action {
	return Action{}
}

// MoveTo builds a single-destination action.
func MoveTo(to Position, stones int) Action {
	return Action{Orders: []MoveOrder{{To: to, Stones: stones}}}
}

// Departing returns the total stone count the action sends away.
func (a Action) Departing() int {
	total := 0
	for _, o := range a.Orders {
		total += o.Stones
	}
	return total
}

// TurnActions is one player's complete orders for a turn: exactly one
// action per territory that player owns.
type TurnActions map[Position]Action

// Validate checks the action set against the current state for player.
// Every owned territory needs an entry, no entry may reference an unowned
// territory, every destination must be an orthogonal neighbor, and a
// territory cannot send more stones than it holds.
func (ta TurnActions) Validate(state *GameState, player Owner) error {
	owned := state.Board.Owned(player)
	if len(ta) != len(owned) {
		return fmt.Errorf("%w: %s submitted %d actions for %d territories",
			ErrInvalidActions, player, len(ta), len(owned))
	}
	size := state.Board.Size()
	for _, pos := range owned {
		action, ok := ta[pos]
		if !ok {
			return fmt.Errorf("%w: %s has no action for %s", ErrInvalidActions, player, pos)
		}
		stones := state.Board.At(pos).Stones
		for _, order := range action.Orders {
			if order.Stones < 1 {
				return fmt.Errorf("%w: %s order %s -> %s moves %d stones",
					ErrInvalidActions, player, pos, order.To, order.Stones)
			}
			if !order.To.InBounds(size) || !pos.Adjacent(order.To) {
				return fmt.Errorf("%w: %s destination %s is not adjacent to %s",
					ErrInvalidActions, player, order.To, pos)
			}
		}
		if departing := action.Departing(); departing > stones {
			return fmt.Errorf("%w: %s sends %d stones from %s, holds %d",
				ErrInvalidActions, player, departing, pos, stones)
		}
	}
	for pos := range ta {
		if state.Board.At(pos).Owner != player {
			return fmt.Errorf("%w: %s submitted an action for unowned %s",
				ErrInvalidActions, player, pos)
		}
	}
	return nil
}
