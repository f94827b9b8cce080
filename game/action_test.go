package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActionDeparting(t *testing.T) {
	require.Zero(t, Stay().Departing())
	split := Action{Orders: []MoveOrder{
		{To: Position{0, 1}, Stones: 2},
		{To: Position{1, 0}, Stones: 3},
	}}
	require.Equal(t, 5, split.Departing())
}

func TestTurnActionsValidate(t *testing.T) {
	gs := testState(5, map[Position]Territory{
		{1, 1}: {Player1, 4},
		{3, 3}: {Player2, 2},
	})

	t.Run("complete set passes", func(t *testing.T) {
		ta := TurnActions{{1, 1}: MoveTo(Position{1, 2}, 3)}
		require.NoError(t, ta.Validate(gs, Player1))
	})

	t.Run("split with remainder passes", func(t *testing.T) {
		ta := TurnActions{{1, 1}: {Orders: []MoveOrder{
			{To: Position{1, 2}, Stones: 2},
			{To: Position{0, 1}, Stones: 1},
		}}}
		require.NoError(t, ta.Validate(gs, Player1))
	})

	t.Run("wrong territory count", func(t *testing.T) {
		require.ErrorIs(t, TurnActions{}.Validate(gs, Player1), ErrInvalidActions)
	})

	t.Run("covers an unowned cell instead of an owned one", func(t *testing.T) {
		ta := TurnActions{{3, 3}: Stay()}
		require.ErrorIs(t, ta.Validate(gs, Player1), ErrInvalidActions)
	})

	t.Run("diagonal destination", func(t *testing.T) {
		ta := TurnActions{{1, 1}: MoveTo(Position{2, 2}, 1)}
		require.ErrorIs(t, ta.Validate(gs, Player1), ErrInvalidActions)
	})

	t.Run("over-committed across orders", func(t *testing.T) {
		ta := TurnActions{{1, 1}: {Orders: []MoveOrder{
			{To: Position{1, 2}, Stones: 3},
			{To: Position{0, 1}, Stones: 2},
		}}}
		require.ErrorIs(t, ta.Validate(gs, Player1), ErrInvalidActions)
	})
}

func TestRandomActionsAreLegal(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	gs := testState(5, map[Position]Territory{
		{0, 0}: {Player1, 4},
		{1, 3}: {Player1, 7},
		{4, 4}: {Player2, 2},
	})
	for i := 0; i < 200; i++ {
		require.NoError(t, RandomActions(gs, Player1, rng).Validate(gs, Player1))
		require.NoError(t, RandomActions(gs, Player2, rng).Validate(gs, Player2))
	}
}

func TestRandomSetupIsLegal(t *testing.T) {
	cfg := DefaultConfig()
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 50; i++ {
		p1 := RandomSetup(Player1, cfg, rng)
		p2 := RandomSetup(Player2, cfg, rng)
		_, err := ApplySetup(NewGameState(cfg), p1, p2, cfg)
		require.NoError(t, err)
	}
}
