// Package engine runs complete local matches: it collects both players'
// simultaneous decisions, feeds them through turn resolution, and reports
// the result. The engine owns the match rng; agents carry their own.
package engine

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"stonegrid/agent"
	"stonegrid/game"
)

// Result summarizes a finished match.
type Result struct {
	MatchID     string
	Winner      game.Owner // Neutral means a draw
	Turns       int
	Territories map[game.Owner]int
	Final       *game.GameState
	Duration    time.Duration
}

type Match struct {
	id     uuid.UUID
	cfg    game.Config
	agents map[game.Owner]agent.Agent
	rng    *rand.Rand
	logger zerolog.Logger
}

// NewMatch validates the config and wires two agents to a seeded match
// rng. The seed drives every expansion and combat roll of the match, so a
// fixed seed with deterministic agents replays the whole game.
func NewMatch(cfg game.Config, p1, p2 agent.Agent, seed int64) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	id := uuid.New()
	return &Match{
		id:  id,
		cfg: cfg,
		agents: map[game.Owner]agent.Agent{
			game.Player1: p1,
			game.Player2: p2,
		},
		rng:    rand.New(rand.NewSource(seed)),
		logger: log.With().Str("match", id.String()).Logger(),
	}, nil
}

// Run plays the match to completion: setup, then turns until the limit or
// domination, winner by territory count with ties as draws.
func (m *Match) Run() (Result, error) {
	start := time.Now()
	state := game.NewGameState(m.cfg)

	setups := m.collectSetups(state)
	state, err := game.ApplySetup(state, setups[game.Player1], setups[game.Player2], m.cfg)
	if err != nil {
		return Result{}, fmt.Errorf("setup: %w", err)
	}
	m.logger.Info().Int("stones", m.cfg.SetupStones).Msg("setup applied")

	for state.Phase == game.PlayingPhase {
		actions := m.collectActions(state)
		next, err := game.Resolve(state, actions[game.Player1], actions[game.Player2], m.cfg, m.rng)
		if err != nil {
			return Result{}, fmt.Errorf("turn %d: %w", state.Turn, err)
		}
		state = next
		m.logger.Debug().
			Int("turn", state.Turn).
			Int("p1", len(state.Board.Owned(game.Player1))).
			Int("p2", len(state.Board.Owned(game.Player2))).
			Msg("turn resolved")
	}

	result := Result{
		MatchID: m.id.String(),
		Winner:  state.Winner(),
		Turns:   state.Turn,
		Territories: map[game.Owner]int{
			game.Player1: len(state.Board.Owned(game.Player1)),
			game.Player2: len(state.Board.Owned(game.Player2)),
		},
		Final:    state,
		Duration: time.Since(start),
	}
	m.logger.Info().
		Stringer("winner", result.Winner).
		Int("turns", result.Turns).
		Dur("duration", result.Duration).
		Msg("match finished")
	return result, nil
}

// collectSetups asks both agents for placements concurrently; agents are
// independent and the state is read-only here.
func (m *Match) collectSetups(state *game.GameState) map[game.Owner]game.SetupAction {
	setups := make(map[game.Owner]game.SetupAction, 2)
	var mu sync.Mutex
	var wg sync.WaitGroup
	for player, a := range m.agents {
		wg.Add(1)
		go func(player game.Owner, a agent.Agent) {
			defer wg.Done()
			setup := a.ChooseSetup(state, player, m.cfg)
			mu.Lock()
			setups[player] = setup
			mu.Unlock()
		}(player, a)
	}
	wg.Wait()
	return setups
}

func (m *Match) collectActions(state *game.GameState) map[game.Owner]game.TurnActions {
	actions := make(map[game.Owner]game.TurnActions, 2)
	var mu sync.Mutex
	var wg sync.WaitGroup
	for player, a := range m.agents {
		wg.Add(1)
		go func(player game.Owner, a agent.Agent) {
			defer wg.Done()
			chosen := a.ChooseActions(state, player, m.cfg)
			mu.Lock()
			actions[player] = chosen
			mu.Unlock()
		}(player, a)
	}
	wg.Wait()
	return actions
}
