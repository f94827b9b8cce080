package searcher

import (
	"math"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"stonegrid/game"
)

type MinimaxOption func(*Minimax)

// WithMaxDepth sets the lookahead in plies. A ply is one player's
// candidate decision; two plies make up one resolved turn. Depth 0
// degenerates to picking the highest locally scored candidate.
func WithMaxDepth(depth int) MinimaxOption {
	return func(m *Minimax) {
		if depth >= 0 {
			m.maxDepth = depth
		}
	}
}

// WithTimeLimit sets a soft wall-clock budget. The search stops descending
// into further branches once the budget elapses and returns the best
// action set found so far; it never interrupts an evaluation mid-flight.
func WithTimeLimit(limit time.Duration) MinimaxOption {
	return func(m *Minimax) {
		if limit > 0 {
			m.timeLimit = limit
		}
	}
}

// WithMinimaxCandidates bounds move generation: the per-territory option
// menu and the total candidate sets per node.
func WithMinimaxCandidates(perTerritory, total int) MinimaxOption {
	return func(m *Minimax) {
		if perTerritory > 0 {
			m.maxPerTerritory = perTerritory
		}
		if total > 0 {
			m.maxCandidates = total
		}
	}
}

// WithMinimaxSeed seeds the stream that samples the roll sequence of each
// hypothetical turn.
func WithMinimaxSeed(seed int64) MinimaxOption {
	return func(m *Minimax) {
		m.seed = seed
	}
}

// Minimax is a depth-limited adversarial search over the bounded candidate
// sets from game.GenerateCandidates, with alpha-beta pruning. Candidates
// arrive pre-ordered by their generation-time local score, which doubles
// as the move ordering for pruning efficiency.
type Minimax struct {
	maxDepth        int
	timeLimit       time.Duration
	maxPerTerritory int
	maxCandidates   int
	seed            int64
	rng             *rand.Rand
	metrics         Metrics
}

func NewMinimax(options ...MinimaxOption) *Minimax {
	m := &Minimax{
		maxDepth:        2,
		maxPerTerritory: 3,
		maxCandidates:   16,
		seed:            1,
	}
	for _, option := range options {
		option(m)
	}
	m.rng = rand.New(rand.NewSource(m.seed))
	return m
}

// Reset reseeds the sampling stream so independent games replay
// identically.
func (m *Minimax) Reset() {
	m.rng = rand.New(rand.NewSource(m.seed))
	m.metrics = Metrics{}
}

// Metrics returns the counters of the most recent search.
func (m *Minimax) Metrics() Metrics {
	return m.metrics
}

// FindActions picks an action set for player. It always returns a valid
// set: on a zero budget or depth it falls back to the best local
// candidate.
func (m *Minimax) FindActions(state *game.GameState, player game.Owner, cfg game.Config) game.TurnActions {
	start := time.Now()
	m.metrics = Metrics{}
	var deadline time.Time
	if m.timeLimit > 0 {
		deadline = start.Add(m.timeLimit)
	}

	candidates := game.GenerateCandidates(state, player, cfg, m.maxPerTerritory, m.maxCandidates)
	best := candidates[0].Actions
	if m.maxDepth == 0 {
		m.metrics.Elapsed = time.Since(start)
		return best
	}

	alpha, beta := math.Inf(-1), math.Inf(1)
	bestValue := math.Inf(-1)
	for _, cand := range candidates {
		if m.expired(deadline) {
			m.metrics.Budgeted = true
			break
		}
		value := m.minPly(state, cand.Actions, player, m.maxDepth-1, alpha, beta, cfg, deadline)
		if value > bestValue {
			bestValue = value
			best = cand.Actions
		}
		if value > alpha {
			alpha = value
		}
	}

	m.metrics.Elapsed = time.Since(start)
	log.Debug().
		Stringer("player", player).
		Int("nodes", m.metrics.NodesVisited).
		Int("prunes", m.metrics.Prunes).
		Dur("elapsed", m.metrics.Elapsed).
		Bool("budgeted", m.metrics.Budgeted).
		Msg("minimax search done")
	return best
}

// minPly lets the opponent pick the reply minimizing player's evaluation.
// Each reply completes a simultaneous turn, which is resolved through the
// engine against one sampled roll sequence.
func (m *Minimax) minPly(state *game.GameState, mine game.TurnActions, player game.Owner,
	depth int, alpha, beta float64, cfg game.Config, deadline time.Time) float64 {

	replies := game.GenerateCandidates(state, player.Opponent(), cfg, m.maxPerTerritory, m.maxCandidates)
	value := math.Inf(1)
	for _, reply := range replies {
		if m.expired(deadline) {
			m.metrics.Budgeted = true
			break
		}
		var p1, p2 game.TurnActions
		if player == game.Player1 {
			p1, p2 = mine, reply.Actions
		} else {
			p1, p2 = reply.Actions, mine
		}
		next, err := game.Resolve(state, p1, p2, cfg, m.rng)
		if err != nil {
			panic(err) // generated candidates are legal by construction
		}
		m.metrics.NodesVisited++

		var v float64
		if depth <= 1 || next.Phase == game.FinishedPhase {
			v = game.Evaluate(next, player, cfg)
		} else {
			v = m.maxPly(next, player, depth-1, alpha, beta, cfg, deadline)
		}
		if v < value {
			value = v
		}
		if value < beta {
			beta = value
		}
		if beta <= alpha {
			m.metrics.Prunes++
			break
		}
	}
	if math.IsInf(value, 1) { // budget expired before the first reply
		return game.Evaluate(state, player, cfg)
	}
	return value
}

func (m *Minimax) maxPly(state *game.GameState, player game.Owner,
	depth int, alpha, beta float64, cfg game.Config, deadline time.Time) float64 {

	candidates := game.GenerateCandidates(state, player, cfg, m.maxPerTerritory, m.maxCandidates)
	value := math.Inf(-1)
	for _, cand := range candidates {
		if m.expired(deadline) {
			m.metrics.Budgeted = true
			break
		}
		v := m.minPly(state, cand.Actions, player, depth-1, alpha, beta, cfg, deadline)
		if v > value {
			value = v
		}
		if value > alpha {
			alpha = value
		}
		if beta <= alpha {
			m.metrics.Prunes++
			break
		}
	}
	if math.IsInf(value, -1) {
		return game.Evaluate(state, player, cfg)
	}
	return value
}

func (m *Minimax) expired(deadline time.Time) bool {
	return !deadline.IsZero() && !time.Now().Before(deadline)
}
