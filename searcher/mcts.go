package searcher

import (
	"math"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"stonegrid/game"
)

type MCTSOption func(*MCTS)

// WithSimulations sets the number of search episodes per move decision.
func WithSimulations(simulations int) MCTSOption {
	return func(m *MCTS) {
		if simulations > 0 {
			m.simulations = simulations
		}
	}
}

// WithExploration sets the UCB1 exploration constant.
func WithExploration(c float64) MCTSOption {
	return func(m *MCTS) {
		if c > 0 {
			m.exploration = c
		}
	}
}

// WithRolloutSmartness blends rollout policies: 0 plays both sides
// uniformly at random, 1 always samples weighted by the generator's local
// scores, values in between mix per decision.
func WithRolloutSmartness(smartness float64) MCTSOption {
	return func(m *MCTS) {
		if smartness >= 0 && smartness <= 1 {
			m.smartness = smartness
		}
	}
}

// WithMCTSCandidates bounds move generation for expansion and heuristic
// rollouts.
func WithMCTSCandidates(perTerritory, total int) MCTSOption {
	return func(m *MCTS) {
		if perTerritory > 0 {
			m.maxPerTerritory = perTerritory
		}
		if total > 0 {
			m.maxCandidates = total
		}
	}
}

// WithMCTSSeed seeds the stream driving rollouts, opponent sampling, and
// hypothetical turn resolution.
func WithMCTSSeed(seed int64) MCTSOption {
	return func(m *MCTS) {
		m.seed = seed
	}
}

// MCTS is a UCB1-driven tree search over the same forward model as
// minimax. Each episode runs selection, one-candidate expansion, a rollout
// to the turn limit, and backpropagation; the final move is the root's
// most visited child.
type MCTS struct {
	simulations     int
	exploration     float64
	smartness       float64
	maxPerTerritory int
	maxCandidates   int
	seed            int64
	rng             *rand.Rand
	metrics         Metrics
}

func NewMCTS(options ...MCTSOption) *MCTS {
	m := &MCTS{
		simulations:     300,
		exploration:     math.Sqrt2,
		smartness:       0.5,
		maxPerTerritory: 2,
		maxCandidates:   12,
		seed:            1,
	}
	for _, option := range options {
		option(m)
	}
	m.rng = rand.New(rand.NewSource(m.seed))
	return m
}

// Reset reseeds the search stream between independent games.
func (m *MCTS) Reset() {
	m.rng = rand.New(rand.NewSource(m.seed))
	m.metrics = Metrics{}
}

// Metrics returns the counters of the most recent search.
func (m *MCTS) Metrics() Metrics {
	return m.metrics
}

// FindActions runs the configured number of episodes and returns the
// robust-child action set. Root child visits always sum to exactly the
// episode count.
func (m *MCTS) FindActions(state *game.GameState, player game.Owner, cfg game.Config) game.TurnActions {
	start := time.Now()
	m.metrics = Metrics{}

	root := newNode(nil, nil, state.Copy(), player, cfg, m.maxPerTerritory, m.maxCandidates)
	m.search(root, player, cfg)

	best := root.robustChild()
	m.metrics.Elapsed = time.Since(start)
	log.Debug().
		Stringer("player", player).
		Int("simulations", m.metrics.Simulations).
		Int("playouts", m.metrics.FullPlayouts).
		Dur("elapsed", m.metrics.Elapsed).
		Msg("mcts search done")
	if best == nil { // root state already finished: nothing to choose
		return game.TurnActions{}
	}
	return best.edge
}

// search runs the configured number of episodes against root. Every
// episode descends through exactly one root child, so the root children's
// visit counts sum to the episode count.
func (m *MCTS) search(root *node, player game.Owner, cfg game.Config) {
	for i := 0; i < m.simulations; i++ {
		leaf := m.selectThenExpand(root, player, cfg)
		reward := m.rollout(leaf.state, player, cfg)
		backup(leaf, reward)
		m.metrics.Simulations++
	}
}

// selectThenExpand descends by UCB1 until it can attach one new child,
// then returns it. Terminal nodes are returned as-is.
func (m *MCTS) selectThenExpand(root *node, player game.Owner, cfg game.Config) *node {
	n := root
	for {
		if n.expandable() {
			return m.expand(n, player, cfg)
		}
		if n.terminal() {
			return n
		}
		n = n.bestChild(m.exploration)
	}
}

// expand plays one unexplored candidate against a sampled opponent reply,
// resolving the turn once and freezing the outcome on the new edge.
func (m *MCTS) expand(n *node, player game.Owner, cfg game.Config) *node {
	cand := n.popUntried()
	reply := m.policyActions(n.state, player.Opponent(), cfg)

	var p1, p2 game.TurnActions
	if player == game.Player1 {
		p1, p2 = cand.Actions, reply
	} else {
		p1, p2 = reply, cand.Actions
	}
	next, err := game.Resolve(n.state, p1, p2, cfg, m.rng)
	if err != nil {
		panic(err) // generated candidates and policy actions are legal by construction
	}
	m.metrics.NodesVisited++

	child := newNode(n, cand.Actions, next, player, cfg, m.maxPerTerritory, m.maxCandidates)
	n.children = append(n.children, child)
	return child
}

// rollout plays both sides with the blended policy until the game
// finishes (the turn limit bounds every playout) and scores the result
// for player.
func (m *MCTS) rollout(state *game.GameState, player game.Owner, cfg game.Config) float64 {
	for state.Phase == game.PlayingPhase {
		p1 := m.policyActions(state, game.Player1, cfg)
		p2 := m.policyActions(state, game.Player2, cfg)
		next, err := game.Resolve(state, p1, p2, cfg, m.rng)
		if err != nil {
			panic(err)
		}
		state = next
	}
	m.metrics.FullPlayouts++

	switch state.Winner() {
	case player:
		return Win
	case player.Opponent():
		return Loss
	default:
		return Draw
	}
}

// policyActions draws one action set for player: heuristic-weighted with
// probability smartness, uniform random otherwise.
func (m *MCTS) policyActions(state *game.GameState, player game.Owner, cfg game.Config) game.TurnActions {
	if m.rng.Float64() >= m.smartness {
		return game.RandomActions(state, player, m.rng)
	}

	candidates := game.GenerateCandidates(state, player, cfg, m.maxPerTerritory, m.maxCandidates)
	minScore := candidates[len(candidates)-1].Score
	total := 0.0
	for _, c := range candidates {
		total += c.Score - minScore + 0.1
	}
	draw := m.rng.Float64() * total
	for _, c := range candidates {
		draw -= c.Score - minScore + 0.1
		if draw <= 0 {
			return c.Actions
		}
	}
	return candidates[len(candidates)-1].Actions
}
