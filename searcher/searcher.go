// Package searcher holds the decision-making searches built on the game
// package's turn resolution as a forward model: depth-limited minimax with
// alpha-beta pruning, and Monte Carlo tree search.
//
// The true transition is stochastic. Both searches resolve hypothetical
// turns against a single sampled roll sequence drawn from the search's own
// seeded stream, one sample per node, rather than averaging over chance
// outcomes. That keeps lookahead cheap and reproducible per seed at the
// cost of some sampling noise in node values.
package searcher

// Rollout and backup rewards, viewed from the searching player.
const (
	Win  = 1.0
	Draw = 0.5
	Loss = 0.0
)
