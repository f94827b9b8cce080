package searcher

import "time"

// Metrics are per-search diagnostic counters, mainly for tests and
// experiment logs.
type Metrics struct {
	NodesVisited int           // hypothetical turns resolved through the engine
	Prunes       int           // alpha-beta cutoffs
	Simulations  int           // completed MCTS episodes
	FullPlayouts int           // rollouts that reached a finished state
	Elapsed      time.Duration // wall-clock search time
	Budgeted     bool          // the time budget expired before the search finished
}
