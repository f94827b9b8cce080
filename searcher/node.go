package searcher

import (
	"math"

	"stonegrid/game"
)

// node is one MCTS tree node: a game state plus the statistics UCB1 needs.
// The edge into a node is the searching player's candidate action set; the
// opponent's reply and the turn's rolls are sampled once at expansion and
// the resulting state frozen, so revisiting the edge always lands on the
// same child.
type node struct {
	parent   *node
	edge     game.TurnActions
	state    *game.GameState
	untried  []game.Candidate
	children []*node
	visits   int
	value    float64
}

func newNode(parent *node, edge game.TurnActions, state *game.GameState,
	player game.Owner, cfg game.Config, perTerritory, maxCandidates int) *node {

	n := &node{
		parent: parent,
		edge:   edge,
		state:  state,
	}
	if state.Phase == game.PlayingPhase {
		n.untried = game.GenerateCandidates(state, player, cfg, perTerritory, maxCandidates)
	}
	return n
}

func (n *node) terminal() bool {
	return len(n.untried) == 0 && len(n.children) == 0
}

func (n *node) expandable() bool {
	return len(n.untried) > 0
}

// popUntried hands out unexplored candidates best-local-score first.
func (n *node) popUntried() game.Candidate {
	cand := n.untried[0]
	n.untried = n.untried[1:]
	return cand
}

// bestChild returns the child maximizing UCB1. Children always carry at
// least one visit, they are backed up on creation.
func (n *node) bestChild(exploration float64) *node {
	lnN := math.Log(float64(n.visits))
	var best *node
	bestScore := math.Inf(-1)
	for _, child := range n.children {
		score := child.value/float64(child.visits) +
			exploration*math.Sqrt(lnN/float64(child.visits))
		if score > bestScore {
			bestScore = score
			best = child
		}
	}
	return best
}

// robustChild returns the most visited child, ties broken by insertion
// order. Visit counts are a lower-variance final selector than averages.
func (n *node) robustChild() *node {
	var best *node
	for _, child := range n.children {
		if best == nil || child.visits > best.visits {
			best = child
		}
	}
	return best
}

// backup propagates a rollout reward up the selection path.
func backup(leaf *node, reward float64) {
	for n := leaf; n != nil; n = n.parent {
		n.visits++
		n.value += reward
	}
}
