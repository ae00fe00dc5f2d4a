package mcts

import (
	"math"

	"github.com/signalnine/ccgsearch/engine"
)

// DefaultExploration is the UCB1 exploration constant used when the
// caller doesn't choose one. Both sides must search with the same value.
const DefaultExploration = math.Sqrt2

// Decision is the outcome of one selection-policy consultation: which
// edge to traverse, and whether traversing it required first-visit
// expansion.
type Decision struct {
	Choice   int
	Edge     *Edge
	Expanded bool
}

// Select applies the selection policy at node for a choice set presented
// under actionType: first-visit expansion of the smallest untried choice,
// else UCB1-maximizing choice with ties broken by the smaller index.
// Callers must not invoke Select for a forced choice
// (choices.Forced(actionType)); the policy is never consulted in that
// case.
func Select(arena *Arena, node *Node, actionType engine.ActionType, choices engine.ActionChoices, exploration float64) (Decision, error) {
	if err := node.ensureActionType(actionType); err != nil {
		return Decision{}, err
	}

	node.mu.RLock()
	for i := 0; i < choices.Size(); i++ {
		c := choices.At(i)
		if _, ok := node.children[c]; !ok {
			node.mu.RUnlock()
			edge, created := node.getOrCreateChild(arena, c)
			return Decision{Choice: c, Edge: edge, Expanded: created}, nil
		}
	}

	var totalVisits uint64
	for i := 0; i < choices.Size(); i++ {
		totalVisits += node.children[choices.At(i)].Visits()
	}
	logN := math.Log(float64(totalVisits))

	bestChoice := choices.At(0)
	bestEdge := node.children[bestChoice]
	bestScore := ucb1(bestEdge, logN, exploration)
	for i := 1; i < choices.Size(); i++ {
		c := choices.At(i)
		e := node.children[c]
		score := ucb1(e, logN, exploration)
		if score > bestScore {
			bestScore = score
			bestChoice = c
			bestEdge = e
		}
	}
	node.mu.RUnlock()

	return Decision{Choice: bestChoice, Edge: bestEdge, Expanded: false}, nil
}

// ucb1 scores an edge: mean(c) + k*sqrt(ln(N)/n(c)). An edge another
// goroutine created but hasn't backpropagated yet can reach here with
// zero visits; it scores as most urgent rather than dividing by zero.
func ucb1(e *Edge, logParentVisits, exploration float64) float64 {
	n := e.Visits()
	if n == 0 {
		return math.Inf(1)
	}
	mean := e.Credit() / float64(n)
	return mean + exploration*math.Sqrt(logParentVisits/float64(n))
}

// UniformRandomParams is the default rollout policy: picks uniformly
// among the presented choices via RNG, performing no tree mutation
// whatsoever. Forced choices still short-circuit before consulting RNG,
// matching Select's contract.
type UniformRandomParams struct {
	RNG engine.RNGSource
}

func (p UniformRandomParams) GetNumber(t engine.ActionType, choices engine.ActionChoices) int {
	if choices.Forced(t) {
		return choices.At(0)
	}
	i := p.RNG.GetRange(0, choices.Size()-1)
	return choices.At(i)
}
