package simulation

import (
	"github.com/signalnine/ccgsearch/engine"
	"github.com/signalnine/ccgsearch/mcts"
)

// SelectMove picks the final move out of a finished search: among legal's
// choices, the one with the greatest chosen-times, ties broken by the
// greater total-credit/chosen-times ratio. ok is false if none of the
// legal choices was ever visited at node (the search never reached this
// position, or ended before expanding any of its children).
func SelectMove(node *mcts.Node, legal engine.ActionChoices) (choice int, ok bool) {
	var bestEdge *mcts.Edge
	for i := 0; i < legal.Size(); i++ {
		c := legal.At(i)
		edge, has := node.Edge(c)
		if !has {
			continue
		}
		if bestEdge == nil || edgeBetter(edge, bestEdge) {
			bestEdge = edge
			choice = c
		}
	}
	if bestEdge == nil {
		return 0, false
	}
	return choice, true
}

// edgeBetter reports whether a outranks b: greater chosen-times first,
// greater mean credit to break ties.
func edgeBetter(a, b *mcts.Edge) bool {
	av, bv := a.Visits(), b.Visits()
	if av != bv {
		return av > bv
	}
	return meanCredit(a) > meanCredit(b)
}

func meanCredit(e *mcts.Edge) float64 {
	v := e.Visits()
	if v == 0 {
		return 0
	}
	return e.Credit() / float64(v)
}
