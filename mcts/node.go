package mcts

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/signalnine/ccgsearch/engine"
)

// Node is one search-tree node: its action-type is fixed after first
// expansion, its children are keyed by choice value in a map that keeps
// no insertion order, and its board-node map (non-nil only on turn-boundary nodes and the
// root) is populated and read only while holding mu, the node's
// expansion lock.
type Node struct {
	mu sync.RWMutex

	expanded   bool
	actionType engine.ActionType

	children     map[int]*Edge
	boardNodeMap map[engine.Fingerprint]*Node
}

// Edge is a (choice-index, child) pair owning its child node, with a
// per-edge statistic of chosen-times and total-credit, both atomic so
// concurrent selection/backpropagation never takes a lock to read or
// update them.
type Edge struct {
	Choice int
	Child  *Node

	visits atomic.Uint64
	credit atomic.Uint64 // math.Float64bits(total-credit)
}

// Visits returns chosen-times(e).
func (e *Edge) Visits() uint64 { return e.visits.Load() }

// Credit returns total-credit(e).
func (e *Edge) Credit() float64 { return math.Float64frombits(e.credit.Load()) }

// record performs chosen-times += 1; total-credit += credit under
// relaxed atomicity: the two fields are updated independently, so a
// concurrent reader may observe one updated before the other. The
// selection policy tolerates the transient mismatch.
func (e *Edge) record(credit float64) {
	e.visits.Add(1)
	for {
		old := e.credit.Load()
		next := math.Float64bits(math.Float64frombits(old) + credit)
		if e.credit.CompareAndSwap(old, next) {
			return
		}
	}
}

// ActionType returns this node's dispatched action-type; meaningless
// until Expanded() is true.
func (n *Node) ActionType() engine.ActionType {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.actionType
}

// Expanded reports whether this node's action-type has been fixed yet.
func (n *Node) Expanded() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.expanded
}

// ensureActionType fixes the node's action-type on first call; later
// calls with a different type indicate a caller bug, reported rather
// than silently accepted.
func (n *Node) ensureActionType(t engine.ActionType) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.expanded {
		n.expanded = true
		n.actionType = t
		n.children = make(map[int]*Edge)
		return nil
	}
	if n.actionType != t {
		return ErrActionTypeMismatch
	}
	return nil
}

// childEdge returns the existing edge for choice, if any, without
// allocating.
func (n *Node) childEdge(choice int) (*Edge, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	e, ok := n.children[choice]
	return e, ok
}

// getOrCreateChild returns the edge for choice, creating both the edge
// and its child node on first visit. created reports whether this call
// won the race to create it.
func (n *Node) getOrCreateChild(arena *Arena, choice int) (edge *Edge, created bool) {
	if e, ok := n.childEdge(choice); ok {
		return e, false
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if e, ok := n.children[choice]; ok {
		return e, false
	}
	child := arena.Alloc()
	e := &Edge{Choice: choice, Child: child}
	n.children[choice] = e
	return e, true
}

// getOrCreateByFingerprint is the board-node-map lookup: the observer
// jumps to whichever child matches the post-move fingerprint, creating
// it on miss.
func (n *Node) getOrCreateByFingerprint(arena *Arena, fp engine.Fingerprint) *Node {
	n.mu.RLock()
	if c, ok := n.boardNodeMap[fp]; ok {
		n.mu.RUnlock()
		return c
	}
	n.mu.RUnlock()

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.boardNodeMap == nil {
		n.boardNodeMap = make(map[engine.Fingerprint]*Node)
	}
	if c, ok := n.boardNodeMap[fp]; ok {
		return c
	}
	child := arena.Alloc()
	n.boardNodeMap[fp] = child
	return child
}

// LookupBoardNode returns the board-node-map entry for fp without
// creating one; the read-only counterpart to getOrCreateByFingerprint,
// for callers that only want to inspect the tree after a search has
// finished.
func (n *Node) LookupBoardNode(fp engine.Fingerprint) (*Node, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	c, ok := n.boardNodeMap[fp]
	return c, ok
}

// ChildCount reports how many distinct choices have been expanded from
// this node.
func (n *Node) ChildCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.children)
}

// Edge returns the edge for choice and whether it exists, for the move
// selector and tests.
func (n *Node) Edge(choice int) (*Edge, bool) {
	return n.childEdge(choice)
}

// BoardNodeMapLen reports the size of this node's board-node map.
func (n *Node) BoardNodeMapLen() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.boardNodeMap)
}
