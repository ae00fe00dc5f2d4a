// Package mcts implements the tree builder, selection policy, and
// single/multi-observer search drivers: arena-based nodes with atomic
// edge statistics, UCB1 selection with first-visit expansion, and the
// board-fingerprint reconciliation that lets an imperfect-information
// observer treat two differently-reached-but-identical-looking boards as
// the same tree node.
package mcts

import "sync"

// Arena owns every Node allocated by a search. Nodes are appended to a
// stable pointer slice; growing the slice reallocates the index, never
// the Node itself, so a *Node handed out earlier stays valid. Append-only
// rather than free-listed: a tree persists for a whole search run, so
// nothing is ever returned.
type Arena struct {
	mu    sync.RWMutex
	nodes []*Node
}

// NewArena builds an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Alloc creates a fresh, unexpanded Node in the arena.
func (a *Arena) Alloc() *Node {
	n := &Node{}
	a.mu.Lock()
	a.nodes = append(a.nodes, n)
	a.mu.Unlock()
	return n
}

// Len reports how many nodes the arena has allocated.
func (a *Arena) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.nodes)
}
