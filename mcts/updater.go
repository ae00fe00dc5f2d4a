package mcts

// Updater is a reusable, insertion-ordered list of edges visited during
// one episode's selection phase. Backpropagation, driven by the observer
// rather than the builder, applies the same terminal credit to every
// recorded edge.
type Updater struct {
	edges []*Edge
}

// Clear empties the updater for reuse at the start of a new episode.
func (u *Updater) Clear() {
	u.edges = u.edges[:0]
}

// record appends e to the visited-edge list; called once per selection
// decision, never for a forced (non-branching) choice.
func (u *Updater) record(e *Edge) {
	u.edges = append(u.edges, e)
}

// Update propagates credit to every edge this episode traversed in its
// selection phase: each gets exactly one visit increment and one credit
// update.
func (u *Updater) Update(credit float64) {
	for _, e := range u.edges {
		e.record(credit)
	}
}

// Len reports how many edges are currently recorded.
func (u *Updater) Len() int { return len(u.edges) }
