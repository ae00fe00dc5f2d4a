package mcts

import (
	"testing"

	"github.com/signalnine/ccgsearch/engine"
)

func newTestBuilder(sim *engine.Sim) *Builder {
	return &Builder{Sim: sim, Arena: NewArena(), Exploration: DefaultExploration}
}

// alwaysFirstChoice answers every request with the lowest offered choice;
// in noChoiceSim's fixture that's always the single legal end-turn action.
var alwaysFirstChoice = engine.ActionParamSourceFunc(func(_ engine.ActionType, c engine.ActionChoices) int {
	return c.At(0)
})

// TestObserverPerformOwnTurnActionsRejectsWrongViewerSide checks the
// redaction guard: a view built for the wrong side is rejected before any
// tree work.
func TestObserverPerformOwnTurnActionsRejectsWrongViewerSide(t *testing.T) {
	sim := noChoiceSim()
	builder := newTestBuilder(sim)
	observer := NewObserver(engine.SideFirst, builder, nil)
	observer.StartEpisode()

	state := sim.NewEpisode(1)
	defer engine.PutState(state)

	view := engine.ViewFor(state, engine.SideSecond)
	_, err := observer.PerformOwnTurnActions(state, view, zeroRNG{}, zeroRNG{})
	if err != ErrWrongViewerSide {
		t.Fatalf("err = %v, want ErrWrongViewerSide", err)
	}
}

// TestObserverPerformOwnTurnActionsRejectsOutOfTurn checks the companion
// guard: a same-side view whose current side isn't this observer's turn.
func TestObserverPerformOwnTurnActionsRejectsOutOfTurn(t *testing.T) {
	sim := noChoiceSim()
	builder := newTestBuilder(sim)
	observer := NewObserver(engine.SideFirst, builder, nil)
	observer.StartEpisode()

	state := sim.NewEpisode(1)
	defer engine.PutState(state)
	state.CurrentSide = engine.SideSecond

	view := engine.ViewFor(state, engine.SideFirst)
	_, err := observer.PerformOwnTurnActions(state, view, zeroRNG{}, zeroRNG{})
	if err != ErrNotOwnTurn {
		t.Fatalf("err = %v, want ErrNotOwnTurn", err)
	}
}

// TestMultiRunEpisodeRecordsSingleForcedEdgePerSide: with no playable
// cards or attackers and an unreachable hero-power cost, every decision
// each side's tree ever sees is a single-choice end-turn main action.
// Main actions are never exempt from the tree (ActionChoices.Forced
// excludes ActionMain), so each side grows exactly one edge before its
// switch to simulation, and the resulting fatigue race (both decks are
// empty) deterministically hands the win to the first player, whose
// credit should land at the recorded edge.
//
// The first player's root dispatches the opening decision directly; the
// second player's opening node is reached through its root's board-node
// map, keyed by the board second actually sees after first's end-turn and
// second's own fatigue draw.
func TestMultiRunEpisodeRecordsSingleForcedEdgePerSide(t *testing.T) {
	sim := noChoiceSim()
	first := NewObserver(engine.SideFirst, newTestBuilder(sim), nil)
	second := NewObserver(engine.SideSecond, newTestBuilder(sim), nil)
	multi := NewMulti(first, second)

	// Replay the deterministic opening outside the tree to compute the
	// fingerprint keying second's opening node.
	fpState := sim.NewEpisode(1)
	sim.PerformAction(fpState, alwaysFirstChoice, zeroRNG{})
	secondFP := engine.ViewFor(fpState, engine.SideSecond).Fingerprint()
	engine.PutState(fpState)

	result, err := multi.RunEpisode(sim, 1, zeroRNG{}, zeroRNG{})
	if err != nil {
		t.Fatalf("RunEpisode: %v", err)
	}
	if result != engine.ResultFirstPlayerWin {
		t.Fatalf("result = %v, want ResultFirstPlayerWin (deterministic fatigue race from this fixture)", result)
	}

	if got := first.Root.ActionType(); got != engine.ActionMain {
		t.Fatalf("first root action type = %v, want main", got)
	}
	if got := first.Root.ChildCount(); got != 1 {
		t.Fatalf("first root has %d children, want 1", got)
	}
	edge, ok := first.Root.Edge(int(engine.MainEndTurn))
	if !ok {
		t.Fatal("first root has no end-turn edge")
	}
	if got := edge.Visits(); got != 1 {
		t.Errorf("first end-turn edge visits = %d, want 1", got)
	}
	if got := edge.Credit(); got != 1.0 {
		t.Errorf("first end-turn edge credit = %v, want 1.0 (first won)", got)
	}

	secondNode, ok := second.Root.LookupBoardNode(secondFP)
	if !ok {
		t.Fatal("second root has no board-node-map entry for its opening position")
	}
	if got := secondNode.ChildCount(); got != 1 {
		t.Fatalf("second's opening node has %d children, want 1", got)
	}
	sEdge, ok := secondNode.Edge(int(engine.MainEndTurn))
	if !ok {
		t.Fatal("second's opening node has no end-turn edge")
	}
	if got := sEdge.Visits(); got != 1 {
		t.Errorf("second end-turn edge visits = %d, want 1", got)
	}
	if got := sEdge.Credit(); got != 0.0 {
		t.Errorf("second end-turn edge credit = %v, want 0.0 (second lost)", got)
	}
}

// TestMultiRunEpisodeAccumulatesVisitsAcrossIterations runs the same
// fixture twice against one shared Multi: the opening decision was
// already expanded on iteration one, so iteration two only adds a visit,
// never a second child.
func TestMultiRunEpisodeAccumulatesVisitsAcrossIterations(t *testing.T) {
	sim := noChoiceSim()
	builder := newTestBuilder(sim)
	multi := NewMulti(
		NewObserver(engine.SideFirst, builder, nil),
		NewObserver(engine.SideSecond, builder, nil),
	)

	for i := 0; i < 2; i++ {
		if _, err := multi.RunEpisode(sim, 1, zeroRNG{}, zeroRNG{}); err != nil {
			t.Fatalf("RunEpisode #%d: %v", i, err)
		}
	}

	root := multi.First.Root
	if got := root.ChildCount(); got != 1 {
		t.Fatalf("ChildCount() = %d, want 1 (no new choice ever appears in this fixture)", got)
	}
	edge, ok := root.Edge(int(engine.MainEndTurn))
	if !ok {
		t.Fatal("missing end-turn edge")
	}
	if got := edge.Visits(); got != 2 {
		t.Errorf("Visits() = %d, want 2 after two episodes", got)
	}
	// Episode one switched to simulation on expansion before any landing
	// was recorded; episode two stayed in selection through the end-turn
	// and registered the post-action board once.
	if got := root.BoardNodeMapLen(); got != 1 {
		t.Errorf("root BoardNodeMapLen() = %d, want 1", got)
	}
}

// TestEpisodeWithoutSelectionLeavesCountersUntouched: starting and
// immediately finishing an episode must not move any edge statistic;
// backpropagation only touches edges the selection phase recorded.
func TestEpisodeWithoutSelectionLeavesCountersUntouched(t *testing.T) {
	sim := noChoiceSim()
	builder := newTestBuilder(sim)
	multi := NewMulti(
		NewObserver(engine.SideFirst, builder, nil),
		NewObserver(engine.SideSecond, builder, nil),
	)
	if _, err := multi.RunEpisode(sim, 1, zeroRNG{}, zeroRNG{}); err != nil {
		t.Fatalf("RunEpisode: %v", err)
	}

	edge, ok := multi.First.Root.Edge(int(engine.MainEndTurn))
	if !ok {
		t.Fatal("missing end-turn edge")
	}
	visits, credit := edge.Visits(), edge.Credit()

	state := sim.NewEpisode(1)
	defer engine.PutState(state)
	multi.First.StartEpisode()
	multi.First.EpisodeFinished(state, engine.ResultFirstPlayerWin)

	if edge.Visits() != visits || edge.Credit() != credit {
		t.Errorf("counters moved without any selection: visits %d->%d credit %v->%v",
			visits, edge.Visits(), credit, edge.Credit())
	}
}
