package mcts

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/signalnine/ccgsearch/engine"
)

// TestMultiRunEpisodeConcurrentIsRaceFree drives many goroutines against
// per-goroutine forks of one Multi (shared trees, private cursors),
// mirroring how simulation.Runner's worker pool shares one tree pair
// across its whole goroutine fleet. Run with -race to exercise the
// lock-free edge statistics; the visit-count check holds regardless.
func TestMultiRunEpisodeConcurrentIsRaceFree(t *testing.T) {
	const iterations = 200
	sim := noChoiceSim()
	builder := newTestBuilder(sim)
	multi := NewMulti(
		NewObserver(engine.SideFirst, builder, nil),
		NewObserver(engine.SideSecond, builder, nil),
	)

	var wg sync.WaitGroup
	for i := 0; i < iterations; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := multi.Fork().RunEpisode(sim, 1, zeroRNG{}, zeroRNG{})
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	root := multi.First.Root
	require.Equal(t, 1, root.ChildCount(), "concurrent first-visit expansion must still converge on one child")

	edge, ok := root.Edge(int(engine.MainEndTurn))
	require.True(t, ok)
	require.Equal(t, uint64(iterations), edge.Visits(), "every concurrent episode must record exactly one visit on this edge")
	require.Equal(t, float64(iterations), edge.Credit(), "first wins this fixture deterministically every time")
}

// TestMultiForkSharesTreesNotCursors checks that a fork reaches the same
// roots while remaining a distinct episode driver.
func TestMultiForkSharesTreesNotCursors(t *testing.T) {
	sim := noChoiceSim()
	builder := newTestBuilder(sim)
	multi := NewMulti(
		NewObserver(engine.SideFirst, builder, nil),
		NewObserver(engine.SideSecond, builder, nil),
	)

	fork := multi.Fork()
	if fork.First == multi.First || fork.Second == multi.Second {
		t.Fatal("Fork must produce distinct observers")
	}
	if fork.First.Root != multi.First.Root || fork.Second.Root != multi.Second.Root {
		t.Error("forked observers must share the original trees")
	}

	if _, err := fork.RunEpisode(sim, 1, zeroRNG{}, zeroRNG{}); err != nil {
		t.Fatalf("RunEpisode on fork: %v", err)
	}
	if got := multi.First.Root.ChildCount(); got != 1 {
		t.Errorf("episode driven through the fork should grow the shared tree, ChildCount() = %d", got)
	}
}

// TestRunEpisodeDeterministicGivenSeedAndRNGs: two fresh tree pairs fed
// the same seed and the same RNG streams must produce identical
// traversals and identical post-update counters.
func TestRunEpisodeDeterministicGivenSeedAndRNGs(t *testing.T) {
	sim := noChoiceSim()

	run := func() (uint64, float64) {
		builder := newTestBuilder(sim)
		multi := NewMulti(
			NewObserver(engine.SideFirst, builder, nil),
			NewObserver(engine.SideSecond, builder, nil),
		)
		for i := 0; i < 3; i++ {
			if _, err := multi.RunEpisode(sim, 42, zeroRNG{}, zeroRNG{}); err != nil {
				t.Fatalf("RunEpisode: %v", err)
			}
		}
		edge, ok := multi.First.Root.Edge(int(engine.MainEndTurn))
		if !ok {
			t.Fatal("missing end-turn edge")
		}
		return edge.Visits(), edge.Credit()
	}

	v1, c1 := run()
	v2, c2 := run()
	if v1 != v2 || c1 != c2 {
		t.Errorf("identical runs diverged: visits %d vs %d, credit %v vs %v", v1, v2, c1, c2)
	}
}

// TestMultiObserverReturnsRequestedSide checks the side accessor used by
// the move selector and the parallel runner to reach either tree.
func TestMultiObserverReturnsRequestedSide(t *testing.T) {
	sim := noChoiceSim()
	builder := newTestBuilder(sim)
	first := NewObserver(engine.SideFirst, builder, nil)
	second := NewObserver(engine.SideSecond, builder, nil)
	multi := NewMulti(first, second)

	if multi.Observer(engine.SideFirst) != first {
		t.Error("Observer(SideFirst) did not return the first observer")
	}
	if multi.Observer(engine.SideSecond) != second {
		t.Error("Observer(SideSecond) did not return the second observer")
	}
}
