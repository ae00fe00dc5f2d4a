// Package simulation implements the parallel runner: a worker pool that
// drives multi-observer MCTS iterations against one shared pair of
// per-side trees until a cooperative stop flag fires, plus the
// move-selection helper a downstream caller uses to read a decision out
// of the finished search.
package simulation

import (
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/signalnine/ccgsearch/engine"
	"github.com/signalnine/ccgsearch/mcts"
)

// randRNG adapts *rand.Rand to engine.RNGSource. Two independent
// instances are built per worker, one feeding selection tie-breaks and
// one feeding simulation rollouts, since *rand.Rand isn't safe for
// concurrent use across workers.
type randRNG struct{ r *rand.Rand }

func (rr randRNG) Get(exclusiveMax int) int {
	if exclusiveMax <= 0 {
		return 0
	}
	return rr.r.Intn(exclusiveMax)
}

func (rr randRNG) GetRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + rr.r.Intn(max-min+1)
}

// Runner drives N worker goroutines against forks of one *mcts.Multi:
// each worker owns its own episode cursors, while the tree nodes behind
// them are shared, which is what the atomic edge statistics and per-node
// expansion mutexes exist for. Every iteration re-derives the same start
// state from the run's root seed, so the whole pool deepens one search
// over one position.
type Runner struct {
	// RunID correlates one run's stats and failure log without a side
	// channel.
	RunID uuid.UUID

	sim     *engine.Sim
	multi   *mcts.Multi
	workers int

	stop  atomic.Bool
	stats Statistic
	wg    sync.WaitGroup
}

// NewRunner builds a runner over sim and multi with workers goroutines
// (runtime.NumCPU() if workers <= 0).
func NewRunner(sim *engine.Sim, multi *mcts.Multi, workers int) *Runner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Runner{RunID: uuid.New(), sim: sim, multi: multi, workers: workers}
}

// Start launches the worker pool. rootSeed identifies the position being
// searched (every iteration's start state is rebuilt from it) and
// deterministically derives each worker's own RNG seeds, so the
// per-worker RNG streams repeat given the same rootSeed and worker count.
// The resulting trees still depend on how the workers interleave and on
// when Stop is called.
func (r *Runner) Start(rootSeed uint64) {
	seedRNG := rand.New(rand.NewSource(int64(rootSeed)))
	for w := 0; w < r.workers; w++ {
		workerSeed := seedRNG.Int63()
		r.wg.Add(1)
		go r.worker(rootSeed, workerSeed)
	}
}

// RunFor starts the pool and raises Stop once d elapses; the deadline
// policy for a time-boxed thinking budget.
func (r *Runner) RunFor(rootSeed uint64, d time.Duration) {
	r.Start(rootSeed)
	time.AfterFunc(d, r.Stop)
}

func (r *Runner) worker(episodeSeed uint64, workerSeed int64) {
	defer r.wg.Done()

	multi := r.multi.Fork()
	selectionRNG := randRNG{rand.New(rand.NewSource(workerSeed ^ 0x5DEECE66D))}
	simulationRNG := randRNG{rand.New(rand.NewSource(workerSeed ^ 0x2545F4914F6CDD1D))}

	for !r.stop.Load() {
		r.runOneIteration(multi, episodeSeed, selectionRNG, simulationRNG)
	}
}

// runOneIteration runs exactly one episode, recovering a panic into a
// failed iteration rather than bringing down the worker. Nothing is
// retried; the next loop iteration starts a fresh episode from scratch.
func (r *Runner) runOneIteration(multi *mcts.Multi, episodeSeed uint64, selectionRNG, simulationRNG engine.RNGSource) {
	defer func() {
		if rec := recover(); rec != nil {
			r.stats.recordFailure(errors.Errorf("simulation: worker panic: %v", rec))
		}
	}()

	_, err := multi.RunEpisode(r.sim, episodeSeed, selectionRNG, simulationRNG)
	if err != nil {
		r.stats.recordFailure(errors.Wrap(err, "simulation: iteration failed"))
		return
	}
	r.stats.recordSuccess()
}

// Stop raises the cooperative stop flag. In-flight iterations are never
// interrupted mid-flight; the cost of stopping is at most one
// iteration's worth of latency per worker.
func (r *Runner) Stop() { r.stop.Store(true) }

// WaitUntilStopped joins every worker goroutine.
func (r *Runner) WaitUntilStopped() { r.wg.Wait() }

// GetRootNode returns side's tree root. The root of the side acting
// first at the searched position dispatches that position's main-action
// choices directly, so it feeds SelectMove as-is.
func (r *Runner) GetRootNode(side engine.Side) *mcts.Node {
	return r.multi.Observer(side).Root
}

// Stats returns the shared iteration statistic.
func (r *Runner) Stats() *Statistic { return &r.stats }
