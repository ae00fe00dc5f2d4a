package mcts

import "github.com/signalnine/ccgsearch/engine"

// Stage is the observer's phase within one episode: selection consults
// and grows the tree, recording every traversed edge in the updater;
// simulation rolls out under the rollout policy with no tree mutation at
// all. An episode starts in selection and switches to simulation at most
// once, the first time expansion creates a brand-new leaf.
type Stage uint8

const (
	StageSelection Stage = iota
	StageSimulation
)

// Observer is a single-observer MCTS: one player's persistent tree, plus
// a cursor (node, stage, updater) tracking this observer's position
// through it for the in-flight episode. The opponent's moves are never
// observed as specific tree children; only the resulting visible board
// matters, so at every turn boundary the cursor jumps to whichever child
// matches the post-move fingerprint via the board-node map.
type Observer struct {
	Side    engine.Side
	Builder *Builder
	Root    *Node
	Credit  CreditPolicy

	node    *Node
	stage   Stage
	updater Updater
}

// NewObserver allocates this side's persistent tree root in
// builder.Arena and pairs it with credit (DefaultCreditPolicy if nil).
func NewObserver(side engine.Side, builder *Builder, credit CreditPolicy) *Observer {
	if credit == nil {
		credit = DefaultCreditPolicy
	}
	return &Observer{
		Side:    side,
		Builder: builder,
		Root:    builder.Arena.Alloc(),
		Credit:  credit,
	}
}

// Fork returns an observer sharing this one's tree (side, builder, root,
// credit policy) with its own episode cursor, so concurrent workers can
// drive independent episodes against the same tree without contending on
// cursor state.
func (o *Observer) Fork() *Observer {
	return &Observer{Side: o.Side, Builder: o.Builder, Root: o.Root, Credit: o.Credit}
}

// StartEpisode resets the cursor to the root in the selection stage and
// clears the updater.
func (o *Observer) StartEpisode() {
	o.node = o.Root
	o.stage = StageSelection
	o.updater.Clear()
}

// PerformOwnTurnActions drives the simulator through every main action of
// this observer's own turn. view must be built for this observer's side
// and it must actually be this observer's turn; view wraps the same
// mutable state the builder advances, so re-reading view.CurrentSide()
// after each action observes the live turn owner. Returns once the
// simulator reaches a terminal result or the turn passes to the other
// side.
//
// In the selection stage every main action starts at the cursor and
// lands on a node resolved through the turn-start node's board-node map;
// the map captured at the start of the block keys every landing within
// this turn.
func (o *Observer) PerformOwnTurnActions(state *engine.GameState, view engine.View, selectionRNG, simulationRNG engine.RNGSource) (engine.Result, error) {
	if view.ViewerSide() != o.Side {
		return engine.ResultNotDetermined, ErrWrongViewerSide
	}
	if view.CurrentSide() != o.Side {
		return engine.ResultNotDetermined, ErrNotOwnTurn
	}

	var turnOwner *Node
	if o.stage == StageSelection {
		if o.node.Expanded() && o.node.ActionType() != engine.ActionMain {
			return engine.ResultNotDetermined, ErrTurnBoundaryMismatch
		}
		turnOwner = o.node
	}

	for view.CurrentSide() == o.Side {
		if o.stage == StageSimulation {
			result := o.Builder.PerformSimulate(state, UniformRandomParams{RNG: simulationRNG}, simulationRNG)
			if result != engine.ResultNotDetermined {
				return result, nil
			}
			continue
		}

		sel := o.Builder.PerformSelect(state, o.node, view, turnOwner, &o.updater, selectionRNG)
		if sel.Err != nil {
			return engine.ResultNotDetermined, sel.Err
		}
		if sel.Result != engine.ResultNotDetermined {
			return sel.Result, nil
		}
		if sel.SwitchToSimulation {
			o.stage = StageSimulation
			o.node = nil
		} else {
			o.node = sel.NextNode
		}
	}
	return engine.ResultNotDetermined, nil
}

// ApplyOthersActions forwards the cursor to the board-node-map entry
// matching view, the post-opponent-move board as seen by this observer.
// Only meaningful in the selection stage: once this observer has switched
// to simulation, its tree stops mutating for the rest of the episode, so
// catching the cursor up is a no-op.
func (o *Observer) ApplyOthersActions(view engine.View) {
	if o.stage != StageSelection {
		return
	}
	o.node = o.node.getOrCreateByFingerprint(o.Builder.Arena, view.Fingerprint())
}

// EpisodeFinished computes this observer's terminal credit via Credit
// and backpropagates it to every edge this episode's selection phase
// recorded.
func (o *Observer) EpisodeFinished(state *engine.GameState, result engine.Result) {
	credit := o.Credit(o.Side, state, result)
	o.updater.Update(credit)
}
