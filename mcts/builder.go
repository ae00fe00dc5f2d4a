package mcts

import "github.com/signalnine/ccgsearch/engine"

// Builder drives one iteration's selection and simulation phases against
// the rules simulator. It holds no per-episode state of its own; node
// mutexes and the Edge atomics are what's shared across concurrently
// running builders.
type Builder struct {
	Sim         *engine.Sim
	Arena       *Arena
	Exploration float64
}

// SelectResult is PerformSelect's return value.
type SelectResult struct {
	Result             engine.Result
	NextNode           *Node
	SwitchToSimulation bool
	Err                error
}

// PerformSelect drives the simulator through exactly one main action
// (plus its sub-choices) starting at node, consulting the selection
// policy on every non-forced parameter request and recording each
// traversed edge in updater. SwitchToSimulation fires the first time
// expansion creates a brand-new leaf, or when the episode terminates.
//
// When the episode continues in selection, NextNode is resolved through
// turnOwner's board-node map keyed by the post-action view fingerprint:
// a main action's outcome can depend on hidden draws and random effects,
// so the resulting position, not the traversed edge, identifies where
// the cursor lands.
func (b *Builder) PerformSelect(state *engine.GameState, node *Node, view engine.View, turnOwner *Node, updater *Updater, selectionRNG engine.RNGSource) SelectResult {
	current := node
	expanded := false
	var policyErr error

	params := engine.ActionParamSourceFunc(func(t engine.ActionType, choices engine.ActionChoices) int {
		if policyErr != nil {
			return 0
		}
		if choices.Forced(t) {
			return choices.At(0)
		}
		decision, err := Select(b.Arena, current, t, choices, b.Exploration)
		if err != nil {
			policyErr = err
			return 0
		}
		updater.record(decision.Edge)
		current = decision.Edge.Child
		if decision.Expanded {
			expanded = true
		}
		return decision.Choice
	})

	result := b.Sim.PerformAction(state, params, selectionRNG)
	if policyErr != nil {
		return SelectResult{Err: policyErr}
	}

	res := SelectResult{
		Result:             result,
		SwitchToSimulation: expanded || result != engine.ResultNotDetermined,
	}
	if !res.SwitchToSimulation {
		res.NextNode = turnOwner.getOrCreateByFingerprint(b.Arena, view.Fingerprint())
	}
	return res
}

// PerformSimulate drives the simulator through one main action under
// policy, performing no tree mutation and no updater writes. policy is
// typically UniformRandomParams, but any rollout policy satisfies the
// contract.
func (b *Builder) PerformSimulate(state *engine.GameState, policy engine.ActionParamSource, simulationRNG engine.RNGSource) engine.Result {
	return b.Sim.PerformAction(state, policy, simulationRNG)
}
