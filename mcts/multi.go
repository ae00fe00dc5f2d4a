package mcts

import (
	"github.com/pkg/errors"

	"github.com/signalnine/ccgsearch/engine"
)

// Multi is the multi-observer coordinator: one independent observer per
// side, each growing its own per-side tree. Multi owns no tree state of
// its own; it only routes each turn's action block to the side
// currently acting and keeps the other side's cursor in sync at every
// turn boundary.
type Multi struct {
	First  *Observer
	Second *Observer
}

// NewMulti pairs two per-side observers into one MO-MCTS coordinator.
// first.Side must be engine.SideFirst and second.Side engine.SideSecond.
func NewMulti(first, second *Observer) *Multi {
	return &Multi{First: first, Second: second}
}

// Observer returns this coordinator's per-side observer.
func (m *Multi) Observer(side engine.Side) *Observer {
	if side == engine.SideFirst {
		return m.First
	}
	return m.Second
}

// Fork returns a coordinator over forks of both observers: same trees,
// fresh episode cursors. One fork per worker lets a pool drive the same
// pair of trees concurrently.
func (m *Multi) Fork() *Multi {
	return NewMulti(m.First.Fork(), m.Second.Fork())
}

// RunEpisode drives exactly one episode end to end: a fresh start state
// from sim, both observers starting their episode, then alternating
// PerformOwnTurnActions / ApplyOthersActions at every turn boundary
// until the simulator reaches a terminal result, and finally
// EpisodeFinished on both observers with their own side's credit.
// selectionRNG and simulationRNG are the iteration's two independent
// entropy sources; the state is released back to engine.StatePool before
// returning.
func (m *Multi) RunEpisode(sim *engine.Sim, seed uint64, selectionRNG, simulationRNG engine.RNGSource) (engine.Result, error) {
	state := sim.NewEpisode(seed)
	defer engine.PutState(state)

	m.First.StartEpisode()
	m.Second.StartEpisode()

	var result engine.Result
	for {
		side := sim.CurrentSide(state)
		acting := m.Observer(side)
		other := m.Observer(side.Other())

		res, err := acting.PerformOwnTurnActions(state, engine.ViewFor(state, side), selectionRNG, simulationRNG)
		if err != nil {
			return engine.ResultNotDetermined, err
		}
		if res == engine.ResultInvalid {
			// A rejected action mid-episode is a driver bug, not an
			// outcome; no credit may be assigned for it.
			reason := state.ContractViolation()
			if reason == nil {
				reason = engine.ErrInvalidAction
			}
			return res, errors.Wrap(reason, "mcts: simulator rejected an action mid-episode")
		}
		if res != engine.ResultNotDetermined {
			result = res
			break
		}
		other.ApplyOthersActions(engine.ViewFor(state, side.Other()))
	}

	m.First.EpisodeFinished(state, result)
	m.Second.EpisodeFinished(state, result)
	return result, nil
}
