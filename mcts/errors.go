package mcts

import (
	"github.com/pkg/errors"

	"github.com/signalnine/ccgsearch/engine"
)

// Programmer-contract violations within the tree builder: each aborts
// its iteration and is never retried.
var (
	// ErrActionTypeMismatch signals that a node's action-type, fixed at
	// first expansion, was asked to dispatch a different action-type on
	// a later visit.
	ErrActionTypeMismatch = errors.New("mcts: action-type mismatch at node")

	// ErrWrongViewerSide signals a View was handed to an Observer for
	// the wrong side; its cause chains to engine.ErrRedactionViolation,
	// since acting on such a view would leak hidden information across
	// the two observers' information sets.
	ErrWrongViewerSide = errors.Wrap(engine.ErrRedactionViolation, "mcts: view built for the wrong observer side")

	// ErrNotOwnTurn signals PerformOwnTurnActions was called with a view
	// whose current side isn't this observer's side.
	ErrNotOwnTurn = errors.New("mcts: perform-own-turn-actions called out of turn")

	// ErrTurnBoundaryMismatch signals the cursor began a turn block on a
	// node whose action-type is already fixed to something other than
	// main.
	ErrTurnBoundaryMismatch = errors.New("mcts: selection cursor is not at a turn boundary")
)
