package mcts

import "github.com/signalnine/ccgsearch/engine"

// CreditPolicy computes the terminal credit attributed to side, in
// [0, 1], given the final state and result. Pluggable so a caller can
// shape credit by remaining health or the like; only the win/loss/draw
// default ships.
type CreditPolicy func(side engine.Side, state *engine.GameState, result engine.Result) float64

// DefaultCreditPolicy scores 1.0 for a win, 0.0 for a loss, 0.5 for a
// draw or an undetermined result
// (the latter should never reach EpisodeFinished in a correct driver, but
// scoring it as a draw keeps the function total rather than partial).
func DefaultCreditPolicy(side engine.Side, _ *engine.GameState, result engine.Result) float64 {
	switch result {
	case engine.ResultFirstPlayerWin:
		if side == engine.SideFirst {
			return 1.0
		}
		return 0.0
	case engine.ResultSecondPlayerWin:
		if side == engine.SideSecond {
			return 1.0
		}
		return 0.0
	default: // ResultDraw, ResultNotDetermined, ResultInvalid
		return 0.5
	}
}
