package engine

import "github.com/pkg/errors"

// performAttack resolves the attack main action: which attacker (a board
// minion by index, or the hero via its equipped weapon at index
// len(board)), and which defender (an enemy taunt if one is alive,
// otherwise any enemy minion or the enemy hero). Both sides of the trade
// deal damage simultaneously, matching the source game's combat rule that
// a dying attacker still lands its hit.
func (sim *Sim) performAttack(state *GameState, side Side, params ActionParamSource, rng RNGSource) Result {
	attackers := sim.legalAttackerIndices(state, side)
	if len(attackers) == 0 {
		return invalid(state, errors.Wrap(ErrNoLegalChoices, "attack chosen with no legal attacker"))
	}
	attackerChoices := Set(attackers...)
	attackerIdx := params.GetNumber(ActionAttacker, attackerChoices)
	if !attackerChoices.Contains(attackerIdx) {
		return invalid(state, InvalidActionf("attacker %d not in legal set", attackerIdx))
	}

	defenders := sim.legalDefenderTargets(state, side)
	if len(defenders) == 0 {
		return invalid(state, errors.Wrap(ErrNoLegalChoices, "no legal defender"))
	}
	defIdx := params.GetNumber(ActionDefender, Range(len(defenders)))
	if defIdx < 0 || defIdx >= len(defenders) {
		return invalid(state, InvalidActionf("defender choice %d out of range", defIdx))
	}
	defender := defenders[defIdx]

	p := &state.Players[side]
	usingWeapon := attackerIdx == len(p.Board)

	var attackerRef TargetRef
	var attackPower int32
	if usingWeapon {
		attackerRef = HeroTarget(side)
		attackPower = p.Hero.Weapon.Attack
	} else {
		attackerRef = MinionTarget(side, attackerIdx)
		attackPower = p.Board[attackerIdx].Attack
	}

	var defPower int32
	if defender.IsHero {
		if hero := state.Players[defender.Side].Hero; hero.Weapon != nil {
			defPower = hero.Weapon.Attack
		}
	} else {
		defPower = state.Players[defender.Side].Board[defender.Index].Attack
	}

	ctx := newEffectContext(sim, state, params, rng)
	ctx.Damage(defender, attackPower)
	ctx.Damage(attackerRef, defPower)

	np := &state.Players[side]
	if usingWeapon {
		if np.Hero.Weapon != nil {
			np.Hero.Weapon.Durability--
			if np.Hero.Weapon.Durability <= 0 {
				np.Hero.Weapon = nil
			}
		}
	} else if attackerIdx < len(np.Board) && np.Board[attackerIdx].Alive() {
		if np.Board[attackerIdx].AttacksLeft > 0 {
			np.Board[attackerIdx].AttacksLeft--
		}
	}
	state.bump()

	if state.IsTerminal() {
		return resultFromWinner(state.WinnerSide)
	}
	return ResultNotDetermined
}
