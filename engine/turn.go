package engine

import "github.com/pkg/errors"

// beginTurn refills mana, clears hero-power/attack-count state, and draws
// for the side about to act; the player going first skips their turn-one
// draw (the second player's extra opening-hand card already compensates).
// params may be nil for the pre-game call from NewEpisode; triggered
// effects fall back to RNG for their sub-choices then.
func (sim *Sim) beginTurn(state *GameState, params ActionParamSource, rng RNGSource) {
	side := state.CurrentSide
	p := &state.Players[side]
	if p.ManaCrystals < 10 {
		p.ManaCrystals++
	}
	p.ManaAvailable = p.ManaCrystals
	p.Hero.PowerUsedThisTurn = false
	for i := range p.Board {
		m := &p.Board[i]
		if m.Windfury {
			m.AttacksLeft = 2
		} else {
			m.AttacksLeft = 1
		}
	}
	state.bump()

	ctx := newEffectContext(sim, state, params, rng)
	fireEvent(ctx, EventTurnStart, side, -1)

	if !(state.TurnNumber == 1 && side == SideFirst) {
		ctx.DrawCard(side)
	}
}

// endTurn fires end-of-turn triggers, flips the active side, and begins
// the next turn.
func (sim *Sim) endTurn(state *GameState, params ActionParamSource, rng RNGSource) {
	side := state.CurrentSide
	ctx := newEffectContext(sim, state, params, rng)
	fireEvent(ctx, EventTurnEnd, side, -1)

	state.CurrentSide = side.Other()
	state.TurnNumber++
	state.bump()
	sim.beginTurn(state, params, rng)
}

// performPlayCard resolves the play-card main action: which hand card,
// which choose-one branch (if any), which board slot (minions), and which
// target (if the effect is targetable).
func (sim *Sim) performPlayCard(state *GameState, side Side, params ActionParamSource, rng RNGSource) Result {
	p := &state.Players[side]
	var playable []int
	for i, c := range p.Hand {
		if sim.cardIsPlayable(state, side, c) {
			playable = append(playable, i)
		}
	}
	if len(playable) == 0 {
		return invalid(state, errors.Wrap(ErrNoLegalChoices, "play-card chosen with no playable card"))
	}
	handChoices := Set(playable...)
	idx := params.GetNumber(ActionHandIndex, handChoices)
	if !handChoices.Contains(idx) {
		return invalid(state, InvalidActionf("hand index %d not playable", idx))
	}

	card := p.Hand[idx]
	def, ok := sim.Catalog.Card(card)
	if !ok {
		return invalid(state, InvalidActionf("unknown card id %d in hand", card))
	}

	cardToPlay := card
	if len(def.ChooseOneBranches) > 0 {
		branch := params.GetNumber(ActionChooseOne, Range(len(def.ChooseOneBranches)))
		if branch < 0 || branch >= len(def.ChooseOneBranches) {
			return invalid(state, InvalidActionf("choose-one branch %d out of range for card %d", branch, card))
		}
		cardToPlay = def.ChooseOneBranches[branch]
		def, ok = sim.Catalog.Card(cardToPlay)
		if !ok {
			return invalid(state, InvalidActionf("unknown choose-one card id %d", cardToPlay))
		}
	}

	p.Hand = append(p.Hand[:idx], p.Hand[idx+1:]...)
	p.ManaAvailable -= def.Cost
	state.bump()

	target := TargetRef{NoTarget: true}
	if def.Targetable && def.TargetPredicate != nil {
		candidates := sim.legalTargets(state, side, def)
		if len(candidates) == 0 {
			return invalid(state, InvalidActionf("targetable card %d has no legal target", cardToPlay))
		}
		choice := params.GetNumber(ActionSpecifiedTarget, Range(len(candidates)))
		if choice < 0 || choice >= len(candidates) {
			return invalid(state, InvalidActionf("target choice %d out of range", choice))
		}
		target = candidates[choice]
	}

	ctx := newEffectContext(sim, state, params, rng)

	switch def.Kind {
	case CardMinion:
		position := len(p.Board)
		if len(p.Board) > 0 {
			position = params.GetNumber(ActionMinionPutLocation, Range(len(p.Board)+1))
			if position < 0 || position > len(p.Board) {
				position = len(p.Board)
			}
		}
		if ctx.SummonMinion(side, cardToPlay, position) &&
			!target.NoTarget && !target.IsHero && target.Side == side && target.Index >= position {
			// The summon shifted friendly board slots at or after its
			// position; the battlecry target was captured against the
			// pre-summon board.
			target.Index++
		}
	case CardWeapon:
		p.Hero.Weapon = &Weapon{Card: cardToPlay, Attack: def.Attack, Durability: def.Health}
		state.bump()
	}

	if def.OnPlay != nil {
		if err := def.OnPlay(ctx, side, target); err != nil {
			return invalid(state, InvalidActionf("card %d on-play: %v", cardToPlay, err))
		}
	}

	fireEvent(ctx, EventCardPlayed, side, -1)

	if state.IsTerminal() {
		return resultFromWinner(state.WinnerSide)
	}
	return ResultNotDetermined
}

// performHeroPower resolves the shared Sim.HeroPower card like a cheap,
// always-available spell.
func (sim *Sim) performHeroPower(state *GameState, side Side, params ActionParamSource, rng RNGSource) Result {
	p := &state.Players[side]
	def, ok := sim.Catalog.Card(sim.HeroPower)
	if !ok {
		return invalid(state, InvalidActionf("hero power card id %d not in catalog", sim.HeroPower))
	}
	p.Hero.PowerUsedThisTurn = true
	p.ManaAvailable -= sim.HeroPowerCost
	state.bump()

	target := TargetRef{NoTarget: true}
	if def.Targetable && def.TargetPredicate != nil {
		candidates := sim.legalTargets(state, side, def)
		if len(candidates) > 0 {
			choice := params.GetNumber(ActionSpecifiedTarget, Range(len(candidates)))
			if choice < 0 || choice >= len(candidates) {
				return invalid(state, InvalidActionf("hero power target choice %d out of range", choice))
			}
			target = candidates[choice]
		}
	}

	ctx := newEffectContext(sim, state, params, rng)
	if def.OnPlay != nil {
		if err := def.OnPlay(ctx, side, target); err != nil {
			return invalid(state, InvalidActionf("hero power on-play: %v", err))
		}
	}
	if state.IsTerminal() {
		return resultFromWinner(state.WinnerSide)
	}
	return ResultNotDetermined
}
