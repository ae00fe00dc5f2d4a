package engine

// Result is the outcome of one PerformAction call.
type Result int8

const (
	ResultNotDetermined Result = iota
	ResultFirstPlayerWin
	ResultSecondPlayerWin
	ResultDraw
	ResultInvalid
)

func resultFromWinner(w int8) Result {
	switch w {
	case int8(SideFirst):
		return ResultFirstPlayerWin
	case int8(SideSecond):
		return ResultSecondPlayerWin
	case winnerDraw:
		return ResultDraw
	default:
		return ResultNotDetermined
	}
}

// CurrentSide returns whose turn state is on.
func (sim *Sim) CurrentSide(state *GameState) Side { return state.CurrentSide }

// seededShuffle is a small deterministic LCG shuffle, used only for deck
// order during episode setup; NewEpisode takes a bare seed, not an
// RNGSource, since deck construction happens before any
// ActionParamSource/RNGSource pair exists for the episode.
func seededShuffle(cards []CardID, seed uint64) {
	rng := seed | 1
	for i := len(cards) - 1; i > 0; i-- {
		rng = rng*6364136223846793005 + 1442695040888963407
		j := int(rng % uint64(i+1))
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// lcgRNG is the minimal RNGSource backing pre-game entropy inside
// NewEpisode; the per-iteration RNG pair only exists once stepping
// starts.
type lcgRNG struct{ s uint64 }

func (l *lcgRNG) next() uint64 {
	l.s = l.s*6364136223846793005 + 1442695040888963407
	return l.s
}

func (l *lcgRNG) Get(exclusiveMax int) int {
	if exclusiveMax <= 0 {
		return 0
	}
	return int(l.next() % uint64(exclusiveMax))
}

func (l *lcgRNG) GetRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + int(l.next()%uint64(max-min+1))
}

// mulliganCostCap is the keep threshold NewEpisode's mulligan applies:
// opening-hand cards above it are shuffled back for a redraw.
const mulliganCostCap = 3

// NewEpisode builds a start state: decks shuffled from Sim.Deck, opening
// hands dealt, mulligan resolved, and the first player's turn begun, so
// the returned state sits at the episode's first main-action decision
// point.
func (sim *Sim) NewEpisode(seed uint64) *GameState {
	state := GetState()
	state.CurrentSide = SideFirst
	state.TurnNumber = 1
	state.rngSeed = seed
	rng := &lcgRNG{s: seed ^ 0x9E3779B97F4A7C15}

	for _, side := range [2]Side{SideFirst, SideSecond} {
		p := &state.Players[side]
		p.Hero = Hero{Health: sim.StartingHealth, MaxHealth: sim.StartingHealth}
		p.deck = append(p.deck[:0], sim.Deck...)
		seededShuffle(p.deck, seed+uint64(side)*0x9E3779B97F4A7C15)

		draw := sim.OpeningHand
		if side == SideSecond {
			draw++ // "coin"; second player draws an extra card
		}
		for i := 0; i < draw && len(p.deck) > 0; i++ {
			p.Hand = append(p.Hand, p.deck[len(p.deck)-1])
			p.deck = p.deck[:len(p.deck)-1]
		}
		sim.resolveMulligan(state, side, rng)
	}

	sim.beginTurn(state, nil, rng)
	return state
}

// resolveMulligan keeps every opening-hand card at or under the cost cap
// and shuffles the rest back for a redraw. Resolved here rather than via
// the stepping interface so neither observer's param source ever sees the
// other side's hidden hand decisions.
func (sim *Sim) resolveMulligan(state *GameState, side Side, rng *lcgRNG) {
	p := &state.Players[side]
	kept := make([]CardID, 0, len(p.Hand))
	returned := 0
	for _, card := range p.Hand {
		if def, ok := sim.Catalog.Card(card); ok && def.Cost <= mulliganCostCap {
			kept = append(kept, card)
			continue
		}
		p.deck = append(p.deck, card)
		returned++
	}
	if returned > 0 {
		seededShuffle(p.deck, rng.next())
		for i := 0; i < returned && len(p.deck) > 0; i++ {
			kept = append(kept, p.deck[len(p.deck)-1])
			p.deck = p.deck[:len(p.deck)-1]
		}
	}
	p.Hand = kept
	p.Mulliganed = true
	state.bump()
}

// invalid records why the current action was rejected and yields
// ResultInvalid; the caller reads the detail back via
// GameState.ContractViolation.
func invalid(state *GameState, err error) Result {
	state.contractErr = err
	return ResultInvalid
}

// PerformAction advances state by one main action (plus all its forced
// sub-choices), requesting parameters from params and entropy from rng,
// and returns the result.
func (sim *Sim) PerformAction(state *GameState, params ActionParamSource, rng RNGSource) Result {
	if state.IsTerminal() {
		return resultFromWinner(state.WinnerSide)
	}
	state.contractErr = nil

	side := state.CurrentSide
	mainChoices := sim.legalMainActions(state)
	if mainChoices.Size() == 0 {
		return invalid(state, ErrNoLegalChoices)
	}
	choice := params.GetNumber(ActionMain, mainChoices)
	if !mainChoices.Contains(choice) {
		return invalid(state, InvalidActionf("main choice %d not in legal set", choice))
	}

	var result Result
	switch MainActionKind(choice) {
	case MainPlayCard:
		result = sim.performPlayCard(state, side, params, rng)
	case MainAttack:
		result = sim.performAttack(state, side, params, rng)
	case MainHeroPower:
		result = sim.performHeroPower(state, side, params, rng)
	case MainEndTurn:
		sim.endTurn(state, params, rng)
		result = ResultNotDetermined
	default:
		return invalid(state, InvalidActionf("unrecognized main choice %d", choice))
	}

	if state.IsTerminal() {
		return resultFromWinner(state.WinnerSide)
	}
	return result
}

// LegalMainActions exposes legalMainActions for callers outside the
// package; the move selector needs the current position's legal
// ActionMain choices.
func (sim *Sim) LegalMainActions(state *GameState) ActionChoices {
	return sim.legalMainActions(state)
}

// legalMainActions enumerates which of {play-card, attack, hero-power,
// end-turn} are available this instant. end-turn is always legal, so
// this set is never empty.
func (sim *Sim) legalMainActions(state *GameState) ActionChoices {
	side := state.CurrentSide
	p := &state.Players[side]
	var legal []int

	if sim.anyPlayableCard(state, side) {
		legal = append(legal, int(MainPlayCard))
	}
	if sim.anyLegalAttacker(state, side) {
		legal = append(legal, int(MainAttack))
	}
	if !p.Hero.PowerUsedThisTurn && p.ManaAvailable >= sim.HeroPowerCost {
		legal = append(legal, int(MainHeroPower))
	}
	legal = append(legal, int(MainEndTurn))
	return Set(legal...)
}

func (sim *Sim) anyPlayableCard(state *GameState, side Side) bool {
	p := &state.Players[side]
	for _, c := range p.Hand {
		if sim.cardIsPlayable(state, side, c) {
			return true
		}
	}
	return false
}

func (sim *Sim) cardIsPlayable(state *GameState, side Side, card CardID) bool {
	def, ok := sim.Catalog.Card(card)
	if !ok || def.Cost > state.Players[side].ManaAvailable {
		return false
	}
	if def.Kind == CardMinion && len(state.Players[side].Board) >= sim.MaxBoardSize {
		return false
	}
	if def.Targetable && def.TargetPredicate != nil {
		return len(sim.legalTargets(state, side, def)) > 0
	}
	return true
}

func (sim *Sim) legalTargets(state *GameState, side Side, def CardDef) []TargetRef {
	var out []TargetRef
	for _, s := range [2]Side{SideFirst, SideSecond} {
		board := state.Players[s].Board
		for i, m := range board {
			if !m.Alive() {
				continue
			}
			ref := MinionTarget(s, i)
			if def.TargetPredicate(state, side, ref) {
				out = append(out, ref)
			}
		}
		ref := HeroTarget(s)
		if def.TargetPredicate(state, side, ref) {
			out = append(out, ref)
		}
	}
	return out
}

func (sim *Sim) anyLegalAttacker(state *GameState, side Side) bool {
	return len(sim.legalAttackerIndices(state, side)) > 0
}

// legalAttackerIndices maps to board slots [0, len(board)) by position;
// the hero's own weapon attack (if any) is appended at index len(board).
func (sim *Sim) legalAttackerIndices(state *GameState, side Side) []int {
	p := &state.Players[side]
	var out []int
	for i, m := range p.Board {
		if m.Alive() && m.AttacksLeft > 0 {
			out = append(out, i)
		}
	}
	if p.Hero.Weapon != nil && p.Hero.Weapon.Durability > 0 && p.Hero.Weapon.Attack > 0 {
		out = append(out, len(p.Board))
	}
	return out
}

func (sim *Sim) legalDefenderTargets(state *GameState, side Side) []TargetRef {
	enemy := side.Other()
	board := state.Players[enemy].Board
	var taunts []TargetRef
	var all []TargetRef
	for i, m := range board {
		if !m.Alive() {
			continue
		}
		ref := MinionTarget(enemy, i)
		all = append(all, ref)
		if m.Taunt {
			taunts = append(taunts, ref)
		}
	}
	if len(taunts) > 0 {
		return taunts
	}
	all = append(all, HeroTarget(enemy))
	return all
}
