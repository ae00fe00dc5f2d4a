package engine

// Sim bundles the fixed configuration the rules simulator needs: the
// card catalog and board/hand size limits. Sim itself holds no
// per-episode state; every mutable field lives in GameState, which is
// cloned per simulation.
type Sim struct {
	Catalog        CardCatalog
	Deck           []CardID // shared decklist both sides shuffle independently
	HeroPower      CardID   // shared hero power, resolved like a cheap spell
	HeroPowerCost  int32
	MaxBoardSize   int
	MaxHandSize    int
	StartingHealth int32
	OpeningHand    int
	DiscoverCount  int
}

// NewSim builds a Sim with the conventional Hearthstone-style defaults.
// deck is the shared decklist both sides draw from (shuffled
// independently per episode); heroPower is a CardID the catalog resolves
// like any other untargeted-or-targeted spell.
func NewSim(catalog CardCatalog, deck []CardID, heroPower CardID) *Sim {
	return &Sim{
		Catalog:        catalog,
		Deck:           deck,
		HeroPower:      heroPower,
		HeroPowerCost:  2,
		MaxBoardSize:   7,
		MaxHandSize:    10,
		StartingHealth: 30,
		OpeningHand:    3,
		DiscoverCount:  3,
	}
}

// EffectContext is threaded through every card-effect callback (OnPlay,
// Deathrattle, event Handler) so an effect can mutate state and request
// further sub-choices (random targets, discover picks) through the
// same instrumented ActionParamSource channel the tree builder observes.
type EffectContext struct {
	Sim    *Sim
	State  *GameState
	Params ActionParamSource
	RNG    RNGSource
}

func newEffectContext(sim *Sim, state *GameState, params ActionParamSource, rng RNGSource) *EffectContext {
	return &EffectContext{Sim: sim, State: state, Params: params, RNG: rng}
}

// NewEffectContext builds the EffectContext card-effect callbacks receive.
// Exported so a card-content package's tests can exercise a compiled
// CardDef's OnPlay/Deathrattle directly, without driving a full
// PerformAction loop.
func (sim *Sim) NewEffectContext(state *GameState, params ActionParamSource, rng RNGSource) *EffectContext {
	return newEffectContext(sim, state, params, rng)
}

// HeroTarget / MinionTarget build TargetRef values.
func HeroTarget(side Side) TargetRef { return TargetRef{Side: side, IsHero: true} }
func MinionTarget(side Side, index int) TargetRef {
	return TargetRef{Side: side, Index: index}
}

// LivingEnemyMinions lists targetable enemy board indices as TargetRefs.
func (ctx *EffectContext) LivingEnemyMinions(caster Side) []TargetRef {
	enemy := caster.Other()
	board := ctx.State.Players[enemy].Board
	out := make([]TargetRef, 0, len(board))
	for i, m := range board {
		if m.Alive() {
			out = append(out, MinionTarget(enemy, i))
		}
	}
	return out
}

// LivingFriendlyMinions lists the caster's own targetable board indices.
func (ctx *EffectContext) LivingFriendlyMinions(caster Side) []TargetRef {
	board := ctx.State.Players[caster].Board
	out := make([]TargetRef, 0, len(board))
	for i, m := range board {
		if m.Alive() {
			out = append(out, MinionTarget(caster, i))
		}
	}
	return out
}

// chooseIndex routes a sub-choice through Params when one is driving the
// episode; during pre-game resolution (NewEpisode's begin-turn) no param
// source exists yet and RNG answers instead.
func (ctx *EffectContext) chooseIndex(t ActionType, n int) int {
	if ctx.Params != nil {
		return ctx.Params.GetNumber(t, Range(n))
	}
	return ctx.RNG.Get(n)
}

// RandomTarget picks uniformly among candidates via the ActionParamSource
// under ActionRandom: even "no strategy" decisions flow through the same
// recorded channel rather than calling RNG directly, so the tree builder
// can account for every sub-choice uniformly.
func (ctx *EffectContext) RandomTarget(candidates []TargetRef) (TargetRef, bool) {
	if len(candidates) == 0 {
		return TargetRef{NoTarget: true}, false
	}
	return candidates[ctx.chooseIndex(ActionRandom, len(candidates))], true
}

// Discover offers the player a choose-one pick among options, capped at
// Sim.DiscoverCount.
func (ctx *EffectContext) Discover(options []CardID) CardID {
	n := len(options)
	if n > ctx.Sim.DiscoverCount {
		n = ctx.Sim.DiscoverCount
	}
	if n == 0 {
		return 0
	}
	return options[ctx.chooseIndex(ActionChooseOne, n)]
}

// Damage applies amount damage to target, respecting divine shield and
// armor, then fires EventMinionDamaged/EventHeroDamaged and resolves any
// resulting death.
func (ctx *EffectContext) Damage(target TargetRef, amount int32) {
	if amount <= 0 || target.NoTarget {
		return
	}
	state := ctx.State
	if target.IsHero {
		hero := &state.Players[target.Side].Hero
		remaining := amount
		if hero.Armor > 0 {
			absorbed := hero.Armor
			if absorbed > remaining {
				absorbed = remaining
			}
			hero.Armor -= absorbed
			remaining -= absorbed
		}
		hero.Health -= remaining
		state.bump()
		fireEvent(ctx, EventHeroDamaged, target.Side, -1)
		checkTerminal(state)
		return
	}

	board := state.Players[target.Side].Board
	if target.Index < 0 || target.Index >= len(board) {
		return
	}
	m := &board[target.Index]
	if !m.Alive() {
		return
	}
	if m.DivineShield {
		m.DivineShield = false
		state.bump()
		return
	}
	m.Health -= amount
	state.bump()
	fireEvent(ctx, EventMinionDamaged, target.Side, target.Index)
	if !m.Alive() {
		ctx.killMinion(target.Side, target.Index)
	}
}

// Heal restores health to target, capped at MaxHealth for both minions
// and heroes (armor and health are tracked separately, matching the
// Hearthstone rule that healing never grants armor).
func (ctx *EffectContext) Heal(target TargetRef, amount int32) {
	if amount <= 0 || target.NoTarget {
		return
	}
	state := ctx.State
	if target.IsHero {
		hero := &state.Players[target.Side].Hero
		hero.Health += amount
		if hero.Health > hero.MaxHealth {
			hero.Health = hero.MaxHealth
		}
		state.bump()
		return
	}
	board := state.Players[target.Side].Board
	if target.Index < 0 || target.Index >= len(board) {
		return
	}
	m := &board[target.Index]
	if !m.Alive() {
		return
	}
	m.Health += amount
	if m.Health > m.MaxHealth {
		m.Health = m.MaxHealth
	}
	state.bump()
}

// DrawCard moves one card from side's deck to its hand, applying fatigue
// damage once the deck is empty (standard Hearthstone rule), and
// discarding over a full hand.
func (ctx *EffectContext) DrawCard(side Side) {
	state := ctx.State
	p := &state.Players[side]
	if len(p.deck) == 0 {
		p.Fatigue++
		ctx.Damage(HeroTarget(side), p.Fatigue)
		return
	}
	card := p.deck[len(p.deck)-1]
	p.deck = p.deck[:len(p.deck)-1]
	if len(p.Hand) >= ctx.Sim.MaxHandSize {
		p.GraveyardSize++ // burned on a full hand
		state.bump()
		return
	}
	p.Hand = append(p.Hand, card)
	state.bump()
}

// MutateMinion applies fn to the minion at target and bumps the
// play-order counter, for card-effect interpreters whose operation
// (buffs, silence, flag grants) doesn't fit the Damage/Heal shape. It is
// a no-op (returning false) if target is a hero or out of range.
func (ctx *EffectContext) MutateMinion(target TargetRef, fn func(*Minion)) bool {
	if target.NoTarget || target.IsHero {
		return false
	}
	board := ctx.State.Players[target.Side].Board
	if target.Index < 0 || target.Index >= len(board) {
		return false
	}
	fn(&board[target.Index])
	ctx.State.bump()
	return true
}

// SummonMinion places a fresh minion for cardID onto side's board at
// position (clamped into range), provided the board has room.
func (ctx *EffectContext) SummonMinion(side Side, cardID CardID, position int) bool {
	state := ctx.State
	p := &state.Players[side]
	if len(p.Board) >= ctx.Sim.MaxBoardSize {
		return false
	}
	def, ok := ctx.Sim.Catalog.Card(cardID)
	if !ok {
		return false
	}
	m := Minion{
		Card:         cardID,
		Attack:       def.Attack,
		Taunt:        def.Taunt,
		DivineShield: def.DivineShield,
		Windfury:     def.Windfury,
		Health:       def.Health,
		MaxHealth:    def.Health,
	}
	if position < 0 {
		position = 0
	}
	if position > len(p.Board) {
		position = len(p.Board)
	}
	p.Board = append(p.Board, Minion{})
	copy(p.Board[position+1:], p.Board[position:])
	p.Board[position] = m
	state.bump()
	fireEvent(ctx, EventMinionSummoned, side, position)
	return true
}

// killMinion removes a dead minion, running its deathrattle and firing
// EventMinionDied before the slot is spliced out.
func (ctx *EffectContext) killMinion(side Side, index int) {
	state := ctx.State
	p := &state.Players[side]
	if index < 0 || index >= len(p.Board) {
		return
	}
	m := p.Board[index]
	fireEvent(ctx, EventMinionDied, side, index)
	if def, ok := ctx.Sim.Catalog.Card(m.Card); ok && !m.Silenced && def.Deathrattle != nil {
		def.Deathrattle(ctx, side)
	}
	// re-fetch: the deathrattle may have mutated the board, and a summon
	// at or before index shifts the dead minion to a later slot.
	p = &state.Players[side]
	for i := index; i < len(p.Board); i++ {
		if p.Board[i].Card == m.Card && !p.Board[i].Alive() {
			p.Board = append(p.Board[:i], p.Board[i+1:]...)
			p.GraveyardSize++
			state.bump()
			break
		}
	}
	checkTerminal(state)
}

// fireEvent dispatches ev to every living minion's matching subscription
// across both sides, in board order.
func fireEvent(ctx *EffectContext, ev EventKind, subjectSide Side, subjectIndex int) {
	state := ctx.State
	for _, side := range [2]Side{SideFirst, SideSecond} {
		board := state.Players[side].Board
		for i := 0; i < len(board); i++ {
			m := board[i]
			if m.Silenced || !m.Alive() {
				continue
			}
			def, ok := ctx.Sim.Catalog.Card(m.Card)
			if !ok {
				continue
			}
			for _, sub := range def.EventSubscriptions {
				if sub.Event != ev {
					continue
				}
				if sub.Lifetime != nil && !sub.Lifetime(state, side) {
					continue
				}
				_ = sub.Handler(ctx, side, i)
				// re-read board: handler may have mutated it.
				board = state.Players[side].Board
				if i >= len(board) {
					break
				}
			}
		}
	}
}

// checkTerminal updates state.WinnerSide once a hero's health drops to
// zero or below. Both heroes dying the same action is a draw.
func checkTerminal(state *GameState) {
	firstDead := state.Players[SideFirst].Hero.Health <= 0
	secondDead := state.Players[SideSecond].Hero.Health <= 0
	switch {
	case firstDead && secondDead:
		state.WinnerSide = winnerDraw
	case firstDead:
		state.WinnerSide = int8(SideSecond)
	case secondDead:
		state.WinnerSide = int8(SideFirst)
	}
}
