package cards

import "github.com/signalnine/ccgsearch/engine"

// Card IDs for the bundled starter set. Kept as named constants so tests
// and cmd/search can refer to specific cards without magic numbers.
const (
	CardRecruit      int32 = 1
	CardShieldbearer int32 = 2
	CardFirebolt     int32 = 3
	CardArcaneVolley int32 = 4
	CardHarvestGolem int32 = 5
	CardGolemToken   int32 = 6
	CardSilence      int32 = 7
	CardAegisTotem   int32 = 8
	CardWarAxe       int32 = 9
	CardFireblast    int32 = 10 // the starter set's hero power
	CardHealingTouch int32 = 11
)

// CreateRecruitCard is a vanilla 1-mana 1/1, the cheapest possible board
// presence.
func CreateRecruitCard() CardSpec {
	return CardSpec{ID: CardRecruit, Name: "Recruit", Kind: KindMinion, Cost: 1, Attack: 1, Health: 1}
}

// CreateShieldbearerCard is a defensive wall: high health, no attack,
// taunt from the moment it hits the board.
func CreateShieldbearerCard() CardSpec {
	return CardSpec{ID: CardShieldbearer, Name: "Shieldbearer", Kind: KindMinion, Cost: 1, Attack: 0, Health: 4, Taunt: true}
}

// CreateFireboltCard deals 3 damage to any target.
func CreateFireboltCard() CardSpec {
	return CardSpec{
		ID: CardFirebolt, Name: "Firebolt", Kind: KindSpell, Cost: 1,
		Targetable: true, TargetRule: FilterAny,
		OnPlayEffects: []EffectStep{{Op: OpDamage, Amount: 3, TargetEffect: true}},
	}
}

// CreateHealingTouchCard restores 6 health to any target.
func CreateHealingTouchCard() CardSpec {
	return CardSpec{
		ID: CardHealingTouch, Name: "Healing Touch", Kind: KindSpell, Cost: 3,
		Targetable: true, TargetRule: FilterAny,
		OnPlayEffects: []EffectStep{{Op: OpHeal, Amount: 6, TargetEffect: true}},
	}
}

// CreateArcaneVolleyCard hits three independently-chosen random enemies
// for 1 each; three untargeted OpDamage steps, each resolved fresh
// through the ActionRandom channel (cards/compiler.go interpret).
func CreateArcaneVolleyCard() CardSpec {
	return CardSpec{
		ID: CardArcaneVolley, Name: "Arcane Volley", Kind: KindSpell, Cost: 2,
		TargetRule: FilterEnemy,
		OnPlayEffects: []EffectStep{
			{Op: OpDamage, Amount: 1},
			{Op: OpDamage, Amount: 1},
			{Op: OpDamage, Amount: 1},
		},
	}
}

// CreateHarvestGolemCard is a 2/3 that leaves behind a 1/1 token on death.
func CreateHarvestGolemCard() CardSpec {
	return CardSpec{
		ID: CardHarvestGolem, Name: "Harvest Golem", Kind: KindMinion, Cost: 3, Attack: 2, Health: 3,
		Deathrattle: []EffectStep{{Op: OpSummon, SummonCard: CardGolemToken, SummonCount: 1}},
	}
}

// CreateGolemTokenCard is the vanilla token Harvest Golem's deathrattle
// summons; it is never itself drawable from a deck.
func CreateGolemTokenCard() CardSpec {
	return CardSpec{ID: CardGolemToken, Name: "Damaged Golem", Kind: KindMinion, Cost: 1, Attack: 1, Health: 1}
}

// CreateSilenceCard strips all enchantments and future triggers from a
// target minion.
func CreateSilenceCard() CardSpec {
	return CardSpec{
		ID: CardSilence, Name: "Silence", Kind: KindSpell, Cost: 1,
		Targetable: true, TargetRule: FilterAnyMinion,
		OnPlayEffects: []EffectStep{{Op: OpSilence, TargetEffect: true}},
	}
}

// CreateAegisTotemCard re-grants itself divine shield every time any
// minion enters play while it's alive; a subscription-driven effect
// rather than a static flag, since the shield has to come back after
// being spent (TriggerMinionSummoned's Handler always targets the
// subscribing minion's own board slot, not the event's subject).
func CreateAegisTotemCard() CardSpec {
	return CardSpec{
		ID: CardAegisTotem, Name: "Aegis Totem", Kind: KindMinion, Cost: 2, Attack: 0, Health: 2,
		Subscriptions: []EventSpec{{
			Trigger:  TriggerMinionSummoned,
			Lifetime: LifetimeWhileFriendly,
			Effects:  []EffectStep{{Op: OpGrantDivineShield, TargetEffect: true}},
		}},
	}
}

// CreateWarAxeCard is a 2-mana, 3-attack, 2-durability weapon.
func CreateWarAxeCard() CardSpec {
	return CardSpec{ID: CardWarAxe, Name: "Fiery War Axe", Kind: KindWeapon, Cost: 2, Attack: 3, Health: 2}
}

// CreateFireblastCard is the starter set's shared hero power: 1 damage to
// any target for 2 mana (engine.Sim.HeroPowerCost).
func CreateFireblastCard() CardSpec {
	return CardSpec{
		ID: CardFireblast, Name: "Fireblast", Kind: KindSpell, Cost: 2,
		Targetable: true, TargetRule: FilterAny,
		OnPlayEffects: []EffectStep{{Op: OpDamage, Amount: 1, TargetEffect: true}},
	}
}

// BasicCardSet returns the bundled starter cards, used by cmd/search's
// default table and by engine/mcts/simulation tests that need a small,
// fully-compilable catalog.
func BasicCardSet() []CardSpec {
	return []CardSpec{
		CreateRecruitCard(),
		CreateShieldbearerCard(),
		CreateFireboltCard(),
		CreateHealingTouchCard(),
		CreateArcaneVolleyCard(),
		CreateHarvestGolemCard(),
		CreateGolemTokenCard(),
		CreateSilenceCard(),
		CreateAegisTotemCard(),
		CreateWarAxeCard(),
		CreateFireblastCard(),
	}
}

// BasicTable wraps BasicCardSet into a serializable Table.
func BasicTable() Table {
	return Table{Name: "basic", HeroPower: CardFireblast, Cards: BasicCardSet()}
}

// BasicDeck returns a 30-card deck drawn from the non-token, non-hero-power
// cards in BasicCardSet, repeated to fill a conventional deck size.
func BasicDeck() []int32 {
	playable := []int32{
		CardRecruit, CardShieldbearer, CardFirebolt, CardHealingTouch,
		CardArcaneVolley, CardHarvestGolem, CardSilence, CardAegisTotem, CardWarAxe,
	}
	deck := make([]int32, 0, 30)
	for len(deck) < 30 {
		deck = append(deck, playable[len(deck)%len(playable)])
	}
	return deck
}

// BasicDeckIDs is BasicDeck converted to engine.CardID, the shape
// engine.NewSim expects.
func BasicDeckIDs() []engine.CardID {
	raw := BasicDeck()
	out := make([]engine.CardID, len(raw))
	for i, id := range raw {
		out[i] = engine.CardID(id)
	}
	return out
}
