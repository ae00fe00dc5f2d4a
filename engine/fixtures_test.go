package engine

// Card IDs used across the engine test fixtures.
const (
	testCardRecruit  CardID = 1 // vanilla 1/1 minion
	testCardFirebolt CardID = 2 // targeted spell, 3 damage
	testCardZap      CardID = 3 // hero power, 1 damage, targetable
	testCardTotem    CardID = 4 // vanilla 0/2 taunt minion
	testCardBooster  CardID = 5 // 1/1 minion, battlecry: +2 attack to a friendly minion
)

func testCatalog() MapCatalog {
	return MapCatalog{
		testCardRecruit: {
			ID: testCardRecruit, Name: "Recruit", Kind: CardMinion,
			Cost: 1, Attack: 1, Health: 1,
		},
		testCardFirebolt: {
			ID: testCardFirebolt, Name: "Firebolt", Kind: CardSpell,
			Cost: 1, Targetable: true,
			TargetPredicate: func(*GameState, Side, TargetRef) bool { return true },
			OnPlay: func(ctx *EffectContext, caster Side, target TargetRef) error {
				ctx.Damage(target, 3)
				return nil
			},
		},
		testCardZap: {
			ID: testCardZap, Name: "Zap", Kind: CardSpell,
			Cost: 2, Targetable: true,
			TargetPredicate: func(*GameState, Side, TargetRef) bool { return true },
			OnPlay: func(ctx *EffectContext, caster Side, target TargetRef) error {
				ctx.Damage(target, 1)
				return nil
			},
		},
		testCardTotem: {
			ID: testCardTotem, Name: "Totem", Kind: CardMinion,
			Cost: 1, Attack: 0, Health: 2,
		},
		testCardBooster: {
			ID: testCardBooster, Name: "Booster", Kind: CardMinion,
			Cost: 1, Attack: 1, Health: 1, Targetable: true,
			TargetPredicate: func(_ *GameState, caster Side, ref TargetRef) bool {
				return !ref.IsHero && ref.Side == caster
			},
			OnPlay: func(ctx *EffectContext, caster Side, target TargetRef) error {
				ctx.MutateMinion(target, func(m *Minion) { m.Attack += 2 })
				return nil
			},
		},
	}
}

func testDeck(n int) []CardID {
	deck := make([]CardID, 0, n)
	for i := 0; i < n; i++ {
		deck = append(deck, testCardRecruit)
	}
	return deck
}

func testSim() *Sim {
	return NewSim(testCatalog(), testDeck(30), testCardZap)
}

// scriptedParams answers ActionParamSource calls from a fixed queue, in
// order; it fails the test loudly if the queue runs dry so a test can
// never silently fall back to a zero value.
type scriptedParams struct {
	t     interface{ Fatalf(string, ...interface{}) }
	queue []int
}

func (s *scriptedParams) GetNumber(actionType ActionType, choices ActionChoices) int {
	if len(s.queue) == 0 {
		s.t.Fatalf("scriptedParams exhausted on %s request (size %d)", actionType, choices.Size())
	}
	v := s.queue[0]
	s.queue = s.queue[1:]
	return v
}

// zeroRNG always returns the low end of its range; deterministic, not
// meant to model real entropy.
type zeroRNG struct{}

func (zeroRNG) Get(exclusiveMax int) int  { return 0 }
func (zeroRNG) GetRange(min, max int) int { return min }
