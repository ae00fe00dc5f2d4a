package mcts

import "github.com/signalnine/ccgsearch/engine"

// Card IDs used across the mcts test fixtures.
const (
	testCardRecruit   engine.CardID = 1 // vanilla 1/1 minion
	testCardHeroPower engine.CardID = 2 // targeted spell, 1 damage
)

func testCatalog() engine.MapCatalog {
	return engine.MapCatalog{
		testCardRecruit: {
			ID: testCardRecruit, Name: "Recruit", Kind: engine.CardMinion,
			Cost: 1, Attack: 1, Health: 1,
		},
		testCardHeroPower: {
			ID: testCardHeroPower, Name: "Zap", Kind: engine.CardSpell,
			Cost: 2, Targetable: true,
			TargetPredicate: func(*engine.GameState, engine.Side, engine.TargetRef) bool { return true },
			OnPlay: func(ctx *engine.EffectContext, caster engine.Side, target engine.TargetRef) error {
				ctx.Damage(target, 1)
				return nil
			},
		},
	}
}

// noChoiceSim builds a Sim with no deck and an unreachable hero-power
// cost, so both sides' hands and boards stay empty for the whole episode
// and the only ever-legal main action is end-turn. Fatigue damage from
// the empty deck eventually ends the episode without either side ever
// making a real decision.
func noChoiceSim() *engine.Sim {
	sim := engine.NewSim(testCatalog(), nil, testCardHeroPower)
	sim.HeroPowerCost = 99
	sim.OpeningHand = 0
	return sim
}

// zeroRNG always returns the low end of its range; deterministic, not
// meant to model real entropy.
type zeroRNG struct{}

func (zeroRNG) Get(exclusiveMax int) int  { return 0 }
func (zeroRNG) GetRange(min, max int) int { return min }
