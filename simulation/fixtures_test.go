package simulation

import (
	"github.com/signalnine/ccgsearch/engine"
	"github.com/signalnine/ccgsearch/mcts"
)

const (
	testCardRecruit   engine.CardID = 1
	testCardHeroPower engine.CardID = 2
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

// noChoiceSim builds a Sim where the only ever-legal main action is
// end-turn, same shape as mcts's fixture: empty deck, unreachable
// hero-power cost, no opening hand.
func noChoiceSim() *engine.Sim {
	sim := engine.NewSim(testCatalog(), nil, testCardHeroPower)
	sim.HeroPowerCost = 99
	sim.OpeningHand = 0
	return sim
}

func newTestMulti(sim *engine.Sim) *mcts.Multi {
	builder := &mcts.Builder{Sim: sim, Arena: mcts.NewArena(), Exploration: mcts.DefaultExploration}
	return mcts.NewMulti(
		mcts.NewObserver(engine.SideFirst, builder, nil),
		mcts.NewObserver(engine.SideSecond, builder, nil),
	)
}

// zeroRNG always returns the low end of its range; deterministic, not
// meant to model real entropy.
type zeroRNG struct{}

func (zeroRNG) Get(exclusiveMax int) int  { return 0 }
func (zeroRNG) GetRange(min, max int) int { return min }
