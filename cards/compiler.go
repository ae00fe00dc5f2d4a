package cards

import (
	"github.com/hashicorp/go-multierror"

	"github.com/signalnine/ccgsearch/engine"
)

// Compile validates specs and builds the engine.CardCatalog they
// describe. Validation failures are aggregated with go-multierror rather
// than stopping at the first bad card, since a content author fixing a
// card table wants every defect reported at once.
func Compile(specs []CardSpec) (engine.MapCatalog, error) {
	if errs := (Validator{}).Validate(specs); len(errs) > 0 {
		var merr *multierror.Error
		for _, e := range errs {
			merr = multierror.Append(merr, e)
		}
		return nil, merr
	}

	catalog := make(engine.MapCatalog, len(specs))
	for _, s := range specs {
		catalog[engine.CardID(s.ID)] = compileOne(s)
	}
	return catalog, nil
}

func compileOne(s CardSpec) engine.CardDef {
	def := engine.CardDef{
		ID:           engine.CardID(s.ID),
		Name:         s.Name,
		Kind:         engineKind(s.Kind),
		Cost:         s.Cost,
		Attack:       s.Attack,
		Health:       s.Health,
		Taunt:        s.Taunt,
		DivineShield: s.DivineShield,
		Windfury:     s.Windfury,
		Targetable:   s.Targetable,
	}
	if s.Targetable {
		def.TargetPredicate = targetPredicateFor(s.TargetRule)
	}
	for _, id := range s.ChooseOneOf {
		def.ChooseOneBranches = append(def.ChooseOneBranches, engine.CardID(id))
	}

	if len(s.OnPlayEffects) > 0 {
		steps, rule := s.OnPlayEffects, s.TargetRule
		def.OnPlay = func(ctx *engine.EffectContext, caster engine.Side, target engine.TargetRef) error {
			interpret(ctx, steps, caster, rule, target)
			return nil
		}
	}
	if len(s.Deathrattle) > 0 {
		steps, rule := s.Deathrattle, s.TargetRule
		def.Deathrattle = func(ctx *engine.EffectContext, owner engine.Side) error {
			interpret(ctx, steps, owner, rule, engine.TargetRef{NoTarget: true})
			return nil
		}
	}
	for _, sub := range s.Subscriptions {
		def.EventSubscriptions = append(def.EventSubscriptions, compileSubscription(sub))
	}
	return def
}

func engineKind(k Kind) engine.CardKind {
	switch k {
	case KindSpell:
		return engine.CardSpell
	case KindWeapon:
		return engine.CardWeapon
	default:
		return engine.CardMinion
	}
}

func targetPredicateFor(rule TargetFilter) func(*engine.GameState, engine.Side, engine.TargetRef) bool {
	return func(_ *engine.GameState, caster engine.Side, ref engine.TargetRef) bool {
		if ref.NoTarget {
			return false
		}
		switch rule {
		case FilterAny:
			return true
		case FilterAnyMinion:
			return !ref.IsHero
		case FilterEnemy:
			return ref.Side != caster
		case FilterEnemyMinion:
			return ref.Side != caster && !ref.IsHero
		case FilterEnemyHero:
			return ref.Side != caster && ref.IsHero
		case FilterFriendly:
			return ref.Side == caster
		case FilterFriendlyMinion:
			return ref.Side == caster && !ref.IsHero
		case FilterFriendlyHero:
			return ref.Side == caster && ref.IsHero
		default:
			return false
		}
	}
}

// compileSubscription turns a declarative EventSpec into the function
// values engine.EventSubscription needs, reusing the same effect
// interpreter OnPlay/Deathrattle use.
func compileSubscription(sub EventSpec) engine.EventSubscription {
	steps := sub.Effects
	lifetime := sub.Lifetime
	return engine.EventSubscription{
		Event: engineTrigger(sub.Trigger),
		Lifetime: func(_ *engine.GameState, owner engine.Side) bool {
			switch lifetime {
			case LifetimeWhileFriendly:
				return true // owner is always the subscribing minion's own side
			case LifetimeWhileEnemy:
				return false
			default:
				return true
			}
		},
		Handler: func(ctx *engine.EffectContext, owner engine.Side, ownerIndex int) error {
			self := engine.TargetRef{Side: owner, Index: ownerIndex}
			interpret(ctx, steps, owner, FilterAny, self)
			return nil
		},
	}
}

func engineTrigger(t Trigger) engine.EventKind {
	switch t {
	case TriggerMinionDamaged:
		return engine.EventMinionDamaged
	case TriggerMinionDied:
		return engine.EventMinionDied
	case TriggerCardPlayed:
		return engine.EventCardPlayed
	case TriggerTurnStart:
		return engine.EventTurnStart
	case TriggerTurnEnd:
		return engine.EventTurnEnd
	case TriggerHeroDamaged:
		return engine.EventHeroDamaged
	default:
		return engine.EventMinionSummoned
	}
}

// interpret runs steps in sequence against ctx. Steps with TargetEffect
// apply to chosen (the target the player picked when playing the card,
// or "self" when firing from an event); steps without it resolve a fresh
// target from rule via the same ActionRandom channel RandomTarget uses.
func interpret(ctx *engine.EffectContext, steps []EffectStep, caster engine.Side, rule TargetFilter, chosen engine.TargetRef) {
	for _, step := range steps {
		switch step.Op {
		case OpDrawCards:
			for i := int32(0); i < step.Amount; i++ {
				ctx.DrawCard(caster)
			}
			continue
		case OpSummon:
			for i := 0; i < step.SummonCount; i++ {
				ctx.SummonMinion(caster, engine.CardID(step.SummonCard), -1)
			}
			continue
		case OpDiscover:
			options := make([]engine.CardID, len(step.DiscoverOptions))
			for i, o := range step.DiscoverOptions {
				options[i] = engine.CardID(o)
			}
			// A discovered card always resolves as a minion summon; there
			// is no discovered-spell path yet.
			ctx.SummonMinion(caster, ctx.Discover(options), -1)
			continue
		case OpEquipWeapon:
			continue // the simulator equips weapons on play; nothing to do here.
		}

		target := chosen
		if !step.TargetEffect {
			var ok bool
			target, ok = resolveFilteredTarget(ctx, caster, rule)
			if !ok {
				continue
			}
		}
		switch step.Op {
		case OpDamage:
			ctx.Damage(target, step.Amount)
		case OpHeal:
			ctx.Heal(target, step.Amount)
		case OpBuffAttack:
			amount := step.Amount
			ctx.MutateMinion(target, func(m *engine.Minion) { m.Attack += amount })
		case OpBuffHealth:
			amount := step.Amount
			ctx.MutateMinion(target, func(m *engine.Minion) { m.Health += amount; m.MaxHealth += amount })
		case OpSilence:
			ctx.MutateMinion(target, func(m *engine.Minion) {
				m.Silenced = true
				m.Taunt = false
				m.DivineShield = false
				m.Windfury = false
			})
		case OpGrantDivineShield:
			ctx.MutateMinion(target, func(m *engine.Minion) { m.DivineShield = true })
		case OpGrantTaunt:
			ctx.MutateMinion(target, func(m *engine.Minion) { m.Taunt = true })
		}
	}
}

func resolveFilteredTarget(ctx *engine.EffectContext, caster engine.Side, rule TargetFilter) (engine.TargetRef, bool) {
	var candidates []engine.TargetRef
	switch rule {
	case FilterAnyMinion:
		candidates = append(ctx.LivingFriendlyMinions(caster), ctx.LivingEnemyMinions(caster)...)
	case FilterEnemy:
		candidates = append(ctx.LivingEnemyMinions(caster), engine.HeroTarget(caster.Other()))
	case FilterEnemyMinion:
		candidates = ctx.LivingEnemyMinions(caster)
	case FilterEnemyHero:
		candidates = []engine.TargetRef{engine.HeroTarget(caster.Other())}
	case FilterFriendly:
		candidates = append(ctx.LivingFriendlyMinions(caster), engine.HeroTarget(caster))
	case FilterFriendlyMinion:
		candidates = ctx.LivingFriendlyMinions(caster)
	case FilterFriendlyHero:
		candidates = []engine.TargetRef{engine.HeroTarget(caster)}
	default: // FilterAny
		candidates = append(ctx.LivingFriendlyMinions(caster), ctx.LivingEnemyMinions(caster)...)
		candidates = append(candidates, engine.HeroTarget(caster), engine.HeroTarget(caster.Other()))
	}
	return ctx.RandomTarget(candidates)
}
