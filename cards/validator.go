package cards

import "fmt"

// MaxDiscoverOptions caps how many choices a single OpDiscover step may
// offer, matching engine.Sim's fixed DiscoverCount.
const MaxDiscoverOptions = 3

// ValidationError reports one structural defect in a CardSpec.
type ValidationError struct {
	Card    int32
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("card %d: %s: %s", e.Card, e.Field, e.Message)
}

// Validator checks CardSpec consistency before it ever reaches the
// compiler; a malformed spec should fail loudly at load time, not
// produce a CardDef that panics mid-simulation.
type Validator struct{}

// Validate returns every defect found across specs (empty = all valid).
// Cross-card checks (ChooseOneOf / SummonCard references) need the whole
// set, so Validate always takes the full catalog rather than one card at
// a time.
func (Validator) Validate(specs []CardSpec) []ValidationError {
	known := make(map[int32]bool, len(specs))
	for _, s := range specs {
		known[s.ID] = true
	}

	var errs []ValidationError
	for _, s := range specs {
		errs = append(errs, validateOne(s, known)...)
	}
	return errs
}

func validateOne(s CardSpec, known map[int32]bool) []ValidationError {
	var errs []ValidationError
	fail := func(field, msg string) {
		errs = append(errs, ValidationError{Card: s.ID, Field: field, Message: msg})
	}

	if s.Cost < 0 {
		fail("cost", "must be non-negative")
	}
	switch s.Kind {
	case KindMinion:
		if s.Health <= 0 {
			fail("health", "minions must have positive health")
		}
	case KindWeapon:
		if s.Health <= 0 {
			fail("health", "weapon durability must be positive")
		}
		if s.Attack <= 0 {
			fail("attack", "weapons must deal positive damage")
		}
	case KindSpell:
		if s.Attack != 0 || s.Health != 0 {
			fail("attack/health", "spells carry no board stats")
		}
	default:
		fail("kind", "unrecognized card kind")
	}

	// A non-targetable card may still carry a target filter to narrow the
	// pool its untargeted effect steps draw random targets from, but only
	// if such a step exists to consume it.
	if !s.Targetable && s.TargetRule != FilterAny && !hasUntargetedTargetingStep(s) {
		fail("target_rule", "a target filter on a non-targetable card needs an untargeted effect step to resolve")
	}

	for _, branch := range s.ChooseOneOf {
		if !known[branch] {
			fail("choose_one_of", fmt.Sprintf("branch %d is not a known card id", branch))
		}
	}

	errs = append(errs, validateEffects(s, "on_play", s.OnPlayEffects, known)...)
	errs = append(errs, validateEffects(s, "deathrattle", s.Deathrattle, known)...)
	if len(s.Deathrattle) > 0 && s.Kind != KindMinion {
		errs = append(errs, ValidationError{Card: s.ID, Field: "deathrattle", Message: "only minions may have a deathrattle"})
	}

	for i, sub := range s.Subscriptions {
		errs = append(errs, validateEffects(s, fmt.Sprintf("subscriptions[%d]", i), sub.Effects, known)...)
	}

	return errs
}

// hasUntargetedTargetingStep reports whether any OnPlay or Deathrattle
// step resolves its own target through the card's filter rather than the
// player-chosen one. Subscriptions are excluded: their handlers always
// act on the subscribing minion itself.
func hasUntargetedTargetingStep(s CardSpec) bool {
	usesFilter := func(steps []EffectStep) bool {
		for _, step := range steps {
			if step.TargetEffect {
				continue
			}
			switch step.Op {
			case OpDamage, OpHeal, OpBuffAttack, OpBuffHealth, OpSilence, OpGrantDivineShield, OpGrantTaunt:
				return true
			}
		}
		return false
	}
	return usesFilter(s.OnPlayEffects) || usesFilter(s.Deathrattle)
}

func validateEffects(s CardSpec, field string, steps []EffectStep, known map[int32]bool) []ValidationError {
	var errs []ValidationError
	for i, step := range steps {
		switch step.Op {
		case OpDamage, OpHeal, OpBuffAttack, OpBuffHealth, OpDrawCards:
			if step.Amount <= 0 {
				errs = append(errs, ValidationError{
					Card: s.ID, Field: fmt.Sprintf("%s[%d].amount", field, i),
					Message: "must be positive",
				})
			}
		case OpSummon:
			if !known[step.SummonCard] {
				errs = append(errs, ValidationError{
					Card: s.ID, Field: fmt.Sprintf("%s[%d].summon_card", field, i),
					Message: "not a known card id",
				})
			}
			if step.SummonCount <= 0 {
				errs = append(errs, ValidationError{
					Card: s.ID, Field: fmt.Sprintf("%s[%d].summon_count", field, i),
					Message: "must be positive",
				})
			}
		case OpDiscover:
			if len(step.DiscoverOptions) == 0 {
				errs = append(errs, ValidationError{
					Card: s.ID, Field: fmt.Sprintf("%s[%d].discover_options", field, i),
					Message: "must offer at least one option",
				})
			}
			if len(step.DiscoverOptions) > MaxDiscoverOptions {
				errs = append(errs, ValidationError{
					Card: s.ID, Field: fmt.Sprintf("%s[%d].discover_options", field, i),
					Message: fmt.Sprintf("offers more than the %d options the search engine ever samples from", MaxDiscoverOptions),
				})
			}
			for _, opt := range step.DiscoverOptions {
				if !known[opt] {
					errs = append(errs, ValidationError{
						Card: s.ID, Field: fmt.Sprintf("%s[%d].discover_options", field, i),
						Message: fmt.Sprintf("option %d is not a known card id", opt),
					})
				}
			}
		case OpSilence, OpGrantDivineShield, OpGrantTaunt, OpEquipWeapon:
			// no numeric payload to validate
		default:
			errs = append(errs, ValidationError{
				Card: s.ID, Field: fmt.Sprintf("%s[%d].op", field, i),
				Message: "unrecognized opcode",
			})
		}
	}
	return errs
}
