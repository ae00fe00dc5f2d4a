// Package cards provides a declarative, data-driven card schema that
// compiles into engine.CardDef values, replacing compile-time card
// polymorphism with a small effect-opcode interpreter (engine/catalog.go's
// CardDef, function-value dispatch).
package cards

// Kind distinguishes the three playable card shapes, mirroring
// engine.CardKind but kept independent so the schema package never
// imports engine for its own data shape.
type Kind uint8

const (
	KindMinion Kind = iota
	KindSpell
	KindWeapon
)

// TargetFilter narrows which board entities a targetable effect may
// select, evaluated from the caster's perspective.
type TargetFilter uint8

const (
	FilterAny TargetFilter = iota
	FilterAnyMinion
	FilterEnemy
	FilterEnemyMinion
	FilterEnemyHero
	FilterFriendly
	FilterFriendlyMinion
	FilterFriendlyHero
)

// Trigger enumerates the game events an EventSpec can subscribe to,
// mirroring engine.EventKind.
type Trigger uint8

const (
	TriggerMinionSummoned Trigger = iota
	TriggerMinionDamaged
	TriggerMinionDied
	TriggerCardPlayed
	TriggerTurnStart
	TriggerTurnEnd
	TriggerHeroDamaged
)

// Lifetime bounds when a subscription's handler fires, beyond matching
// the Trigger itself.
type Lifetime uint8

const (
	LifetimeAlways Lifetime = iota
	LifetimeWhileFriendly // fires only for the subscribing minion's own side
	LifetimeWhileEnemy
)

// OpCode is an effect instruction, interpreted in sequence by the
// compiler (cards/compiler.go); the data-driven analogue of a card's
// battlecry/deathrattle/triggered-effect body.
type OpCode uint8

const (
	OpDamage OpCode = iota
	OpHeal
	OpDrawCards
	OpSummon
	OpBuffAttack
	OpBuffHealth
	OpSilence
	OpDiscover
	OpGrantDivineShield
	OpGrantTaunt
	OpEquipWeapon
)

// EffectStep is one interpreted instruction. Which fields apply depends
// on Op: Amount for OpDamage/OpHeal/OpBuffAttack/OpBuffHealth, SummonCard
// for OpSummon, DiscoverOptions for OpDiscover. TargetEffect selects
// whether a damage/heal/buff/silence/grant step applies to the card's
// chosen target, or to a random target drawn from the card's TargetRule.
// Draw, summon and discover steps always act for the caster.
type EffectStep struct {
	Op              OpCode  `yaml:"op"`
	Amount          int32   `yaml:"amount,omitempty"`
	SummonCard      int32   `yaml:"summon_card,omitempty"`
	SummonCount     int     `yaml:"summon_count,omitempty"`
	DiscoverOptions []int32 `yaml:"discover_options,omitempty"`
	TargetEffect    bool    `yaml:"target_effect,omitempty"`
}

// EventSpec is a data-driven (Trigger, Lifetime, effect-body) tuple,
// replacing template-dispatched event registration
// (engine.EventSubscription).
type EventSpec struct {
	Trigger  Trigger      `yaml:"trigger"`
	Lifetime Lifetime     `yaml:"lifetime,omitempty"`
	Effects  []EffectStep `yaml:"effects,omitempty"`
}

// CardSpec is the full declarative description of one card: everything
// needed to compile an engine.CardDef without writing any Go code
// specific to that card.
type CardSpec struct {
	ID     int32  `yaml:"id"`
	Name   string `yaml:"name"`
	Kind   Kind   `yaml:"kind"`
	Cost   int32  `yaml:"cost"`
	Attack int32  `yaml:"attack,omitempty"`
	Health int32  `yaml:"health,omitempty"` // weapon durability, when Kind == KindWeapon

	// Static minion flags applied at summon time.
	Taunt        bool `yaml:"taunt,omitempty"`
	DivineShield bool `yaml:"divine_shield,omitempty"`
	Windfury     bool `yaml:"windfury,omitempty"`

	Targetable  bool         `yaml:"targetable,omitempty"`
	TargetRule  TargetFilter `yaml:"target_rule,omitempty"`
	ChooseOneOf []int32      `yaml:"choose_one_of,omitempty"` // card IDs; non-empty makes this a choose-one card

	OnPlayEffects []EffectStep `yaml:"on_play,omitempty"`
	Deathrattle   []EffectStep `yaml:"deathrattle,omitempty"`
	Subscriptions []EventSpec  `yaml:"subscriptions,omitempty"`
}
