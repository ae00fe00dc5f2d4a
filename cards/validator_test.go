package cards

import "testing"

func TestValidateBasicCardSetIsClean(t *testing.T) {
	if errs := (Validator{}).Validate(BasicCardSet()); len(errs) != 0 {
		t.Fatalf("BasicCardSet should validate cleanly, got %v", errs)
	}
}

func TestValidateRejectsNegativeCost(t *testing.T) {
	specs := []CardSpec{{ID: 1, Kind: KindMinion, Cost: -1, Health: 1}}
	errs := (Validator{}).Validate(specs)
	if len(errs) == 0 {
		t.Fatal("expected a validation error for negative cost")
	}
}

func TestValidateRejectsMinionWithoutHealth(t *testing.T) {
	specs := []CardSpec{{ID: 1, Kind: KindMinion, Cost: 1, Health: 0}}
	errs := (Validator{}).Validate(specs)
	if len(errs) == 0 {
		t.Fatal("expected a validation error for a 0-health minion")
	}
}

func TestValidateRejectsUnknownChooseOneBranch(t *testing.T) {
	specs := []CardSpec{{ID: 1, Kind: KindSpell, Cost: 1, ChooseOneOf: []int32{999}}}
	errs := (Validator{}).Validate(specs)
	if len(errs) == 0 {
		t.Fatal("expected a validation error for a dangling choose-one branch")
	}
}

func TestValidateRejectsUntargetableWithTargetRule(t *testing.T) {
	specs := []CardSpec{{ID: 1, Kind: KindSpell, Cost: 1, Targetable: false, TargetRule: FilterEnemy}}
	errs := (Validator{}).Validate(specs)
	if len(errs) == 0 {
		t.Fatal("expected a validation error for a target rule on a non-targetable card")
	}
}

func TestValidateRejectsDeathrattleOnSpell(t *testing.T) {
	specs := []CardSpec{{
		ID: 1, Kind: KindSpell, Cost: 1,
		Deathrattle: []EffectStep{{Op: OpDamage, Amount: 1, TargetEffect: true}},
	}}
	errs := (Validator{}).Validate(specs)
	if len(errs) == 0 {
		t.Fatal("expected a validation error for a deathrattle on a non-minion")
	}
}

func TestValidateRejectsDiscoverOverCap(t *testing.T) {
	specs := []CardSpec{{
		ID: 1, Kind: KindMinion, Cost: 1, Health: 1,
		Deathrattle: []EffectStep{{Op: OpDiscover, DiscoverOptions: []int32{1, 1, 1, 1}}},
	}}
	errs := (Validator{}).Validate(specs)
	if len(errs) == 0 {
		t.Fatal("expected a validation error for a discover offering more than MaxDiscoverOptions")
	}
}

func TestValidateRejectsUnknownSummonCard(t *testing.T) {
	specs := []CardSpec{{
		ID: 1, Kind: KindMinion, Cost: 1, Health: 1,
		Deathrattle: []EffectStep{{Op: OpSummon, SummonCard: 999, SummonCount: 1}},
	}}
	errs := (Validator{}).Validate(specs)
	if len(errs) == 0 {
		t.Fatal("expected a validation error for a deathrattle summoning an unknown card id")
	}
}
