package game

import (
	"encoding/json"
	"testing"
)

func TestCombatantSerializationRoundTrip(t *testing.T) {
	c := Combatant{
		Name: "Hero", Kind: "player", IsPlayer: true,
		CurrentHitPoints: 37, MaxHitPoints: 50,
		CurrentSkill: 2, MaxSkill: 3,
		Attack: 15, Defense: 8, Speed: 10, Level: 4,
		Guarding: true, Poisoned: true, StunTurns: 1,
		BoostTurns: 2, BoostAttack: 5, ShieldTurns: 1, ShieldDefense: 3,
	}
	b, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Combatant
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != c {
		t.Fatalf("round trip changed the stat block:\n got %+v\nwant %+v", back, c)
	}
}

func TestApplyDamageAndHealClamp(t *testing.T) {
	c := Combatant{CurrentHitPoints: 5, MaxHitPoints: 20}
	c.ApplyDamage(9)
	if c.CurrentHitPoints != 0 {
		t.Fatalf("damage must clamp at 0, got %d", c.CurrentHitPoints)
	}
	c.ApplyHeal(100)
	if c.CurrentHitPoints != 20 {
		t.Fatalf("heal must clamp at max, got %d", c.CurrentHitPoints)
	}
}

func TestEffectiveStatsIncludeBonuses(t *testing.T) {
	c := Combatant{Attack: 10, Defense: 6, BoostTurns: 1, BoostAttack: 5, ShieldTurns: 1, ShieldDefense: 4}
	if c.EffectiveAttack() != 15 {
		t.Fatalf("expected attack 15, got %d", c.EffectiveAttack())
	}
	if c.EffectiveDefense() != 10 {
		t.Fatalf("expected defense 10, got %d", c.EffectiveDefense())
	}
	c.BoostTurns = 0
	c.ShieldTurns = 0
	if c.EffectiveAttack() != 10 || c.EffectiveDefense() != 6 {
		t.Fatalf("expired bonuses still applied")
	}
}

func TestPlayerAllowedKinds(t *testing.T) {
	for _, k := range []ActionKind{ActionAttack, ActionGuard, ActionSpecial, ActionItem, ActionFlee} {
		if !k.PlayerAllowed() {
			t.Fatalf("%s should be player-allowed", k)
		}
	}
	for _, k := range []ActionKind{ActionHeavy, ActionMulti, ActionDrain, ActionInflict, ActionCharge, ActionRepair, ActionNone} {
		if k.PlayerAllowed() {
			t.Fatalf("%s should not be player-allowed", k)
		}
	}
}
