package engine

import (
	"testing"

	"github.com/ericogr/vex-battles/internal/game"
)

func TestBasicPolicySpecialRequiresSkill(t *testing.T) {
	p := NewBasicEnemyPolicy(game.ArchetypeBalanced)
	self := game.Combatant{CurrentHitPoints: 40, MaxHitPoints: 40, CurrentSkill: 0}
	opp := game.Combatant{}
	// roll 15 lands in the special bucket (10 attack + 3 guard + 3 special)
	got := p.ChooseAction(&self, &opp, &scriptRNG{seq: []int{15}})
	if got != game.ActionAttack {
		t.Fatalf("empty skill pool should fall back to attack, got %s", got)
	}
	self.CurrentSkill = 2
	got = p.ChooseAction(&self, &opp, &scriptRNG{seq: []int{15}})
	if got != game.ActionSpecial {
		t.Fatalf("expected special, got %s", got)
	}
}

func TestBasicPolicyLowHPShiftsWeights(t *testing.T) {
	p := NewBasicEnemyPolicy(game.ArchetypeBalanced)
	opp := game.Combatant{}
	// roll 8: healthy row (10/3/3) -> attack; hurt row (6/5/5) -> guard
	healthy := game.Combatant{CurrentHitPoints: 40, MaxHitPoints: 40, CurrentSkill: 2}
	if got := p.ChooseAction(&healthy, &opp, &scriptRNG{seq: []int{8}}); got != game.ActionAttack {
		t.Fatalf("healthy roll 8: expected attack, got %s", got)
	}
	hurt := game.Combatant{CurrentHitPoints: 10, MaxHitPoints: 40, CurrentSkill: 2}
	if got := p.ChooseAction(&hurt, &opp, &scriptRNG{seq: []int{8}}); got != game.ActionGuard {
		t.Fatalf("hurt roll 8: expected guard, got %s", got)
	}
}

func TestUnknownArchetypeFallsBackToBalanced(t *testing.T) {
	p := NewBasicEnemyPolicy(game.Archetype("weird"))
	if p.Archetype != game.ArchetypeBalanced {
		t.Fatalf("expected balanced fallback, got %s", p.Archetype)
	}
}

func TestBossPolicyForcedRelease(t *testing.T) {
	st := NewBossState()
	p := NewBossPolicy(testBossDef().Phases, st)
	self := game.Combatant{CurrentHitPoints: 200, MaxHitPoints: 200, CurrentSkill: 5}
	opp := game.Combatant{}
	st.Charging = true
	if got := p.ChooseAction(&self, &opp, &scriptRNG{seq: []int{0}}); got != game.ActionHeavy {
		t.Fatalf("pending charge must force a heavy release, got %s", got)
	}
}

func TestBossPolicyRepairCooldownSubstitutesAttack(t *testing.T) {
	st := NewBossState()
	st.Phase = 4 // repair-only pool
	p := NewBossPolicy(testBossDef().Phases, st)
	self := game.Combatant{CurrentHitPoints: 40, MaxHitPoints: 200}
	opp := game.Combatant{}
	if got := p.ChooseAction(&self, &opp, &scriptRNG{seq: []int{0}}); got != game.ActionRepair {
		t.Fatalf("repair should be available off cooldown, got %s", got)
	}
	st.TurnsSinceRepair = 1
	if got := p.ChooseAction(&self, &opp, &scriptRNG{seq: []int{0}}); got != game.ActionAttack {
		t.Fatalf("repair on cooldown should substitute attack, got %s", got)
	}
}

func TestPhaseLadderMonotonic(t *testing.T) {
	st := NewBossState()
	if !st.AdvancePhase(148, 200) { // 74% -> phase 2
		t.Fatalf("expected phase crossing at 74%%")
	}
	if st.Phase != 2 {
		t.Fatalf("expected phase 2, got %d", st.Phase)
	}
	if st.AdvancePhase(146, 200) {
		t.Fatalf("second hit within phase 2 must not re-cross")
	}
	if st.AdvancePhase(180, 200) {
		t.Fatalf("healing above the threshold must not change phase")
	}
	if st.Phase != 2 {
		t.Fatalf("phase dropped after heal: %d", st.Phase)
	}
	if !st.AdvancePhase(50, 200) || st.Phase != 4 {
		t.Fatalf("expected jump to phase 4, got %d", st.Phase)
	}
}

func TestPhaseThresholds(t *testing.T) {
	cases := []struct {
		hp, max, want int
	}{
		{200, 200, 1}, {151, 200, 1}, {150, 200, 2}, {101, 200, 2},
		{100, 200, 3}, {51, 200, 3}, {50, 200, 4}, {1, 200, 4},
	}
	for _, c := range cases {
		if got := phaseFor(c.hp, c.max); got != c.want {
			t.Fatalf("phaseFor(%d,%d) = %d, want %d", c.hp, c.max, got, c.want)
		}
	}
}
