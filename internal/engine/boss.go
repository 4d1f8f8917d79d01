package engine

import "github.com/ericogr/vex-battles/internal/game"

// repairCooldownTurns is the number of the boss's own turns that must pass
// between self-repairs.
const repairCooldownTurns = 3

// BossState tracks the boss-side battle extension: the monotonic phase
// ladder, the charge/release mechanic and the repair cooldown. DeathTicks is
// presentation only and has no bearing on resolution.
type BossState struct {
	Phase            int  `json:"phase"`
	Charging         bool `json:"charging"`
	StoredCharge     int  `json:"stored_charge"`
	TurnsSinceRepair int  `json:"turns_since_repair"`
	DeathTicks       int  `json:"death_ticks"`
}

// NewBossState starts at phase 1 with the repair immediately available.
func NewBossState() *BossState {
	return &BossState{Phase: 1, TurnsSinceRepair: repairCooldownTurns}
}

// phaseFor maps a remaining-HP fraction of the starting max HP to a tier.
func phaseFor(currentHP, maxHPAtStart int) int {
	switch {
	case currentHP*4 <= maxHPAtStart:
		return 4
	case currentHP*2 <= maxHPAtStart:
		return 3
	case currentHP*4 <= maxHPAtStart*3:
		return 2
	}
	return 1
}

// AdvancePhase raises the phase to match current HP, never lowering it, and
// reports whether a new tier was entered. Healing back above a threshold
// does not revert the tier.
func (b *BossState) AdvancePhase(currentHP, maxHPAtStart int) bool {
	p := phaseFor(currentHP, maxHPAtStart)
	if p > b.Phase {
		b.Phase = p
		return true
	}
	return false
}

// RepairReady reports whether the self-repair cooldown has elapsed.
func (b *BossState) RepairReady() bool { return b.TurnsSinceRepair >= repairCooldownTurns }

// BossPolicy draws from the active phase's weighted action pool. A pending
// charge release overrides the pool entirely; a repair drawn while on
// cooldown substitutes a plain attack.
type BossPolicy struct {
	Phases []game.BossPhase
	State  *BossState
}

func NewBossPolicy(phases []game.BossPhase, st *BossState) *BossPolicy {
	return &BossPolicy{Phases: phases, State: st}
}

func (p *BossPolicy) ChooseAction(self, opponent *game.Combatant, rng RNG) game.ActionKind {
	if p.State.Charging {
		return game.ActionHeavy
	}
	idx := p.State.Phase - 1
	if idx < 0 || idx >= len(p.Phases) {
		return game.ActionAttack
	}
	kind := drawFromPool(p.Phases[idx].Pool, rng)
	switch kind {
	case game.ActionRepair:
		if !p.State.RepairReady() {
			return game.ActionAttack
		}
	case game.ActionSpecial:
		if self.CurrentSkill <= 0 {
			return game.ActionAttack
		}
	}
	return kind
}

func drawFromPool(pool []game.PoolEntry, rng RNG) game.ActionKind {
	total := 0
	for _, e := range pool {
		total += e.Weight
	}
	if total <= 0 {
		return game.ActionAttack
	}
	r := rng.NextBounded(total)
	for _, e := range pool {
		r -= e.Weight
		if r < 0 {
			return e.Kind
		}
	}
	return game.ActionAttack
}
