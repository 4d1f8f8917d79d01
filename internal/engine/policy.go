package engine

import "github.com/ericogr/vex-battles/internal/game"

// Policy selects the enemy side's next action. The session picks a concrete
// policy once at battle start; the boss variant layers phase handling on top
// of the same interface.
type Policy interface {
	ChooseAction(self, opponent *game.Combatant, rng RNG) game.ActionKind
}

// archetypeWeights maps an archetype to its {attack, guard, special} weight
// rows. Draws use a 16-bucket roll; the second row applies below 30% HP,
// shifting weight away from plain attacks.
var archetypeWeights = map[game.Archetype][2][3]int{
	game.ArchetypeAggressive: {{12, 1, 3}, {9, 3, 4}},
	game.ArchetypeBalanced:   {{10, 3, 3}, {6, 5, 5}},
	game.ArchetypeDefensive:  {{8, 6, 2}, {4, 8, 4}},
	game.ArchetypeTactical:   {{8, 2, 6}, {5, 3, 8}},
}

// BasicEnemyPolicy draws among attack/guard/special with archetype-specific
// weights. Special is only eligible while the skill pool is non-empty; an
// ineligible draw falls back to a plain attack.
type BasicEnemyPolicy struct {
	Archetype game.Archetype
}

func NewBasicEnemyPolicy(a game.Archetype) *BasicEnemyPolicy {
	if _, ok := archetypeWeights[a]; !ok {
		a = game.ArchetypeBalanced
	}
	return &BasicEnemyPolicy{Archetype: a}
}

func (p *BasicEnemyPolicy) ChooseAction(self, opponent *game.Combatant, rng RNG) game.ActionKind {
	rows := archetypeWeights[p.Archetype]
	row := rows[0]
	if self.MaxHitPoints > 0 && self.CurrentHitPoints*100 < self.MaxHitPoints*30 {
		row = rows[1]
	}
	r := rng.NextBounded(row[0] + row[1] + row[2])
	switch {
	case r < row[0]:
		return game.ActionAttack
	case r < row[0]+row[1]:
		return game.ActionGuard
	default:
		if self.CurrentSkill <= 0 {
			return game.ActionAttack
		}
		return game.ActionSpecial
	}
}
