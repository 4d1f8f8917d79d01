package engine

import "github.com/ericogr/vex-battles/internal/game"

// scriptRNG replays a fixed sequence so resolutions are deterministic in
// tests. Values are taken modulo the requested bound.
type scriptRNG struct {
	seq []int
	i   int
}

func (s *scriptRNG) NextBounded(n int) int {
	if n <= 0 {
		return 0
	}
	if len(s.seq) == 0 {
		return 0
	}
	v := s.seq[s.i%len(s.seq)]
	s.i++
	return v % n
}

func testPlayer() game.Combatant {
	return game.Combatant{
		Name: "Hero", Kind: "player", IsPlayer: true,
		CurrentHitPoints: 50, MaxHitPoints: 50,
		CurrentSkill: 3, MaxSkill: 3,
		Attack: 15, Defense: 8, Speed: 10, Level: 3,
	}
}

func testTemplate() *game.EnemyTemplate {
	return &game.EnemyTemplate{
		Name:      "Scrap Drone",
		Archetype: game.ArchetypeBalanced,
		Stats:     game.Stats{HitPoints: 40, Skill: 2, Attack: 12, Defense: 8, Speed: 6, Level: 3},
		XP:        25,
	}
}

func testBossDef() *game.BossDefinition {
	attackOnly := game.BossPhase{Pool: []game.PoolEntry{{Kind: game.ActionAttack, Weight: 1}}}
	return &game.BossDefinition{
		Name:  "Warden Prime",
		Stats: game.Stats{HitPoints: 200, Skill: 5, Attack: 16, Defense: 10, Speed: 8, Level: 5},
		XP:    300,
		Drop:  game.ItemLargePotion,
		Phases: []game.BossPhase{
			attackOnly,
			{Pool: []game.PoolEntry{{Kind: game.ActionMulti, Weight: 1}}},
			{Pool: []game.PoolEntry{{Kind: game.ActionCharge, Weight: 1}}},
			{Pool: []game.PoolEntry{{Kind: game.ActionRepair, Weight: 1}}},
		},
	}
}

// startedSession returns a regular battle already advanced past the intro.
func startedSession(seq []int) *Session {
	s, err := NewSession(testPlayer(), testTemplate(), &scriptRNG{seq: seq})
	if err != nil {
		panic(err)
	}
	s.Advance(introDelayTicks)
	return s
}
