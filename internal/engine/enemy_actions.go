package engine

import (
	"strconv"

	"github.com/ericogr/vex-battles/internal/game"
)

// resolveEnemyAction applies the kind the policy picked. Boss-exclusive
// kinds are only ever drawn by the boss policy.
func (s *Session) resolveEnemyAction(kind game.ActionKind) {
	s.enemy.Guarding = false
	s.enemyActed = true
	s.state = StateEnemyResolving
	s.delay = actionDelayTicks

	if kind == game.ActionSpecial && s.enemy.CurrentSkill <= 0 {
		kind = game.ActionAttack
	}

	switch kind {
	case game.ActionAttack:
		dmg := ComputeDamage(&s.enemy, &s.player, game.ActionAttack, s.player.Guarding, s.rng, s.levelScaling)
		s.player.ApplyDamage(dmg)
		s.message = MsgEnemyAttack
		s.addLog(s.enemy.Name + " attacks for " + strconv.Itoa(dmg) + " damage")
	case game.ActionSpecial:
		s.enemy.CurrentSkill--
		dmg := ComputeDamage(&s.enemy, &s.player, game.ActionSpecial, s.player.Guarding, s.rng, s.levelScaling)
		s.player.ApplyDamage(dmg)
		s.message = MsgEnemySpecial
		s.addLog(s.enemy.Name + " uses a fierce technique for " + strconv.Itoa(dmg) + " damage")
	case game.ActionGuard:
		s.enemy.Guarding = true
		s.message = MsgEnemyGuard
		s.addLog(s.enemy.Name + " takes a defensive stance")
	case game.ActionHeavy:
		s.execHeavy()
	case game.ActionMulti:
		s.execMultiHit()
	case game.ActionDrain:
		s.execDrain()
	case game.ActionInflict:
		s.execInflict()
	case game.ActionCharge:
		s.execCharge()
	case game.ActionRepair:
		s.execRepair()
	}
}

// execHeavy releases a stored charge when one is pending, otherwise lands a
// double-strength blow. A release is a single incoming hit, so the player's
// guard still halves it.
func (s *Session) execHeavy() {
	if s.boss != nil && s.boss.Charging {
		dmg := s.boss.StoredCharge
		if s.player.Guarding {
			dmg /= 2
		}
		if dmg < 1 {
			dmg = 1
		}
		s.boss.Charging = false
		s.boss.StoredCharge = 0
		s.player.ApplyDamage(dmg)
		s.message = MsgBossRelease
		s.addLog(s.enemy.Name + " releases the stored energy for " + strconv.Itoa(dmg) + " damage!")
		return
	}
	dmg := baseDamage(&s.enemy, &s.player, s.player.Guarding)*2 + s.rng.NextBounded(4) - 1
	if dmg < 1 {
		dmg = 1
	}
	s.player.ApplyDamage(dmg)
	s.message = MsgBossHeavy
	s.addLog(s.enemy.Name + " lands a crushing blow for " + strconv.Itoa(dmg) + " damage")
}

// execMultiHit strikes 2-3 times at 75% strength each, every hit rolling its
// own variance and guard reduction, reported as one combined total.
func (s *Session) execMultiHit() {
	hits := 2 + s.rng.NextBounded(2)
	total := 0
	for i := 0; i < hits; i++ {
		dmg := baseDamage(&s.enemy, &s.player, s.player.Guarding)*3/4 + s.rng.NextBounded(4) - 1
		if dmg < 1 {
			dmg = 1
		}
		total += dmg
	}
	s.player.ApplyDamage(total)
	s.message = MsgBossMulti
	s.addLog(s.enemy.Name + " strikes " + strconv.Itoa(hits) + " times for " + strconv.Itoa(total) + " total damage")
}

// execDrain deals half of one base evaluation and heals the boss by the same
// half.
func (s *Session) execDrain() {
	dmg := ComputeDamage(&s.enemy, &s.player, game.ActionAttack, s.player.Guarding, s.rng, s.levelScaling) / 2
	if dmg < 1 {
		dmg = 1
	}
	s.player.ApplyDamage(dmg)
	s.enemy.ApplyHeal(dmg)
	s.message = MsgBossDrain
	s.addLog(s.enemy.Name + " drains " + strconv.Itoa(dmg) + " HP")
}

// execInflict deals half damage and poisons the player.
func (s *Session) execInflict() {
	dmg := ComputeDamage(&s.enemy, &s.player, game.ActionAttack, s.player.Guarding, s.rng, s.levelScaling) / 2
	if dmg < 1 {
		dmg = 1
	}
	s.player.ApplyDamage(dmg)
	s.player.Poisoned = true
	s.message = MsgBossInflict
	s.addLog(s.enemy.Name + " spits venom for " + strconv.Itoa(dmg) + " damage. " + s.player.Name + " is poisoned!")
}

// execCharge stores three times the current base damage and deals nothing
// this turn. The next boss action is forced to release it.
func (s *Session) execCharge() {
	s.boss.StoredCharge = baseDamage(&s.enemy, &s.player, false) * 3
	s.boss.Charging = true
	s.message = MsgBossCharge
	s.addLog(s.enemy.Name + " is gathering energy...")
}

// execRepair heals 20% of max HP and restarts the cooldown.
func (s *Session) execRepair() {
	heal := s.enemy.MaxHitPoints / 5
	s.enemy.ApplyHeal(heal)
	s.boss.TurnsSinceRepair = 0
	s.message = MsgBossRepair
	s.addLog(s.enemy.Name + " repairs itself for " + strconv.Itoa(heal) + " HP")
}
