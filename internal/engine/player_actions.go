package engine

import (
	"strconv"

	"github.com/ericogr/vex-battles/internal/game"
)

// resolvePlayerAction applies an accepted player intent. The acting side's
// stale guard from the previous round is cleared before the action takes
// effect.
func (s *Session) resolvePlayerAction(intent game.Intent) {
	s.player.Guarding = false
	s.playerActed = true
	s.state = StatePlayerResolving
	s.delay = actionDelayTicks

	kind := intent.Kind
	// An empty skill pool silently downgrades a special to a plain attack
	// at no cost.
	if kind == game.ActionSpecial && s.player.CurrentSkill <= 0 {
		kind = game.ActionAttack
	}

	switch kind {
	case game.ActionAttack:
		dmg := ComputeDamage(&s.player, &s.enemy, game.ActionAttack, s.enemy.Guarding, s.rng, s.levelScaling)
		s.enemy.ApplyDamage(dmg)
		s.message = MsgPlayerAttack
		s.addLog(s.player.Name + " attacks for " + strconv.Itoa(dmg) + " damage")
	case game.ActionSpecial:
		s.player.CurrentSkill--
		dmg := ComputeDamage(&s.player, &s.enemy, game.ActionSpecial, s.enemy.Guarding, s.rng, s.levelScaling)
		s.enemy.ApplyDamage(dmg)
		s.message = MsgPlayerSpecial
		s.addLog(s.player.Name + " unleashes a special strike for " + strconv.Itoa(dmg) + " damage")
	case game.ActionGuard:
		s.player.Guarding = true
		s.message = MsgPlayerGuard
		s.addLog(s.player.Name + " braces for the next hit")
	case game.ActionItem:
		s.applyItem(&s.player, *intent.Item)
		s.message = MsgPlayerItem
	case game.ActionFlee:
		if s.attemptFlee() {
			s.finish(game.OutcomeFled)
			return
		}
		s.message = MsgFleeFailed
		s.addLog(s.player.Name + " tries to run but cannot escape")
	}

	s.checkBossPhase()
}

// attemptFlee rolls an escape chance from the speed gap. Every failed
// attempt in the same battle lowers the next chance.
func (s *Session) attemptFlee() bool {
	chance := 40 + 5*(s.player.Speed-s.enemy.Speed) - 10*s.fleeAttempts
	if chance < 5 {
		chance = 5
	}
	if chance > 90 {
		chance = 90
	}
	s.fleeAttempts++
	return s.rng.NextBounded(100) < chance
}

// applyItem performs the battle-side effect of a consumable. Slot
// bookkeeping happened before the intent reached the session.
func (s *Session) applyItem(c *game.Combatant, eff game.ItemEffect) {
	if eff.FullRestore {
		c.CurrentHitPoints = c.MaxHitPoints
		c.CurrentSkill = c.MaxSkill
		s.addLog(c.Name + " is fully restored")
		return
	}
	if eff.CureAll {
		c.CureAll()
		s.addLog(c.Name + " is cured of all ailments")
		return
	}
	if eff.HealHitPoints > 0 {
		c.ApplyHeal(eff.HealHitPoints)
		s.addLog(c.Name + " recovers " + strconv.Itoa(eff.HealHitPoints) + " HP")
	}
	if eff.RestoreSkill > 0 {
		c.RestoreSkill(eff.RestoreSkill)
		s.addLog(c.Name + " recovers " + strconv.Itoa(eff.RestoreSkill) + " SP")
	}
	if eff.AttackBonus > 0 {
		c.BoostAttack = eff.AttackBonus
		c.BoostTurns = eff.BonusRounds
		s.addLog(c.Name + " feels stronger (+" + strconv.Itoa(eff.AttackBonus) + " attack)")
	}
	if eff.DefenseBonus > 0 {
		c.ShieldDefense = eff.DefenseBonus
		c.ShieldTurns = eff.BonusRounds
		s.addLog(c.Name + " is shielded (+" + strconv.Itoa(eff.DefenseBonus) + " defense)")
	}
}

// checkBossPhase raises the boss tier after the boss's HP changed and emits
// the powers-up notification exactly once per crossing.
func (s *Session) checkBossPhase() {
	if s.boss == nil {
		return
	}
	if s.boss.AdvancePhase(s.enemy.CurrentHitPoints, s.enemyMaxAtStart) {
		s.message = MsgBossPowersUp
		s.addLog(s.enemy.Name + " powers up!")
	}
}
