package engine

import "github.com/ericogr/vex-battles/internal/game"

// baseDamage evaluates the core formula atk^2 / (atk + effective defense).
// Guarding doubles the defender's effective defense for the incoming hit.
func baseDamage(attacker, defender *game.Combatant, defenderGuarding bool) int {
	atk := attacker.EffectiveAttack()
	def := defender.EffectiveDefense()
	if defenderGuarding {
		def *= 2
	}
	return atk * atk / (atk + def)
}

// ComputeDamage turns stats plus an action kind into a final amount. The
// bounded variance offset in [-1, +2] applies to the base formula first,
// the special multiplier covers the varied result, then the optional
// level-scaling layer. The result is never below 1.
func ComputeDamage(attacker, defender *game.Combatant, kind game.ActionKind, defenderGuarding bool, rng RNG, levelScaling bool) int {
	dmg := baseDamage(attacker, defender, defenderGuarding)
	dmg += rng.NextBounded(4) - 1
	if kind == game.ActionSpecial {
		dmg = dmg * 3 / 2
	}
	if levelScaling {
		dmg = scaleByLevel(dmg, attacker.Level, defender.Level)
	}
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

// scaleByLevel nudges damage by the level gap: an attacker d levels ahead
// deals (10+d)/10, an attacker d levels behind deals (20-d)/20.
func scaleByLevel(dmg, attackerLevel, defenderLevel int) int {
	d := attackerLevel - defenderLevel
	switch {
	case d > 0:
		return dmg * (10 + d) / 10
	case d < 0:
		return dmg * (20 + d) / 20
	}
	return dmg
}
