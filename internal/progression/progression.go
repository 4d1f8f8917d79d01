// Package progression owns the persistent leveling model: the cumulative XP
// table, per-level stat growth, victory and defeat bookkeeping. It mutates
// PlayerProfile records only; battle sessions never see it.
package progression

import "github.com/ericogr/vex-battles/internal/game"

const MaxLevel = 10

// xpTable holds the cumulative XP required to reach each level (index 0 is
// level 1).
var xpTable = [MaxLevel]int{0, 30, 80, 160, 280, 450, 680, 1000, 1400, 2000}

// growth is the stat gain applied on reaching level index i (level i+1).
type growthRow struct {
	HP, SP, Attack, Defense, Speed int
}

var growth = [MaxLevel]growthRow{
	{},                 // level 1 baseline
	{8, 1, 2, 1, 1},    // -> 2
	{10, 0, 2, 2, 1},   // -> 3
	{12, 1, 3, 2, 1},   // -> 4
	{14, 0, 3, 2, 2},   // -> 5
	{16, 1, 3, 3, 2},   // -> 6
	{18, 0, 4, 3, 2},   // -> 7
	{20, 1, 4, 3, 2},   // -> 8
	{24, 1, 4, 4, 3},   // -> 9
	{28, 1, 5, 4, 3},   // -> 10
}

// XPForLevel returns the cumulative XP needed to reach the given level.
func XPForLevel(level int) int {
	if level < 1 {
		return 0
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return xpTable[level-1]
}

// LevelForXP returns the level a cumulative XP total corresponds to.
func LevelForXP(xp int) int {
	level := 1
	for i := 1; i < MaxLevel; i++ {
		if xp >= xpTable[i] {
			level = i + 1
		}
	}
	return level
}

// AddXP awards XP to a profile, saturating at the table maximum, and applies
// every level-up earned: growth per level and a full heal on each level
// gained. Returns the number of levels gained.
func AddXP(p *game.PlayerProfile, xp int) int {
	if xp < 0 {
		xp = 0
	}
	p.XP += xp
	if p.XP > xpTable[MaxLevel-1] {
		p.XP = xpTable[MaxLevel-1]
	}
	target := LevelForXP(p.XP)
	gained := 0
	for p.Level < target {
		p.Level++
		g := growth[p.Level-1]
		p.MaxHitPoints += g.HP
		p.MaxSkill += g.SP
		p.Attack += g.Attack
		p.Defense += g.Defense
		p.Speed += g.Speed
		p.CurrentHitPoints = p.MaxHitPoints
		p.CurrentSkill = p.MaxSkill
		gained++
	}
	return gained
}

// ApplyVictory records a win: XP and credits awarded, streaks updated.
func ApplyVictory(p *game.PlayerProfile, xp, credits int) int {
	p.Wins++
	p.WinStreak++
	p.DefeatStreak = 0
	p.Credits += credits
	return AddXP(p, xp)
}

// ApplyDefeat records a loss: about a quarter of current HP is lost (at
// least 1, never dropping to zero) so the player limps away rather than
// respawning at full strength, and the defeat streak grows.
func ApplyDefeat(p *game.PlayerProfile) {
	p.Defeats++
	p.DefeatStreak++
	p.WinStreak = 0
	penalty := p.CurrentHitPoints / 4
	if penalty < 1 {
		penalty = 1
	}
	p.CurrentHitPoints -= penalty
	if p.CurrentHitPoints < 1 {
		p.CurrentHitPoints = 1
	}
}

// AssistAttackPenalty returns the enemy attack reduction applied when the
// player is on a losing streak: two or more defeats in a row shave 1/8 off
// the enemy's attack at battle start.
func AssistAttackPenalty(p *game.PlayerProfile, enemyAttack int) int {
	if p.DefeatStreak >= 2 {
		return enemyAttack / 8
	}
	return 0
}

// NewProfile returns the level-1 starting profile for a fresh player.
func NewProfile(email, name string) *game.PlayerProfile {
	return &game.PlayerProfile{
		Email:            email,
		PlayerName:       name,
		Level:            1,
		MaxHitPoints:     50,
		CurrentHitPoints: 50,
		MaxSkill:         3,
		CurrentSkill:     3,
		Attack:           12,
		Defense:          8,
		Speed:            8,
	}
}
