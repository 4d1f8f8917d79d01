package game

// Side identifies one of the two battle participants.
type Side string

const (
	SidePlayer Side = "player"
	SideEnemy  Side = "enemy"
)

// Combatant is the live stat/flag record for one side of a battle. It is
// created at battle start, owned exclusively by the battle session while the
// battle is active and handed back to the caller at exit. All fields are
// JSON-tagged so snapshots round-trip losslessly through the API.
type Combatant struct {
	Name             string `json:"name"`
	Kind             string `json:"kind"`
	CurrentHitPoints int    `json:"current_hp"`
	MaxHitPoints     int    `json:"max_hp"`
	CurrentSkill     int    `json:"current_sp"`
	MaxSkill         int    `json:"max_sp"`
	Attack           int    `json:"attack"`
	Defense          int    `json:"defense"`
	Speed            int    `json:"speed"`
	Level            int    `json:"level"`
	IsPlayer         bool   `json:"is_player"`

	// Transient battle flags. Guarding lasts until the next round
	// resolution; the timed effects tick down once per full round.
	Guarding      bool `json:"guarding"`
	Poisoned      bool `json:"poisoned"`
	StunTurns     int  `json:"stun_turns"`
	BoostTurns    int  `json:"boost_turns"`
	BoostAttack   int  `json:"boost_attack"`
	ShieldTurns   int  `json:"shield_turns"`
	ShieldDefense int  `json:"shield_defense"`
}

// EffectiveAttack returns attack power including any active boost.
func (c *Combatant) EffectiveAttack() int {
	a := c.Attack
	if c.BoostTurns > 0 {
		a += c.BoostAttack
	}
	if a < 1 {
		a = 1
	}
	return a
}

// EffectiveDefense returns defense power including any active shield.
func (c *Combatant) EffectiveDefense() int {
	d := c.Defense
	if c.ShieldTurns > 0 {
		d += c.ShieldDefense
	}
	if d < 0 {
		d = 0
	}
	return d
}

// ApplyDamage subtracts amount from current HP, clamped at zero.
func (c *Combatant) ApplyDamage(amount int) {
	c.CurrentHitPoints -= amount
	if c.CurrentHitPoints < 0 {
		c.CurrentHitPoints = 0
	}
}

// ApplyHeal adds amount to current HP, clamped at max HP.
func (c *Combatant) ApplyHeal(amount int) {
	c.CurrentHitPoints += amount
	if c.CurrentHitPoints > c.MaxHitPoints {
		c.CurrentHitPoints = c.MaxHitPoints
	}
}

// RestoreSkill adds amount to the skill pool, clamped at its max.
func (c *Combatant) RestoreSkill(amount int) {
	c.CurrentSkill += amount
	if c.CurrentSkill > c.MaxSkill {
		c.CurrentSkill = c.MaxSkill
	}
}

// CureAll removes every status effect at once. Guard is left alone since it
// is an action stance, not an affliction.
func (c *Combatant) CureAll() {
	c.Poisoned = false
	c.StunTurns = 0
	c.BoostTurns = 0
	c.BoostAttack = 0
	c.ShieldTurns = 0
	c.ShieldDefense = 0
}

// IsDefeated reports whether this side has no hit points left.
func (c *Combatant) IsDefeated() bool { return c.CurrentHitPoints <= 0 }
