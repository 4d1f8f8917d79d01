package game

// Archetype selects the weight table a basic enemy draws actions from.
type Archetype string

const (
	ArchetypeAggressive Archetype = "aggressive"
	ArchetypeBalanced   Archetype = "balanced"
	ArchetypeDefensive  Archetype = "defensive"
	ArchetypeTactical   Archetype = "tactical"
)

// KnownArchetypes lists the archetypes the catalog may reference.
var KnownArchetypes = []Archetype{
	ArchetypeAggressive, ArchetypeBalanced, ArchetypeDefensive, ArchetypeTactical,
}

// Stats is the static stat block shared by enemy and boss definitions.
type Stats struct {
	HitPoints int `json:"hit_points"`
	Skill     int `json:"skill"`
	Attack    int `json:"attack"`
	Defense   int `json:"defense"`
	Speed     int `json:"speed"`
	Level     int `json:"level"`
}

// DropEntry is one weighted row of an enemy's drop table. A roll below
// Weight (out of 100) yields the item; rows are evaluated independently.
type DropEntry struct {
	Item   ItemKind `json:"item"`
	Weight int      `json:"weight"`
}

// EnemyTemplate is the static definition of a regular enemy, loaded from the
// battle configuration file.
type EnemyTemplate struct {
	Name      string      `json:"name"`
	Archetype Archetype   `json:"archetype"`
	Stats     Stats       `json:"stats"`
	XP        int         `json:"xp"`
	Drops     []DropEntry `json:"drops"`
}

// PoolEntry is one weighted action in a boss phase pool.
type PoolEntry struct {
	Kind   ActionKind `json:"kind"`
	Weight int        `json:"weight"`
}

// BossPhase is one behavioral tier of a boss. Pools must be non-empty for
// all four phases; startup validation rejects definitions that are not.
type BossPhase struct {
	Pool []PoolEntry `json:"pool"`
}

// BossDefinition is the static definition of a boss encounter. Bosses carry
// exactly four phases keyed to remaining-HP thresholds and a guaranteed drop
// instead of a weighted table.
type BossDefinition struct {
	Name   string      `json:"name"`
	Stats  Stats       `json:"stats"`
	XP     int         `json:"xp"`
	Drop   ItemKind    `json:"drop"`
	Phases []BossPhase `json:"phases"`
}

// NewCombatantFromTemplate builds a fresh enemy-side Combatant.
func NewCombatantFromTemplate(t *EnemyTemplate) Combatant {
	return Combatant{
		Name:             t.Name,
		Kind:             t.Name,
		CurrentHitPoints: t.Stats.HitPoints,
		MaxHitPoints:     t.Stats.HitPoints,
		CurrentSkill:     t.Stats.Skill,
		MaxSkill:         t.Stats.Skill,
		Attack:           t.Stats.Attack,
		Defense:          t.Stats.Defense,
		Speed:            t.Stats.Speed,
		Level:            t.Stats.Level,
	}
}

// NewCombatantFromBoss builds a fresh boss-side Combatant.
func NewCombatantFromBoss(b *BossDefinition) Combatant {
	return Combatant{
		Name:             b.Name,
		Kind:             b.Name,
		CurrentHitPoints: b.Stats.HitPoints,
		MaxHitPoints:     b.Stats.HitPoints,
		CurrentSkill:     b.Stats.Skill,
		MaxSkill:         b.Stats.Skill,
		Attack:           b.Stats.Attack,
		Defense:          b.Stats.Defense,
		Speed:            b.Stats.Speed,
		Level:            b.Stats.Level,
	}
}
