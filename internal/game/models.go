package game

import (
	"time"

	"gorm.io/gorm"
)

// PlayerProfile stores persistent player identity, progression and pack
// contents between battles. ItemsJSON holds the serialized inventory slots;
// the inventory package owns the encoding.
type PlayerProfile struct {
	gorm.Model
	Email      string `json:"email" gorm:"uniqueIndex"`
	PlayerName string `json:"player_name"`

	Level   int `json:"level"`
	XP      int `json:"xp"`
	Credits int `json:"credits"`

	MaxHitPoints     int `json:"max_hp"`
	CurrentHitPoints int `json:"current_hp"`
	MaxSkill         int `json:"max_sp"`
	CurrentSkill     int `json:"current_sp"`
	Attack           int `json:"attack"`
	Defense          int `json:"defense"`
	Speed            int `json:"speed"`

	Wins         int `json:"wins"`
	Defeats      int `json:"defeats"`
	WinStreak    int `json:"win_streak"`
	DefeatStreak int `json:"defeat_streak"`

	ItemsJSON string `json:"-" gorm:"column:items_json;type:text"`
}

func (PlayerProfile) TableName() string { return "player_profiles" }

// Combatant builds the player-side battle participant from a profile.
func (p *PlayerProfile) Combatant() Combatant {
	return Combatant{
		Name:             p.PlayerName,
		Kind:             "player",
		CurrentHitPoints: p.CurrentHitPoints,
		MaxHitPoints:     p.MaxHitPoints,
		CurrentSkill:     p.CurrentSkill,
		MaxSkill:         p.MaxSkill,
		Attack:           p.Attack,
		Defense:          p.Defense,
		Speed:            p.Speed,
		Level:            p.Level,
		IsPlayer:         true,
	}
}

// BattleRecord is one finished battle, kept for history and the leaderboard.
type BattleRecord struct {
	gorm.Model
	ProfileID uint        `json:"-" gorm:"index"`
	Email     string      `json:"email" gorm:"index"`
	EnemyName string      `json:"enemy_name"`
	Boss      bool        `json:"boss"`
	Outcome   OutcomeKind `json:"outcome"`
	Turns     int         `json:"turns"`
	XPEarned  int         `json:"xp_earned"`
	Credits   int         `json:"credits"`
	EndedAt   time.Time   `json:"ended_at"`
}

func (BattleRecord) TableName() string { return "battle_records" }
