package storage

import "github.com/ericogr/vex-battles/internal/game"

// Repository is the persistence surface for player profiles and finished
// battle records. Battle sessions themselves never touch storage; the
// service syncs final values back through this interface at battle exit.
type Repository interface {
	GetProfileByEmail(email string) (*game.PlayerProfile, error)
	CreateProfile(p *game.PlayerProfile) error
	SaveProfile(p *game.PlayerProfile) error

	CreateBattleRecord(r *game.BattleRecord) error
	GetRecordsByEmail(email string, limit int) ([]game.BattleRecord, error)

	// GetTopPlayers returns profiles ordered by wins, then XP.
	GetTopPlayers(limit int) ([]game.PlayerProfile, error)
}
