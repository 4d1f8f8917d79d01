package storage

import (
	"github.com/ericogr/vex-battles/internal/game"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens the sqlite database and keeps the schema updated via
// AutoMigrate. Battle definitions live in the config file, not here; only
// player progression and battle history are persisted.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&game.PlayerProfile{}, &game.BattleRecord{}); err != nil {
		return nil, err
	}
	return db, nil
}
