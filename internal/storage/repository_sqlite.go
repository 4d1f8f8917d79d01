package storage

import (
	"errors"
	"strings"

	"github.com/ericogr/vex-battles/internal/game"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) GetProfileByEmail(email string) (*game.PlayerProfile, error) {
	var p game.PlayerProfile
	err := r.db.Where("email = ?", strings.ToLower(email)).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *sqliteRepository) CreateProfile(p *game.PlayerProfile) error {
	p.Email = strings.ToLower(p.Email)
	return r.db.Create(p).Error
}

func (r *sqliteRepository) SaveProfile(p *game.PlayerProfile) error {
	return r.db.Save(p).Error
}

func (r *sqliteRepository) CreateBattleRecord(rec *game.BattleRecord) error {
	rec.Email = strings.ToLower(rec.Email)
	return r.db.Create(rec).Error
}

func (r *sqliteRepository) GetRecordsByEmail(email string, limit int) ([]game.BattleRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	var recs []game.BattleRecord
	err := r.db.Where("email = ?", strings.ToLower(email)).
		Order("ended_at desc").Limit(limit).Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *sqliteRepository) GetTopPlayers(limit int) ([]game.PlayerProfile, error) {
	if limit <= 0 {
		limit = 10
	}
	var profiles []game.PlayerProfile
	err := r.db.Order("wins desc, xp desc").Limit(limit).Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
