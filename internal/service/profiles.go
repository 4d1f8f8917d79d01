package service

import (
	"strconv"
	"strings"

	"github.com/ericogr/vex-battles/internal/dedupe"
	"github.com/ericogr/vex-battles/internal/game"
	"github.com/ericogr/vex-battles/internal/progression"
	"github.com/ericogr/vex-battles/internal/storage"
)

// GetOrCreateProfile loads a player's profile, creating the level-1
// starting profile on first login. Concurrent calls for the same email are
// deduplicated so only one row ever gets created.
func (m *Manager) GetOrCreateProfile(email, name string) (*game.PlayerProfile, error) {
	key := strings.ToLower(email)
	v, err, _ := dedupe.ProfileGroup.Do(key, func() (interface{}, error) {
		p, err := m.repo.GetProfileByEmail(key)
		if err == nil {
			return p, nil
		}
		if err != storage.ErrNotFound {
			return nil, err
		}
		fresh := progression.NewProfile(key, name)
		if name == "" {
			fresh.PlayerName = key
		}
		if err := m.repo.CreateProfile(fresh); err != nil {
			return nil, err
		}
		return fresh, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*game.PlayerProfile), nil
}

// UpdatePlayerName stores a custom display name on the profile.
func (m *Manager) UpdatePlayerName(email, name string) (*game.PlayerProfile, error) {
	p, err := m.repo.GetProfileByEmail(email)
	if err != nil {
		if err == storage.ErrNotFound {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	p.PlayerName = name
	if err := m.repo.SaveProfile(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Leaderboard returns the top profiles by wins. Concurrent reads for the
// same page size collapse into one query.
func (m *Manager) Leaderboard(limit int) ([]game.PlayerProfile, error) {
	v, err, _ := dedupe.LeaderboardGroup.Do(strconv.Itoa(limit), func() (interface{}, error) {
		return m.repo.GetTopPlayers(limit)
	})
	if err != nil {
		return nil, err
	}
	return v.([]game.PlayerProfile), nil
}

// History returns the player's most recent battle records.
func (m *Manager) History(email string, limit int) ([]game.BattleRecord, error) {
	return m.repo.GetRecordsByEmail(email, limit)
}
