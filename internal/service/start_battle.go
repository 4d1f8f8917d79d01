package service

import (
	"time"

	"github.com/ericogr/vex-battles/internal/engine"
	"github.com/ericogr/vex-battles/internal/inventory"
	"github.com/ericogr/vex-battles/internal/logging"
	"github.com/ericogr/vex-battles/internal/progression"
)

// StartBattle creates a battle session for the named enemy or boss and
// binds it to the player's profile. One active battle per player; the
// previous one must exit first.
func (m *Manager) StartBattle(email, enemyName string) (*BattleView, error) {
	profile, err := m.GetOrCreateProfile(email, "")
	if err != nil {
		return nil, err
	}
	inv, err := inventory.Load(profile.ItemsJSON)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.byEmail[email]; ok {
		if bs, found := m.sessions[existing]; found && bs.sess.IsBattleActive() {
			return nil, ErrBattleInProgress
		}
	}

	player := profile.Combatant()
	rng := m.newRNG()

	var (
		sess *engine.Session
		boss bool
	)
	if def := m.cfg.Boss(enemyName); def != nil {
		boss = true
		sess, err = engine.NewBossSession(player, def, rng)
	} else if tmpl := m.cfg.Enemy(enemyName); tmpl != nil {
		// a losing streak shaves the enemy's attack at battle start
		t := *tmpl
		t.Stats.Attack -= progression.AssistAttackPenalty(profile, t.Stats.Attack)
		sess, err = engine.NewSession(player, &t, rng)
	} else {
		return nil, ErrUnknownEnemy
	}
	if err != nil {
		return nil, err
	}
	sess.EnableLevelScaling()

	bs := &battleSession{
		id:        m.newBattleID(),
		email:     email,
		enemyName: enemyName,
		boss:      boss,
		sess:      sess,
		inv:       inv,
		lastTouch: time.Now(),
	}
	m.sessions[bs.id] = bs
	m.byEmail[email] = bs.id

	logging.Info("battle started", logging.Fields{
		"battle_id": bs.id,
		"enemy":     enemyName,
		"boss":      boss,
	})
	return m.viewLocked(bs), nil
}
