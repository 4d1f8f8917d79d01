package service

import (
	"time"

	"github.com/ericogr/vex-battles/internal/logging"
)

// SweepExpired drops sessions idle longer than ttl. Abandoned active
// battles are discarded without rewards or penalties; finished ones were
// already persisted at exit and only their outcome view is lost. Returns
// the number of sessions removed.
func (m *Manager) SweepExpired(now time.Time, ttl time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, bs := range m.sessions {
		if now.Sub(bs.lastTouch) < ttl {
			continue
		}
		delete(m.sessions, id)
		if m.byEmail[bs.email] == id {
			delete(m.byEmail, bs.email)
		}
		removed++
		logging.Info("battle session expired", logging.Fields{
			"battle_id": id,
			"active":    bs.sess.IsBattleActive(),
		})
	}
	return removed
}

// ActiveSessions reports how many sessions the manager currently holds.
func (m *Manager) ActiveSessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
