package service

import (
	"time"

	"github.com/ericogr/vex-battles/internal/engine"
	"github.com/ericogr/vex-battles/internal/game"
	"github.com/ericogr/vex-battles/internal/logging"
)

// ForfeitOverdueTurns auto-submits a guard for every battle left waiting on
// player input past the configured action timeout, so an absent player
// forfeits the turn instead of stalling the battle. Returns how many turns
// were forfeited.
func (m *Manager) ForfeitOverdueTurns(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	forfeited := 0
	for id, bs := range m.sessions {
		if bs.sess.State() != engine.StatePlayerChoosing {
			continue
		}
		if now.Sub(bs.lastTouch) < m.cfg.ActionTimeout {
			continue
		}
		if err := bs.sess.SubmitPlayerAction(game.Intent{Kind: game.ActionGuard}); err != nil {
			continue
		}
		bs.lastTouch = now
		forfeited++
		logging.Info("player action timed out, guarding", logging.Fields{"battle_id": id})
		m.finalizeIfExitedLocked(bs)
	}
	return forfeited
}
