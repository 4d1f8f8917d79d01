package service

import (
	"time"

	"github.com/ericogr/vex-battles/internal/engine"
	"github.com/ericogr/vex-battles/internal/game"
	"github.com/ericogr/vex-battles/internal/inventory"
	"github.com/ericogr/vex-battles/internal/logging"
	"github.com/ericogr/vex-battles/internal/progression"
)

// BattleView is the read model the API returns for an active battle.
type BattleView struct {
	ID          string           `json:"battle_id"`
	Active      bool             `json:"active"`
	State       engine.State     `json:"state"`
	Message     engine.MessageID `json:"message"`
	Turn        int              `json:"turn"`
	PlayerFirst bool             `json:"player_first"`
	Player      game.Combatant   `json:"player"`
	Enemy       game.Combatant   `json:"enemy"`
	BossPhase   int              `json:"boss_phase,omitempty"`
	Log         []string         `json:"log"`
}

// OutcomeView adds the loot rolled at finalization to the engine outcome.
type OutcomeView struct {
	game.BattleOutcome
	Drops []game.ItemKind `json:"drops"`
}

func (m *Manager) viewLocked(bs *battleSession) *BattleView {
	v := &BattleView{
		ID:          bs.id,
		Active:      bs.sess.IsBattleActive(),
		State:       bs.sess.State(),
		Message:     bs.sess.CurrentMessage(),
		Turn:        bs.sess.Turn(),
		PlayerFirst: bs.sess.PlayerFirst(),
		Player:      bs.sess.Snapshot(game.SidePlayer),
		Enemy:       bs.sess.Snapshot(game.SideEnemy),
		Log:         bs.sess.Log(),
	}
	if b := bs.sess.Boss(); b != nil {
		v.BossPhase = b.Phase
	}
	return v
}

// SubmitAction forwards a player intent to the owner's session. An item
// intent consumes its pack slot up front; the slot is restored when the
// engine rejects the action.
func (m *Manager) SubmitAction(battleID, email string, kind game.ActionKind, item game.ItemKind) (*BattleView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bs, err := m.get(battleID, email)
	if err != nil {
		return nil, err
	}

	intent := game.Intent{Kind: kind}
	if kind == game.ActionItem {
		eff, err := bs.inv.Use(item)
		if err != nil {
			return nil, err
		}
		intent.Item = &eff
	}
	if err := bs.sess.SubmitPlayerAction(intent); err != nil {
		if kind == game.ActionItem {
			// the slot was freed a moment ago, re-adding cannot fail
			_ = bs.inv.Add(item)
		}
		return nil, err
	}
	logging.Debug("player action submitted", logging.Fields{"battle_id": bs.id, "kind": string(kind)})
	m.finalizeIfExitedLocked(bs)
	return m.viewLocked(bs), nil
}

// Advance drains elapsed ticks on the session and persists the result when
// the battle exits.
func (m *Manager) Advance(battleID, email string, ticks int) (*BattleView, error) {
	if ticks < 0 {
		ticks = 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	bs, err := m.get(battleID, email)
	if err != nil {
		return nil, err
	}
	bs.sess.Advance(ticks)
	m.finalizeIfExitedLocked(bs)
	return m.viewLocked(bs), nil
}

// View returns the current battle state without advancing it.
func (m *Manager) View(battleID, email string) (*BattleView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bs, err := m.get(battleID, email)
	if err != nil {
		return nil, err
	}
	return m.viewLocked(bs), nil
}

// Outcome is valid only once the battle has exited.
func (m *Manager) Outcome(battleID, email string) (*OutcomeView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bs, err := m.get(battleID, email)
	if err != nil {
		return nil, err
	}
	out, err := bs.sess.Outcome()
	if err != nil {
		return nil, err
	}
	return &OutcomeView{BattleOutcome: *out, Drops: bs.drops}, nil
}

// finalizeIfExitedLocked syncs final battle values back to the profile
// store exactly once: progression, credits, loot rolls, pack contents and
// the battle record. Callers hold m.mu.
func (m *Manager) finalizeIfExitedLocked(bs *battleSession) {
	if bs.finalized || bs.sess.IsBattleActive() {
		return
	}
	bs.finalized = true

	out, err := bs.sess.Outcome()
	if err != nil {
		return
	}
	profile, err := m.repo.GetProfileByEmail(bs.email)
	if err != nil {
		logging.Error("failed to load profile at battle end", err, logging.Fields{"battle_id": bs.id})
		return
	}

	final := bs.sess.Snapshot(game.SidePlayer)
	profile.CurrentHitPoints = final.CurrentHitPoints
	profile.CurrentSkill = final.CurrentSkill

	switch out.Kind {
	case game.OutcomeVictory:
		progression.ApplyVictory(profile, out.XP, out.Credits)
		bs.drops = m.rollDrops(bs)
		for _, item := range bs.drops {
			if err := bs.inv.Add(item); err != nil {
				logging.Info("drop lost, pack full", logging.Fields{"battle_id": bs.id, "item": string(item)})
			}
		}
	case game.OutcomeDefeat:
		progression.ApplyDefeat(profile)
	case game.OutcomeFled:
		// no rewards, no penalty
	}

	if itemsJSON, err := bs.inv.Encode(); err == nil {
		profile.ItemsJSON = itemsJSON
	}
	if err := m.repo.SaveProfile(profile); err != nil {
		logging.Error("failed to save profile at battle end", err, logging.Fields{"battle_id": bs.id})
	}
	rec := &game.BattleRecord{
		ProfileID: profile.ID,
		Email:     bs.email,
		EnemyName: bs.enemyName,
		Boss:      bs.boss,
		Outcome:   out.Kind,
		Turns:     out.Turns,
		XPEarned:  out.XP,
		Credits:   out.Credits,
		EndedAt:   time.Now(),
	}
	if err := m.repo.CreateBattleRecord(rec); err != nil {
		logging.Error("failed to store battle record", err, logging.Fields{"battle_id": bs.id})
	}
	logging.Info("battle finished", logging.Fields{
		"battle_id": bs.id,
		"outcome":   string(out.Kind),
		"turns":     out.Turns,
	})
}

// rollDrops resolves the loot for a won battle: bosses carry a guaranteed
// drop, regular enemies roll their weighted table.
func (m *Manager) rollDrops(bs *battleSession) []game.ItemKind {
	if bs.boss {
		if def := m.cfg.Boss(bs.enemyName); def != nil && def.Drop != game.ItemNone {
			return []game.ItemKind{def.Drop}
		}
		return nil
	}
	if tmpl := m.cfg.Enemy(bs.enemyName); tmpl != nil {
		return inventory.RollDrops(tmpl.Drops, m.rng)
	}
	return nil
}
