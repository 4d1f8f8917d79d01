package service

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/ericogr/vex-battles/internal/config"
	"github.com/ericogr/vex-battles/internal/engine"
	"github.com/ericogr/vex-battles/internal/game"
	"github.com/ericogr/vex-battles/internal/inventory"
	"github.com/ericogr/vex-battles/internal/storage"
)

var (
	ErrBattleNotFound   = errors.New("battle not found")
	ErrNotYourBattle    = errors.New("battle belongs to another player")
	ErrBattleInProgress = errors.New("player already has an active battle")
	ErrUnknownEnemy     = errors.New("unknown enemy or boss name")
	ErrProfileNotFound  = errors.New("player profile not found")
)

const battleIDCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const battleIDLength = 8

// battleSession pairs one engine session with its owner and the pack state
// carried through the battle. finalized flips once rewards were persisted.
type battleSession struct {
	id        string
	email     string
	enemyName string
	boss      bool
	sess      *engine.Session
	inv       *inventory.Inventory
	drops     []game.ItemKind
	lastTouch time.Time
	finalized bool
}

// Manager owns every in-memory battle session and serializes access to
// them. Sessions are exclusive to their owner; the engine itself is single
// threaded, so all entry points funnel through the manager mutex.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*battleSession
	byEmail  map[string]string
	repo     storage.Repository
	cfg      *config.LoadedConfig
	rng      engine.RNG
	newRNG   func() engine.RNG
}

func NewManager(repo storage.Repository, cfg *config.LoadedConfig) *Manager {
	return &Manager{
		sessions: make(map[string]*battleSession),
		byEmail:  make(map[string]string),
		repo:     repo,
		cfg:      cfg,
		rng:      engine.NewSeededRNG(time.Now().UnixNano()),
		newRNG:   func() engine.RNG { return engine.NewSeededRNG(time.Now().UnixNano()) },
	}
}

func (m *Manager) newBattleID() string {
	b := make([]byte, battleIDLength)
	for i := range b {
		b[i] = battleIDCharset[rand.Intn(len(battleIDCharset))]
	}
	return string(b)
}

// get returns the owner-checked session. Callers hold m.mu.
func (m *Manager) get(battleID, email string) (*battleSession, error) {
	bs, ok := m.sessions[battleID]
	if !ok {
		return nil, ErrBattleNotFound
	}
	if bs.email != email {
		return nil, ErrNotYourBattle
	}
	bs.lastTouch = time.Now()
	return bs, nil
}
