package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ericogr/vex-battles/internal/game"
)

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	ActionTimeoutSeconds int                   `json:"action_timeout_seconds"`
	SessionTTLSeconds    int                   `json:"session_ttl_seconds"`
	EnemyList            []game.EnemyTemplate  `json:"enemy_list"`
	BossList             []game.BossDefinition `json:"boss_list"`
}

// LoadedConfig carries the parsed catalog and server settings.
type LoadedConfig struct {
	ServerAddress string
	ActionTimeout time.Duration
	SessionTTL    time.Duration
	Enemies       []game.EnemyTemplate
	Bosses        []game.BossDefinition
}

// Enemy looks up a regular enemy template by name (case-insensitive).
func (c *LoadedConfig) Enemy(name string) *game.EnemyTemplate {
	for i := range c.Enemies {
		if strings.EqualFold(c.Enemies[i].Name, name) {
			return &c.Enemies[i]
		}
	}
	return nil
}

// Boss looks up a boss definition by name (case-insensitive).
func (c *LoadedConfig) Boss(name string) *game.BossDefinition {
	for i := range c.Bosses {
		if strings.EqualFold(c.Bosses[i].Name, name) {
			return &c.Bosses[i]
		}
	}
	return nil
}

// LoadConfig reads and validates the battle configuration file. Validation
// is strict so a battle can never start from a malformed definition: every
// failure here is fatal at startup, not mid-resolution.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if len(rc.EnemyList) == 0 {
		return nil, fmt.Errorf("config file %s: enemy_list is empty (provide an 'enemy_list' array)", path)
	}

	names := make(map[string]struct{}, len(rc.EnemyList)+len(rc.BossList))
	for i := range rc.EnemyList {
		e := &rc.EnemyList[i]
		if err := validateName(names, e.Name); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := validateStats(e.Name, e.Stats); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if e.Archetype == "" {
			e.Archetype = game.ArchetypeBalanced
		}
		if !knownArchetype(e.Archetype) {
			return nil, fmt.Errorf("config file %s: enemy '%s' has unknown archetype '%s'", path, e.Name, e.Archetype)
		}
		for _, d := range e.Drops {
			if !game.IsKnownItemKind(d.Item) {
				return nil, fmt.Errorf("config file %s: enemy '%s' drops unknown item '%s'", path, e.Name, d.Item)
			}
			if d.Weight < 0 || d.Weight > 100 {
				return nil, fmt.Errorf("config file %s: enemy '%s' drop weight %d out of range", path, e.Name, d.Weight)
			}
		}
	}

	for i := range rc.BossList {
		bd := &rc.BossList[i]
		if err := validateName(names, bd.Name); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := validateStats(bd.Name, bd.Stats); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if bd.Drop != game.ItemNone && !game.IsKnownItemKind(bd.Drop) {
			return nil, fmt.Errorf("config file %s: boss '%s' drops unknown item '%s'", path, bd.Name, bd.Drop)
		}
		if len(bd.Phases) != 4 {
			return nil, fmt.Errorf("config file %s: boss '%s' must define exactly 4 phases, has %d", path, bd.Name, len(bd.Phases))
		}
		for pi, ph := range bd.Phases {
			if len(ph.Pool) == 0 {
				return nil, fmt.Errorf("config file %s: boss '%s' phase %d has an empty action pool", path, bd.Name, pi+1)
			}
			for _, entry := range ph.Pool {
				if !entry.Kind.EnemyPoolAllowed() {
					return nil, fmt.Errorf("config file %s: boss '%s' phase %d pool contains invalid kind '%s'", path, bd.Name, pi+1, entry.Kind)
				}
				if entry.Weight <= 0 {
					return nil, fmt.Errorf("config file %s: boss '%s' phase %d pool entry '%s' needs a positive weight", path, bd.Name, pi+1, entry.Kind)
				}
			}
		}
	}

	addr := ":8080"
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}
	actionTimeout := 60 * time.Second
	if rc.ActionTimeoutSeconds > 0 {
		actionTimeout = time.Duration(rc.ActionTimeoutSeconds) * time.Second
	}
	sessionTTL := 30 * time.Minute
	if rc.SessionTTLSeconds > 0 {
		sessionTTL = time.Duration(rc.SessionTTLSeconds) * time.Second
	}

	return &LoadedConfig{
		ServerAddress: addr,
		ActionTimeout: actionTimeout,
		SessionTTL:    sessionTTL,
		Enemies:       rc.EnemyList,
		Bosses:        rc.BossList,
	}, nil
}

func validateName(seen map[string]struct{}, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("definition missing 'name'")
	}
	ln := strings.ToLower(strings.TrimSpace(name))
	if _, exists := seen[ln]; exists {
		return fmt.Errorf("duplicate definition name '%s'", name)
	}
	seen[ln] = struct{}{}
	return nil
}

func validateStats(name string, st game.Stats) error {
	if st.HitPoints <= 0 {
		return fmt.Errorf("definition '%s' needs positive hit_points", name)
	}
	if st.Attack <= 0 {
		return fmt.Errorf("definition '%s' needs positive attack", name)
	}
	if st.Defense < 0 || st.Speed < 0 || st.Skill < 0 {
		return fmt.Errorf("definition '%s' has negative stats", name)
	}
	return nil
}

func knownArchetype(a game.Archetype) bool {
	for _, k := range game.KnownArchetypes {
		if k == a {
			return true
		}
	}
	return false
}
