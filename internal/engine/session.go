package engine

import (
	"strconv"

	"github.com/ericogr/vex-battles/internal/game"
)

// State is the battle state machine position.
type State string

const (
	StateIdle            State = "idle"
	StateInit            State = "init"
	StateIntro           State = "intro"
	StatePlayerChoosing  State = "player_choosing"
	StatePlayerResolving State = "player_resolving"
	StateEnemyChoosing   State = "enemy_choosing"
	StateEnemyResolving  State = "enemy_resolving"
	StateResolve         State = "resolve"
	StateVictory         State = "victory"
	StateDefeat          State = "defeat"
	StateExited          State = "exited"
)

// Display delays in ticks. The caller drains them through Advance; a large
// tick count collapses any delay without altering computed effects.
const (
	introDelayTicks  = 30
	actionDelayTicks = 20
	endDelayTicks    = 45
)

// Session is one battle: two combatants, an enemy policy, an injected RNG
// and the turn sequencer driving them. It owns both combatants exclusively
// until it reaches StateExited; the engine never blocks and never keeps its
// own clock.
type Session struct {
	state  State
	player game.Combatant
	enemy  game.Combatant

	policy Policy
	boss   *BossState
	rng    RNG

	playerFirst  bool
	turn         int
	delay        int
	playerActed  bool
	enemyActed   bool
	fleeAttempts int
	levelScaling bool

	enemyMaxAtStart int
	rewardXP        int
	dropKind        string

	message MessageID
	log     []string
	outcome *game.BattleOutcome
}

// NewSession starts a battle against a regular enemy template. The returned
// session is already past intro setup: turn order is fixed here and never
// re-evaluated, ties going to the player.
func NewSession(player game.Combatant, tmpl *game.EnemyTemplate, rng RNG) (*Session, error) {
	if tmpl == nil || tmpl.Stats.HitPoints <= 0 || tmpl.Stats.Attack <= 0 {
		return nil, ErrMalformedDefinition
	}
	s := newSession(player, game.NewCombatantFromTemplate(tmpl), rng)
	s.policy = NewBasicEnemyPolicy(tmpl.Archetype)
	s.rewardXP = tmpl.XP
	s.dropKind = tmpl.Name
	s.begin()
	return s, nil
}

// NewBossSession starts a boss battle. Definitions missing any of the four
// phase pools are rejected up front so a battle can never begin from a
// malformed definition.
func NewBossSession(player game.Combatant, def *game.BossDefinition, rng RNG) (*Session, error) {
	if def == nil || def.Stats.HitPoints <= 0 || def.Stats.Attack <= 0 {
		return nil, ErrMalformedDefinition
	}
	if len(def.Phases) != 4 {
		return nil, ErrMalformedDefinition
	}
	for _, ph := range def.Phases {
		if len(ph.Pool) == 0 {
			return nil, ErrMalformedDefinition
		}
	}
	s := newSession(player, game.NewCombatantFromBoss(def), rng)
	s.boss = NewBossState()
	s.policy = NewBossPolicy(def.Phases, s.boss)
	s.rewardXP = def.XP
	s.dropKind = def.Name
	s.begin()
	return s, nil
}

func newSession(player, enemy game.Combatant, rng RNG) *Session {
	player.IsPlayer = true
	return &Session{
		state:           StateIdle,
		player:          player,
		enemy:           enemy,
		rng:             rng,
		enemyMaxAtStart: enemy.MaxHitPoints,
		turn:            1,
		log:             make([]string, 0, 32),
	}
}

// EnableLevelScaling switches on the level-gap damage layer. Only the
// service enables it for battles tied to a persisted profile.
func (s *Session) EnableLevelScaling() { s.levelScaling = true }

func (s *Session) begin() {
	s.state = StateInit
	s.playerFirst = s.player.Speed >= s.enemy.Speed
	s.state = StateIntro
	s.delay = introDelayTicks
	s.message = MsgIntro
	s.addLog(s.enemy.Name + " appears!")
}

// --- External surface ---------------------------------------------------

// SubmitPlayerAction is the only external input. It is accepted only while
// the session sits in StatePlayerChoosing; any other call errors and leaves
// the state untouched.
func (s *Session) SubmitPlayerAction(intent game.Intent) error {
	if s.state != StatePlayerChoosing {
		return ErrNotPlayerTurn
	}
	if !intent.Kind.PlayerAllowed() {
		return ErrActionNotAllowed
	}
	if intent.Kind == game.ActionFlee && s.boss != nil {
		return ErrActionNotAllowed
	}
	if intent.Kind == game.ActionItem && intent.Item == nil {
		return ErrActionNotAllowed
	}
	s.resolvePlayerAction(intent)
	return nil
}

// Advance consumes elapsed ticks, draining display delays and running every
// automatic transition until the session blocks on player input, runs out of
// ticks or exits.
func (s *Session) Advance(ticks int) {
	for ticks > 0 && s.state != StateExited && s.state != StatePlayerChoosing {
		if s.delay > ticks {
			s.delay -= ticks
			return
		}
		ticks -= s.delay
		s.delay = 0
		s.step()
		if ticks == 0 {
			return
		}
	}
}

// IsBattleActive reports whether the session still owns its combatants.
func (s *Session) IsBattleActive() bool { return s.state != StateExited }

// Outcome is valid only once the battle has exited.
func (s *Session) Outcome() (*game.BattleOutcome, error) {
	if s.state != StateExited || s.outcome == nil {
		return nil, ErrBattleStillActive
	}
	return s.outcome, nil
}

// CurrentMessage returns the presentation id for the latest step.
func (s *Session) CurrentMessage() MessageID { return s.message }

// Snapshot returns a copy of one side's combatant.
func (s *Session) Snapshot(side game.Side) game.Combatant {
	if side == game.SidePlayer {
		return s.player
	}
	return s.enemy
}

// State returns the current machine state.
func (s *Session) State() State { return s.state }

// Turn returns the 1-based round counter.
func (s *Session) Turn() int { return s.turn }

// PlayerFirst reports the fixed turn order decided at start.
func (s *Session) PlayerFirst() bool { return s.playerFirst }

// Boss returns the boss extension state, nil for regular battles.
func (s *Session) Boss() *BossState { return s.boss }

// Log returns the accumulated battle summary lines.
func (s *Session) Log() []string { return s.log }

// --- Sequencing ---------------------------------------------------------

// step runs one automatic transition. It is only called with the display
// delay fully drained.
func (s *Session) step() {
	switch s.state {
	case StateIntro:
		s.enterFirstChooser()
	case StatePlayerResolving:
		s.afterResolution()
	case StateEnemyResolving:
		s.afterResolution()
	case StateResolve:
		s.resolveRound()
	case StateVictory, StateDefeat:
		s.state = StateExited
	}
}

func (s *Session) enterFirstChooser() {
	if s.playerFirst {
		s.enterChoosing(game.SidePlayer)
	} else {
		s.enterChoosing(game.SideEnemy)
	}
}

// enterChoosing applies start-of-turn effects (poison, stun) for the side
// about to act, then either blocks on player input or lets the policy pick.
func (s *Session) enterChoosing(side game.Side) {
	actor := &s.player
	if side == game.SideEnemy {
		actor = &s.enemy
	}

	if actor.Poisoned {
		tick := actor.MaxHitPoints / 20
		if tick < 1 {
			tick = 1
		}
		actor.ApplyDamage(tick)
		if side == game.SidePlayer {
			s.message = MsgPlayerPoison
		} else {
			s.message = MsgEnemyPoison
		}
		s.addLog(actor.Name + " suffers " + strconv.Itoa(tick) + " poison damage")
		if actor.IsDefeated() {
			s.state = StateResolve
			s.delay = actionDelayTicks
			return
		}
	}

	if actor.StunTurns > 0 {
		actor.StunTurns--
		s.markActed(side)
		if side == game.SidePlayer {
			s.message = MsgPlayerStunned
			s.state = StatePlayerResolving
		} else {
			s.message = MsgEnemyStunned
			s.state = StateEnemyResolving
		}
		s.delay = actionDelayTicks
		s.addLog(actor.Name + " is stunned and cannot move")
		return
	}

	if side == game.SidePlayer {
		s.state = StatePlayerChoosing
		return
	}
	s.state = StateEnemyChoosing
	if s.boss != nil {
		s.boss.TurnsSinceRepair++
	}
	kind := s.policy.ChooseAction(&s.enemy, &s.player, s.rng)
	s.resolveEnemyAction(kind)
}

func (s *Session) markActed(side game.Side) {
	if side == game.SidePlayer {
		s.playerActed = true
	} else {
		s.enemyActed = true
	}
}

// afterResolution routes to the other side's turn, or to round resolution
// once both sides acted or someone is already down.
func (s *Session) afterResolution() {
	if s.player.IsDefeated() || s.enemy.IsDefeated() {
		s.resolveRound()
		return
	}
	if s.playerActed && s.enemyActed {
		s.resolveRound()
		return
	}
	if s.playerActed {
		s.enterChoosing(game.SideEnemy)
	} else {
		s.enterChoosing(game.SidePlayer)
	}
}

// resolveRound checks terminal conditions in fixed priority (enemy down
// first, so a simultaneous zero is a victory) and otherwise starts the next
// round.
func (s *Session) resolveRound() {
	s.state = StateResolve
	if s.enemy.IsDefeated() {
		s.finish(game.OutcomeVictory)
		return
	}
	if s.player.IsDefeated() {
		s.finish(game.OutcomeDefeat)
		return
	}

	s.turn++
	s.playerActed = false
	s.enemyActed = false
	s.player.Guarding = false
	s.enemy.Guarding = false
	tickBonuses(&s.player)
	tickBonuses(&s.enemy)
	s.enterFirstChooser()
}

func tickBonuses(c *game.Combatant) {
	if c.BoostTurns > 0 {
		c.BoostTurns--
		if c.BoostTurns == 0 {
			c.BoostAttack = 0
		}
	}
	if c.ShieldTurns > 0 {
		c.ShieldTurns--
		if c.ShieldTurns == 0 {
			c.ShieldDefense = 0
		}
	}
}

func (s *Session) finish(kind game.OutcomeKind) {
	switch kind {
	case game.OutcomeVictory:
		s.outcome = &game.BattleOutcome{
			Kind:     game.OutcomeVictory,
			XP:       s.rewardXP,
			Credits:  s.rewardXP,
			DropKind: s.dropKind,
			Turns:    s.turn,
		}
		if s.boss != nil {
			s.boss.DeathTicks = endDelayTicks
		}
		s.message = MsgVictory
		s.state = StateVictory
		s.delay = endDelayTicks
		s.addLog(s.enemy.Name + " is defeated!")
	case game.OutcomeDefeat:
		s.outcome = &game.BattleOutcome{Kind: game.OutcomeDefeat, Turns: s.turn}
		s.message = MsgDefeat
		s.state = StateDefeat
		s.delay = endDelayTicks
		s.addLog(s.player.Name + " falls...")
	case game.OutcomeFled:
		s.outcome = &game.BattleOutcome{Kind: game.OutcomeFled, Turns: s.turn}
		s.message = MsgFled
		s.state = StateExited
		s.delay = 0
		s.addLog(s.player.Name + " escaped the battle")
	}
}

func (s *Session) addLog(line string) { s.log = append(s.log, line) }
