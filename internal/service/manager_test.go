package service

import (
	"strings"
	"testing"
	"time"

	"github.com/ericogr/vex-battles/internal/config"
	"github.com/ericogr/vex-battles/internal/engine"
	"github.com/ericogr/vex-battles/internal/game"
	"github.com/ericogr/vex-battles/internal/inventory"
	"github.com/ericogr/vex-battles/internal/progression"
	"github.com/ericogr/vex-battles/internal/storage"
)

// scriptRNG replays a fixed sequence so battles resolve deterministically.
type scriptRNG struct {
	seq []int
	i   int
}

func (s *scriptRNG) NextBounded(n int) int {
	if n <= 0 || len(s.seq) == 0 {
		return 0
	}
	v := s.seq[s.i%len(s.seq)]
	s.i++
	return v % n
}

type mockRepo struct {
	profiles map[string]*game.PlayerProfile
	records  []*game.BattleRecord
	creates  int
	saves    int
}

func newMockRepo() *mockRepo {
	return &mockRepo{profiles: make(map[string]*game.PlayerProfile)}
}

func (m *mockRepo) GetProfileByEmail(email string) (*game.PlayerProfile, error) {
	if p, ok := m.profiles[strings.ToLower(email)]; ok {
		return p, nil
	}
	return nil, storage.ErrNotFound
}

func (m *mockRepo) CreateProfile(p *game.PlayerProfile) error {
	m.creates++
	m.profiles[strings.ToLower(p.Email)] = p
	return nil
}

func (m *mockRepo) SaveProfile(p *game.PlayerProfile) error {
	m.saves++
	m.profiles[strings.ToLower(p.Email)] = p
	return nil
}

func (m *mockRepo) CreateBattleRecord(r *game.BattleRecord) error {
	m.records = append(m.records, r)
	return nil
}

func (m *mockRepo) GetRecordsByEmail(email string, limit int) ([]game.BattleRecord, error) {
	var out []game.BattleRecord
	for _, r := range m.records {
		if r.Email == email {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockRepo) GetTopPlayers(limit int) ([]game.PlayerProfile, error) {
	var out []game.PlayerProfile
	for _, p := range m.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func testConfig() *config.LoadedConfig {
	return &config.LoadedConfig{
		ServerAddress: ":8080",
		ActionTimeout: time.Minute,
		SessionTTL:    30 * time.Minute,
		Enemies: []game.EnemyTemplate{
			{
				Name:      "Rust Mite",
				Archetype: game.ArchetypeBalanced,
				Stats:     game.Stats{HitPoints: 5, Attack: 1, Defense: 0, Speed: 1, Level: 1},
				XP:        10,
				Drops:     []game.DropEntry{{Item: game.ItemSmallPotion, Weight: 100}},
			},
		},
	}
}

// testManager wires a manager with scripted randomness: sessionSeq feeds
// every battle session, dropSeq feeds the loot rolls.
func testManager(repo *mockRepo, sessionSeq, dropSeq []int) *Manager {
	m := NewManager(repo, testConfig())
	m.newRNG = func() engine.RNG { return &scriptRNG{seq: sessionSeq} }
	m.rng = &scriptRNG{seq: dropSeq}
	return m
}

func TestStartBattleCreatesProfile(t *testing.T) {
	repo := newMockRepo()
	m := testManager(repo, []int{1}, []int{0})

	view, err := m.StartBattle("p1@example.com", "Rust Mite")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.creates != 1 {
		t.Fatalf("expected one profile creation, got %d", repo.creates)
	}
	if view.ID == "" || len(view.ID) != battleIDLength {
		t.Fatalf("bad battle id %q", view.ID)
	}
	if !view.Active || view.Enemy.Name != "Rust Mite" {
		t.Fatalf("unexpected view: active=%v enemy=%q", view.Active, view.Enemy.Name)
	}
	if !view.PlayerFirst {
		t.Fatal("player outspeeds the mite and should act first")
	}

	if _, err := m.StartBattle("p1@example.com", "Rust Mite"); err != ErrBattleInProgress {
		t.Fatalf("expected ErrBattleInProgress, got %v", err)
	}
	if _, err := m.StartBattle("p2@example.com", "No Such Thing"); err != ErrUnknownEnemy {
		t.Fatalf("expected ErrUnknownEnemy, got %v", err)
	}
}

func TestBattleOwnership(t *testing.T) {
	repo := newMockRepo()
	m := testManager(repo, []int{1}, []int{0})

	view, err := m.StartBattle("owner@example.com", "Rust Mite")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := m.View(view.ID, "intruder@example.com"); err != ErrNotYourBattle {
		t.Fatalf("expected ErrNotYourBattle, got %v", err)
	}
	if _, err := m.View("NOPE1234", "owner@example.com"); err != ErrBattleNotFound {
		t.Fatalf("expected ErrBattleNotFound, got %v", err)
	}
}

func TestVictoryFinalizesProfileAndDrops(t *testing.T) {
	repo := newMockRepo()
	m := testManager(repo, []int{1}, []int{0})

	view, err := m.StartBattle("p1@example.com", "Rust Mite")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id := view.ID

	// Drain the intro, land one attack, then drain to battle exit.
	view, err = m.Advance(id, "p1@example.com", 30)
	if err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if view.State != engine.StatePlayerChoosing {
		t.Fatalf("expected player_choosing, got %s", view.State)
	}
	if _, err := m.SubmitAction(id, "p1@example.com", game.ActionAttack, game.ItemNone); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	view, err = m.Advance(id, "p1@example.com", 200)
	if err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if view.Active {
		t.Fatalf("battle should be over, state %s", view.State)
	}

	out, err := m.Outcome(id, "p1@example.com")
	if err != nil {
		t.Fatalf("outcome failed: %v", err)
	}
	if out.Kind != game.OutcomeVictory || out.XP != 10 {
		t.Fatalf("unexpected outcome %+v", out.BattleOutcome)
	}
	if len(out.Drops) != 1 || out.Drops[0] != game.ItemSmallPotion {
		t.Fatalf("expected one small_potion drop, got %v", out.Drops)
	}

	p := repo.profiles["p1@example.com"]
	if p.Wins != 1 || p.WinStreak != 1 || p.XP != 10 || p.Credits != 10 {
		t.Fatalf("progression not applied: %+v", p)
	}
	if p.CurrentHitPoints != 50 {
		t.Fatalf("player took no damage, HP should stay 50, got %d", p.CurrentHitPoints)
	}
	inv, err := inventory.Load(p.ItemsJSON)
	if err != nil {
		t.Fatalf("pack decode failed: %v", err)
	}
	if inv.Count(game.ItemSmallPotion) != 1 {
		t.Fatal("drop was not added to the pack")
	}
	if len(repo.records) != 1 {
		t.Fatalf("expected one battle record, got %d", len(repo.records))
	}
	rec := repo.records[0]
	if rec.EnemyName != "Rust Mite" || rec.Outcome != game.OutcomeVictory || rec.XPEarned != 10 {
		t.Fatalf("unexpected record %+v", rec)
	}
	if repo.saves != 1 {
		t.Fatalf("profile should be saved exactly once, saved %d times", repo.saves)
	}

	// The finished battle no longer blocks a fresh one.
	if _, err := m.StartBattle("p1@example.com", "Rust Mite"); err != nil {
		t.Fatalf("second battle should start after exit: %v", err)
	}
}

func TestSubmitItemRequiresStock(t *testing.T) {
	repo := newMockRepo()
	m := testManager(repo, []int{1}, []int{0})

	view, err := m.StartBattle("p1@example.com", "Rust Mite")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := m.Advance(view.ID, "p1@example.com", 30); err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	_, err = m.SubmitAction(view.ID, "p1@example.com", game.ActionItem, game.ItemSmallPotion)
	if err != inventory.ErrItemMissing {
		t.Fatalf("expected ErrItemMissing, got %v", err)
	}
}

func TestRejectedItemKeepsPackSlot(t *testing.T) {
	repo := newMockRepo()
	m := testManager(repo, []int{1}, []int{0})

	inv := &inventory.Inventory{}
	if err := inv.Add(game.ItemSmallPotion); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	itemsJSON, err := inv.Encode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	profile := progression.NewProfile("p1@example.com", "P1")
	profile.ItemsJSON = itemsJSON
	if err := repo.CreateProfile(profile); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	view, err := m.StartBattle("p1@example.com", "Rust Mite")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Still in the intro: the submission must bounce without eating the potion.
	if _, err := m.SubmitAction(view.ID, "p1@example.com", game.ActionItem, game.ItemSmallPotion); err != engine.ErrNotPlayerTurn {
		t.Fatalf("expected ErrNotPlayerTurn, got %v", err)
	}
	m.mu.Lock()
	count := m.sessions[view.ID].inv.Count(game.ItemSmallPotion)
	m.mu.Unlock()
	if count != 1 {
		t.Fatalf("rejected item submission consumed the potion, count %d", count)
	}
}

func TestOverdueTurnForfeitsToGuard(t *testing.T) {
	repo := newMockRepo()
	m := testManager(repo, []int{1}, []int{0})

	view, err := m.StartBattle("p1@example.com", "Rust Mite")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := m.Advance(view.ID, "p1@example.com", 30); err != nil {
		t.Fatalf("advance failed: %v", err)
	}

	// A freshly touched session keeps its turn.
	if n := m.ForfeitOverdueTurns(time.Now()); n != 0 {
		t.Fatalf("fresh turn forfeited: %d", n)
	}

	m.mu.Lock()
	m.sessions[view.ID].lastTouch = time.Now().Add(-2 * time.Minute)
	m.mu.Unlock()

	if n := m.ForfeitOverdueTurns(time.Now()); n != 1 {
		t.Fatalf("expected one forfeited turn, got %d", n)
	}
	view, err = m.View(view.ID, "p1@example.com")
	if err != nil {
		t.Fatalf("view failed: %v", err)
	}
	if view.State != engine.StatePlayerResolving || !view.Player.Guarding {
		t.Fatalf("forfeit should leave the player guarding, state %s guarding %v", view.State, view.Player.Guarding)
	}
}

func TestGetOrCreateProfileIsIdempotent(t *testing.T) {
	repo := newMockRepo()
	m := testManager(repo, nil, nil)

	p1, err := m.GetOrCreateProfile("New@Example.com", "Neo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p1.Email != "new@example.com" || p1.Level != 1 {
		t.Fatalf("unexpected fresh profile %+v", p1)
	}
	p2, err := m.GetOrCreateProfile("new@example.com", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.creates != 1 {
		t.Fatalf("expected one creation, got %d", repo.creates)
	}
	if p2.PlayerName != "Neo" {
		t.Fatalf("second lookup should return the stored profile, got %+v", p2)
	}
}

func TestSweepExpiredDropsIdleSessions(t *testing.T) {
	repo := newMockRepo()
	m := testManager(repo, []int{1}, []int{0})

	view, err := m.StartBattle("p1@example.com", "Rust Mite")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ActiveSessions() != 1 {
		t.Fatalf("expected one live session, got %d", m.ActiveSessions())
	}

	// Not yet expired.
	if n := m.SweepExpired(time.Now(), 30*time.Minute); n != 0 {
		t.Fatalf("fresh session swept: %d", n)
	}

	m.mu.Lock()
	m.sessions[view.ID].lastTouch = time.Now().Add(-time.Hour)
	m.mu.Unlock()

	if n := m.SweepExpired(time.Now(), 30*time.Minute); n != 1 {
		t.Fatalf("expected one swept session, got %d", n)
	}
	if m.ActiveSessions() != 0 {
		t.Fatal("session map should be empty after sweep")
	}
	if _, err := m.StartBattle("p1@example.com", "Rust Mite"); err != nil {
		t.Fatalf("sweep must release the per-player slot: %v", err)
	}
}
