package progression

import "testing"

func TestLevelForXP(t *testing.T) {
	cases := []struct{ xp, want int }{
		{0, 1}, {29, 1}, {30, 2}, {79, 2}, {80, 3}, {2000, 10}, {99999, 10},
	}
	for _, c := range cases {
		if got := LevelForXP(c.xp); got != c.want {
			t.Fatalf("LevelForXP(%d) = %d, want %d", c.xp, got, c.want)
		}
	}
}

func TestAddXPLevelsUpAndFullHeals(t *testing.T) {
	p := NewProfile("a@b.c", "A")
	p.CurrentHitPoints = 10
	gained := AddXP(p, 30)
	if gained != 1 || p.Level != 2 {
		t.Fatalf("expected one level gained, got %d (level %d)", gained, p.Level)
	}
	if p.CurrentHitPoints != p.MaxHitPoints {
		t.Fatalf("level up must fully heal: %d/%d", p.CurrentHitPoints, p.MaxHitPoints)
	}
	if p.MaxHitPoints != 58 {
		t.Fatalf("expected 58 max HP at level 2, got %d", p.MaxHitPoints)
	}
}

func TestAddXPMultipleLevelsAtOnce(t *testing.T) {
	p := NewProfile("a@b.c", "A")
	if gained := AddXP(p, 160); gained != 3 || p.Level != 4 {
		t.Fatalf("expected 3 levels from 160 XP, got %d (level %d)", gained, p.Level)
	}
}

func TestXPSaturates(t *testing.T) {
	p := NewProfile("a@b.c", "A")
	AddXP(p, 1000000)
	if p.XP != 2000 || p.Level != 10 {
		t.Fatalf("expected saturation at 2000 XP / level 10, got %d / %d", p.XP, p.Level)
	}
	if gained := AddXP(p, 50); gained != 0 {
		t.Fatalf("no levels past the cap, got %d", gained)
	}
}

func TestApplyDefeatPenalty(t *testing.T) {
	p := NewProfile("a@b.c", "A")
	p.CurrentHitPoints = 40
	ApplyDefeat(p)
	if p.CurrentHitPoints != 30 {
		t.Fatalf("expected 30 HP after defeat, got %d", p.CurrentHitPoints)
	}
	p.CurrentHitPoints = 1
	ApplyDefeat(p)
	if p.CurrentHitPoints != 1 {
		t.Fatalf("defeat must never drop HP to zero, got %d", p.CurrentHitPoints)
	}
	if p.DefeatStreak != 2 || p.WinStreak != 0 {
		t.Fatalf("streaks not tracked: %+v", p)
	}
}

func TestAssistAttackPenalty(t *testing.T) {
	p := NewProfile("a@b.c", "A")
	if AssistAttackPenalty(p, 16) != 0 {
		t.Fatalf("no assist without a streak")
	}
	p.DefeatStreak = 2
	if AssistAttackPenalty(p, 16) != 2 {
		t.Fatalf("expected 1/8 attack shaved")
	}
}

func TestApplyVictoryResetsDefeatStreak(t *testing.T) {
	p := NewProfile("a@b.c", "A")
	p.DefeatStreak = 3
	ApplyVictory(p, 25, 25)
	if p.DefeatStreak != 0 || p.WinStreak != 1 || p.Wins != 1 {
		t.Fatalf("victory bookkeeping wrong: %+v", p)
	}
	if p.Credits != 25 {
		t.Fatalf("expected 25 credits, got %d", p.Credits)
	}
}
