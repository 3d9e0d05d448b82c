package progression

import (
	"slices"
	"testing"

	"github.com/julianstephens/motivnation/internal/models"
)

func TestEvaluateAchievements(t *testing.T) {
	catalog := models.DefaultAchievements

	tests := []struct {
		name     string
		best     int
		xp       int
		existing []string
		want     []string
	}{
		{"nothing qualifies", 3, 100, nil, []string{}},
		{"streak threshold is inclusive", 7, 0, nil, []string{"streak-7"}},
		{"xp threshold is inclusive", 0, 300, nil, []string{"xp-300"}},
		{"several at once in catalog order", 30, 350, nil, []string{"streak-7", "streak-30", "xp-300"}},
		{"existing kept first", 7, 300, []string{"xp-300"}, []string{"xp-300", "streak-7"}},
		{"existing kept even when no longer qualifying", 0, 0, []string{"streak-50"}, []string{"streak-50"}},
		{"unknown ids survive", 0, 0, []string{"legacy-badge"}, []string{"legacy-badge"}},
		{"duplicates collapsed", 7, 0, []string{"streak-7", "streak-7"}, []string{"streak-7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := models.NewMember("m-1", "Alex", "2025-01-01")
			m.BestStreak = tt.best
			m.XP = tt.xp
			if tt.existing != nil {
				m.Achievements = tt.existing
			}

			got := EvaluateAchievements(m, catalog)
			if !slices.Equal(got, tt.want) {
				t.Errorf("EvaluateAchievements = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateAchievementsMonotonic(t *testing.T) {
	m := models.NewMember("m-1", "Alex", "2025-01-01")

	// XP and best streak only ever grow
	steps := []struct{ xp, best int }{{0, 0}, {50, 3}, {300, 7}, {310, 7}, {900, 31}, {900, 31}}
	var previous []string
	for _, s := range steps {
		m.XP = s.xp
		m.BestStreak = s.best
		m.Achievements = EvaluateAchievements(m, models.DefaultAchievements)

		for _, id := range previous {
			if !m.HasAchievement(id) {
				t.Fatalf("achievement %s was revoked at xp=%d best=%d", id, s.xp, s.best)
			}
		}
		previous = slices.Clone(m.Achievements)
	}

	again := EvaluateAchievements(m, models.DefaultAchievements)
	if !slices.Equal(again, m.Achievements) {
		t.Errorf("re-evaluation changed set: %v -> %v", m.Achievements, again)
	}
}

func TestNewlyUnlocked(t *testing.T) {
	got := NewlyUnlocked([]string{"streak-7"}, []string{"streak-7", "xp-300"})
	if !slices.Equal(got, []string{"xp-300"}) {
		t.Errorf("NewlyUnlocked = %v", got)
	}
	if got := NewlyUnlocked([]string{"a"}, []string{"a"}); len(got) != 0 {
		t.Errorf("expected nothing new, got %v", got)
	}
}

func TestAchievementProgress(t *testing.T) {
	m := models.NewMember("m-1", "Alex", "2025-01-01")
	m.BestStreak = 14
	m.XP = 150

	progress := AchievementProgress(m, models.DefaultAchievements)
	if len(progress) != len(models.DefaultAchievements) {
		t.Fatalf("got %d entries, want %d", len(progress), len(models.DefaultAchievements))
	}

	byID := map[string]Progress{}
	for _, p := range progress {
		byID[p.Achievement.ID] = p
	}

	if !byID["streak-7"].Unlocked || byID["streak-7"].Percent() != 100 {
		t.Errorf("streak-7 should be complete: %+v", byID["streak-7"])
	}
	if p := byID["streak-30"]; p.Unlocked || p.Current != 14 || p.Percent() != 46 {
		t.Errorf("streak-30 progress wrong: %+v (percent %d)", p, p.Percent())
	}
	if p := byID["xp-300"]; p.Unlocked || p.Percent() != 50 {
		t.Errorf("xp-300 progress wrong: %+v (percent %d)", p, p.Percent())
	}

	// Corrupt stored XP must not push progress below zero.
	m.XP = -30
	for _, p := range AchievementProgress(m, models.DefaultAchievements) {
		if p.Achievement.ID == "xp-300" && p.Percent() != 0 {
			t.Errorf("xp-300 with negative xp: percent = %d, want 0", p.Percent())
		}
	}
}
