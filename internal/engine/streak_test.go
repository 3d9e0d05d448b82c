package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/julianstephens/motivnation/internal/models"
	"github.com/julianstephens/motivnation/internal/utils"
)

const today = "2025-03-10"

func memberWith(lastCheckIn string, current, best, xp int) models.Member {
	m := models.NewMember("m-1", "Alex", "2025-01-01")
	m.LastCheckIn = lastCheckIn
	m.CurrentStreak = current
	m.BestStreak = best
	m.XP = xp
	return m
}

func TestApplyCheckIn(t *testing.T) {
	tests := []struct {
		name       string
		member     models.Member
		xp         int
		wantStreak int
		wantBest   int
		wantXP     int
	}{
		{
			name:       "first ever check-in",
			member:     memberWith("", 0, 0, 0),
			xp:         20,
			wantStreak: 1,
			wantBest:   1,
			wantXP:     20,
		},
		{
			name:       "consecutive day extends streak",
			member:     memberWith("2025-03-09", 4, 4, 100),
			xp:         10,
			wantStreak: 5,
			wantBest:   5,
			wantXP:     110,
		},
		{
			name:       "gap resets streak",
			member:     memberWith("2025-03-05", 6, 9, 300),
			xp:         5,
			wantStreak: 1,
			wantBest:   9,
			wantXP:     305,
		},
		{
			name:       "same day does not double count",
			member:     memberWith(today, 3, 3, 50),
			xp:         40,
			wantStreak: 3,
			wantBest:   3,
			wantXP:     90,
		},
		{
			name:       "extending below best keeps best",
			member:     memberWith("2025-03-09", 2, 15, 0),
			xp:         0,
			wantStreak: 3,
			wantBest:   15,
			wantXP:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyCheckIn(tt.member, today, tt.xp)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.CurrentStreak != tt.wantStreak {
				t.Errorf("CurrentStreak = %d, want %d", got.CurrentStreak, tt.wantStreak)
			}
			if got.BestStreak != tt.wantBest {
				t.Errorf("BestStreak = %d, want %d", got.BestStreak, tt.wantBest)
			}
			if got.XP != tt.wantXP {
				t.Errorf("XP = %d, want %d", got.XP, tt.wantXP)
			}
			if got.LastCheckIn != today {
				t.Errorf("LastCheckIn = %q, want %q", got.LastCheckIn, today)
			}
		})
	}
}

func TestApplyCheckInDoesNotMutateInput(t *testing.T) {
	original := memberWith("2025-03-09", 4, 4, 100)
	original.Achievements = []string{"streak-7"}

	next, err := ApplyCheckIn(original, today, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	next.Achievements[0] = "changed"

	if original.CurrentStreak != 4 || original.XP != 100 || original.LastCheckIn != "2025-03-09" {
		t.Errorf("input member was modified: %+v", original)
	}
	if original.Achievements[0] != "streak-7" {
		t.Errorf("input achievements were modified: %v", original.Achievements)
	}
}

func TestApplyCheckInBestStreakInvariant(t *testing.T) {
	// A mix of consecutive days, same-day repeats and gaps
	offsets := []int{0, 0, 1, 2, 3, 3, 7, 8, 9, 10, 11, 30, 31}

	m := memberWith("", 0, 0, 0)
	for _, off := range offsets {
		date, err := utils.AddDays("2025-01-01", off)
		if err != nil {
			t.Fatalf("AddDays: %v", err)
		}
		m, err = ApplyCheckIn(m, date, 5)
		if err != nil {
			t.Fatalf("ApplyCheckIn(%s): %v", date, err)
		}
		if m.BestStreak < m.CurrentStreak {
			t.Fatalf("after %s: best %d < current %d", date, m.BestStreak, m.CurrentStreak)
		}
	}

	if m.BestStreak != 5 {
		t.Errorf("BestStreak = %d, want 5", m.BestStreak)
	}
	if m.CurrentStreak != 2 {
		t.Errorf("CurrentStreak = %d, want 2", m.CurrentStreak)
	}
	if m.XP != 5*len(offsets) {
		t.Errorf("XP = %d, want %d", m.XP, 5*len(offsets))
	}
}

func TestApplyCheckInErrors(t *testing.T) {
	m := memberWith("", 0, 0, 0)

	if _, err := ApplyCheckIn(m, "10/03/2025", 5); !errors.Is(err, models.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
	if _, err := ApplyCheckIn(m, today, -5); !errors.Is(err, models.ErrInvalidQuantity) {
		t.Errorf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestApplyCheckInRejectsXPOverflow(t *testing.T) {
	xp, err := ComputeXP(models.HabitHydration, 1.8e18)
	if err != nil {
		t.Fatalf("ComputeXP failed: %v", err)
	}

	first, err := ApplyCheckIn(memberWith("", 0, 0, 0), today, xp)
	if err != nil {
		t.Fatalf("first check-in failed: %v", err)
	}
	if _, err := ApplyCheckIn(first, today, xp); !errors.Is(err, models.ErrInvalidQuantity) {
		t.Errorf("second check-in error = %v, want ErrInvalidQuantity", err)
	}

	full := memberWith(today, 1, 1, math.MaxInt)
	if _, err := ApplyCheckIn(full, today, 1); !errors.Is(err, models.ErrInvalidQuantity) {
		t.Errorf("check-in at max xp error = %v, want ErrInvalidQuantity", err)
	}
	next, err := ApplyCheckIn(full, today, 0)
	if err != nil || next.XP != math.MaxInt {
		t.Errorf("zero-xp check-in at max xp = %d, %v, want %d", next.XP, err, math.MaxInt)
	}
}
