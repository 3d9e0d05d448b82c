package models

import (
	"errors"
	"testing"
)

func TestParseHabitKind(t *testing.T) {
	tests := []struct {
		input   string
		want    HabitKind
		wantErr bool
	}{
		{"hydration", HabitHydration, false},
		{"Steps", HabitSteps, false},
		{"  WORKOUT ", HabitWorkout, false},
		{"sleep", HabitSleep, false},
		{"meditation", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHabitKind(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidHabit) {
					t.Fatalf("expected ErrInvalidHabit, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseHabitKind(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHabitKindUnits(t *testing.T) {
	for _, kind := range HabitKinds {
		if kind.Unit() == "" {
			t.Errorf("habit %s has no unit", kind)
		}
	}
	if HabitKind("unknown").Unit() != "" {
		t.Error("unknown habit should have no unit")
	}
}

func TestMemberCloneDoesNotShareAchievements(t *testing.T) {
	m := NewMember("1", "Alex", "2025-01-01")
	m.Achievements = append(m.Achievements, "streak-7")

	c := m.Clone()
	c.Achievements[0] = "xp-300"

	if m.Achievements[0] != "streak-7" {
		t.Errorf("clone mutated original achievements: %v", m.Achievements)
	}
}

func TestHabitEmoji(t *testing.T) {
	seen := map[string]HabitKind{}
	for _, h := range []HabitKind{HabitHydration, HabitSteps, HabitWorkout, HabitSleep} {
		e := h.Emoji()
		if e == "" {
			t.Errorf("%s has no emoji", h)
		}
		if prev, ok := seen[e]; ok {
			t.Errorf("%s and %s share emoji %q", prev, h, e)
		}
		seen[e] = h
	}
}

func TestMemberHasAchievement(t *testing.T) {
	m := NewMember("m-1", "Alex", "2025-01-01")
	if m.HasAchievement("streak-7") {
		t.Error("new member should have no achievements")
	}
	m.Achievements = append(m.Achievements, "streak-7")
	if !m.HasAchievement("streak-7") || m.HasAchievement("xp-300") {
		t.Errorf("HasAchievement mismatch for %v", m.Achievements)
	}
}
