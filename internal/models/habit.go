package models

import (
	"fmt"
	"strings"
)

// HabitKind is one of the fixed set of trackable activities
type HabitKind string

const (
	HabitHydration HabitKind = "hydration"
	HabitSteps     HabitKind = "steps"
	HabitWorkout   HabitKind = "workout"
	HabitSleep     HabitKind = "sleep"
)

// HabitKinds lists every supported habit in display order
var HabitKinds = []HabitKind{HabitHydration, HabitSteps, HabitWorkout, HabitSleep}

// ParseHabitKind converts user input into a HabitKind.
// Matching is case-insensitive; anything outside the set yields ErrInvalidHabit.
func ParseHabitKind(s string) (HabitKind, error) {
	kind := HabitKind(strings.ToLower(strings.TrimSpace(s)))
	if !kind.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidHabit, s)
	}
	return kind, nil
}

// Valid reports whether h is a member of the supported set
func (h HabitKind) Valid() bool {
	switch h {
	case HabitHydration, HabitSteps, HabitWorkout, HabitSleep:
		return true
	default:
		return false
	}
}

// Unit returns the quantity unit shown next to a logged amount
func (h HabitKind) Unit() string {
	switch h {
	case HabitHydration:
		return "glasses"
	case HabitSteps:
		return "steps"
	case HabitWorkout:
		return "sessions"
	case HabitSleep:
		return "hours"
	default:
		return ""
	}
}

// Emoji returns the icon shown next to the habit
func (h HabitKind) Emoji() string {
	switch h {
	case HabitHydration:
		return "💧"
	case HabitSteps:
		return "🚶"
	case HabitWorkout:
		return "🏋️"
	case HabitSleep:
		return "😴"
	default:
		return "⭐"
	}
}

// HabitLog represents one recorded activity. Logs are append-only.
type HabitLog struct {
	ID       string    `json:"id"`
	MemberID string    `json:"memberId"`
	Date     string    `json:"date"` // YYYY-MM-DD format
	Habit    HabitKind `json:"habit"`
	Quantity float64   `json:"quantity"`
	XPEarned int       `json:"xpEarned"`
	Photo    string    `json:"photo,omitempty"`
	Notes    string    `json:"notes,omitempty"`
}
