// Package engine turns logged activities into XP and streak updates.
// Everything here is pure: no storage, no clock.
package engine

import (
	"fmt"
	"math"

	"github.com/julianstephens/motivnation/internal/models"
)

const (
	HydrationXPPerGlass   = 5
	StepsXPPerThousand    = 5
	WorkoutXPPerSession   = 20
	SleepXPPerNight       = 10
	SleepThresholdHours   = 7
	stepsPerAwardedBucket = 1000
)

// maxXP is the largest award that still fits an int.
const maxXP = float64(math.MaxInt)

func floorXP(habit models.HabitKind, quantity, xp float64) (int, error) {
	xp = math.Floor(xp)
	if xp >= maxXP {
		return 0, fmt.Errorf("%w: %v %s is too large", models.ErrInvalidQuantity, quantity, habit.Unit())
	}
	return int(xp), nil
}

// ComputeXP returns the experience points earned for quantity units of habit.
// Fractional results are floored, so the return value is always a non-negative integer.
// Quantities whose award would not fit an int are rejected with ErrInvalidQuantity.
func ComputeXP(habit models.HabitKind, quantity float64) (int, error) {
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) || quantity < 0 {
		return 0, fmt.Errorf("%w: %v", models.ErrInvalidQuantity, quantity)
	}

	switch habit {
	case models.HabitHydration:
		return floorXP(habit, quantity, quantity*HydrationXPPerGlass)
	case models.HabitSteps:
		return floorXP(habit, quantity, math.Floor(quantity/stepsPerAwardedBucket)*StepsXPPerThousand)
	case models.HabitWorkout:
		return floorXP(habit, quantity, quantity*WorkoutXPPerSession)
	case models.HabitSleep:
		if quantity >= SleepThresholdHours {
			return SleepXPPerNight, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("%w: %q", models.ErrInvalidHabit, habit)
	}
}
