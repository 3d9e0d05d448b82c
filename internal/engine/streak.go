package engine

import (
	"fmt"
	"math"

	"github.com/julianstephens/motivnation/internal/models"
	"github.com/julianstephens/motivnation/internal/utils"
)

// ApplyCheckIn returns the member state after a log worth xpEarned is submitted on date.
// The input member is not modified.
//
// Streak rules: a second check-in on the same day leaves the streak alone, a check-in
// the day after the previous one extends it, and anything else starts a new streak of 1.
func ApplyCheckIn(member models.Member, date string, xpEarned int) (models.Member, error) {
	if xpEarned < 0 {
		return models.Member{}, fmt.Errorf("%w: xp earned must be non-negative, got %d", models.ErrInvalidQuantity, xpEarned)
	}
	if member.XP > math.MaxInt-xpEarned {
		return models.Member{}, fmt.Errorf("%w: %d more xp would overflow a total of %d", models.ErrInvalidQuantity, xpEarned, member.XP)
	}
	yesterday, err := utils.PreviousDay(date)
	if err != nil {
		return models.Member{}, err
	}

	next := member.Clone()
	next.XP += xpEarned

	switch next.LastCheckIn {
	case date:
		// already checked in today
	case yesterday:
		next.CurrentStreak++
	default:
		next.CurrentStreak = 1
	}

	next.LastCheckIn = date
	next.BestStreak = max(next.BestStreak, next.CurrentStreak)

	return next, nil
}
