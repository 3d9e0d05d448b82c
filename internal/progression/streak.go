// Package progression derives read-only views from members and their logs:
// lapse-aware streaks, achievements, rank tiers, the leaderboard and the photo feed.
// Nothing in this package writes to storage.
package progression

import (
	"github.com/julianstephens/motivnation/internal/models"
	"github.com/julianstephens/motivnation/internal/utils"
)

// DisplayStreak returns the streak to show for member as of date.
// The stored CurrentStreak only changes on submission, so a member who stopped logging
// still carries their old streak; this projection reports 0 once a full day has passed
// without a check-in. todayLogs may contain logs of other members or other dates.
func DisplayStreak(member models.Member, todayLogs []models.HabitLog, date string) (int, error) {
	yesterday, err := utils.PreviousDay(date)
	if err != nil {
		return 0, err
	}

	if member.LastCheckIn == date || member.LastCheckIn == yesterday {
		return member.CurrentStreak, nil
	}
	for _, log := range todayLogs {
		if log.MemberID == member.ID && log.Date == date {
			return member.CurrentStreak, nil
		}
	}
	return 0, nil
}
