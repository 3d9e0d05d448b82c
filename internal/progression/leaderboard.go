package progression

import (
	"cmp"
	"slices"

	"github.com/julianstephens/motivnation/internal/models"
)

// SortLeaderboard returns members ordered by XP, highest first.
// Members with equal XP keep their input order. The input slice is not reordered.
func SortLeaderboard(members []models.Member) []models.Member {
	sorted := slices.Clone(members)
	slices.SortStableFunc(sorted, func(a, b models.Member) int {
		return cmp.Compare(b.XP, a.XP)
	})
	return sorted
}

// Standing is one leaderboard row. Member is the stored record, untouched;
// DisplayStreak and Achievements are the as-of-today projections.
type Standing struct {
	Position      int
	Member        models.Member
	DisplayStreak int
	Achievements  []string
	Rank          Rank
}

// BuildLeaderboard computes the leaderboard as of date. logs may be the full log
// history; only logs dated date are consulted for the streak projection.
func BuildLeaderboard(members []models.Member, logs []models.HabitLog, date string, catalog []models.Achievement) ([]Standing, error) {
	var todayLogs []models.HabitLog
	for _, log := range logs {
		if log.Date == date {
			todayLogs = append(todayLogs, log)
		}
	}

	sorted := SortLeaderboard(members)
	standings := make([]Standing, 0, len(sorted))
	for i, m := range sorted {
		streak, err := DisplayStreak(m, todayLogs, date)
		if err != nil {
			return nil, err
		}
		standings = append(standings, Standing{
			Position:      i + 1,
			Member:        m.Clone(),
			DisplayStreak: streak,
			Achievements:  EvaluateAchievements(m, catalog),
			Rank:          RankFromXP(m.XP),
		})
	}
	return standings, nil
}
