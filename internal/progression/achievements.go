package progression

import (
	"slices"

	"github.com/julianstephens/motivnation/internal/models"
)

// Qualifies reports whether member meets the threshold of a single achievement
func Qualifies(member models.Member, a models.Achievement) bool {
	switch a.Type {
	case models.AchievementStreak:
		return member.BestStreak >= a.Requirement
	case models.AchievementXP:
		return member.XP >= a.Requirement
	default:
		return false
	}
}

// EvaluateAchievements returns the member's unlocked ids followed by any newly
// qualified catalog ids. Already unlocked ids are never dropped, even if they no
// longer appear in the catalog, and no id appears twice.
func EvaluateAchievements(member models.Member, catalog []models.Achievement) []string {
	unlocked := make([]string, 0, len(member.Achievements)+len(catalog))
	for _, id := range member.Achievements {
		if !slices.Contains(unlocked, id) {
			unlocked = append(unlocked, id)
		}
	}

	for _, a := range catalog {
		if slices.Contains(unlocked, a.ID) {
			continue
		}
		if Qualifies(member, a) {
			unlocked = append(unlocked, a.ID)
		}
	}

	return unlocked
}

// NewlyUnlocked returns the ids present in after but not in before, in order
func NewlyUnlocked(before, after []string) []string {
	var added []string
	for _, id := range after {
		if !slices.Contains(before, id) {
			added = append(added, id)
		}
	}
	return added
}

// Progress describes how close a member is to one achievement
type Progress struct {
	Achievement models.Achievement
	Current     int
	Unlocked    bool
}

// Percent returns completion in the range [0, 100]
func (p Progress) Percent() int {
	if p.Unlocked || p.Achievement.Requirement <= 0 {
		return 100
	}
	pct := p.Current * 100 / p.Achievement.Requirement
	return max(0, min(pct, 100))
}

// AchievementProgress reports per catalog entry where member stands
func AchievementProgress(member models.Member, catalog []models.Achievement) []Progress {
	progress := make([]Progress, 0, len(catalog))
	for _, a := range catalog {
		var current int
		switch a.Type {
		case models.AchievementStreak:
			current = member.BestStreak
		case models.AchievementXP:
			current = member.XP
		}
		progress = append(progress, Progress{
			Achievement: a,
			Current:     current,
			Unlocked:    member.HasAchievement(a.ID) || Qualifies(member, a),
		})
	}
	return progress
}
