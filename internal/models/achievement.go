package models

// AchievementType discriminates which member stat an achievement is measured against
type AchievementType string

const (
	AchievementStreak AchievementType = "streak"
	AchievementXP     AchievementType = "xp"
)

// Achievement is a static catalog entry. Members only store unlocked ids.
type Achievement struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Requirement int             `json:"requirement"`
	Type        AchievementType `json:"type"`
}

// DefaultAchievements is the built-in catalog
var DefaultAchievements = []Achievement{
	{ID: "streak-7", Name: "7-Day Warrior", Description: "7 days in a row", Icon: "⭐", Requirement: 7, Type: AchievementStreak},
	{ID: "streak-30", Name: "30-Day Champion", Description: "30 days in a row", Icon: "🏆", Requirement: 30, Type: AchievementStreak},
	{ID: "streak-50", Name: "50-Day Legend", Description: "50 days in a row", Icon: "💯", Requirement: 50, Type: AchievementStreak},
	{ID: "xp-300", Name: "XP Master", Description: "300+ total XP", Icon: "💪", Requirement: 300, Type: AchievementXP},
}

// FindAchievement looks up a catalog entry by id
func FindAchievement(catalog []Achievement, id string) (Achievement, bool) {
	for _, a := range catalog {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
