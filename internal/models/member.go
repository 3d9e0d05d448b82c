package models

import "slices"

// Member is a participant. XP only grows, and BestStreak never drops below CurrentStreak.
type Member struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	XP            int      `json:"xp"`
	CurrentStreak int      `json:"currentStreak"`
	BestStreak    int      `json:"bestStreak"`
	LastCheckIn   string   `json:"lastCheckIn"` // YYYY-MM-DD, empty if never logged
	Achievements  []string `json:"achievements"`
	JoinDate      string   `json:"joinDate"` // YYYY-MM-DD format
}

// NewMember returns a freshly joined member with zeroed progress
func NewMember(id, name, joinDate string) Member {
	return Member{
		ID:           id,
		Name:         name,
		Achievements: []string{},
		JoinDate:     joinDate,
	}
}

// Clone returns a copy that shares no slices with m
func (m Member) Clone() Member {
	c := m
	c.Achievements = slices.Clone(m.Achievements)
	if c.Achievements == nil {
		c.Achievements = []string{}
	}
	return c
}

// HasAchievement reports whether id is among the member's unlocked achievements
func (m Member) HasAchievement(id string) bool {
	return slices.Contains(m.Achievements, id)
}
