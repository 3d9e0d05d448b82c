package tracker

import (
	"fmt"

	"github.com/julianstephens/motivnation/internal/engine"
	"github.com/julianstephens/motivnation/internal/logger"
	"github.com/julianstephens/motivnation/internal/models"
	"github.com/julianstephens/motivnation/internal/utils"
)

type demoMember struct {
	name         string
	xp           int
	streak       int
	best         int
	checkedInAgo int
	achievements []string
	joinDate     string
}

var demoMembers = []demoMember{
	{"Alex Johnson", 350, 12, 15, 0, []string{"streak-7", "xp-300"}, "2024-12-01"},
	{"Sam Chen", 280, 8, 12, 0, []string{"streak-7"}, "2024-12-05"},
	{"Jordan Taylor", 150, 5, 8, 1, []string{}, "2024-12-10"},
}

type demoLog struct {
	member   int
	habit    models.HabitKind
	quantity float64
}

var demoLogs = []demoLog{
	{0, models.HabitHydration, 8},
	{1, models.HabitWorkout, 1},
}

// SeedDemo replaces every stored member and log with a small demo
// community dated relative to today, and clears the current member.
func (s *Session) SeedDemo() ([]models.Member, error) {
	today := s.Today()

	members := make([]models.Member, 0, len(demoMembers))
	for _, d := range demoMembers {
		lastCheckIn, err := utils.AddDays(today, -d.checkedInAgo)
		if err != nil {
			return nil, err
		}
		m := models.NewMember(s.newID(), d.name, d.joinDate)
		m.XP = d.xp
		m.CurrentStreak = d.streak
		m.BestStreak = d.best
		m.LastCheckIn = lastCheckIn
		m.Achievements = append(m.Achievements, d.achievements...)
		members = append(members, m)
	}

	logs := make([]models.HabitLog, 0, len(demoLogs))
	for _, d := range demoLogs {
		xp, err := engine.ComputeXP(d.habit, d.quantity)
		if err != nil {
			return nil, err
		}
		logs = append(logs, models.HabitLog{
			ID:       s.newID(),
			MemberID: members[d.member].ID,
			Date:     today,
			Habit:    d.habit,
			Quantity: d.quantity,
			XPEarned: xp,
		})
	}

	if err := s.Store.ReplaceAll(members, logs); err != nil {
		return nil, fmt.Errorf("failed to seed demo data: %w", err)
	}
	if err := s.Store.SetCurrentMemberID(""); err != nil {
		return nil, fmt.Errorf("failed to clear current member: %w", err)
	}

	logger.Info("Seeded demo data", "members", len(members), "logs", len(logs))
	return members, nil
}
