package cli

import (
	"strings"

	"github.com/julianstephens/motivnation/internal/models"
	"github.com/julianstephens/motivnation/internal/tui/components/leaderboard"
	"github.com/julianstephens/motivnation/internal/utils"
)

type StatusCmd struct {
	Member string `arg:"" optional:"" help:"ID or name of the member (defaults to the current member)."`
}

func (c *StatusCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	member, err := ctx.resolveMember(c.Member)
	if err != nil {
		return err
	}
	st, err := ctx.Session.Status(member.ID)
	if err != nil {
		return err
	}

	ctx.printf("%s  %s\n", st.Member.Name, st.Rank)
	ctx.printf("⚡ %d XP   🔥 %s (best %d)\n", st.Member.XP, plural(st.DisplayStreak, "day", "days"), st.Member.BestStreak)

	if st.LoggedToday() {
		ctx.printf("✅ Logged today: %s, +%d XP\n", plural(len(st.TodayLogs), "habit", "habits"), st.XPToday())
		for _, l := range st.TodayLogs {
			ctx.printf("   %s %g %s\n", l.Habit.Emoji(), l.Quantity, l.Habit.Unit())
		}
	} else {
		ctx.printf("⏰ %s left to log today (%s)\n", utils.FormatCountdown(st.UntilMidnight), st.Date)
	}

	if len(st.Member.Achievements) > 0 {
		var icons []string
		for _, id := range st.Member.Achievements {
			if a, ok := models.FindAchievement(ctx.Session.Catalog, id); ok {
				icons = append(icons, a.Icon+" "+a.Name)
			}
		}
		ctx.printf("🏅 %s\n", strings.Join(icons, ", "))
	}
	return nil
}

type LeaderboardCmd struct{}

func (c *LeaderboardCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	standings, err := ctx.Session.Leaderboard()
	if err != nil {
		return err
	}
	if len(standings) == 0 {
		ctx.println("The leaderboard is empty. Join with 'motivnation join NAME'.")
		return nil
	}

	for _, s := range standings {
		ctx.printf("%4s  %-20s %-10s %5d XP  🔥 %-3d %s\n",
			leaderboard.Position(s.Position), s.Member.Name, s.Rank, s.Member.XP, s.DisplayStreak,
			leaderboard.Badges(s.Achievements, ctx.Session.Catalog))
	}
	return nil
}

type RewardsCmd struct {
	Member string `arg:"" optional:"" help:"ID or name of the member (defaults to the current member)."`
}

const progressWidth = 20

func progressBar(pct int) string {
	filled := max(0, min(pct, 100)) * progressWidth / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", progressWidth-filled)
}

func (c *RewardsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	member, err := ctx.resolveMember(c.Member)
	if err != nil {
		return err
	}
	progress, err := ctx.Session.Rewards(member.ID)
	if err != nil {
		return err
	}

	ctx.printf("Rewards for %s\n\n", member.Name)
	for _, p := range progress {
		state := "🔒"
		if p.Unlocked {
			state = "✅"
		}
		ctx.printf("%s %s %-16s %s %3d%%  %d/%d  %s\n",
			state, p.Achievement.Icon, p.Achievement.Name, progressBar(p.Percent()), p.Percent(),
			min(p.Current, p.Achievement.Requirement), p.Achievement.Requirement, p.Achievement.Description)
	}
	return nil
}

type CommunityCmd struct {
	Limit int `help:"Show at most this many posts (0 for all)." default:"20"`
}

func (c *CommunityCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	feed, err := ctx.Session.Feed()
	if err != nil {
		return err
	}
	if len(feed) == 0 {
		ctx.println("No photos shared yet. Add --photo when logging to show up here.")
		return nil
	}

	if c.Limit > 0 && len(feed) > c.Limit {
		feed = feed[:c.Limit]
	}
	for _, item := range feed {
		l := item.Log
		ctx.printf("%s  %s %s %g %s  +%d XP\n", l.Date, l.Habit.Emoji(), item.MemberName, l.Quantity, l.Habit.Unit(), l.XPEarned)
		ctx.printf("    📷 %s\n", l.Photo)
		if l.Notes != "" {
			ctx.printf("    %s\n", l.Notes)
		}
	}
	return nil
}
