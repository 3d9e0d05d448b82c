package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/motivnation/internal/models"
	"github.com/julianstephens/motivnation/internal/progression"
	"github.com/julianstephens/motivnation/internal/tracker"
)

type LogCmd struct {
	Member      string `help:"ID or name of the member logging (defaults to the current member)."`
	Habit       string `help:"Habit to log: hydration, steps, workout or sleep." short:"H"`
	Quantity    string `help:"Amount done, in the habit's unit." short:"q"`
	Photo       string `help:"Photo to share with the community feed." short:"p"`
	Notes       string `help:"Optional notes." short:"n"`
	Interactive bool   `help:"Fill in the log with a form." short:"i"`
}

func habitOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(models.HabitKinds))
	for _, h := range models.HabitKinds {
		label := fmt.Sprintf("%s %s (%s)", h.Emoji(), h, h.Unit())
		opts = append(opts, huh.NewOption(label, string(h)))
	}
	return opts
}

func validateQuantity(s string) error {
	q, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || q < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

func (c *LogCmd) runForm() error {
	if c.Habit == "" {
		c.Habit = string(models.HabitHydration)
	}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Habit").
				Options(habitOptions()...).
				Value(&c.Habit),
			huh.NewInput().
				Title("Quantity").
				Value(&c.Quantity).
				Validate(validateQuantity),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Photo").
				Description("Optional. Logs with a photo appear in the community feed.").
				Value(&c.Photo),
			huh.NewText().
				Title("Notes").
				Value(&c.Notes),
		),
	)
	return form.Run()
}

func (c *LogCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	member, err := ctx.resolveMember(c.Member)
	if err != nil {
		return err
	}

	if c.Interactive {
		if err := c.runForm(); err != nil {
			return err
		}
	}

	result, err := ctx.Session.SubmitLog(tracker.Submission{
		MemberID: member.ID,
		Habit:    c.Habit,
		Quantity: c.Quantity,
		Photo:    c.Photo,
		Notes:    c.Notes,
	})
	if err != nil {
		return err
	}

	printResult(ctx, member, result)
	return nil
}

func printResult(ctx *Context, before models.Member, result tracker.Result) {
	l := result.Log
	ctx.printf("✓ Logged %g %s of %s %s (+%d XP)\n", l.Quantity, l.Habit.Unit(), l.Habit.Emoji(), l.Habit, l.XPEarned)
	ctx.printf("🔥 Streak: %s (best %d)\n", plural(result.Member.CurrentStreak, "day", "days"), result.Member.BestStreak)
	ctx.printf("⚡ Total XP: %d\n", result.Member.XP)

	oldRank := progression.RankFromXP(before.XP)
	newRank := progression.RankFromXP(result.Member.XP)
	if oldRank != newRank {
		ctx.printf("🎉 Rank up: %s → %s\n", oldRank, newRank)
	}
	for _, a := range result.NewAchievements {
		ctx.printf("🏅 Achievement unlocked: %s %s (%s)\n", a.Icon, a.Name, a.Description)
	}
}
