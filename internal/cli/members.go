package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/motivnation/internal/models"
	"github.com/julianstephens/motivnation/internal/progression"
	"github.com/julianstephens/motivnation/internal/storage"
	"github.com/julianstephens/motivnation/internal/storage/postgres"
)

// displayPath hides credentials in connection strings.
func displayPath(config string) string {
	if storage.DetectKind(config) == storage.KindPostgres {
		return postgres.MaskPassword(config)
	}
	return config
}

type JoinCmd struct {
	Name string `arg:"" optional:"" help:"Display name of the new member."`
}

func (c *JoinCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	name := c.Name
	if strings.TrimSpace(name) == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("What should we call you?").
					Value(&name).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return errors.New("name cannot be empty")
						}
						return nil
					}),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	member, err := ctx.Session.Join(name)
	if err != nil {
		return err
	}

	ctx.printf("✓ Welcome to MotivNation, %s!\n", member.Name)
	ctx.printf("  Member ID: %s\n", member.ID)
	ctx.println("  Log your first habit with 'motivnation log'.")
	return nil
}

type MembersCmd struct{}

func (c *MembersCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	members, err := ctx.Store.ListMembers()
	if err != nil {
		return err
	}
	if len(members) == 0 {
		ctx.println("No members yet. Join with 'motivnation join NAME'.")
		return nil
	}

	currentID, err := ctx.Store.GetCurrentMemberID()
	if err != nil {
		return err
	}

	for _, m := range members {
		marker := " "
		if m.ID == currentID {
			marker = "▶"
		}
		ctx.printf("%s %-20s %s  %4d XP  joined %s  (%s)\n",
			marker, m.Name, progression.RankFromXP(m.XP), m.XP, m.JoinDate, m.ID)
	}
	return nil
}

type SelectCmd struct {
	Member string `arg:"" help:"ID or name of the member to act as."`
}

func (c *SelectCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	member, err := ctx.Session.Select(c.Member)
	if err != nil {
		return err
	}
	ctx.printf("✓ Now logging as %s\n", member.Name)
	return nil
}

type LeaveCmd struct{}

func (c *LeaveCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	member, err := ctx.Session.Current()
	if errors.Is(err, models.ErrNoCurrentMember) {
		ctx.println("No member is selected.")
		return nil
	}
	if err != nil {
		return err
	}

	if err := ctx.Session.Leave(); err != nil {
		return fmt.Errorf("failed to clear current member: %w", err)
	}
	ctx.printf("✓ Signed out %s. Your records are kept.\n", member.Name)
	return nil
}
