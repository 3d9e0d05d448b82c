package cli

type SeedCmd struct {
	Yes bool `help:"Replace existing records without asking." short:"y"`
}

func (c *SeedCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	members, err := ctx.Store.ListMembers()
	if err != nil {
		return err
	}

	if len(members) > 0 && !c.Yes {
		ctx.printf("⚠️  This replaces all %s and their logs with demo data.\n", plural(len(members), "member", "members"))
		ok, err := confirm("Continue?")
		if err != nil {
			return err
		}
		if !ok {
			ctx.println("Seed cancelled.")
			return nil
		}
	}

	if len(members) > 0 {
		ctx.PerformAutomaticBackup()
	}

	seeded, err := ctx.Session.SeedDemo()
	if err != nil {
		return err
	}

	ctx.printf("✓ Seeded %s:\n", plural(len(seeded), "demo member", "demo members"))
	for _, m := range seeded {
		ctx.printf("  %s (%d XP)\n", m.Name, m.XP)
	}
	ctx.println("Pick one with 'motivnation select NAME' or join as yourself.")
	return nil
}
