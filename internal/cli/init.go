package cli

type InitCmd struct {
	Seed bool `help:"Load the demo community after initializing."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.printf("Initialized motivnation storage at: %s\n", displayPath(ctx.Store.GetConfigPath()))

	if c.Seed {
		members, err := ctx.Session.SeedDemo()
		if err != nil {
			return err
		}
		ctx.printf("Seeded %s of demo data.\n", plural(len(members), "member", "members"))
	}
	return nil
}
