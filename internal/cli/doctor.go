package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/motivnation/internal/keyring"
	"github.com/julianstephens/motivnation/internal/storage"
	"github.com/julianstephens/motivnation/internal/validation"
)

type DoctorCmd struct {
	Fix bool `help:"Repair problems that have a safe automatic fix."`
}

// errSkipped marks a check that does not apply to the configured store.
var errSkipped = errors.New("skipped")

// schemaReporter is implemented by backends with a versioned schema.
type schemaReporter interface {
	SchemaStatus() (current, latest int, err error)
}

type backendHolder interface {
	Backend() storage.Backend
}

type check struct {
	name     string
	warnOnly bool
	run      func() error
}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	ctx.println("Running diagnostics...")
	ctx.println()

	reachable := false
	checks := []check{
		{name: "Store reachable", run: func() error {
			err := checkStoreReachable(ctx)
			reachable = err == nil
			return err
		}},
		{name: "Schema version", run: func() error {
			if !reachable {
				return fmt.Errorf("%w (store not reachable)", errSkipped)
			}
			return checkSchemaVersion(ctx)
		}},
		{name: "Backups present", warnOnly: true, run: func() error { return checkBackupsPresent(ctx) }},
		{name: "Record validation", run: func() error {
			if !reachable {
				return fmt.Errorf("%w (store not reachable)", errSkipped)
			}
			return cmd.checkRecords(ctx)
		}},
		{name: "OS keyring", warnOnly: true, run: checkKeyring},
		{name: "Clock/timezone", run: func() error { return checkClockTimezone(ctx) }},
	}

	hasError := false
	for _, c := range checks {
		err := c.run()
		switch {
		case err == nil:
			ctx.printf("✓ %s: OK\n", c.name)
		case errors.Is(err, errSkipped):
			ctx.printf("⊘ %s: SKIPPED\n", c.name)
			ctx.printf("   %v\n", err)
		case c.warnOnly:
			ctx.printf("⚠ %s: WARNING\n", c.name)
			ctx.printf("   %v\n", err)
		default:
			ctx.printf("❌ %s: FAIL\n", c.name)
			ctx.printf("   Error: %v\n", err)
			hasError = true
		}
	}

	ctx.println()
	if hasError {
		ctx.println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}
	if _, err := ctx.Store.ListMembers(); err != nil {
		return fmt.Errorf("failed to read members: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *Context) error {
	holder, ok := ctx.Store.(backendHolder)
	if !ok {
		return fmt.Errorf("%w (store does not expose its backend)", errSkipped)
	}
	reporter, ok := holder.Backend().(schemaReporter)
	if !ok {
		return fmt.Errorf("%w (JSON stores have no schema)", errSkipped)
	}

	current, latest, err := reporter.SchemaStatus()
	if err != nil {
		return err
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", current, latest)
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	mgr, err := ctx.backupManager()
	if err != nil {
		return fmt.Errorf("%w (%v)", errSkipped, err)
	}
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found, consider creating one with 'motivnation backup create'")
	}
	return nil
}

func (cmd *DoctorCmd) checkRecords(ctx *Context) error {
	members, err := ctx.Store.ListMembers()
	if err != nil {
		return err
	}
	logs, err := ctx.Store.ListLogs()
	if err != nil {
		return err
	}

	validator := validation.New()
	result := validator.ValidateRecords(members, logs)
	if !result.HasConflicts() {
		return nil
	}

	if cmd.Fix {
		fixed, actions := validation.AutoFixMembers(result.Conflicts, members)
		if len(actions) > 0 {
			ctx.PerformAutomaticBackup()
			if err := ctx.Store.ReplaceAll(fixed, logs); err != nil {
				return fmt.Errorf("failed to save repaired members: %w", err)
			}
			for _, a := range actions {
				ctx.printf("   🔧 %s\n", a.Action)
			}
			result = validator.ValidateRecords(fixed, logs)
			if !result.HasConflicts() {
				return nil
			}
		}
	}

	return fmt.Errorf("%s", result.FormatReport())
}

func checkKeyring() error {
	available, stored := keyring.Status()
	if !available {
		return fmt.Errorf("OS keyring is not available, pass PostgreSQL connection strings with --config or the environment")
	}
	if !stored {
		return fmt.Errorf("%w (no connection string stored)", errSkipped)
	}
	return nil
}

func checkClockTimezone(ctx *Context) error {
	now := time.Now()
	if ctx.Session.Now != nil {
		now = ctx.Session.Now()
	}

	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	loc := ctx.Session.Location
	if loc == nil {
		loc = time.Local
	}
	if loc == time.UTC {
		ctx.println("   Note: timezone is UTC, days roll over at UTC midnight")
	}
	return nil
}
