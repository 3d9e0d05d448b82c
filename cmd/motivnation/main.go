package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/motivnation/internal/cli"
	"github.com/julianstephens/motivnation/internal/constants"
	apperrors "github.com/julianstephens/motivnation/internal/errors"
	"github.com/julianstephens/motivnation/internal/keyring"
	"github.com/julianstephens/motivnation/internal/logger"
	"github.com/julianstephens/motivnation/internal/storage"
	"github.com/julianstephens/motivnation/internal/storage/postgres"
	"github.com/julianstephens/motivnation/internal/tracker"
	"github.com/julianstephens/motivnation/internal/utils"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"Store path (.db or .json) or PostgreSQL connection string." env:"MOTIVNATION_CONFIG"`
	Timezone string `help:"IANA timezone used to decide what day it is." env:"MOTIVNATION_TZ" default:"Local"`
	Debug    bool   `help:"Enable debug logging to stderr." env:"MOTIVNATION_DEBUG"`
	LogLevel string `help:"Minimum level written to the log file (debug, info, warn, error)." env:"MOTIVNATION_LOG_LEVEL" default:"warn"`

	Init        cli.InitCmd        `cmd:"" help:"Initialize motivnation storage."`
	Tui         cli.TuiCmd         `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Join        cli.JoinCmd        `cmd:"" help:"Join the community as a new member."`
	Members     cli.MembersCmd     `cmd:"" help:"List members."`
	Select      cli.SelectCmd      `cmd:"" help:"Choose who is logging."`
	Leave       cli.LeaveCmd       `cmd:"" help:"Clear the current member."`
	Log         cli.LogCmd         `cmd:"" help:"Log a habit."`
	Status      cli.StatusCmd      `cmd:"" help:"Show today's progress."`
	Leaderboard cli.LeaderboardCmd `cmd:"" help:"Show the leaderboard."`
	Rewards     cli.RewardsCmd     `cmd:"" help:"Show achievement progress."`
	Community   cli.CommunityCmd   `cmd:"" help:"Show the community photo feed."`
	Seed        cli.SeedCmd        `cmd:"" help:"Replace all records with demo data."`
	Doctor      cli.DoctorCmd      `cmd:"" help:"Run health checks on the store."`
	Backup      struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup now."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage backups of local stores."`
	Keyring struct {
		Set    cli.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string."`
		Get    cli.KeyringGetCmd    `cmd:"" help:"Show the stored connection string."`
		Delete cli.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status cli.KeyringStatusCmd `cmd:"" help:"Check keyring availability."`
	} `cmd:"" help:"Manage the connection string in the OS keyring."`
}

// resolveConfig picks the store location: the --config flag, then
// MOTIVNATION_DB_CONNECTION, then the keyring, then the default path.
func resolveConfig(flag string, getenv func(string) string, fromKeyring func() (string, error)) (config, source string) {
	if flag != "" {
		return flag, "flag"
	}
	if conn := getenv(constants.EnvDBConnection); conn != "" {
		return conn, "env"
	}
	conn, err := fromKeyring()
	switch {
	case err == nil && conn != "":
		return conn, "keyring"
	case err != nil && !errors.Is(err, keyring.ErrNotFound):
		logger.Debug("Keyring lookup failed", "error", err)
	}
	return constants.DefaultConfigPath, "default"
}

// logDir keeps logs next to local stores and in the default directory otherwise.
func logDir(config string) (string, error) {
	if storage.DetectKind(config) == storage.KindPostgres {
		config = constants.DefaultConfigPath
	}
	path, err := storage.ExpandPath(config)
	if err != nil {
		return "", err
	}
	return filepath.Dir(path), nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit tracking with streaks, XP and a community leaderboard"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	config, source := resolveConfig(CLI.Config, os.Getenv, keyring.GetConnectionString)
	if source == "flag" && storage.DetectKind(config) == storage.KindPostgres {
		if _, err := postgres.ValidateConnString(config); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				err = fmt.Errorf("%w, store the connection string with '%s keyring set' or use %s instead", err, constants.AppName, constants.EnvDBConnection)
			}
			apperrors.Fatal(err)
		}
	}

	dir, err := logDir(config)
	if err != nil {
		apperrors.Fatal(err)
	}
	kind := storage.DetectKind(config)
	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: dir,
		Level:     CLI.LogLevel,
		Store:     string(kind),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}
	if l := logger.With("command", ctx.Command()); l != nil {
		logger.Logger = l
	}
	logger.Debug("Resolved store", "source", source, "kind", kind)

	loc, err := utils.LoadLocation(CLI.Timezone)
	if err != nil {
		apperrors.Fatal(err)
	}

	store, err := storage.Open(config)
	if err != nil {
		apperrors.Fatal(err)
	}
	defer store.Close()

	appCtx := &cli.Context{
		Store:   store,
		Session: tracker.New(store, loc),
		Out:     os.Stdout,
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		apperrors.Fatal(err)
	}
}
