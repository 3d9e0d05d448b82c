package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/motivnation/internal/backup"
	"github.com/julianstephens/motivnation/internal/logger"
	"github.com/julianstephens/motivnation/internal/models"
	"github.com/julianstephens/motivnation/internal/storage"
	"github.com/julianstephens/motivnation/internal/tracker"
)

type Context struct {
	Store   storage.Provider
	Session *tracker.Session
	Out     io.Writer
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) printf(format string, args ...any) {
	fmt.Fprintf(c.out(), format, args...)
}

func (c *Context) println(args ...any) {
	fmt.Fprintln(c.out(), args...)
}

// localStore reports whether the store lives in a file that can be backed up.
func (c *Context) localStore() bool {
	return storage.DetectKind(c.Store.GetConfigPath()) != storage.KindPostgres
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if !c.localStore() {
		logger.Debug("Skipping automatic backup for remote store")
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// resolveMember finds the member named by ref, or the current member when ref is empty.
func (c *Context) resolveMember(ref string) (models.Member, error) {
	if strings.TrimSpace(ref) == "" {
		return c.Session.Current()
	}
	return c.Session.FindMember(ref)
}

// confirm asks a yes/no question. An aborted prompt counts as no.
func confirm(title string) (bool, error) {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return ok, nil
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, pluralForm)
}
