package cli

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/filingdesk/internal/config"
	"github.com/alexanderramin/filingdesk/internal/repository"
	"github.com/alexanderramin/filingdesk/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// App holds the configuration and services the commands run against.
type App struct {
	Config config.Config

	Calendar      service.CalendarService
	Sync          service.SyncService
	Alerts        service.AlertService
	Checklists    service.ChecklistService
	Tasks         service.TaskService
	Notifications service.NotificationService
	Roster        service.RosterService
	Publish       service.PublishService
	Clients       repository.ClientRepo

	// Bootstrap, when set, runs once flags are parsed. It reads configuration
	// from v and fills in Config and the services.
	Bootstrap func(ctx context.Context, v *viper.Viper, app *App) error

	IsInteractive func() bool
	// Confirm asks a yes/no question. Nil means the answer is always yes.
	Confirm func(title, description string) (bool, error)
	// Now overrides the clock, for tests.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	loc := a.Config.Location
	if loc == nil {
		loc = time.Local
	}
	return time.Now().In(loc)
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "filingdesk" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)

	root := &cobra.Command{
		Use:           "filingdesk",
		Short:         "Statutory compliance calendar, task sync and deadline alerts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if app.Bootstrap == nil {
				return nil
			}
			return app.Bootstrap(cmd.Context(), v, app)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default: $HOME/.filingdesk/config.yaml)")
	pf.String("db", "", "SQLite database path")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "console", "log format (console, json)")
	_ = v.BindPFlag("config_file", pf.Lookup("config"))
	_ = v.BindPFlag(config.KeyDBPath, pf.Lookup("db"))
	_ = v.BindPFlag(config.KeyLogLevel, pf.Lookup("log-level"))
	_ = v.BindPFlag(config.KeyLogFormat, pf.Lookup("log-format"))

	root.AddCommand(
		newDeadlinesCmd(app),
		newFYCmd(app),
		newSyncCmd(app),
		newAlertsCmd(app),
		newChecklistCmd(app),
		newCatalogCmd(app),
		newTasksCmd(app),
		newRosterCmd(app),
		newPublishCmd(app),
	)
	return root
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
