package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/filingdesk/internal/cli"
	"github.com/alexanderramin/filingdesk/internal/config"
	"github.com/alexanderramin/filingdesk/internal/db"
	"github.com/alexanderramin/filingdesk/internal/gcal"
	"github.com/alexanderramin/filingdesk/internal/repository"
	"github.com/alexanderramin/filingdesk/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var database *sql.DB
	defer func() {
		if database != nil {
			database.Close()
		}
	}()

	app := &cli.App{
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
		Confirm: cli.HuhConfirm,
	}
	app.Bootstrap = func(ctx context.Context, v *viper.Viper, app *cli.App) error {
		if err := config.ReadFile(v, v.GetString("config_file")); err != nil {
			return err
		}
		cfg, err := config.Load(v)
		if err != nil {
			return err
		}
		logger, err := config.SetupLogging(os.Stderr, cfg.Logging)
		if err != nil {
			return err
		}

		database, err = db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		slog.DebugContext(ctx, "database opened", "path", cfg.DBPath)

		return wire(ctx, app, cfg, database, service.NewSlogUseCaseObserver(logger))
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

func wire(ctx context.Context, app *cli.App, cfg config.Config, database *sql.DB, observer service.UseCaseObserver) error {
	clientRepo := repository.NewSQLiteClientRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	userRepo := repository.NewSQLiteUserRepo(database)
	notificationRepo := repository.NewSQLiteNotificationRepo(database)
	documentRepo := repository.NewSQLiteDocumentRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	// Without credentials, publish reports ErrPublisherNotConfigured.
	var publisher service.DeadlinePublisher
	if cfg.GCal.Enabled() {
		srv, err := gcal.NewService(ctx, cfg.GCal.CredentialsFile)
		if err != nil {
			return fmt.Errorf("connecting to Google Calendar: %w", err)
		}
		publisher = gcal.NewPublisher(srv, cfg.GCal.CalendarID)
	}

	app.Config = cfg
	app.Clients = clientRepo
	app.Calendar = service.NewCalendarService()
	app.Sync = service.NewSyncService(clientRepo, taskRepo, observer)
	app.Alerts = service.NewAlertService(taskRepo, userRepo, notificationRepo, cfg.Location, observer)
	app.Checklists = service.NewChecklistService(clientRepo, documentRepo, nil, observer)
	app.Tasks = service.NewTaskService(taskRepo, userRepo)
	app.Notifications = service.NewNotificationService(userRepo, notificationRepo)
	app.Roster = service.NewRosterService(uow, observer)
	app.Publish = service.NewPublishService(publisher, observer)
	return nil
}
