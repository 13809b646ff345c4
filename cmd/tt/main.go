package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"

	"github.com/alexanderramin/tt/internal/cli"
	"github.com/alexanderramin/tt/internal/config"
	"github.com/alexanderramin/tt/internal/db"
	"github.com/alexanderramin/tt/internal/logging"
	"github.com/alexanderramin/tt/internal/repository"
	"github.com/alexanderramin/tt/internal/repository/jsonfile"
	"github.com/alexanderramin/tt/internal/service"
	"github.com/alexanderramin/tt/internal/timer"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath, err := config.ResolvePath("")
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Logging, os.Stderr)

	// Wire repositories for the configured backend
	var (
		store     repository.StoreRepo
		customers repository.CustomerRepo
		shortcuts repository.ShortcutRepo
	)
	switch cfg.Storage.Driver {
	case config.DriverJSON:
		store = jsonfile.NewStoreRepo(cfg.Storage.Path)
		catalog := jsonfile.NewCatalogRepo(cfg.Storage.CatalogPath)
		customers, shortcuts = catalog.Customers(), catalog.Shortcuts()
	default:
		var database *sql.DB
		database, err = db.OpenOrRecover(cfg.Storage.Path, logger)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		store = repository.NewSQLiteStoreRepo(database, db.NewSQLiteUnitOfWork(database))
		customers = repository.NewSQLiteCustomerRepo(database)
		shortcuts = repository.NewSQLiteShortcutRepo(database)
	}
	logger.Debug().Str("driver", cfg.Storage.Driver).Str("path", cfg.Storage.Path).Msg("storage ready")

	observer := service.NewLogUseCaseObserver(logger)
	machine := timer.NewMachine(timer.SystemClock{}, cfg.Quantum())

	interactive := func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	app := &cli.App{
		Timer:         service.NewTimerService(store, machine, logger, observer),
		Catalog:       service.NewCatalogService(customers, logger, observer),
		Shortcuts:     service.NewShortcutService(shortcuts, logger, observer),
		Config:        cfg,
		ConfigPath:    cfgPath,
		Clipboard:     cli.SystemClipboard{},
		IsInteractive: interactive,
	}
	if interactive() {
		app.Prompter = cli.NewHuhPrompter()
	} else {
		app.Prompter = cli.NewLinePrompter(os.Stdin, os.Stdout)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
