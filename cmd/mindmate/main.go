package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexanderramin/mindmate/internal/cli"
	"github.com/alexanderramin/mindmate/internal/config"
	"github.com/alexanderramin/mindmate/internal/db"
	"github.com/alexanderramin/mindmate/internal/repository"
	"github.com/alexanderramin/mindmate/internal/seed"
	"github.com/alexanderramin/mindmate/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// The TUI owns the terminal, so use-case logs only go to a file.
	var logOut io.Writer
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	observer := service.NewLogUseCaseObserver(logOut, cfg.LogLevel)

	store := repository.NewSQLiteLocalStoreRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Sessions:    service.NewSessionService(uow, observer),
		Profiles:    service.NewProfileService(store, observer),
		RevealDelay: cfg.RevealDelay,
	}
	if cfg.SeedPath != "" {
		app.Seed = seed.FromFile(cfg.SeedPath)
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
