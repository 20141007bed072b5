package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/logtime/internal/cli"
	"github.com/alexanderramin/logtime/internal/cli/formatter"
	"github.com/alexanderramin/logtime/internal/clock"
	"github.com/alexanderramin/logtime/internal/config"
	"github.com/alexanderramin/logtime/internal/db"
	"github.com/alexanderramin/logtime/internal/repository"
	"github.com/alexanderramin/logtime/internal/service"
	"github.com/alexanderramin/logtime/internal/shell"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}
	cfg, err := config.Load(home)
	if err != nil {
		return err
	}

	zone, err := clock.LoadZone(cfg.Timezone)
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	subtaskRepo := repository.NewSQLiteSubtaskRepo(database)
	stretchRepo := repository.NewSQLiteStretchRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)
	clk := clock.System{}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewSlogUseCaseObserver(logger))
	}

	// Commands for the wrapper function go to the file it named. Without
	// one, switch still records time but the shell stays where it is.
	sh := shell.NewMulti()
	sh.OnDrop = func(_ shell.Shell, err error) {
		logger.Warn("shell output dropped", "error", err)
	}
	if cfg.ShellOut != "" {
		out, err := shell.Open(cfg.ShellDialect, cfg.ShellOut)
		if err != nil {
			return fmt.Errorf("opening shell output: %w", err)
		}
		defer out.Close()
		sh.Add(out)
	}

	app := &cli.App{
		Hierarchy: service.NewHierarchyService(uow, observers...),
		Stretches: service.NewStretchService(stretchRepo, subtaskRepo, uow, clk, zone, observers...),
		Reports:   service.NewReportService(stretchRepo, clk, zone, observers...),
		Projects:  service.NewProjectService(projectRepo, uow, observers...),
		Clock:     clk,
		Zone:      zone,
		Shell:     sh,
	}
	if exe, err := os.Executable(); err == nil {
		app.BinaryPath = exe
	}

	// Detect interactive terminal for forms and the watch view.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		formatter.DisableColor()
	}

	return cli.NewRootCmd(app).Execute()
}
