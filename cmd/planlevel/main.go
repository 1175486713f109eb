package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/avelarde/planlevel/internal/cli"
	"github.com/avelarde/planlevel/internal/config"
	"github.com/avelarde/planlevel/internal/db"
	"github.com/avelarde/planlevel/internal/logging"
	"github.com/avelarde/planlevel/internal/repository"
	"github.com/avelarde/planlevel/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return err
	}

	log, closeLog := logging.New(cfg.Log)
	defer closeLog()

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	roleRepo := repository.NewSQLiteRoleRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Projects: service.NewProjectService(projectRepo),
		Roles:    service.NewRoleService(roleRepo, taskRepo),
		Tasks:    service.NewTaskService(taskRepo, roleRepo),
		Import:   service.NewImportService(projectRepo, uow),
		Export:   service.NewExportService(projectRepo, roleRepo, taskRepo),
		Estimate: service.NewEstimateService(projectRepo, roleRepo, taskRepo),
		Level:    service.NewLevelService(projectRepo, roleRepo, taskRepo, uow, log),
		HTTPAddr: cfg.HTTP.Addr,
		Log:      log,
	}

	// Detect interactive terminal for wizards and the schedule browser.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
