package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tuimoney/internal/cli"
	"tuimoney/internal/log"
	"tuimoney/internal/services"
	"tuimoney/internal/storage"
	"tuimoney/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	os.Exit(run())
}

func run() int {
	cli.LoadEnvFile()

	cfg, err := cli.LoadAndValidateConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := cli.RequireTerminal(os.Stdin); err != nil {
		fmt.Fprintln(os.Stderr, "tuimoney:", err)
		return 1
	}

	logger, closeLog, err := cli.SetupLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tuimoney:", err)
		return 1
	}
	defer closeLog()

	ctx, stop := cli.SignalContext(context.Background())
	defer stop()

	logger.InfoContext(ctx, "Starting tuimoney",
		log.FieldOperation, log.OpStartup,
		log.FieldBackend, cfg.DataBackend,
		log.FieldDBPath, cfg.DBPath)

	res, err := cli.InitBackend(ctx, logger, cfg)
	if err != nil {
		var merr *storage.MigrationError
		if errors.As(err, &merr) {
			logger.ErrorContext(ctx, "Migration failed",
				log.FieldOperation, log.OpMigrate,
				log.FieldMigrationVersion, merr.Version,
				log.FieldErrorType, log.ErrorTypeMigration,
				log.FieldError, merr.Err)
		}
		fmt.Fprintln(os.Stderr, "tuimoney:", err)
		return 1
	}
	defer func() {
		if err := res.Close(); err != nil {
			logger.Error("Failed to close backend", log.FieldError, err)
		}
	}()

	svc := services.NewEntryService(res.Repository, logger)
	app := ui.NewApp(ctx, svc, logger)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logger.ErrorContext(ctx, "UI terminated", log.FieldError, err)
		fmt.Fprintln(os.Stderr, "tuimoney:", err)
		return 1
	}

	logger.InfoContext(ctx, "Shutdown complete", log.FieldOperation, log.OpShutdown)
	return 0
}
