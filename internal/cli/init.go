// Package cli provides the initialization steps cmd/tuimoney runs before
// handing the terminal to the UI.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/term"

	"tuimoney/internal/backend"
	"tuimoney/internal/config"
	"tuimoney/internal/log"
)

// ErrNotTerminal is returned by RequireTerminal when stdin is redirected.
var ErrNotTerminal = errors.New("stdin is not a terminal")

// SetupLogger opens cfg.LogFile for appending and returns a logger tagged
// with a fresh run_id. It is also installed as the default slog logger.
// The returned close func releases the file.
func SetupLogger(cfg *config.Config) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.New(log.Config{
		Level:     level,
		Component: log.ComponentApp,
		Output:    f,
	}).With(log.FieldRunID, uuid.NewString())
	log.SetDefault(logger)

	return logger, f.Close, nil
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
func LoadAndValidateConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// InitBackend builds the configured repository.
func InitBackend(ctx context.Context, logger *log.Logger, cfg *config.Config) (*backend.BackendResult, error) {
	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		return nil, err
	}

	res, err := backend.NewFactory(logger).CreateBackend(ctx, backendCfg)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to initialize backend",
			log.FieldBackend, backendCfg.Type,
			log.FieldError, err)
		return nil, err
	}
	return res, nil
}

// RequireTerminal fails when f is not an interactive terminal.
func RequireTerminal(f *os.File) error {
	if !term.IsTerminal(int(f.Fd())) {
		return ErrNotTerminal
	}
	return nil
}

// SignalContext returns a context cancelled on SIGINT or SIGTERM.
func SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}
