package backend

import (
	"context"
	"fmt"

	"tuimoney/internal/log"
	"tuimoney/internal/storage"
	"tuimoney/internal/storage/memory"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *log.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *log.Logger) Factory {
	if logger == nil {
		logger = log.Discard()
	}
	return &DefaultFactory{
		logger: logger.WithComponent(log.ComponentBackend),
	}
}

// CreateBackend implements Factory.CreateBackend
func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config) (*BackendResult, error) {
	if err := config.Validate(); err != nil {
		f.logger.WarnContext(ctx, "Rejected backend configuration",
			log.FieldOperation, log.OpValidate,
			log.FieldErrorType, log.ErrorTypeConfiguration,
			log.FieldBackend, string(config.Type),
			log.FieldError, err)
		return nil, err
	}

	switch config.Type {
	case SQLiteBackend:
		return f.createSQLiteBackend(ctx, config)
	case MemoryBackend:
		return f.createMemoryBackend(ctx)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createSQLiteBackend(ctx context.Context, config Config) (*BackendResult, error) {
	repo, err := storage.NewSQLiteRepository(ctx, config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
	}

	if records, err := storage.AppliedMigrations(ctx, repo.DB()); err == nil && len(records) > 0 {
		f.logger.InfoContext(ctx, "Schema version",
			log.FieldOperation, log.OpMigrate,
			log.FieldMigrationVersion, records[len(records)-1].Version)
	}

	f.logger.InfoContext(ctx, "Initialized SQLite backend", log.FieldDBPath, config.DBPath)

	return &BackendResult{
		Repository: repo,
		Cleanup:    repo.Close,
	}, nil
}

func (f *DefaultFactory) createMemoryBackend(ctx context.Context) (*BackendResult, error) {
	f.logger.InfoContext(ctx, "Initialized memory backend")

	return &BackendResult{
		Repository: memory.New(),
		Cleanup:    nil, // No cleanup needed for memory backend
	}, nil
}
