package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrationError reports a migration that could not be applied. The
// transaction for Version has been rolled back.
type MigrationError struct {
	Version uint
	Err     error
}

func (e *MigrationError) Error() string {
	return fmt.Sprintf("migration %d failed: %v", e.Version, e.Err)
}

func (e *MigrationError) Unwrap() error {
	return e.Err
}

// RunMigrations applies every embedded migration not yet recorded in
// schema_migrations, in ascending version order, one transaction each.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, db, migrationsFS, "migrations", time.Now)
}

// AppliedMigrations returns the recorded migrations ordered by version.
func AppliedMigrations(ctx context.Context, db *sql.DB) ([]MigrationRecord, error) {
	records, err := New(db).ListMigrations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list applied migrations: %w", err)
	}
	return records, nil
}

func runMigrations(ctx context.Context, db *sql.DB, fsys fs.FS, dir string, now func() time.Time) error {
	src, err := iofs.New(fsys, dir)
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}
	defer src.Close()

	q := New(db)
	if err := q.CreateSchemaMigrations(ctx); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	records, err := q.ListMigrations(ctx)
	if err != nil {
		return fmt.Errorf("read schema_migrations: %w", err)
	}
	applied := make(map[uint]struct{}, len(records))
	for _, r := range records {
		applied[r.Version] = struct{}{}
	}

	version, err := src.First()
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read first migration: %w", err)
	}

	count := 0
	for {
		if _, ok := applied[version]; !ok {
			ok, err := applyMigration(ctx, db, src, version, now)
			if err != nil {
				return &MigrationError{Version: version, Err: err}
			}
			if ok {
				count++
			}
		}

		next, err := src.Next(version)
		if errors.Is(err, fs.ErrNotExist) {
			break
		}
		if err != nil {
			return fmt.Errorf("read migration after %d: %w", version, err)
		}
		version = next
	}

	slog.InfoContext(ctx, "Migrations up to date", "applied", count, "previously_applied", len(records))
	return nil
}

// applyMigration runs the up script of version and records it in the same
// transaction. It reports false when the version has no up script.
func applyMigration(ctx context.Context, db *sql.DB, src source.Driver, version uint, now func() time.Time) (bool, error) {
	r, identifier, err := src.ReadUp(version)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read up script: %w", err)
	}
	defer r.Close()

	script, err := io.ReadAll(r)
	if err != nil {
		return false, fmt.Errorf("read up script %s: %w", identifier, err)
	}

	err = withTx(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		if strings.TrimSpace(string(script)) != "" {
			if _, err := tx.ExecContext(ctx, string(script)); err != nil {
				return fmt.Errorf("exec %s: %w", identifier, err)
			}
		}
		if err := New(tx).InsertMigration(ctx, version, now().UTC().Format(time.RFC3339)); err != nil {
			return fmt.Errorf("record version: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	slog.InfoContext(ctx, "Migration applied", "version", version, "name", identifier)
	return true, nil
}
