package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"tuimoney/internal/core"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLiteRepository implements core.Repository on a single SQLite file.
type SQLiteRepository struct {
	db      *sql.DB
	queries *Queries
}

var _ core.Repository = (*SQLiteRepository)(nil)

// NewSQLiteRepository opens dbPath, checks the connection and applies pending
// migrations. A migration failure is returned as *MigrationError.
func NewSQLiteRepository(ctx context.Context, dbPath string) (*SQLiteRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, core.NewStorageError("create db directory", core.ErrConnectionFailed, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, core.NewStorageError("open sqlite database", core.ErrConnectionFailed, err)
	}
	// One handle for the lifetime of the process.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, core.NewStorageError("ping database", core.ErrConnectionFailed, err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	slog.InfoContext(ctx, "SQLite repository ready", "path", dbPath)

	return &SQLiteRepository{
		db:      db,
		queries: New(db),
	}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// DB exposes the underlying handle for migration inspection.
func (r *SQLiteRepository) DB() *sql.DB {
	return r.db
}

// Add implements core.Repository
func (r *SQLiteRepository) Add(ctx context.Context, e core.ValidEntry) (core.Entry, error) {
	row, err := r.queries.CreateEntry(ctx, CreateEntryParams{
		Kind:        e.Kind().String(),
		AmountCents: e.AmountCents(),
		Category:    e.Category(),
		Note:        sql.NullString{String: e.Note(), Valid: e.Note() != ""},
		OccurredOn:  e.OccurredOn().String(),
	})
	if err != nil {
		return core.Entry{}, core.NewStorageError("create entry", classify(err), err)
	}

	entry, err := toCoreEntry(row)
	if err != nil {
		return core.Entry{}, core.NewStorageError("create entry", core.ErrConstraintViolation, err)
	}

	slog.InfoContext(ctx, "Entry saved to SQLite",
		"id", entry.ID,
		"kind", entry.Kind,
		"amount_cents", entry.AmountCents,
		"category", entry.Category,
		"occurred_on", entry.OccurredOn.String())

	return entry, nil
}

// List implements core.Repository
func (r *SQLiteRepository) List(ctx context.Context, f core.EntryFilter) ([]core.Entry, error) {
	rows, err := r.queries.ListEntries(ctx, ListEntriesParams{
		From:     f.From.String(),
		To:       f.To.String(),
		Category: f.Category,
	})
	if err != nil {
		return nil, core.NewStorageError("list entries", classify(err), err)
	}

	entries := make([]core.Entry, 0, len(rows))
	for _, row := range rows {
		e, err := toCoreEntry(row)
		if err != nil {
			return nil, core.NewStorageError("list entries", core.ErrConstraintViolation, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// toCoreEntry maps a stored row to the domain type, rejecting malformed data.
func toCoreEntry(row EntryRow) (core.Entry, error) {
	kind, err := core.ParseEntryKind(row.Kind)
	if err != nil {
		return core.Entry{}, fmt.Errorf("entry %d: unknown entry kind %q", row.ID, row.Kind)
	}
	date, err := core.ParseDate(row.OccurredOn)
	if err != nil {
		return core.Entry{}, fmt.Errorf("entry %d: malformed occurred_on %q", row.ID, row.OccurredOn)
	}
	if row.AmountCents <= 0 {
		return core.Entry{}, fmt.Errorf("entry %d: non-positive amount %d", row.ID, row.AmountCents)
	}
	if strings.TrimSpace(row.Category) == "" {
		return core.Entry{}, fmt.Errorf("entry %d: empty category", row.ID)
	}
	return core.Entry{
		ID:          row.ID,
		Kind:        kind,
		AmountCents: row.AmountCents,
		Category:    row.Category,
		Note:        row.Note.String,
		OccurredOn:  date,
	}, nil
}

// classify maps a driver error to a storage error kind.
func classify(err error) error {
	var se *sqlite.Error
	if errors.As(err, &se) && se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		return core.ErrConstraintViolation
	}
	return core.ErrConnectionFailed
}
