package storage

import (
	"context"
	"database/sql"
	"strings"
)

// EntryRow mirrors a row of the entries table.
type EntryRow struct {
	ID          int64
	Kind        string
	AmountCents int64
	Category    string
	Note        sql.NullString
	OccurredOn  string
}

const createEntry = `
INSERT INTO entries (kind, amount_cents, category, note, occurred_on)
VALUES (?, ?, ?, ?, ?)
RETURNING id, kind, amount_cents, category, note, occurred_on
`

type CreateEntryParams struct {
	Kind        string
	AmountCents int64
	Category    string
	Note        sql.NullString
	OccurredOn  string
}

func (q *Queries) CreateEntry(ctx context.Context, arg CreateEntryParams) (EntryRow, error) {
	row := q.db.QueryRowContext(ctx, createEntry,
		arg.Kind,
		arg.AmountCents,
		arg.Category,
		arg.Note,
		arg.OccurredOn,
	)
	var i EntryRow
	err := row.Scan(
		&i.ID,
		&i.Kind,
		&i.AmountCents,
		&i.Category,
		&i.Note,
		&i.OccurredOn,
	)
	return i, err
}

const listEntries = `SELECT id, kind, amount_cents, category, note, occurred_on FROM entries`

// ListEntriesParams holds optional predicates; empty strings are ignored.
type ListEntriesParams struct {
	From     string
	To       string
	Category string
}

// buildListEntries returns the list query with one bound clause per present
// predicate, joined with AND.
func buildListEntries(arg ListEntriesParams) (string, []any) {
	var (
		clauses []string
		args    []any
	)
	if arg.From != "" {
		clauses = append(clauses, "occurred_on >= ?")
		args = append(args, arg.From)
	}
	if arg.To != "" {
		clauses = append(clauses, "occurred_on <= ?")
		args = append(args, arg.To)
	}
	if arg.Category != "" {
		clauses = append(clauses, "category = ?")
		args = append(args, arg.Category)
	}

	var b strings.Builder
	b.WriteString(listEntries)
	if len(clauses) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(clauses, " AND "))
	}
	b.WriteString(" ORDER BY occurred_on DESC, id DESC")
	return b.String(), args
}

func (q *Queries) ListEntries(ctx context.Context, arg ListEntriesParams) ([]EntryRow, error) {
	query, args := buildListEntries(arg)
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []EntryRow
	for rows.Next() {
		var i EntryRow
		if err := rows.Scan(
			&i.ID,
			&i.Kind,
			&i.AmountCents,
			&i.Category,
			&i.Note,
			&i.OccurredOn,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createSchemaMigrations = `
CREATE TABLE IF NOT EXISTS schema_migrations (
    version    INTEGER PRIMARY KEY,
    applied_at TEXT    NOT NULL
)
`

func (q *Queries) CreateSchemaMigrations(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, createSchemaMigrations)
	return err
}

// MigrationRecord is a row of schema_migrations.
type MigrationRecord struct {
	Version   uint
	AppliedAt string
}

const listMigrations = `SELECT version, applied_at FROM schema_migrations ORDER BY version`

func (q *Queries) ListMigrations(ctx context.Context) ([]MigrationRecord, error) {
	rows, err := q.db.QueryContext(ctx, listMigrations)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []MigrationRecord
	for rows.Next() {
		var i MigrationRecord
		if err := rows.Scan(&i.Version, &i.AppliedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const insertMigration = `INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)`

func (q *Queries) InsertMigration(ctx context.Context, version uint, appliedAt string) error {
	_, err := q.db.ExecContext(ctx, insertMigration, int64(version), appliedAt)
	return err
}
