package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func fixedClock() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func schemaObjects(t *testing.T, db *sql.DB) []string {
	t.Helper()
	rows, err := db.Query(`SELECT type || ':' || name FROM sqlite_master WHERE name NOT LIKE 'sqlite_%' ORDER BY type, name`)
	require.NoError(t, err)
	defer rows.Close()
	var out []string
	for rows.Next() {
		var s string
		require.NoError(t, rows.Scan(&s))
		out = append(out, s)
	}
	require.NoError(t, rows.Err())
	return out
}

func TestRunMigrations_AppliesEmbeddedScripts(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	require.NoError(t, RunMigrations(ctx, db))

	records, err := AppliedMigrations(ctx, db)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, uint(1), records[0].Version)
	assert.Equal(t, uint(2), records[1].Version)
	for _, r := range records {
		_, err := time.Parse(time.RFC3339, r.AppliedAt)
		assert.NoError(t, err, "applied_at %q", r.AppliedAt)
	}

	assert.Equal(t, []string{
		"index:idx_entries_category",
		"index:idx_entries_occurred_on",
		"table:entries",
		"table:schema_migrations",
	}, schemaObjects(t, db))
}

func TestRunMigrations_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	require.NoError(t, RunMigrations(ctx, db))
	schema := schemaObjects(t, db)
	first, err := AppliedMigrations(ctx, db)
	require.NoError(t, err)

	require.NoError(t, RunMigrations(ctx, db))
	second, err := AppliedMigrations(ctx, db)
	require.NoError(t, err)

	assert.Equal(t, schema, schemaObjects(t, db))
	assert.Equal(t, first, second)
}

func TestRunMigrations_AppliesInAscendingOrderAndOnlyPending(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	fsys := fstest.MapFS{
		"m/0001_a.up.sql":   {Data: []byte(`CREATE TABLE a (id INTEGER);`)},
		"m/0001_a.down.sql": {Data: []byte(`DROP TABLE a;`)},
		"m/0003_c.up.sql":   {Data: []byte(`ALTER TABLE b ADD COLUMN note TEXT;`)},
		"m/0002_b.up.sql":   {Data: []byte(`CREATE TABLE b (id INTEGER REFERENCES a(id));`)},
		"m/README.md":       {Data: []byte(`not a migration`)},
	}
	require.NoError(t, runMigrations(ctx, db, fsys, "m", fixedClock))

	records, err := AppliedMigrations(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, []MigrationRecord{
		{Version: 1, AppliedAt: "2024-06-01T12:00:00Z"},
		{Version: 2, AppliedAt: "2024-06-01T12:00:00Z"},
		{Version: 3, AppliedAt: "2024-06-01T12:00:00Z"},
	}, records)

	// a new script is picked up without touching the applied ones
	fsys["m/0004_d.up.sql"] = &fstest.MapFile{Data: []byte(`CREATE TABLE d (id INTEGER);`)}
	later := func() time.Time { return fixedClock().Add(time.Hour) }
	require.NoError(t, runMigrations(ctx, db, fsys, "m", later))

	records, err = AppliedMigrations(ctx, db)
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "2024-06-01T12:00:00Z", records[2].AppliedAt)
	assert.Equal(t, "2024-06-01T13:00:00Z", records[3].AppliedAt)
}

func TestRunMigrations_FailureRollsBackAndReportsVersion(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	fsys := fstest.MapFS{
		"m/0001_ok.up.sql":     {Data: []byte(`CREATE TABLE ok (id INTEGER);`)},
		"m/0002_broken.up.sql": {Data: []byte(`CREATE TABLE half (id INTEGER); THIS IS NOT SQL;`)},
		"m/0003_never.up.sql":  {Data: []byte(`CREATE TABLE never (id INTEGER);`)},
	}
	err := runMigrations(ctx, db, fsys, "m", fixedClock)
	require.Error(t, err)

	var merr *MigrationError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, uint(2), merr.Version)
	assert.Contains(t, merr.Error(), "migration 2 failed")

	records, err := AppliedMigrations(ctx, db)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, uint(1), records[0].Version)

	assert.Equal(t, []string{"table:ok", "table:schema_migrations"}, schemaObjects(t, db))
}

func TestRunMigrations_EmptySource(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	fsys := fstest.MapFS{"m/.keep": {Data: []byte{}}}
	require.NoError(t, runMigrations(ctx, db, fsys, "m", fixedClock))

	records, err := AppliedMigrations(ctx, db)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestNewSQLiteRepository_MigrationFailureIsTyped(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tui-money.db")

	// an existing, unrelated "entries" table makes the index migration fail
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE schema_migrations (version INTEGER PRIMARY KEY, applied_at TEXT NOT NULL);
		INSERT INTO schema_migrations (version, applied_at) VALUES (1, '2024-01-01T00:00:00Z');
		CREATE TABLE entries (something_else TEXT);`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = NewSQLiteRepository(ctx, path)
	require.Error(t, err)

	var merr *MigrationError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, uint(2), merr.Version)
}
