package backend

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"tuimoney/internal/config"
	"tuimoney/internal/core"
	"tuimoney/internal/log"
	"tuimoney/internal/storage"
	"tuimoney/internal/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromAppConfig(t *testing.T) {
	_, err := FromAppConfig(nil)
	assert.Error(t, err)

	_, err = FromAppConfig(&config.Config{DataBackend: "sheets"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[sqlite memory]")

	cfg, err := FromAppConfig(&config.Config{DataBackend: "sqlite", DBPath: "money.db"})
	require.NoError(t, err)
	assert.Equal(t, Config{Type: SQLiteBackend, DBPath: "money.db"}, cfg)
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, Config{Type: MemoryBackend}.Validate())
	assert.NoError(t, Config{Type: SQLiteBackend, DBPath: "x.db"}.Validate())
	assert.Error(t, Config{Type: SQLiteBackend}.Validate())
	err := Config{Type: "csv"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "supported: [sqlite memory]")
	assert.Equal(t, []BackendType{SQLiteBackend, MemoryBackend}, GetBackendTypes())
}

func TestFactory_CreateSQLiteBackend(t *testing.T) {
	ctx := context.Background()
	f := NewFactory(nil)

	res, err := f.CreateBackend(ctx, Config{
		Type:   SQLiteBackend,
		DBPath: filepath.Join(t.TempDir(), "tui-money.db"),
	})
	require.NoError(t, err)
	require.NotNil(t, res.Cleanup)
	assert.IsType(t, &storage.SQLiteRepository{}, res.Repository)

	valid, err := core.Validate(core.NewEntry{Kind: core.Income, AmountCents: 100, Category: "Gift", OccurredOn: "2024-01-01"})
	require.NoError(t, err)
	e, err := res.Repository.Add(ctx, valid)
	require.NoError(t, err)
	assert.Equal(t, int64(1), e.ID)

	require.NoError(t, res.Close())
}

func TestFactory_CreateMemoryBackend(t *testing.T) {
	res, err := NewFactory(nil).CreateBackend(context.Background(), Config{Type: MemoryBackend})
	require.NoError(t, err)
	assert.IsType(t, &memory.Store{}, res.Repository)
	assert.NoError(t, res.Close())
}

func TestFactory_InvalidConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(log.Config{Level: slog.LevelInfo, Output: &buf})

	_, err := NewFactory(logger).CreateBackend(context.Background(), Config{Type: "sheets"})
	assert.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "Rejected backend configuration")
	assert.Contains(t, out, "error_type="+log.ErrorTypeConfiguration)
	assert.Contains(t, out, "operation="+log.OpValidate)
}

func TestFactory_LogsSchemaVersion(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(log.Config{Level: slog.LevelInfo, Output: &buf})

	res, err := NewFactory(logger).CreateBackend(context.Background(), Config{
		Type:   SQLiteBackend,
		DBPath: filepath.Join(t.TempDir(), "tui-money.db"),
	})
	require.NoError(t, err)
	defer res.Close()

	out := buf.String()
	assert.Contains(t, out, "operation="+log.OpMigrate)
	assert.Contains(t, out, "migration_version=2")
}
