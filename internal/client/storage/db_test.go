package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/credkeeper/internal/client/config"
	"github.com/dmitrijs2005/credkeeper/internal/client/repositories/kv"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestInitDatabase_CreatesKVAndGooseTables(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "app.db")

	db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	assert.True(t, tableExists(t, db, "goose_db_version"))
	assert.True(t, tableExists(t, db, "kv"))
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "app.db")

	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, RunMigrations(ctx, db), "second run must be a no-op")
	assert.True(t, tableExists(t, db, "kv"))
}

func TestOpen_SQLiteBackendPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{
		StorageBackend: config.BackendSQLite,
		DatabasePath:   filepath.Join(t.TempDir(), "nested", "store.db"),
	}

	store, closeFn, err := Open(ctx, cfg)
	require.NoError(t, err)
	require.IsType(t, &kv.SQLiteStore{}, store)
	require.NoError(t, store.Set(ctx, "users", []byte(`[]`)))
	require.NoError(t, closeFn())

	store, closeFn, err = Open(ctx, cfg)
	require.NoError(t, err)
	defer closeFn()

	v, err := store.Get(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), v)
}

func TestOpen_MemoryBackend(t *testing.T) {
	store, closeFn, err := Open(context.Background(), &config.Config{StorageBackend: config.BackendMemory})
	require.NoError(t, err)
	assert.IsType(t, &kv.MemoryStore{}, store)
	assert.NoError(t, closeFn())
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, _, err := Open(context.Background(), &config.Config{StorageBackend: "redis"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage backend")
}
