package cache

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/regen/transform/regenerator"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestMigrate_AppliesAll(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	var version int
	require.NoError(t, db.QueryRow(`SELECT version FROM schema_version`).Scan(&version))
	assert.Equal(t, len(All), version)
}

func TestMigrate_SkipsAlreadyAppliedMigrations(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))

	var version int
	require.NoError(t, db.QueryRow(`SELECT version FROM schema_version`).Scan(&version))
	assert.Equal(t, len(All), version)
}

func TestMigrate_RollsBackOnFailure(t *testing.T) {
	origAll := All
	defer func() { All = origAll }()

	All = []string{
		`CREATE TABLE test_good (id INTEGER PRIMARY KEY)`,
		`INVALID SQL STATEMENT`,
	}

	db := openTestDB(t)
	require.Error(t, Migrate(db))

	var version int
	require.NoError(t, db.QueryRow(`SELECT version FROM schema_version`).Scan(&version))
	assert.Equal(t, 1, version)
}

func TestCache_GetMiss(t *testing.T) {
	c := openTestCache(t)

	out, ok, err := c.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, out)
}

func TestCache_PutGet(t *testing.T) {
	c := openTestCache(t)
	key := Key("function* g() {}", regenerator.DefaultConfig())

	require.NoError(t, c.Put(key, "first"))
	require.NoError(t, c.Put(key, "second"))

	out, ok, err := c.Get(key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", out)

	hits, err := c.Hits(key)
	require.NoError(t, err)
	assert.Equal(t, 1, hits)
}

func TestKey(t *testing.T) {
	cfg := regenerator.DefaultConfig()
	other := cfg
	other.StepParam = "index"

	assert.Equal(t, Key("a", cfg), Key("a", cfg))
	assert.NotEqual(t, Key("a", cfg), Key("b", cfg))
	assert.NotEqual(t, Key("a", cfg), Key("a", other))
	assert.Len(t, Key("a", cfg), 64)
}
