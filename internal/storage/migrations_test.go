package storage

import (
	"context"
	"database/sql"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openRawDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file::memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestApplyMigrationsInOrderOnce(t *testing.T) {
	db := openRawDB(t)
	ctx := context.Background()
	fsys := fstest.MapFS{
		"0002_add_column.sql": {Data: []byte("-- +migrate Up\nALTER TABLE widgets ADD COLUMN size INTEGER;\n-- +migrate Down\nSELECT 1;")},
		"0001_widgets.sql":    {Data: []byte("CREATE TABLE widgets (id TEXT PRIMARY KEY);")},
		"README.md":           {Data: []byte("ignored")},
	}

	require.NoError(t, applyMigrations(ctx, db, fsys))
	require.NoError(t, applyMigrations(ctx, db, fsys))

	version, err := schemaVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 2, version)

	_, err = db.Exec(`INSERT INTO widgets (id, size) VALUES ('w1', 3)`)
	assert.NoError(t, err)
}

func TestApplyMigrationsRejectsBadNames(t *testing.T) {
	db := openRawDB(t)
	err := applyMigrations(context.Background(), db, fstest.MapFS{
		"widgets.sql": {Data: []byte("CREATE TABLE widgets (id TEXT);")},
	})
	assert.Error(t, err)

	err = applyMigrations(context.Background(), db, fstest.MapFS{
		"0001_a.sql": {Data: []byte("SELECT 1;")},
		"0001_b.sql": {Data: []byte("SELECT 1;")},
	})
	assert.Error(t, err)
}

func TestExtractUp(t *testing.T) {
	assert.Equal(t, "\nCREATE TABLE a (id TEXT);\n", extractUp("-- +migrate Up\nCREATE TABLE a (id TEXT);\n-- +migrate Down\nDROP TABLE a;"))
	assert.Equal(t, "SELECT 1;", extractUp("SELECT 1;"))
}

func TestEmbeddedSchemaApplies(t *testing.T) {
	ss := newTestStore(t)
	version, err := schemaVersion(context.Background(), ss.db)
	require.NoError(t, err)
	assert.Equal(t, 2, version)
}
