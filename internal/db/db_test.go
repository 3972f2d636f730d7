package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/musantuli/portfolio/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ theme.KV = (*DB)(nil)

func setupTestDB(t *testing.T) (*DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prefs.db")
	db, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, path
}

func TestGet_Missing(t *testing.T) {
	db, _ := setupTestDB(t)

	value, ok, err := db.Get(context.Background(), "theme")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestSetGet(t *testing.T) {
	db, _ := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Set(ctx, "theme", "light"))
	value, ok, err := db.Get(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", value)

	require.NoError(t, db.Set(ctx, "theme", "dark"))
	value, _, err = db.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", value)

	prefs, err := db.List(ctx)
	require.NoError(t, err)
	require.Len(t, prefs, 1)
	assert.Equal(t, "theme", prefs[0].Key)
}

func TestPersistsAcrossSessions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.db")
	ctx := context.Background()

	first, err := Open(path)
	require.NoError(t, err)
	theme.NewStore(first).Save(ctx, theme.Light)
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	assert.Equal(t, theme.Light, theme.NewStore(second).Load(ctx))
}

func TestFreshSessionDefaultsToDark(t *testing.T) {
	db, _ := setupTestDB(t)
	assert.Equal(t, theme.Dark, theme.NewStore(db).Load(context.Background()))
}

func TestOpen_ReappliesMigrations(t *testing.T) {
	_, path := setupTestDB(t)

	again, err := Open(path)
	require.NoError(t, err)
	assert.NoError(t, again.Close())
}
