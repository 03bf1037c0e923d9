package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/recipebook/internal/logger"
)

func openTestBolt(t *testing.T, path string) *BoltStore {
	t.Helper()
	store, err := OpenBolt(path, logger.New(logger.LevelOff, nil))
	require.NoError(t, err)
	return store
}

func TestBoltStoreSetGetRemove(t *testing.T) {
	ctx := context.Background()
	store := openTestBolt(t, filepath.Join(t.TempDir(), "recipes.db"))
	defer func() { assert.NoError(t, store.Close()) }()

	_, ok, err := store.Get(ctx, "recipes")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "recipes", `[{"id":"a"}]`))

	v, ok, err := store.Get(ctx, "recipes")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"a"}]`, v)

	require.NoError(t, store.Remove(ctx, "recipes"))
	_, ok, err = store.Get(ctx, "recipes")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, store.Remove(ctx, "nonexistent"))
}

func TestBoltStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "recipes.db")

	store := openTestBolt(t, path)
	require.NoError(t, store.Set(ctx, "recipes", "[]"))
	assert.Equal(t, path, store.Path())
	require.NoError(t, store.Close())

	reopened := openTestBolt(t, path)
	defer reopened.Close()

	v, ok, err := reopened.Get(ctx, "recipes")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", v)
}
