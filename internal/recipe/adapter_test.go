package recipe

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/logger"
	"github.com/hammamikhairi/recipebook/internal/storage"
)

var errDiskFull = errors.New("disk full")

// faultyKV wraps a memory store and fails on demand.
type faultyKV struct {
	*storage.MemoryStore
	failGet bool
	failSet bool
	sets    int
}

func newFaultyKV() *faultyKV {
	return &faultyKV{MemoryStore: storage.NewMemoryStore(logger.New(logger.LevelOff, nil))}
}

func (f *faultyKV) Get(ctx context.Context, key string) (string, bool, error) {
	if f.failGet {
		return "", false, errors.New("io error")
	}
	return f.MemoryStore.Get(ctx, key)
}

func (f *faultyKV) Set(ctx context.Context, key, value string) error {
	f.sets++
	if f.failSet {
		return errDiskFull
	}
	return f.MemoryStore.Set(ctx, key, value)
}

func strPtr(s string) *string { return &s }

func TestBlobAdapterLoadAbsent(t *testing.T) {
	a := NewBlobAdapter(newFaultyKV(), logger.New(logger.LevelOff, nil))

	recipes, err := a.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, recipes)
	assert.Empty(t, recipes)
}

func TestBlobAdapterRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := newFaultyKV()
	a := NewBlobAdapter(kv, logger.New(logger.LevelOff, nil))

	want := []domain.Recipe{
		{ID: "2", Title: "Soup", Image: strPtr("/img/soup.png"), Category: "Dinner", Servings: "4",
			PrepTime: "10m", CookTime: "40m", Description: "Warm", Ingredients: "water\nleeks", Instructions: "boil"},
		{ID: "1", Title: "Pasta", Category: "General", Ingredients: "eggs, flour"},
	}

	require.NoError(t, a.Save(ctx, want))

	got, err := NewBlobAdapter(kv, logger.New(logger.LevelOff, nil)).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestBlobAdapterWireFormat(t *testing.T) {
	ctx := context.Background()
	kv := newFaultyKV()
	a := NewBlobAdapter(kv, logger.New(logger.LevelOff, nil))

	require.NoError(t, a.Save(ctx, nil))
	raw, ok, err := kv.Get(ctx, RecipesKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[]", raw)

	require.NoError(t, a.Save(ctx, []domain.Recipe{{ID: "1", Title: "Pasta", Category: "General", Ingredients: "eggs"}}))
	raw, _, _ = kv.Get(ctx, RecipesKey)
	assert.JSONEq(t, `[{
		"id": "1", "title": "Pasta", "image": null, "category": "General",
		"servings": "", "prepTime": "", "cookTime": "", "description": "",
		"ingredients": "eggs", "instructions": ""
	}]`, raw)
}

func TestBlobAdapterLoadMalformed(t *testing.T) {
	ctx := context.Background()
	kv := newFaultyKV()
	require.NoError(t, kv.MemoryStore.Set(ctx, RecipesKey, "{not json"))

	a := NewBlobAdapter(kv, logger.New(logger.LevelOff, nil))
	_, err := a.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrStorageRead)

	backup, ok, err := kv.Get(ctx, RecipesKey+corruptSuffix)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "{not json", backup)
}

func TestBlobAdapterLoadReadFailure(t *testing.T) {
	kv := newFaultyKV()
	kv.failGet = true

	_, err := NewBlobAdapter(kv, logger.New(logger.LevelOff, nil)).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrStorageRead)
}

func TestBlobAdapterLoadLegacyShape(t *testing.T) {
	ctx := context.Background()
	kv := newFaultyKV()
	require.NoError(t, kv.Set(ctx, RecipesKey, `[{"id":"1","title":"Old","image":"","ingredients":"x"}]`))

	got, err := NewBlobAdapter(kv, logger.New(logger.LevelOff, nil)).Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.DefaultCategory, got[0].Category)
	assert.Nil(t, got[0].Image)
}

func TestBlobAdapterLoadNull(t *testing.T) {
	ctx := context.Background()
	kv := newFaultyKV()
	require.NoError(t, kv.Set(ctx, RecipesKey, "null"))

	got, err := NewBlobAdapter(kv, logger.New(logger.LevelOff, nil)).Load(ctx)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBlobAdapterSaveFailure(t *testing.T) {
	kv := newFaultyKV()
	kv.failSet = true

	err := NewBlobAdapter(kv, logger.New(logger.LevelOff, nil)).Save(context.Background(), []domain.Recipe{{ID: "1"}})
	assert.ErrorIs(t, err, domain.ErrStorageWrite)
	assert.ErrorIs(t, err, errDiskFull)
}
