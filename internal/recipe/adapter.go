// Package recipe owns the recipe collection: its durable encoding and the
// repository that keeps memory and storage in step.
package recipe

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/logger"
)

// RecipesKey is the fixed key holding the whole collection.
const RecipesKey = "recipes"

// corruptSuffix names the key an unreadable blob is copied to.
const corruptSuffix = ".corrupt"

// Persistence loads and replaces the whole recipe collection.
type Persistence interface {
	Load(ctx context.Context) ([]domain.Recipe, error)
	Save(ctx context.Context, recipes []domain.Recipe) error
}

// Compile-time interface check.
var _ Persistence = (*BlobAdapter)(nil)

// BlobAdapter stores the collection as a single JSON array under one key.
// There is no partial write: Save always replaces the entire blob.
type BlobAdapter struct {
	kv  domain.KVStore
	key string
	log *logger.Logger
}

// NewBlobAdapter creates an adapter over kv using RecipesKey.
func NewBlobAdapter(kv domain.KVStore, log *logger.Logger) *BlobAdapter {
	return &BlobAdapter{kv: kv, key: RecipesKey, log: log}
}

// Load reads the collection. A missing blob is an empty collection; a
// malformed one fails with domain.ErrStorageRead.
func (a *BlobAdapter) Load(ctx context.Context) ([]domain.Recipe, error) {
	raw, ok, err := a.kv.Get(ctx, a.key)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w: %w", a.key, domain.ErrStorageRead, err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		a.log.Debug("no blob at %s, starting empty", a.key)
		return []domain.Recipe{}, nil
	}

	var recipes []domain.Recipe
	if err := json.Unmarshal([]byte(raw), &recipes); err != nil {
		a.preserveCorrupt(ctx, raw)
		return nil, fmt.Errorf("decoding %s: %w: %w", a.key, domain.ErrStorageRead, err)
	}
	if recipes == nil {
		recipes = []domain.Recipe{}
	}

	for i := range recipes {
		normalize(&recipes[i])
	}

	a.log.Debug("loaded %d recipes from %s", len(recipes), a.key)
	return recipes, nil
}

// Save replaces the blob with the given collection.
func (a *BlobAdapter) Save(ctx context.Context, recipes []domain.Recipe) error {
	if recipes == nil {
		recipes = []domain.Recipe{}
	}
	data, err := json.Marshal(recipes)
	if err != nil {
		return fmt.Errorf("encoding recipes: %w: %w", domain.ErrStorageWrite, err)
	}
	if err := a.kv.Set(ctx, a.key, string(data)); err != nil {
		return fmt.Errorf("saving %s: %w: %w", a.key, domain.ErrStorageWrite, err)
	}
	a.log.Debug("saved %d recipes to %s (%d bytes)", len(recipes), a.key, len(data))
	return nil
}

// preserveCorrupt copies an unreadable blob aside so a later Save does not
// destroy it. Best-effort: failures are only logged.
func (a *BlobAdapter) preserveCorrupt(ctx context.Context, raw string) {
	backup := a.key + corruptSuffix
	if err := a.kv.Set(ctx, backup, raw); err != nil {
		a.log.Error("could not preserve unreadable blob at %s: %v", backup, err)
		return
	}
	a.log.Warn("unreadable blob at %s copied to %s", a.key, backup)
}

// normalize fills in fields older blobs may lack.
func normalize(r *domain.Recipe) {
	if strings.TrimSpace(r.Category) == "" {
		r.Category = domain.DefaultCategory
	}
	if r.Image != nil && *r.Image == "" {
		r.Image = nil
	}
}
