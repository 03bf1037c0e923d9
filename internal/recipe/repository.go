package recipe

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/logger"
)

// maxIDAttempts bounds retries when the generator returns a used ID.
const maxIDAttempts = 8

// Option configures the repository.
type Option func(*Repository)

// WithIDGenerator replaces the UUID generator, mostly for tests.
func WithIDGenerator(fn func() string) Option {
	return func(r *Repository) {
		r.newID = fn
	}
}

// Repository owns the canonical recipe collection, newest first.
//
// Create and Delete are all-or-nothing: the in-memory collection only
// changes once the durable write has succeeded, so after any reported
// success memory and storage agree, and after any failure memory is what
// it was before the call. Mutations are serialized across the whole
// persistence round-trip.
type Repository struct {
	mu        sync.Mutex
	store     Persistence
	log       *logger.Logger
	newID     func() string
	recipes   []domain.Recipe
	issued    map[string]struct{} // every ID seen this process, never reused
	loaded    bool
	listeners []func(id string)
}

// NewRepository creates an empty, not yet initialized repository.
func NewRepository(store Persistence, log *logger.Logger, opts ...Option) *Repository {
	r := &Repository{
		store:   store,
		log:     log,
		newID:   NewID,
		recipes: []domain.Recipe{},
		issued:  make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Initialize loads the collection from storage. On a read failure the
// repository still becomes usable with an empty collection and the error
// is returned for the caller to report.
func (r *Repository) Initialize(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	recipes, err := r.store.Load(ctx)
	r.loaded = true
	if err != nil {
		r.recipes = []domain.Recipe{}
		r.log.Error("loading recipes failed, starting with an empty book: %v", err)
		return err
	}

	r.recipes = recipes
	for _, rec := range recipes {
		r.issued[rec.ID] = struct{}{}
	}
	r.log.Info("loaded %d recipes", len(recipes))
	return nil
}

// Create validates the draft, assigns an ID, prepends the recipe, and
// persists the collection. Nothing changes if validation or the write
// fails. Before Initialize it fails with domain.ErrStorageWrite rather than
// overwrite the stored collection.
func (r *Repository) Create(ctx context.Context, draft domain.Draft) (domain.Recipe, error) {
	if err := draft.Validate(); err != nil {
		return domain.Recipe{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireLoaded(); err != nil {
		return domain.Recipe{}, err
	}

	id, err := r.uniqueID()
	if err != nil {
		return domain.Recipe{}, err
	}
	rec := draft.ToRecipe(id)

	next := make([]domain.Recipe, 0, len(r.recipes)+1)
	next = append(next, rec)
	next = append(next, r.recipes...)

	if err := r.store.Save(ctx, next); err != nil {
		r.log.Error("create %q rolled back: %v", rec.Title, err)
		return domain.Recipe{}, err
	}

	r.recipes = next
	r.issued[id] = struct{}{}
	r.log.Info("created recipe %s (%q)", id, rec.Title)
	return rec.Clone(), nil
}

// Delete removes the recipe with the given ID and persists the reduced
// collection. An unknown ID fails with domain.ErrNotFound without touching
// storage.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.delete(ctx, id); err != nil {
		return err
	}
	r.notifyRemoved(id)
	return nil
}

func (r *Repository) delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireLoaded(); err != nil {
		return err
	}

	idx := r.indexOf(id)
	if idx < 0 {
		r.log.Debug("delete: recipe not found: %s", id)
		return fmt.Errorf("recipe %s: %w", id, domain.ErrNotFound)
	}

	next := make([]domain.Recipe, 0, len(r.recipes)-1)
	next = append(next, r.recipes[:idx]...)
	next = append(next, r.recipes[idx+1:]...)

	if err := r.store.Save(ctx, next); err != nil {
		r.log.Error("delete %s rolled back: %v", id, err)
		return err
	}

	title := r.recipes[idx].Title
	r.recipes = next
	r.log.Info("deleted recipe %s (%q)", id, title)
	return nil
}

// List returns a copy of the collection, newest first.
func (r *Repository) List() []domain.Recipe {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Recipe, len(r.recipes))
	for i, rec := range r.recipes {
		out[i] = rec.Clone()
	}
	return out
}

// Get returns the recipe with the given ID.
func (r *Repository) Get(id string) (domain.Recipe, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if idx := r.indexOf(id); idx >= 0 {
		return r.recipes[idx].Clone(), true
	}
	return domain.Recipe{}, false
}

// Len returns the number of recipes.
func (r *Repository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.recipes)
}

// OnRemove registers fn to be called with the ID of every recipe removed
// by a successful Delete. Listeners run after the repository lock is
// released and may call back into the repository.
func (r *Repository) OnRemove(fn func(id string)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, fn)
}

func (r *Repository) notifyRemoved(id string) {
	r.mu.Lock()
	listeners := make([]func(string), len(r.listeners))
	copy(listeners, r.listeners)
	r.mu.Unlock()

	for _, fn := range listeners {
		fn(id)
	}
}

// requireLoaded must be called with r.mu held.
func (r *Repository) requireLoaded() error {
	if !r.loaded {
		return fmt.Errorf("repository not initialized: %w", domain.ErrStorageWrite)
	}
	return nil
}

// indexOf must be called with r.mu held.
func (r *Repository) indexOf(id string) int {
	for i := range r.recipes {
		if r.recipes[i].ID == id {
			return i
		}
	}
	return -1
}

// uniqueID must be called with r.mu held.
func (r *Repository) uniqueID() (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := r.newID()
		if id == "" {
			continue
		}
		if _, used := r.issued[id]; !used {
			return id, nil
		}
		r.log.Warn("id generator returned used id %s, retrying", id)
	}
	return "", errors.New("could not generate a unique recipe id")
}
