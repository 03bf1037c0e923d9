// Package engine implements the recipe book's view-state machine.
//
// The Controller has three views: LIST, ADD (with a draft buffer) and
// DETAIL (with a selected recipe). It decides which repository operation
// each trigger may reach and always falls back to LIST.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/logger"
)

// Repository is the subset of the recipe repository the controller uses.
type Repository interface {
	Create(ctx context.Context, draft domain.Draft) (domain.Recipe, error)
	Delete(ctx context.Context, id string) error
	List() []domain.Recipe
	Get(id string) (domain.Recipe, bool)
	OnRemove(fn func(id string))
}

// Option configures the controller.
type Option func(*Controller)

// WithDeletePrompt sets the confirmation message format. It receives the
// recipe title as its only argument.
func WithDeletePrompt(format string) Option {
	return func(c *Controller) {
		c.deletePrompt = format
	}
}

// Controller drives the view states. Triggers are expected from one event
// loop at a time; reads (View, Status, ...) are safe from any goroutine.
type Controller struct {
	repo         Repository
	confirm      domain.Confirmer
	picker       domain.ImagePicker
	log          *logger.Logger
	deletePrompt string

	mu       sync.RWMutex
	view     domain.View
	draft    domain.Draft
	selected string // recipe ID while in DETAIL
}

// New creates a controller in the LIST view and subscribes it to
// repository removals.
func New(repo Repository, confirm domain.Confirmer, picker domain.ImagePicker, log *logger.Logger, opts ...Option) *Controller {
	c := &Controller{
		repo:         repo,
		confirm:      confirm,
		picker:       picker,
		log:          log,
		deletePrompt: "Delete %q? This cannot be undone.",
		view:         domain.ViewList,
	}
	for _, opt := range opts {
		opt(c)
	}
	repo.OnRemove(c.handleRemoved)
	return c
}

// ── Reads ────────────────────────────────────────────────────────

// View returns the current view.
func (c *Controller) View() domain.View {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.view
}

// Draft returns a copy of the draft buffer. It is empty outside ADD.
func (c *Controller) Draft() domain.Draft {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.draft
}

// Selected returns the recipe shown in DETAIL.
func (c *Controller) Selected() (domain.Recipe, bool) {
	c.mu.RLock()
	id := c.selected
	c.mu.RUnlock()

	if id == "" {
		return domain.Recipe{}, false
	}
	return c.repo.Get(id)
}

// Recipes returns the collection, newest first.
func (c *Controller) Recipes() []domain.Recipe {
	return c.repo.List()
}

// Status returns a snapshot for status displays.
func (c *Controller) Status() domain.ViewStatus {
	recipes := c.repo.List()

	c.mu.RLock()
	defer c.mu.RUnlock()

	st := domain.ViewStatus{View: c.view, Recipes: len(recipes)}
	switch c.view {
	case domain.ViewAdd:
		st.Title = c.draft.Title
	case domain.ViewDetail:
		for _, r := range recipes {
			if r.ID == c.selected {
				st.Title = r.Title
				break
			}
		}
	}
	return st
}

// ── LIST ─────────────────────────────────────────────────────────

// OpenAdd moves LIST → ADD with an empty draft.
func (c *Controller) OpenAdd() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.require(domain.ViewList); err != nil {
		return err
	}
	c.draft = domain.Draft{}
	c.view = domain.ViewAdd
	c.log.Debug("view: list -> add")
	return nil
}

// Select moves LIST → DETAIL for the recipe with the given ID.
func (c *Controller) Select(id string) error {
	if _, ok := c.repo.Get(id); !ok {
		return fmt.Errorf("recipe %s: %w", id, domain.ErrNotFound)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.require(domain.ViewList); err != nil {
		return err
	}
	c.selected = id
	c.view = domain.ViewDetail
	c.log.Debug("view: list -> detail (%s)", id)
	return nil
}

// SelectIndex selects by 1-based position in the list.
func (c *Controller) SelectIndex(n int) error {
	recipes := c.repo.List()
	if n < 1 || n > len(recipes) {
		return fmt.Errorf("no recipe #%d: %w", n, domain.ErrNotFound)
	}
	return c.Select(recipes[n-1].ID)
}

// ── ADD ──────────────────────────────────────────────────────────

// SetField replaces one draft field.
func (c *Controller) SetField(name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.require(domain.ViewAdd); err != nil {
		return err
	}
	return c.draft.SetField(name, value)
}

// AppendField adds a line to one draft field.
func (c *Controller) AppendField(name, line string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.require(domain.ViewAdd); err != nil {
		return err
	}
	return c.draft.AppendField(name, line)
}

// ClearImage drops the draft's photo.
func (c *Controller) ClearImage() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.require(domain.ViewAdd); err != nil {
		return err
	}
	c.draft.ClearImage()
	return nil
}

// PickImage asks the image picker for a photo. A cancelled pick leaves
// the draft as it was and returns false.
func (c *Controller) PickImage(ctx context.Context) (bool, error) {
	if err := c.requireView(domain.ViewAdd); err != nil {
		return false, err
	}

	ref, ok, err := c.picker.Pick(ctx)
	if err != nil {
		return false, fmt.Errorf("picking image: %w", err)
	}
	if !ok {
		c.log.Debug("image pick cancelled")
		return false, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.require(domain.ViewAdd); err != nil {
		return false, err
	}
	c.draft.SetImage(ref)
	c.log.Debug("draft image set to %s", ref)
	return true, nil
}

// Cancel moves ADD → LIST, discarding the draft.
func (c *Controller) Cancel() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.require(domain.ViewAdd); err != nil {
		return err
	}
	c.draft = domain.Draft{}
	c.view = domain.ViewList
	c.log.Debug("view: add -> list (cancelled)")
	return nil
}

// Save validates the draft and creates the recipe. On success the draft
// is discarded and the view returns to LIST. On a validation or storage
// failure the view and draft are unchanged so the user can fix and retry.
func (c *Controller) Save(ctx context.Context) (domain.Recipe, error) {
	c.mu.RLock()
	view, draft := c.view, c.draft
	c.mu.RUnlock()

	if view != domain.ViewAdd {
		return domain.Recipe{}, wrongView(view, domain.ViewAdd)
	}
	if err := draft.Validate(); err != nil {
		return domain.Recipe{}, err
	}

	rec, err := c.repo.Create(ctx, draft)
	if err != nil {
		return domain.Recipe{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = domain.Draft{}
	c.view = domain.ViewList
	c.log.Debug("view: add -> list (saved %s)", rec.ID)
	return rec, nil
}

// ── DETAIL ───────────────────────────────────────────────────────

// Back moves DETAIL → LIST.
func (c *Controller) Back() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.require(domain.ViewDetail); err != nil {
		return err
	}
	c.toList()
	c.log.Debug("view: detail -> list")
	return nil
}

// Delete asks for confirmation, then deletes the selected recipe. It
// returns false when the user declined; the view stays in DETAIL. A
// recipe that is already gone counts as deleted.
func (c *Controller) Delete(ctx context.Context) (bool, error) {
	rec, ok, err := c.selectedInDetail()
	if err != nil {
		return false, err
	}
	if !ok {
		// Selection vanished underneath us; resolve to LIST.
		c.mu.Lock()
		c.toList()
		c.mu.Unlock()
		return true, nil
	}

	yes, err := c.confirm.Confirm(ctx, fmt.Sprintf(c.deletePrompt, rec.Title))
	if err != nil {
		c.log.Debug("delete confirmation aborted: %v", err)
		return false, nil
	}
	if !yes {
		c.log.Debug("delete of %s declined", rec.ID)
		return false, nil
	}

	err = c.repo.Delete(ctx, rec.ID)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotFound):
		c.log.Warn("delete: recipe %s was already gone", rec.ID)
	default:
		return false, err
	}

	// The removal listener has usually done this already.
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.view == domain.ViewDetail && c.selected == rec.ID {
		c.toList()
	}
	return true, nil
}

// handleRemoved keeps the selection pointing at an existing recipe: if the
// selected recipe is removed by any path, the controller returns to LIST.
func (c *Controller) handleRemoved(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.view == domain.ViewDetail && c.selected == id {
		c.log.Debug("selected recipe %s removed, returning to list", id)
		c.toList()
	}
}

func (c *Controller) selectedInDetail() (domain.Recipe, bool, error) {
	c.mu.RLock()
	view, id := c.view, c.selected
	c.mu.RUnlock()

	if view != domain.ViewDetail {
		return domain.Recipe{}, false, wrongView(view, domain.ViewDetail)
	}
	rec, ok := c.repo.Get(id)
	return rec, ok, nil
}

// toList must be called with c.mu held.
func (c *Controller) toList() {
	c.selected = ""
	c.view = domain.ViewList
}

// require must be called with c.mu held.
func (c *Controller) require(v domain.View) error {
	if c.view != v {
		return wrongView(c.view, v)
	}
	return nil
}

func (c *Controller) requireView(v domain.View) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.require(v)
}

func wrongView(current, want domain.View) error {
	return fmt.Errorf("%w: in %s view, need %s", domain.ErrWrongView, current, want)
}
