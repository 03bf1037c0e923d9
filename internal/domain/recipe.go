// Package domain defines the core types and interfaces for the recipe book.
// All other packages depend on domain; domain depends on nothing.
package domain

// DefaultCategory is applied to recipes created without a category.
const DefaultCategory = "General"

// SuggestedCategories are offered by the add form. Any other string is
// still a valid category.
var SuggestedCategories = []string{
	DefaultCategory,
	"Breakfast",
	"Lunch",
	"Dinner",
	"Dessert",
	"Snack",
	"Drinks",
}

// Recipe is the only persisted entity. Recipes are immutable once created;
// the collection changes only by prepending new ones or deleting by ID.
//
// The JSON shape is the on-disk format of the recipe blob.
type Recipe struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Image        *string `json:"image"` // nil when the recipe has no photo
	Category     string  `json:"category"`
	Servings     string  `json:"servings"`
	PrepTime     string  `json:"prepTime"`
	CookTime     string  `json:"cookTime"`
	Description  string  `json:"description"`
	Ingredients  string  `json:"ingredients"`
	Instructions string  `json:"instructions"`
}

// HasImage reports whether the recipe carries a photo reference.
func (r Recipe) HasImage() bool {
	return r.Image != nil && *r.Image != ""
}

// Clone returns a copy that shares no memory with r.
func (r Recipe) Clone() Recipe {
	if r.Image != nil {
		img := *r.Image
		r.Image = &img
	}
	return r
}

// ImageRef returns the photo reference, or "" when there is none.
func (r Recipe) ImageRef() string {
	if r.Image == nil {
		return ""
	}
	return *r.Image
}
