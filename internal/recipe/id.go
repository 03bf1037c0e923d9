package recipe

import "github.com/google/uuid"

// NewID returns a random v4 UUID string for a new recipe.
func NewID() string {
	return uuid.NewString()
}
