package subscription

import (
	"foodgram/internal/domain/recipe"
	"foodgram/internal/domain/user"
)

// AuthorResponse is the followed author's profile with their recipes
// (optionally truncated by recipes_limit) and the untruncated total.
type AuthorResponse struct {
	user.Profile
	Recipes      []recipe.Summary `json:"recipes"`
	RecipesCount int64            `json:"recipes_count"`
}
