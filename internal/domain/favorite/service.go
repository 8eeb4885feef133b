package favorite

import (
	"context"

	"foodgram/internal/domain/recipe"
)

// RecipeGetter resolves the recipe being marked. Implemented by the recipe
// repository.
type RecipeGetter interface {
	GetByID(ctx context.Context, id int64) (*recipe.Recipe, error)
}

type Service struct {
	repo    Repository
	recipes RecipeGetter
}

func NewService(repo Repository, recipes RecipeGetter) *Service {
	return &Service{repo: repo, recipes: recipes}
}

// Add marks the recipe for the user and returns its summary view.
func (s *Service) Add(ctx context.Context, userID, recipeID int64) (*recipe.Summary, error) {
	rec, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Add(ctx, userID, recipeID); err != nil {
		return nil, err
	}

	summary := recipe.NewSummary(rec)
	return &summary, nil
}

func (s *Service) Remove(ctx context.Context, userID, recipeID int64) error {
	if _, err := s.recipes.GetByID(ctx, recipeID); err != nil {
		return err
	}
	return s.repo.Remove(ctx, userID, recipeID)
}
