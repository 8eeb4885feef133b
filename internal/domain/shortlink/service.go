package shortlink

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"foodgram/internal/domain/recipe"
	"foodgram/internal/pkg/dberr"
)

const codeLength = 8

// RecipeGetter verifies the recipe exists before a link is minted.
// Implemented by the recipe repository.
type RecipeGetter interface {
	GetByID(ctx context.Context, id int64) (*recipe.Recipe, error)
}

type Service struct {
	repo    Repository
	recipes RecipeGetter
	baseURL string
}

func NewService(repo Repository, recipes RecipeGetter, baseURL string) *Service {
	return &Service{repo: repo, recipes: recipes, baseURL: baseURL}
}

// GetOrCreate returns the short URL for the recipe, minting a link on first
// request. Codes come from a trimmed UUID; a collision retries with a fresh
// one.
func (s *Service) GetOrCreate(ctx context.Context, recipeID int64) (string, error) {
	if _, err := s.recipes.GetByID(ctx, recipeID); err != nil {
		return "", err
	}

	link, err := s.repo.GetByRecipeID(ctx, recipeID)
	if err == nil {
		return s.shortURL(link.Code), nil
	}
	if !errors.Is(err, ErrNotFound) {
		return "", err
	}

	for attempt := 0; attempt < 3; attempt++ {
		link = &ShortLink{Code: newCode(), RecipeID: recipeID}
		err = s.repo.Create(ctx, link)
		if err == nil {
			return s.shortURL(link.Code), nil
		}
		if !dberr.IsUniqueViolation(err) {
			return "", err
		}
		// a concurrent request may have minted the recipe's link already
		if existing, getErr := s.repo.GetByRecipeID(ctx, recipeID); getErr == nil {
			return s.shortURL(existing.Code), nil
		}
	}
	return "", err
}

// Resolve maps a code to the recipe path the caller should redirect to.
func (s *Service) Resolve(ctx context.Context, code string) (string, error) {
	link, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("/recipes/%d/", link.RecipeID), nil
}

func (s *Service) shortURL(code string) string {
	return s.baseURL + "/s/" + code
}

func newCode() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:codeLength]
}
