package cart

import (
	"context"
	"fmt"
	"strings"
	"time"

	"foodgram/internal/domain/recipe"
	"foodgram/internal/domain/user"
)

// RecipeGetter resolves the recipe being added. Implemented by the recipe
// repository.
type RecipeGetter interface {
	GetByID(ctx context.Context, id int64) (*recipe.Recipe, error)
}

// UserGetter resolves the cart owner for the report header. Implemented by
// the user repository.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*user.User, error)
}

type Service struct {
	repo    Repository
	recipes RecipeGetter
	users   UserGetter
	now     func() time.Time
}

func NewService(repo Repository, recipes RecipeGetter, users UserGetter) *Service {
	return &Service{
		repo:    repo,
		recipes: recipes,
		users:   users,
		now:     time.Now,
	}
}

// Add puts the recipe into the user's cart and returns its summary view.
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

// BuildReport renders the aggregated shopping list as plain text. It is a
// pure read: an empty cart yields ErrEmptyCart, never an empty report.
func (s *Service) BuildReport(ctx context.Context, userID int64) (string, string, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", "", err
	}

	hasEntries, err := s.repo.HasEntries(ctx, userID)
	if err != nil {
		return "", "", err
	}
	if !hasEntries {
		return "", "", ErrEmptyCart
	}

	items, err := s.repo.AggregateItems(ctx, userID)
	if err != nil {
		return "", "", err
	}

	today := s.now()

	var b strings.Builder
	fmt.Fprintf(&b, "Shopping list for: %s\n\n", u.FullName())
	fmt.Fprintf(&b, "Date: %s\n\n", today.Format("2006-01-02"))
	for _, item := range items {
		fmt.Fprintf(&b, "- %s (%s) - %d\n", item.Name, item.MeasurementUnit, item.Total)
	}
	fmt.Fprintf(&b, "\nGenerated by Foodgram (%d)\n", today.Year())

	filename := fmt.Sprintf("%s_shopping_list.txt", u.Username)
	return b.String(), filename, nil
}
