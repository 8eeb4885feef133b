package subscription

import (
	"context"

	"foodgram/internal/domain/recipe"
	"foodgram/internal/domain/user"
)

// UserGetter resolves the followed author. Implemented by the user
// repository.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*user.User, error)
}

// RecipeLister supplies the author's recipes for the response. Implemented
// by the recipe repository.
type RecipeLister interface {
	ListByAuthor(ctx context.Context, authorID int64, limit int) ([]recipe.Recipe, error)
	CountByAuthor(ctx context.Context, authorID int64) (int64, error)
}

type Service struct {
	repo    Repository
	users   UserGetter
	recipes RecipeLister
}

func NewService(repo Repository, users UserGetter, recipes RecipeLister) *Service {
	return &Service{repo: repo, users: users, recipes: recipes}
}

// Subscribe follows the author and returns their profile view.
// recipesLimit 0 means no truncation.
func (s *Service) Subscribe(ctx context.Context, userID, authorID int64, recipesLimit int) (*AuthorResponse, error) {
	if userID == authorID {
		return nil, ErrSelfSubscribe
	}

	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, userID, authorID); err != nil {
		return nil, err
	}

	return s.authorResponse(ctx, author, recipesLimit)
}

func (s *Service) Unsubscribe(ctx context.Context, userID, authorID int64) error {
	if _, err := s.users.GetByID(ctx, authorID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, userID, authorID)
}

// List returns the authors the user follows, each with their recipes.
func (s *Service) List(ctx context.Context, userID int64, recipesLimit, limit, offset int) ([]AuthorResponse, int64, error) {
	authorIDs, total, err := s.repo.ListAuthorIDs(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]AuthorResponse, 0, len(authorIDs))
	for _, authorID := range authorIDs {
		author, err := s.users.GetByID(ctx, authorID)
		if err != nil {
			return nil, 0, err
		}
		resp, err := s.authorResponse(ctx, author, recipesLimit)
		if err != nil {
			return nil, 0, err
		}
		responses = append(responses, *resp)
	}
	return responses, total, nil
}

func (s *Service) authorResponse(ctx context.Context, author *user.User, recipesLimit int) (*AuthorResponse, error) {
	recipes, err := s.recipes.ListByAuthor(ctx, author.ID, recipesLimit)
	if err != nil {
		return nil, err
	}
	count, err := s.recipes.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}

	summaries := make([]recipe.Summary, 0, len(recipes))
	for i := range recipes {
		summaries = append(summaries, recipe.NewSummary(&recipes[i]))
	}

	return &AuthorResponse{
		Profile:      user.NewProfile(author, true),
		Recipes:      summaries,
		RecipesCount: count,
	}, nil
}
