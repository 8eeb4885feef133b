package shortlink

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"foodgram/internal/domain/recipe"
)

type stubRecipeGetter struct {
	ids map[int64]bool
}

func (s *stubRecipeGetter) GetByID(ctx context.Context, id int64) (*recipe.Recipe, error) {
	if !s.ids[id] {
		return nil, recipe.ErrNotFound
	}
	return &recipe.Recipe{ID: id}, nil
}

type stubRepo struct {
	byCode   map[string]*ShortLink
	byRecipe map[int64]*ShortLink
}

func newStubRepo() *stubRepo {
	return &stubRepo{byCode: map[string]*ShortLink{}, byRecipe: map[int64]*ShortLink{}}
}

func (s *stubRepo) Create(ctx context.Context, link *ShortLink) error {
	s.byCode[link.Code] = link
	s.byRecipe[link.RecipeID] = link
	return nil
}

func (s *stubRepo) GetByCode(ctx context.Context, code string) (*ShortLink, error) {
	link, ok := s.byCode[code]
	if !ok {
		return nil, ErrNotFound
	}
	return link, nil
}

func (s *stubRepo) GetByRecipeID(ctx context.Context, recipeID int64) (*ShortLink, error) {
	link, ok := s.byRecipe[recipeID]
	if !ok {
		return nil, ErrNotFound
	}
	return link, nil
}

func TestGetOrCreate_MintsAndReuses(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, &stubRecipeGetter{ids: map[int64]bool{5: true}}, "http://localhost:8080")

	url, err := svc.GetOrCreate(context.Background(), 5)
	assert.NoError(t, err)
	assert.Regexp(t, `^http://localhost:8080/s/[0-9a-f]{8}$`, url)

	again, err := svc.GetOrCreate(context.Background(), 5)
	assert.NoError(t, err)
	assert.Equal(t, url, again)
	assert.Len(t, repo.byCode, 1)
}

// wrappingRepo adds context to lookup errors the way a layered repository
// would; the service must still recognize the wrapped sentinel.
type wrappingRepo struct {
	*stubRepo
}

func (w *wrappingRepo) GetByRecipeID(ctx context.Context, recipeID int64) (*ShortLink, error) {
	link, err := w.stubRepo.GetByRecipeID(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("load short link: %w", err)
	}
	return link, nil
}

func TestGetOrCreate_WrappedLookupMiss(t *testing.T) {
	repo := &wrappingRepo{stubRepo: newStubRepo()}
	svc := NewService(repo, &stubRecipeGetter{ids: map[int64]bool{5: true}}, "http://localhost:8080")

	url, err := svc.GetOrCreate(context.Background(), 5)
	assert.NoError(t, err)
	assert.Regexp(t, `^http://localhost:8080/s/[0-9a-f]{8}$`, url)
	assert.Len(t, repo.byCode, 1)
}

func TestGetOrCreate_UnknownRecipe(t *testing.T) {
	svc := NewService(newStubRepo(), &stubRecipeGetter{ids: map[int64]bool{}}, "http://localhost:8080")

	_, err := svc.GetOrCreate(context.Background(), 99)
	assert.ErrorIs(t, err, recipe.ErrNotFound)
}

func TestResolve(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, &stubRecipeGetter{ids: map[int64]bool{5: true}}, "http://localhost:8080")

	url, err := svc.GetOrCreate(context.Background(), 5)
	assert.NoError(t, err)

	code := url[len("http://localhost:8080/s/"):]
	path, err := svc.Resolve(context.Background(), code)
	assert.NoError(t, err)
	assert.Equal(t, "/recipes/5/", path)
}

func TestResolve_UnknownCode(t *testing.T) {
	svc := NewService(newStubRepo(), &stubRecipeGetter{}, "http://localhost:8080")

	_, err := svc.Resolve(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, ErrNotFound)
}
