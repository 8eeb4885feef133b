package subscription

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"foodgram/internal/domain/recipe"
	"foodgram/internal/domain/user"
)

type stubUserGetter struct {
	users map[int64]*user.User
}

func (s *stubUserGetter) GetByID(ctx context.Context, id int64) (*user.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

type stubRecipeLister struct {
	byAuthor map[int64][]recipe.Recipe
	limits   []int
}

func (s *stubRecipeLister) ListByAuthor(ctx context.Context, authorID int64, limit int) ([]recipe.Recipe, error) {
	s.limits = append(s.limits, limit)
	recipes := s.byAuthor[authorID]
	if limit > 0 && limit < len(recipes) {
		recipes = recipes[:limit]
	}
	return recipes, nil
}

func (s *stubRecipeLister) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	return int64(len(s.byAuthor[authorID])), nil
}

type stubRepo struct {
	pairs map[[2]int64]bool // (userID, authorID)
}

func (s *stubRepo) Create(ctx context.Context, userID, authorID int64) error {
	key := [2]int64{userID, authorID}
	if s.pairs[key] {
		return ErrAlreadySubscribed
	}
	s.pairs[key] = true
	return nil
}

func (s *stubRepo) Delete(ctx context.Context, userID, authorID int64) error {
	key := [2]int64{userID, authorID}
	if !s.pairs[key] {
		return ErrNotSubscribed
	}
	delete(s.pairs, key)
	return nil
}

func (s *stubRepo) ListAuthorIDs(ctx context.Context, userID int64, limit, offset int) ([]int64, int64, error) {
	var ids []int64
	for key := range s.pairs {
		if key[0] == userID {
			ids = append(ids, key[1])
		}
	}
	return ids, int64(len(ids)), nil
}

func (s *stubRepo) SetForAuthors(ctx context.Context, userID int64, authorIDs []int64) (map[int64]bool, error) {
	set := make(map[int64]bool)
	for _, id := range authorIDs {
		if s.pairs[[2]int64{userID, id}] {
			set[id] = true
		}
	}
	return set, nil
}

func newTestService() (*Service, *stubRepo, *stubRecipeLister) {
	repo := &stubRepo{pairs: map[[2]int64]bool{}}
	users := &stubUserGetter{users: map[int64]*user.User{
		1: {ID: 1, Username: "alice"},
		2: {ID: 2, Username: "bob"},
	}}
	recipes := &stubRecipeLister{byAuthor: map[int64][]recipe.Recipe{
		2: {
			{ID: 10, Name: "Shortbread"},
			{ID: 11, Name: "Scones"},
			{ID: 12, Name: "Tart"},
		},
	}}
	return NewService(repo, users, recipes), repo, recipes
}

func TestSubscribe_Self(t *testing.T) {
	svc, repo, _ := newTestService()

	_, err := svc.Subscribe(context.Background(), 1, 1, 0)
	assert.ErrorIs(t, err, ErrSelfSubscribe)
	assert.Empty(t, repo.pairs)
}

func TestSubscribe_UnknownAuthor(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Subscribe(context.Background(), 1, 99, 0)
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestSubscribe_Duplicate(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Subscribe(context.Background(), 1, 2, 0)
	assert.NoError(t, err)

	_, err = svc.Subscribe(context.Background(), 1, 2, 0)
	assert.ErrorIs(t, err, ErrAlreadySubscribed)
}

func TestSubscribe_ReturnsAuthorWithRecipes(t *testing.T) {
	svc, _, _ := newTestService()

	resp, err := svc.Subscribe(context.Background(), 1, 2, 0)
	assert.NoError(t, err)
	assert.Equal(t, "bob", resp.Username)
	assert.True(t, resp.IsSubscribed)
	assert.Len(t, resp.Recipes, 3)
	assert.Equal(t, int64(3), resp.RecipesCount)
}

func TestSubscribe_RecipesLimitTruncates(t *testing.T) {
	svc, _, recipes := newTestService()

	resp, err := svc.Subscribe(context.Background(), 1, 2, 2)
	assert.NoError(t, err)
	assert.Len(t, resp.Recipes, 2)
	// the count reflects the full catalogue, not the truncated page
	assert.Equal(t, int64(3), resp.RecipesCount)
	assert.Equal(t, []int{2}, recipes.limits)
}

func TestUnsubscribe(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Subscribe(context.Background(), 1, 2, 0)
	assert.NoError(t, err)

	assert.NoError(t, svc.Unsubscribe(context.Background(), 1, 2))
	assert.ErrorIs(t, svc.Unsubscribe(context.Background(), 1, 2), ErrNotSubscribed)
}

func TestList(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Subscribe(context.Background(), 1, 2, 0)
	assert.NoError(t, err)

	responses, total, err := svc.List(context.Background(), 1, 0, 10, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, responses, 1)
	assert.Equal(t, "bob", responses[0].Username)
	assert.Equal(t, int64(3), responses[0].RecipesCount)
}
