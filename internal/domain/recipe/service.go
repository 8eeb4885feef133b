package recipe

import (
	"context"

	"foodgram/internal/domain/catalog"
	"foodgram/internal/domain/user"
)

// CatalogStore resolves ingredient and tag references during validation.
// Implemented by the catalog repository.
type CatalogStore interface {
	GetIngredientsByIDs(ctx context.Context, ids []int64) ([]catalog.Ingredient, error)
	GetTagsByIDs(ctx context.Context, ids []int64) ([]catalog.Tag, error)
}

// MarkChecker reports which of the given recipes carry a per-user mark.
// Implemented by the favorite and cart repositories.
type MarkChecker interface {
	SetForRecipes(ctx context.Context, userID int64, recipeIDs []int64) (map[int64]bool, error)
}

// SubscriptionChecker reports which of the given authors the viewer follows.
// Implemented by the subscription repository.
type SubscriptionChecker interface {
	SetForAuthors(ctx context.Context, userID int64, authorIDs []int64) (map[int64]bool, error)
}

type Service struct {
	repo      Repository
	catalog   CatalogStore
	favorites MarkChecker
	cart      MarkChecker
	subs      SubscriptionChecker
}

func NewService(repo Repository, catalog CatalogStore, favorites, cart MarkChecker, subs SubscriptionChecker) *Service {
	return &Service{
		repo:      repo,
		catalog:   catalog,
		favorites: favorites,
		cart:      cart,
		subs:      subs,
	}
}

// Create validates the payload, resolves every reference, then writes the
// aggregate in one transaction and returns the hydrated read model.
func (s *Service) Create(ctx context.Context, authorID int64, req *CreateRequest) (*Response, error) {
	if err := validateCookingTime(req.CookingTime); err != nil {
		return nil, err
	}
	if err := validateIngredients(req.Ingredients); err != nil {
		return nil, err
	}
	if err := validateTags(req.Tags); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, req.Ingredients, req.Tags); err != nil {
		return nil, err
	}

	rec := &Recipe{
		Name:        req.Name,
		AuthorID:    authorID,
		Text:        req.Text,
		Image:       req.Image,
		CookingTime: req.CookingTime,
		Ingredients: toAmounts(req.Ingredients),
	}

	if err := s.repo.Create(ctx, rec, req.Tags); err != nil {
		return nil, err
	}
	return s.Get(ctx, authorID, rec.ID)
}

// Update applies a partial scalar update and, when supplied, replaces the
// ingredient and tag sets wholesale. Only the author may update.
func (s *Service) Update(ctx context.Context, actorID, id int64, req *UpdateRequest) (*Response, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.AuthorID != actorID {
		return nil, ErrNotAuthor
	}

	if req.Name != nil {
		rec.Name = *req.Name
	}
	if req.Image != nil {
		rec.Image = *req.Image
	}
	if req.Text != nil {
		rec.Text = *req.Text
	}
	if req.CookingTime != nil {
		rec.CookingTime = *req.CookingTime
	}
	if err := validateCookingTime(rec.CookingTime); err != nil {
		return nil, err
	}

	if req.Ingredients != nil {
		if err := validateIngredients(req.Ingredients); err != nil {
			return nil, err
		}
	}
	if req.Tags != nil {
		if err := validateTags(req.Tags); err != nil {
			return nil, err
		}
	}
	if err := s.checkReferences(ctx, req.Ingredients, req.Tags); err != nil {
		return nil, err
	}

	var amounts []IngredientAmount
	if req.Ingredients != nil {
		amounts = toAmounts(req.Ingredients)
	}

	if err := s.repo.Update(ctx, rec, amounts, req.Tags); err != nil {
		return nil, err
	}
	return s.Get(ctx, actorID, id)
}

// Delete removes the aggregate. Only the author may delete; the repository
// cascades to association rows, favorites, cart entries and short links.
func (s *Service) Delete(ctx context.Context, actorID, id int64) error {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rec.AuthorID != actorID {
		return ErrNotAuthor
	}
	return s.repo.Delete(ctx, id)
}

// Get returns the full read model as seen by viewerID (0 for anonymous).
func (s *Service) Get(ctx context.Context, viewerID, id int64) (*Response, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	responses, err := s.buildResponses(ctx, viewerID, []Recipe{*rec})
	if err != nil {
		return nil, err
	}
	return &responses[0], nil
}

func (s *Service) List(ctx context.Context, viewerID int64, f Filter) ([]Response, int64, error) {
	recipes, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	responses, err := s.buildResponses(ctx, viewerID, recipes)
	if err != nil {
		return nil, 0, err
	}
	return responses, total, nil
}

func (s *Service) checkReferences(ctx context.Context, ingredients []IngredientRef, tagIDs []int64) error {
	if len(ingredients) > 0 {
		ids := make([]int64, 0, len(ingredients))
		for _, ref := range ingredients {
			ids = append(ids, ref.ID)
		}
		found, err := s.catalog.GetIngredientsByIDs(ctx, ids)
		if err != nil {
			return err
		}
		if len(found) != len(ids) {
			return ErrUnknownIngredient
		}
	}

	if len(tagIDs) > 0 {
		found, err := s.catalog.GetTagsByIDs(ctx, tagIDs)
		if err != nil {
			return err
		}
		if len(found) != len(tagIDs) {
			return ErrUnknownTag
		}
	}
	return nil
}

// buildResponses resolves the per-viewer flags (is_favorited,
// is_in_shopping_cart, author is_subscribed) in one batched query each.
func (s *Service) buildResponses(ctx context.Context, viewerID int64, recipes []Recipe) ([]Response, error) {
	favorited := map[int64]bool{}
	inCart := map[int64]bool{}
	subscribed := map[int64]bool{}

	if viewerID > 0 && len(recipes) > 0 {
		recipeIDs := make([]int64, 0, len(recipes))
		authorIDs := make([]int64, 0, len(recipes))
		for i := range recipes {
			recipeIDs = append(recipeIDs, recipes[i].ID)
			authorIDs = append(authorIDs, recipes[i].AuthorID)
		}

		var err error
		if favorited, err = s.favorites.SetForRecipes(ctx, viewerID, recipeIDs); err != nil {
			return nil, err
		}
		if inCart, err = s.cart.SetForRecipes(ctx, viewerID, recipeIDs); err != nil {
			return nil, err
		}
		if subscribed, err = s.subs.SetForAuthors(ctx, viewerID, authorIDs); err != nil {
			return nil, err
		}
	}

	responses := make([]Response, 0, len(recipes))
	for i := range recipes {
		rec := &recipes[i]
		author := user.NewProfile(&rec.Author, subscribed[rec.AuthorID])
		responses = append(responses, newResponse(rec, author, favorited[rec.ID], inCart[rec.ID]))
	}
	return responses, nil
}

func toAmounts(refs []IngredientRef) []IngredientAmount {
	amounts := make([]IngredientAmount, 0, len(refs))
	for _, ref := range refs {
		amounts = append(amounts, IngredientAmount{
			IngredientID: ref.ID,
			Amount:       ref.Amount,
		})
	}
	return amounts
}

func validateCookingTime(v int) error {
	if v < MinCookingTime || v > MaxCookingTime {
		return ErrCookingTimeRange
	}
	return nil
}

func validateIngredients(refs []IngredientRef) error {
	if len(refs) == 0 {
		return ErrNoIngredients
	}
	seen := make(map[int64]struct{}, len(refs))
	for _, ref := range refs {
		if _, dup := seen[ref.ID]; dup {
			return ErrDuplicateIngredient
		}
		seen[ref.ID] = struct{}{}
		if ref.Amount < MinAmount || ref.Amount > MaxAmount {
			return ErrAmountRange
		}
	}
	return nil
}

func validateTags(ids []int64) error {
	if len(ids) == 0 {
		return ErrNoTags
	}
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return ErrDuplicateTag
		}
		seen[id] = struct{}{}
	}
	return nil
}
