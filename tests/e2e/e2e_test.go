package e2e

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"foodgram/internal/database"
	"foodgram/internal/domain/cart"
	"foodgram/internal/domain/catalog"
	"foodgram/internal/domain/favorite"
	"foodgram/internal/domain/recipe"
	"foodgram/internal/domain/shortlink"
	"foodgram/internal/domain/subscription"
	"foodgram/internal/domain/user"
)

// Suite drives the real repositories over in-memory SQLite so the
// store-level behavior (unique indexes, transactions, aggregation SQL)
// is exercised, not re-implemented.
type Suite struct {
	db        *gorm.DB
	users     user.Repository
	catalog   catalog.Repository
	recipes   recipe.Repository
	favorites favorite.Repository
	cart      cart.Repository
	subs      subscription.Repository
	links     shortlink.Repository
}

func setupSuite(t *testing.T) *Suite {
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, database.Migrate(db), "Failed to migrate test database")

	return &Suite{
		db:        db,
		users:     user.NewRepository(db),
		catalog:   catalog.NewRepository(db),
		recipes:   recipe.NewRepository(db),
		favorites: favorite.NewRepository(db),
		cart:      cart.NewRepository(db),
		subs:      subscription.NewRepository(db),
		links:     shortlink.NewRepository(db),
	}
}

func (s *Suite) createUser(t *testing.T, username string) *user.User {
	u := &user.User{
		Email:        username + "@test.com",
		Username:     username,
		FirstName:    username,
		LastName:     "Test",
		PasswordHash: "$2a$10$dummy",
	}
	require.NoError(t, s.db.Create(u).Error)
	return u
}

func (s *Suite) createIngredient(t *testing.T, name, unit string) *catalog.Ingredient {
	ing := &catalog.Ingredient{Name: name, MeasurementUnit: unit}
	require.NoError(t, s.db.Create(ing).Error)
	return ing
}

func (s *Suite) createTag(t *testing.T, name, slug string) *catalog.Tag {
	tag := &catalog.Tag{Name: name, Slug: slug}
	require.NoError(t, s.db.Create(tag).Error)
	return tag
}

func (s *Suite) createRecipe(t *testing.T, authorID int64, name string, tagIDs []int64, amounts ...recipe.IngredientAmount) *recipe.Recipe {
	rec := &recipe.Recipe{
		Name:        name,
		AuthorID:    authorID,
		Text:        "test text",
		Image:       "recipes/" + name + ".png",
		CookingTime: 20,
		Ingredients: amounts,
	}
	require.NoError(t, s.recipes.Create(context.Background(), rec, tagIDs))
	return rec
}

func (s *Suite) countRows(t *testing.T, table string, recipeID int64) int64 {
	var n int64
	require.NoError(t, s.db.Table(table).Where("recipe_id = ?", recipeID).Count(&n).Error)
	return n
}

func TestCartAggregation(t *testing.T) {
	s := setupSuite(t)
	ctx := context.Background()

	alice := s.createUser(t, "alice")
	bob := s.createUser(t, "bob")
	flour := s.createIngredient(t, "flour", "g")
	milk := s.createIngredient(t, "milk", "ml")
	tag := s.createTag(t, "Breakfast", "breakfast")

	pancakes := s.createRecipe(t, alice.ID, "pancakes", []int64{tag.ID},
		recipe.IngredientAmount{IngredientID: flour.ID, Amount: 200},
		recipe.IngredientAmount{IngredientID: milk.ID, Amount: 50},
	)
	bread := s.createRecipe(t, alice.ID, "bread", []int64{tag.ID},
		recipe.IngredientAmount{IngredientID: flour.ID, Amount: 300},
	)

	require.NoError(t, s.cart.Add(ctx, bob.ID, pancakes.ID))
	require.NoError(t, s.cart.Add(ctx, bob.ID, bread.ID))

	// shared ingredients are summed across recipes, lines ordered by name
	items, err := s.cart.AggregateItems(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, []cart.Item{
		{Name: "flour", MeasurementUnit: "g", Total: 500},
		{Name: "milk", MeasurementUnit: "ml", Total: 50},
	}, items)

	// another user's cart does not leak in
	items, err = s.cart.AggregateItems(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUniqueIndexesDriveConflicts(t *testing.T) {
	s := setupSuite(t)
	ctx := context.Background()

	alice := s.createUser(t, "alice")
	bob := s.createUser(t, "bob")
	flour := s.createIngredient(t, "flour", "g")
	tag := s.createTag(t, "Dinner", "dinner")
	rec := s.createRecipe(t, alice.ID, "bread", []int64{tag.ID},
		recipe.IngredientAmount{IngredientID: flour.ID, Amount: 300},
	)

	require.NoError(t, s.favorites.Add(ctx, bob.ID, rec.ID))
	assert.ErrorIs(t, s.favorites.Add(ctx, bob.ID, rec.ID), favorite.ErrAlreadyFavorited)

	require.NoError(t, s.cart.Add(ctx, bob.ID, rec.ID))
	assert.ErrorIs(t, s.cart.Add(ctx, bob.ID, rec.ID), cart.ErrAlreadyInCart)

	require.NoError(t, s.subs.Create(ctx, bob.ID, alice.ID))
	assert.ErrorIs(t, s.subs.Create(ctx, bob.ID, alice.ID), subscription.ErrAlreadySubscribed)

	// a duplicate user row hits the email unique index
	dup := &user.User{Email: alice.Email, Username: "other", PasswordHash: "x"}
	assert.Error(t, s.db.Create(dup).Error)
}

func TestUpdateReplacesAssociationSets(t *testing.T) {
	s := setupSuite(t)
	ctx := context.Background()

	alice := s.createUser(t, "alice")
	flour := s.createIngredient(t, "flour", "g")
	milk := s.createIngredient(t, "milk", "ml")
	sugar := s.createIngredient(t, "sugar", "g")
	breakfast := s.createTag(t, "Breakfast", "breakfast")
	dinner := s.createTag(t, "Dinner", "dinner")

	rec := s.createRecipe(t, alice.ID, "pancakes", []int64{breakfast.ID, dinner.ID},
		recipe.IngredientAmount{IngredientID: flour.ID, Amount: 200},
		recipe.IngredientAmount{IngredientID: milk.ID, Amount: 50},
	)

	rec.Name = "sugar pancakes"
	err := s.recipes.Update(ctx, rec,
		[]recipe.IngredientAmount{{IngredientID: sugar.ID, Amount: 100}},
		[]int64{dinner.ID},
	)
	require.NoError(t, err)

	// old rows are gone, not merged with the new set
	assert.Equal(t, int64(1), s.countRows(t, "ingredient_amounts", rec.ID))
	assert.Equal(t, int64(1), s.countRows(t, "recipe_tags", rec.ID))

	got, err := s.recipes.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "sugar pancakes", got.Name)
	require.Len(t, got.Ingredients, 1)
	assert.Equal(t, sugar.ID, got.Ingredients[0].IngredientID)
	assert.Equal(t, 100, got.Ingredients[0].Amount)
	require.Len(t, got.Tags, 1)
	assert.Equal(t, "dinner", got.Tags[0].Slug)
}

func TestDeleteCascades(t *testing.T) {
	s := setupSuite(t)
	ctx := context.Background()

	alice := s.createUser(t, "alice")
	bob := s.createUser(t, "bob")
	flour := s.createIngredient(t, "flour", "g")
	tag := s.createTag(t, "Lunch", "lunch")
	rec := s.createRecipe(t, alice.ID, "bread", []int64{tag.ID},
		recipe.IngredientAmount{IngredientID: flour.ID, Amount: 300},
	)

	require.NoError(t, s.favorites.Add(ctx, bob.ID, rec.ID))
	require.NoError(t, s.cart.Add(ctx, bob.ID, rec.ID))
	require.NoError(t, s.links.Create(ctx, &shortlink.ShortLink{Code: "abcd1234", RecipeID: rec.ID}))

	require.NoError(t, s.recipes.Delete(ctx, rec.ID))

	for _, table := range []string{
		"ingredient_amounts", "recipe_tags", "favorites", "shopping_cart_entries", "short_links",
	} {
		assert.Equal(t, int64(0), s.countRows(t, table, rec.ID), fmt.Sprintf("rows left in %s", table))
	}

	_, err := s.recipes.GetByID(ctx, rec.ID)
	assert.ErrorIs(t, err, recipe.ErrNotFound)

	// deleting again reports the missing recipe
	assert.ErrorIs(t, s.recipes.Delete(ctx, rec.ID), recipe.ErrNotFound)
}

func TestRecipeBoundsAcceptedEndToEnd(t *testing.T) {
	s := setupSuite(t)
	ctx := context.Background()

	alice := s.createUser(t, "alice")
	flour := s.createIngredient(t, "flour", "g")
	tag := s.createTag(t, "Dinner", "dinner")

	svc := recipe.NewService(s.recipes, s.catalog, s.favorites, s.cart, s.subs)

	tests := []struct {
		name        string
		cookingTime int
		amount      int
	}{
		{"minimum values", recipe.MinCookingTime, recipe.MinAmount},
		{"maximum values", recipe.MaxCookingTime, recipe.MaxAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Create(ctx, alice.ID, &recipe.CreateRequest{
				Ingredients: []recipe.IngredientRef{{ID: flour.ID, Amount: tt.amount}},
				Tags:        []int64{tag.ID},
				Name:        tt.name,
				Image:       "recipes/bounds.png",
				Text:        "boundary recipe",
				CookingTime: tt.cookingTime,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.cookingTime, resp.CookingTime)
			require.Len(t, resp.Ingredients, 1)
			assert.Equal(t, tt.amount, resp.Ingredients[0].Amount)
		})
	}
}

func TestListFiltersAgainstStore(t *testing.T) {
	s := setupSuite(t)
	ctx := context.Background()

	alice := s.createUser(t, "alice")
	bob := s.createUser(t, "bob")
	flour := s.createIngredient(t, "flour", "g")
	breakfast := s.createTag(t, "Breakfast", "breakfast")
	dinner := s.createTag(t, "Dinner", "dinner")

	pancakes := s.createRecipe(t, alice.ID, "pancakes", []int64{breakfast.ID},
		recipe.IngredientAmount{IngredientID: flour.ID, Amount: 200},
	)
	stew := s.createRecipe(t, bob.ID, "stew", []int64{dinner.ID},
		recipe.IngredientAmount{IngredientID: flour.ID, Amount: 10},
	)

	require.NoError(t, s.favorites.Add(ctx, bob.ID, pancakes.ID))

	// tags match any of the given slugs
	recipes, total, err := s.recipes.List(ctx, recipe.Filter{TagSlugs: []string{"breakfast", "dinner"}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, recipes, 2)
	// newest first
	assert.Equal(t, stew.ID, recipes[0].ID)

	recipes, total, err = s.recipes.List(ctx, recipe.Filter{FavoritedBy: bob.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, recipes, 1)
	assert.Equal(t, pancakes.ID, recipes[0].ID)

	recipes, total, err = s.recipes.List(ctx, recipe.Filter{AuthorID: alice.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, pancakes.ID, recipes[0].ID)
}
