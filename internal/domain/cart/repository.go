package cart

import (
	"context"

	"gorm.io/gorm"

	"foodgram/internal/pkg/dberr"
)

type Repository interface {
	Add(ctx context.Context, userID, recipeID int64) error
	Remove(ctx context.Context, userID, recipeID int64) error
	SetForRecipes(ctx context.Context, userID int64, recipeIDs []int64) (map[int64]bool, error)
	HasEntries(ctx context.Context, userID int64) (bool, error)
	// AggregateItems folds every ingredient-amount row reachable from the
	// user's cart into (name, unit) groups with summed amounts, ordered by
	// name so repeated calls produce identical output.
	AggregateItems(ctx context.Context, userID int64) ([]Item, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Add(ctx context.Context, userID, recipeID int64) error {
	err := r.db.WithContext(ctx).Create(&Entry{UserID: userID, RecipeID: recipeID}).Error
	if dberr.IsUniqueViolation(err) {
		return ErrAlreadyInCart
	}
	return err
}

func (r *repository) Remove(ctx context.Context, userID, recipeID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&Entry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotInCart
	}
	return nil
}

func (r *repository) SetForRecipes(ctx context.Context, userID int64, recipeIDs []int64) (map[int64]bool, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&Entry{}).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &ids).Error
	if err != nil {
		return nil, err
	}

	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

func (r *repository) HasEntries(ctx context.Context, userID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Entry{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) AggregateItems(ctx context.Context, userID int64) ([]Item, error) {
	var items []Item
	err := r.db.WithContext(ctx).
		Table("ingredient_amounts").
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, SUM(ingredient_amounts.amount) AS total").
		Joins("JOIN ingredients ON ingredients.id = ingredient_amounts.ingredient_id").
		Joins("JOIN shopping_cart_entries ON shopping_cart_entries.recipe_id = ingredient_amounts.recipe_id").
		Where("shopping_cart_entries.user_id = ?", userID).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name ASC").
		Scan(&items).Error
	return items, err
}
