package favorite

import (
	"context"

	"gorm.io/gorm"

	"foodgram/internal/pkg/dberr"
)

type Repository interface {
	Add(ctx context.Context, userID, recipeID int64) error
	Remove(ctx context.Context, userID, recipeID int64) error
	SetForRecipes(ctx context.Context, userID int64, recipeIDs []int64) (map[int64]bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Add inserts the join row; the unique constraint turns a concurrent
// duplicate into ErrAlreadyFavorited.
func (r *repository) Add(ctx context.Context, userID, recipeID int64) error {
	err := r.db.WithContext(ctx).Create(&Favorite{UserID: userID, RecipeID: recipeID}).Error
	if dberr.IsUniqueViolation(err) {
		return ErrAlreadyFavorited
	}
	return err
}

func (r *repository) Remove(ctx context.Context, userID, recipeID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFavorited
	}
	return nil
}

// SetForRecipes reports which of recipeIDs the user has favorited.
func (r *repository) SetForRecipes(ctx context.Context, userID int64, recipeIDs []int64) (map[int64]bool, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&Favorite{}).
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
