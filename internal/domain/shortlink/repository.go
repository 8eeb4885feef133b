package shortlink

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, link *ShortLink) error
	GetByCode(ctx context.Context, code string) (*ShortLink, error)
	GetByRecipeID(ctx context.Context, recipeID int64) (*ShortLink, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, link *ShortLink) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *repository) GetByCode(ctx context.Context, code string) (*ShortLink, error) {
	var link ShortLink
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &link, nil
}

func (r *repository) GetByRecipeID(ctx context.Context, recipeID int64) (*ShortLink, error) {
	var link ShortLink
	err := r.db.WithContext(ctx).Where("recipe_id = ?", recipeID).First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &link, nil
}
