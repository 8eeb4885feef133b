package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	ListIngredients(ctx context.Context, namePrefix string) ([]Ingredient, error)
	GetIngredient(ctx context.Context, id int64) (*Ingredient, error)
	GetIngredientsByIDs(ctx context.Context, ids []int64) ([]Ingredient, error)
	ListTags(ctx context.Context) ([]Tag, error)
	GetTag(ctx context.Context, id int64) (*Tag, error)
	GetTagsByIDs(ctx context.Context, ids []int64) ([]Tag, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListIngredients(ctx context.Context, namePrefix string) ([]Ingredient, error) {
	var ingredients []Ingredient
	q := r.db.WithContext(ctx).Order("name ASC")
	if namePrefix != "" {
		q = q.Where("name LIKE ?", namePrefix+"%")
	}
	err := q.Find(&ingredients).Error
	return ingredients, err
}

func (r *repository) GetIngredient(ctx context.Context, id int64) (*Ingredient, error) {
	var ing Ingredient
	err := r.db.WithContext(ctx).First(&ing, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}
	return &ing, nil
}

func (r *repository) GetIngredientsByIDs(ctx context.Context, ids []int64) ([]Ingredient, error) {
	var ingredients []Ingredient
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&ingredients).Error
	return ingredients, err
}

func (r *repository) ListTags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	err := r.db.WithContext(ctx).Order("name ASC").Find(&tags).Error
	return tags, err
}

func (r *repository) GetTag(ctx context.Context, id int64) (*Tag, error) {
	var tag Tag
	err := r.db.WithContext(ctx).First(&tag, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}
	return &tag, nil
}

func (r *repository) GetTagsByIDs(ctx context.Context, ids []int64) ([]Tag, error) {
	var tags []Tag
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error
	return tags, err
}
