package recipe

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Filter narrows the recipe listing. Zero values switch a criterion off.
// FavoritedBy and InCartOf carry the requesting user's id; anonymous callers
// leave them at 0 and the flags are ignored.
type Filter struct {
	AuthorID    int64
	TagSlugs    []string
	FavoritedBy int64
	InCartOf    int64
	Limit       int
	Offset      int
}

type Repository interface {
	Create(ctx context.Context, rec *Recipe, tagIDs []int64) error
	// Update rewrites scalar fields and, when the slices are non-nil, fully
	// replaces the ingredient-amount rows and tag links.
	Update(ctx context.Context, rec *Recipe, ingredients []IngredientAmount, tagIDs []int64) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Recipe, error)
	List(ctx context.Context, f Filter) ([]Recipe, int64, error)
	ListByAuthor(ctx context.Context, authorID int64, limit int) ([]Recipe, error)
	CountByAuthor(ctx context.Context, authorID int64) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts the recipe row, its ingredient-amount rows and its tag
// links as one transaction. A failure at any step leaves no partial state.
func (r *repository) Create(ctx context.Context, rec *Recipe, tagIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ingredients := rec.Ingredients
		rec.Ingredients = nil
		rec.Tags = nil

		if err := tx.Omit(clause.Associations).Create(rec).Error; err != nil {
			return err
		}

		for i := range ingredients {
			ingredients[i].RecipeID = rec.ID
		}
		if err := tx.Omit("Ingredient").Create(&ingredients).Error; err != nil {
			return err
		}
		rec.Ingredients = ingredients

		links := make([]recipeTag, 0, len(tagIDs))
		for _, tagID := range tagIDs {
			links = append(links, recipeTag{RecipeID: rec.ID, TagID: tagID})
		}
		return tx.Create(&links).Error
	})
}

// Update rewrites the scalar columns and atomically replaces the supplied
// association sets: existing rows are cleared and re-inserted, never merged.
func (r *repository) Update(ctx context.Context, rec *Recipe, ingredients []IngredientAmount, tagIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"name":         rec.Name,
			"text":         rec.Text,
			"image":        rec.Image,
			"cooking_time": rec.CookingTime,
		}
		if err := tx.Model(&Recipe{}).Where("id = ?", rec.ID).Updates(updates).Error; err != nil {
			return err
		}

		if ingredients != nil {
			if err := tx.Where("recipe_id = ?", rec.ID).Delete(&IngredientAmount{}).Error; err != nil {
				return err
			}
			for i := range ingredients {
				ingredients[i].RecipeID = rec.ID
			}
			if err := tx.Omit("Ingredient").Create(&ingredients).Error; err != nil {
				return err
			}
		}

		if tagIDs != nil {
			if err := tx.Where("recipe_id = ?", rec.ID).Delete(&recipeTag{}).Error; err != nil {
				return err
			}
			links := make([]recipeTag, 0, len(tagIDs))
			for _, tagID := range tagIDs {
				links = append(links, recipeTag{RecipeID: rec.ID, TagID: tagID})
			}
			if err := tx.Create(&links).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete removes the recipe and cascades to its association rows and to any
// favorite, cart and short-link rows referencing it.
func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&IngredientAmount{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&recipeTag{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM favorites WHERE recipe_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM shopping_cart_entries WHERE recipe_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM short_links WHERE recipe_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&Recipe{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Recipe, error) {
	var rec Recipe
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Ingredients.Ingredient").
		First(&rec, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *repository) List(ctx context.Context, f Filter) ([]Recipe, int64, error) {
	q := r.db.WithContext(ctx).Model(&Recipe{})

	if f.AuthorID > 0 {
		q = q.Where("author_id = ?", f.AuthorID)
	}
	if len(f.TagSlugs) > 0 {
		// match-any across the given slugs
		tagged := r.db.Table("recipe_tags").
			Select("recipe_tags.recipe_id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug IN ?", f.TagSlugs)
		q = q.Where("id IN (?)", tagged)
	}
	if f.FavoritedBy > 0 {
		q = q.Where("id IN (?)", r.db.Table("favorites").
			Select("recipe_id").Where("user_id = ?", f.FavoritedBy))
	}
	if f.InCartOf > 0 {
		q = q.Where("id IN (?)", r.db.Table("shopping_cart_entries").
			Select("recipe_id").Where("user_id = ?", f.InCartOf))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = q.Order("id DESC").
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Ingredients.Ingredient")
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	var recipes []Recipe
	if err := q.Find(&recipes).Error; err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

func (r *repository) ListByAuthor(ctx context.Context, authorID int64, limit int) ([]Recipe, error) {
	var recipes []Recipe
	q := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&recipes).Error
	return recipes, err
}

func (r *repository) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Recipe{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	return count, err
}
