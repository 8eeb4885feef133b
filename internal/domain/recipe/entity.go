package recipe

import (
	"time"

	"foodgram/internal/domain/catalog"
	"foodgram/internal/domain/user"
)

// Bounds for recipe fields, shared by create and update validation.
const (
	MinCookingTime = 1
	MaxCookingTime = 32000
	MinAmount      = 1
	MaxAmount      = 32000
)

// Recipe is the aggregate root: the recipe row plus its owned
// ingredient-amount rows and tag links. All three are written inside a
// single transaction; associations are never touched independently.
type Recipe struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:256;not null"`
	AuthorID    int64     `json:"author_id" gorm:"not null;index"`
	Text        string    `json:"text" gorm:"type:text;not null"`
	Image       string    `json:"image"`
	CookingTime int       `json:"cooking_time" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`

	Author      user.User          `json:"-" gorm:"foreignKey:AuthorID"`
	Ingredients []IngredientAmount `json:"-" gorm:"foreignKey:RecipeID"`
	Tags        []catalog.Tag      `json:"-" gorm:"many2many:recipe_tags"`
}

func (Recipe) TableName() string { return "recipes" }

// IngredientAmount links a recipe to an ingredient with a quantity.
// Unique per (recipe, ingredient); created and destroyed only as part of a
// recipe transaction.
type IngredientAmount struct {
	ID           int64 `json:"id" gorm:"primaryKey"`
	RecipeID     int64 `json:"recipe_id" gorm:"not null;uniqueIndex:idx_recipe_ingredient"`
	IngredientID int64 `json:"ingredient_id" gorm:"not null;uniqueIndex:idx_recipe_ingredient"`
	Amount       int   `json:"amount" gorm:"not null"`

	Ingredient catalog.Ingredient `json:"-" gorm:"foreignKey:IngredientID"`
}

func (IngredientAmount) TableName() string { return "ingredient_amounts" }

// recipeTag mirrors the many2many join table so the repository can replace
// tag links explicitly inside the write transaction.
type recipeTag struct {
	RecipeID int64 `gorm:"primaryKey"`
	TagID    int64 `gorm:"primaryKey"`
}

func (recipeTag) TableName() string { return "recipe_tags" }
